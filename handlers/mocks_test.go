package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/NomadCrew/tourist-travel-backend/logger"
	"github.com/NomadCrew/tourist-travel-backend/middleware"
	"github.com/NomadCrew/tourist-travel-backend/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

func init() {
	logger.IsTest = true
	gin.SetMode(gin.TestMode)
}

// ---------------------------------------------------------------------------
// Mocks
// ---------------------------------------------------------------------------

type MockBookingService struct {
	mock.Mock
}

var _ BookingServiceInterface = (*MockBookingService)(nil)

func (m *MockBookingService) ListBookings(ctx context.Context) ([]types.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Booking), args.Error(1)
}

func (m *MockBookingService) CreateBooking(ctx context.Context, req types.BookingCreate) (*types.Booking, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Booking), args.Error(1)
}

func (m *MockBookingService) GetBooking(ctx context.Context, id string) (*types.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Booking), args.Error(1)
}

func (m *MockBookingService) UpdateBookingStatus(ctx context.Context, id string, status string) (*types.Booking, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Booking), args.Error(1)
}

func (m *MockBookingService) DeleteBooking(ctx context.Context, id string) (*types.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Booking), args.Error(1)
}

type MockContactService struct {
	mock.Mock
}

var _ ContactServiceInterface = (*MockContactService)(nil)

func (m *MockContactService) ListContactMessages(ctx context.Context) ([]types.ContactMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.ContactMessage), args.Error(1)
}

func (m *MockContactService) CreateContactMessage(ctx context.Context, req types.ContactMessageCreate) (*types.ContactMessage, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ContactMessage), args.Error(1)
}

type MockNewsletterService struct {
	mock.Mock
}

var _ NewsletterServiceInterface = (*MockNewsletterService)(nil)

func (m *MockNewsletterService) ListSubscriptions(ctx context.Context) ([]types.NewsletterSubscription, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.NewsletterSubscription), args.Error(1)
}

func (m *MockNewsletterService) Subscribe(ctx context.Context, req types.NewsletterSubscribe) (*types.NewsletterSubscription, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.NewsletterSubscription), args.Error(1)
}

type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) CheckHealth(ctx context.Context) types.HealthCheck {
	args := m.Called(ctx)
	return args.Get(0).(types.HealthCheck)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func buildRouter(method, path string, handler gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.Handle(method, path, handler)
	return r
}

func jsonRequest(method, path string, body interface{}) *http.Request {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func formRequest(method, path string, values url.Values) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return body
}
