package handlers

import (
	"net/http"

	"github.com/NomadCrew/tourist-travel-backend/types"
	"github.com/gin-gonic/gin"
)

// BookingHandler serves the /api/bookings endpoints.
type BookingHandler struct {
	bookings BookingServiceInterface
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookings BookingServiceInterface) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// ListBookingsHandler returns every booking in creation order.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	bookings, err := h.bookings.ListBookings(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, types.ListEnvelope(bookings, len(bookings)))
}

// CreateBookingHandler records a booking submitted from the booking form.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req types.BookingCreate
	if !bindOrError(c, &req) {
		return
	}

	booking, err := h.bookings.CreateBooking(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, types.Envelope{
		Success: true,
		Message: "Booking created successfully!",
		Data:    booking,
	})
}

// GetBookingHandler returns a single booking by id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	booking, err := h.bookings.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, types.Envelope{Success: true, Data: booking})
}

// UpdateBookingStatusHandler changes the status of a booking. An unknown id is
// reported before anything about the body.
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if _, err := h.bookings.GetBooking(ctx, id); err != nil {
		_ = c.Error(err)
		return
	}

	// A body that does not bind carries no usable status; the model rejects the
	// empty value as an invalid status.
	var req types.BookingStatusUpdate
	if err := c.ShouldBind(&req); err != nil {
		req.Status = ""
	}

	booking, err := h.bookings.UpdateBookingStatus(ctx, id, req.Status)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, types.Envelope{
		Success: true,
		Message: "Booking status updated successfully",
		Data:    booking,
	})
}

// DeleteBookingHandler removes a booking and echoes its final state.
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	booking, err := h.bookings.DeleteBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, types.Envelope{
		Success: true,
		Message: "Booking deleted successfully",
		Data:    booking,
	})
}
