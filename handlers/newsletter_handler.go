package handlers

import (
	"net/http"

	"github.com/NomadCrew/tourist-travel-backend/types"
	"github.com/gin-gonic/gin"
)

// NewsletterHandler handles newsletter sign-ups.
type NewsletterHandler struct {
	newsletters NewsletterServiceInterface
}

// NewNewsletterHandler creates a new NewsletterHandler.
func NewNewsletterHandler(newsletters NewsletterServiceInterface) *NewsletterHandler {
	return &NewsletterHandler{newsletters: newsletters}
}

// SubscribeHandler adds an email address to the newsletter list.
func (h *NewsletterHandler) SubscribeHandler(c *gin.Context) {
	var req types.NewsletterSubscribe
	if !bindOrError(c, &req) {
		return
	}

	sub, err := h.newsletters.Subscribe(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, types.Envelope{
		Success: true,
		Message: "Successfully subscribed to our newsletter!",
		Data:    sub,
	})
}

// ListSubscriptionsHandler returns every newsletter subscription.
func (h *NewsletterHandler) ListSubscriptionsHandler(c *gin.Context) {
	subs, err := h.newsletters.ListSubscriptions(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, types.ListEnvelope(subs, len(subs)))
}
