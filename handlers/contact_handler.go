package handlers

import (
	"net/http"

	"github.com/NomadCrew/tourist-travel-backend/types"
	"github.com/gin-gonic/gin"
)

// ContactHandler handles contact form submissions.
type ContactHandler struct {
	contacts ContactServiceInterface
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contacts ContactServiceInterface) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// SubmitContactHandler stores a contact form message.
func (h *ContactHandler) SubmitContactHandler(c *gin.Context) {
	var req types.ContactMessageCreate
	if !bindOrError(c, &req) {
		return
	}

	msg, err := h.contacts.CreateContactMessage(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, types.Envelope{
		Success: true,
		Message: "Thank you for your message! We will get back to you soon.",
		Data:    msg,
	})
}

// ListContactsHandler returns every contact message in arrival order.
func (h *ContactHandler) ListContactsHandler(c *gin.Context) {
	messages, err := h.contacts.ListContactMessages(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, types.ListEnvelope(messages, len(messages)))
}
