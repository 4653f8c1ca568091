package models

import (
	"context"
	"strings"

	apperrors "github.com/NomadCrew/tourist-travel-backend/errors"
	"github.com/NomadCrew/tourist-travel-backend/logger"
	"github.com/NomadCrew/tourist-travel-backend/models/validation"
	"github.com/NomadCrew/tourist-travel-backend/store"
	"github.com/NomadCrew/tourist-travel-backend/types"
)

const msgContactRequiredFields = "Please fill in all fields"

// ContactModel applies the contact form rules on top of a ContactMessageStore.
type ContactModel struct {
	store store.ContactMessageStore
	newID IDGenerator
	now   Clock
}

// NewContactModel creates a ContactModel. Nil newID or now fall back to the defaults.
func NewContactModel(s store.ContactMessageStore, newID IDGenerator, now Clock) *ContactModel {
	if newID == nil {
		newID = NewUUID
	}
	if now == nil {
		now = utcNow
	}
	return &ContactModel{store: s, newID: newID, now: now}
}

// ListContactMessages returns every message in arrival order.
func (m *ContactModel) ListContactMessages(ctx context.Context) ([]types.ContactMessage, error) {
	messages, err := m.store.ListContactMessages(ctx)
	if err != nil {
		return nil, apperrors.InternalServerError(err)
	}
	return messages, nil
}

// CreateContactMessage validates req and stores it as an unread message.
func (m *ContactModel) CreateContactMessage(ctx context.Context, req types.ContactMessageCreate) (*types.ContactMessage, error) {
	if err := validation.RequireFields(msgContactRequiredFields,
		validation.Field{Name: "name", Value: req.Name},
		validation.Field{Name: "email", Value: req.Email},
		validation.Field{Name: "subject", Value: req.Subject},
		validation.Field{Name: "message", Value: req.Message},
	); err != nil {
		return nil, err
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		return nil, err
	}

	msg := types.ContactMessage{
		ID:        m.newID(),
		Name:      strings.TrimSpace(req.Name),
		Email:     validation.NormalizeEmail(req.Email),
		Subject:   strings.TrimSpace(req.Subject),
		Message:   strings.TrimSpace(req.Message),
		Status:    types.ContactStatusUnread,
		CreatedAt: m.now(),
	}

	if err := m.store.CreateContactMessage(ctx, msg); err != nil {
		return nil, apperrors.InternalServerError(err)
	}

	logger.GetLogger().Infow("Contact message received",
		"message_id", msg.ID,
		"email", logger.MaskEmail(msg.Email),
		"subject", msg.Subject)
	return &msg, nil
}
