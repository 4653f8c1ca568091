package models

import (
	"context"
	stderrors "errors"

	apperrors "github.com/NomadCrew/tourist-travel-backend/errors"
	"github.com/NomadCrew/tourist-travel-backend/logger"
	"github.com/NomadCrew/tourist-travel-backend/models/validation"
	"github.com/NomadCrew/tourist-travel-backend/store"
	"github.com/NomadCrew/tourist-travel-backend/types"
)

const (
	msgEmailRequired     = "Email is required"
	msgAlreadySubscribed = "This email is already subscribed to our newsletter"
)

// NewsletterModel applies the subscription rules on top of a NewsletterStore.
type NewsletterModel struct {
	store store.NewsletterStore
	newID IDGenerator
	now   Clock
}

// NewNewsletterModel creates a NewsletterModel. Nil newID or now fall back to the defaults.
func NewNewsletterModel(s store.NewsletterStore, newID IDGenerator, now Clock) *NewsletterModel {
	if newID == nil {
		newID = NewUUID
	}
	if now == nil {
		now = utcNow
	}
	return &NewsletterModel{store: s, newID: newID, now: now}
}

// ListSubscriptions returns every subscription in sign-up order.
func (m *NewsletterModel) ListSubscriptions(ctx context.Context) ([]types.NewsletterSubscription, error) {
	subs, err := m.store.ListSubscriptions(ctx)
	if err != nil {
		return nil, apperrors.InternalServerError(err)
	}
	return subs, nil
}

// Subscribe adds an active subscription. Emails are unique after normalization.
func (m *NewsletterModel) Subscribe(ctx context.Context, req types.NewsletterSubscribe) (*types.NewsletterSubscription, error) {
	if err := validation.RequireFields(msgEmailRequired,
		validation.Field{Name: "email", Value: req.Email},
	); err != nil {
		return nil, err
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		return nil, err
	}

	sub := types.NewsletterSubscription{
		ID:           m.newID(),
		Email:        validation.NormalizeEmail(req.Email),
		Status:       types.NewsletterStatusActive,
		SubscribedAt: m.now(),
	}

	if err := m.store.CreateSubscription(ctx, sub); err != nil {
		if stderrors.Is(err, store.ErrConflict) {
			return nil, apperrors.ValidationFailed(msgAlreadySubscribed, "email")
		}
		return nil, apperrors.InternalServerError(err)
	}

	logger.GetLogger().Infow("Newsletter subscription created",
		"subscription_id", sub.ID,
		"email", logger.MaskEmail(sub.Email))
	return &sub, nil
}
