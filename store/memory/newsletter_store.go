package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/NomadCrew/tourist-travel-backend/store"
	"github.com/NomadCrew/tourist-travel-backend/types"
)

var _ store.NewsletterStore = (*NewsletterStore)(nil)

// NewsletterStore keeps subscriptions in sign-up order.
type NewsletterStore struct {
	mu            sync.RWMutex
	subscriptions []types.NewsletterSubscription
}

// NewNewsletterStore returns an empty NewsletterStore.
func NewNewsletterStore() *NewsletterStore {
	return &NewsletterStore{subscriptions: []types.NewsletterSubscription{}}
}

// ListSubscriptions returns copies of all subscriptions in insertion order.
func (s *NewsletterStore) ListSubscriptions(ctx context.Context) ([]types.NewsletterSubscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.NewsletterSubscription, len(s.subscriptions))
	copy(out, s.subscriptions)
	return out, nil
}

// CreateSubscription compares emails verbatim; callers normalize before inserting.
func (s *NewsletterStore) CreateSubscription(ctx context.Context, sub types.NewsletterSubscription) error {
	if sub.ID == "" {
		return fmt.Errorf("failed to create subscription: empty id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.subscriptions {
		if s.subscriptions[i].Email == sub.Email {
			return fmt.Errorf("subscription for %s: %w", sub.Email, store.ErrConflict)
		}
	}
	s.subscriptions = append(s.subscriptions, sub)
	return nil
}

// CountSubscriptions returns the number of stored subscriptions.
func (s *NewsletterStore) CountSubscriptions(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subscriptions), nil
}
