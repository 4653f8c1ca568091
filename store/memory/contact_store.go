package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/NomadCrew/tourist-travel-backend/store"
	"github.com/NomadCrew/tourist-travel-backend/types"
)

var _ store.ContactMessageStore = (*ContactMessageStore)(nil)

type ContactMessageStore struct {
	mu       sync.RWMutex
	messages []types.ContactMessage
}

// NewContactMessageStore returns an empty ContactMessageStore.
func NewContactMessageStore() *ContactMessageStore {
	return &ContactMessageStore{messages: []types.ContactMessage{}}
}

// ListContactMessages returns copies of all messages in insertion order.
func (s *ContactMessageStore) ListContactMessages(ctx context.Context) ([]types.ContactMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.ContactMessage, len(s.messages))
	copy(out, s.messages)
	return out, nil
}

// CreateContactMessage appends msg.
func (s *ContactMessageStore) CreateContactMessage(ctx context.Context, msg types.ContactMessage) error {
	if msg.ID == "" {
		return fmt.Errorf("failed to create contact message: empty id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.messages {
		if s.messages[i].ID == msg.ID {
			return fmt.Errorf("failed to create contact message %s: %w", msg.ID, store.ErrConflict)
		}
	}
	s.messages = append(s.messages, msg)
	return nil
}

// CountContactMessages returns the number of stored messages.
func (s *ContactMessageStore) CountContactMessages(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages), nil
}
