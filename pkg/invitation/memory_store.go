package invitation

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is a thread-safe in-memory Store for tests and wiring examples.
type MemoryStore struct {
	mu          sync.RWMutex
	invitations map[uuid.UUID]Invitation
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{invitations: make(map[uuid.UUID]Invitation)}
}

// Add seeds an invitation.
func (s *MemoryStore) Add(inv Invitation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invitations[inv.ID] = inv
}

// Get implements Store.
func (s *MemoryStore) Get(ctx context.Context, id uuid.UUID) (*Invitation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	inv, ok := s.invitations[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := inv
	return &copied, nil
}

// Update implements Store.
func (s *MemoryStore) Update(ctx context.Context, inv *Invitation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.invitations[inv.ID]; !ok {
		return ErrNotFound
	}
	s.invitations[inv.ID] = *inv
	return nil
}

// FindPending implements Store.
func (s *MemoryStore) FindPending(ctx context.Context, userID uuid.UUID, email string, resourceID uuid.UUID) (*Invitation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, inv := range s.invitations {
		if inv.Status != StatusPending || inv.ResourceID != resourceID {
			continue
		}
		if inv.UserID != nil && userID != uuid.Nil && *inv.UserID == userID {
			copied := inv
			return &copied, nil
		}
		if email != "" && strings.EqualFold(inv.Email, email) {
			copied := inv
			return &copied, nil
		}
	}
	return nil, nil
}
