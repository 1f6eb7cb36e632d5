package membership

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is a thread-safe in-memory implementation of Store, RoleStore
// and Creator, intended for tests and wiring examples.
type MemoryStore struct {
	mu          sync.RWMutex
	roles       map[uuid.UUID]Role
	memberships map[memberKey]Membership
}

type memberKey struct {
	userID     uuid.UUID
	resourceID uuid.UUID
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		roles:       make(map[uuid.UUID]Role),
		memberships: make(map[memberKey]Membership),
	}
}

// AddRole registers a role definition. A copy is stored to prevent external
// modification.
func (s *MemoryStore) AddRole(role Role) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := role
	stored.Permissions = append(stored.Permissions[:0:0], role.Permissions...)
	s.roles[role.ID] = stored
}

// AddMembership binds a user to a role on a resource, replacing any existing
// binding for the same (user, resource) pair.
func (s *MemoryStore) AddMembership(m Membership) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.memberships[memberKey{m.UserID, m.ResourceID}] = m
}

// Exists implements Store.
func (s *MemoryStore) Exists(ctx context.Context, userID, resourceID uuid.UUID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.memberships[memberKey{userID, resourceID}]
	return ok, nil
}

// Resolve implements RoleStore.
func (s *MemoryStore) Resolve(ctx context.Context, userID, resourceID uuid.UUID) (*Role, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.memberships[memberKey{userID, resourceID}]
	if !ok {
		return nil, nil
	}

	role, ok := s.roles[m.RoleID]
	if !ok {
		return nil, ErrRoleNotFound
	}

	copied := role
	copied.Permissions = append(copied.Permissions[:0:0], role.Permissions...)
	return &copied, nil
}

// Create implements Creator.
func (s *MemoryStore) Create(ctx context.Context, userID, resourceID, roleID uuid.UUID) (*Membership, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := memberKey{userID, resourceID}
	if _, ok := s.memberships[key]; ok {
		return nil, ErrAlreadyMember
	}

	m := Membership{
		ID:         uuid.New(),
		UserID:     userID,
		ResourceID: resourceID,
		RoleID:     roleID,
		CreatedAt:  time.Now(),
	}
	s.memberships[key] = m
	return &m, nil
}
