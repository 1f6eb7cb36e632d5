package authz_test

import (
	"context"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dmitrymomot/authzkit/pkg/authz"
	"github.com/dmitrymomot/authzkit/pkg/membership"
)

// testActor is a minimal Actor implementation for tests.
type testActor struct {
	id        uuid.UUID
	email     string
	anonymous bool
	active    bool
	superuser bool
}

func (a testActor) ID() uuid.UUID     { return a.id }
func (a testActor) Email() string     { return a.email }
func (a testActor) IsAnonymous() bool { return a.anonymous }
func (a testActor) IsActive() bool    { return a.active }
func (a testActor) IsSuperuser() bool { return a.superuser }

func activeActor() testActor {
	return testActor{id: uuid.New(), email: "dev@example.com", active: true}
}

// resource is a plain resource object, e.g. a project.
type resource struct {
	id uuid.UUID
}

func (r resource) ResourceID() uuid.UUID { return r.id }

// story is governed by its project's memberships.
type story struct {
	id        uuid.UUID
	projectID uuid.UUID
}

func (s story) ResourceID() uuid.UUID       { return s.id }
func (s story) AccessResourceID() uuid.UUID { return s.projectID }

// memberObj models a membership as a policy target: user-owned, role-carrying
// and governed by its resource.
type memberObj struct {
	id         uuid.UUID
	userID     uuid.UUID
	resourceID uuid.UUID
	role       *membership.Role
}

func (m memberObj) ResourceID() uuid.UUID            { return m.id }
func (m memberObj) AccessResourceID() uuid.UUID      { return m.resourceID }
func (m memberObj) OwnerUserID() uuid.UUID           { return m.userID }
func (m memberObj) AssociatedRole() *membership.Role { return m.role }

// spyPredicate records whether it was invoked and returns a fixed answer.
type spyPredicate struct {
	called atomic.Int64
	result bool
	err    error
}

func (s *spyPredicate) Authorize(context.Context, *authz.EvalContext, authz.Actor, authz.Object) (bool, error) {
	s.called.Add(1)
	return s.result, s.err
}

// countingRoleStore wraps a RoleStore and counts Resolve calls.
type countingRoleStore struct {
	inner membership.RoleStore
	calls atomic.Int64
	err   error
}

func (s *countingRoleStore) Resolve(ctx context.Context, userID, resourceID uuid.UUID) (*membership.Role, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return s.inner.Resolve(ctx, userID, resourceID)
}
