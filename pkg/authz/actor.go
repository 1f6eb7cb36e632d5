package authz

import (
	"github.com/google/uuid"

	"github.com/dmitrymomot/authzkit/pkg/membership"
)

// Actor is the authenticated (or anonymous) principal a decision is made for.
// The host application adapts its user model to this interface.
type Actor interface {
	ID() uuid.UUID
	Email() string
	IsAnonymous() bool
	IsActive() bool
	IsSuperuser() bool
}

// Anonymous is the actor used for unauthenticated requests.
type Anonymous struct{}

func (Anonymous) ID() uuid.UUID     { return uuid.Nil }
func (Anonymous) Email() string     { return "" }
func (Anonymous) IsAnonymous() bool { return true }
func (Anonymous) IsActive() bool    { return false }
func (Anonymous) IsSuperuser() bool { return false }

// Object is anything a policy can be evaluated against.
type Object interface {
	// ResourceID identifies the object itself.
	ResourceID() uuid.UUID
}

// ResourceRef is implemented by objects that are governed by another
// resource's memberships: a story resolves to its project, a membership or
// invitation to the resource it grants access to.
type ResourceRef interface {
	// AccessResourceID identifies the resource whose memberships and roles
	// govern access to this object.
	AccessResourceID() uuid.UUID
}

// UserOwned is implemented by objects bound to a specific user, such as a
// membership or an invitation with a matched recipient.
type UserOwned interface {
	OwnerUserID() uuid.UUID
}

// RoleCarrier is implemented by objects that carry an associated role, such
// as a membership or invitation. CanModifyAssociatedRole reads it to protect
// owner-held bindings from non-owners.
type RoleCarrier interface {
	AssociatedRole() *membership.Role
}

// accessResource navigates to the resource that governs obj.
func accessResource(obj Object) uuid.UUID {
	if ref, ok := obj.(ResourceRef); ok {
		return ref.AccessResourceID()
	}
	return obj.ResourceID()
}

func isAuthenticated(actor Actor) bool {
	return actor != nil && !actor.IsAnonymous() && actor.IsActive()
}
