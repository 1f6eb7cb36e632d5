package invitation

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/authzkit/pkg/permissions"
)

// Status is the lifecycle state of an invitation.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRevoked  Status = "revoked"
	StatusDenied   Status = "denied"
)

// transitions is the full state machine: PENDING fans out to the three
// terminal states, terminal states have no outgoing edges.
var transitions = map[Status][]Status{
	StatusPending:  {StatusAccepted, StatusRevoked, StatusDenied},
	StatusAccepted: nil,
	StatusRevoked:  nil,
	StatusDenied:   nil,
}

// CanTransition reports whether the status may move to target.
func (s Status) CanTransition(target Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// Terminal reports whether the status has no outgoing transitions.
func (s Status) Terminal() bool {
	return len(transitions[s]) == 0
}

// Invitation is a pending, revocable offer of membership on a resource.
// UserID stays nil until the recipient is matched by email.
type Invitation struct {
	ID            uuid.UUID
	ResourceID    uuid.UUID
	Scope         permissions.Scope
	UserID        *uuid.UUID
	Email         string
	RoleID        uuid.UUID
	Status        Status
	NumEmailsSent int
	ResentAt      *time.Time
	InvitedBy     uuid.UUID
	RevokedBy     *uuid.UUID
	RevokedAt     *time.Time
	CreatedAt     time.Time
}

// Identity is the recipient-side identity used to match an invitation on
// accept and deny, by user id or by email.
type Identity struct {
	UserID uuid.UUID
	Email  string
}

// IsForIdentity reports whether the invitation is addressed to id, matching
// either the bound user or the invited email (case-insensitive).
func (i *Invitation) IsForIdentity(id Identity) bool {
	if i.UserID != nil && id.UserID != uuid.Nil && *i.UserID == id.UserID {
		return true
	}
	return id.Email != "" && strings.EqualFold(i.Email, id.Email)
}

// New creates a pending invitation for email on the given resource.
func New(scope permissions.Scope, resourceID, roleID, invitedBy uuid.UUID, email string) Invitation {
	return Invitation{
		ID:         uuid.New(),
		ResourceID: resourceID,
		Scope:      scope,
		Email:      email,
		RoleID:     roleID,
		Status:     StatusPending,
		InvitedBy:  invitedBy,
		CreatedAt:  time.Now(),
	}
}
