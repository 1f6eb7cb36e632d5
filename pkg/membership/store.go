package membership

import (
	"context"

	"github.com/google/uuid"
)

// Store answers existence checks for memberships. Implementations live in
// the host application on top of its own persistence.
type Store interface {
	// Exists reports whether the user holds a membership on the resource.
	Exists(ctx context.Context, userID, resourceID uuid.UUID) (bool, error)
}

// RoleStore resolves the role a user holds on a resource.
//
// Implementations must uphold the ownership invariant: a resource always
// keeps at least one membership whose role has IsOwner set, so removing or
// demoting the last owner must be rejected at the store level.
type RoleStore interface {
	// Resolve returns the user's role on the resource, or (nil, nil) when
	// the user holds no membership there. Errors are reserved for
	// infrastructure failures and are never used to signal "no role".
	Resolve(ctx context.Context, userID, resourceID uuid.UUID) (*Role, error)
}

// Creator creates a membership, used when an invitation is accepted.
// Implementations enforce uniqueness per (user, resource).
type Creator interface {
	Create(ctx context.Context, userID, resourceID, roleID uuid.UUID) (*Membership, error)
}
