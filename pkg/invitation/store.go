package invitation

import (
	"context"

	"github.com/google/uuid"
)

// Store is the invitation persistence interface implemented by the host
// application. Updates happen under the store's own transactional guarantees;
// the service never leaves a partially applied transition behind.
type Store interface {
	// Get returns an invitation by id, or ErrNotFound.
	Get(ctx context.Context, id uuid.UUID) (*Invitation, error)

	// Update persists the invitation's current state.
	Update(ctx context.Context, inv *Invitation) error

	// FindPending returns a PENDING invitation on the resource addressed to
	// the user id or the email (case-insensitive), or (nil, nil) when there
	// is none. Errors are reserved for infrastructure failures.
	FindPending(ctx context.Context, userID uuid.UUID, email string, resourceID uuid.UUID) (*Invitation, error)
}
