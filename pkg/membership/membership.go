package membership

import (
	"time"

	"github.com/google/uuid"
)

// Membership binds a user to a role on a specific resource.
type Membership struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	ResourceID uuid.UUID
	RoleID     uuid.UUID
	CreatedAt  time.Time
}
