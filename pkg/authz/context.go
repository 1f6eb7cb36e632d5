package authz

import (
	"github.com/google/uuid"

	"github.com/dmitrymomot/authzkit/pkg/membership"
	"github.com/dmitrymomot/authzkit/pkg/permissions"
)

// roleKey identifies one resolved role within a decision.
type roleKey struct {
	actorID    uuid.UUID
	scope      permissions.Scope
	resourceID uuid.UUID
}

// EvalContext is the per-decision memoization scope. It caches roles resolved
// by HasPermission so that several leaves referencing the same (actor, scope,
// resource) cost a single store call, including the "no role" result.
//
// An EvalContext lives for exactly one authorization decision. It is not safe
// for concurrent use and must never be shared across decisions or requests;
// Check and Filter create a fresh one per decision.
type EvalContext struct {
	roles map[roleKey]*membership.Role
}

// NewEvalContext creates an empty per-decision context.
func NewEvalContext() *EvalContext {
	return &EvalContext{roles: make(map[roleKey]*membership.Role)}
}

// cachedRole returns the memoized role for the key. The bool reports whether
// the key was resolved at all; the role itself may be nil (no membership).
func (ec *EvalContext) cachedRole(k roleKey) (*membership.Role, bool) {
	role, ok := ec.roles[k]
	return role, ok
}

// storeRole memoizes a resolved role. Keys are write-once: the first
// resolution wins for the rest of the decision.
func (ec *EvalContext) storeRole(k roleKey, role *membership.Role) {
	if _, ok := ec.roles[k]; ok {
		return
	}
	ec.roles[k] = role
}
