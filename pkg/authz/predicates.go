package authz

import (
	"context"

	"github.com/dmitrymomot/authzkit/pkg/invitation"
	"github.com/dmitrymomot/authzkit/pkg/membership"
	"github.com/dmitrymomot/authzkit/pkg/permissions"
)

// Authenticated authorizes active, non-anonymous actors. No I/O.
func Authenticated() Predicate {
	return PredicateFunc(func(_ context.Context, _ *EvalContext, actor Actor, _ Object) (bool, error) {
		return isAuthenticated(actor), nil
	})
}

// Superuser authorizes authenticated actors with the superuser flag. No I/O.
func Superuser() Predicate {
	return PredicateFunc(func(_ context.Context, _ *EvalContext, actor Actor, _ Object) (bool, error) {
		return isAuthenticated(actor) && actor.IsSuperuser(), nil
	})
}

// RelatedToUser authorizes when the object is bound to the actor, e.g. the
// actor's own membership or invitation. No I/O.
func RelatedToUser() Predicate {
	return PredicateFunc(func(_ context.Context, _ *EvalContext, actor Actor, obj Object) (bool, error) {
		if !isAuthenticated(actor) || obj == nil {
			return false, nil
		}
		owned, ok := obj.(UserOwned)
		return ok && owned.OwnerUserID() == actor.ID(), nil
	})
}

// Member authorizes when a membership exists for the actor on the object's
// resource. One store lookup.
func Member(store membership.Store) Predicate {
	return PredicateFunc(func(ctx context.Context, _ *EvalContext, actor Actor, obj Object) (bool, error) {
		if !isAuthenticated(actor) || obj == nil {
			return false, nil
		}
		return store.Exists(ctx, actor.ID(), accessResource(obj))
	})
}

// PendingInvitation authorizes when a PENDING invitation on the object's
// resource is addressed to the actor by user id or email. One store lookup.
func PendingInvitation(store invitation.Store) Predicate {
	return PredicateFunc(func(ctx context.Context, _ *EvalContext, actor Actor, obj Object) (bool, error) {
		if !isAuthenticated(actor) || obj == nil {
			return false, nil
		}
		inv, err := store.FindPending(ctx, actor.ID(), actor.Email(), accessResource(obj))
		if err != nil {
			return false, err
		}
		return inv != nil, nil
	})
}

// HasPermission authorizes when the actor's role on the object's resource
// grants perm. The resolved role is memoized in the EvalContext, so repeated
// references within one decision cost a single lookup.
func HasPermission(roles membership.RoleStore, scope permissions.Scope, perm permissions.Permission) Predicate {
	return PredicateFunc(func(ctx context.Context, ec *EvalContext, actor Actor, obj Object) (bool, error) {
		role, err := resolveRole(ctx, ec, roles, scope, actor, obj)
		if err != nil {
			return false, err
		}
		return role.HasPermission(perm), nil
	})
}

// OwnerRole authorizes when the actor's role on the object's resource has
// IsOwner set. Shares the EvalContext memo with HasPermission.
func OwnerRole(roles membership.RoleStore, scope permissions.Scope) Predicate {
	return PredicateFunc(func(ctx context.Context, ec *EvalContext, actor Actor, obj Object) (bool, error) {
		role, err := resolveRole(ctx, ec, roles, scope, actor, obj)
		if err != nil {
			return false, err
		}
		return role != nil && role.IsOwner, nil
	})
}

// CanModifyAssociatedRole authorizes when the actor's resolved role is an
// owner role, or when the target object's own associated role is not: only
// owners may touch owner-held memberships and invitations, which blocks a
// non-owner from elevating or removing an owner.
//
// Policies pair it with HasPermission, which resolves and memoizes the
// actor's role first. If a policy misorders the pair the predicate resolves
// the role itself through the same memo path; misordering costs one extra
// lookup, never a wrong answer.
func CanModifyAssociatedRole(roles membership.RoleStore, scope permissions.Scope) Predicate {
	return PredicateFunc(func(ctx context.Context, ec *EvalContext, actor Actor, obj Object) (bool, error) {
		if !isAuthenticated(actor) || obj == nil {
			return false, nil
		}

		actorRole, err := resolveRole(ctx, ec, roles, scope, actor, obj)
		if err != nil {
			return false, err
		}
		if actorRole != nil && actorRole.IsOwner {
			return true, nil
		}

		carrier, ok := obj.(RoleCarrier)
		if !ok {
			return false, nil
		}
		target := carrier.AssociatedRole()
		return target == nil || !target.IsOwner, nil
	})
}

// resolveRole resolves the actor's role on the object's access resource
// through the EvalContext memo, hitting the store only on the first call per
// (actor, scope, resource) key within a decision.
func resolveRole(ctx context.Context, ec *EvalContext, roles membership.RoleStore, scope permissions.Scope, actor Actor, obj Object) (*membership.Role, error) {
	if !isAuthenticated(actor) || obj == nil {
		return nil, nil
	}

	k := roleKey{actorID: actor.ID(), scope: scope, resourceID: accessResource(obj)}
	if role, ok := ec.cachedRole(k); ok {
		return role, nil
	}

	role, err := roles.Resolve(ctx, k.actorID, k.resourceID)
	if err != nil {
		return nil, err
	}
	ec.storeRole(k, role)
	return role, nil
}
