// Package policies defines the named authorization policy tables, one per
// resource type. A table maps each action (view, create, modify, delete,
// answer) to a fixed predicate expression built from the authz leaves and
// combinators; request handlers pick the entry for their action and hand it
// to authz.Check.
//
// Tables are built once at startup from the stores the host application
// provides:
//
//	deps := policies.Deps{Memberships: members, Roles: roles, Invitations: invites}
//	projectPolicies := policies.Project(deps)
//	memberPolicies := policies.Membership(deps, permissions.ScopeProject)
//
//	if err := authz.Check(ctx, memberPolicies.Delete, actor, target); err != nil {
//	    return err
//	}
//
// Whenever an action can affect another member's role, the table pairs
// HasPermission with CanModifyAssociatedRole so a non-owner can never elevate
// or remove an owner.
package policies
