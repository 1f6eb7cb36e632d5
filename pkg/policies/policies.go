package policies

import (
	"github.com/dmitrymomot/authzkit/pkg/authz"
	"github.com/dmitrymomot/authzkit/pkg/invitation"
	"github.com/dmitrymomot/authzkit/pkg/membership"
	"github.com/dmitrymomot/authzkit/pkg/permissions"
)

// Deps bundles the stores the predicate leaves read through.
type Deps struct {
	Memberships membership.Store
	Roles       membership.RoleStore
	Invitations invitation.Store
}

// ProjectPolicies is the policy table for project resources.
type ProjectPolicies struct {
	View   authz.Predicate
	Create authz.Predicate
	Modify authz.Predicate
	Delete authz.Predicate
}

// Project builds the project policy table. Members and invited users may view
// a project; only owners may modify or delete it.
func Project(d Deps) ProjectPolicies {
	return ProjectPolicies{
		View: authz.Any(
			authz.Member(d.Memberships),
			authz.PendingInvitation(d.Invitations),
		),
		Create: authz.Authenticated(),
		Modify: authz.All(
			authz.Authenticated(),
			authz.OwnerRole(d.Roles, permissions.ScopeProject),
		),
		Delete: authz.All(
			authz.Authenticated(),
			authz.OwnerRole(d.Roles, permissions.ScopeProject),
		),
	}
}

// WorkspacePolicies is the policy table for workspace resources.
type WorkspacePolicies struct {
	View   authz.Predicate
	Create authz.Predicate
	Modify authz.Predicate
	Delete authz.Predicate
}

// Workspace builds the workspace policy table.
func Workspace(d Deps) WorkspacePolicies {
	return WorkspacePolicies{
		View: authz.Any(
			authz.Member(d.Memberships),
			authz.PendingInvitation(d.Invitations),
		),
		Create: authz.Authenticated(),
		Modify: authz.All(
			authz.Authenticated(),
			authz.OwnerRole(d.Roles, permissions.ScopeWorkspace),
		),
		Delete: authz.All(
			authz.Authenticated(),
			authz.OwnerRole(d.Roles, permissions.ScopeWorkspace),
		),
	}
}

// StoryPolicies is the policy table for stories. Stories navigate to their
// project for membership and role resolution.
type StoryPolicies struct {
	View    authz.Predicate
	Create  authz.Predicate
	Modify  authz.Predicate
	Delete  authz.Predicate
	Comment authz.Predicate
}

// Story builds the story policy table from the project scope catalog.
func Story(d Deps) StoryPolicies {
	return StoryPolicies{
		View: authz.HasPermission(d.Roles, permissions.ScopeProject, permissions.ViewStory),
		Create: authz.All(
			authz.Authenticated(),
			authz.HasPermission(d.Roles, permissions.ScopeProject, permissions.AddStory),
		),
		Modify: authz.All(
			authz.Authenticated(),
			authz.HasPermission(d.Roles, permissions.ScopeProject, permissions.ModifyStory),
		),
		Delete: authz.All(
			authz.Authenticated(),
			authz.HasPermission(d.Roles, permissions.ScopeProject, permissions.DeleteStory),
		),
		Comment: authz.All(
			authz.Authenticated(),
			authz.HasPermission(d.Roles, permissions.ScopeProject, permissions.CommentStory),
		),
	}
}

// MembershipPolicies is the policy table for membership objects.
type MembershipPolicies struct {
	View   authz.Predicate
	Modify authz.Predicate
	Delete authz.Predicate
}

// Membership builds the membership policy table for a scope. Modify and
// Delete pair HasPermission with CanModifyAssociatedRole so non-owners cannot
// touch owner-held memberships; Delete keeps the self-removal escape hatch, a
// member may always remove their own membership.
func Membership(d Deps, scope permissions.Scope) MembershipPolicies {
	return MembershipPolicies{
		View: authz.Member(d.Memberships),
		Modify: authz.All(
			authz.Authenticated(),
			authz.HasPermission(d.Roles, scope, permissions.CreateModifyMember),
			authz.CanModifyAssociatedRole(d.Roles, scope),
		),
		Delete: authz.All(
			authz.Authenticated(),
			authz.Any(
				authz.All(
					authz.HasPermission(d.Roles, scope, permissions.DeleteMember),
					authz.CanModifyAssociatedRole(d.Roles, scope),
				),
				authz.RelatedToUser(),
			),
		),
	}
}

// InvitationPolicies is the policy table for invitation objects. Answer
// covers both accept and deny, which only the recipient may do.
type InvitationPolicies struct {
	View   authz.Predicate
	Create authz.Predicate
	Resend authz.Predicate
	Revoke authz.Predicate
	Answer authz.Predicate
}

// Invitation builds the invitation policy table for a scope.
func Invitation(d Deps, scope permissions.Scope) InvitationPolicies {
	manage := authz.All(
		authz.Authenticated(),
		authz.HasPermission(d.Roles, scope, permissions.CreateModifyMember),
		authz.CanModifyAssociatedRole(d.Roles, scope),
	)

	return InvitationPolicies{
		View: authz.Any(
			authz.RelatedToUser(),
			authz.All(
				authz.Authenticated(),
				authz.HasPermission(d.Roles, scope, permissions.CreateModifyMember),
			),
		),
		Create: manage,
		Resend: manage,
		Revoke: manage,
		Answer: authz.All(
			authz.Authenticated(),
			authz.RelatedToUser(),
		),
	}
}

// RolePolicies is the policy table for role definitions.
type RolePolicies struct {
	View   authz.Predicate
	Modify authz.Predicate
}

// Role builds the role policy table for a scope. Role definitions are visible
// to members and editable by owners only; the permission-set validator guards
// the contents of the edit.
func Role(d Deps, scope permissions.Scope) RolePolicies {
	return RolePolicies{
		View: authz.Member(d.Memberships),
		Modify: authz.All(
			authz.Authenticated(),
			authz.OwnerRole(d.Roles, scope),
		),
	}
}
