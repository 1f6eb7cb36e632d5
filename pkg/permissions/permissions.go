package permissions

import "slices"

// Scope is the resource category a permission catalog applies to.
type Scope string

const (
	ScopeProject   Scope = "project"
	ScopeWorkspace Scope = "workspace"
)

// Permission is a single permission identifier within a scope's catalog.
type Permission string

// Project scope permissions.
const (
	ViewStory    Permission = "view_story"
	AddStory     Permission = "add_story"
	CommentStory Permission = "comment_story"
	ModifyStory  Permission = "modify_story"
	DeleteStory  Permission = "delete_story"
)

// Workspace scope permissions.
const (
	ViewWorkspace Permission = "view_workspace"
)

// Membership management permissions, present in both scopes.
const (
	CreateModifyMember Permission = "create_modify_member"
	DeleteMember       Permission = "delete_member"
)

// catalogs maps each scope to its permissions and their prerequisites.
// The prerequisite lists are the dependency pairs the validator enforces:
// every prerequisite must be present in any set that contains the permission.
var catalogs = map[Scope]map[Permission][]Permission{
	ScopeProject: {
		ViewStory:          nil,
		AddStory:           {ViewStory},
		CommentStory:       {ViewStory},
		ModifyStory:        {ViewStory},
		DeleteStory:        {ViewStory},
		CreateModifyMember: nil,
		DeleteMember:       {CreateModifyMember},
	},
	ScopeWorkspace: {
		ViewWorkspace:      nil,
		CreateModifyMember: nil,
		DeleteMember:       {CreateModifyMember},
	},
}

// catalogOrder fixes a deterministic listing order per scope.
var catalogOrder = map[Scope][]Permission{
	ScopeProject: {
		ViewStory, AddStory, CommentStory, ModifyStory, DeleteStory,
		CreateModifyMember, DeleteMember,
	},
	ScopeWorkspace: {
		ViewWorkspace, CreateModifyMember, DeleteMember,
	},
}

// Valid reports whether s is a known scope.
func (s Scope) Valid() bool {
	_, ok := catalogs[s]
	return ok
}

// Catalog returns all permissions defined for the scope, in declaration order.
// The returned slice is a copy and safe to modify.
func Catalog(scope Scope) []Permission {
	return slices.Clone(catalogOrder[scope])
}

// Exists reports whether p is part of the scope's catalog.
func Exists(scope Scope, p Permission) bool {
	_, ok := catalogs[scope][p]
	return ok
}

// Prerequisites returns the permissions that must accompany p in any valid
// set for the scope. The returned slice is a copy and safe to modify.
func Prerequisites(scope Scope, p Permission) []Permission {
	return slices.Clone(catalogs[scope][p])
}
