package membership

import (
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/authzkit/pkg/permissions"
)

// Role is a named, ordered permission set assignable to members of a resource.
// Its permission set is always a validated, dependency-closed subset of the
// scope's catalog.
type Role struct {
	ID          uuid.UUID
	Name        string
	Slug        string
	Scope       permissions.Scope
	Permissions []permissions.Permission
	IsOwner     bool
	Editable    bool
	Order       int
}

// HasPermission reports whether the role grants p.
func (r *Role) HasPermission(p permissions.Permission) bool {
	if r == nil {
		return false
	}
	return slices.Contains(r.Permissions, p)
}

// NewRole creates an editable role after validating the permission set
// against the scope's catalog.
func NewRole(scope permissions.Scope, name string, perms []permissions.Permission) (Role, error) {
	validated, err := permissions.Validate(scope, perms)
	if err != nil {
		return Role{}, err
	}

	return Role{
		ID:          uuid.New(),
		Name:        name,
		Slug:        slugify(name),
		Scope:       scope,
		Permissions: slices.Clone(validated),
		Editable:    true,
	}, nil
}

// NewOwnerRole creates the default owner role assigned when a resource is
// provisioned. It carries the scope's full catalog and is not editable.
func NewOwnerRole(scope permissions.Scope, name string) Role {
	return Role{
		ID:          uuid.New(),
		Name:        name,
		Slug:        slugify(name),
		Scope:       scope,
		Permissions: permissions.Catalog(scope),
		IsOwner:     true,
		Editable:    false,
	}
}

// UpdatePermissions replaces the role's permission set after validation.
// Owner and non-editable roles are rejected.
func (r *Role) UpdatePermissions(perms []permissions.Permission) error {
	if r.IsOwner || !r.Editable {
		return ErrRoleNotEditable
	}

	validated, err := permissions.Validate(r.Scope, perms)
	if err != nil {
		return err
	}

	r.Permissions = slices.Clone(validated)
	return nil
}

func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	return strings.Join(strings.Fields(slug), "-")
}
