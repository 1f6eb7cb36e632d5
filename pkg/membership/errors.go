package membership

import "errors"

var (
	// ErrRoleNotEditable is returned when mutating an owner or locked role.
	ErrRoleNotEditable = errors.New("membership: role is not editable")

	// ErrAlreadyMember is returned when creating a duplicate membership.
	ErrAlreadyMember = errors.New("membership: user is already a member")

	// ErrRoleNotFound is returned by stores when a referenced role does not exist.
	ErrRoleNotFound = errors.New("membership: role not found")
)
