package permissions

import (
	"errors"
	"fmt"
)

// ErrInvalidPermissions is the sentinel all validation failures unwrap to.
var ErrInvalidPermissions = errors.New("permissions: invalid permission set")

// ValidationError describes why a candidate permission set was rejected.
// Permission names the offending identifier; Missing is set when the failure
// is a missing prerequisite.
type ValidationError struct {
	Scope      Scope
	Permission Permission
	Missing    Permission
	Reason     string
}

func (e *ValidationError) Error() string {
	switch {
	case e.Missing != "":
		return fmt.Sprintf("permissions: %q requires %q in scope %q", e.Permission, e.Missing, e.Scope)
	case e.Permission != "":
		return fmt.Sprintf("permissions: %s %q in scope %q", e.Reason, e.Permission, e.Scope)
	default:
		return fmt.Sprintf("permissions: %s in scope %q", e.Reason, e.Scope)
	}
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidPermissions
}

// IsValidationError reports whether err is a permission-set validation failure.
func IsValidationError(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}
