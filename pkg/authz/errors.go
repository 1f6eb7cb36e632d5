package authz

import "errors"

var (
	// ErrNotAuthenticated is returned when an anonymous actor is denied.
	// Surfaced to clients as "authentication required".
	ErrNotAuthenticated = errors.New("authz: authentication required")

	// ErrForbidden is returned when an authenticated actor is denied. It
	// deliberately carries no detail about which permission was missing.
	ErrForbidden = errors.New("authz: not permitted to perform this action")
)
