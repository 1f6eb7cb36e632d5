package invitation

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition is the sentinel all illegal state changes unwrap to.
	ErrInvalidTransition = errors.New("invitation: invalid state transition")

	// ErrNotForThisUser is returned when the acting identity does not match
	// the invitation's recipient.
	ErrNotForThisUser = errors.New("invitation: invitation is not for this user")

	// ErrResendBlocked is returned when the anti-spam policy blocks a resend.
	ErrResendBlocked = errors.New("invitation: resend blocked by anti-spam policy")

	// ErrNotFound is returned by stores when an invitation does not exist.
	ErrNotFound = errors.New("invitation: invitation not found")

	// ErrInvalidToken is returned when an invitation token fails verification.
	ErrInvalidToken = errors.New("invitation: invalid invitation token")
)

// StateError describes an illegal transition attempt on an invitation.
type StateError struct {
	From   Status
	To     Status
	Reason error
}

func (e *StateError) Error() string {
	if e.Reason != nil {
		return fmt.Sprintf("invitation: cannot move from %q to %q: %v", e.From, e.To, e.Reason)
	}
	return fmt.Sprintf("invitation: cannot move from %q to %q", e.From, e.To)
}

func (e *StateError) Unwrap() []error {
	if e.Reason != nil {
		return []error{ErrInvalidTransition, e.Reason}
	}
	return []error{ErrInvalidTransition}
}

// IsStateError reports whether err is an illegal invitation transition.
func IsStateError(err error) bool {
	var e *StateError
	return errors.As(err, &e)
}
