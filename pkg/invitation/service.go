package invitation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/authzkit/pkg/membership"
)

// Service drives the invitation lifecycle. All operations load the current
// record, verify the transition against the state machine and persist through
// the store; the store's transactional guarantees keep transitions atomic.
type Service struct {
	store       Store
	memberships membership.Creator
	cfg         Config
	now         func() time.Time
}

// Option configures optional service settings.
type Option func(*Service)

// WithClock replaces the service clock, used by tests to drive the anti-spam
// window deterministically.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates the invitation service. Panics on nil dependencies to
// fail fast during initialization.
func NewService(store Store, memberships membership.Creator, cfg Config, opts ...Option) *Service {
	if store == nil {
		panic("invitation: Store is required")
	}
	if memberships == nil {
		panic("invitation: membership.Creator is required")
	}

	s := &Service{
		store:       store,
		memberships: memberships,
		cfg:         cfg,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Accept moves a PENDING invitation to ACCEPTED for its recipient and creates
// the corresponding membership. The invitation must be addressed to actor by
// user id or email.
func (s *Service) Accept(ctx context.Context, id uuid.UUID, actor Identity) (*Invitation, error) {
	inv, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !inv.Status.CanTransition(StatusAccepted) {
		return nil, &StateError{From: inv.Status, To: StatusAccepted}
	}
	if !inv.IsForIdentity(actor) {
		return nil, &StateError{From: inv.Status, To: StatusAccepted, Reason: ErrNotForThisUser}
	}

	if _, err := s.memberships.Create(ctx, actor.UserID, inv.ResourceID, inv.RoleID); err != nil {
		return nil, err
	}

	userID := actor.UserID
	inv.UserID = &userID
	inv.Status = StatusAccepted
	if err := s.store.Update(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// AcceptByToken resolves the invitation from a signed token and accepts it
// for actor. The token email must still match the actor when the invitation
// has no bound user yet.
func (s *Service) AcceptByToken(ctx context.Context, token string, actor Identity) (*Invitation, error) {
	payload, err := ParseToken(token, s.cfg.SecretKey)
	if err != nil {
		return nil, err
	}
	return s.Accept(ctx, payload.InvitationID, actor)
}

// Revoke moves a PENDING invitation to REVOKED, stamping who revoked it and
// when. Authorization of revokedBy is the caller's concern (see the policy
// tables in pkg/policies).
func (s *Service) Revoke(ctx context.Context, id, revokedBy uuid.UUID) (*Invitation, error) {
	inv, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !inv.Status.CanTransition(StatusRevoked) {
		return nil, &StateError{From: inv.Status, To: StatusRevoked}
	}

	now := s.now()
	inv.Status = StatusRevoked
	inv.RevokedBy = &revokedBy
	inv.RevokedAt = &now
	if err := s.store.Update(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// Deny moves a PENDING invitation to DENIED. Only the recipient may deny; no
// membership is created.
func (s *Service) Deny(ctx context.Context, id uuid.UUID, actor Identity) (*Invitation, error) {
	inv, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !inv.Status.CanTransition(StatusDenied) {
		return nil, &StateError{From: inv.Status, To: StatusDenied}
	}
	if !inv.IsForIdentity(actor) {
		return nil, &StateError{From: inv.Status, To: StatusDenied, Reason: ErrNotForThisUser}
	}

	inv.Status = StatusDenied
	if err := s.store.Update(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// Resend records another email send for a PENDING invitation without changing
// its state. Blocked as spam once the counter reaches the resend limit or when
// the previous send is more recent than the resend window. Actually sending
// the email is the caller's side effect.
func (s *Service) Resend(ctx context.Context, id, resentBy uuid.UUID) (*Invitation, error) {
	inv, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if inv.Status != StatusPending {
		return nil, &StateError{From: inv.Status, To: StatusPending}
	}

	if inv.NumEmailsSent >= s.cfg.ResendLimit {
		return nil, ErrResendBlocked
	}

	now := s.now()
	lastSend := inv.CreatedAt
	if inv.ResentAt != nil {
		lastSend = *inv.ResentAt
	}
	if now.Sub(lastSend) < s.cfg.ResendWindow {
		return nil, ErrResendBlocked
	}

	inv.NumEmailsSent++
	inv.ResentAt = &now
	if err := s.store.Update(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// TokenFor signs a token for the invitation with the service's secret key.
func (s *Service) TokenFor(inv *Invitation) (string, error) {
	return Token(inv, s.cfg.SecretKey)
}
