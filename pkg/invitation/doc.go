// Package invitation implements the membership invitation lifecycle.
//
// An invitation starts PENDING and moves exactly once to ACCEPTED, REVOKED or
// DENIED; terminal states have no outgoing transitions. Invitations are never
// hard-deleted, they stay behind for audit and are superseded by the
// membership created on acceptance.
//
// The Service exposes the lifecycle operations:
//
//	svc := invitation.NewService(store, memberships, cfg)
//
//	inv, err := svc.Accept(ctx, invitationID, invitation.Identity{UserID: userID, Email: email})
//	inv, err = svc.Revoke(ctx, invitationID, adminID)
//	inv, err = svc.Deny(ctx, invitationID, invitation.Identity{Email: email})
//	inv, err = svc.Resend(ctx, invitationID, adminID)
//
// Resend does not change state. It is blocked, reported as ErrResendBlocked,
// once the email counter reaches Config.ResendLimit or when the last send is
// more recent than Config.ResendWindow.
//
// AcceptByToken consumes the compact signed token embedded in invitation
// emails, so recipients without an account yet can be matched by email.
package invitation
