package invitation_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authzkit/pkg/invitation"
	"github.com/dmitrymomot/authzkit/pkg/membership"
	"github.com/dmitrymomot/authzkit/pkg/permissions"
)

type fixture struct {
	store       *invitation.MemoryStore
	memberships *membership.MemoryStore
	svc         *invitation.Service
	role        membership.Role
	now         time.Time
}

func newFixture(t *testing.T, opts ...invitation.Option) *fixture {
	t.Helper()

	f := &fixture{
		store:       invitation.NewMemoryStore(),
		memberships: membership.NewMemoryStore(),
		now:         time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	f.role = membership.NewOwnerRole(permissions.ScopeProject, "Owner")
	f.memberships.AddRole(f.role)

	cfg := invitation.DefaultConfig()
	cfg.SecretKey = "test-secret"
	opts = append([]invitation.Option{invitation.WithClock(func() time.Time { return f.now })}, opts...)
	f.svc = invitation.NewService(f.store, f.memberships, cfg, opts...)
	return f
}

func (f *fixture) pending(email string, sentAgo time.Duration, numSent int) invitation.Invitation {
	inv := invitation.New(permissions.ScopeProject, uuid.New(), f.role.ID, uuid.New(), email)
	inv.CreatedAt = f.now.Add(-sentAgo)
	inv.NumEmailsSent = numSent
	f.store.Add(inv)
	return inv
}

func TestService_Accept(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("recipient by email", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		inv := f.pending("dev@example.com", time.Hour, 0)
		actor := invitation.Identity{UserID: uuid.New(), Email: "Dev@Example.com"}

		accepted, err := f.svc.Accept(ctx, inv.ID, actor)
		require.NoError(t, err)
		assert.Equal(t, invitation.StatusAccepted, accepted.Status)
		require.NotNil(t, accepted.UserID)
		assert.Equal(t, actor.UserID, *accepted.UserID)

		exists, err := f.memberships.Exists(ctx, actor.UserID, inv.ResourceID)
		require.NoError(t, err)
		assert.True(t, exists, "accept must create the membership")
	})

	t.Run("wrong recipient", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		inv := f.pending("dev@example.com", time.Hour, 0)

		_, err := f.svc.Accept(ctx, inv.ID, invitation.Identity{UserID: uuid.New(), Email: "other@example.com"})
		require.Error(t, err)
		assert.True(t, invitation.IsStateError(err))
		assert.ErrorIs(t, err, invitation.ErrNotForThisUser)

		stored, err := f.store.Get(ctx, inv.ID)
		require.NoError(t, err)
		assert.Equal(t, invitation.StatusPending, stored.Status)
	})

	t.Run("terminal states are one-way", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		actor := invitation.Identity{UserID: uuid.New(), Email: "dev@example.com"}

		for _, status := range []invitation.Status{
			invitation.StatusAccepted,
			invitation.StatusRevoked,
			invitation.StatusDenied,
		} {
			inv := f.pending("dev@example.com", time.Hour, 0)
			inv.Status = status
			f.store.Add(inv)

			_, err := f.svc.Accept(ctx, inv.ID, actor)
			require.Error(t, err, "accept from %s must fail", status)
			assert.True(t, invitation.IsStateError(err))
			assert.ErrorIs(t, err, invitation.ErrInvalidTransition)
		}
	})

	t.Run("unknown invitation", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		_, err := f.svc.Accept(ctx, uuid.New(), invitation.Identity{UserID: uuid.New()})
		assert.ErrorIs(t, err, invitation.ErrNotFound)
	})
}

func TestService_Revoke(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("stamps revoked by and at", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		inv := f.pending("dev@example.com", time.Hour, 0)
		adminID := uuid.New()

		revoked, err := f.svc.Revoke(ctx, inv.ID, adminID)
		require.NoError(t, err)
		assert.Equal(t, invitation.StatusRevoked, revoked.Status)
		require.NotNil(t, revoked.RevokedBy)
		assert.Equal(t, adminID, *revoked.RevokedBy)
		require.NotNil(t, revoked.RevokedAt)
		assert.Equal(t, f.now, *revoked.RevokedAt)
	})

	t.Run("revoked invitation cannot be revoked again", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		inv := f.pending("dev@example.com", time.Hour, 0)

		_, err := f.svc.Revoke(ctx, inv.ID, uuid.New())
		require.NoError(t, err)

		_, err = f.svc.Revoke(ctx, inv.ID, uuid.New())
		assert.ErrorIs(t, err, invitation.ErrInvalidTransition)
	})
}

func TestService_Deny(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t)
	inv := f.pending("dev@example.com", time.Hour, 0)
	actor := invitation.Identity{UserID: uuid.New(), Email: "dev@example.com"}

	denied, err := f.svc.Deny(ctx, inv.ID, actor)
	require.NoError(t, err)
	assert.Equal(t, invitation.StatusDenied, denied.Status)

	exists, err := f.memberships.Exists(ctx, actor.UserID, inv.ResourceID)
	require.NoError(t, err)
	assert.False(t, exists, "deny must not create a membership")

	_, err = f.svc.Deny(ctx, inv.ID, actor)
	assert.ErrorIs(t, err, invitation.ErrInvalidTransition)
}

func TestService_Resend(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("allowed outside the window", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		inv := f.pending("dev@example.com", 20*time.Minute, 0)

		resent, err := f.svc.Resend(ctx, inv.ID, uuid.New())
		require.NoError(t, err)
		assert.Equal(t, 1, resent.NumEmailsSent)
		require.NotNil(t, resent.ResentAt)
		assert.Equal(t, f.now, *resent.ResentAt)
		assert.Equal(t, invitation.StatusPending, resent.Status, "resend must not change state")
	})

	t.Run("blocked at the send limit", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		inv := f.pending("dev@example.com", 24*time.Hour, 10)

		_, err := f.svc.Resend(ctx, inv.ID, uuid.New())
		assert.ErrorIs(t, err, invitation.ErrResendBlocked)

		stored, err := f.store.Get(ctx, inv.ID)
		require.NoError(t, err)
		assert.Equal(t, 10, stored.NumEmailsSent, "blocked resend must not increment")
	})

	t.Run("blocked inside the window", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		inv := f.pending("dev@example.com", time.Hour, 1)
		lastSend := f.now.Add(-time.Minute)
		inv.ResentAt = &lastSend
		f.store.Add(inv)

		_, err := f.svc.Resend(ctx, inv.ID, uuid.New())
		assert.ErrorIs(t, err, invitation.ErrResendBlocked)
	})

	t.Run("non-pending invitation", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		inv := f.pending("dev@example.com", 24*time.Hour, 0)
		inv.Status = invitation.StatusRevoked
		f.store.Add(inv)

		_, err := f.svc.Resend(ctx, inv.ID, uuid.New())
		assert.True(t, invitation.IsStateError(err))
	})
}

func TestStatus_Transitions(t *testing.T) {
	t.Parallel()

	assert.True(t, invitation.StatusPending.CanTransition(invitation.StatusAccepted))
	assert.True(t, invitation.StatusPending.CanTransition(invitation.StatusRevoked))
	assert.True(t, invitation.StatusPending.CanTransition(invitation.StatusDenied))
	assert.False(t, invitation.StatusPending.Terminal())

	for _, s := range []invitation.Status{
		invitation.StatusAccepted,
		invitation.StatusRevoked,
		invitation.StatusDenied,
	} {
		assert.True(t, s.Terminal())
		assert.False(t, s.CanTransition(invitation.StatusPending))
		assert.False(t, s.CanTransition(invitation.StatusAccepted))
	}
}

func TestService_StorePropagatesCancellation(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	inv := f.pending("dev@example.com", time.Hour, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.svc.Accept(ctx, inv.ID, invitation.Identity{UserID: uuid.New(), Email: "dev@example.com"})
	assert.ErrorIs(t, err, context.Canceled)

	stored, err := f.store.Get(context.Background(), inv.ID)
	require.NoError(t, err)
	assert.Equal(t, invitation.StatusPending, stored.Status)
}

func TestService_AcceptByToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t)
	inv := f.pending("dev@example.com", time.Hour, 0)

	token, err := f.svc.TokenFor(&inv)
	require.NoError(t, err)

	accepted, err := f.svc.AcceptByToken(ctx, token, invitation.Identity{UserID: uuid.New(), Email: "dev@example.com"})
	require.NoError(t, err)
	assert.Equal(t, invitation.StatusAccepted, accepted.Status)
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := invitation.DefaultConfig()
	assert.Equal(t, 10, cfg.ResendLimit)
	assert.Equal(t, 10*time.Minute, cfg.ResendWindow)
}
