package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHousekeepingCleanup(t *testing.T) {
	f := newFixture(t)
	staleID := f.signup(t, "stale@example.com", "Sturdy-Pass-1")
	freshID := f.signup(t, "fresh@example.com", "Sturdy-Pass-1")

	now := time.Now().UTC()
	cfg := f.svc.Config

	// Backdate one user's token and verification past their windows.
	require.NoError(t, f.store.Users().SetMagicLinkToken(context.Background(), staleID, "stale-link",
		now.Add(-cfg.MagicLinkTTL-time.Hour)))
	require.NoError(t, f.store.Users().MarkEmailVerified(context.Background(), staleID,
		now.Add(-cfg.VerifiedRenewalWindow-time.Hour)))

	require.NoError(t, f.store.Users().SetMagicLinkToken(context.Background(), freshID, "fresh-link", now))
	require.NoError(t, f.store.Users().MarkEmailVerified(context.Background(), freshID, now))

	hk := NewHousekeepingService(f.store, slog.Default(), time.Hour, cfg)
	hk.cleanup()

	stale, err := f.store.Users().GetUserByID(context.Background(), staleID)
	require.NoError(t, err)
	require.Nil(t, stale.MagicLinkToken)
	require.False(t, stale.EmailVerified)

	fresh, err := f.store.Users().GetUserByID(context.Background(), freshID)
	require.NoError(t, err)
	require.NotNil(t, fresh.MagicLinkToken)
	require.True(t, fresh.EmailVerified)
}

func TestHousekeepingStartStop(t *testing.T) {
	f := newFixture(t)

	hk := NewHousekeepingService(f.store, slog.Default(), time.Hour, f.svc.Config)
	hk.Start()
	hk.Stop()
}
