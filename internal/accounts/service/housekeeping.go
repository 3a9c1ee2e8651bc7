package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/store"
)

// HousekeepingService periodically clears expired token pairs and drops
// stale email verifications, so tokens that were never consumed cannot
// linger in the database past their validity window.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration
	Config   Config

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a housekeeping worker. If interval is 0
// or negative, defaults to 1 hour.
func NewHousekeepingService(st store.Store, logger *slog.Logger, interval time.Duration, cfg Config) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Store:    st,
		Logger:   logger,
		Interval: interval,
		Config:   cfg.withDefaults(),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker. Non-blocking; call Stop to shut it
// down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop shuts down the worker, blocking until any in-progress sweep has
// finished.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run a sweep immediately on startup.
	s.cleanup()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

// cleanup performs one sweep. The two passes are independent; a failure in
// one does not stop the other.
func (s *HousekeepingService) cleanup() {
	ctx := context.Background()
	now := time.Now().UTC()

	cleared, err := s.Store.Users().ClearExpiredTokens(ctx,
		now.Add(-s.Config.VerifyEmailTTL),
		now.Add(-s.Config.MagicLinkTTL),
		now.Add(-s.Config.ResetPasswordTTL),
	)
	if err != nil {
		s.Logger.Error("failed to clear expired tokens", "error", err)
	} else if cleared > 0 {
		s.Logger.Debug("cleared expired tokens", "users", cleared)
	}

	expiredVerifications, err := s.Store.Users().ExpireVerificationsBefore(ctx,
		now.Add(-s.Config.VerifiedRenewalWindow))
	if err != nil {
		s.Logger.Error("failed to expire stale verifications", "error", err)
	} else if expiredVerifications > 0 {
		s.Logger.Debug("expired stale email verifications", "users", expiredVerifications)
	}
}
