package service

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/deliverability"
	"github.com/aussiebroadwan/accounts/internal/accounts/mail"
	"github.com/aussiebroadwan/accounts/internal/accounts/store/drivers/sqlite"
	"github.com/aussiebroadwan/accounts/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "accounts-service-test")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

// captureMailer records every message instead of delivering it.
type captureMailer struct {
	mu   sync.Mutex
	sent []mail.Message
	fail error
}

func (m *captureMailer) Send(_ context.Context, msg mail.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	m.sent = append(m.sent, msg)
	return nil
}

func (m *captureMailer) last(t *testing.T) mail.Message {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	require.NotEmpty(t, m.sent, "expected at least one email")
	return m.sent[len(m.sent)-1]
}

func (m *captureMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

type stubBreach struct {
	count int
	err   error
}

func (b *stubBreach) Count(_ context.Context, _ string) (int, error) {
	return b.count, b.err
}

type stubVerifier struct {
	res deliverability.Result
	err error
}

func (v *stubVerifier) Verify(_ context.Context, _ string) (deliverability.Result, error) {
	return v.res, v.err
}

type fixture struct {
	svc    *AccountService
	store  *sqlite.Store
	mailer *captureMailer
	breach *stubBreach
	deliv  *stubVerifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	mailer := &captureMailer{}
	breachStub := &stubBreach{}
	verifier := &stubVerifier{res: deliverability.Result{SafeToSend: true}}

	return &fixture{
		svc:    NewAccountService(st, mailer, breachStub, verifier, Config{}),
		store:  st,
		mailer: mailer,
		breach: breachStub,
		deliv:  verifier,
	}
}

// signup registers a user through the real flow and returns their ID.
func (f *fixture) signup(t *testing.T, email, password string) string {
	t.Helper()
	u, err := f.svc.Signup(context.Background(), email, password)
	require.NoError(t, err)
	return u.ID
}

func TestIsSecurePassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		email    string
		want     bool
	}{
		{"meets all requirements", "Password123!", "alice@example.com", true},
		{"too short", "Pa1", "alice@example.com", false},
		{"no uppercase", "password123", "alice@example.com", false},
		{"no lowercase", "PASSWORD123", "alice@example.com", false},
		{"no digit", "PasswordOnly", "alice@example.com", false},
		{"contains full email", "Xalice@example.com1", "alice@example.com", false},
		{"contains local part", "Alice2024yes", "alice@example.com", false},
		{"local part different casing", "xALICEx123", "alice@example.com", false},
		{"no email supplied", "Sturdy1234", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, isSecurePassword(tt.password, tt.email))
		})
	}
}

func TestExpired(t *testing.T) {
	t.Parallel()

	sentAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ttl := 15 * time.Minute

	require.False(t, expired(sentAt, ttl, sentAt.Add(10*time.Minute)))
	require.False(t, expired(sentAt, ttl, sentAt.Add(ttl)), "exact boundary still valid")
	require.True(t, expired(sentAt, ttl, sentAt.Add(ttl+time.Nanosecond)))
}

func TestPending(t *testing.T) {
	t.Parallel()

	token := "abc"
	empty := ""
	at := time.Now()

	require.True(t, pending(&token, &at))
	require.False(t, pending(nil, nil))
	require.False(t, pending(&token, nil))
	require.False(t, pending(nil, &at))
	require.False(t, pending(&empty, &at))
}
