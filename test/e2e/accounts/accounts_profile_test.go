package accounts_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/accounts/pkg/accountsdk"
)

func strptr(s string) *string { return &s }

// TestUpdateProfileMerges verifies PATCH semantics: supplied fields change,
// omitted fields survive, explicit empty strings clear.
func TestUpdateProfileMerges(t *testing.T) {
	env, cleanup := setupAccountsServer(t)
	defer cleanup()

	client := accountsdk.NewSDKClient(env.BaseURL)
	session := signupAndVerify(t, client, env, "victor@example.com")

	me, err := session.UpdateProfile(context.Background(), accountsdk.UpdateProfileRequest{
		GivenName:   strptr("Victor"),
		FamilyName:  strptr("Vale"),
		PhoneNumber: strptr("+61400000000"),
	})
	require.NoError(t, err)
	require.Equal(t, "Victor", me.GivenName)
	require.Equal(t, "Vale", me.FamilyName)
	require.Equal(t, "+61400000000", me.PhoneNumber)

	// Omitted fields survive a later patch.
	me, err = session.UpdateProfile(context.Background(), accountsdk.UpdateProfileRequest{
		Job: strptr("Brewer"),
	})
	require.NoError(t, err)
	require.Equal(t, "Victor", me.GivenName)
	require.Equal(t, "Brewer", me.Job)

	// An explicit empty string clears.
	me, err = session.UpdateProfile(context.Background(), accountsdk.UpdateProfileRequest{
		PhoneNumber: strptr(""),
	})
	require.NoError(t, err)
	require.Empty(t, me.PhoneNumber)
	require.Equal(t, "Victor", me.GivenName)

	// Me reflects the stored state.
	fetched, err := session.Me(context.Background())
	require.NoError(t, err)
	require.Equal(t, me, fetched)
}

// TestRefreshVerificationFresh verifies a recent mailbox proof needs no
// renewal.
func TestRefreshVerificationFresh(t *testing.T) {
	env, cleanup := setupAccountsServer(t)
	defer cleanup()

	client := accountsdk.NewSDKClient(env.BaseURL)
	session := signupAndVerify(t, client, env, "wendy@example.com")

	renewalRequired, err := session.RefreshVerification(context.Background())
	require.NoError(t, err)
	require.False(t, renewalRequired, "A fresh proof should not need renewal")
}

// TestRefreshVerificationStale verifies a proof older than the renewal
// window drops the verified flag and asks for a fresh one.
func TestRefreshVerificationStale(t *testing.T) {
	env, cleanup := setupAccountsServer(t)
	defer cleanup()

	client := accountsdk.NewSDKClient(env.BaseURL)
	session := signupAndVerify(t, client, env, "xavier@example.com")

	// Backdate the proof past the renewal window.
	u, err := env.Store.Users().GetUserByEmail(context.Background(), "xavier@example.com")
	require.NoError(t, err)
	stale := time.Now().UTC().Add(-91 * 24 * time.Hour)
	require.NoError(t, env.Store.Users().MarkEmailVerified(context.Background(), u.ID, stale))

	renewalRequired, err := session.RefreshVerification(context.Background())
	require.NoError(t, err)
	require.True(t, renewalRequired, "A stale proof should need renewal")

	me, err := session.Me(context.Background())
	require.NoError(t, err)
	require.False(t, me.EmailVerified, "The verified flag should be dropped")

	// The regular PIN flow restores it.
	sent, err := client.SendVerifyEmail(context.Background(), "xavier@example.com", false)
	require.NoError(t, err)
	require.True(t, sent)
	pin := extractPIN(t, env.Mailer.last(t).Body)
	require.NoError(t, client.VerifyEmail(context.Background(), "xavier@example.com", pin))

	renewalRequired, err = session.RefreshVerification(context.Background())
	require.NoError(t, err)
	require.False(t, renewalRequired)
}

// TestMeRequiresSession verifies the profile endpoints reject requests
// without a valid session token.
func TestMeRequiresSession(t *testing.T) {
	env, cleanup := setupAccountsServer(t)
	defer cleanup()

	client := accountsdk.NewSDKClient(env.BaseURL)

	_, err := client.NewSessionFromToken("").Me(context.Background())
	require.Error(t, err)

	_, err = client.NewSessionFromToken("garbage").UpdateProfile(context.Background(), accountsdk.UpdateProfileRequest{
		GivenName: strptr("Nope"),
	})
	require.Error(t, err)
}
