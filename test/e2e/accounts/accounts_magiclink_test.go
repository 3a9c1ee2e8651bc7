package accounts_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/accounts/pkg/accountsdk"
)

// TestMagicLinkImplicitSignup verifies a magic link to a fresh address
// creates the account and that following the link both signs in and proves
// the mailbox.
func TestMagicLinkImplicitSignup(t *testing.T) {
	env, cleanup := setupAccountsServer(t)
	defer cleanup()

	client := accountsdk.NewSDKClient(env.BaseURL)

	require.NoError(t, client.SendMagicLink(context.Background(), "peggy@example.com"))

	msg := env.Mailer.last(t)
	require.Equal(t, "peggy@example.com", msg.To)
	require.True(t, strings.Contains(msg.Body, "/users/sign-in-with-magic-link?magic_link_token="),
		"Email should carry the sign-in deep link")
	token := extractLinkToken(t, msg.Body, "magic_link_token")

	session, err := client.LoginWithMagicLink(context.Background(), token)
	require.NoError(t, err, "Following the link should sign in")
	require.Equal(t, "peggy@example.com", session.User().Email)
	require.True(t, session.User().EmailVerified, "Following the link proves the mailbox")

	me, err := session.Me(context.Background())
	require.NoError(t, err)
	require.Equal(t, "peggy@example.com", me.Email)
}

// TestMagicLinkSingleUse verifies a consumed link cannot be replayed.
func TestMagicLinkSingleUse(t *testing.T) {
	env, cleanup := setupAccountsServer(t)
	defer cleanup()

	client := accountsdk.NewSDKClient(env.BaseURL)

	require.NoError(t, client.SendMagicLink(context.Background(), "quentin@example.com"))
	token := extractLinkToken(t, env.Mailer.last(t).Body, "magic_link_token")

	_, err := client.LoginWithMagicLink(context.Background(), token)
	require.NoError(t, err)

	_, err = client.LoginWithMagicLink(context.Background(), token)
	requireAPIError(t, err, http.StatusUnauthorized, accountsdk.ErrorCodeInvalidMagicLink)
}

// TestMagicLinkReissueInvalidatesOld verifies only the most recent link for
// an address is honored.
func TestMagicLinkReissueInvalidatesOld(t *testing.T) {
	env, cleanup := setupAccountsServer(t)
	defer cleanup()

	client := accountsdk.NewSDKClient(env.BaseURL)

	require.NoError(t, client.SendMagicLink(context.Background(), "rupert@example.com"))
	oldToken := extractLinkToken(t, env.Mailer.last(t).Body, "magic_link_token")

	require.NoError(t, client.SendMagicLink(context.Background(), "rupert@example.com"))
	newToken := extractLinkToken(t, env.Mailer.last(t).Body, "magic_link_token")
	require.NotEqual(t, oldToken, newToken)

	_, err := client.LoginWithMagicLink(context.Background(), oldToken)
	requireAPIError(t, err, http.StatusUnauthorized, accountsdk.ErrorCodeInvalidMagicLink)

	_, err = client.LoginWithMagicLink(context.Background(), newToken)
	require.NoError(t, err, "The replacement link should still work")
}

// TestMagicLinkExistingAccount verifies a password account can also sign in
// by link without disturbing its password.
func TestMagicLinkExistingAccount(t *testing.T) {
	env, cleanup := setupAccountsServer(t)
	defer cleanup()

	client := accountsdk.NewSDKClient(env.BaseURL)

	_, err := client.Signup(context.Background(), "sybil@example.com", testPassword)
	require.NoError(t, err)

	require.NoError(t, client.SendMagicLink(context.Background(), "sybil@example.com"))
	token := extractLinkToken(t, env.Mailer.last(t).Body, "magic_link_token")

	_, err = client.LoginWithMagicLink(context.Background(), token)
	require.NoError(t, err)

	_, err = client.Login(context.Background(), "sybil@example.com", testPassword)
	require.NoError(t, err, "Password login should still work after a link sign-in")
}

// TestMagicLinkGarbageToken verifies unknown and empty tokens are rejected.
func TestMagicLinkGarbageToken(t *testing.T) {
	env, cleanup := setupAccountsServer(t)
	defer cleanup()

	client := accountsdk.NewSDKClient(env.BaseURL)

	_, err := client.LoginWithMagicLink(context.Background(), "no-such-token")
	requireAPIError(t, err, http.StatusUnauthorized, accountsdk.ErrorCodeInvalidMagicLink)

	_, err = client.LoginWithMagicLink(context.Background(), "")
	requireAPIError(t, err, http.StatusUnauthorized, accountsdk.ErrorCodeInvalidMagicLink)
}
