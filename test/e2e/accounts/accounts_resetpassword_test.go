package accounts_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/accounts/pkg/accountsdk"
)

// TestPasswordResetFlow walks the recovery path: request a link, set a new
// password, and confirm the old one is dead.
func TestPasswordResetFlow(t *testing.T) {
	env, cleanup := setupAccountsServer(t)
	defer cleanup()

	client := accountsdk.NewSDKClient(env.BaseURL)

	_, err := client.Signup(context.Background(), "trent@example.com", testPassword)
	require.NoError(t, err)

	require.NoError(t, client.SendPasswordReset(context.Background(), "trent@example.com"))

	msg := env.Mailer.last(t)
	require.Equal(t, "trent@example.com", msg.To)
	token := extractLinkToken(t, msg.Body, "reset_password_token")

	session, err := client.ChangePassword(context.Background(), token, newTestPassword)
	require.NoError(t, err, "ChangePassword should sign the account in")
	require.Equal(t, "trent@example.com", session.User().Email)
	require.True(t, session.User().EmailVerified, "Completing a reset proves the mailbox")

	_, err = client.Login(context.Background(), "trent@example.com", testPassword)
	requireAPIError(t, err, http.StatusUnauthorized, accountsdk.ErrorCodeInvalidCredentials)

	_, err = client.Login(context.Background(), "trent@example.com", newTestPassword)
	require.NoError(t, err, "The new password should work")

	// A consumed token cannot be replayed.
	_, err = client.ChangePassword(context.Background(), token, "YetAnother1Pw")
	requireAPIError(t, err, http.StatusUnauthorized, accountsdk.ErrorCodeInvalidToken)
}

// TestPasswordResetUnknownEmail verifies the send reports success for an
// unregistered address without mailing anything.
func TestPasswordResetUnknownEmail(t *testing.T) {
	env, cleanup := setupAccountsServer(t)
	defer cleanup()

	client := accountsdk.NewSDKClient(env.BaseURL)

	before := env.Mailer.count()
	require.NoError(t, client.SendPasswordReset(context.Background(), "unknown@example.com"),
		"The response must not reveal whether the address is registered")
	require.Equal(t, before, env.Mailer.count(), "No mail should go out for an unknown address")
}

// TestPasswordResetWeakReplacement verifies a rejected replacement leaves
// the link usable for another attempt.
func TestPasswordResetWeakReplacement(t *testing.T) {
	env, cleanup := setupAccountsServer(t)
	defer cleanup()

	client := accountsdk.NewSDKClient(env.BaseURL)

	_, err := client.Signup(context.Background(), "uma@example.com", testPassword)
	require.NoError(t, err)

	require.NoError(t, client.SendPasswordReset(context.Background(), "uma@example.com"))
	token := extractLinkToken(t, env.Mailer.last(t).Body, "reset_password_token")

	_, err = client.ChangePassword(context.Background(), token, "weak")
	requireAPIError(t, err, http.StatusUnprocessableEntity, accountsdk.ErrorCodeWeakPassword)

	// The old password still works while the reset is incomplete.
	_, err = client.Login(context.Background(), "uma@example.com", testPassword)
	require.NoError(t, err)

	// And the same link can finish the job with an acceptable password.
	_, err = client.ChangePassword(context.Background(), token, newTestPassword)
	require.NoError(t, err)
}

// TestPasswordResetGarbageToken verifies unknown and empty tokens are
// rejected.
func TestPasswordResetGarbageToken(t *testing.T) {
	env, cleanup := setupAccountsServer(t)
	defer cleanup()

	client := accountsdk.NewSDKClient(env.BaseURL)

	_, err := client.ChangePassword(context.Background(), "no-such-token", newTestPassword)
	requireAPIError(t, err, http.StatusUnauthorized, accountsdk.ErrorCodeInvalidToken)

	_, err = client.ChangePassword(context.Background(), "", newTestPassword)
	requireAPIError(t, err, http.StatusUnauthorized, accountsdk.ErrorCodeInvalidToken)
}
