package httpx

import "context"

type ctxKey string

const (
	// CtxKeyUserID holds the authenticated account ID (session subject).
	CtxKeyUserID ctxKey = "user_id"
	// CtxKeyEmail holds the authenticated account email.
	CtxKeyEmail ctxKey = "email"
)

// UserIDFromContext returns the authenticated account ID, or "" when the
// request was not authenticated.
func UserIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}

// EmailFromContext returns the authenticated account email, or "" when the
// request was not authenticated.
func EmailFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyEmail).(string); ok {
		return v
	}
	return ""
}
