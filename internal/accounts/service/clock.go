package service

import "time"

// expired reports whether a token stamped at sentAt has outlived ttl at the
// instant now. The exact boundary counts as still valid.
func expired(sentAt time.Time, ttl time.Duration, now time.Time) bool {
	return now.Sub(sentAt) > ttl
}

// pending reports whether a token/sent-at column pair represents an
// outstanding operation. The store guarantees both-or-neither, but a nil
// check on each side keeps the callers honest.
func pending(token *string, sentAt *time.Time) bool {
	return token != nil && *token != "" && sentAt != nil
}
