// Package utils provides general-purpose helper utilities used across the
// transcript client and the ledger daemon: typed context keys, HMAC hashing,
// JSON response writing, the resty HTTP client, wallet token signing and
// record id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// SenderCtxKey is the key under which the auth middleware stores the wallet
// address that signed the current request.
var SenderCtxKey = contextKey("sender")

// GetSenderFromContext retrieves the signing wallet address from the context.
//
// Returns ok == false when the value is missing, empty or has an unexpected
// type.
func GetSenderFromContext(ctx context.Context) (string, bool) {
	sender, ok := ctx.Value(SenderCtxKey).(string)
	return sender, ok && sender != ""
}
