// Package auth carries the caller's identity through request contexts and
// guards the gRPC surface.
package auth

import (
	"context"

	svcErr "github.com/oggyb/campus-connect/internal/errors"
)

type ctxKey int

const (
	userKey ctxKey = iota
	claimsKey
	operatorKey
)

// WithUser stores the caller's internal profile id.
func WithUser(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userKey, userID)
}

// UserID returns the caller's internal profile id.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userKey).(string)
	return id, ok && id != ""
}

func WithClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

// ClaimsFrom returns the verified provider token claims, if any.
func ClaimsFrom(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(claimsKey).(*Claims)
	return c, ok && c != nil
}

// WithOperator marks the request as made by an authenticated operator.
func WithOperator(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, operatorKey, name)
}

// Operator returns the operator name recorded by WithOperator.
func Operator(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(operatorKey).(string)
	return name, ok
}

// RequireUser returns the caller's profile id or an Unauthenticated status.
func RequireUser(ctx context.Context) (string, error) {
	id, ok := UserID(ctx)
	if !ok {
		return "", svcErr.Unauthenticated("authentication required")
	}
	return id, nil
}
