// Package reqid carries a correlation ID through a context so that every log
// line written for one checkout can be tied together.
//
//	ctx = reqid.Ensure(ctx)
//	log := logger.WithCtx(ctx)
//	log.Info("order recorded", "order_id", id)
//	// → level=INFO msg="order recorded" request_id=4f1c… order_id=…
package reqid

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey struct{}

// New returns a fresh random ID.
func New() string {
	return uuid.NewString()
}

// WithValue stores id in ctx.
func WithValue(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromCtx returns the ID stored in ctx, or "".
func FromCtx(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(ctxKey{}).(string); ok {
		return id
	}
	return ""
}

// Ensure returns ctx unchanged if it already carries an ID, otherwise a
// child context with a new one.
func Ensure(ctx context.Context) context.Context {
	if FromCtx(ctx) != "" {
		return ctx
	}
	return WithValue(ctx, New())
}
