package api

import (
	"context"
)

type keyType string

const adminKey keyType = "admin"

// ctxWithAdmin marks the request as an authenticated admin session.
func ctxWithAdmin(ctx context.Context) context.Context {
	return context.WithValue(ctx, adminKey, true)
}
