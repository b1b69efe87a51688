package logger

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type OperationIDKey string

// OpIDKey is the context key under which the current operation ID is stored.
const OpIDKey OperationIDKey = "opID"

// OpIDHeader is the response header carrying the operation ID back to callers.
const OpIDHeader = "X-Operation-ID"

// OperationIDMiddleware stores an operation ID in the request context and
// echoes it in the X-Operation-ID response header.
func OperationIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := WithOpID(r.Context())
		*r = *r.WithContext(ctx)
		w.Header().Set(OpIDHeader, GetOperationID(ctx))
		next.ServeHTTP(w, r)
	})
}

// WithOpID returns a context with an operation ID set, generating a new one
// if the context does not carry one already.
func WithOpID(ctx context.Context) context.Context {
	if opID := ctx.Value(OpIDKey); opID != nil {
		return ctx
	}
	return context.WithValue(ctx, OpIDKey, uuid.New().String())
}

// GetOperationID returns the operation ID stored in ctx, or "" when unset.
func GetOperationID(ctx context.Context) string {
	opID, ok := ctx.Value(OpIDKey).(string)
	if !ok {
		return ""
	}
	return opID
}
