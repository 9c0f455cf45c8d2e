package utils

import "context"

type contextKey string

const (
	AdminIDKey    contextKey = "admin_id"
	AdminEmailKey contextKey = "admin_email"
	RequestIDKey  contextKey = "request_id"
)

// SetAdminContext stores the authenticated admin's identity on the context
func SetAdminContext(ctx context.Context, adminID, email string) context.Context {
	ctx = context.WithValue(ctx, AdminIDKey, adminID)
	ctx = context.WithValue(ctx, AdminEmailKey, email)
	return ctx
}

func GetAdminIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(AdminIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}

func GetAdminEmailFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(AdminEmailKey)
	if v == nil {
		return "", false
	}
	email, ok := v.(string)
	return email, ok
}

// SetRequestID tags the context with an outbound correlation id
func SetRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(RequestIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}
