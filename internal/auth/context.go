package auth

import (
	"context"

	"thermodash/internal/models"
)

type ctxKey string

const (
	userKey ctxKey = "user"
	infoKey ctxKey = "requestInfo"
)

func WithUser(ctx context.Context, u *models.User) context.Context {
	if info, ok := ctx.Value(infoKey).(*RequestInfo); ok && u != nil {
		info.Email = u.Email
	}
	return context.WithValue(ctx, userKey, u)
}

// UserFromContext returns the user the gate resolved, or nil.
func UserFromContext(ctx context.Context) *models.User {
	u, _ := ctx.Value(userKey).(*models.User)
	return u
}

// RequestInfo is installed by the outermost middleware so that it can see
// who the request belonged to after inner handlers ran.
type RequestInfo struct {
	Email string
}

func WithRequestInfo(ctx context.Context) (context.Context, *RequestInfo) {
	info := &RequestInfo{}
	return context.WithValue(ctx, infoKey, info), info
}
