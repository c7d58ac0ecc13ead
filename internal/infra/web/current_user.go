package web

import (
	"context"

	"hospitalrun-locale/internal/domain/model"
	"hospitalrun-locale/internal/domain/ports/adapter"
)

var _ adapter.CurrentUserProvider = RequestUser{}

type userCtxKey struct{}

// RequestUser resolves the current user from the request context set by the auth middleware.
type RequestUser struct{}

func (RequestUser) CurrentUser(ctx context.Context) (*model.User, bool) {
	name, ok := ctx.Value(userCtxKey{}).(string)
	if !ok || name == "" {
		return nil, false
	}
	return &model.User{Name: name}, true
}

func WithUser(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, userCtxKey{}, name)
}
