package adapter

import (
	"context"

	"hospitalrun-locale/internal/domain/model"
)

// CurrentUserProvider yields the active user, if any, for the request in ctx.
type CurrentUserProvider interface {
	CurrentUser(ctx context.Context) (*model.User, bool)
}

// IntlService holds the ordered locale fallback list used to pick translations.
type IntlService interface {
	SetLocale(locale []string)
	Locale() []string
}

// DirectionSink receives the page-level text direction.
type DirectionSink interface {
	SetDir(dir model.Direction)
	Dir() model.Direction
}
