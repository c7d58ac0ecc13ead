package usecase

import (
	"context"
	"errors"
	"fmt"

	"hospitalrun-locale/internal/domain"
	"hospitalrun-locale/internal/domain/model"
	"hospitalrun-locale/internal/domain/ports/adapter"
	"hospitalrun-locale/internal/domain/ports/repository"
	"hospitalrun-locale/internal/infra/logging"
	"hospitalrun-locale/internal/infra/metrics"

	"github.com/rs/zerolog"
)

// Compile-time check
var _ LanguagePreferenceUseCase = (*languagePreferenceUC)(nil)

// LanguagePreferenceUseCase resolves, persists and applies the current user's UI locale.
type LanguagePreferenceUseCase interface {
	// Load resolves the current user's language, applies it and returns it.
	// Every failure degrades to the default language.
	Load(ctx context.Context) string
	// Save stores code as the current user's language and applies it.
	Save(ctx context.Context, code string) error
	// Apply pushes code to the intl service and the direction sink.
	Apply(code string)
	Default() string
	IsRTL(code string) bool
}

type LanguagePreferenceOptions struct {
	DefaultLanguage string
	DocumentID      string
	RTL             RTLTable
}

type languagePreferenceUC struct {
	users adapter.CurrentUserProvider
	store repository.ConfigDocumentStore
	intl  adapter.IntlService
	dir   adapter.DirectionSink
	opts  LanguagePreferenceOptions
	log   *zerolog.Logger
}

func NewLanguagePreferenceUseCase(
	users adapter.CurrentUserProvider,
	store repository.ConfigDocumentStore,
	intl adapter.IntlService,
	dir adapter.DirectionSink,
	opts LanguagePreferenceOptions,
	logger *zerolog.Logger,
) *languagePreferenceUC {
	if opts.DocumentID == "" {
		opts.DocumentID = model.PreferencesDocumentID
	}
	if opts.RTL.bases == nil {
		opts.RTL = NewRTLTable("ar")
	}
	return &languagePreferenceUC{
		users: users,
		store: store,
		intl:  intl,
		dir:   dir,
		opts:  opts,
		log:   logger,
	}
}

func (u *languagePreferenceUC) Default() string { return u.opts.DefaultLanguage }

func (u *languagePreferenceUC) IsRTL(code string) bool { return u.opts.RTL.Contains(code) }

func (u *languagePreferenceUC) Load(ctx context.Context) string {
	defer logging.TraceDuration(u.log, "LanguagePreferenceUC.Load")()

	lang, source := u.resolve(ctx)
	metrics.IncLanguageResolution(source)
	u.Apply(lang)
	return lang
}

// resolve returns the language and the branch that produced it.
func (u *languagePreferenceUC) resolve(ctx context.Context) (string, string) {
	user, ok := u.users.CurrentUser(ctx)
	if !ok || user.IsZero() {
		return u.opts.DefaultLanguage, "no_user"
	}

	doc, err := u.store.Get(ctx, u.opts.DocumentID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return u.opts.DefaultLanguage, "not_found"
	case err != nil:
		logging.With(ctx, u.log).Warn().Err(err).Msg("preferences unavailable, using default language")
		return u.opts.DefaultLanguage, "store_error"
	}

	lang, ok := doc.Language(user.Name)
	if !ok || lang == "" {
		return u.opts.DefaultLanguage, "no_entry"
	}
	return lang, "user"
}

func (u *languagePreferenceUC) Save(ctx context.Context, code string) error {
	defer logging.TraceDuration(u.log, "LanguagePreferenceUC.Save")()

	user, ok := u.users.CurrentUser(ctx)
	if !ok || user.IsZero() {
		metrics.IncLanguageSave("no_user")
		return domain.ErrNoCurrentUser
	}
	code, err := NormalizeLanguage(code)
	if err != nil {
		metrics.IncLanguageSave("invalid")
		return err
	}

	doc, err := u.store.Get(ctx, u.opts.DocumentID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		doc = model.NewPreferencesDocument(u.opts.DocumentID)
	case err != nil:
		metrics.IncLanguageSave("error")
		return fmt.Errorf("load preferences: %w", err)
	}

	doc.SetLanguage(user.Name, code)
	if err := u.store.Put(ctx, doc); err != nil {
		metrics.IncLanguageSave("error")
		logging.With(ctx, u.log).Error().Err(err).Msg("failed to save language preference")
		return fmt.Errorf("save preferences: %w", err)
	}

	metrics.IncLanguageSave("ok")
	u.Apply(code)
	return nil
}

func (u *languagePreferenceUC) Apply(code string) {
	u.intl.SetLocale(model.LocalePreference(code, u.opts.DefaultLanguage))
	if u.opts.RTL.Contains(code) {
		u.dir.SetDir(model.DirRTL)
	} else {
		u.dir.SetDir(model.DirAuto)
	}
}
