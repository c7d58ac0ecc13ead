package web

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"hospitalrun-locale/internal/infra/logging"
	"hospitalrun-locale/internal/usecase"
)

// Translator is the read side of the translation catalog.
type Translator interface {
	Translate(locale []string, key string, args ...any) string
	Languages() []string
}

type Server struct {
	langUC usecase.LanguagePreferenceUseCase
	tr     Translator
	auth   *AuthManager
	log    *zerolog.Logger
	dev    bool
}

func NewServer(
	langUC usecase.LanguagePreferenceUseCase,
	tr Translator,
	auth *AuthManager,
	logger *zerolog.Logger,
	dev bool,
) *Server {
	return &Server{
		langUC: langUC,
		tr:     tr,
		auth:   auth,
		log:    logger,
		dev:    dev,
	}
}

// Routes builds the chi router for the service.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.traceMiddleware)
	r.Use(s.accessLog)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(s.authMiddleware)
		r.Get("/languages", s.handleLanguages)
		r.Get("/preferences/language", s.handleGetLanguage)
		r.Put("/preferences/language", s.handlePutLanguage)
		r.Get("/i18n/{key}", s.handleTranslate)
	})
	return r
}

func (s *Server) traceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(logging.WithTraceID(r.Context(), id)))
	})
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		logging.With(r.Context(), s.log).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("http request")
	})
}

// authMiddleware attaches the token subject as the current user. Requests without
// credentials continue anonymously; bad credentials are rejected.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.auth == nil {
			next.ServeHTTP(w, r)
			return
		}
		claims, err := s.auth.ParseFromRequest(r)
		if errors.Is(err, errMissingToken) {
			next.ServeHTTP(w, r)
			return
		}
		if err != nil {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		ctx := WithUser(r.Context(), claims.Subject)
		ctx = logging.WithUserName(ctx, logging.Redact(claims.Subject, s.dev))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
