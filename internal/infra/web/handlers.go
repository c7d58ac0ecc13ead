package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hospitalrun-locale/internal/domain"
	"hospitalrun-locale/internal/domain/model"
	"hospitalrun-locale/internal/infra/logging"
)

type languageResponse struct {
	Language string          `json:"language"`
	Locale   []string        `json:"locale"`
	Dir      model.Direction `json:"dir"`
}

type languageRequest struct {
	Language string `json:"language"`
}

type languageInfo struct {
	Code string `json:"code"`
	RTL  bool   `json:"rtl"`
}

type languagesResponse struct {
	Default   string         `json:"default"`
	Available []languageInfo `json:"available"`
}

type translationResponse struct {
	Key    string   `json:"key"`
	Text   string   `json:"text"`
	Locale []string `json:"locale"`
}

func (s *Server) describe(lang string) languageResponse {
	dir := model.DirAuto
	if s.langUC.IsRTL(lang) {
		dir = model.DirRTL
	}
	return languageResponse{
		Language: lang,
		Locale:   model.LocalePreference(lang, s.langUC.Default()),
		Dir:      dir,
	}
}

func (s *Server) handleGetLanguage(w http.ResponseWriter, r *http.Request) {
	lang := s.langUC.Load(r.Context())
	writeJSON(w, http.StatusOK, s.describe(lang))
}

func (s *Server) handlePutLanguage(w http.ResponseWriter, r *http.Request) {
	var req languageRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<10)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := s.langUC.Save(r.Context(), req.Language)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, domain.ErrInvalidArgument):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNoCurrentUser):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "preferences are being updated, retry")
	default:
		logging.With(r.Context(), s.log).Error().Err(err).Msg("save language preference")
		writeError(w, http.StatusInternalServerError, "failed to save language preference")
	}
}

func (s *Server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	codes := s.tr.Languages()
	resp := languagesResponse{
		Default:   s.langUC.Default(),
		Available: make([]languageInfo, 0, len(codes)),
	}
	for _, c := range codes {
		resp.Available = append(resp.Available, languageInfo{Code: c, RTL: s.langUC.IsRTL(c)})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	locale := s.describe(s.langUC.Load(r.Context())).Locale
	writeJSON(w, http.StatusOK, translationResponse{
		Key:    key,
		Text:   s.tr.Translate(locale, key),
		Locale: locale,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
