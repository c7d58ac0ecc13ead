//go:build !integration

package main

import (
	"errors"
	"testing"

	"hospitalrun-locale/internal/domain"
	"hospitalrun-locale/internal/domain/model"
)

func TestApplySeed(t *testing.T) {
	t.Run("writes trimmed codes", func(t *testing.T) {
		doc := model.NewPreferencesDocument(model.PreferencesDocumentID)
		err := applySeed(doc, map[string]string{"hradmin": " es ", "testuser@test.ts": "ar-EG"})
		if err != nil {
			t.Fatalf("applySeed: %v", err)
		}
		if lang, _ := doc.Language("hradmin"); lang != "es" {
			t.Errorf("hradmin = %q", lang)
		}
		if lang, _ := doc.Language("testuser@test.ts"); lang != "ar-EG" {
			t.Errorf("testuser = %q", lang)
		}
	})

	t.Run("rejects a malformed code and leaves the document untouched", func(t *testing.T) {
		doc := model.NewPreferencesDocument(model.PreferencesDocumentID)
		doc.SetLanguage("hradmin", "fr")
		err := applySeed(doc, map[string]string{"hradmin": "ru", "other": "not a language!"})
		if !errors.Is(err, domain.ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument, got %v", err)
		}
		if lang, _ := doc.Language("hradmin"); lang != "fr" {
			t.Errorf("hradmin changed to %q", lang)
		}
		if _, ok := doc.Language("other"); ok {
			t.Error("invalid entry was written")
		}
	})

	t.Run("rejects an empty code", func(t *testing.T) {
		doc := model.NewPreferencesDocument(model.PreferencesDocumentID)
		if err := applySeed(doc, map[string]string{"hradmin": ""}); !errors.Is(err, domain.ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument, got %v", err)
		}
	})
}
