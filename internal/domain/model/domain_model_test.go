//go:build !integration

package model

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestPreferencesDocument_JSONShape(t *testing.T) {
	raw := `{"_id":"preferences","_rev":"3-abc","hradmin":{"intl":"es"},"testuser@test.ts":{"intl":"fr"}}`

	var doc PreferencesDocument
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if doc.ID != "preferences" || doc.Rev != "3-abc" {
		t.Errorf("id/rev = %q/%q", doc.ID, doc.Rev)
	}
	if got := doc.UserNames(); !reflect.DeepEqual(got, []string{"hradmin", "testuser@test.ts"}) {
		t.Errorf("users = %v", got)
	}

	out, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var back map[string]any
	_ = json.Unmarshal(out, &back)
	if back["_id"] != "preferences" || back["_rev"] != "3-abc" {
		t.Errorf("marshalled = %s", out)
	}
}

func TestPreferencesDocument_FreshDocumentCarriesOnlyItsID(t *testing.T) {
	out, err := json.Marshal(NewPreferencesDocument("preferences"))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != `{"_id":"preferences"}` {
		t.Errorf("got %s", out)
	}
}

func TestPreferencesDocument_SetLanguageLeavesOthersAlone(t *testing.T) {
	doc := NewPreferencesDocument("preferences")
	doc.SetLanguage("hradmin", "es")
	doc.SetLanguage("testuser@test.ts", "fr")

	doc.SetLanguage("hradmin", "ru")

	if lang, _ := doc.Language("hradmin"); lang != "ru" {
		t.Errorf("hradmin = %q", lang)
	}
	if lang, _ := doc.Language("testuser@test.ts"); lang != "fr" {
		t.Errorf("testuser = %q", lang)
	}
	if _, ok := doc.Language("nobody@x"); ok {
		t.Error("unexpected entry for nobody@x")
	}
}

func TestPreferencesDocument_CloneIsDeep(t *testing.T) {
	doc := NewPreferencesDocument("preferences")
	doc.SetLanguage("a", "es")
	c := doc.Clone()
	c.SetLanguage("a", "ar")
	if lang, _ := doc.Language("a"); lang != "es" {
		t.Errorf("original changed through clone: %q", lang)
	}
	var nilDoc *PreferencesDocument
	if nilDoc.Clone() != nil {
		t.Error("nil clone should be nil")
	}
	if _, ok := nilDoc.Language("a"); ok {
		t.Error("nil document has no entries")
	}
}

func TestPreferencesDocument_RejectsMalformedEntries(t *testing.T) {
	var doc PreferencesDocument
	err := json.Unmarshal([]byte(`{"_id":"preferences","hradmin":"es"}`), &doc)
	if err == nil || !strings.Contains(err.Error(), "hradmin") {
		t.Fatalf("expected error naming the entry, got %v", err)
	}
}

func TestLocalePreference(t *testing.T) {
	if got := LocalePreference("fr", "en"); !reflect.DeepEqual(got, []string{"fr", "en"}) {
		t.Errorf("got %v", got)
	}
	if got := LocalePreference("en", "en"); !reflect.DeepEqual(got, []string{"en"}) {
		t.Errorf("got %v", got)
	}
	if got := LocalePreference("", "en"); !reflect.DeepEqual(got, []string{"en"}) {
		t.Errorf("got %v", got)
	}
}

func TestNextRevision(t *testing.T) {
	r1 := NextRevision("")
	if RevisionGeneration(r1) != 1 {
		t.Errorf("first revision = %q", r1)
	}
	r2 := NextRevision(r1)
	if RevisionGeneration(r2) != 2 {
		t.Errorf("second revision = %q", r2)
	}
	if RevisionGeneration("garbage") != 0 || RevisionGeneration("x-1") != 0 {
		t.Error("unparseable revisions should count as generation 0")
	}
}
