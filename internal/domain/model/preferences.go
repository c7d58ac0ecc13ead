package model

import (
	"encoding/json"
	"fmt"
	"sort"
)

// PreferencesDocumentID is the fixed identifier of the shared preferences document.
const PreferencesDocumentID = "preferences"

// UserSettings is a single user's entry in the preferences document.
type UserSettings struct {
	Intl string `json:"intl"`
}

// PreferencesDocument maps user names to their settings. On the wire it is a flat
// object: the document's own "_id" and "_rev" fields sit next to one key per user.
type PreferencesDocument struct {
	ID    string
	Rev   string
	Users map[string]UserSettings
}

// NewPreferencesDocument returns a document carrying only its identifier.
func NewPreferencesDocument(id string) *PreferencesDocument {
	return &PreferencesDocument{
		ID:    id,
		Users: map[string]UserSettings{},
	}
}

// Language returns the stored language code for user, if any.
func (d *PreferencesDocument) Language(user string) (string, bool) {
	if d == nil {
		return "", false
	}
	s, ok := d.Users[user]
	if !ok {
		return "", false
	}
	return s.Intl, true
}

// SetLanguage sets or overwrites user's entry. Other entries are untouched.
func (d *PreferencesDocument) SetLanguage(user, code string) {
	if d.Users == nil {
		d.Users = map[string]UserSettings{}
	}
	d.Users[user] = UserSettings{Intl: code}
}

// UserNames returns the users that have an entry, sorted.
func (d *PreferencesDocument) UserNames() []string {
	names := make([]string, 0, len(d.Users))
	for n := range d.Users {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (d *PreferencesDocument) Clone() *PreferencesDocument {
	if d == nil {
		return nil
	}
	c := &PreferencesDocument{
		ID:    d.ID,
		Rev:   d.Rev,
		Users: make(map[string]UserSettings, len(d.Users)),
	}
	for k, v := range d.Users {
		c.Users[k] = v
	}
	return c
}

func (d PreferencesDocument) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(d.Users)+2)
	for name, s := range d.Users {
		out[name] = s
	}
	out["_id"] = d.ID
	if d.Rev != "" {
		out["_rev"] = d.Rev
	}
	return json.Marshal(out)
}

func (d *PreferencesDocument) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	doc := PreferencesDocument{Users: make(map[string]UserSettings, len(raw))}
	for k, v := range raw {
		switch k {
		case "_id":
			if err := json.Unmarshal(v, &doc.ID); err != nil {
				return fmt.Errorf("decode _id: %w", err)
			}
		case "_rev":
			if err := json.Unmarshal(v, &doc.Rev); err != nil {
				return fmt.Errorf("decode _rev: %w", err)
			}
		default:
			var s UserSettings
			if err := json.Unmarshal(v, &s); err != nil {
				return fmt.Errorf("decode entry %q: %w", k, err)
			}
			doc.Users[k] = s
		}
	}
	*d = doc
	return nil
}
