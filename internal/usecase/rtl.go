package usecase

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"hospitalrun-locale/internal/domain"
)

// NormalizeLanguage trims code and checks that it is a well-formed BCP 47 tag.
func NormalizeLanguage(code string) (string, error) {
	code = strings.TrimSpace(code)
	if _, err := language.Parse(code); code == "" || err != nil {
		return "", fmt.Errorf("language %q: %w", code, domain.ErrInvalidArgument)
	}
	return code, nil
}

// RTLTable is the configured set of right-to-left base languages.
type RTLTable struct {
	bases map[string]struct{}
}

// NewRTLTable builds a table from language codes. Region and script subtags are
// ignored, so "ar" also covers "ar-EG". Unparseable codes are skipped.
func NewRTLTable(codes ...string) RTLTable {
	t := RTLTable{bases: make(map[string]struct{}, len(codes))}
	for _, c := range codes {
		if b, ok := baseOf(c); ok {
			t.bases[b] = struct{}{}
		}
	}
	return t
}

// Contains reports whether code's base language is right-to-left.
func (t RTLTable) Contains(code string) bool {
	b, ok := baseOf(code)
	if !ok {
		return false
	}
	_, found := t.bases[b]
	return found
}

func baseOf(code string) (string, bool) {
	tag, err := language.Parse(strings.TrimSpace(code))
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	return base.String(), true
}
