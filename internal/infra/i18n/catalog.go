package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed locales
var LocalesFS embed.FS

// Catalog holds flat key -> format translations per language code.
type Catalog struct {
	messages map[string]map[string]string
}

// LoadCatalog reads every locales/<code>.yaml file in fsys.
func LoadCatalog(fsys fs.FS) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, "locales")
	if err != nil {
		return nil, fmt.Errorf("read locales dir: %w", err)
	}
	c := &Catalog{messages: make(map[string]map[string]string, len(entries))}
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".yaml" {
			continue
		}
		code := strings.TrimSuffix(e.Name(), ".yaml")
		data, err := fs.ReadFile(fsys, path.Join("locales", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read translation file %s: %w", e.Name(), err)
		}
		if err := c.add(code, data); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func newCatalogFromBytes(files map[string][]byte) (*Catalog, error) {
	c := &Catalog{messages: make(map[string]map[string]string, len(files))}
	for code, data := range files {
		if err := c.add(code, data); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Catalog) add(code string, data []byte) error {
	var translations map[string]string
	if err := yaml.Unmarshal(data, &translations); err != nil {
		return fmt.Errorf("failed to parse translation file %s: %w", code, err)
	}
	c.messages[code] = translations
	return nil
}

// Languages returns the catalog's language codes, sorted.
func (c *Catalog) Languages() []string {
	out := make([]string, 0, len(c.messages))
	for code := range c.messages {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

func (c *Catalog) Has(code string) bool {
	_, ok := c.messages[code]
	return ok
}

// Translate walks locale in order and formats the first translation found.
// The key itself is returned when no language has it.
func (c *Catalog) Translate(locale []string, key string, args ...any) string {
	for _, code := range locale {
		format, ok := c.messages[code][key]
		if !ok {
			continue
		}
		if len(args) > 0 {
			return fmt.Sprintf(format, args...)
		}
		return format
	}
	return key
}
