package i18n

import (
	"sync"

	"hospitalrun-locale/internal/domain/model"
	"hospitalrun-locale/internal/domain/ports/adapter"
)

var (
	_ adapter.IntlService   = (*Intl)(nil)
	_ adapter.DirectionSink = (*DocumentDirection)(nil)
)

// Intl holds the process-wide active locale fallback list. Last call wins, so
// per-request translation goes through Catalog.Translate with the request's own list.
type Intl struct {
	mu     sync.RWMutex
	locale []string
}

func NewIntl(defaultLanguage string) *Intl {
	return &Intl{locale: []string{defaultLanguage}}
}

func (i *Intl) SetLocale(locale []string) {
	cp := append([]string(nil), locale...)
	i.mu.Lock()
	i.locale = cp
	i.mu.Unlock()
}

func (i *Intl) Locale() []string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return append([]string(nil), i.locale...)
}

// DocumentDirection is the page-level dir attribute. Last call wins.
type DocumentDirection struct {
	mu  sync.RWMutex
	dir model.Direction
}

func NewDocumentDirection() *DocumentDirection {
	return &DocumentDirection{dir: model.DirAuto}
}

func (d *DocumentDirection) SetDir(dir model.Direction) {
	d.mu.Lock()
	d.dir = dir
	d.mu.Unlock()
}

func (d *DocumentDirection) Dir() model.Direction {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.dir
}
