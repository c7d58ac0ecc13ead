//go:build !integration

package usecase_test

import (
	"context"
	"reflect"
	"sync"

	"hospitalrun-locale/internal/domain"
	"hospitalrun-locale/internal/domain/model"

	"github.com/rs/zerolog"
)

func newTestLogger() *zerolog.Logger { l := zerolog.Nop(); return &l }

// ---------------- current user ----------------

type MockCurrentUser struct {
	user *model.User
}

func (m *MockCurrentUser) CurrentUser(ctx context.Context) (*model.User, bool) {
	if m.user == nil {
		return nil, false
	}
	return m.user, true
}

func userNamed(name string) *MockCurrentUser { return &MockCurrentUser{user: &model.User{Name: name}} }

func noUser() *MockCurrentUser { return &MockCurrentUser{} }

// ---------------- config db ----------------

// MockConfigDB records calls the way a stubbed document database would.
type MockConfigDB struct {
	mu       sync.Mutex
	docs     map[string]*model.PreferencesDocument
	GetErr   error
	PutErr   error
	GetCalls []string
	PutCalls []*model.PreferencesDocument
}

func NewMockConfigDB() *MockConfigDB {
	return &MockConfigDB{docs: map[string]*model.PreferencesDocument{}}
}

func (m *MockConfigDB) Seed(doc *model.PreferencesDocument) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[doc.ID] = doc.Clone()
}

func (m *MockConfigDB) Get(ctx context.Context, id string) (*model.PreferencesDocument, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetCalls = append(m.GetCalls, id)
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	d, ok := m.docs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return d.Clone(), nil
}

func (m *MockConfigDB) Put(ctx context.Context, doc *model.PreferencesDocument) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PutCalls = append(m.PutCalls, doc.Clone())
	if m.PutErr != nil {
		return m.PutErr
	}
	m.docs[doc.ID] = doc.Clone()
	return nil
}

// ---------------- intl & dir ----------------

type MockIntl struct{ locale []string }

func (m *MockIntl) SetLocale(locale []string) { m.locale = append([]string(nil), locale...) }
func (m *MockIntl) Locale() []string          { return m.locale }

type MockDir struct{ dir model.Direction }

func (m *MockDir) SetDir(dir model.Direction) { m.dir = dir }
func (m *MockDir) Dir() model.Direction       { return m.dir }

func sameDocument(a, b *model.PreferencesDocument) bool {
	return a.ID == b.ID && reflect.DeepEqual(a.Users, b.Users)
}
