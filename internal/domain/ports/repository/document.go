package repository

import (
	"context"

	"hospitalrun-locale/internal/domain/model"
)

// ConfigDocumentStore is the port for the document-style configuration database.
// Get returns domain.ErrNotFound when the document does not exist. Put is
// last-write-wins and assigns a fresh revision to the stored copy.
type ConfigDocumentStore interface {
	Get(ctx context.Context, id string) (*model.PreferencesDocument, error)
	Put(ctx context.Context, doc *model.PreferencesDocument) error
}
