package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"hospitalrun-locale/internal/domain"
	"hospitalrun-locale/internal/domain/model"
	"hospitalrun-locale/internal/domain/ports/repository"
	"hospitalrun-locale/internal/infra/metrics"
)

var _ repository.ConfigDocumentStore = (*DocumentStore)(nil)

// DocumentStore keeps config documents as JSONB rows in config_documents.
type DocumentStore struct {
	pool *pgxpool.Pool
	tm   repository.TransactionManager
}

func NewDocumentStore(pool *pgxpool.Pool, tm repository.TransactionManager) *DocumentStore {
	return &DocumentStore{pool: pool, tm: tm}
}

func (r *DocumentStore) Get(ctx context.Context, id string) (*model.PreferencesDocument, error) {
	const q = `SELECT rev, body FROM config_documents WHERE id=$1;`
	exec, err := getExecutor(r.pool, repository.NoTX)
	if err != nil {
		return nil, err
	}
	var (
		rev  string
		body []byte
	)
	if err := exec.QueryRow(ctx, q, id).Scan(&rev, &body); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			metrics.ObserveStoreOp("postgres", "get", nil, true)
			return nil, domain.ErrNotFound
		}
		metrics.ObserveStoreOp("postgres", "get", err, false)
		return nil, fmt.Errorf("get document %s: %w", id, err)
	}
	doc, err := decodeDocument(id, rev, body)
	metrics.ObserveStoreOp("postgres", "get", err, false)
	return doc, err
}

// Put upserts the document with the next revision. The current row is locked for
// the duration of the transaction so concurrent writers serialize; last write wins.
func (r *DocumentStore) Put(ctx context.Context, doc *model.PreferencesDocument) error {
	if doc == nil || doc.ID == "" {
		return domain.ErrInvalidArgument
	}
	body, err := encodeDocument(doc)
	if err != nil {
		return err
	}

	const (
		qLock   = `SELECT rev FROM config_documents WHERE id=$1 FOR UPDATE;`
		qUpsert = `
INSERT INTO config_documents (id, rev, body, updated_at)
VALUES ($1, $2, $3, NOW())
ON CONFLICT (id) DO UPDATE SET rev=$2, body=$3, updated_at=NOW();`
	)
	err = r.tm.WithTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(ctx context.Context, tx repository.Tx) error {
		exec, err := getExecutor(r.pool, tx)
		if err != nil {
			return err
		}
		var prev string
		if err := exec.QueryRow(ctx, qLock, doc.ID).Scan(&prev); err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return err
		}
		_, err = exec.Exec(ctx, qUpsert, doc.ID, model.NextRevision(prev), body)
		return err
	})
	metrics.ObserveStoreOp("postgres", "put", err, false)
	if err != nil {
		return fmt.Errorf("put document %s: %w", doc.ID, err)
	}
	return nil
}

// encodeDocument stores the body without _rev; the column is authoritative.
func encodeDocument(doc *model.PreferencesDocument) ([]byte, error) {
	c := doc.Clone()
	c.Rev = ""
	b, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode document %s: %w", doc.ID, err)
	}
	return b, nil
}

func decodeDocument(id, rev string, body []byte) (*model.PreferencesDocument, error) {
	var doc model.PreferencesDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decode document %s: %w", id, err)
	}
	doc.ID = id
	doc.Rev = rev
	return &doc, nil
}
