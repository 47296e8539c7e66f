package repository

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"shipment-photo-dashboard/internal/domain"
)

const orphanSchema = `
CREATE TABLE IF NOT EXISTS orphaned_uploads (
	id              UUID PRIMARY KEY,
	row_id          BIGINT NOT NULL,
	attachment_name TEXT NOT NULL,
	attachment      JSONB NOT NULL,
	reason          TEXT NOT NULL,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS orphaned_uploads_created_at_idx ON orphaned_uploads (created_at DESC);
`

// OrphanRepo is the ledger of files stored upstream but never attached.
type OrphanRepo struct{ db *pgxpool.Pool }

// NewOrphanRepo creates a new OrphanRepo.
func NewOrphanRepo(db *pgxpool.Pool) *OrphanRepo { return &OrphanRepo{db: db} }

// EnsureSchema creates the ledger table if it does not exist.
func (r *OrphanRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, orphanSchema); err != nil {
		return fmt.Errorf("ensure orphan schema: %w", err)
	}
	return nil
}

// Track records o. Recording the same id twice is a no-op.
func (r *OrphanRepo) Track(ctx context.Context, o domain.OrphanedUpload) error {
	att, err := json.Marshal(o.Attachment)
	if err != nil {
		return fmt.Errorf("encode attachment: %w", err)
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO orphaned_uploads (id, row_id, attachment_name, attachment, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING`,
		o.ID, o.RowID, o.Attachment.Name, att, o.Reason, o.CreatedAt,
	)
	if err != nil {
		if isUndefinedTable(err) {
			return fmt.Errorf("track orphan %s: %w", o.ID, ErrSchemaMissing)
		}
		return fmt.Errorf("track orphan %s: %w", o.ID, err)
	}
	return nil
}

// ListRecent returns up to limit orphans, newest first.
func (r *OrphanRepo) ListRecent(ctx context.Context, limit int) ([]domain.OrphanedUpload, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.Query(ctx, `
		SELECT id, row_id, attachment, reason, created_at
		FROM orphaned_uploads
		ORDER BY created_at DESC, id
		LIMIT $1`, limit)
	if err != nil {
		if isUndefinedTable(err) {
			return nil, fmt.Errorf("list orphans: %w", ErrSchemaMissing)
		}
		return nil, fmt.Errorf("list orphans: %w", err)
	}

	out, err := pgx.CollectRows(rows, scanOrphan)
	if err != nil {
		return nil, fmt.Errorf("list orphans: %w", err)
	}
	return out, nil
}

func scanOrphan(row pgx.CollectableRow) (domain.OrphanedUpload, error) {
	var (
		o   domain.OrphanedUpload
		att []byte
	)
	if err := row.Scan(&o.ID, &o.RowID, &att, &o.Reason, &o.CreatedAt); err != nil {
		return domain.OrphanedUpload{}, fmt.Errorf("scan orphan: %w", err)
	}
	if err := json.Unmarshal(att, &o.Attachment); err != nil {
		return domain.OrphanedUpload{}, fmt.Errorf("decode orphan %s attachment: %w", o.ID, err)
	}
	o.CreatedAt = o.CreatedAt.UTC()
	return o, nil
}
