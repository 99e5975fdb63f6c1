package repository

import (
	"context"
	"database/sql"

	"github.com/seatwell/seatwell-api/internal/model"
)

// ContentRepo stores editable site copy keyed by stable strings.
type ContentRepo struct{ db *sql.DB }

func NewContentRepo(db *sql.DB) *ContentRepo { return &ContentRepo{db: db} }

const contentCols = "id,content_key,content_value,content_type,updated_at"

// List returns all content blocks.
func (r *ContentRepo) List(ctx context.Context) ([]model.SiteContent, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+contentCols+" FROM site_content ORDER BY content_key ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := make([]model.SiteContent, 0, 16)
	for rows.Next() {
		var c model.SiteContent
		if err := rows.Scan(&c.ID, &c.Key, &c.Value, &c.ContentType, &c.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// GetByKey fetches one block.  sql.ErrNoRows when the key is unknown.
func (r *ContentRepo) GetByKey(ctx context.Context, key string) (model.SiteContent, error) {
	var c model.SiteContent
	err := r.db.QueryRowContext(ctx,
		"SELECT "+contentCols+" FROM site_content WHERE content_key=? LIMIT 1",
		key).Scan(&c.ID, &c.Key, &c.Value, &c.ContentType, &c.UpdatedAt)
	return c, err
}

// Upsert creates or replaces the block under key.  The unique index
// on content_key makes this a single statement.
func (r *ContentRepo) Upsert(ctx context.Context, key, value, contentType string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO site_content (content_key, content_value, content_type) VALUES (?,?,?)
		 ON DUPLICATE KEY UPDATE content_value=VALUES(content_value), content_type=VALUES(content_type)`,
		key, value, contentType)
	return err
}
