package postgres

import (
	"PortfolioBackend/internal/model"
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"k8s.io/klog/v2"
)

const Schema = `
CREATE TABLE IF NOT EXISTS photos (
	id         SERIAL PRIMARY KEY,
	name       TEXT NOT NULL UNIQUE,
	title      TEXT NOT NULL,
	file_path  TEXT NOT NULL,
	thumb_path TEXT NOT NULL DEFAULT '',
	sort_order INTEGER NOT NULL DEFAULT 0
)`

type PhotoRepository struct {
	db *sql.DB
}

func NewPhotoRepository(db *sql.DB) *PhotoRepository {
	return &PhotoRepository{db: db}
}

func (r *PhotoRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, Schema)
	return err
}

// ListPhotos returns every photo in display order.
func (r *PhotoRepository) ListPhotos(ctx context.Context) ([]model.Photo, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, file_path, thumb_path
		FROM photos
		ORDER BY sort_order ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	defer rows.Close()

	var photos []model.Photo
	for rows.Next() {
		var p model.Photo
		if err := rows.Scan(&p.ID, &p.Title, &p.Src, &p.Thumb); err != nil {
			return nil, fmt.Errorf("scan photo: %w", err)
		}
		photos = append(photos, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return photos, nil
}

// ListPaths maps photo ids to their stored file paths.
func (r *PhotoRepository) ListPaths(ctx context.Context) (map[int]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, file_path FROM photos`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	paths := map[int]string{}
	for rows.Next() {
		var id int
		var path string
		if err := rows.Scan(&id, &path); err != nil {
			return nil, err
		}
		paths[id] = path
	}
	return paths, rows.Err()
}

func (r *PhotoRepository) DeleteByIDs(ctx context.Context, tx *sql.Tx, ids []int) error {
	if len(ids) == 0 {
		return nil
	}
	ids64 := make([]int64, len(ids))
	for i, id := range ids {
		ids64[i] = int64(id)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM photos WHERE id = ANY($1)`, pq.Array(ids64))
	if err != nil {
		return fmt.Errorf("delete photos: %w", err)
	}
	n, _ := res.RowsAffected()
	klog.Infof("deleted %d photo rows whose files are gone", n)
	return nil
}

// Upsert inserts a photo or refreshes its paths and title by name.
func (r *PhotoRepository) Upsert(ctx context.Context, tx *sql.Tx, name, title, filePath, thumbPath string, sortOrder int) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO photos (name, title, file_path, thumb_path, sort_order)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (name)
		DO UPDATE SET title = excluded.title, file_path = excluded.file_path,
			thumb_path = excluded.thumb_path, sort_order = excluded.sort_order`,
		name, title, filePath, thumbPath, sortOrder)
	if err != nil {
		return fmt.Errorf("upsert photo %s: %w", name, err)
	}
	return nil
}

func (r *PhotoRepository) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return r.db.BeginTx(ctx, nil)
}
