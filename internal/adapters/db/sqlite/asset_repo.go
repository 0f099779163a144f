package sqlite

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/SHADYEHABOCOR/gLabs/internal/domain"
)

type AssetRepo struct{ *Repo }

func NewAssetRepo(db *sql.DB) *AssetRepo { return &AssetRepo{NewRepo(db)} }

func (r *AssetRepo) Get(ctx context.Context, key string) (*domain.Asset, error) {
	q := r.SQ.Select(
		"id",
		"key",
		"name",
		"content_type",
		"data",
		"created_at",
	).
		From("assets").
		Where(sq.Eq{"key": key}).
		Limit(1)
	sqlStr, args, _ := q.ToSql()
	row := r.DB.QueryRowContext(ctx, sqlStr, args...)
	var a domain.Asset
	var created string
	if err := row.Scan(
		&a.ID,
		&a.Key,
		&a.Name,
		&a.ContentType,
		&a.Data,
		&created,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	a.CreatedAt, _ = time.Parse(time.RFC3339, created)
	return &a, nil
}

func (r *AssetRepo) Put(ctx context.Context, a *domain.Asset) error {
	q := r.SQ.
		Insert("assets").
		Columns(
			"key",
			"name",
			"content_type",
			"data",
			"created_at",
		).
		Values(
			a.Key,
			a.Name,
			a.ContentType,
			a.Data,
			time.Now().UTC().Format(time.RFC3339),
		).
		Suffix("ON CONFLICT(key) DO UPDATE SET name=excluded.name, content_type=excluded.content_type, data=excluded.data")
	sqlStr, args, _ := q.ToSql()
	_, err := r.DB.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *AssetRepo) ListKeys(ctx context.Context) ([]string, error) {
	q := r.SQ.Select("key").From("assets").OrderBy("key")
	sqlStr, args, _ := q.ToSql()
	rows, err := r.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
