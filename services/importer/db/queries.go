package db

import (
	"context"
	"database/sql"
)

const createImport = `
INSERT INTO recipe_imports (
    public_id, user_key, import_type, source_url, raw_payload,
    status, error_message, title, created_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`

type CreateImportParams struct {
	PublicID     string
	UserKey      string
	ImportType   string
	SourceUrl    sql.NullString
	RawPayload   sql.NullString
	Status       string
	ErrorMessage sql.NullString
	Title        sql.NullString
	CreatedAt    int64
}

func (q *Queries) CreateImport(ctx context.Context, arg CreateImportParams) error {
	_, err := q.db.ExecContext(ctx, createImport,
		arg.PublicID,
		arg.UserKey,
		arg.ImportType,
		arg.SourceUrl,
		arg.RawPayload,
		arg.Status,
		arg.ErrorMessage,
		arg.Title,
		arg.CreatedAt,
	)
	return err
}

const getImportByPublicId = `
SELECT id, public_id, user_key, import_type, source_url, raw_payload,
       status, error_message, title, created_at
FROM recipe_imports
WHERE public_id = ?
`

func (q *Queries) GetImportByPublicId(ctx context.Context, publicId string) (RecipeImport, error) {
	row := q.db.QueryRowContext(ctx, getImportByPublicId, publicId)
	var i RecipeImport
	err := row.Scan(
		&i.ID,
		&i.PublicID,
		&i.UserKey,
		&i.ImportType,
		&i.SourceUrl,
		&i.RawPayload,
		&i.Status,
		&i.ErrorMessage,
		&i.Title,
		&i.CreatedAt,
	)
	return i, err
}

const getImportsByUser = `
SELECT id, public_id, user_key, import_type, source_url, raw_payload,
       status, error_message, title, created_at
FROM recipe_imports
WHERE user_key = ?
ORDER BY created_at DESC
`

func (q *Queries) GetImportsByUser(ctx context.Context, userKey string) ([]RecipeImport, error) {
	rows, err := q.db.QueryContext(ctx, getImportsByUser, userKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []RecipeImport
	for rows.Next() {
		var i RecipeImport
		err := rows.Scan(
			&i.ID,
			&i.PublicID,
			&i.UserKey,
			&i.ImportType,
			&i.SourceUrl,
			&i.RawPayload,
			&i.Status,
			&i.ErrorMessage,
			&i.Title,
			&i.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getImportBySourceUrl = `
SELECT id, public_id, user_key, import_type, source_url, raw_payload,
       status, error_message, title, created_at
FROM recipe_imports
WHERE user_key = ? AND source_url = ?
LIMIT 1
`

type GetImportBySourceUrlParams struct {
	UserKey   string
	SourceUrl sql.NullString
}

func (q *Queries) GetImportBySourceUrl(ctx context.Context, arg GetImportBySourceUrlParams) (RecipeImport, error) {
	row := q.db.QueryRowContext(ctx, getImportBySourceUrl, arg.UserKey, arg.SourceUrl)
	var i RecipeImport
	err := row.Scan(
		&i.ID,
		&i.PublicID,
		&i.UserKey,
		&i.ImportType,
		&i.SourceUrl,
		&i.RawPayload,
		&i.Status,
		&i.ErrorMessage,
		&i.Title,
		&i.CreatedAt,
	)
	return i, err
}

const getImportTitlesByUser = `
SELECT public_id, title
FROM recipe_imports
WHERE user_key = ? AND status = 'parsed' AND title IS NOT NULL
`

type GetImportTitlesByUserRow struct {
	PublicID string
	Title    sql.NullString
}

func (q *Queries) GetImportTitlesByUser(ctx context.Context, userKey string) ([]GetImportTitlesByUserRow, error) {
	rows, err := q.db.QueryContext(ctx, getImportTitlesByUser, userKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GetImportTitlesByUserRow
	for rows.Next() {
		var i GetImportTitlesByUserRow
		if err := rows.Scan(&i.PublicID, &i.Title); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
