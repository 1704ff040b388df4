package db

import "database/sql"

type RecipeImport struct {
	ID           int64
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
