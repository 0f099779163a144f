package sqlite

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"
)

// Repo carries the handle and statement builder shared by the sqlite-backed
// stores. Concrete repositories embed it.
type Repo struct {
	DB *sql.DB
	SQ sq.StatementBuilderType
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db, SQ: sq.StatementBuilder}
}
