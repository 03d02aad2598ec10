package repository

import (
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// Repository groups the persistence operations of the catalog.
type Repository interface {
	genres
	authors
	books
	bookInstances
	users
	permissions
	tokens
}

var _ Repository = (*repository)(nil)

// repository is the PostgreSQL implementation of Repository.
type repository struct {
	db *sql.DB
}

// New creates a new instance of Repository.
func New(db *sql.DB) *repository {
	return &repository{db: db}
}

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike quotes the LIKE wildcards in value so it matches literally.
func escapeLike(value string) string {
	return likeEscaper.Replace(value)
}
