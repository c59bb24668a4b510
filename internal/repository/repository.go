// Package repository handles all interactions with the database.
//
// It contains the SQL queries (built with squirrel, scanned with scany)
// and methods to fetch, persist, or update data, abstracting SQL logic
// away from the service layer.
package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgx used by repositories. It is satisfied by
// *pgxpool.Pool and by pgxmock pools in tests.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// ErrNotFound is returned when a lookup by id matches no row.
var ErrNotFound = errors.New("record not found")

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern wraps a user query for a literal, case-insensitive
// substring match: LIKE wildcards typed by the user match themselves.
func containsPattern(query string) string {
	return "%" + likeEscaper.Replace(query) + "%"
}

// anyILike matches pattern against any of columns.
func anyILike(pattern string, columns ...string) squirrel.Or {
	or := make(squirrel.Or, 0, len(columns))
	for _, col := range columns {
		or = append(or, squirrel.ILike{col: pattern})
	}
	return or
}

// queryInt64 runs a select yielding a single integer, such as COUNT(*).
func queryInt64(ctx context.Context, db DB, b squirrel.SelectBuilder) (int64, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return 0, err
	}
	var n int64
	if err := db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
