package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/logger"
	"github.com/Zeafen/Recipe-Sharing-sub002/migrations"
)

// DB is the shared handle used by every SQL repository. The same
// repositories serve PostgreSQL and SQLite; DB carries what differs between
// them.
type DB struct {
	*sql.DB

	// dialect is the goose dialect used for migrations.
	dialect string
	// builder renders placeholders for the driver ($n or ?).
	builder sq.StatementBuilderType
	// isUniqueViolation recognises the driver's duplicate-key error.
	isUniqueViolation func(error) bool
	// containsFunc is the SQL function returning the 1-based position of a
	// substring, 0 when absent. Both implementations are case-sensitive.
	containsFunc string
	// lowerFunc lowercases text including non-ASCII letters.
	lowerFunc string

	logger *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// contains builds a case-sensitive "column contains value" predicate.
func (db *DB) contains(column, value string) sq.Sqlizer {
	return sq.Expr(fmt.Sprintf("%s(%s, ?) > 0", db.containsFunc, column), value)
}

// equalFold builds a case-insensitive "column equals value" predicate.
func (db *DB) equalFold(column, value string) sq.Sqlizer {
	return sq.Expr(fmt.Sprintf("%[1]s(%[2]s) = %[1]s(?)", db.lowerFunc, column), value)
}

// selectAll runs query and scans every row.
func selectAll[T any](ctx context.Context, db *DB, query sq.SelectBuilder, scan func(rowScanner) (T, error)) ([]T, error) {
	stmt, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// selectOne scans the first row of query, or returns nil when there is none.
func selectOne[T any](ctx context.Context, db *DB, query sq.SelectBuilder, scan func(rowScanner) (T, error)) (*T, error) {
	stmt, args, err := query.Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := scan(db.QueryRowContext(ctx, stmt, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &item, nil
}

// exists reports whether table has a row matching where. A nil where
// matches any row.
func (db *DB) exists(ctx context.Context, table string, where sq.Sqlizer) (bool, error) {
	query := db.builder.Select("1").From(table).Limit(1)
	if where != nil {
		query = query.Where(where)
	}

	stmt, args, err := query.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = db.QueryRowContext(ctx, stmt, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

// execAffected runs a write and returns the number of affected rows.
func (db *DB) execAffected(ctx context.Context, query sq.Sqlizer) (int64, error) {
	stmt, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := db.ExecContext(ctx, stmt, args...)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

// insertIfAbsent runs an insert and folds a unique-constraint violation into
// false.
func (db *DB) insertIfAbsent(ctx context.Context, query sq.InsertBuilder) (bool, error) {
	_, err := db.execAffected(ctx, query)
	if err != nil && db.isUniqueViolation != nil && db.isUniqueViolation(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}
