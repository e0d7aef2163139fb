// Package sqlstore implements storage.Provider's data methods over database/sql.
// The same queries serve SQLite and PostgreSQL; only the placeholder style differs.
package sqlstore

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/habitual/internal/storage"
)

type Dialect int

const (
	SQLite Dialect = iota
	Postgres
)

type Store struct {
	db      *sql.DB
	dialect Dialect
}

func New(dialect Dialect) *Store {
	return &Store{dialect: dialect}
}

// Attach sets the connection used by every query.
func (s *Store) Attach(db *sql.DB) {
	s.db = db
}

// DB returns the attached connection, or nil before Init or Load.
func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) conn() (*sql.DB, error) {
	if s == nil || s.db == nil {
		return nil, storage.ErrNotLoaded
	}
	return s.db, nil
}

// rebind rewrites ? placeholders as $1, $2, ... for PostgreSQL.
func (s *Store) rebind(query string) string {
	if s.dialect != Postgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

type querier interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

func (s *Store) exec(q querier, query string, args ...any) (sql.Result, error) {
	return q.Exec(s.rebind(query), args...)
}

func (s *Store) query(q querier, query string, args ...any) (*sql.Rows, error) {
	return q.Query(s.rebind(query), args...)
}

func (s *Store) queryRow(q querier, query string, args ...any) *sql.Row {
	return q.QueryRow(s.rebind(query), args...)
}

// withTx runs fn in a transaction, rolling back when it fails.
func (s *Store) withTx(fn func(tx *sql.Tx) error) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// expectRow maps zero affected rows to storage.ErrNotFound.
func expectRow(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, storage.ErrNotFound)
	}
	return nil
}

func notFound(err error, what string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, storage.ErrNotFound)
	}
	return err
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: formatTime(*t), Valid: true}
}

func parseTime(field, value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", field, err)
	}
	return t, nil
}

func parseTimePtr(field string, value sql.NullString) (*time.Time, error) {
	if !value.Valid {
		return nil, nil
	}
	t, err := parseTime(field, value.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
