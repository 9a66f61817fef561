// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/osalguero/muster/internal/roster"
)

// SQLite implements roster.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// LoadRoster returns all elements in display order.
func (s *SQLite) LoadRoster(ctx context.Context) ([]roster.Element, error) {
	query := `
		SELECT kind, name, points, image
		FROM elements
		ORDER BY position
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying elements: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var elems []roster.Element
	for rows.Next() {
		var (
			kind   string
			name   string
			points int
			image  sql.NullString
		)

		if err := rows.Scan(&kind, &name, &points, &image); err != nil {
			return nil, fmt.Errorf("scanning element: %w", err)
		}

		elem, err := buildElement(roster.Kind(kind), name, points, image.String)
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating elements: %w", err)
	}

	return elems, nil
}

// SaveRoster replaces the stored roster with the given sequence.
func (s *SQLite) SaveRoster(ctx context.Context, elems []roster.Element) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM elements`); err != nil {
		return fmt.Errorf("clearing elements: %w", err)
	}

	insert := `INSERT INTO elements (kind, name, points, image, position) VALUES (?, ?, ?, ?, ?)`
	for pos, elem := range elems {
		kind, name, points, image := columnsFor(elem)
		if _, err := tx.ExecContext(ctx, insert, kind, name, points, image, pos); err != nil {
			return fmt.Errorf("inserting element %d: %w", pos, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing roster: %w", err)
	}

	return nil
}

// AddElement appends one element at the end of the stored roster.
func (s *SQLite) AddElement(ctx context.Context, e roster.Element) error {
	if err := roster.Validate(e); err != nil {
		return err
	}

	kind, name, points, image := columnsFor(e)
	query := `
		INSERT INTO elements (kind, name, points, image, position)
		VALUES (?, ?, ?, ?, (SELECT COALESCE(MAX(position), -1) + 1 FROM elements))
	`

	if _, err := s.db.ExecContext(ctx, query, kind, name, points, image); err != nil {
		return fmt.Errorf("inserting element: %w", err)
	}

	return nil
}

// DeleteElementAt removes the element at the given display position and
// shifts later positions down by one.
func (s *SQLite) DeleteElementAt(ctx context.Context, position int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx, `DELETE FROM elements WHERE position = ?`, position)
	if err != nil {
		return fmt.Errorf("deleting element: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return roster.ErrElementNotFound
	}

	if _, err := tx.ExecContext(ctx, `UPDATE elements SET position = position - 1 WHERE position > ?`, position); err != nil {
		return fmt.Errorf("shifting positions: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing deletion: %w", err)
	}

	return nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// columnsFor flattens an element variant into its storage columns.
func columnsFor(e roster.Element) (kind roster.Kind, name string, points int, image sql.NullString) {
	switch v := e.(type) {
	case roster.Character:
		return roster.KindCharacter, v.Name, v.Points, sql.NullString{}
	case roster.Unit:
		return roster.KindUnit, v.Name, v.Points, sql.NullString{String: v.Image, Valid: true}
	case roster.Support:
		return roster.KindSupport, v.Name, v.Points, sql.NullString{}
	case roster.Other:
		return roster.KindOther, v.Label, v.Points, sql.NullString{String: v.Image, Valid: true}
	default:
		panic(fmt.Sprintf("db: unknown element %T", e))
	}
}

// buildElement reconstructs an element variant from its storage columns.
func buildElement(kind roster.Kind, name string, points int, image string) (roster.Element, error) {
	switch kind {
	case roster.KindCharacter:
		return roster.Character{Name: name, Points: points}, nil
	case roster.KindUnit:
		return roster.Unit{Name: name, Points: points, Image: image}, nil
	case roster.KindSupport:
		return roster.Support{Name: name, Points: points}, nil
	case roster.KindOther:
		return roster.Other{Label: name, Points: points, Image: image}, nil
	default:
		return nil, fmt.Errorf("%w: %q", roster.ErrUnknownKind, kind)
	}
}
