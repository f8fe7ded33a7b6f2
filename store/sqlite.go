// Package store persists fetched canonical series so a dataset pulled once
// can be listed, reloaded and exported without going back to the source.
// It sits downstream of the adapters; nothing in the normalization pipeline
// depends on it.
package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rustyeddy/pricefeed/series"
)

// Record describes one stored series.
type Record struct {
	ID        string
	Symbol    string
	Source    string // "vendor", "file" or "terminal"
	Interval  string
	CreatedAt time.Time
	Rows      int
}

// Store is a SQLite-backed series archive.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the store at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Save writes a canonical (reduced) frame under a fresh ULID and returns it.
func (s *Store) Save(symbol, source, interval string, f *series.Frame) (string, error) {
	prices := f.Prices()
	if prices == nil {
		return "", fmt.Errorf("frame has no %s column", series.PriceColumn)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	recID := newID()
	_, err = tx.Exec(`
		INSERT INTO series (id, symbol, source, interval, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		recID, symbol, source, interval, time.Now().UTC(),
	)
	if err != nil {
		return "", err
	}

	stmt, err := tx.Prepare(`INSERT INTO points (series_id, time, price) VALUES (?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	for i, t := range f.Index() {
		if _, err := stmt.Exec(recID, t.UTC(), prices[i]); err != nil {
			return "", err
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return recID, nil
}

// Load reads a stored series back as a single-column frame, points in
// ascending time order.
func (s *Store) Load(recID string) (*series.Frame, error) {
	rows, err := s.db.Query(
		`SELECT time, price FROM points WHERE series_id = ? ORDER BY time ASC`, recID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var (
		index  []time.Time
		prices []float64
	)
	for rows.Next() {
		var t time.Time
		var p float64
		if err := rows.Scan(&t, &p); err != nil {
			return nil, err
		}
		index = append(index, t)
		prices = append(prices, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	f := series.New(index)
	if prices == nil {
		prices = []float64{}
	}
	if err := f.AddColumn(series.PriceColumn, prices); err != nil {
		return nil, err
	}
	return f, nil
}

// List returns all stored series, newest first.
func (s *Store) List() ([]Record, error) {
	rows, err := s.db.Query(`
		SELECT s.id, s.symbol, s.source, s.interval, s.created_at, COUNT(p.series_id)
		FROM series s
		LEFT JOIN points p ON p.series_id = s.id
		GROUP BY s.id
		ORDER BY s.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.Symbol, &r.Source, &r.Interval, &r.CreatedAt, &r.Rows); err != nil {
			return nil, err
		}
		recs = append(recs, r)
	}
	return recs, rows.Err()
}

// Delete removes a stored series and its points.
func (s *Store) Delete(recID string) error {
	if _, err := s.db.Exec(`DELETE FROM points WHERE series_id = ?`, recID); err != nil {
		return err
	}
	_, err := s.db.Exec(`DELETE FROM series WHERE id = ?`, recID)
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}
