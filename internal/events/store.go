// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package events persists the catalog of known Oman events in a local
// SQLite database. The catalog seeds the CLI and HTTP surfaces with
// example event names; generation itself never depends on it.
package events

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/moodi112/oman-wiki-engine/pkg/types"
)

// Store manages the event catalog SQLite database.
type Store struct {
	db *sql.DB
}

// seedEvents is inserted on first open when the catalog is empty.
var seedEvents = []types.Event{
	{Name: "Muscat Festival", Date: "2025-01-15", Location: "Muscat",
		Summary: "Cultural and entertainment festival held annually in Muscat.",
		Details: "The Muscat Festival showcases Omani heritage, performances, food, and entertainment."},
	{Name: "Salalah Tourism Festival", Date: "2025-07-15", Location: "Salalah",
		Summary: "Tourism festival attracting thousands to Salalah's cool climate.",
		Details: "Features music, folklore, food, and cultural exhibitions."},
	{Name: "National Day of Oman", Date: "2025-11-18", Location: "Nationwide",
		Summary: "November 18th celebration of the Sultanate's national day."},
	{Name: "Renaissance Day", Date: "2025-07-23", Location: "Nationwide",
		Summary: "July 23rd commemoration of the start of the modern renaissance."},
	{Name: "Oman Desert Marathon", Location: "Bidiyah",
		Summary: "Annual desert running event across the Omani sands."},
	{Name: "Muscat International Book Fair", Location: "Muscat",
		Summary: "Literary event drawing publishers from across the Arab world."},
	{Name: "Khareef Season", Location: "Salalah",
		Summary: "Monsoon season in Salalah and its associated festivities."},
	{Name: "Oman Traditional Crafts Festival", Location: "Nizwa",
		Summary: "Handicrafts showcase of weaving, silverwork, and pottery."},
}

// Open opens or creates the event catalog database at dbPath, creating the
// schema and seeding the example events when the catalog is empty.
func Open(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening event catalog: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	if err := s.seedIfEmpty(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("seeding catalog: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		date TEXT,
		location TEXT,
		summary TEXT,
		details TEXT
	)`)
	return err
}

func (s *Store) seedIfEmpty(ctx context.Context) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, e := range seedEvents {
		if err := s.Add(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

// Add inserts an event into the catalog. Names are unique; inserting a
// duplicate name fails.
func (s *Store) Add(ctx context.Context, e types.Event) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO events (name, date, location, summary, details) VALUES (?, ?, ?, ?, ?)`,
		e.Name, e.Date, e.Location, e.Summary, e.Details)
	if err != nil {
		return fmt.Errorf("adding event %q: %w", e.Name, err)
	}
	return nil
}

// List returns all catalog events ordered by name.
func (s *Store) List(ctx context.Context) ([]types.Event, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, date, location, summary, details FROM events ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	defer rows.Close()

	var events []types.Event
	for rows.Next() {
		var e types.Event
		if err := rows.Scan(&e.ID, &e.Name, &e.Date, &e.Location, &e.Summary, &e.Details); err != nil {
			return nil, fmt.Errorf("scanning event row: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// Get looks up a single event by exact name.
func (s *Store) Get(ctx context.Context, name string) (types.Event, error) {
	var e types.Event
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, date, location, summary, details FROM events WHERE name = ?`, name).
		Scan(&e.ID, &e.Name, &e.Date, &e.Location, &e.Summary, &e.Details)
	if err == sql.ErrNoRows {
		return types.Event{}, fmt.Errorf("event %q not found", name)
	}
	if err != nil {
		return types.Event{}, fmt.Errorf("looking up event %q: %w", name, err)
	}
	return e, nil
}
