// Package storage maintains an ephemeral SQLite index over a bibliography.
//
// The .bib file stays the source of truth; the index is a rebuildable
// cache for key lookups and full-text search.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/trondarild/local-tools/internal/bibtex"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection.
type DB struct {
	db *sql.DB
}

// IndexedEntry is one bibliography entry as stored in the index: the
// citation key, the common display fields pulled out as columns, and the
// complete field mapping.
type IndexedEntry struct {
	Key     string            `json:"key"`
	Type    string            `json:"type"`
	Author  string            `json:"author,omitempty"`
	Title   string            `json:"title,omitempty"`
	Journal string            `json:"journal,omitempty"`
	Year    string            `json:"year,omitempty"`
	Fields  map[string]string `json:"fields"`
}

// Entry converts the indexed form back to a parser entry.
func (e IndexedEntry) Entry() bibtex.Entry {
	return bibtex.Entry{Type: e.Type, Fields: e.Fields}
}

// selectEntryFields contains the standard field list for SELECT queries.
const selectEntryFields = `key, type, author, title, journal, pub_year, fields_json`

// OpenDB opens or creates a SQLite index at the given path.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// createSchema creates the database schema if it doesn't exist.
func createSchema(db *sql.DB) error {
	schema := `
		-- Main entries table
		CREATE TABLE IF NOT EXISTS entries (
			key TEXT PRIMARY KEY,
			type TEXT NOT NULL,
			author TEXT,
			title TEXT,
			journal TEXT,
			pub_year TEXT,
			fields_json TEXT NOT NULL
		);

		-- Full-text search virtual table (standalone, not external content)
		CREATE VIRTUAL TABLE IF NOT EXISTS entries_fts USING fts5(
			key,
			title,
			author,
			journal
		);
	`

	_, err := db.Exec(schema)
	return err
}

// Rebuild clears the index and repopulates it from parsed bibliography
// entries. Returns the number of entries indexed.
func (d *DB) Rebuild(entries map[string]bibtex.Entry) (int, error) {
	if _, err := d.db.Exec("DELETE FROM entries"); err != nil {
		return 0, fmt.Errorf("clearing entries table: %w", err)
	}
	if _, err := d.db.Exec("DELETE FROM entries_fts"); err != nil {
		return 0, fmt.Errorf("clearing entries_fts table: %w", err)
	}

	entryStmt, err := d.db.Prepare(`
		INSERT INTO entries (key, type, author, title, journal, pub_year, fields_json)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing entries insert: %w", err)
	}
	defer entryStmt.Close()

	ftsStmt, err := d.db.Prepare(`
		INSERT INTO entries_fts (key, title, author, journal)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing fts insert: %w", err)
	}
	defer ftsStmt.Close()

	// Stable insert order keeps rebuilds deterministic.
	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		entry := entries[key]
		fieldsJSON, err := json.Marshal(entry.Fields)
		if err != nil {
			return 0, fmt.Errorf("marshaling fields for %s: %w", key, err)
		}

		_, err = entryStmt.Exec(
			key, entry.Type,
			entry.Get("author"), entry.Get("title"),
			entry.Get("journal"), entry.Get("year"),
			string(fieldsJSON),
		)
		if err != nil {
			return 0, fmt.Errorf("inserting entry %s: %w", key, err)
		}

		_, err = ftsStmt.Exec(key, entry.Get("title"), entry.Get("author"), entry.Get("journal"))
		if err != nil {
			return 0, fmt.Errorf("inserting fts for %s: %w", key, err)
		}
	}

	return len(keys), nil
}

// GetByKey retrieves an entry by its citation key. Returns nil (no error)
// when the key is not indexed.
func (d *DB) GetByKey(key string) (*IndexedEntry, error) {
	row := d.db.QueryRow(`SELECT `+selectEntryFields+` FROM entries WHERE key = ?`, key)
	return scanEntry(row)
}

// Search performs a full-text search over title, author and journal.
func (d *DB) Search(query string, limit int) ([]IndexedEntry, error) {
	ftsQuery := prepareFTSQuery(query)

	rows, err := d.db.Query(`
		SELECT `+selectEntryFields+`
		FROM entries
		WHERE key IN (SELECT key FROM entries_fts WHERE entries_fts MATCH ?)
		ORDER BY key
		LIMIT ?`, ftsQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("searching: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// SearchField performs a search restricted to one field.
func (d *DB) SearchField(field, value string, limit int) ([]IndexedEntry, error) {
	var ftsQuery string

	switch field {
	case "author":
		ftsQuery = "author:" + prepareFTSQuery(value)
	case "title":
		ftsQuery = "title:" + prepareFTSQuery(value)
	case "journal":
		ftsQuery = "journal:" + prepareFTSQuery(value)
	default:
		return nil, fmt.Errorf("unknown search field: %s", field)
	}

	rows, err := d.db.Query(`
		SELECT `+selectEntryFields+`
		FROM entries
		WHERE key IN (SELECT key FROM entries_fts WHERE entries_fts MATCH ?)
		ORDER BY key
		LIMIT ?
	`, ftsQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("searching %s: %w", field, err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// ListAll returns all indexed entries in key order, optionally limited.
func (d *DB) ListAll(limit int) ([]IndexedEntry, error) {
	query := `SELECT ` + selectEntryFields + ` FROM entries ORDER BY key`
	var args []interface{}

	if limit > 0 {
		query += " LIMIT ?"
		args = []interface{}{limit}
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Count returns the total number of indexed entries.
func (d *DB) Count() (int, error) {
	var count int
	err := d.db.QueryRow("SELECT COUNT(*) FROM entries").Scan(&count)
	return count, err
}

// scanner interface for sql.Row and sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(s scanner) (*IndexedEntry, error) {
	var entry IndexedEntry
	var author, title, journal, year sql.NullString
	var fieldsJSON string

	err := s.Scan(&entry.Key, &entry.Type, &author, &title, &journal, &year, &fieldsJSON)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	entry.Author = author.String
	entry.Title = title.String
	entry.Journal = journal.String
	entry.Year = year.String

	if err := json.Unmarshal([]byte(fieldsJSON), &entry.Fields); err != nil {
		return nil, fmt.Errorf("parsing fields JSON for %s: %w", entry.Key, err)
	}

	return &entry, nil
}

func scanEntries(rows *sql.Rows) ([]IndexedEntry, error) {
	var entries []IndexedEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		if entry != nil {
			entries = append(entries, *entry)
		}
	}
	return entries, rows.Err()
}

// prepareFTSQuery escapes special characters for FTS5 queries.
func prepareFTSQuery(query string) string {
	// FTS5 uses double quotes for phrase matching
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	// If query contains special chars, quote it
	if strings.ContainsAny(query, "\"*+-:(){}[]^~") {
		query = strings.ReplaceAll(query, "\"", "\"\"")
		return "\"" + query + "\""
	}

	return query
}
