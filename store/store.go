// Package store keeps imported call sheet snapshots in a local sqlite
// database. Every import creates a new revision of the document, rendering
// always uses the latest one.
package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"csheet/callsheet"
)

var ErrNotFound = errors.New("call sheet not found")

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	id          TEXT    NOT NULL,
	revision    INTEGER NOT NULL,
	title       TEXT    NOT NULL DEFAULT '',
	project     TEXT    NOT NULL DEFAULT '',
	day         TEXT    NOT NULL DEFAULT '',
	source      TEXT    NOT NULL DEFAULT '',
	payload     BLOB    NOT NULL,
	imported_at INTEGER NOT NULL,
	PRIMARY KEY (id, revision)
);
`

// Entry describes stored snapshot.
type Entry struct {
	ID       string
	Revision int64
	Title    string
	Project  string
	Day      string
	Source   string
	Imported time.Time
}

// Store is safe for concurrent use, access to connection is serialized.
type Store struct {
	mu   sync.Mutex
	conn *sqlite.Conn
	log  *zap.Logger
}

// Open opens (creating if necessary) database at path.
func Open(path string, log *zap.Logger) (*Store, error) {
	conn, err := sqlite.OpenConn(path, sqlite.OpenReadWrite, sqlite.OpenCreate, sqlite.OpenWAL)
	if err != nil {
		return nil, fmt.Errorf("unable to open store (%s): %w", path, err)
	}
	if err := sqlitex.ExecuteScript(conn, schema, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("unable to prepare store schema: %w", err)
	}
	log.Debug("Store opened", zap.String("path", path))
	return &Store{conn: conn, log: log}, nil
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}

// lock serializes access and makes long running statements interruptible.
func (s *Store) lock(ctx context.Context) (func(), error) {
	s.mu.Lock()
	if s.conn == nil {
		s.mu.Unlock()
		return nil, errors.New("store is closed")
	}
	if err := ctx.Err(); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.conn.SetInterrupt(ctx.Done())
	return func() {
		s.conn.SetInterrupt(nil)
		s.mu.Unlock()
	}, nil
}

// Put stores new revision of the document. Payload is the original snapshot
// data, it is parsed again on Get so that documents stay tolerant to bad
// section records.
func (s *Store) Put(ctx context.Context, doc *callsheet.Document, source string, payload []byte) (entry Entry, err error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return Entry{}, err
	}
	defer unlock()

	defer sqlitex.Save(s.conn)(&err)

	entry = Entry{
		ID:       doc.ID,
		Title:    doc.Title,
		Project:  doc.Project.Name,
		Day:      doc.Day.Date,
		Source:   source,
		Imported: time.Now().UTC().Truncate(time.Millisecond),
	}

	err = sqlitex.Execute(s.conn, `SELECT COALESCE(MAX(revision), 0) + 1 FROM snapshots WHERE id = ?`,
		&sqlitex.ExecOptions{
			Args: []any{entry.ID},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				entry.Revision = stmt.ColumnInt64(0)
				return nil
			}})
	if err != nil {
		return Entry{}, fmt.Errorf("unable to get next revision for %s: %w", entry.ID, err)
	}

	err = sqlitex.Execute(s.conn,
		`INSERT INTO snapshots (id, revision, title, project, day, source, payload, imported_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		&sqlitex.ExecOptions{
			Args: []any{entry.ID, entry.Revision, entry.Title, entry.Project, entry.Day, entry.Source, payload, entry.Imported.UnixMilli()},
		})
	if err != nil {
		return Entry{}, fmt.Errorf("unable to store %s: %w", entry.ID, err)
	}

	s.log.Debug("Call sheet stored", zap.String("id", entry.ID), zap.Int64("revision", entry.Revision))
	return entry, nil
}

// Get returns latest revision of the document with its diagnostics.
func (s *Store) Get(ctx context.Context, id string) (*callsheet.Document, callsheet.Diagnostics, Entry, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, nil, Entry{}, err
	}

	var (
		entry   Entry
		payload []byte
		found   bool
	)
	err = sqlitex.Execute(s.conn,
		`SELECT id, revision, title, project, day, source, imported_at, payload FROM snapshots WHERE id = ? ORDER BY revision DESC LIMIT 1`,
		&sqlitex.ExecOptions{
			Args: []any{id},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				entry = scanEntry(stmt)
				payload = make([]byte, stmt.ColumnLen(7))
				stmt.ColumnBytes(7, payload)
				found = true
				return nil
			}})
	unlock()

	if err != nil {
		return nil, nil, Entry{}, fmt.Errorf("unable to read %s: %w", id, err)
	}
	if !found {
		return nil, nil, Entry{}, fmt.Errorf("%s: %w", id, ErrNotFound)
	}

	doc, diags, err := callsheet.Parse(bytes.NewReader(payload), s.log)
	if err != nil {
		return nil, nil, entry, fmt.Errorf("stored call sheet %s is damaged: %w", id, err)
	}
	// documents imported without id are keyed by generated one
	if doc.ID == "" {
		doc.ID = entry.ID
	}
	return doc, diags, entry, nil
}

// List returns latest revision of every stored document, most recent first.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	var entries []Entry
	err = sqlitex.Execute(s.conn,
		`SELECT s.id, s.revision, s.title, s.project, s.day, s.source, s.imported_at
		   FROM snapshots s
		   JOIN (SELECT id, MAX(revision) AS revision FROM snapshots GROUP BY id) l
		     ON s.id = l.id AND s.revision = l.revision
		  ORDER BY s.imported_at DESC, s.id`,
		&sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				entries = append(entries, scanEntry(stmt))
				return nil
			}})
	if err != nil {
		return nil, fmt.Errorf("unable to list call sheets: %w", err)
	}
	return entries, nil
}

func scanEntry(stmt *sqlite.Stmt) Entry {
	return Entry{
		ID:       stmt.ColumnText(0),
		Revision: stmt.ColumnInt64(1),
		Title:    stmt.ColumnText(2),
		Project:  stmt.ColumnText(3),
		Day:      stmt.ColumnText(4),
		Source:   stmt.ColumnText(5),
		Imported: time.UnixMilli(stmt.ColumnInt64(6)).UTC(),
	}
}
