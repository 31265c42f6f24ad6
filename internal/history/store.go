// Package history persists the inputs of interactive explorer sessions.
package history

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	bherror "github.com/msto63/bhasha/foundation/core/error"
)

// Session groups the entries of one explorer run
type Session struct {
	ID        string    `json:"id"`
	Locale    string    `json:"locale"`
	CreatedAt time.Time `json:"created_at"`
}

// Entry is one parsed input
type Entry struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Source    string    `json:"source"`
	OK        bool      `json:"ok"`
	Result    string    `json:"result"`
	CreatedAt time.Time `json:"created_at"`
}

// Store defines the interface for history persistence
type Store interface {
	StartSession(ctx context.Context, locale string) (*Session, error)
	Add(ctx context.Context, entry *Entry) error
	Recent(ctx context.Context, limit int) ([]*Entry, error)
	SessionEntries(ctx context.Context, sessionID string) ([]*Entry, error)
	Prune(ctx context.Context, keep int) (int64, error)
	Statistics(ctx context.Context) (map[string]interface{}, error)
	Close() error
}

func storageError(err error, op string) *bherror.Error {
	return bherror.Wrap(err, "history store failed").
		WithCode(bherror.CodeStorageError).
		WithOperation("history." + op)
}

// SQLiteStore implements Store using SQLite
type SQLiteStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// Open opens or creates the history database at path
func Open(path string) (*SQLiteStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, storageError(err, "open").WithDetail("path", path)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=on")
	if err != nil {
		return nil, storageError(err, "open").WithDetail("path", path)
	}
	// a single connection keeps ":memory:" databases shared
	db.SetMaxOpenConns(1)

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, storageError(err, "open").WithDetail("path", path)
	}
	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		locale TEXT NOT NULL DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS entries (
		id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL,
		source TEXT NOT NULL,
		ok INTEGER NOT NULL DEFAULT 0,
		result TEXT NOT NULL DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (session_id) REFERENCES sessions(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_entries_session ON entries(session_id);
	CREATE INDEX IF NOT EXISTS idx_entries_created ON entries(created_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// StartSession creates a new session with a fresh UUID
func (s *SQLiteStore) StartSession(ctx context.Context, locale string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := &Session{ID: uuid.NewString(), Locale: locale, CreatedAt: time.Now()}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions (id, locale, created_at) VALUES (?, ?, ?)
	`, session.ID, session.Locale, session.CreatedAt)
	if err != nil {
		return nil, storageError(err, "start_session")
	}
	return session, nil
}

// Add stores an entry, assigning ID and timestamp when missing
func (s *SQLiteStore) Add(ctx context.Context, entry *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.SessionID == "" {
		return bherror.New("session ID is required").
			WithCode(bherror.CodeInvalidInput).
			WithOperation("history.add")
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO entries (id, session_id, source, ok, result, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.SessionID, entry.Source, entry.OK, entry.Result, entry.CreatedAt)
	if err != nil {
		return storageError(err, "add").WithDetail("session_id", entry.SessionID)
	}
	return nil
}

// Recent returns the last limit entries across all sessions, oldest first
func (s *SQLiteStore) Recent(ctx context.Context, limit int) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, session_id, source, ok, result, created_at
		FROM entries
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, storageError(err, "recent")
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil {
		return nil, storageError(err, "recent")
	}
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

// SessionEntries returns all entries of one session in input order
func (s *SQLiteStore) SessionEntries(ctx context.Context, sessionID string) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, session_id, source, ok, result, created_at
		FROM entries
		WHERE session_id = ?
		ORDER BY created_at ASC, rowid ASC
	`, sessionID)
	if err != nil {
		return nil, storageError(err, "session_entries")
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil {
		return nil, storageError(err, "session_entries")
	}
	return entries, nil
}

// Prune deletes all but the newest keep entries and drops empty sessions
func (s *SQLiteStore) Prune(ctx context.Context, keep int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if keep < 0 {
		keep = 0
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, storageError(err, "prune")
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		DELETE FROM entries WHERE rowid NOT IN (
			SELECT rowid FROM entries ORDER BY created_at DESC, rowid DESC LIMIT ?
		)
	`, keep)
	if err != nil {
		return 0, storageError(err, "prune")
	}
	removed, _ := result.RowsAffected()

	_, err = tx.ExecContext(ctx, `
		DELETE FROM sessions WHERE id NOT IN (SELECT DISTINCT session_id FROM entries)
	`)
	if err != nil {
		return 0, storageError(err, "prune")
	}

	if err := tx.Commit(); err != nil {
		return 0, storageError(err, "prune")
	}
	return removed, nil
}

// Statistics returns store statistics
func (s *SQLiteStore) Statistics(ctx context.Context) (map[string]interface{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sessions, entries, failed int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sessions`).Scan(&sessions); err != nil {
		return nil, storageError(err, "statistics")
	}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*), COUNT(*) - COALESCE(SUM(ok), 0) FROM entries`).Scan(&entries, &failed); err != nil {
		return nil, storageError(err, "statistics")
	}

	return map[string]interface{}{
		"total_sessions": sessions,
		"total_entries":  entries,
		"failed_entries": failed,
	}, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func scanEntries(rows *sql.Rows) ([]*Entry, error) {
	var entries []*Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Source, &e.OK, &e.Result, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

// MemoryStore is an in-memory implementation used when no database is wanted
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	entries  []*Entry
}

// NewMemoryStore creates a new in-memory history store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*Session)}
}

// StartSession creates a new session with a fresh UUID
func (s *MemoryStore) StartSession(ctx context.Context, locale string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := &Session{ID: uuid.NewString(), Locale: locale, CreatedAt: time.Now()}
	s.sessions[session.ID] = session
	return session, nil
}

// Add stores an entry, assigning ID and timestamp when missing
func (s *MemoryStore) Add(ctx context.Context, entry *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.SessionID == "" {
		return bherror.New("session ID is required").
			WithCode(bherror.CodeInvalidInput).
			WithOperation("history.add")
	}
	if _, ok := s.sessions[entry.SessionID]; !ok {
		return bherror.Newf("unknown session: %s", entry.SessionID).
			WithCode(bherror.CodeStorageError).
			WithOperation("history.add")
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	copied := *entry
	s.entries = append(s.entries, &copied)
	return nil
}

// Recent returns the last limit entries across all sessions, oldest first
func (s *MemoryStore) Recent(ctx context.Context, limit int) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}
	start := len(s.entries) - limit
	if start < 0 {
		start = 0
	}
	return cloneEntries(s.entries[start:]), nil
}

// SessionEntries returns all entries of one session in input order
func (s *MemoryStore) SessionEntries(ctx context.Context, sessionID string) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*Entry
	for _, e := range s.entries {
		if e.SessionID == sessionID {
			out = append(out, e)
		}
	}
	return cloneEntries(out), nil
}

// Prune deletes all but the newest keep entries and drops empty sessions
func (s *MemoryStore) Prune(ctx context.Context, keep int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if keep < 0 {
		keep = 0
	}
	removed := 0
	if len(s.entries) > keep {
		removed = len(s.entries) - keep
		s.entries = append([]*Entry(nil), s.entries[removed:]...)
	}

	used := make(map[string]bool, len(s.sessions))
	for _, e := range s.entries {
		used[e.SessionID] = true
	}
	for id := range s.sessions {
		if !used[id] {
			delete(s.sessions, id)
		}
	}
	return int64(removed), nil
}

// Statistics returns store statistics
func (s *MemoryStore) Statistics(ctx context.Context) (map[string]interface{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var failed int64
	for _, e := range s.entries {
		if !e.OK {
			failed++
		}
	}
	return map[string]interface{}{
		"total_sessions": int64(len(s.sessions)),
		"total_entries":  int64(len(s.entries)),
		"failed_entries": failed,
	}, nil
}

// Sessions returns the known session IDs in sorted order
func (s *MemoryStore) Sessions() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Close is a no-op
func (s *MemoryStore) Close() error {
	return nil
}

func cloneEntries(in []*Entry) []*Entry {
	out := make([]*Entry, len(in))
	for i, e := range in {
		copied := *e
		out[i] = &copied
	}
	return out
}

var (
	_ Store = (*SQLiteStore)(nil)
	_ Store = (*MemoryStore)(nil)
)
