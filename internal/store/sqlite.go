package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"rhythmd/internal/rhythm"
)

// Schema for the rhythmd session store.
const schema = `
CREATE TABLE IF NOT EXISTS sessions (
    id               TEXT PRIMARY KEY,
    created_at_ns    INTEGER NOT NULL,
    started_at_ns    INTEGER NOT NULL,
    ended_at_ns      INTEGER NOT NULL,
    label            TEXT NOT NULL DEFAULT '',
    total_keystrokes INTEGER NOT NULL,
    total_chars      INTEGER NOT NULL,
    rhythm_type      TEXT NOT NULL,
    fluency_level    TEXT NOT NULL,
    fluency_score    REAL NOT NULL,
    profile          TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sessions_created ON sessions(created_at_ns);
CREATE INDEX IF NOT EXISTS idx_sessions_rhythm ON sessions(rhythm_type);
`

// ErrNotFound is returned when a session does not exist.
var ErrNotFound = errors.New("session not found")

// Store represents the SQLite session store.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the SQLite database at the given path.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveProfile stores an analyzed session and returns its generated ID.
func (s *Store) SaveProfile(p *rhythm.Profile, start, end time.Time, label string) (string, error) {
	if p == nil {
		return "", fmt.Errorf("nil profile")
	}

	profileJSON, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("marshal profile: %w", err)
	}

	id := uuid.NewString()
	_, err = s.db.Exec(`
		INSERT INTO sessions (id, created_at_ns, started_at_ns, ended_at_ns, label,
			total_keystrokes, total_chars, rhythm_type, fluency_level, fluency_score, profile)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, s.now().UnixNano(), start.UnixNano(), end.UnixNano(), label,
		p.TotalKeystrokes, p.ActualChars, string(p.RhythmType),
		string(p.FluencyLevel), p.FluencyScore, string(profileJSON),
	)
	if err != nil {
		return "", fmt.Errorf("insert session: %w", err)
	}

	return id, nil
}

// GetProfile retrieves a stored session with its full profile.
func (s *Store) GetProfile(id string) (*Session, error) {
	var (
		sess        Session
		createdNs   int64
		startedNs   int64
		endedNs     int64
		rhythmType  string
		fluency     string
		profileJSON string
	)

	err := s.db.QueryRow(`
		SELECT id, created_at_ns, started_at_ns, ended_at_ns, label,
			total_keystrokes, total_chars, rhythm_type, fluency_level, fluency_score, profile
		FROM sessions WHERE id = ?`, id,
	).Scan(&sess.ID, &createdNs, &startedNs, &endedNs, &sess.Label,
		&sess.TotalKeystrokes, &sess.TotalChars, &rhythmType, &fluency,
		&sess.FluencyScore, &profileJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	sess.CreatedAt = time.Unix(0, createdNs)
	sess.StartedAt = time.Unix(0, startedNs)
	sess.EndedAt = time.Unix(0, endedNs)
	sess.RhythmType = rhythm.RhythmType(rhythmType)
	sess.FluencyLevel = rhythm.FluencyLevel(fluency)

	var p rhythm.Profile
	if err := json.Unmarshal([]byte(profileJSON), &p); err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	sess.Profile = &p

	return &sess, nil
}

// ListSessions returns the most recent sessions, newest first, without
// their full profiles. A limit of 0 means no limit.
func (s *Store) ListSessions(limit int) ([]Session, error) {
	query := `
		SELECT id, created_at_ns, started_at_ns, ended_at_ns, label,
			total_keystrokes, total_chars, rhythm_type, fluency_level, fluency_score
		FROM sessions
		ORDER BY created_at_ns DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var (
			sess       Session
			createdNs  int64
			startedNs  int64
			endedNs    int64
			rhythmType string
			fluency    string
		)
		if err := rows.Scan(&sess.ID, &createdNs, &startedNs, &endedNs, &sess.Label,
			&sess.TotalKeystrokes, &sess.TotalChars, &rhythmType, &fluency,
			&sess.FluencyScore); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sess.CreatedAt = time.Unix(0, createdNs)
		sess.StartedAt = time.Unix(0, startedNs)
		sess.EndedAt = time.Unix(0, endedNs)
		sess.RhythmType = rhythm.RhythmType(rhythmType)
		sess.FluencyLevel = rhythm.FluencyLevel(fluency)
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}

	return sessions, nil
}

// DeleteSession removes a stored session.
func (s *Store) DeleteSession(id string) error {
	result, err := s.db.Exec(`DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Prune removes sessions older than the given retention period and returns
// the number deleted. A retention of 0 disables pruning.
func (s *Store) Prune(retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, nil
	}

	cutoff := s.now().Add(-retention).UnixNano()
	result, err := s.db.Exec(`DELETE FROM sessions WHERE created_at_ns < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune sessions: %w", err)
	}

	return result.RowsAffected()
}
