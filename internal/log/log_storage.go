// log_storage.go persists audit entries in SQLite.
//
// Write errors are reported on stderr and otherwise ignored: an edit must
// succeed even when it cannot be recorded. File paths are stored alongside a
// BLAKE2b hash of their absolute form so entries for the same file group
// together however the path was spelled on the command line.

package log

import (
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/crypto/blake2b"
	_ "modernc.org/sqlite"
)

// ErrNotOpen is returned by queries made before [Open].
var ErrNotOpen = errors.New("audit log not open")

// Logger writes audit log entries to a SQLite database.
type Logger struct {
	db      *sql.DB
	session string
}

// Record is a stored entry as returned by [Recent].
type Record struct {
	ID      int64     `json:"id"`
	Time    time.Time `json:"time"`
	Session string    `json:"session"`
	Source  string    `json:"source"`
	Author  string    `json:"author,omitempty"`
	Action  string    `json:"action"`
	File    string    `json:"file,omitempty"`
	Success bool      `json:"success"`
	Error   string    `json:"error,omitempty"`
}

func (l *Logger) log(e Entry) {
	var detail *string
	if len(e.Detail) > 0 {
		if b, err := json.Marshal(e.Detail); err == nil {
			s := string(b)
			detail = &s
		}
	}

	success := 0
	if e.Success {
		success = 1
	}

	var fileHash *string
	if e.File != "" {
		h := hash(absPath(e.File))
		fileHash = &h
	}

	var line *int
	if e.Line >= 0 {
		line = &e.Line
	}

	_, err := l.db.Exec(`
		INSERT INTO log (start, end, session, source, author, action, file, file_hash,
		                 line, success, error, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Start, e.End, l.session, e.Source, nilIfEmpty(e.Author), e.Action,
		nilIfEmpty(e.File), fileHash, line,
		success, nilIfEmpty(e.Error), detail,
	)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "lined: audit log write failed: %v\n", err)
	}
}

func (l *Logger) recent(limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := l.db.Query(`
		SELECT id, start, session, source, author, action, file, success, error
		FROM log ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var (
			r                   Record
			start               int64
			author, file, errMsg sql.NullString
			success             int
		)
		if err := rows.Scan(&r.ID, &start, &r.Session, &r.Source, &author, &r.Action, &file, &success, &errMsg); err != nil {
			return nil, err
		}
		r.Time = time.Unix(start, 0)
		r.Author = author.String
		r.File = file.String
		r.Success = success == 1
		r.Error = errMsg.String
		out = append(out, r)
	}
	return out, rows.Err()
}

// dbPathFunc returns the database path. Tests override it.
var dbPathFunc = defaultDBPath

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".lined", "log", "lined-log.db")
	}
	return filepath.Join(home, ".lined", "log", "lined-log.db")
}

func dbPath() string {
	return dbPathFunc()
}

// DBPath returns the path to the log database.
func DBPath() string {
	return dbPath()
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// hash returns a BLAKE2b-64 digest of s as 16 hex chars.
func hash(s string) string {
	h, err := blake2b.New(8, nil)
	if err != nil {
		panic("blake2b.New failed: " + err.Error())
	}
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}

// migrate creates the log table if it doesn't exist.
func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS log (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			start     INTEGER NOT NULL,
			end       INTEGER NOT NULL,
			session   TEXT NOT NULL,
			source    TEXT NOT NULL,
			author    TEXT,
			action    TEXT NOT NULL,
			file      TEXT,
			file_hash TEXT,
			line      INTEGER,
			success   INTEGER NOT NULL,
			error     TEXT,
			detail    TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_log_start ON log(start);
		CREATE INDEX IF NOT EXISTS idx_log_session ON log(session);
		CREATE INDEX IF NOT EXISTS idx_log_file_hash ON log(file_hash);
	`)
	return err
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
