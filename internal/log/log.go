// Package log records an audit trail of lined commands and MCP tool calls.
// Entries are stored in ~/.lined/log/lined-log.db and are shared by every
// session on the machine.
//
// # Fluent API
//
//	log.Event("edit:insert", "insert").
//		Author(cmd.Author()).
//		File(path).
//		Line(lineIndex).
//		Detail("symbol", symbolIndex).
//		Write(err)
//
// The source follows "{extension}:{command}" for CLI commands, "repl:{command}"
// for the interactive session and "mcp:{tool}" for MCP tools.
//
// The audit log never holds buffer contents. It records that an edit happened,
// not what the buffer looked like, and has no part in undo/redo.
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source string // e.g. "edit:append", "mcp:lined_undo"
	Author string
	Action string // verb: append, insert, delete, undo, load, save, ...
	File   string // file the session is bound to, if any
	Line   int    // line index the edit targeted, -1 when not applicable

	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool
	Error   string
	Detail  map[string]any
}

// Builder constructs a log entry. Create with [Event], chain setters, then
// finish with [Builder.Write].
type Builder struct {
	entry Entry
}

// Event starts a log entry for an operation.
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Line:   -1,
			Start:  time.Now().Unix(),
		},
	}
}

// Author sets who performed the operation. MCP tools use "mcp".
func (b *Builder) Author(author string) *Builder {
	b.entry.Author = author
	return b
}

// File sets the file the operation read, wrote or edited on behalf of.
func (b *Builder) File(path string) *Builder {
	b.entry.File = path
	return b
}

// Line sets the zero-based line index a positional edit targeted.
func (b *Builder) Line(i int) *Builder {
	b.entry.Line = i
	return b
}

// Detail adds a key-value pair for data that has no dedicated field:
// search queries, match counts, symbol offsets and so on.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write records the entry, deriving success from err.
//
//	err := s.Delete(line, sym, n)
//	log.Event("edit:delete", "delete").File(path).Line(line).Write(err)
//	if err != nil {
//		return err
//	}
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Callers may ignore the error; logging is best-effort.
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// SetSession tags subsequent entries with the editing session's id.
func SetSession(id string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.session = id
	}
}

// Log writes an entry. It is a no-op when the logger is not open.
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Recent returns up to limit entries, newest first.
func Recent(limit int) ([]Record, error) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return nil, ErrNotOpen
	}
	return l.recent(limit)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
