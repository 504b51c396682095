// Package editor ties one line buffer and its undo history into an editing
// session, and hangs the collaborators (load, save, print, search, diff) off
// it.
//
// A Session is safe for concurrent use. Every edit and every read runs under
// the session lock, so the snapshot taken after an edit always reflects
// exactly that edit. The MCP server relies on this: tool calls can arrive on
// separate goroutines.
package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sync"

	"github.com/google/uuid"
	"github.com/jpl-au/lined/internal/buffer"
	"github.com/jpl-au/lined/internal/diff"
	"github.com/jpl-au/lined/internal/fileio"
	"github.com/jpl-au/lined/internal/history"
	"github.com/jpl-au/lined/internal/printer"
	"github.com/jpl-au/lined/internal/search"
)

// ErrNoFile is returned by Save and Diff when no path is given and the
// session is not bound to a file yet.
var ErrNoFile = errors.New("no file associated with session")

// Options configures a Session.
type Options struct {
	Capacity      int    // undo ring capacity, 0 for history.DefaultCapacity
	MaxLineLength int    // longest line Load accepts, 0 for the fileio default
	Path          string // file the session starts bound to, may be empty
}

// Session is one editing session: a buffer, its history, and the file it
// loads from and saves to.
type Session struct {
	mu      sync.Mutex
	id      string
	path    string
	maxLine int
	saved   buffer.Snapshot // lines as of the last load, save or reset
	buf     *buffer.Buffer
	hist    *history.Manager
}

// New returns a session over an empty buffer. It does not read opts.Path;
// call Load for that.
func New(opts Options) *Session {
	buf := buffer.New()
	return &Session{
		id:      uuid.NewString(),
		path:    opts.Path,
		maxLine: opts.MaxLineLength,
		buf:     buf,
		hist:    history.New(buf, history.Options{Capacity: opts.Capacity}),
	}
}

// ID returns the session's unique id.
func (s *Session) ID() string { return s.id }

// Path returns the file the session is bound to.
func (s *Session) Path() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path
}

// Modified reports whether the buffer's lines differ from the last load or
// save. Undoing back to that state clears it; moving the cursor does not set it.
func (s *Session) Modified() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modified()
}

func (s *Session) modified() bool {
	return !s.buf.Snapshot().Equal(s.saved)
}

// markSaved records the current lines as the clean state.
func (s *Session) markSaved() {
	s.saved = s.buf.Snapshot()
}

// Append adds text at the append cursor.
func (s *Session) Append(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hist.Append(text)
}

// NewLine advances the append cursor so the next Append starts a new line.
func (s *Session) NewLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hist.StartNewLine()
}

// Insert splices text into a line at a byte offset.
func (s *Session) Insert(lineIndex, symbolIndex int, text string) error {
	return s.insert(lineIndex, symbolIndex, text, false)
}

// Replace overwrites len(text) bytes of a line starting at a byte offset.
func (s *Session) Replace(lineIndex, symbolIndex int, text string) error {
	return s.insert(lineIndex, symbolIndex, text, true)
}

func (s *Session) insert(lineIndex, symbolIndex int, text string, replace bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hist.Insert(lineIndex, symbolIndex, text, replace)
}

// Delete removes up to n bytes from a line starting at a byte offset.
func (s *Session) Delete(lineIndex, symbolIndex, n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hist.Delete(lineIndex, symbolIndex, n)
}

// Clear empties the buffer. It can be undone.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hist.Clear()
}

// Reset empties the buffer and discards all history.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hist.Reset()
	s.markSaved()
}

// Undo steps back one edit. It reports false when there is nothing to undo.
func (s *Session) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hist.Undo()
}

// Redo re-applies the last undone edit. It reports false when there is
// nothing to redo.
func (s *Session) Redo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hist.Redo()
}

// Lines returns a copy of the buffer's lines.
func (s *Session) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Lines()
}

// View runs fn with read access to the buffer while holding the session lock.
// fn must not retain r.
func (s *Session) View(fn func(r buffer.Reader) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.hist.View())
}

// Print writes the buffer to w.
func (s *Session) Print(ctx context.Context, w io.Writer, opts printer.Options) (printer.Result, error) {
	var res printer.Result
	err := s.View(func(r buffer.Reader) error {
		var err error
		res, err = printer.Run(ctx, w, r, opts)
		return err
	})
	return res, err
}

// Search returns every occurrence of query in the buffer.
func (s *Session) Search(ctx context.Context, query string, opts search.Options) ([]search.Match, error) {
	var matches []search.Match
	err := s.View(func(r buffer.Reader) error {
		var err error
		matches, err = search.Find(ctx, r, query, opts)
		return err
	})
	return matches, err
}

// Load replaces the buffer with the lines of the file at path, as a single
// undoable edit: Clear, then Append once per file line. The cursor stays at 0,
// so every file line joins slot 0 separated by "\n" and the next Append lands
// there too. Save writes the slot back out byte for byte. An empty path
// reloads the bound file. On success the session is bound to path.
func (s *Session) Load(ctx context.Context, path string) error {
	path, err := s.resolve(path)
	if err != nil {
		return err
	}

	lines, err := fileio.Load(ctx, path, s.maxLine)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	err = s.hist.Batch(func(b *buffer.Buffer) error {
		b.Clear()
		for _, l := range lines {
			b.Append(l)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.path = path
	s.markSaved()
	return nil
}

// Open loads path if it exists, or binds the session to it as a new file
// when it does not. Any other load error is returned.
func (s *Session) Open(ctx context.Context, path string) error {
	err := s.Load(ctx, path)
	if err == nil || !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	s.Bind(path)
	return nil
}

// Bind sets the file Save and Diff use by default without reading it.
func (s *Session) Bind(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.path = path
}

// Save writes the buffer to path, or to the bound file when path is empty.
// On success the session is bound to path.
func (s *Session) Save(ctx context.Context, path string) error {
	path, err := s.resolve(path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fileio.Save(ctx, path, s.buf.Lines()); err != nil {
		return err
	}
	s.path = path
	s.markSaved()
	return nil
}

// Diff compares the bound file on disk with the buffer. A file that does
// not exist yet compares as empty.
func (s *Session) Diff(ctx context.Context) (diff.Result, error) {
	path, err := s.resolve("")
	if err != nil {
		return diff.Result{}, err
	}

	disk, err := fileio.Load(ctx, path, s.maxLine)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return diff.Result{}, err
	}

	return diff.Compute(disk, s.Lines(), path+" (disk)", path+" (buffer)"), nil
}

// LastChange compares the state one undo step back with the current buffer.
// It reports false when there is no earlier state to compare against.
func (s *Session) LastChange() (diff.Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.hist.Previous()
	if !ok {
		return diff.Result{}, false
	}
	return diff.Compute(prev.Lines(), s.buf.Lines(), "previous", "current"), true
}

func (s *Session) resolve(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.path == "" {
		return "", ErrNoFile
	}
	return s.path, nil
}

// String identifies the session in log output.
func (s *Session) String() string {
	if p := s.Path(); p != "" {
		return fmt.Sprintf("session %s (%s)", s.id, p)
	}
	return "session " + s.id
}
