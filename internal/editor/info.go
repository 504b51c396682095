package editor

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
)

// Info summarises a session's state.
type Info struct {
	Session   string `json:"session"`
	File      string `json:"file,omitempty"`
	Lines     int    `json:"lines"`
	Cursor    int    `json:"cursor"`
	Bytes     int    `json:"bytes"`
	UndoDepth int    `json:"undo_depth"`
	RedoDepth int    `json:"redo_depth"`
	CanUndo   bool   `json:"can_undo"`
	CanRedo   bool   `json:"can_redo"`
	Capacity  int    `json:"capacity"`
	Modified  bool   `json:"modified"`
}

// Info returns a summary of the session.
func (s *Session) Info() Info {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Info{
		Session:   s.id,
		File:      s.path,
		Lines:     s.buf.Len(),
		Cursor:    s.buf.Cursor(),
		Bytes:     s.buf.Size(),
		UndoDepth: s.hist.UndoDepth(),
		RedoDepth: s.hist.RedoDepth(),
		CanUndo:   s.hist.CanUndo(),
		CanRedo:   s.hist.CanRedo(),
		Capacity:  s.hist.Capacity(),
		Modified:  s.modified(),
	}
}

// Write prints the summary in aligned key/value form.
func (i Info) Write(w io.Writer) {
	file := i.File
	if file == "" {
		file = "(none)"
	}
	if i.Modified {
		file += " [modified]"
	}
	fmt.Fprintf(w, "session:  %s\n", i.Session)
	fmt.Fprintf(w, "file:     %s\n", file)
	fmt.Fprintf(w, "lines:    %d\n", i.Lines)
	fmt.Fprintf(w, "cursor:   %d\n", i.Cursor)
	fmt.Fprintf(w, "size:     %s\n", humanize.Bytes(uint64(i.Bytes)))
	fmt.Fprintf(w, "undo:     %d/%d\n", i.UndoDepth-1, i.Capacity-1)
	fmt.Fprintf(w, "redo:     %d\n", i.RedoDepth)
}
