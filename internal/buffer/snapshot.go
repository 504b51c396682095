package buffer

import "slices"

// Snapshot is an immutable copy of a buffer's lines at one point in time.
// The cursor is not part of a snapshot.
//
// A Snapshot never shares its backing array with a live buffer: Snapshot()
// copies on the way out and Restore copies on the way back in.
type Snapshot struct {
	lines []string
}

// Len returns the number of lines captured.
func (s Snapshot) Len() int { return len(s.lines) }

// Lines returns a copy of the captured lines.
func (s Snapshot) Lines() []string { return slices.Clone(s.lines) }

// Equal reports whether two snapshots hold the same lines.
func (s Snapshot) Equal(o Snapshot) bool { return slices.Equal(s.lines, o.lines) }

// NewSnapshot builds a snapshot from lines. The slice is copied.
func NewSnapshot(lines []string) Snapshot {
	return Snapshot{lines: slices.Clone(lines)}
}
