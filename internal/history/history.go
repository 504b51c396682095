// Package history provides bounded undo/redo over a line buffer.
//
// Every committed edit pushes a full snapshot of the buffer's lines. Whole
// snapshots are kept rather than diffs; with a handful of retained states the
// memory cost is small and there are no diff/merge edge cases. The undo ring
// is seeded with the empty buffer and never drops below one entry, so undo can
// never go further back than the oldest state still retained.
package history

import (
	"github.com/jpl-au/lined/internal/buffer"
)

// DefaultCapacity is the number of buffer states retained when no capacity
// is configured: the current state plus two undo steps.
const DefaultCapacity = 3

// Options configures a Manager.
type Options struct {
	// Capacity is the maximum number of snapshots on the undo ring, including
	// the current state. Values below 1 fall back to DefaultCapacity.
	Capacity int
}

// Manager routes buffer edits through snapshotting and owns the undo and redo
// rings. Like Buffer it is not safe for concurrent use.
type Manager struct {
	buf  *buffer.Buffer
	undo *Ring[buffer.Snapshot]
	redo *Ring[buffer.Snapshot]
}

// New wraps buf and seeds history with a snapshot of its current lines.
func New(buf *buffer.Buffer, opts Options) *Manager {
	capacity := opts.Capacity
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	m := &Manager{
		buf:  buf,
		undo: NewRing[buffer.Snapshot](capacity),
		redo: NewRing[buffer.Snapshot](capacity),
	}
	m.undo.Push(buf.Snapshot())
	return m
}

// View returns read-only access to the buffer.
func (m *Manager) View() buffer.Reader { return m.buf }

// Cursor returns the buffer's append cursor.
func (m *Manager) Cursor() int { return m.buf.Cursor() }

// Capacity returns the undo ring's capacity.
func (m *Manager) Capacity() int { return m.undo.Cap() }

// UndoDepth returns the number of snapshots on the undo ring, current state included.
func (m *Manager) UndoDepth() int { return m.undo.Len() }

// RedoDepth returns the number of snapshots waiting to be redone.
func (m *Manager) RedoDepth() int { return m.redo.Len() }

// CanUndo reports whether Undo would change anything.
func (m *Manager) CanUndo() bool { return m.undo.Len() > 1 }

// CanRedo reports whether Redo would change anything.
func (m *Manager) CanRedo() bool { return m.redo.Len() > 0 }

// Append appends text at the cursor. See buffer.Buffer.Append.
func (m *Manager) Append(text string) {
	m.buf.Append(text)
	m.commit()
}

// StartNewLine advances the cursor. It is a committed edit like any other,
// even though the lines themselves do not change.
func (m *Manager) StartNewLine() {
	m.buf.StartNewLine()
	m.commit()
}

// Insert splices or overwrites text. Rejections leave history untouched.
func (m *Manager) Insert(lineIndex, symbolIndex int, text string, replace bool) error {
	if err := m.buf.Insert(lineIndex, symbolIndex, text, replace); err != nil {
		return err
	}
	m.commit()
	return nil
}

// Delete removes symbols from a line. Rejections leave history untouched.
func (m *Manager) Delete(lineIndex, symbolIndex, numSymbols int) error {
	if err := m.buf.Delete(lineIndex, symbolIndex, numSymbols); err != nil {
		return err
	}
	m.commit()
	return nil
}

// Clear empties the buffer as an undoable edit.
func (m *Manager) Clear() {
	m.buf.Clear()
	m.commit()
}

// Batch runs fn against a scratch copy of the buffer and, if fn succeeds,
// installs the result as a single committed edit. On error the buffer and
// history are left as they were.
func (m *Manager) Batch(fn func(b *buffer.Buffer) error) error {
	scratch := m.buf.Clone()
	if err := fn(scratch); err != nil {
		return err
	}
	*m.buf = *scratch
	m.commit()
	return nil
}

// Reset empties the buffer and reseeds history with the empty state,
// discarding every undo and redo entry.
func (m *Manager) Reset() {
	m.buf.Clear()
	m.undo.Reset()
	m.redo.Reset()
	m.undo.Push(m.buf.Snapshot())
}

// Undo steps back one committed edit. It returns false without doing
// anything when only the oldest retained state is left.
func (m *Manager) Undo() bool {
	if !m.CanUndo() {
		return false
	}
	top, _ := m.undo.Pop()
	m.redo.Push(top)
	prev, _ := m.undo.Peek()
	m.buf.Restore(prev)
	return true
}

// Redo re-applies the most recently undone edit. It returns false when there
// is nothing to redo.
func (m *Manager) Redo() bool {
	if !m.CanRedo() {
		return false
	}
	next, _ := m.redo.Pop()
	m.undo.Push(next)
	m.buf.Restore(next)
	return true
}

// Snapshots returns the undo ring oldest first, for inspection.
func (m *Manager) Snapshots() []buffer.Snapshot { return m.undo.Items() }

// Previous returns the state one undo step back, if there is one.
func (m *Manager) Previous() (buffer.Snapshot, bool) {
	items := m.undo.Items()
	if len(items) < 2 {
		return buffer.Snapshot{}, false
	}
	return items[len(items)-2], true
}

// commit records the buffer's current lines and invalidates redo.
func (m *Manager) commit() {
	m.undo.Push(m.buf.Snapshot())
	m.redo.Reset()
}
