// Package buffer holds the editor's in-memory text: an ordered list of lines
// and the append cursor that decides where the next plain append lands.
//
// Offsets are byte offsets. Every positional edit validates its indices before
// touching the lines, so a rejected edit leaves the buffer exactly as it was.
//
// Buffer is not safe for concurrent use. Callers that share one buffer across
// goroutines must serialise access (see internal/editor).
package buffer

import (
	"fmt"
	"slices"
)

// Reader is read-only access to a buffer. Print and search take a Reader so
// they cannot mutate the lines behind the history's back.
type Reader interface {
	// Len returns the number of lines.
	Len() int
	// Line returns the line at index i, or ErrInvalidLineIndex.
	Line(i int) (string, error)
	// Lines returns a copy of all lines in order.
	Lines() []string
}

// Buffer is an ordered sequence of lines plus the append cursor.
type Buffer struct {
	lines  []string
	cursor int
}

var _ Reader = (*Buffer)(nil)

// New returns an empty buffer with the cursor at 0.
func New() *Buffer {
	return &Buffer{}
}

// Len returns the number of lines.
func (b *Buffer) Len() int { return len(b.lines) }

// Cursor returns the index of the line the next Append targets.
// It may be past the last line, in which case Append creates a new line.
func (b *Buffer) Cursor() int { return b.cursor }

// Line returns the line at index i.
func (b *Buffer) Line(i int) (string, error) {
	if err := b.checkLine(i); err != nil {
		return "", err
	}
	return b.lines[i], nil
}

// Lines returns a copy of all lines.
func (b *Buffer) Lines() []string { return slices.Clone(b.lines) }

// Size returns the total number of bytes across all lines, excluding terminators.
func (b *Buffer) Size() int {
	n := 0
	for _, l := range b.lines {
		n += len(l)
	}
	return n
}

// Append adds text at the cursor. When the cursor has not reached an existing
// line, text becomes a new line at the end of the buffer. Otherwise text is
// joined onto the cursor's line with a newline separator, so repeated appends
// without StartNewLine accumulate inside one line slot.
func (b *Buffer) Append(text string) {
	if b.cursor >= len(b.lines) {
		b.lines = append(b.lines, text)
		return
	}
	b.lines[b.cursor] += "\n" + text
}

// StartNewLine advances the cursor by one. No line is allocated; the next
// Append creates it. Advancing repeatedly without appending leaves the cursor
// beyond the end, and later appends keep adding lines at the end until the
// line count catches up.
func (b *Buffer) StartNewLine() {
	b.cursor++
}

// Insert writes text into line lineIndex at byte offset symbolIndex.
//
// With replace false the text is spliced in and the line grows by len(text).
// With replace true the text overwrites len(text) bytes in place; the span must
// fit inside the line or ErrReplacementExceedsBoundary is returned.
func (b *Buffer) Insert(lineIndex, symbolIndex int, text string, replace bool) error {
	if err := b.checkLine(lineIndex); err != nil {
		return err
	}
	line := b.lines[lineIndex]
	if symbolIndex < 0 || symbolIndex > len(line) {
		return fmt.Errorf("%w: %d (line %d has %d symbols)", ErrSymbolIndexOutOfRange, symbolIndex, lineIndex, len(line))
	}

	if !replace {
		b.lines[lineIndex] = line[:symbolIndex] + text + line[symbolIndex:]
		return nil
	}

	end := symbolIndex + len(text)
	if end > len(line) {
		return fmt.Errorf("%w: %d+%d > %d", ErrReplacementExceedsBoundary, symbolIndex, len(text), len(line))
	}
	b.lines[lineIndex] = line[:symbolIndex] + text + line[end:]
	return nil
}

// Delete removes up to numSymbols bytes from line lineIndex starting at
// symbolIndex. Requests running past the end of the line remove the rest of
// the line; that is not an error.
func (b *Buffer) Delete(lineIndex, symbolIndex, numSymbols int) error {
	if err := b.checkLine(lineIndex); err != nil {
		return err
	}
	line := b.lines[lineIndex]
	if symbolIndex < 0 || symbolIndex >= len(line) {
		return fmt.Errorf("%w: %d (line %d has %d symbols)", ErrSymbolIndexOutOfRange, symbolIndex, lineIndex, len(line))
	}
	if numSymbols < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, numSymbols)
	}

	end := len(line)
	if numSymbols < end-symbolIndex {
		end = symbolIndex + numSymbols
	}
	b.lines[lineIndex] = line[:symbolIndex] + line[end:]
	return nil
}

// Clear removes every line and moves the cursor back to 0.
func (b *Buffer) Clear() {
	b.lines = nil
	b.cursor = 0
}

// Clone returns an independent copy of the buffer, cursor included.
func (b *Buffer) Clone() *Buffer {
	return &Buffer{lines: slices.Clone(b.lines), cursor: b.cursor}
}

// Snapshot captures the current lines.
func (b *Buffer) Snapshot() Snapshot {
	return NewSnapshot(b.lines)
}

// Restore replaces the lines with a copy of s. The cursor is left alone.
func (b *Buffer) Restore(s Snapshot) {
	b.lines = s.Lines()
}

func (b *Buffer) checkLine(i int) error {
	if i < 0 || i >= len(b.lines) {
		return fmt.Errorf("%w: %d (buffer has %d lines)", ErrInvalidLineIndex, i, len(b.lines))
	}
	return nil
}
