// Package fileio reads and writes the plain line-per-line text format the
// editor persists: each line followed by "\n", no escaping, no header.
package fileio

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	// ErrUnavailable is returned when a file cannot be opened for reading or
	// writing.
	ErrUnavailable = errors.New("file unavailable")
	// ErrLineTooLong is returned when a line exceeds the configured maximum.
	ErrLineTooLong = errors.New("line exceeds maximum length")
)

// DefaultMaxLineLength applies when Load is given a non-positive limit.
const DefaultMaxLineLength = 10 * 1024 * 1024

// Load reads the file at path and returns its lines without terminators.
func Load(ctx context.Context, path string, maxLineLength int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnavailable, path, err)
	}
	defer f.Close()

	lines, err := ReadLines(ctx, f, maxLineLength)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return lines, nil
}

// ReadLines splits r into lines. A trailing newline does not produce an
// empty final line; "\r\n" terminators are accepted and stripped.
func ReadLines(ctx context.Context, r io.Reader, maxLineLength int) ([]string, error) {
	if maxLineLength <= 0 {
		maxLineLength = DefaultMaxLineLength
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(64*1024, maxLineLength+1)), maxLineLength+1)

	var lines []string
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w (%d bytes)", ErrLineTooLong, maxLineLength)
		}
		return nil, err
	}
	return lines, nil
}

// Save creates or truncates path and writes each line followed by "\n".
func Save(ctx context.Context, path string, lines []string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrUnavailable, path, err)
	}

	if err := WriteLines(ctx, f, lines); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// WriteLines writes each line followed by "\n".
func WriteLines(ctx context.Context, w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, l := range lines {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := bw.WriteString(l); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
