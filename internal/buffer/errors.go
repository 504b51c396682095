// errors.go defines sentinel errors for rejected buffer edits.
//
// Every rejection is detected before the buffer is touched, so callers can
// report the error and carry on with the session. Detail (the offending index
// and the line length) is added by wrapping with fmt.Errorf.

package buffer

import "errors"

var (
	// ErrInvalidLineIndex is returned when a line index is outside [0, Len()).
	ErrInvalidLineIndex = errors.New("invalid line index")
	// ErrSymbolIndexOutOfRange is returned when a character offset is outside
	// the range the operation accepts for the target line.
	ErrSymbolIndexOutOfRange = errors.New("symbol index out of range")
	// ErrReplacementExceedsBoundary is returned when a replace-mode insert
	// would run past the end of the line.
	ErrReplacementExceedsBoundary = errors.New("replacement exceeds line boundary")
	// ErrInvalidCount is returned when a delete asks for a negative number of symbols.
	ErrInvalidCount = errors.New("invalid symbol count")
)
