package sgf

import "fmt"

// ParseError is returned for malformed SGF.
type ParseError struct {
	Offset int // byte offset into the input, -1 if unknown
	Msg    string
}

func (err *ParseError) Error() string {
	if err.Offset < 0 {
		return fmt.Sprintf("invalid SGF: %s", err.Msg)
	}
	return fmt.Sprintf("invalid SGF at offset %d: %s", err.Offset, err.Msg)
}

func parseErrorf(offset int, format string, args ...interface{}) *ParseError {
	return &ParseError{Offset: offset, Msg: fmt.Sprintf(format, args...)}
}
