package codepoints

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfBounds is matched by every [IndexError].
var ErrIndexOutOfBounds = errors.New("index out of bounds")

// IndexError reports an access outside a UTF-16 buffer.
type IndexError struct {
	Index  int // The offending index.
	Length int // The length of the buffer.
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("codepoints: index %d out of bounds for length %d", e.Index, e.Length)
}

// Unwrap makes errors.Is(err, ErrIndexOutOfBounds) succeed.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfBounds
}
