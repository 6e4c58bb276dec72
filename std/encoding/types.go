package encoding

import (
	"fmt"
)

// Buffer is a buffer of bytes
type Buffer []byte

// Wire is a collection of Buffer. May be allocated in non-contiguous memory.
type Wire []Buffer

// Join combines all buffers of the wire into one contiguous buffer.
func (w Wire) Join() []byte {
	if len(w) == 0 {
		return []byte{}
	} else if len(w) == 1 {
		return w[0]
	}

	n := 0
	for _, v := range w {
		n += len(v)
	}

	b := make([]byte, n)
	bp := copy(b, w[0])
	for _, v := range w[1:] {
		bp += copy(b[bp:], v)
	}
	return b
}

// Length returns the total number of bytes in the wire.
func (w Wire) Length() uint64 {
	ret := uint64(0)
	for _, v := range w {
		ret += uint64(len(v))
	}
	return ret
}

type ErrFormat struct {
	Msg string
}

func (e ErrFormat) Error() string {
	return e.Msg
}

// ErrTruncatedHeader is returned when a buffer is shorter than the tag and length fields.
var ErrTruncatedHeader = fmt.Errorf("buffer is shorter than the TLV header")

// ErrBufferOverflow is returned when a read goes past the end of a buffer.
var ErrBufferOverflow = fmt.Errorf("buffer overflow when parsing. One of the TLV Length is wrong")

// ErrValueUnset is raised when a node without a value is serialized.
var ErrValueUnset = fmt.Errorf("TLV value is not set")

// ErrLengthMismatch is returned when the declared length field does not
// match the number of value bytes actually present.
type ErrLengthMismatch struct {
	Declared uint64
	Actual   int
}

func (e ErrLengthMismatch) Error() string {
	return fmt.Sprintf("declared length %d does not match %d value bytes", e.Declared, e.Actual)
}

// ErrFieldOverflow is returned when an integer does not fit a fixed-width field.
type ErrFieldOverflow struct {
	Field string
	Width int
	Value uint64
}

func (e ErrFieldOverflow) Error() string {
	return fmt.Sprintf("value %d does not fit in %d-byte %s field", e.Value, e.Width, e.Field)
}

type ErrFailToParse struct {
	Index int
	Err   error
}

func (e ErrFailToParse) Error() string {
	return fmt.Sprintf("failed to parse child %d: %v", e.Index, e.Err)
}

func (e ErrFailToParse) Unwrap() error {
	return e.Err
}
