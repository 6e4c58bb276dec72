package encoding

import "fmt"

// Dialect is the fixed shape shared by all nodes of one TLV format.
type Dialect struct {
	// Number of bytes in the tag field.
	TagWidth int `json:"tag_width"`
	// Number of bytes in the length field, at most 8.
	LengthWidth int `json:"length_width"`
	// Byte order of the length field and of integer tags.
	ByteOrder ByteOrder `json:"byte_order"`
}

// DefaultDialect uses 2-byte tags, 2-byte lengths and big-endian integers.
var DefaultDialect = Dialect{
	TagWidth:    2,
	LengthWidth: 2,
	ByteOrder:   BigEndian,
}

// MaxLengthWidth is the widest length field that fits a uint64.
const MaxLengthWidth = 8

// Validate checks the dialect widths and byte order.
func (d Dialect) Validate() error {
	if d.TagWidth < 1 {
		return ErrFormat{fmt.Sprintf("tag width must be positive, got %d", d.TagWidth)}
	}
	if d.LengthWidth < 1 || d.LengthWidth > MaxLengthWidth {
		return ErrFormat{fmt.Sprintf("length width must be in [1, %d], got %d", MaxLengthWidth, d.LengthWidth)}
	}
	if !d.ByteOrder.valid() {
		return ErrFormat{fmt.Sprintf("unknown byte order %d", d.ByteOrder)}
	}
	return nil
}

// HeaderLength is the size of the tag and length fields together.
func (d Dialect) HeaderLength() int {
	return d.TagWidth + d.LengthWidth
}

// MaxValueLength is the largest value the length field can describe.
func (d Dialect) MaxValueLength() uint64 {
	if d.LengthWidth >= 8 {
		return ^uint64(0)
	}
	return 1<<(8*uint(d.LengthWidth)) - 1
}

func (d Dialect) String() string {
	return fmt.Sprintf("T%d/L%d/%s", d.TagWidth, d.LengthWidth, d.ByteOrder)
}
