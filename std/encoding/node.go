package encoding

import (
	"bytes"
	"fmt"

	"github.com/cespare/xxhash"
	"github.com/named-data/tlvnode/std/log"
	"github.com/named-data/tlvnode/std/types/optional"
)

// Node is a single Tag-Length-Value record with fixed-width tag and length fields.
//
// The length field is kept in sync with the value by the value setters.
// A Node is not safe for concurrent mutation.
type Node struct {
	dialect Dialect
	tag     Buffer
	length  Buffer
	value   optional.Optional[Buffer]
}

// NewNode creates an empty node of the given dialect.
// The tag and length are zero-filled and the value is unset.
// Panics if the dialect is invalid.
func NewNode(d Dialect) *Node {
	if err := d.Validate(); err != nil {
		panic(err)
	}
	return &Node{
		dialect: d,
		tag:     make(Buffer, d.TagWidth),
		length:  make(Buffer, d.LengthWidth),
	}
}

// NewDefaultNode creates an empty node of DefaultDialect.
func NewDefaultNode() *Node {
	return NewNode(DefaultDialect)
}

func (n *Node) Dialect() Dialect {
	return n.dialect
}

func (n *Node) TagWidth() int {
	return n.dialect.TagWidth
}

func (n *Node) LengthWidth() int {
	return n.dialect.LengthWidth
}

func (n *Node) ByteOrder() ByteOrder {
	return n.dialect.ByteOrder
}

// Tag returns a copy of the tag field.
func (n *Node) Tag() Buffer {
	return bytes.Clone(n.tag)
}

// SetTag copies b into the tag field from offset 0.
// Shorter input is zero padded on the right, longer input is truncated.
func (n *Node) SetTag(b []byte) {
	n.tag = fitField(b, n.dialect.TagWidth)
}

// SetTagInt encodes v into the tag field.
func (n *Node) SetTagInt(v uint64) error {
	buf := make(Buffer, n.dialect.TagWidth)
	if !PutUint(buf, v, n.dialect.ByteOrder) {
		err := ErrFieldOverflow{Field: "tag", Width: len(buf), Value: v}
		log.Trace(n, "Tag overflow", "err", err)
		return err
	}
	n.tag = buf
	return nil
}

// SetTagHex decodes s and sets the tag as SetTag does.
func (n *Node) SetTagHex(s string) error {
	b, err := DecodeHex(s)
	if err != nil {
		return err
	}
	n.SetTag(b)
	return nil
}

// Length returns the length field as an integer.
func (n *Node) Length() uint64 {
	l, _ := n.dialect.ByteOrder.Uint(n.length)
	return l
}

// LengthBytes returns a copy of the raw length field.
func (n *Node) LengthBytes() Buffer {
	return bytes.Clone(n.length)
}

// SetLength copies b into the length field with the same padding rules as SetTag.
// The value is not touched, so this can break the length invariant.
func (n *Node) SetLength(b []byte) {
	n.length = fitField(b, n.dialect.LengthWidth)
}

// SetLengthInt encodes v into the length field.
// The value is not touched, so this can break the length invariant.
func (n *Node) SetLengthInt(v uint64) error {
	buf := make(Buffer, n.dialect.LengthWidth)
	if !PutUint(buf, v, n.dialect.ByteOrder) {
		err := ErrFieldOverflow{Field: "length", Width: len(buf), Value: v}
		log.Trace(n, "Length overflow", "err", err)
		return err
	}
	n.length = buf
	return nil
}

// SetLengthHex decodes s and sets the length as SetLength does.
func (n *Node) SetLengthHex(s string) error {
	b, err := DecodeHex(s)
	if err != nil {
		return err
	}
	n.SetLength(b)
	return nil
}

// Value returns a copy of the value, or nil if it was never set.
func (n *Node) Value() Buffer {
	v, ok := n.value.Get()
	if !ok {
		return nil
	}
	return bytes.Clone(v)
}

// HasValue reports whether a value has been set.
func (n *Node) HasValue() bool {
	return n.value.IsSet()
}

// SetValue copies b into the value and updates the length field.
// A nil b sets an empty value. If len(b) does not fit the length field,
// neither field is changed.
func (n *Node) SetValue(b []byte) error {
	v := make(Buffer, len(b))
	copy(v, b)
	return n.setValue(v)
}

// SetValueHex decodes s and sets it as the value.
func (n *Node) SetValueHex(s string) error {
	b, err := DecodeHex(s)
	if err != nil {
		return err
	}
	return n.setValue(b)
}

// SetValueNode sets the serialized form of inner as the value.
// inner is not retained. Panics if inner has no value.
func (n *Node) SetValueNode(inner *Node) error {
	return n.setValue(inner.Bytes())
}

// setValue takes ownership of v.
func (n *Node) setValue(v Buffer) error {
	if err := n.SetLengthInt(uint64(len(v))); err != nil {
		return err
	}
	n.value.Set(v)
	return nil
}

// NodeLength is the total wire size: tag width, length width and declared length.
func (n *Node) NodeLength() uint64 {
	return uint64(n.dialect.HeaderLength()) + n.Length()
}

// EncodingLength is the number of bytes EncodeInto writes.
func (n *Node) EncodingLength() int {
	v, _ := n.value.Get()
	return n.dialect.HeaderLength() + len(v)
}

// EncodeInto writes tag, length and value into buf and returns the bytes written.
// buf must hold at least EncodingLength bytes. Panics if the value is unset.
func (n *Node) EncodeInto(buf Buffer) int {
	v := n.value.Expect(ErrValueUnset)
	pos := copy(buf, n.tag)
	pos += copy(buf[pos:], n.length)
	pos += copy(buf[pos:], v)
	return pos
}

// Bytes returns tag, length and value concatenated.
// Panics with ErrValueUnset if the value was never set.
func (n *Node) Bytes() Buffer {
	buf := make(Buffer, n.EncodingLength())
	n.EncodeInto(buf)
	return buf
}

// Encode is Bytes without the panic.
func (n *Node) Encode() (Buffer, error) {
	if !n.value.IsSet() {
		return nil, ErrValueUnset
	}
	return n.Bytes(), nil
}

// Hex returns the lowercase hex form of Bytes.
// A non-empty sep is placed between every two bytes, with none trailing.
func (n *Node) Hex(sep string) string {
	return EncodeHex(n.Bytes(), sep)
}

// Decode parses a complete record from buf into the node.
// buf must contain exactly one record. The node is left unchanged on error.
func (n *Node) Decode(buf []byte) error {
	tw, lw := n.dialect.TagWidth, n.dialect.LengthWidth
	if len(buf) < tw+lw {
		return ErrTruncatedHeader
	}

	t := buf[:tw]
	l := buf[tw : tw+lw]
	v := buf[tw+lw:]

	declared, _ := n.dialect.ByteOrder.Uint(l)
	if declared != uint64(len(v)) {
		return ErrLengthMismatch{Declared: declared, Actual: len(v)}
	}

	n.tag = bytes.Clone(t)
	n.length = bytes.Clone(l)
	n.value.Set(append(Buffer{}, v...))
	return nil
}

// DecodeHex parses a record given as ungrouped hex.
func (n *Node) DecodeHex(s string) error {
	b, err := DecodeHex(s)
	if err != nil {
		return err
	}
	return n.Decode(b)
}

// Load is Decode reporting only success.
func (n *Node) Load(buf []byte) bool {
	if err := n.Decode(buf); err != nil {
		log.Trace(n, "Rejected record", "err", err)
		return false
	}
	return true
}

// LoadHex is DecodeHex reporting only success.
func (n *Node) LoadHex(s string) bool {
	if err := n.DecodeHex(s); err != nil {
		log.Trace(n, "Rejected record", "err", err)
		return false
	}
	return true
}

// Clone returns a deep copy of the node.
func (n *Node) Clone() *Node {
	c := &Node{
		dialect: n.dialect,
		tag:     bytes.Clone(n.tag),
		length:  bytes.Clone(n.length),
	}
	if v, ok := n.value.Get(); ok {
		c.value.Set(bytes.Clone(v))
	}
	return c
}

// Equal reports whether both nodes have the same dialect and fields.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	nv, nok := n.value.Get()
	ov, ook := o.value.Get()
	return n.dialect == o.dialect &&
		nok == ook &&
		bytes.Equal(n.tag, o.tag) &&
		bytes.Equal(n.length, o.length) &&
		bytes.Equal(nv, ov)
}

// Hash returns the xxhash of the encoded record, or 0 if the value is unset.
func (n *Node) Hash() uint64 {
	if !n.value.IsSet() {
		return 0
	}
	return xxhash.Sum64(n.Bytes())
}

func (n *Node) String() string {
	if !n.value.IsSet() {
		return fmt.Sprintf("tlv(tag=%s, len=%d, unset)", EncodeHex(n.tag, ""), n.Length())
	}
	return fmt.Sprintf("tlv(tag=%s, len=%d)", EncodeHex(n.tag, ""), n.Length())
}

// fitField copies b into a fresh zero-filled buffer of width bytes.
func fitField(b []byte, width int) Buffer {
	buf := make(Buffer, width)
	copy(buf, b)
	return buf
}
