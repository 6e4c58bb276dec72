package encoding

import (
	"strings"

	"golang.org/x/exp/constraints"
)

// ByteOrder selects how multi-byte integer fields are laid out.
type ByteOrder uint8

const (
	// BigEndian stores the most significant byte first.
	BigEndian ByteOrder = iota
	// LittleEndian stores the least significant byte first.
	LittleEndian
)

func (o ByteOrder) String() string {
	switch o {
	case BigEndian:
		return "big"
	case LittleEndian:
		return "little"
	default:
		return "unknown"
	}
}

// ParseByteOrder parses a byte order name.
func ParseByteOrder(s string) (ByteOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "big", "be", "msb", "big-endian":
		return BigEndian, nil
	case "little", "le", "lsb", "little-endian":
		return LittleEndian, nil
	}
	return BigEndian, ErrFormat{"invalid byte order: " + s}
}

func (o ByteOrder) MarshalText() ([]byte, error) {
	if !o.valid() {
		return nil, ErrFormat{"invalid byte order"}
	}
	return []byte(o.String()), nil
}

func (o *ByteOrder) UnmarshalText(text []byte) error {
	v, err := ParseByteOrder(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// MarshalYAML encodes a byte order as a YAML scalar.
func (o ByteOrder) MarshalYAML() (any, error) {
	b, err := o.MarshalText()
	return string(b), err
}

// UnmarshalYAML decodes a byte order from a YAML scalar.
func (o *ByteOrder) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	return o.UnmarshalText([]byte(s))
}

func (o ByteOrder) valid() bool {
	return o == BigEndian || o == LittleEndian
}

// PutUint writes v into exactly len(buf) bytes using the given order.
// Returns false without touching buf if v does not fit.
func PutUint[T constraints.Unsigned](buf Buffer, v T, order ByteOrder) bool {
	x := uint64(v)
	if len(buf) < 8 && x>>(8*uint(len(buf))) != 0 {
		return false
	}

	for i := range buf {
		b := byte(0)
		if i < 8 {
			b = byte(x >> (8 * uint(i)))
		}
		if order == LittleEndian {
			buf[i] = b
		} else {
			buf[len(buf)-1-i] = b
		}
	}
	return true
}

// Uint decodes an unsigned integer of any width.
// Returns false if the value does not fit in 64 bits.
func (o ByteOrder) Uint(buf Buffer) (uint64, bool) {
	val := uint64(0)
	for i := range buf {
		var b byte
		if o == LittleEndian {
			b = buf[i]
		} else {
			b = buf[len(buf)-1-i]
		}
		if i >= 8 {
			if b != 0 {
				return 0, false
			}
			continue
		}
		val |= uint64(b) << (8 * uint(i))
	}
	return val, true
}
