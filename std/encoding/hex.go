package encoding

import (
	"strconv"
	"strings"

	"github.com/templexxx/xhex"
)

// EncodeHex returns the lowercase hex form of buf.
// A non-empty sep is placed between every two encoded bytes.
func EncodeHex(buf []byte, sep string) string {
	if len(buf) == 0 {
		return ""
	}
	h := make([]byte, len(buf)*2)
	xhex.Encode(h, buf)
	if sep == "" || len(buf) == 1 {
		return string(h)
	}

	sb := strings.Builder{}
	sb.Grow(len(h) + (len(buf)-1)*len(sep))
	for i := 0; i < len(h); i += 2 {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.Write(h[i : i+2])
	}
	return sb.String()
}

// DecodeHex parses an ungrouped hex string of either case.
func DecodeHex(s string) (Buffer, error) {
	if len(s)%2 != 0 {
		return nil, ErrFormat{"hex string has odd length"}
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return nil, ErrFormat{"invalid hex character at offset " + strconv.Itoa(i)}
		}
	}

	buf := make(Buffer, len(s)/2)
	if len(buf) == 0 {
		return buf, nil
	}
	if err := xhex.Decode(buf, []byte(strings.ToLower(s))); err != nil {
		return nil, ErrFormat{"invalid hex string: " + err.Error()}
	}
	return buf, nil
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
