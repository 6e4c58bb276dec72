package encoding_test

import (
	"testing"

	enc "github.com/named-data/tlvnode/std/encoding"
	tu "github.com/named-data/tlvnode/std/utils/testutils"
	"github.com/stretchr/testify/require"
)

func TestBufferViewRead(t *testing.T) {
	tu.SetT(t)

	r := enc.NewBufferView(enc.Buffer{1, 2, 3, 4, 5})
	require.False(t, r.IsEOF())
	require.Equal(t, 5, r.Length())

	require.Equal(t, uint8(1), tu.NoErr(r.ReadByte()))
	require.Equal(t, enc.Buffer{2, 3}, tu.NoErr(r.ReadBuf(2)))
	require.Equal(t, 3, r.Pos())
	require.Equal(t, 2, r.Remaining())

	require.Equal(t, enc.ErrBufferOverflow, tu.Err(r.ReadBuf(3)))
	require.Equal(t, 3, r.Pos())

	require.NoError(t, r.Skip(2))
	require.True(t, r.IsEOF())
	require.Equal(t, enc.ErrBufferOverflow, tu.Err(r.ReadByte()))
	require.Error(t, r.Skip(1))
}

func TestBufferViewReadRecord(t *testing.T) {
	tu.SetT(t)

	buf := tu.Hex("0001 0002 aabb 0002 0000 0003 00")
	r := enc.NewBufferView(buf)

	rec := tu.NoErr(r.ReadRecord(enc.DefaultDialect))
	require.Equal(t, enc.Buffer(tu.Hex("0001 0002 aabb")), rec)

	n := tu.NoErr(r.ReadNode(enc.DefaultDialect))
	require.Equal(t, enc.Buffer{0, 2}, n.Tag())
	require.Equal(t, enc.Buffer{}, n.Value())

	// truncated header does not advance
	pos := r.Pos()
	require.Equal(t, enc.ErrTruncatedHeader, tu.Err(r.ReadRecord(enc.DefaultDialect)))
	require.Equal(t, pos, r.Pos())

	r = enc.NewBufferView(tu.Hex("0003 0005 00"))
	require.Equal(t, enc.ErrLengthMismatch{Declared: 5, Actual: 1}, tu.Err(r.ReadNode(enc.DefaultDialect)))
	require.Equal(t, 0, r.Pos())
}
