package encoding_test

import (
	"testing"

	enc "github.com/named-data/tlvnode/std/encoding"
	tu "github.com/named-data/tlvnode/std/utils/testutils"
	"github.com/stretchr/testify/require"
)

func leaf(t *testing.T, tag uint64, val string) *enc.Node {
	n := enc.NewDefaultNode()
	require.NoError(t, n.SetTagInt(tag))
	require.NoError(t, n.SetValue([]byte(val)))
	return n
}

func TestChildrenAppend(t *testing.T) {
	tu.SetT(t)

	parent := enc.NewDefaultNode()
	require.NoError(t, parent.SetTagInt(0x10))
	require.NoError(t, parent.AppendChild(leaf(t, 1, "abc")))
	require.NoError(t, parent.AppendChild(leaf(t, 2, "")))

	require.Equal(t, tu.Hex("0010 000b 0001 0003 616263 0002 0000"), []byte(parent.Bytes()))

	children := tu.NoErr(parent.Children())
	require.Len(t, children, 2)
	require.Equal(t, enc.Buffer{0, 1}, children[0].Tag())
	require.Equal(t, enc.Buffer("abc"), children[0].Value())
	require.Equal(t, enc.Buffer{0, 2}, children[1].Tag())
	require.Equal(t, enc.Buffer{}, children[1].Value())
}

func TestChildrenSet(t *testing.T) {
	tu.SetT(t)

	a, b := leaf(t, 1, "a"), leaf(t, 2, "bb")
	parent := enc.NewDefaultNode()
	require.NoError(t, parent.SetChildren(a, b))

	children := tu.NoErr(parent.Children())
	require.Len(t, children, 2)
	require.True(t, children[0].Equal(a))
	require.True(t, children[1].Equal(b))

	require.NoError(t, parent.SetChildren())
	require.True(t, parent.HasValue())
	require.Empty(t, tu.NoErr(parent.Children()))
}

func TestChildrenOverflow(t *testing.T) {
	tu.SetT(t)

	d := enc.Dialect{TagWidth: 1, LengthWidth: 1}
	big := enc.NewNode(d)
	require.NoError(t, big.SetValue(make([]byte, 200)))

	parent := enc.NewNode(d)
	require.NoError(t, parent.AppendChild(big))
	var errOvf enc.ErrFieldOverflow
	require.ErrorAs(t, parent.AppendChild(big), &errOvf)
	require.Equal(t, uint64(202), parent.Length())
	require.Len(t, tu.NoErr(parent.Children()), 1)
}

func TestChildrenMalformed(t *testing.T) {
	tu.SetT(t)

	parent := enc.NewDefaultNode()
	require.NoError(t, parent.SetValue(tu.Hex("0001 0001 aa 0002")))
	err := tu.Err(parent.Children())
	var errParse enc.ErrFailToParse
	require.ErrorAs(t, err, &errParse)
	require.Equal(t, 1, errParse.Index)
	require.ErrorIs(t, err, enc.ErrTruncatedHeader)

	require.NoError(t, parent.SetValue(tu.Hex("0001 0009 aa")))
	var errLen enc.ErrLengthMismatch
	require.ErrorAs(t, tu.Err(parent.Children()), &errLen)
	require.Equal(t, enc.ErrLengthMismatch{Declared: 9, Actual: 1}, errLen)

	unset := enc.NewDefaultNode()
	require.Empty(t, tu.NoErr(unset.Children()))
}

func TestWalk(t *testing.T) {
	tu.SetT(t)

	// root
	//   group
	//     leaf "x"
	//     leaf "yz"
	//   leaf "w"
	group := enc.NewDefaultNode()
	require.NoError(t, group.SetTagInt(0x20))
	require.NoError(t, group.SetChildren(leaf(t, 1, "x"), leaf(t, 2, "yz")))

	root := enc.NewDefaultNode()
	require.NoError(t, root.SetTagInt(0x30))
	require.NoError(t, root.SetChildren(group, leaf(t, 3, "w")))

	type visit struct {
		depth int
		tag   string
	}
	visits := []visit{}
	count := root.Walk(func(depth int, n *enc.Node) bool {
		visits = append(visits, visit{depth, enc.EncodeHex(n.Tag(), "")})
		return true
	})
	require.Equal(t, 5, count)
	require.Equal(t, []visit{
		{0, "0030"},
		{1, "0020"},
		{2, "0001"},
		{2, "0002"},
		{1, "0003"},
	}, visits)
	require.Equal(t, 5, root.Count())

	// pruning below the group
	count = root.Walk(func(depth int, n *enc.Node) bool {
		return !n.Equal(group)
	})
	require.Equal(t, 3, count)

	// a leaf whose value is not a record sequence
	require.Equal(t, 1, leaf(t, 9, "plain text").Count())
	require.Equal(t, 1, enc.NewDefaultNode().Count())
}
