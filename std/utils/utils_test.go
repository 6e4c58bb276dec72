package utils_test

import (
	"testing"

	"github.com/named-data/tlvnode/std/utils"
	tu "github.com/named-data/tlvnode/std/utils/testutils"
	"github.com/stretchr/testify/require"
)

func TestIf(t *testing.T) {
	tu.SetT(t)

	require.Equal(t, "leaf", utils.If(true, "leaf", "node"))
	require.Equal(t, 2, utils.If(false, 1, 2))
}

func TestHexFixture(t *testing.T) {
	tu.SetT(t)

	require.Equal(t, []byte{0x00, 0x01, 0xab}, tu.Hex("0001 ab"))
	require.Equal(t, []byte{}, tu.Hex(""))
}
