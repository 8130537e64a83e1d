package chain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeProofRoundTrip(t *testing.T) {
	proof := []byte{0xde, 0xad, 0xbe, 0xef}
	hex := EncodeProof(proof)
	assert.Equal(t, "0xdeadbeef", hex)

	back, err := DecodeProof(hex)
	require.NoError(t, err)
	assert.Equal(t, proof, back)

	_, err = DecodeProof("deadbeef")
	assert.ErrorIs(t, err, ErrInvalidProofHex)
}

func TestEncodePublicInputs(t *testing.T) {
	words, err := EncodePublicInputs([]string{
		"0x" + strings.Repeat("0", 62) + "08",
		"0x8",
		"8",
		"0x0102",
	})
	require.NoError(t, err)
	require.Len(t, words, 4)

	var eight [32]byte
	eight[31] = 8
	assert.Equal(t, eight, words[0])
	assert.Equal(t, eight, words[1])
	assert.Equal(t, eight, words[2])

	var w258 [32]byte
	w258[30], w258[31] = 0x01, 0x02
	assert.Equal(t, w258, words[3])
}

func TestEncodePublicInputsRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"0x",
		"0xzz",
		"-1",
		"twelve",
		"0x" + strings.Repeat("ff", 33),
	}
	for _, v := range bad {
		_, err := EncodePublicInputs([]string{"0x01", v})
		assert.ErrorIs(t, err, ErrInvalidPublicInput, "value %q", v)
	}
}

func TestEncodePublicInputsEmpty(t *testing.T) {
	words, err := EncodePublicInputs(nil)
	require.NoError(t, err)
	assert.Empty(t, words)
}
