// Package chain covers the wallet session and the on-chain proof verifier.
package chain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

var (
	ErrInvalidPublicInput = errors.New("chain: invalid public input")
	ErrInvalidProofHex    = errors.New("chain: invalid proof hex")
)

// EncodeProof renders proof bytes as 0x-prefixed hex, the form the verify call takes
func EncodeProof(proof []byte) string {
	return hexutil.Encode(proof)
}

// DecodeProof reverses EncodeProof
func DecodeProof(proofHex string) ([]byte, error) {
	b, err := hexutil.Decode(proofHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProofHex, err)
	}
	return b, nil
}

// EncodePublicInputs converts prover public inputs into bytes32 words
// Values may be 0x-prefixed hex (leading zeros allowed) or decimal; each
// must fit in 256 bits.
func EncodePublicInputs(values []string) ([][32]byte, error) {
	out := make([][32]byte, 0, len(values))
	for i, v := range values {
		word, err := parseWord(v)
		if err != nil {
			return nil, fmt.Errorf("%w: index %d (%q): %v", ErrInvalidPublicInput, i, v, err)
		}
		out = append(out, word.Bytes32())
	}
	return out, nil
}

func parseWord(v string) (*uint256.Int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, errors.New("empty value")
	}

	if strings.HasPrefix(v, "0x") || strings.HasPrefix(v, "0X") {
		digits := v[2:]
		if digits == "" {
			return nil, errors.New("no hex digits")
		}
		if len(digits)%2 == 1 {
			digits = "0" + digits
		}
		raw, err := hexutil.Decode("0x" + digits)
		if err != nil {
			return nil, err
		}
		if len(raw) > 32 {
			return nil, fmt.Errorf("%d bytes exceeds 32", len(raw))
		}
		return new(uint256.Int).SetBytes(raw), nil
	}

	return uint256.FromDecimal(v)
}
