package prover

import (
	"context"
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	"golang.org/x/crypto/sha3"
)

// Dev proof layout mirrors a Groth16 proof: A(64) + B(128) + C(64) = 256 bytes.
// The bytes are hash-derived and only meaningful to a dev verifier.
const (
	devPointASize = 64
	devPointBSize = 128
	devPointCSize = 64
	devProofSize  = devPointASize + devPointBSize + devPointCSize
)

var _ Prover = Dev{}

// Dev is a deterministic local prover for running the game without a proving service
// The single public input is the total attack power.
type Dev struct{}

// GenerateProof derives proof bytes from the input with keccak256
func (Dev) GenerateProof(ctx context.Context, in Input) (*Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var total uint64
	seed := make([]byte, 0, 8*len(in.Fields()))
	for _, f := range in.Fields() {
		seed = binary.BigEndian.AppendUint64(seed, f)
		total += f
	}

	a := expand(keccak(seed, []byte("A")), devPointASize)
	b := expand(keccak(a, []byte("B")), devPointBSize)
	c := expand(keccak(a, b, []byte("C")), devPointCSize)

	proof := make([]byte, 0, devProofSize)
	proof = append(proof, a...)
	proof = append(proof, b...)
	proof = append(proof, c...)

	word := uint256.NewInt(total).Bytes32()
	return &Artifact{
		Proof:        proof,
		PublicInputs: []string{hexutil.Encode(word[:])},
	}, nil
}

func keccak(parts ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)
}

// expand stretches seed to n bytes by chained hashing
func expand(seed []byte, n int) []byte {
	out := make([]byte, 0, n)
	block := seed
	for len(out) < n {
		out = append(out, block...)
		block = keccak(block)
	}
	return out[:n]
}
