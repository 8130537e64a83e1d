// Package prover is the client side of the external proving service.
package prover

import (
	"context"
	"errors"
	"fmt"

	"nounquest/internal/attack"
)

// MaxPower is the largest value the attack circuit accepts per element (u8 inputs)
const MaxPower = 255

var (
	ErrPowerOutOfRange = errors.New("prover: attack power out of circuit range")
	ErrEmptyProof      = errors.New("prover: empty proof")
	ErrNoPublicInputs  = errors.New("prover: no public inputs")
)

// Prover generates a proof for one circuit input
type Prover interface {
	GenerateProof(ctx context.Context, in Input) (*Artifact, error)
}

// Input is the circuit input; field order follows the circuit's declared inputs
type Input struct {
	Fire  uint64 `json:"fire"`
	Water uint64 `json:"water"`
	Earth uint64 `json:"earth"`
	Wind  uint64 `json:"wind"`
}

// InputFromRecord copies the element powers of rec into circuit order
func InputFromRecord(rec attack.Record) Input {
	return Input{
		Fire:  rec.Fire,
		Water: rec.Water,
		Earth: rec.Earth,
		Wind:  rec.Wind,
	}
}

// Fields returns the values in circuit order
func (in Input) Fields() []uint64 {
	return []uint64{in.Fire, in.Water, in.Earth, in.Wind}
}

// Validate checks every field against the circuit range
func (in Input) Validate() error {
	for i, v := range in.Fields() {
		if v > MaxPower {
			return fmt.Errorf("%w: %s=%d (max %d)", ErrPowerOutOfRange, attack.Elements[i], v, MaxPower)
		}
	}
	return nil
}

// Artifact is what the prover hands back
// PublicInputs are 0x-prefixed hex or decimal strings, in circuit order
type Artifact struct {
	Proof        []byte
	PublicInputs []string
}

// Check rejects artifacts the verifier could never accept
func (a *Artifact) Check() error {
	if a == nil || len(a.Proof) == 0 {
		return ErrEmptyProof
	}
	if len(a.PublicInputs) == 0 {
		return ErrNoPublicInputs
	}
	return nil
}
