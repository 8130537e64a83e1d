package submit

import (
	"github.com/google/uuid"
)

// Stage is a step of one submission attempt
type Stage int

const (
	StageIdle Stage = iota
	StageWalletCheck
	StageProofRequested
	StageProofReceived
	StageVerificationRequested
	StageDone
)

var stageNames = [...]string{
	StageIdle:                  "idle",
	StageWalletCheck:           "wallet_check",
	StageProofRequested:        "proof_requested",
	StageProofReceived:         "proof_received",
	StageVerificationRequested: "verification_requested",
	StageDone:                  "done",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "unknown"
	}
	return stageNames[s]
}

// Label is the player-facing progress text for the stage
func (s Stage) Label() string {
	switch s {
	case StageWalletCheck:
		return "Connecting wallet..."
	case StageProofRequested:
		return "Generating proof..."
	case StageProofReceived:
		return "Proof generated, encoding..."
	case StageVerificationRequested:
		return "Verifying on-chain..."
	}
	return ""
}

// Kind classifies how an attempt ended
type Kind int

const (
	KindSuccess Kind = iota
	KindVerificationFailed
	KindWalletError
	KindProverError
	KindCommunicationError
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindVerificationFailed:
		return "verification_failed"
	case KindWalletError:
		return "wallet_error"
	case KindProverError:
		return "prover_error"
	case KindCommunicationError:
		return "communication_error"
	}
	return "unknown"
}

// Outcome is the terminal result of one attempt
type Outcome struct {
	ID      uuid.UUID
	Kind    Kind
	Message string
	// Err is the underlying failure, nil for success and a false verification
	Err error
}

// OK reports whether the attack was verified
func (o Outcome) OK() bool {
	return o.Kind == KindSuccess
}
