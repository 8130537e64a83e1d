// Package submit runs one attack submission through wallet, prover and verifier.
//
// An attempt moves strictly through
//
//	WalletCheck -> ProofRequested -> ProofReceived -> VerificationRequested -> Done
//
// announcing each stage to the Notifier and finishing with exactly one
// Settled call. Failures stop the attempt at the stage where they happen and
// are never retried; the player resubmits.
package submit

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"nounquest/internal/attack"
	"nounquest/internal/chain"
	"nounquest/internal/prover"
)

var ErrSubmissionInProgress = errors.New("submission already in progress")

// Wallet provides the account session
type Wallet interface {
	RequestAccounts(ctx context.Context) (common.Address, error)
	Signer(ctx context.Context) (*chain.Signer, error)
}

// Prover generates the proof for a circuit input
type Prover interface {
	GenerateProof(ctx context.Context, in prover.Input) (*prover.Artifact, error)
}

// Verifier checks a proof on-chain
type Verifier interface {
	Verify(ctx context.Context, signer *chain.Signer, proofHex string, publicInputs [][32]byte) (bool, error)
}

// Notifier receives player-facing feedback
type Notifier interface {
	Progress(id uuid.UUID, stage Stage)
	Settled(outcome Outcome)
}

// Workflow wires the collaborators of a submission together
type Workflow struct {
	wallet   Wallet
	prover   Prover
	verifier Verifier
	notifier Notifier
	metrics  *Metrics
	logger   *zap.Logger

	busy atomic.Bool
}

// NewWorkflow creates a workflow; metrics may be nil
func NewWorkflow(w Wallet, p Prover, v Verifier, n Notifier, m *Metrics, logger *zap.Logger) *Workflow {
	return &Workflow{
		wallet:   w,
		prover:   p,
		verifier: v,
		notifier: n,
		metrics:  m,
		logger:   logger.Named("SubmitWorkflow"),
	}
}

// InFlight reports whether an attempt is running
func (wf *Workflow) InFlight() bool {
	return wf.busy.Load()
}

// Submit runs one attempt for rec and blocks until it settles
// The only error is ErrSubmissionInProgress, returned without any
// notification when another attempt has not settled yet.
func (wf *Workflow) Submit(ctx context.Context, rec attack.Record) (Outcome, error) {
	if !wf.busy.CompareAndSwap(false, true) {
		wf.metrics.reject()
		wf.logger.Warn("Submission rejected, another attempt is in flight")
		return Outcome{}, ErrSubmissionInProgress
	}
	defer wf.busy.Store(false)

	id := uuid.New()
	log := wf.logger.With(zap.Stringer("submission_id", id))
	log.Info("Submission started",
		zap.Uint64("fire", rec.Fire),
		zap.Uint64("water", rec.Water),
		zap.Uint64("earth", rec.Earth),
		zap.Uint64("wind", rec.Wind),
		zap.Strings("moves", rec.Moves),
	)

	start := time.Now()
	out := wf.run(ctx, id, rec, log)
	out.ID = id

	wf.metrics.observe(out.Kind, time.Since(start))
	if out.OK() {
		log.Info("Submission settled", zap.Stringer("outcome", out.Kind), zap.Duration("took", time.Since(start)))
	} else {
		log.Warn("Submission settled", zap.Stringer("outcome", out.Kind), zap.String("message", out.Message), zap.Error(out.Err))
	}
	wf.notifier.Settled(out)
	return out, nil
}

func (wf *Workflow) run(ctx context.Context, id uuid.UUID, rec attack.Record, log *zap.Logger) Outcome {
	enter := func(s Stage) {
		log.Debug("Entering stage", zap.Stringer("stage", s))
		wf.notifier.Progress(id, s)
	}

	enter(StageWalletCheck)
	account, err := wf.wallet.RequestAccounts(ctx)
	if err != nil {
		return failure(KindWalletError, "Wallet connection failed", err)
	}
	signer, err := wf.wallet.Signer(ctx)
	if err != nil {
		return failure(KindWalletError, "Wallet signer unavailable", err)
	}
	log.Debug("Wallet session ready", zap.Stringer("account", account))

	enter(StageProofRequested)
	in := prover.InputFromRecord(rec)
	if err := in.Validate(); err != nil {
		return failure(KindProverError, "Attack rejected by the circuit", err)
	}
	art, err := wf.prover.GenerateProof(ctx, in)
	if err != nil {
		return failure(KindProverError, "Proof generation failed", err)
	}
	if err := art.Check(); err != nil {
		return failure(KindProverError, "Prover returned a malformed proof", err)
	}

	enter(StageProofReceived)
	proofHex := chain.EncodeProof(art.Proof)
	publicInputs, err := chain.EncodePublicInputs(art.PublicInputs)
	if err != nil {
		return failure(KindProverError, "Prover returned malformed public inputs", err)
	}

	enter(StageVerificationRequested)
	ok, err := wf.verifier.Verify(ctx, signer, proofHex, publicInputs)
	if err != nil {
		return failure(KindCommunicationError, "Verification call failed", err)
	}
	if !ok {
		return Outcome{Kind: KindVerificationFailed, Message: "Verification failed: the monster shrugs off your attack"}
	}
	return Outcome{Kind: KindSuccess, Message: "Verification successful!"}
}

func failure(k Kind, msg string, err error) Outcome {
	return Outcome{Kind: k, Message: fmt.Sprintf("%s: %v", msg, err), Err: err}
}
