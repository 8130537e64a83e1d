// Package mocks holds testify mocks of the submit workflow's collaborators.
package mocks

import (
	context "context"

	chain "nounquest/internal/chain"

	common "github.com/ethereum/go-ethereum/common"

	mock "github.com/stretchr/testify/mock"

	prover "nounquest/internal/prover"

	submit "nounquest/internal/submit"

	uuid "github.com/google/uuid"
)

// Wallet is a mock type for the Wallet type
type Wallet struct {
	mock.Mock
}

// RequestAccounts provides a mock function with given fields: ctx
func (_m *Wallet) RequestAccounts(ctx context.Context) (common.Address, error) {
	ret := _m.Called(ctx)

	var r0 common.Address
	if rf, ok := ret.Get(0).(func(context.Context) common.Address); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Get(0).(common.Address)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Signer provides a mock function with given fields: ctx
func (_m *Wallet) Signer(ctx context.Context) (*chain.Signer, error) {
	ret := _m.Called(ctx)

	var r0 *chain.Signer
	if rf, ok := ret.Get(0).(func(context.Context) *chain.Signer); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*chain.Signer)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Prover is a mock type for the Prover type
type Prover struct {
	mock.Mock
}

// GenerateProof provides a mock function with given fields: ctx, in
func (_m *Prover) GenerateProof(ctx context.Context, in prover.Input) (*prover.Artifact, error) {
	ret := _m.Called(ctx, in)

	var r0 *prover.Artifact
	if rf, ok := ret.Get(0).(func(context.Context, prover.Input) *prover.Artifact); ok {
		r0 = rf(ctx, in)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*prover.Artifact)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, prover.Input) error); ok {
		r1 = rf(ctx, in)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Verifier is a mock type for the Verifier type
type Verifier struct {
	mock.Mock
}

// Verify provides a mock function with given fields: ctx, signer, proofHex, publicInputs
func (_m *Verifier) Verify(ctx context.Context, signer *chain.Signer, proofHex string, publicInputs [][32]byte) (bool, error) {
	ret := _m.Called(ctx, signer, proofHex, publicInputs)

	var r0 bool
	if rf, ok := ret.Get(0).(func(context.Context, *chain.Signer, string, [][32]byte) bool); ok {
		r0 = rf(ctx, signer, proofHex, publicInputs)
	} else {
		r0 = ret.Get(0).(bool)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *chain.Signer, string, [][32]byte) error); ok {
		r1 = rf(ctx, signer, proofHex, publicInputs)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Notifier is a mock type for the Notifier type
type Notifier struct {
	mock.Mock
}

// Progress provides a mock function with given fields: id, stage
func (_m *Notifier) Progress(id uuid.UUID, stage submit.Stage) {
	_m.Called(id, stage)
}

// Settled provides a mock function with given fields: outcome
func (_m *Notifier) Settled(outcome submit.Outcome) {
	_m.Called(outcome)
}

var (
	_ submit.Wallet   = (*Wallet)(nil)
	_ submit.Prover   = (*Prover)(nil)
	_ submit.Verifier = (*Verifier)(nil)
	_ submit.Notifier = (*Notifier)(nil)
)
