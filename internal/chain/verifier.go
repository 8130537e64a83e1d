package chain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// VerifierABI is the ABI of the deployed proof verifier
const VerifierABI = `[{
	"type": "function",
	"name": "verify",
	"stateMutability": "view",
	"inputs": [
		{"name": "_proof", "type": "bytes"},
		{"name": "_publicInputs", "type": "bytes32[]"}
	],
	"outputs": [{"name": "", "type": "bool"}]
}]`

var ErrUnexpectedResult = errors.New("chain: unexpected verify result")

// Verifier calls verify(bytes, bytes32[]) on the verifier contract
type Verifier struct {
	address common.Address
	abi     abi.ABI
	logger  *zap.Logger
}

// NewVerifier binds the verifier contract at address
func NewVerifier(address common.Address, logger *zap.Logger) (*Verifier, error) {
	parsed, err := abi.JSON(strings.NewReader(VerifierABI))
	if err != nil {
		return nil, fmt.Errorf("parse verifier abi: %w", err)
	}
	return &Verifier{
		address: address,
		abi:     parsed,
		logger:  logger.Named("Verifier"),
	}, nil
}

// Address returns the contract address
func (v *Verifier) Address() common.Address {
	return v.address
}

// Verify runs the read-only verify call through signer
// A false result is returned as (false, nil); transport and contract
// failures come back as errors.
func (v *Verifier) Verify(ctx context.Context, signer *Signer, proofHex string, publicInputs [][32]byte) (bool, error) {
	if signer == nil || signer.Caller == nil {
		return false, ErrSessionRequired
	}

	proof, err := DecodeProof(proofHex)
	if err != nil {
		return false, err
	}

	data, err := v.abi.Pack("verify", proof, publicInputs)
	if err != nil {
		return false, fmt.Errorf("pack verify call: %w", err)
	}

	to := v.address
	out, err := signer.Caller.CallContract(ctx, ethereum.CallMsg{
		From: signer.Address,
		To:   &to,
		Data: data,
	}, nil)
	if err != nil {
		v.logger.Warn("verify call failed", zap.Error(err))
		return false, fmt.Errorf("verify call: %w", err)
	}

	res, err := v.abi.Unpack("verify", out)
	if err != nil {
		return false, fmt.Errorf("unpack verify result: %w", err)
	}
	if len(res) != 1 {
		return false, fmt.Errorf("%w: %d values", ErrUnexpectedResult, len(res))
	}
	ok, isBool := res[0].(bool)
	if !isBool {
		return false, fmt.Errorf("%w: %T", ErrUnexpectedResult, res[0])
	}

	v.logger.Info("verify call returned",
		zap.Bool("verified", ok),
		zap.Stringer("contract", v.address),
		zap.Stringer("from", signer.Address),
		zap.Int("proof_bytes", len(proof)),
		zap.Int("public_inputs", len(publicInputs)),
	)
	return ok, nil
}
