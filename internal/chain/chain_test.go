package chain

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	testAccount  = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	testContract = common.HexToAddress("0x09e82Db155798F759D6788c41cd72B047a018355")
)

// verifierStub answers verify() calls by checking the packed arguments
type verifierStub struct {
	t      *testing.T
	result bool
	err    error
	calls  int
}

func (s *verifierStub) CallContract(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return answerVerify(s.t, msg.From, msg.To, msg.Data, s.result), nil
}

func answerVerify(t *testing.T, from common.Address, to *common.Address, data []byte, result bool) []byte {
	parsed, err := abi.JSON(strings.NewReader(VerifierABI))
	require.NoError(t, err)

	require.NotNil(t, to)
	assert.Equal(t, testContract, *to)
	assert.Equal(t, testAccount, from)

	method := parsed.Methods["verify"]
	require.Equal(t, method.ID, data[:4])
	args, err := method.Inputs.Unpack(data[4:])
	require.NoError(t, err)
	require.Len(t, args, 2)
	assert.Equal(t, []byte{0xca, 0xfe}, args[0])
	assert.Equal(t, [][32]byte{{31: 8}}, args[1])

	out, err := method.Outputs.Pack(result)
	require.NoError(t, err)
	return out
}

func newTestVerifier(t *testing.T) *Verifier {
	v, err := NewVerifier(testContract, zap.NewNop())
	require.NoError(t, err)
	return v
}

func TestVerifierReturnsContractResult(t *testing.T) {
	v := newTestVerifier(t)
	inputs := [][32]byte{{31: 8}}

	for _, want := range []bool{true, false} {
		stub := &verifierStub{t: t, result: want}
		got, err := v.Verify(context.Background(), &Signer{Address: testAccount, Caller: stub}, "0xcafe", inputs)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, 1, stub.calls)
	}
}

func TestVerifierSurfacesCallErrors(t *testing.T) {
	v := newTestVerifier(t)
	stub := &verifierStub{t: t, err: errors.New("connection refused")}

	ok, err := v.Verify(context.Background(), &Signer{Address: testAccount, Caller: stub}, "0xcafe", nil)
	require.Error(t, err)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestVerifierRejectsBadInputsBeforeCalling(t *testing.T) {
	v := newTestVerifier(t)
	stub := &verifierStub{t: t}

	_, err := v.Verify(context.Background(), &Signer{Address: testAccount, Caller: stub}, "not-hex", nil)
	assert.ErrorIs(t, err, ErrInvalidProofHex)

	_, err = v.Verify(context.Background(), nil, "0xcafe", nil)
	assert.ErrorIs(t, err, ErrSessionRequired)
	assert.Equal(t, 0, stub.calls)
}

// EthStub is an in-process stand-in for a wallet's JSON-RPC endpoint
type EthStub struct {
	t        *testing.T
	accounts []common.Address
	reject   bool
}

// CallArgs accepts both the current and the legacy calldata field name
type CallArgs struct {
	From  common.Address  `json:"from"`
	To    *common.Address `json:"to"`
	Input hexutil.Bytes   `json:"input"`
	Data  hexutil.Bytes   `json:"data"`
}

func (s *EthStub) RequestAccounts() ([]common.Address, error) {
	if s.reject {
		return nil, errors.New("user rejected the request")
	}
	return s.accounts, nil
}

func (s *EthStub) Accounts() []common.Address {
	return s.accounts
}

// NodeStub is an endpoint without the wallet-only eth_requestAccounts method
type NodeStub struct {
	accounts []common.Address
}

func (s *NodeStub) Accounts() []common.Address {
	return s.accounts
}

func (s *NodeStub) ChainId() *hexutil.Big {
	return (*hexutil.Big)(big.NewInt(1))
}

func (s *EthStub) ChainId() *hexutil.Big {
	return (*hexutil.Big)(big.NewInt(11155111))
}

func (s *EthStub) Call(args CallArgs, _ string) (hexutil.Bytes, error) {
	data := args.Input
	if len(data) == 0 {
		data = args.Data
	}
	return answerVerify(s.t, args.From, args.To, data, true), nil
}

func newInProcWallet(t *testing.T, stub *EthStub) *RPCWallet {
	srv := rpc.NewServer()
	require.NoError(t, srv.RegisterName("eth", stub))
	t.Cleanup(srv.Stop)

	w := NewRPCWalletWithClient(rpc.DialInProc(srv), zap.NewNop())
	t.Cleanup(w.Close)
	return w
}

func TestRPCWalletSessionAndVerify(t *testing.T) {
	w := newInProcWallet(t, &EthStub{t: t, accounts: []common.Address{testAccount}})
	ctx := context.Background()

	_, err := w.Signer(ctx)
	require.ErrorIs(t, err, ErrSessionRequired, "signer needs a session first")

	acct, err := w.RequestAccounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, testAccount, acct)

	signer, err := w.Signer(ctx)
	require.NoError(t, err)
	assert.Equal(t, testAccount, signer.Address)

	ok, err := newTestVerifier(t).Verify(ctx, signer, "0xcafe", [][32]byte{{31: 8}})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRPCWalletRejectedSession(t *testing.T) {
	// accounts authorized earlier must not turn a refusal into a session
	stub := &EthStub{t: t, accounts: []common.Address{testAccount}}
	w := newInProcWallet(t, stub)
	ctx := context.Background()

	_, err := w.RequestAccounts(ctx)
	require.NoError(t, err)

	stub.reject = true
	acct, err := w.RequestAccounts(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user rejected the request")
	assert.Equal(t, common.Address{}, acct)

	_, err = w.Signer(ctx)
	assert.ErrorIs(t, err, ErrSessionRequired)
}

func TestRPCWalletFallsBackToAccountsOnPlainNode(t *testing.T) {
	srv := rpc.NewServer()
	require.NoError(t, srv.RegisterName("eth", &NodeStub{accounts: []common.Address{testAccount}}))
	t.Cleanup(srv.Stop)

	w := NewRPCWalletWithClient(rpc.DialInProc(srv), zap.NewNop())
	t.Cleanup(w.Close)

	acct, err := w.RequestAccounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testAccount, acct)
}

func TestRPCWalletNoAccounts(t *testing.T) {
	w := newInProcWallet(t, &EthStub{t: t})
	_, err := w.RequestAccounts(context.Background())
	assert.ErrorIs(t, err, ErrNoAccounts)
}

func TestRPCWalletWithoutProvider(t *testing.T) {
	w := NewRPCWallet("", 0, zap.NewNop())
	_, err := w.RequestAccounts(context.Background())
	assert.ErrorIs(t, err, ErrNoProvider)
}
