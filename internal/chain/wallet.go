package chain

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"
)

var (
	ErrNoProvider      = errors.New("chain: no wallet provider configured")
	ErrNoAccounts      = errors.New("chain: wallet returned no accounts")
	ErrSessionRequired = errors.New("chain: no active wallet session")
)

// Signer is the connected account plus a handle able to call contracts as it
type Signer struct {
	Address common.Address
	Caller  ethereum.ContractCaller
}

// RPCWallet is a wallet provider reached over Ethereum JSON-RPC
type RPCWallet struct {
	url     string
	timeout time.Duration
	logger  *zap.Logger

	mu      sync.Mutex
	client  *rpc.Client
	account *common.Address
}

// NewRPCWallet creates a wallet for the endpoint at url; an empty url means no provider
func NewRPCWallet(url string, timeout time.Duration, logger *zap.Logger) *RPCWallet {
	return &RPCWallet{
		url:     url,
		timeout: timeout,
		logger:  logger.Named("RPCWallet"),
	}
}

// NewRPCWalletWithClient wraps an already connected client
func NewRPCWalletWithClient(client *rpc.Client, logger *zap.Logger) *RPCWallet {
	return &RPCWallet{
		url:    "inproc",
		client: client,
		logger: logger.Named("RPCWallet"),
	}
}

func (w *RPCWallet) conn(ctx context.Context) (*rpc.Client, error) {
	if w.client != nil {
		return w.client, nil
	}
	if w.url == "" {
		return nil, ErrNoProvider
	}

	dctx, cancel := w.withTimeout(ctx)
	defer cancel()

	c, err := rpc.DialContext(dctx, w.url)
	if err != nil {
		return nil, fmt.Errorf("dial wallet provider: %w", err)
	}
	w.client = c
	return c, nil
}

func (w *RPCWallet) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if w.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, w.timeout)
}

// RequestAccounts asks the provider for an account session and returns the first account
func (w *RPCWallet) RequestAccounts(ctx context.Context) (common.Address, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	c, err := w.conn(ctx)
	if err != nil {
		return common.Address{}, err
	}

	cctx, cancel := w.withTimeout(ctx)
	defer cancel()

	var accounts []common.Address
	if err := c.CallContext(cctx, &accounts, "eth_requestAccounts"); err != nil {
		// plain nodes lack the wallet method; a refusal must not fall through
		if !methodNotFound(err) {
			w.account = nil
			return common.Address{}, fmt.Errorf("request accounts: %w", err)
		}
		w.logger.Debug("eth_requestAccounts unsupported, trying eth_accounts", zap.Error(err))
		if err := c.CallContext(cctx, &accounts, "eth_accounts"); err != nil {
			return common.Address{}, fmt.Errorf("list accounts: %w", err)
		}
	}
	if len(accounts) == 0 {
		return common.Address{}, ErrNoAccounts
	}

	acct := accounts[0]
	if w.account == nil || *w.account != acct {
		w.logNetwork(cctx, c, acct)
	}
	w.account = &acct
	return acct, nil
}

func (w *RPCWallet) logNetwork(ctx context.Context, c *rpc.Client, acct common.Address) {
	chainID, err := ethclient.NewClient(c).ChainID(ctx)
	if err != nil {
		w.logger.Info("Wallet connected", zap.Stringer("account", acct), zap.NamedError("chain_id_error", err))
		return
	}
	w.logger.Info("Wallet connected", zap.Stringer("account", acct), zap.Stringer("chain_id", chainID))
}

// Signer returns the session account bound to a contract caller
func (w *RPCWallet) Signer(ctx context.Context) (*Signer, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.account == nil {
		return nil, ErrSessionRequired
	}
	c, err := w.conn(ctx)
	if err != nil {
		return nil, err
	}
	return &Signer{Address: *w.account, Caller: ethclient.NewClient(c)}, nil
}

// Close drops the provider connection
func (w *RPCWallet) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.client != nil {
		w.client.Close()
		w.client = nil
	}
	w.account = nil
}

func methodNotFound(err error) bool {
	var rpcErr rpc.Error
	return errors.As(err, &rpcErr) && rpcErr.ErrorCode() == -32601
}
