package prover

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap"
)

// Compile-time check
var _ Prover = (*HTTPClient)(nil)

// proveRequest and proveResponse are the wire shapes of POST /prove
type proveRequest = Input

type proveResponse struct {
	Proof        hexutil.Bytes `json:"proof"`
	PublicInputs []string      `json:"public_inputs"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// HTTPClient talks to a proving service over HTTP
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewHTTPClient creates a client for the service at baseURL
func NewHTTPClient(baseURL string, timeout time.Duration, logger *zap.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.Named("ProverClient"),
	}
}

// GenerateProof posts in to /prove and decodes the artifact
func (c *HTTPClient) GenerateProof(ctx context.Context, in Input) (*Artifact, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	body, err := json.Marshal(proveRequest(in))
	if err != nil {
		return nil, fmt.Errorf("marshal prove request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/prove", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create prove request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	log := c.logger.With(zap.Uint64s("fields", in.Fields()))
	log.Debug("Requesting proof")
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn("Prover request failed", zap.Error(err))
		return nil, fmt.Errorf("prover request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read prover response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var e errorResponse
		msg := strings.TrimSpace(string(raw))
		if json.Unmarshal(raw, &e) == nil && e.Error != "" {
			msg = e.Error
		}
		log.Warn("Prover rejected input", zap.Int("status", resp.StatusCode), zap.String("message", msg))
		return nil, fmt.Errorf("prover returned status %d: %s", resp.StatusCode, msg)
	}

	var out proveResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode prover response: %w", err)
	}

	art := &Artifact{Proof: out.Proof, PublicInputs: out.PublicInputs}
	if err := art.Check(); err != nil {
		return nil, err
	}

	log.Info("Proof received",
		zap.Int("proof_bytes", len(art.Proof)),
		zap.Int("public_inputs", len(art.PublicInputs)),
		zap.Duration("took", time.Since(start)),
	)
	return art, nil
}
