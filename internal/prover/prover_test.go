package prover

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"nounquest/internal/attack"
)

func TestInputFromRecordKeepsCircuitOrder(t *testing.T) {
	in := InputFromRecord(attack.Record{Fire: 5, Water: 0, Earth: 2, Wind: 1, Moves: []string{"x"}})
	assert.Equal(t, []uint64{5, 0, 2, 1}, in.Fields())
	assert.NoError(t, in.Validate())
}

func TestInputValidateRange(t *testing.T) {
	err := Input{Earth: MaxPower + 1}.Validate()
	require.ErrorIs(t, err, ErrPowerOutOfRange)
	assert.Contains(t, err.Error(), "earth")
}

func TestDevProverIsDeterministic(t *testing.T) {
	ctx := context.Background()
	in := Input{Fire: 5, Water: 0, Earth: 2, Wind: 1}

	a1, err := Dev{}.GenerateProof(ctx, in)
	require.NoError(t, err)
	a2, err := Dev{}.GenerateProof(ctx, in)
	require.NoError(t, err)

	assert.Len(t, a1.Proof, devProofSize)
	assert.Equal(t, a1, a2)
	assert.Equal(t, []string{"0x" + strings.Repeat("0", 62) + "08"}, a1.PublicInputs)

	other, err := Dev{}.GenerateProof(ctx, Input{Fire: 6, Earth: 2, Wind: 1})
	require.NoError(t, err)
	assert.NotEqual(t, a1.Proof, other.Proof)
}

func TestDevProverHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Dev{}.GenerateProof(ctx, Input{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHTTPClientRoundTrip(t *testing.T) {
	srv := httptest.NewServer(NewHandler(Dev{}, zap.NewNop()))
	defer srv.Close()

	client := NewHTTPClient(srv.URL+"/", time.Second, zap.NewNop())
	in := Input{Fire: 5, Earth: 2, Wind: 1}

	art, err := client.GenerateProof(context.Background(), in)
	require.NoError(t, err)

	want, err := Dev{}.GenerateProof(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, want.Proof, art.Proof)
	assert.Equal(t, want.PublicInputs, art.PublicInputs)
}

func TestHTTPClientRejectsOutOfRangeBeforeSending(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second, zap.NewNop())
	_, err := client.GenerateProof(context.Background(), Input{Fire: 1000})
	assert.ErrorIs(t, err, ErrPowerOutOfRange)
	assert.False(t, called)
}

func TestHTTPClientSurfacesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "backend exploded"})
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second, zap.NewNop())
	_, err := client.GenerateProof(context.Background(), Input{Fire: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "backend exploded")
}

func TestHTTPClientRejectsEmptyArtifact(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"proof": "0x", "public_inputs": []string{"0x01"}})
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second, zap.NewNop())
	_, err := client.GenerateProof(context.Background(), Input{Fire: 1})
	assert.ErrorIs(t, err, ErrEmptyProof)
}

func TestHandlerRejectsBadBody(t *testing.T) {
	h := NewHandler(Dev{}, zap.NewNop())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/prove", strings.NewReader(`{"fire": "lots"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/prove", strings.NewReader(`{"fire": 300}`)))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
