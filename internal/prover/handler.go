package prover

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// NewHandler exposes p over HTTP with the same wire format HTTPClient speaks
//
//	POST /prove    Input JSON -> {"proof": "0x..", "public_inputs": [...]}
//	GET  /healthz  200 OK
func NewHandler(p Prover, logger *zap.Logger) http.Handler {
	log := logger.Named("ProverHandler")

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Post("/prove", func(w http.ResponseWriter, req *http.Request) {
		var in Input
		dec := json.NewDecoder(req.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&in); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid input: " + err.Error()})
			return
		}

		art, err := p.GenerateProof(req.Context(), in)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, ErrPowerOutOfRange) {
				status = http.StatusUnprocessableEntity
			}
			log.Warn("Proof generation failed", zap.Error(err), zap.Uint64s("fields", in.Fields()))
			writeJSON(w, status, errorResponse{Error: err.Error()})
			return
		}

		log.Info("Proof generated", zap.Uint64s("fields", in.Fields()))
		writeJSON(w, http.StatusOK, proveResponse{
			Proof:        hexutil.Bytes(art.Proof),
			PublicInputs: art.PublicInputs,
		})
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
