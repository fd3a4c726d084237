package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/remedyhq/remedy/pkg/domain/interfaces"
	"github.com/remedyhq/remedy/pkg/domain/types"
	"github.com/remedyhq/remedy/pkg/repository"
	"github.com/remedyhq/remedy/pkg/utils/errutil"
	"github.com/remedyhq/remedy/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func respondJSON(w http.ResponseWriter, code int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		logging.Default().Error("fail to marshal response", slog.Any("error", err))
		safeWrite(w, http.StatusInternalServerError, []byte(`{"error":"internal error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, data)
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleError maps the domain error taxonomy to HTTP status codes. Unmapped
// errors are reported to the error sink and hidden behind a 500.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, types.ErrValidationFailed):
		respondJSON(w, http.StatusBadRequest, &errorResponse{Error: err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		respondJSON(w, http.StatusNotFound, &errorResponse{Error: err.Error()})
	case errors.Is(err, types.ErrInvalidTransition):
		respondJSON(w, http.StatusConflict, &errorResponse{Error: err.Error()})
	default:
		errutil.HandleError(r.Context(), "request failed", err)
		respondJSON(w, http.StatusInternalServerError, &errorResponse{Error: err.Error()})
	}
}

func New(uc interfaces.UseCase) *Server {
	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/webhook/pr", handlePRWebhook(uc))

		r.Get("/scans", handleListScans(uc))
		r.Get("/scans/{scanID}", handleGetScan(uc))
		r.Get("/findings/{scanID}", handleListFindings(uc))

		r.Route("/ai", func(r chi.Router) {
			r.Post("/analyze/finding", handleAnalyzeFinding(uc))
			r.Post("/generate/patch", handleGeneratePatch(uc))
			r.Post("/prioritize/scan", handlePrioritizeScan(uc))
			r.Get("/health", handleGatewayHealth(uc))
		})
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
