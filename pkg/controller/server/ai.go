package server

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/remedyhq/remedy/pkg/domain/interfaces"
	"github.com/remedyhq/remedy/pkg/domain/types"
)

type analyzeRequest struct {
	FindingID   string `json:"finding_id"`
	CodeContext string `json:"code_context"`
}

func handleAnalyzeFinding(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req analyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			handleError(w, r, goerr.Wrap(types.ErrValidationFailed, "invalid request body"))
			return
		}

		findingID, err := types.ParseFindingID(req.FindingID)
		if err != nil {
			handleError(w, r, err)
			return
		}

		analysis, err := uc.AnalyzeFinding(r.Context(), findingID, req.CodeContext)
		if err != nil {
			handleError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, analysis)
	}
}

type patchRequest struct {
	FindingID   string `json:"finding_id"`
	CodeSnippet string `json:"code_snippet"`
	FilePath    string `json:"file_path"`
}

func handleGeneratePatch(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req patchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			handleError(w, r, goerr.Wrap(types.ErrValidationFailed, "invalid request body"))
			return
		}

		findingID, err := types.ParseFindingID(req.FindingID)
		if err != nil {
			handleError(w, r, err)
			return
		}

		patch, err := uc.GeneratePatch(r.Context(), findingID, req.CodeSnippet, req.FilePath)
		if err != nil {
			handleError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, patch)
	}
}

type prioritizeRequest struct {
	ScanID  string `json:"scan_id"`
	Context string `json:"context"`
}

func handlePrioritizeScan(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req prioritizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			handleError(w, r, goerr.Wrap(types.ErrValidationFailed, "invalid request body"))
			return
		}

		scanID, err := types.ParseScanID(req.ScanID)
		if err != nil {
			handleError(w, r, err)
			return
		}

		result, err := uc.PrioritizeScan(r.Context(), scanID, req.Context)
		if err != nil {
			handleError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

func handleGatewayHealth(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		health := uc.GatewayHealth(r.Context())

		code := http.StatusOK
		if !health.Available {
			code = http.StatusServiceUnavailable
		}
		respondJSON(w, code, health)
	}
}
