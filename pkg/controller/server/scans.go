package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/remedyhq/remedy/pkg/domain/interfaces"
	"github.com/remedyhq/remedy/pkg/domain/model"
	"github.com/remedyhq/remedy/pkg/domain/types"
)

type scanListResponse struct {
	Scans []*model.Scan `json:"scans"`
}

func handleListScans(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		repo := r.URL.Query().Get("repo")
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		scans, err := uc.ListScans(r.Context(), repo, limit)
		if err != nil {
			handleError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, &scanListResponse{Scans: scans})
	}
}

func handleGetScan(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scanID, err := types.ParseScanID(chi.URLParam(r, "scanID"))
		if err != nil {
			handleError(w, r, err)
			return
		}

		summary, err := uc.GetScanSummary(r.Context(), scanID)
		if err != nil {
			handleError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, summary)
	}
}

type findingListResponse struct {
	ScanID   types.ScanID   `json:"scan_id"`
	Findings []*findingView `json:"findings"`
}

// findingView inlines the snippet recovered from the raw SARIF payload.
type findingView struct {
	*model.Finding
	Snippet string `json:"snippet,omitempty"`
}

func handleListFindings(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scanID, err := types.ParseScanID(chi.URLParam(r, "scanID"))
		if err != nil {
			handleError(w, r, err)
			return
		}

		findings, err := uc.ListScanFindings(r.Context(), scanID)
		if err != nil {
			handleError(w, r, err)
			return
		}

		views := make([]*findingView, 0, len(findings))
		for _, f := range findings {
			views = append(views, &findingView{
				Finding: f,
				Snippet: f.Snippet(),
			})
		}

		respondJSON(w, http.StatusOK, &findingListResponse{
			ScanID:   scanID,
			Findings: views,
		})
	}
}
