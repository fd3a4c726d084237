package server

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/remedyhq/remedy/pkg/domain/interfaces"
	"github.com/remedyhq/remedy/pkg/domain/model"
	"github.com/remedyhq/remedy/pkg/domain/types"
	"github.com/remedyhq/remedy/pkg/utils/errutil"
)

type intakeResponse struct {
	ScanID types.ScanID `json:"scan_id"`
	Status string       `json:"status"`
}

// handlePRWebhook accepts a pull-request scan notification. The scan record
// is created synchronously; the artifact itself is ingested in the background
// and the caller polls the scan status.
func handlePRWebhook(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input model.IntakeInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			handleError(w, r, goerr.Wrap(types.ErrValidationFailed, "invalid request body"))
			return
		}

		scan, err := uc.CreateScan(r.Context(), &input)
		if err != nil {
			handleError(w, r, err)
			return
		}

		// The request context dies with the response; ingestion runs on a
		// detached one.
		bgCtx := DetachContext(r.Context())
		go func() {
			if err := uc.IngestArtifact(bgCtx, scan.ID); err != nil {
				errutil.HandleError(bgCtx, "fail to ingest scan artifact", err)
			}
		}()

		respondJSON(w, http.StatusAccepted, &intakeResponse{
			ScanID: scan.ID,
			Status: "queued",
		})
	}
}
