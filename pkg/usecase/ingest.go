package usecase

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/remedyhq/remedy/pkg/domain/model"
	"github.com/remedyhq/remedy/pkg/domain/types"
	"github.com/remedyhq/remedy/pkg/sarif"
	"github.com/remedyhq/remedy/pkg/utils/logging"
)

// CreateScan validates the intake payload and records a pending scan.
func (x *UseCase) CreateScan(ctx context.Context, input *model.IntakeInput) (*model.Scan, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	scan := model.NewScan(input, time.Now().UTC())
	if err := x.clients.ScanRepository().CreateScan(ctx, scan); err != nil {
		return nil, err
	}

	logging.From(ctx).Info("scan accepted",
		"scan_id", scan.ID,
		"repo", scan.Repo,
		"pr_number", scan.PRNumber,
	)

	return scan, nil
}

// IngestArtifact downloads the SARIF artifact of a pending scan, parses it
// and persists the findings. A download or parse failure leaves the scan in
// its prior state so the intake can be retried.
func (x *UseCase) IngestArtifact(ctx context.Context, scanID types.ScanID) error {
	scan, err := x.clients.ScanRepository().GetScan(ctx, scanID)
	if err != nil {
		return err
	}

	findings, err := x.downloadAndParse(ctx, scan)
	if err != nil {
		return err
	}

	return x.IngestReport(ctx, scanID, findings)
}

func (x *UseCase) downloadAndParse(ctx context.Context, scan *model.Scan) ([]*model.Finding, error) {
	resp, err := x.clients.HTTPClient().R().SetContext(ctx).Get(scan.ArtifactURL)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to download artifact",
			goerr.V("scanID", scan.ID),
			goerr.V("url", scan.ArtifactURL),
		)
	}
	if !resp.IsSuccess() {
		return nil, goerr.Wrap(types.ErrInvalidArtifact, "artifact download returned non-2xx",
			goerr.V("scanID", scan.ID),
			goerr.V("status", resp.StatusCode()),
		)
	}

	findings, err := sarif.Parse(resp.Body())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse artifact", goerr.V("scanID", scan.ID))
	}

	return findings, nil
}

// IngestReport persists already-parsed findings for a pending scan and moves
// it to processing.
func (x *UseCase) IngestReport(ctx context.Context, scanID types.ScanID, findings []*model.Finding) error {
	now := time.Now().UTC()
	for _, f := range findings {
		f.ID = types.NewFindingID()
		f.ScanID = scanID
		f.CreatedAt = now
	}

	if err := x.clients.ScanRepository().InsertFindings(ctx, scanID, findings); err != nil {
		return err
	}

	logging.From(ctx).Info("scan ingested",
		"scan_id", scanID,
		"findings", len(findings),
	)

	return nil
}

// LoadSARIFFile parses a SARIF document from a local file. Used by the ingest
// command.
func LoadSARIFFile(filePath string) ([]*model.Finding, error) {
	data, err := os.ReadFile(filepath.Clean(filePath))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read SARIF file", goerr.V("path", filePath))
	}

	return sarif.Parse(data)
}
