package usecase

import (
	"context"
	"sort"

	"github.com/remedyhq/remedy/pkg/domain/model"
	"github.com/remedyhq/remedy/pkg/domain/types"
)

// GetScanSummary returns a scan with its severity-bucketed finding counts.
func (x *UseCase) GetScanSummary(ctx context.Context, id types.ScanID) (*model.ScanSummary, error) {
	scan, err := x.clients.ScanRepository().GetScan(ctx, id)
	if err != nil {
		return nil, err
	}

	findings, err := x.clients.ScanRepository().ListFindings(ctx, id)
	if err != nil {
		return nil, err
	}

	return model.NewScanSummary(scan, findings), nil
}

func (x *UseCase) ListScans(ctx context.Context, repo string, limit int) ([]*model.Scan, error) {
	return x.clients.ScanRepository().ListScans(ctx, repo, limit)
}

// ListScanFindings returns the findings of a scan ordered by severity, most
// severe first. Findings of equal severity keep their ingestion order.
func (x *UseCase) ListScanFindings(ctx context.Context, scanID types.ScanID) ([]*model.Finding, error) {
	findings, err := x.clients.ScanRepository().ListFindings(ctx, scanID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(findings, func(i, j int) bool {
		return model.SeverityScore(findings[i].Severity) > model.SeverityScore(findings[j].Severity)
	})

	return findings, nil
}
