package interfaces

import (
	"context"

	"github.com/remedyhq/remedy/pkg/domain/model"
	"github.com/remedyhq/remedy/pkg/domain/types"
)

//go:generate moq -out ../mock/scan_repository_mock.go -pkg mock . ScanRepository

// ScanRepository is the single source of truth for scans and their findings.
type ScanRepository interface {
	CreateScan(ctx context.Context, scan *model.Scan) error
	GetScan(ctx context.Context, id types.ScanID) (*model.Scan, error)
	ListScans(ctx context.Context, repo string, limit int) ([]*model.Scan, error)

	// UpdateScanStatus advances the scan lifecycle. Transitions that skip a
	// state or move backwards fail with types.ErrInvalidTransition.
	UpdateScanStatus(ctx context.Context, id types.ScanID, status types.ScanStatus) error

	// InsertFindings persists all findings of a scan and moves the scan from
	// pending to processing in one atomic write: either all findings and the
	// new status commit, or none do. Re-ingestion of a scan that already left
	// pending is rejected with types.ErrInvalidTransition.
	InsertFindings(ctx context.Context, scanID types.ScanID, findings []*model.Finding) error

	GetFinding(ctx context.Context, id types.FindingID) (*model.Finding, error)

	// ListFindings returns the findings of a scan in ingestion order.
	ListFindings(ctx context.Context, scanID types.ScanID) ([]*model.Finding, error)
}
