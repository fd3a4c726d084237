package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/remedyhq/remedy/pkg/domain/model"
	"github.com/remedyhq/remedy/pkg/domain/types"
)

type UseCase interface {
	CreateScan(ctx context.Context, input *model.IntakeInput) (*model.Scan, error)
	IngestArtifact(ctx context.Context, scanID types.ScanID) error
	IngestReport(ctx context.Context, scanID types.ScanID, findings []*model.Finding) error

	GetScanSummary(ctx context.Context, id types.ScanID) (*model.ScanSummary, error)
	ListScans(ctx context.Context, repo string, limit int) ([]*model.Scan, error)
	ListScanFindings(ctx context.Context, scanID types.ScanID) ([]*model.Finding, error)

	AnalyzeFinding(ctx context.Context, id types.FindingID, codeContext string) (*model.Analysis, error)
	GeneratePatch(ctx context.Context, id types.FindingID, codeSnippet, filePath string) (*model.PatchResult, error)
	GeneratePatches(ctx context.Context, scanID types.ScanID, codeMap map[string]string) ([]*model.PatchResult, error)
	PrioritizeScan(ctx context.Context, scanID types.ScanID, appContext string) (*model.PrioritizeResult, error)
	GatewayHealth(ctx context.Context) *model.GatewayHealth
}
