// Package testhelper provides a shared test suite that every ScanRepository
// implementation must pass.
package testhelper

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/remedyhq/remedy/pkg/domain/interfaces"
	"github.com/remedyhq/remedy/pkg/domain/model"
	"github.com/remedyhq/remedy/pkg/domain/types"
	"github.com/remedyhq/remedy/pkg/repository"
)

func newTestScan(repo string, createdAt time.Time) *model.Scan {
	return &model.Scan{
		ID:          types.NewScanID(),
		Repo:        repo,
		PRNumber:    42,
		CommitSHA:   "0000000000000000000000000000000000000000",
		ScanType:    "semgrep",
		ArtifactURL: "https://ci.example.com/artifacts/1",
		Status:      types.ScanStatusPending,
		CreatedAt:   createdAt,
	}
}

func newTestFinding(scanID types.ScanID, ruleID, severity string) *model.Finding {
	return &model.Finding{
		ID:        types.NewFindingID(),
		ScanID:    scanID,
		FilePath:  "app/handlers.py",
		StartLine: 10,
		EndLine:   12,
		RuleID:    ruleID,
		Message:   "test finding",
		Severity:  severity,
		Raw:       []byte(`{"ruleId":"` + ruleID + `"}`),
		CreatedAt: time.Now().UTC(),
	}
}

// RunScanRepositoryTests exercises the ScanRepository contract against the
// given factory. Each subtest receives a fresh repository.
func RunScanRepositoryTests(t *testing.T, newRepo func(t *testing.T) interfaces.ScanRepository) {
	ctx := context.Background()

	t.Run("create and get scan", func(t *testing.T) {
		repo := newRepo(t)
		scan := newTestScan("acme/api", time.Now().UTC())

		gt.NoError(t, repo.CreateScan(ctx, scan))

		retrieved, err := repo.GetScan(ctx, scan.ID)
		gt.NoError(t, err)
		gt.V(t, retrieved.ID).Equal(scan.ID)
		gt.V(t, retrieved.Repo).Equal("acme/api")
		gt.V(t, retrieved.PRNumber).Equal(42)
		gt.V(t, retrieved.Status).Equal(types.ScanStatusPending)
	})

	t.Run("get unknown scan fails with not found", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.GetScan(ctx, types.NewScanID())
		gt.Error(t, err)
		gt.True(t, errors.Is(err, repository.ErrNotFound))
	})

	t.Run("list scans filters by repo and orders newest first", func(t *testing.T) {
		repo := newRepo(t)
		base := time.Now().UTC()

		older := newTestScan("acme/api", base.Add(-time.Hour))
		newer := newTestScan("acme/api", base)
		other := newTestScan("acme/web", base)
		gt.NoError(t, repo.CreateScan(ctx, older))
		gt.NoError(t, repo.CreateScan(ctx, newer))
		gt.NoError(t, repo.CreateScan(ctx, other))

		scans, err := repo.ListScans(ctx, "acme/api", 20)
		gt.NoError(t, err)
		gt.V(t, len(scans)).Equal(2)
		gt.V(t, scans[0].ID).Equal(newer.ID)
		gt.V(t, scans[1].ID).Equal(older.ID)

		limited, err := repo.ListScans(ctx, "acme/api", 1)
		gt.NoError(t, err)
		gt.V(t, len(limited)).Equal(1)
		gt.V(t, limited[0].ID).Equal(newer.ID)

		all, err := repo.ListScans(ctx, "", 20)
		gt.NoError(t, err)
		gt.V(t, len(all)).Equal(3)
	})

	t.Run("insert findings moves scan to processing atomically", func(t *testing.T) {
		repo := newRepo(t)
		scan := newTestScan("acme/api", time.Now().UTC())
		gt.NoError(t, repo.CreateScan(ctx, scan))

		findings := []*model.Finding{
			newTestFinding(scan.ID, "r1", "critical"),
			newTestFinding(scan.ID, "r2", "low"),
			newTestFinding(scan.ID, "r3", "low"),
		}
		gt.NoError(t, repo.InsertFindings(ctx, scan.ID, findings))

		retrieved, err := repo.GetScan(ctx, scan.ID)
		gt.NoError(t, err)
		gt.V(t, retrieved.Status).Equal(types.ScanStatusProcessing)

		listed, err := repo.ListFindings(ctx, scan.ID)
		gt.NoError(t, err)
		gt.V(t, len(listed)).Equal(3)

		// Ingestion order is preserved
		gt.V(t, listed[0].RuleID).Equal("r1")
		gt.V(t, listed[1].RuleID).Equal("r2")
		gt.V(t, listed[2].RuleID).Equal("r3")
	})

	t.Run("re-ingestion of a processing scan is rejected", func(t *testing.T) {
		repo := newRepo(t)
		scan := newTestScan("acme/api", time.Now().UTC())
		gt.NoError(t, repo.CreateScan(ctx, scan))
		gt.NoError(t, repo.InsertFindings(ctx, scan.ID, []*model.Finding{
			newTestFinding(scan.ID, "r1", "high"),
		}))

		err := repo.InsertFindings(ctx, scan.ID, []*model.Finding{
			newTestFinding(scan.ID, "r2", "high"),
		})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidTransition))

		// The rejected batch must not leak into storage
		listed, err := repo.ListFindings(ctx, scan.ID)
		gt.NoError(t, err)
		gt.V(t, len(listed)).Equal(1)
	})

	t.Run("status only advances forward", func(t *testing.T) {
		repo := newRepo(t)
		scan := newTestScan("acme/api", time.Now().UTC())
		gt.NoError(t, repo.CreateScan(ctx, scan))

		// pending → done skips processing
		err := repo.UpdateScanStatus(ctx, scan.ID, types.ScanStatusDone)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidTransition))

		gt.NoError(t, repo.UpdateScanStatus(ctx, scan.ID, types.ScanStatusProcessing))
		gt.NoError(t, repo.UpdateScanStatus(ctx, scan.ID, types.ScanStatusDone))

		// done is terminal
		err = repo.UpdateScanStatus(ctx, scan.ID, types.ScanStatusFailed)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidTransition))
	})

	t.Run("get finding by id", func(t *testing.T) {
		repo := newRepo(t)
		scan := newTestScan("acme/api", time.Now().UTC())
		gt.NoError(t, repo.CreateScan(ctx, scan))

		finding := newTestFinding(scan.ID, "r1", "medium")
		gt.NoError(t, repo.InsertFindings(ctx, scan.ID, []*model.Finding{finding}))

		retrieved, err := repo.GetFinding(ctx, finding.ID)
		gt.NoError(t, err)
		gt.V(t, retrieved.ScanID).Equal(scan.ID)
		gt.V(t, retrieved.RuleID).Equal("r1")
		gt.V(t, string(retrieved.Raw)).Equal(`{"ruleId":"r1"}`)

		_, err = repo.GetFinding(ctx, types.NewFindingID())
		gt.Error(t, err)
		gt.True(t, errors.Is(err, repository.ErrNotFound))
	})

	t.Run("duplicate scan creation fails", func(t *testing.T) {
		repo := newRepo(t)
		scan := newTestScan("acme/api", time.Now().UTC())
		gt.NoError(t, repo.CreateScan(ctx, scan))
		gt.Error(t, repo.CreateScan(ctx, scan))
	})
}
