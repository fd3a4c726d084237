package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/remedyhq/remedy/pkg/domain/model"
	"github.com/remedyhq/remedy/pkg/infra"
	"github.com/remedyhq/remedy/pkg/repository/memory"
	"github.com/remedyhq/remedy/pkg/usecase"
)

func TestGetScanSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("counts findings into fixed severity buckets", func(t *testing.T) {
		repo := memory.New()
		scanID := seedScan(t, repo, []*model.Finding{
			finding("critical", "a", "a.go"),
			finding("LOW", "b", "b.go"),
			finding("low", "c", "c.go"),
		})
		uc := usecase.New(infra.New(infra.WithScanRepository(repo)))

		summary, err := uc.GetScanSummary(ctx, scanID)
		gt.NoError(t, err)
		gt.V(t, summary.ID).Equal(scanID)
		gt.V(t, summary.Summary).Equal(map[string]int{
			"critical": 1,
			"high":     0,
			"medium":   0,
			"low":      2,
		})
	})

	t.Run("unrecognized severities are not counted", func(t *testing.T) {
		repo := memory.New()
		scanID := seedScan(t, repo, []*model.Finding{
			finding("warning", "a", "a.go"),
			finding("high", "b", "b.go"),
		})
		uc := usecase.New(infra.New(infra.WithScanRepository(repo)))

		summary, err := uc.GetScanSummary(ctx, scanID)
		gt.NoError(t, err)
		gt.V(t, summary.Summary["high"]).Equal(1)

		total := 0
		for _, n := range summary.Summary {
			total += n
		}
		gt.V(t, total).Equal(1)
	})
}

func TestListScanFindings(t *testing.T) {
	ctx := context.Background()

	t.Run("orders by severity descending with stable ties", func(t *testing.T) {
		repo := memory.New()
		scanID := seedScan(t, repo, []*model.Finding{
			finding("low", "first low", "a.go"),
			finding("critical", "crit", "b.go"),
			finding("low", "second low", "c.go"),
			finding("high", "high", "d.go"),
		})
		uc := usecase.New(infra.New(infra.WithScanRepository(repo)))

		findings, err := uc.ListScanFindings(ctx, scanID)
		gt.NoError(t, err)
		gt.V(t, findings[0].Message).Equal("crit")
		gt.V(t, findings[1].Message).Equal("high")
		gt.V(t, findings[2].Message).Equal("first low")
		gt.V(t, findings[3].Message).Equal("second low")
	})
}

func TestListScans(t *testing.T) {
	ctx := context.Background()

	t.Run("passes repo filter and limit through", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(infra.New(infra.WithScanRepository(repo)))

		for i := 0; i < 3; i++ {
			_, err := uc.CreateScan(ctx, &model.IntakeInput{
				Repo:        "acme/api",
				ArtifactURL: "https://ci.example.com/a.sarif",
			})
			gt.NoError(t, err)
			time.Sleep(time.Millisecond)
		}

		scans, err := uc.ListScans(ctx, "acme/api", 2)
		gt.NoError(t, err)
		gt.V(t, len(scans)).Equal(2)

		none, err := uc.ListScans(ctx, "acme/other", 10)
		gt.NoError(t, err)
		gt.V(t, len(none)).Equal(0)
	})
}
