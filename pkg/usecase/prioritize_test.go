package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/remedyhq/remedy/pkg/domain/interfaces"
	"github.com/remedyhq/remedy/pkg/domain/mock"
	"github.com/remedyhq/remedy/pkg/domain/model"
	"github.com/remedyhq/remedy/pkg/domain/types"
	"github.com/remedyhq/remedy/pkg/infra"
	"github.com/remedyhq/remedy/pkg/repository/memory"
	"github.com/remedyhq/remedy/pkg/usecase"
)

func seedScan(t *testing.T, repo interfaces.ScanRepository, findings []*model.Finding) types.ScanID {
	t.Helper()
	ctx := context.Background()

	uc := usecase.New(infra.New(infra.WithScanRepository(repo)))
	scan, err := uc.CreateScan(ctx, testIntake("https://ci.example.com/a.sarif"))
	gt.NoError(t, err)
	gt.NoError(t, uc.IngestReport(ctx, scan.ID, findings))

	return scan.ID
}

func finding(severity, message, filePath string) *model.Finding {
	return &model.Finding{
		Severity: severity,
		Message:  message,
		FilePath: filePath,
		RuleID:   "rule",
	}
}

func unavailableGateway() *mock.CompletionGatewayMock {
	return &mock.CompletionGatewayMock{
		AvailableFunc: func() bool { return false },
	}
}

func TestPrioritizeScan(t *testing.T) {
	ctx := context.Background()

	t.Run("rule-based scores stay within range and track severity", func(t *testing.T) {
		repo := memory.New()
		scanID := seedScan(t, repo, []*model.Finding{
			finding("critical", "plain", "pkg/x.go"),
			finding("high", "plain", "pkg/x.go"),
			finding("medium", "plain", "pkg/x.go"),
			finding("low", "plain", "pkg/x.go"),
			finding("info", "plain", "pkg/x.go"),
			finding("bizarre", "plain", "pkg/x.go"),
		})
		uc := usecase.New(infra.New(
			infra.WithScanRepository(repo),
			infra.WithGateway(unavailableGateway()),
		))

		result, err := uc.PrioritizeScan(ctx, scanID, "")
		gt.NoError(t, err)
		gt.V(t, result.Outcome).Equal(model.PrioritizeScored)

		scores := map[string]int{}
		for _, f := range result.Findings {
			gt.True(t, f.PriorityScore >= 1)
			gt.True(t, f.PriorityScore <= 10)
			scores[f.Severity] = f.PriorityScore
		}

		gt.True(t, scores["critical"] >= scores["high"])
		gt.True(t, scores["high"] >= scores["medium"])
		gt.True(t, scores["medium"] >= scores["low"])
		gt.True(t, scores["low"] >= scores["info"])
		gt.V(t, scores["bizarre"]).Equal(4)
	})

	t.Run("message keywords and sensitive paths raise the score", func(t *testing.T) {
		repo := memory.New()
		scanID := seedScan(t, repo, []*model.Finding{
			finding("low", "possible SQL injection in query builder", "pkg/db.go"),
			finding("low", "plain", "internal/auth/session.go"),
			finding("low", "plain", "pkg/db.go"),
			finding("critical", "remote code execution", "cmd/admin/main.go"),
		})
		uc := usecase.New(infra.New(
			infra.WithScanRepository(repo),
			infra.WithGateway(unavailableGateway()),
		))

		result, err := uc.PrioritizeScan(ctx, scanID, "")
		gt.NoError(t, err)

		byPath := map[string]*model.Finding{}
		byMessage := map[string]*model.Finding{}
		for _, f := range result.Findings {
			byPath[f.FilePath] = f
			byMessage[f.Message] = f
		}

		gt.V(t, byMessage["possible SQL injection in query builder"].PriorityScore).Equal(4) // 2 + keyword bonus
		gt.V(t, byPath["internal/auth/session.go"].PriorityScore).Equal(3)                   // 2 + path bonus
		gt.V(t, byMessage["plain"].PriorityScore).Equal(2)
		gt.V(t, byPath["cmd/admin/main.go"].PriorityScore).Equal(10) // clamped
	})

	t.Run("gateway failure falls back to rule-based silently", func(t *testing.T) {
		repo := memory.New()
		scanID := seedScan(t, repo, []*model.Finding{
			finding("low", "plain", "a.go"),
			finding("critical", "plain", "b.go"),
			finding("medium", "plain", "c.go"),
		})
		gateway := &mock.CompletionGatewayMock{
			AvailableFunc: func() bool { return true },
			GenerateFunc: func(ctx context.Context, input *interfaces.GenerateInput) (string, error) {
				return "", errors.New("model exploded")
			},
		}
		uc := usecase.New(infra.New(infra.WithScanRepository(repo), infra.WithGateway(gateway)))

		result, err := uc.PrioritizeScan(ctx, scanID, "")
		gt.NoError(t, err)
		gt.V(t, result.Outcome).Equal(model.PrioritizeScored)

		gt.V(t, result.Findings[0].FilePath).Equal("b.go")
		gt.V(t, result.Findings[1].FilePath).Equal("c.go")
		gt.V(t, result.Findings[2].FilePath).Equal("a.go")
	})

	t.Run("AI labels are merged by bracketed identifier", func(t *testing.T) {
		repo := memory.New()
		scanID := seedScan(t, repo, []*model.Finding{
			finding("critical", "plain", "a.go"),
			finding("low", "plain", "b.go"),
		})

		gateway := &mock.CompletionGatewayMock{
			AvailableFunc: func() bool { return true },
			GenerateFunc: func(ctx context.Context, input *interfaces.GenerateInput) (string, error) {
				gt.V(t, input.Temperature).Equal(0.4)

				// Echo the identifiers the prompt carries, in reverse order
				var ids []string
				for _, line := range strings.Split(input.Prompt, "\n") {
					if start := strings.Index(line, "["); start >= 0 {
						if end := strings.Index(line[start:], "]"); end > 0 {
							ids = append(ids, line[start+1:start+end])
						}
					}
				}
				gt.V(t, len(ids)).Equal(2)

				return fmt.Sprintf("1. [%s] Low: cosmetic issue\n2. [%s] Critical: fix immediately", ids[1], ids[0]), nil
			},
		}
		uc := usecase.New(infra.New(infra.WithScanRepository(repo), infra.WithGateway(gateway)))

		result, err := uc.PrioritizeScan(ctx, scanID, "payment service")
		gt.NoError(t, err)
		gt.V(t, result.Outcome).Equal(model.PrioritizeScoredAndRanked)

		byPath := map[string]*model.Finding{}
		for _, f := range result.Findings {
			byPath[f.FilePath] = f
		}
		gt.V(t, byPath["a.go"].AIPriority).Equal("critical")
		gt.V(t, byPath["b.go"].AIPriority).Equal("low")
		gt.True(t, byPath["a.go"].AIReasoning != "")
	})

	t.Run("lines without identifiers merge positionally", func(t *testing.T) {
		repo := memory.New()
		scanID := seedScan(t, repo, []*model.Finding{
			finding("critical", "plain", "a.go"),
			finding("low", "plain", "b.go"),
		})

		gateway := &mock.CompletionGatewayMock{
			AvailableFunc: func() bool { return true },
			GenerateFunc: func(ctx context.Context, input *interfaces.GenerateInput) (string, error) {
				return "1. High: injection risk\n2. Medium: cleanup later", nil
			},
		}
		uc := usecase.New(infra.New(infra.WithScanRepository(repo), infra.WithGateway(gateway)))

		result, err := uc.PrioritizeScan(ctx, scanID, "")
		gt.NoError(t, err)
		gt.V(t, result.Outcome).Equal(model.PrioritizeScoredAndRanked)

		// Positional: first response line annotates the highest-scored finding
		byPath := map[string]*model.Finding{}
		for _, f := range result.Findings {
			byPath[f.FilePath] = f
		}
		gt.V(t, byPath["a.go"].AIPriority).Equal("high")
		gt.V(t, byPath["b.go"].AIPriority).Equal("medium")
	})

	t.Run("ties keep ingestion order", func(t *testing.T) {
		repo := memory.New()
		scanID := seedScan(t, repo, []*model.Finding{
			finding("medium", "first", "a.go"),
			finding("medium", "second", "b.go"),
			finding("medium", "third", "c.go"),
		})
		uc := usecase.New(infra.New(
			infra.WithScanRepository(repo),
			infra.WithGateway(unavailableGateway()),
		))

		result, err := uc.PrioritizeScan(ctx, scanID, "")
		gt.NoError(t, err)
		gt.V(t, result.Findings[0].Message).Equal("first")
		gt.V(t, result.Findings[1].Message).Equal("second")
		gt.V(t, result.Findings[2].Message).Equal("third")
	})

	t.Run("unknown scan fails", func(t *testing.T) {
		uc := usecase.New(infra.New(infra.WithGateway(unavailableGateway())))
		_, err := uc.PrioritizeScan(ctx, types.NewScanID(), "")
		gt.Error(t, err)
	})
}
