package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/remedyhq/remedy/pkg/domain/model"
	"github.com/remedyhq/remedy/pkg/domain/types"
)

func TestNewScan(t *testing.T) {
	now := time.Now().UTC()

	t.Run("defaults scan type and starts pending", func(t *testing.T) {
		scan := model.NewScan(&model.IntakeInput{
			Repo:        "acme/api",
			ArtifactURL: "https://ci.example.com/a.sarif",
		}, now)

		gt.True(t, scan.ID != "")
		gt.V(t, scan.ScanType).Equal("semgrep")
		gt.V(t, scan.Status).Equal(types.ScanStatusPending)
		gt.V(t, scan.CreatedAt).Equal(now)
	})

	t.Run("explicit scan type is kept", func(t *testing.T) {
		scan := model.NewScan(&model.IntakeInput{
			Repo:        "acme/api",
			ArtifactURL: "https://ci.example.com/a.sarif",
			ScanType:    "codeql",
		}, now)
		gt.V(t, scan.ScanType).Equal("codeql")
	})
}

func TestIntakeInputValidate(t *testing.T) {
	t.Run("requires repo and artifact URL", func(t *testing.T) {
		gt.Error(t, (&model.IntakeInput{ArtifactURL: "https://x"}).Validate())
		gt.Error(t, (&model.IntakeInput{Repo: "acme/api"}).Validate())
		gt.Error(t, (&model.IntakeInput{Repo: "  ", ArtifactURL: "https://x"}).Validate())
		gt.NoError(t, (&model.IntakeInput{Repo: "acme/api", ArtifactURL: "https://x"}).Validate())
	})
}

func TestNewScanSummary(t *testing.T) {
	scan := model.NewScan(&model.IntakeInput{Repo: "acme/api", ArtifactURL: "https://x"}, time.Now())

	summary := model.NewScanSummary(scan, []*model.Finding{
		{Severity: "critical"},
		{Severity: "Low"},
		{Severity: "low"},
		{Severity: "warning"},
	})

	gt.V(t, summary.Summary).Equal(map[string]int{
		"critical": 1,
		"high":     0,
		"medium":   0,
		"low":      2,
	})
}

func TestSeverityScore(t *testing.T) {
	gt.V(t, model.SeverityScore("critical")).Equal(10)
	gt.V(t, model.SeverityScore("CRITICAL")).Equal(10)
	gt.V(t, model.SeverityScore("high")).Equal(7)
	gt.V(t, model.SeverityScore("medium")).Equal(4)
	gt.V(t, model.SeverityScore("low")).Equal(2)
	gt.V(t, model.SeverityScore("info")).Equal(1)
	gt.V(t, model.SeverityScore("warning")).Equal(4)
}

func TestFindingSnippet(t *testing.T) {
	t.Run("recovers inlined snippet from raw payload", func(t *testing.T) {
		f := &model.Finding{
			Raw: []byte(`{"locations":[{"physicalLocation":{"region":{"snippet":{"text":"eval(x)"}}}}]}`),
		}
		gt.V(t, f.Snippet()).Equal("eval(x)")
	})

	t.Run("missing raw or snippet yields empty string", func(t *testing.T) {
		gt.V(t, (&model.Finding{}).Snippet()).Equal("")
		gt.V(t, (&model.Finding{Raw: []byte(`{"locations":[]}`)}).Snippet()).Equal("")
		gt.V(t, (&model.Finding{Raw: []byte(`not json`)}).Snippet()).Equal("")
	})
}
