package model

import (
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/remedyhq/remedy/pkg/domain/types"
)

type Scan struct {
	ID          types.ScanID     `json:"scan_id"`
	Repo        string           `json:"repo"`
	PRNumber    int              `json:"pr_number"`
	CommitSHA   string           `json:"commit_sha"`
	ScanType    string           `json:"scan_type"`
	ArtifactURL string           `json:"artifact_url"`
	Status      types.ScanStatus `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
}

// IntakeInput is the payload accepted by the PR webhook and the ingest command.
type IntakeInput struct {
	Repo        string `json:"repo"`
	PRNumber    int    `json:"pr_number"`
	CommitSHA   string `json:"commit_sha"`
	ArtifactURL string `json:"artifact_url"`
	ScanType    string `json:"scan_type"`
}

func (x *IntakeInput) Validate() error {
	if strings.TrimSpace(x.Repo) == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repo is required")
	}
	if strings.TrimSpace(x.ArtifactURL) == "" {
		return goerr.Wrap(types.ErrValidationFailed, "artifact_url is required")
	}
	return nil
}

// NewScan creates a scan record in the pending state.
func NewScan(input *IntakeInput, now time.Time) *Scan {
	scanType := input.ScanType
	if scanType == "" {
		scanType = "semgrep"
	}

	return &Scan{
		ID:          types.NewScanID(),
		Repo:        input.Repo,
		PRNumber:    input.PRNumber,
		CommitSHA:   input.CommitSHA,
		ScanType:    scanType,
		ArtifactURL: input.ArtifactURL,
		Status:      types.ScanStatusPending,
		CreatedAt:   now,
	}
}

// ScanSummary is a scan with a severity-bucketed finding count. Buckets are
// fixed to critical/high/medium/low; severities are matched case-insensitively
// and anything else is not counted.
type ScanSummary struct {
	Scan
	Summary map[string]int `json:"summary"`
}

func NewScanSummary(scan *Scan, findings []*Finding) *ScanSummary {
	summary := map[string]int{
		"critical": 0,
		"high":     0,
		"medium":   0,
		"low":      0,
	}
	for _, f := range findings {
		sev := strings.ToLower(f.Severity)
		if _, ok := summary[sev]; ok {
			summary[sev]++
		}
	}

	return &ScanSummary{
		Scan:    *scan,
		Summary: summary,
	}
}
