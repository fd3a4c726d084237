package model

import (
	"github.com/remedyhq/remedy/pkg/domain/types"
	"github.com/remedyhq/remedy/pkg/safety"
)

// PatchResult is a generated remediation for a single finding. It is never
// persisted. A non-empty Err means the model call failed; callers must treat
// its presence as failure instead of relying on an error return.
type PatchResult struct {
	FindingID    types.FindingID    `json:"finding_id"`
	FilePath     string             `json:"file_path"`
	OriginalCode string             `json:"original_code"`
	FixedCode    string             `json:"fixed_code"`
	Explanation  string             `json:"explanation"`
	Diff         string             `json:"diff"`
	Confidence   float64            `json:"confidence"`
	Redactions   []safety.Redaction `json:"redactions"`
	Err          string             `json:"error,omitempty"`
}

// Analysis is the result of a deep AI review of a single finding.
type Analysis struct {
	FindingID       types.FindingID `json:"finding_id"`
	Analysis        string          `json:"analysis"`
	RiskScore       int             `json:"risk_score"`
	Recommendations []string        `json:"recommendations"`
}

// GatewayHealth reports the availability of the completion gateway.
type GatewayHealth struct {
	Status    string `json:"status"`
	Provider  string `json:"provider,omitempty"`
	Model     string `json:"model,omitempty"`
	Available bool   `json:"available"`
	Err       string `json:"error,omitempty"`
}
