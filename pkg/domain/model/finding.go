package model

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/remedyhq/remedy/pkg/domain/types"
)

// Finding is a normalized static-analysis result. Findings are immutable once
// ingested; the Priority* and AI* fields are in-memory annotations added by
// the prioritizer and never written back to storage.
type Finding struct {
	ID        types.FindingID `json:"finding_id"`
	ScanID    types.ScanID    `json:"scan_id"`
	FilePath  string          `json:"file_path"`
	StartLine int             `json:"start_line"`
	EndLine   int             `json:"end_line"`
	RuleID    string          `json:"rule_id"`
	Message   string          `json:"message"`
	Severity  string          `json:"severity"`
	Raw       json.RawMessage `json:"-"`
	CreatedAt time.Time       `json:"created_at"`

	PriorityScore int    `json:"priority_score,omitempty"`
	AIPriority    string `json:"ai_priority,omitempty"`
	AIReasoning   string `json:"ai_reasoning,omitempty"`
}

var severityScores = map[string]int{
	"critical": 10,
	"high":     7,
	"medium":   4,
	"low":      2,
	"info":     1,
}

// SeverityScore maps a severity label to its base priority score. Labels are
// matched case-insensitively; unknown labels score as medium.
func SeverityScore(severity string) int {
	if score, ok := severityScores[strings.ToLower(severity)]; ok {
		return score
	}
	return 4
}

// rawSnippet mirrors the part of a SARIF result that carries a code snippet.
type rawSnippet struct {
	Locations []struct {
		PhysicalLocation struct {
			Region struct {
				Snippet struct {
					Text string `json:"text"`
				} `json:"snippet"`
			} `json:"region"`
		} `json:"physicalLocation"`
	} `json:"locations"`
}

// Snippet recovers the code snippet from the raw SARIF result payload, if the
// scanner inlined one. Returns an empty string otherwise.
func (x *Finding) Snippet() string {
	if len(x.Raw) == 0 {
		return ""
	}

	var raw rawSnippet
	if err := json.Unmarshal(x.Raw, &raw); err != nil {
		return ""
	}
	if len(raw.Locations) == 0 {
		return ""
	}

	return raw.Locations[0].PhysicalLocation.Region.Snippet.Text
}
