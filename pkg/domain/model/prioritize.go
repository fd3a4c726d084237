package model

import "github.com/remedyhq/remedy/pkg/domain/types"

// PrioritizeOutcome tells how far the prioritization pipeline got. The
// rule-based pass always runs; the AI pass upgrades the result
// opportunistically and its failure is never fatal.
type PrioritizeOutcome string

const (
	// PrioritizeScored means only the rule-based pass contributed.
	PrioritizeScored PrioritizeOutcome = "scored"
	// PrioritizeScoredAndRanked means AI re-ranking was merged in as well.
	PrioritizeScoredAndRanked PrioritizeOutcome = "scored_and_ranked"
)

type PrioritizeResult struct {
	ScanID   types.ScanID      `json:"scan_id"`
	Outcome  PrioritizeOutcome `json:"outcome"`
	Findings []*Finding        `json:"prioritized_findings"`
}
