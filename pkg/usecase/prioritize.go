package usecase

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/remedyhq/remedy/pkg/domain/interfaces"
	"github.com/remedyhq/remedy/pkg/domain/model"
	"github.com/remedyhq/remedy/pkg/domain/types"
	"github.com/remedyhq/remedy/pkg/llm"
	"github.com/remedyhq/remedy/pkg/safety"
	"github.com/remedyhq/remedy/pkg/utils/logging"
)

const aiRankingLimit = 20

var highImpactKeywords = []string{
	"sql injection",
	"rce",
	"remote code",
	"authentication bypass",
}

var sensitivePathTokens = []string{
	"auth",
	"login",
	"password",
	"admin",
}

// priorityScore computes the rule-based score of a single finding: severity
// base, +2 for a high-impact keyword in the message, +1 for a sensitive path
// token, capped at 10.
func priorityScore(f *model.Finding) int {
	score := model.SeverityScore(f.Severity)

	message := strings.ToLower(f.Message)
	for _, kw := range highImpactKeywords {
		if strings.Contains(message, kw) {
			score += 2
			break
		}
	}

	path := strings.ToLower(f.FilePath)
	for _, token := range sensitivePathTokens {
		if strings.Contains(path, token) {
			score += 1
			break
		}
	}

	if score > 10 {
		score = 10
	}

	return score
}

// PrioritizeScan scores all findings of a scan. The rule-based pass always
// succeeds; the AI re-ranking pass is best effort and its failure downgrades
// the outcome instead of failing the call.
func (x *UseCase) PrioritizeScan(ctx context.Context, scanID types.ScanID, appContext string) (*model.PrioritizeResult, error) {
	findings, err := x.clients.ScanRepository().ListFindings(ctx, scanID)
	if err != nil {
		return nil, err
	}

	for _, f := range findings {
		f.PriorityScore = priorityScore(f)
	}

	outcome := model.PrioritizeScored
	if err := x.rankWithAI(ctx, findings, appContext); err != nil {
		logging.From(ctx).Warn("AI ranking unavailable, falling back to rule-based scores",
			"scan_id", scanID,
			"error", err,
		)
	} else {
		outcome = model.PrioritizeScoredAndRanked
	}

	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].PriorityScore > findings[j].PriorityScore
	})

	return &model.PrioritizeResult{
		ScanID:   scanID,
		Outcome:  outcome,
		Findings: findings,
	}, nil
}

// rankWithAI sends the highest-scored findings to the gateway and merges the
// returned priority labels back in.
func (x *UseCase) rankWithAI(ctx context.Context, findings []*model.Finding, appContext string) error {
	gateway := x.clients.Gateway()
	if gateway == nil || !gateway.Available() {
		return types.ErrNoProvider
	}
	if len(findings) == 0 {
		return nil
	}

	top := make([]*model.Finding, len(findings))
	copy(top, findings)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].PriorityScore > top[j].PriorityScore
	})
	if len(top) > aiRankingLimit {
		top = top[:aiRankingLimit]
	}

	contextResult := safety.ValidateContext(appContext)

	var lines []string
	for _, f := range top {
		redacted := safety.Redact(f.Message, false)
		lines = append(lines, fmt.Sprintf("- [%s] %s: %s in %s (%s)",
			f.ID, f.Severity, f.RuleID, f.FilePath, redacted.RedactedText))
	}

	response, err := gateway.Generate(ctx, &interfaces.GenerateInput{
		Prompt:       llm.PrioritizationPrompt(contextResult.Sanitized, strings.Join(lines, "\n")),
		SystemPrompt: llm.SystemSecurityAnalyst,
		Temperature:  0.4,
	})
	if err != nil {
		return err
	}

	mergePriorities(top, response)
	return nil
}

var priorityLabel = regexp.MustCompile(`(?i)\b(critical|high|medium|low)\b`)

// mergePriorities parses the free-text model response and annotates the sent
// findings. Lines are matched to findings by the bracketed identifier; lines
// without one are assigned positionally. Best effort: unmatched findings keep
// rule-based scores only.
func mergePriorities(sent []*model.Finding, response string) {
	byID := make(map[types.FindingID]*model.Finding, len(sent))
	for _, f := range sent {
		byID[f.ID] = f
	}

	pos := 0
	for _, line := range strings.Split(response, "\n") {
		label := priorityLabel.FindString(line)
		if label == "" {
			continue
		}

		var target *model.Finding
		if start := strings.Index(line, "["); start >= 0 {
			if end := strings.Index(line[start:], "]"); end > 0 {
				if f, ok := byID[types.FindingID(line[start+1:start+end])]; ok {
					target = f
				}
			}
		}
		if target == nil {
			for pos < len(sent) && sent[pos].AIPriority != "" {
				pos++
			}
			if pos >= len(sent) {
				continue
			}
			target = sent[pos]
			pos++
		}

		target.AIPriority = strings.ToLower(label)
		target.AIReasoning = strings.TrimSpace(line)
	}
}
