package usecase

import (
	"context"
	"regexp"
	"strconv"

	"github.com/remedyhq/remedy/pkg/domain/interfaces"
	"github.com/remedyhq/remedy/pkg/domain/model"
	"github.com/remedyhq/remedy/pkg/domain/types"
	"github.com/remedyhq/remedy/pkg/llm"
	"github.com/remedyhq/remedy/pkg/safety"
)

// AnalyzeFinding asks the gateway for a deep review of a single finding.
// Unlike patch generation, a model failure here is an error to the caller.
func (x *UseCase) AnalyzeFinding(ctx context.Context, id types.FindingID, codeContext string) (*model.Analysis, error) {
	finding, err := x.clients.ScanRepository().GetFinding(ctx, id)
	if err != nil {
		return nil, err
	}

	if codeContext == "" {
		codeContext = finding.Snippet()
	}
	// The context is source code, so the code-aware redaction applies here
	// just like in patch generation.
	validated := safety.ValidateCode(codeContext)
	redacted := safety.RedactCode(validated.Sanitized)

	gateway := x.clients.Gateway()
	if gateway == nil {
		return nil, types.ErrNoProvider
	}

	response, err := gateway.Generate(ctx, &interfaces.GenerateInput{
		Prompt:       llm.AnalysisPrompt(finding.FilePath, finding.RuleID, finding.Severity, redacted.RedactedText),
		SystemPrompt: llm.SystemSecurityExpert,
		Temperature:  0.3,
	})
	if err != nil {
		return nil, err
	}

	return &model.Analysis{
		FindingID:       id,
		Analysis:        response,
		RiskScore:       extractRiskScore(response),
		Recommendations: extractRecommendations(response),
	}, nil
}

var riskScorePattern = regexp.MustCompile(`(?i)risk.*?(\d+)`)

func extractRiskScore(response string) int {
	match := riskScorePattern.FindStringSubmatch(response)
	if match == nil {
		return 5
	}

	score, err := strconv.Atoi(match[1])
	if err != nil || score < 1 || score > 10 {
		return 5
	}
	return score
}

var bulletPattern = regexp.MustCompile(`(?m)^\s*[-*]\s+(.+)$`)

func extractRecommendations(response string) []string {
	matches := bulletPattern.FindAllStringSubmatch(response, 5)
	if len(matches) == 0 {
		return []string{"Review and fix the vulnerability"}
	}

	recommendations := make([]string, 0, len(matches))
	for _, m := range matches {
		recommendations = append(recommendations, m[1])
	}
	return recommendations
}

// GatewayHealth reports whether a completion provider is ready to serve.
func (x *UseCase) GatewayHealth(ctx context.Context) *model.GatewayHealth {
	gateway := x.clients.Gateway()
	if gateway == nil || !gateway.Available() {
		health := &model.GatewayHealth{
			Status: "unavailable",
			Err:    types.ErrNoProvider.Error(),
		}
		if gateway != nil {
			health.Provider = gateway.DefaultProvider()
			health.Model = gateway.DefaultModel()
		}
		return health
	}

	return &model.GatewayHealth{
		Status:    "ok",
		Provider:  gateway.DefaultProvider(),
		Model:     gateway.DefaultModel(),
		Available: true,
	}
}
