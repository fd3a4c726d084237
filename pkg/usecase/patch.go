package usecase

import (
	"context"
	"regexp"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/remedyhq/remedy/pkg/domain/interfaces"
	"github.com/remedyhq/remedy/pkg/domain/model"
	"github.com/remedyhq/remedy/pkg/domain/types"
	"github.com/remedyhq/remedy/pkg/llm"
	"github.com/remedyhq/remedy/pkg/safety"
	"github.com/remedyhq/remedy/pkg/utils/logging"
)

const snippetContextLines = 5

// GeneratePatch produces a remediation for a single finding. Model failures
// surface in the result's Err field, never as a returned error.
func (x *UseCase) GeneratePatch(ctx context.Context, id types.FindingID, codeSnippet, filePath string) (*model.PatchResult, error) {
	finding, err := x.clients.ScanRepository().GetFinding(ctx, id)
	if err != nil {
		return nil, err
	}

	if codeSnippet == "" {
		codeSnippet = finding.Snippet()
	}
	if filePath == "" {
		filePath = finding.FilePath
	}

	return x.generatePatch(ctx, finding, codeSnippet, filePath), nil
}

func (x *UseCase) generatePatch(ctx context.Context, finding *model.Finding, codeSnippet, filePath string) *model.PatchResult {
	validated := safety.ValidateCode(codeSnippet)
	pathResult := safety.ValidatePath(filePath)
	redacted := safety.RedactCode(validated.Sanitized)

	for _, w := range append(validated.Warnings, pathResult.Warnings...) {
		logging.From(ctx).Warn("patch input sanitized",
			"finding_id", finding.ID,
			"warning", w,
		)
	}

	result := &model.PatchResult{
		FindingID:    finding.ID,
		FilePath:     pathResult.Sanitized,
		OriginalCode: codeSnippet,
		Redactions:   redacted.Redactions,
	}

	gateway := x.clients.Gateway()
	if gateway == nil || !gateway.Available() {
		result.Err = types.ErrNoProvider.Error()
		return result
	}

	response, err := gateway.Generate(ctx, &interfaces.GenerateInput{
		Prompt:       llm.PatchPrompt(pathResult.Sanitized, finding.Message, redacted.RedactedText),
		SystemPrompt: llm.SystemSecurityFixer,
		Temperature:  0.2,
	})
	if err != nil {
		result.Err = err.Error()
		return result
	}

	result.FixedCode = extractFirstCodeBlock(response)
	result.Explanation = response
	result.Diff = unifiedDiff(codeSnippet, result.FixedCode)
	result.Confidence = patchConfidence(response, result.FixedCode)

	return result
}

// GeneratePatches generates a patch per finding of a scan, pulling each
// finding's snippet from the given file contents. Findings whose file is not
// in the map are skipped.
func (x *UseCase) GeneratePatches(ctx context.Context, scanID types.ScanID, codeMap map[string]string) ([]*model.PatchResult, error) {
	findings, err := x.clients.ScanRepository().ListFindings(ctx, scanID)
	if err != nil {
		return nil, err
	}

	results := []*model.PatchResult{}
	for _, finding := range findings {
		content, ok := codeMap[finding.FilePath]
		if !ok {
			continue
		}

		snippet := extractSnippet(content, finding.StartLine, finding.EndLine)
		results = append(results, x.generatePatch(ctx, finding, snippet, finding.FilePath))
	}

	return results, nil
}

// extractSnippet cuts a context window around the finding's line range. When
// line numbers are absent the head of the file stands in.
func extractSnippet(content string, startLine, endLine int) string {
	if startLine <= 0 || endLine <= 0 {
		if len(content) > 500 {
			return content[:500]
		}
		return content
	}

	lines := strings.Split(content, "\n")
	start := startLine - 1 - snippetContextLines
	if start < 0 {
		start = 0
	}
	end := endLine + snippetContextLines
	if end > len(lines) {
		end = len(lines)
	}
	if start >= len(lines) {
		return ""
	}

	return strings.Join(lines[start:end], "\n")
}

var fencedCodeBlock = regexp.MustCompile("(?s)```(?:[a-zA-Z0-9]*)\n(.*?)```")

// extractFirstCodeBlock returns the body of the first fenced code block, or
// an empty string if the response carries none.
func extractFirstCodeBlock(response string) string {
	match := fencedCodeBlock.FindStringSubmatch(response)
	if match == nil {
		return ""
	}
	return strings.TrimRight(match[1], "\n")
}

func unifiedDiff(original, fixed string) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(original),
		B:        difflib.SplitLines(fixed),
		FromFile: "original",
		ToFile:   "fixed",
		Context:  3,
	})
	if err != nil {
		return ""
	}
	return diff
}

// patchConfidence scores a generated patch in [0,1]. The base of 0.7 rises
// with a substantial explanation and a non-empty fix, and drops for fixes too
// short to be plausible.
func patchConfidence(explanation, fixedCode string) float64 {
	confidence := 0.7
	if len(explanation) > 200 {
		confidence += 0.1
	}
	if fixedCode != "" {
		confidence += 0.1
	}
	if len(fixedCode) < 20 {
		confidence -= 0.2
	}

	if confidence < 0 {
		return 0
	}
	if confidence > 1 {
		return 1
	}
	return confidence
}
