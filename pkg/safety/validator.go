// Package safety gates all text before it reaches a completion provider.
// It validates and truncates inputs, flags prompt-injection attempts, and
// redacts PII and secrets. No unredacted user code may cross the completion
// gateway boundary.
package safety

import (
	"fmt"
	"regexp"
	"strings"
)

// Maximum input lengths to prevent token overflow.
const (
	MaxCodeLength    = 10000
	MaxPromptLength  = 5000
	MaxContextLength = 3000
)

var injectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)ignore\s+previous\s+instructions`),
	regexp.MustCompile(`(?i)disregard\s+all\s+prior`),
	regexp.MustCompile(`(?i)forget\s+everything`),
	regexp.MustCompile(`(?i)new\s+instructions:`),
	regexp.MustCompile(`(?i)system\s+override`),
}

// ValidationResult carries the sanitized text and any warnings raised while
// sanitizing. Validation never fails: oversized inputs are truncated and
// suspicious content is flagged, not blocked.
type ValidationResult struct {
	Sanitized string
	Warnings  []string
}

func truncate(s string, limit int, label string, warnings *[]string) string {
	if len(s) > limit {
		*warnings = append(*warnings, fmt.Sprintf("%s truncated from %d to %d characters", label, len(s), limit))
		return s[:limit]
	}
	return s
}

func checkInjection(s string, warnings *[]string) {
	for _, ptn := range injectionPatterns {
		if ptn.MatchString(s) {
			*warnings = append(*warnings, fmt.Sprintf("potential prompt injection detected: %s", ptn.String()))
		}
	}
}

// ValidateCode sanitizes a code snippet: truncates to MaxCodeLength, flags
// injection signatures, and strips embedded null bytes.
func ValidateCode(code string) *ValidationResult {
	var warnings []string

	code = truncate(code, MaxCodeLength, "code", &warnings)
	checkInjection(code, &warnings)

	if strings.ContainsRune(code, '\x00') {
		code = strings.ReplaceAll(code, "\x00", "")
		warnings = append(warnings, "removed null bytes from input")
	}

	return &ValidationResult{Sanitized: code, Warnings: warnings}
}

// ValidatePrompt sanitizes a user prompt: truncates to MaxPromptLength and
// flags injection signatures for monitoring without blocking.
func ValidatePrompt(prompt string) *ValidationResult {
	var warnings []string

	prompt = truncate(prompt, MaxPromptLength, "prompt", &warnings)
	checkInjection(prompt, &warnings)

	return &ValidationResult{Sanitized: strings.TrimSpace(prompt), Warnings: warnings}
}

// ValidateContext sanitizes supplementary context, truncating to
// MaxContextLength.
func ValidateContext(context string) *ValidationResult {
	var warnings []string

	context = truncate(context, MaxContextLength, "context", &warnings)
	checkInjection(context, &warnings)

	return &ValidationResult{Sanitized: context, Warnings: warnings}
}

var traversalMarkers = []string{"../", `..\`, "/etc/", `C:\Windows`}

// ValidatePath flags path traversal markers as warnings and normalizes
// backslashes to forward slashes. It does not reject.
func ValidatePath(filePath string) *ValidationResult {
	var warnings []string

	for _, marker := range traversalMarkers {
		if strings.Contains(filePath, marker) {
			warnings = append(warnings, fmt.Sprintf("potential path traversal detected: %s", marker))
		}
	}

	sanitized := strings.TrimSpace(strings.ReplaceAll(filePath, `\`, "/"))

	return &ValidationResult{Sanitized: sanitized, Warnings: warnings}
}
