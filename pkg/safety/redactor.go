package safety

import (
	"regexp"
	"strings"
)

// Redaction records one replaced match: its pattern class, a truncated
// preview of the original text, and the character offset where it was found.
type Redaction struct {
	Type     string `json:"type"`
	Original string `json:"original"`
	Position int    `json:"position"`
}

// RedactionResult is the output of a redaction pass. It is produced per call
// and never persisted.
type RedactionResult struct {
	RedactedText string      `json:"redacted_text"`
	Redactions   []Redaction `json:"redactions"`
	Count        int         `json:"redaction_count"`
}

type patternClass struct {
	name        string
	ptn         *regexp.Regexp
	replacement string
}

// Pattern classes are applied in this fixed order. Each class replaces its
// matches with a distinct sentinel token.
var patternClasses = []patternClass{
	{"email", regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), "[EMAIL_REDACTED]"},
	{"phone", regexp.MustCompile(`\b(?:\+?1[-.]?)?\(?([0-9]{3})\)?[-.]?([0-9]{3})[-.]?([0-9]{4})\b`), "[PHONE_REDACTED]"},
	{"ssn", regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`), "[SSN_REDACTED]"},
	{"credit_card", regexp.MustCompile(`\b\d{4}[-\s]?\d{4}[-\s]?\d{4}[-\s]?\d{4}\b`), "[CARD_REDACTED]"},
	{"ip_address", regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`), "[IP_REDACTED]"},
	{"api_key", regexp.MustCompile(`\b[A-Za-z0-9]{32,}\b`), "[API_KEY_REDACTED]"},
	{"aws_key", regexp.MustCompile(`AKIA[0-9A-Z]{16}`), "[AWS_KEY_REDACTED]"},
	{"github_token", regexp.MustCompile(`ghp_[A-Za-z0-9]{36}`), "[GITHUB_TOKEN_REDACTED]"},
	{"jwt", regexp.MustCompile(`eyJ[A-Za-z0-9_-]*\.eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]*`), "[JWT_REDACTED]"},
}

var codeIndicators = []string{
	"=",
	`"`, "'",
	"const ", "let ", "var ",
	"API_KEY", "SECRET", "TOKEN",
}

// isLikelyCode reports whether a match is probably a source identifier rather
// than actual PII, judged by code-like indicators in its surrounding window.
func isLikelyCode(text string, start, end int) bool {
	from := start - 50
	if from < 0 {
		from = 0
	}
	to := end + 50
	if to > len(text) {
		to = len(text)
	}
	window := text[from:to]

	for _, indicator := range codeIndicators {
		if strings.Contains(window, indicator) {
			return true
		}
	}
	return false
}

func truncatePreview(s string) string {
	if len(s) > 10 {
		return s[:10] + "..."
	}
	return s
}

// Redact replaces PII and secrets in text with sentinel tokens. In
// non-aggressive mode a match is suppressed when its ±50-character window
// looks like code, to avoid redacting identifiers that merely resemble
// secrets. Redaction is idempotent on its own output.
func Redact(text string, aggressive bool) *RedactionResult {
	redactions := []Redaction{}

	for _, class := range patternClasses {
		pos := 0
		for pos < len(text) {
			loc := class.ptn.FindStringIndex(text[pos:])
			if loc == nil {
				break
			}
			start, end := pos+loc[0], pos+loc[1]

			if !aggressive && isLikelyCode(text, start, end) {
				pos = end
				continue
			}

			original := text[start:end]
			text = text[:start] + class.replacement + text[end:]
			redactions = append(redactions, Redaction{
				Type:     class.name,
				Original: truncatePreview(original),
				Position: start,
			})
			pos = start + len(class.replacement)
		}
	}

	return &RedactionResult{
		RedactedText: text,
		Redactions:   redactions,
		Count:        len(redactions),
	}
}

var passwordAssignment = regexp.MustCompile(`(?i)password\s*=\s*["'][^"']+["']`)

// RedactCode redacts PII from source code. It runs the non-aggressive pass to
// preserve code structure, then rewrites hardcoded password assignments
// regardless of aggressiveness.
func RedactCode(code string) *RedactionResult {
	result := Redact(code, false)

	result.RedactedText = passwordAssignment.ReplaceAllString(
		result.RedactedText,
		`password = "[PASSWORD_REDACTED]"`,
	)

	return result
}
