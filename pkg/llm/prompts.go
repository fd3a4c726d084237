package llm

import "fmt"

// System roles for the fixed prompt set.
const (
	SystemSecurityExpert  = "You are a cybersecurity expert analyzing code vulnerabilities."
	SystemSecurityFixer   = "You are an expert software engineer specializing in security fixes."
	SystemSecurityAnalyst = "You are a security analyst prioritizing vulnerabilities."
)

const analysisPromptTemplate = `Analyze the following security vulnerability:

**File**: %s
**Vulnerability Type**: %s
**Severity**: %s

**Code Snippet**:
` + "```" + `
%s
` + "```" + `

Please provide:
1. A detailed explanation of the vulnerability
2. The potential impact and risk (rate 1-10)
3. Attack scenarios that could exploit this
4. Specific recommendations to fix it
5. Best practices to prevent similar issues

Format your response clearly with sections.
`

// AnalysisPrompt builds the prompt for deep analysis of a single finding.
func AnalysisPrompt(filePath, vulnerabilityType, severity, codeSnippet string) string {
	return fmt.Sprintf(analysisPromptTemplate, filePath, vulnerabilityType, severity, codeSnippet)
}

const patchPromptTemplate = `Generate a secure code fix for the following vulnerability:

**File**: %s
**Vulnerability**: %s

**Current Code**:
` + "```" + `
%s
` + "```" + `

Please provide:
1. The fixed/secure version of the code
2. A clear explanation of what was changed and why
3. Any additional security considerations

Format the fixed code in a code block.
`

// PatchPrompt builds the prompt for generating a remediation patch.
func PatchPrompt(filePath, vulnerabilityDescription, codeSnippet string) string {
	return fmt.Sprintf(patchPromptTemplate, filePath, vulnerabilityDescription, codeSnippet)
}

const prioritizationPromptTemplate = `You are analyzing multiple security findings. Prioritize them based on:
- Severity level
- Exploitability
- Business impact
- Ease of remediation

**Context**: %s

**Findings**:
%s

Provide a prioritized list with:
1. Priority level (Critical/High/Medium/Low)
2. Reasoning for the priority
3. Recommended action timeline

Keep the finding identifier in square brackets on each line.
Focus on the most critical issues first.
`

// PrioritizationPrompt builds the prompt for re-ranking a findings summary.
func PrioritizationPrompt(context, findingsSummary string) string {
	if context == "" {
		context = "General application security review"
	}
	return fmt.Sprintf(prioritizationPromptTemplate, context, findingsSummary)
}
