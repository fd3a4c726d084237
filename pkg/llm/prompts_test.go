package llm_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/remedyhq/remedy/pkg/llm"
)

func TestPrompts(t *testing.T) {
	t.Run("analysis prompt embeds the finding details", func(t *testing.T) {
		prompt := llm.AnalysisPrompt("app/db.py", "sql-injection", "high", "cursor.execute(q)")
		gt.True(t, strings.Contains(prompt, "app/db.py"))
		gt.True(t, strings.Contains(prompt, "sql-injection"))
		gt.True(t, strings.Contains(prompt, "high"))
		gt.True(t, strings.Contains(prompt, "cursor.execute(q)"))
	})

	t.Run("patch prompt embeds path, description and snippet", func(t *testing.T) {
		prompt := llm.PatchPrompt("app/db.py", "SQL injection", "cursor.execute(q)")
		gt.True(t, strings.Contains(prompt, "app/db.py"))
		gt.True(t, strings.Contains(prompt, "SQL injection"))
	})

	t.Run("prioritization prompt defaults the context", func(t *testing.T) {
		prompt := llm.PrioritizationPrompt("", "- [id] high: x")
		gt.True(t, strings.Contains(prompt, "General application security review"))

		custom := llm.PrioritizationPrompt("payment service", "- [id] high: x")
		gt.True(t, strings.Contains(custom, "payment service"))
	})
}
