package sarif_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/remedyhq/remedy/pkg/domain/types"
	"github.com/remedyhq/remedy/pkg/sarif"
)

func TestParse(t *testing.T) {
	t.Run("single result with full location", func(t *testing.T) {
		doc := `{"runs":[{"results":[{"ruleId":"r1","message":{"text":"SQLi"},"level":"error","locations":[{"physicalLocation":{"artifactLocation":{"uri":"a.py"},"region":{"startLine":10,"endLine":12}}}]}]}]}`

		findings, err := sarif.Parse([]byte(doc))
		gt.NoError(t, err)
		gt.V(t, len(findings)).Equal(1)

		f := findings[0]
		gt.V(t, f.FilePath).Equal("a.py")
		gt.V(t, f.StartLine).Equal(10)
		gt.V(t, f.EndLine).Equal(12)
		gt.V(t, f.RuleID).Equal("r1")
		gt.V(t, f.Message).Equal("SQLi")
		gt.V(t, f.Severity).Equal("error")
	})

	t.Run("order is run-major then result-major", func(t *testing.T) {
		doc := `{"runs":[
			{"results":[{"ruleId":"a1"},{"ruleId":"a2"}]},
			{"results":[{"ruleId":"b1"}]}
		]}`

		findings, err := sarif.Parse([]byte(doc))
		gt.NoError(t, err)
		gt.V(t, len(findings)).Equal(3)
		gt.V(t, findings[0].RuleID).Equal("a1")
		gt.V(t, findings[1].RuleID).Equal("a2")
		gt.V(t, findings[2].RuleID).Equal("b1")
	})

	t.Run("missing fields use defaults", func(t *testing.T) {
		doc := `{"runs":[{"results":[{}]}]}`

		findings, err := sarif.Parse([]byte(doc))
		gt.NoError(t, err)
		gt.V(t, len(findings)).Equal(1)

		f := findings[0]
		gt.V(t, f.FilePath).Equal("")
		gt.V(t, f.StartLine).Equal(0)
		gt.V(t, f.EndLine).Equal(0)
		gt.V(t, f.RuleID).Equal("")
		gt.V(t, f.Severity).Equal("warning")
	})

	t.Run("missing end line reuses start line", func(t *testing.T) {
		doc := `{"runs":[{"results":[{"locations":[{"physicalLocation":{"artifactLocation":{"uri":"b.go"},"region":{"startLine":7}}}]}]}]}`

		findings, err := sarif.Parse([]byte(doc))
		gt.NoError(t, err)
		gt.V(t, findings[0].StartLine).Equal(7)
		gt.V(t, findings[0].EndLine).Equal(7)
	})

	t.Run("raw payload carries the snippet", func(t *testing.T) {
		doc := `{"runs":[{"results":[{"ruleId":"r1","locations":[{"physicalLocation":{"artifactLocation":{"uri":"a.py"},"region":{"startLine":1,"snippet":{"text":"eval(x)"}}}}]}]}]}`

		findings, err := sarif.Parse([]byte(doc))
		gt.NoError(t, err)
		gt.V(t, findings[0].Snippet()).Equal("eval(x)")
	})

	t.Run("invalid JSON fails with malformed document error", func(t *testing.T) {
		_, err := sarif.Parse([]byte(`{"runs": [`))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrMalformedSARIF))
	})

	t.Run("empty runs yield no findings", func(t *testing.T) {
		findings, err := sarif.Parse([]byte(`{"runs":[]}`))
		gt.NoError(t, err)
		gt.V(t, len(findings)).Equal(0)
	})
}
