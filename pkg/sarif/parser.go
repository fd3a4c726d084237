// Package sarif normalizes SARIF documents into findings.
package sarif

import (
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
	"github.com/owenrumney/go-sarif/v2/sarif"
	"github.com/remedyhq/remedy/pkg/domain/model"
	"github.com/remedyhq/remedy/pkg/domain/types"
)

// rawDocument mirrors the run/result structure of a SARIF document, keeping
// each result as raw JSON so the verbatim payload can be attached to its
// finding for later snippet recovery.
type rawDocument struct {
	Runs []struct {
		Results []json.RawMessage `json:"results"`
	} `json:"runs"`
}

// Parse normalizes a SARIF document into findings. Output order matches input
// order: run-major, then result-major. Parsing is stateless and deterministic;
// invalid JSON fails with types.ErrMalformedSARIF.
//
// Per result: rule ID from ruleId (empty if absent), message from message.text
// (empty if absent), severity from level defaulting to "warning", location
// from the first physicalLocation. A result without locations yields file path
// "" and start=end=0; a region without an end line reuses the start line.
func Parse(data []byte) ([]*model.Finding, error) {
	var report sarif.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, goerr.Wrap(types.ErrMalformedSARIF, "failed to decode SARIF document", goerr.V("cause", err.Error()))
	}

	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, goerr.Wrap(types.ErrMalformedSARIF, "failed to decode SARIF document", goerr.V("cause", err.Error()))
	}

	findings := []*model.Finding{}
	for i, run := range report.Runs {
		if run == nil {
			continue
		}
		for j, result := range run.Results {
			if result == nil {
				continue
			}

			finding := normalizeResult(result)
			if i < len(raw.Runs) && j < len(raw.Runs[i].Results) {
				finding.Raw = raw.Runs[i].Results[j]
			}
			findings = append(findings, finding)
		}
	}

	return findings, nil
}

func normalizeResult(result *sarif.Result) *model.Finding {
	finding := &model.Finding{
		Severity: "warning",
	}

	if result.RuleID != nil {
		finding.RuleID = *result.RuleID
	}
	if result.Message.Text != nil {
		finding.Message = *result.Message.Text
	}
	if result.Level != nil {
		finding.Severity = *result.Level
	}

	if len(result.Locations) == 0 {
		return finding
	}

	physical := result.Locations[0].PhysicalLocation
	if physical == nil {
		return finding
	}

	if physical.ArtifactLocation != nil && physical.ArtifactLocation.URI != nil {
		finding.FilePath = *physical.ArtifactLocation.URI
	}
	if region := physical.Region; region != nil {
		if region.StartLine != nil {
			finding.StartLine = *region.StartLine
		}
		if region.EndLine != nil {
			finding.EndLine = *region.EndLine
		} else {
			finding.EndLine = finding.StartLine
		}
	}

	return finding
}
