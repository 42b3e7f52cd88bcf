// Package analyze implements the scoring dimensions. Each analyzer reads
// the extracted text and classified sections, never the raw document, and
// produces an independent sub-score with findings.
package analyze

import (
	"fmt"

	"resumelens/internal/errors"
	"resumelens/internal/types"
)

// Analyzer scores one dimension of a resume. Implementations are pure over
// their inputs: same document and sections, same sub-score.
type Analyzer interface {
	Dimension() types.Dimension
	Analyze(doc *types.ExtractedText, sections []types.Section) types.SubScore
}

// Run executes an analyzer with panic isolation. A crashing analyzer yields
// a failure sentinel instead of taking the whole request down; the
// aggregator excludes failed dimensions from the weighted sum.
func Run(a Analyzer, doc *types.ExtractedText, sections []types.Section, logger *errors.Logger) (sub types.SubScore) {
	defer func() {
		if r := recover(); r != nil {
			err := errors.NewAnalysisError("ANALYZER_PANIC",
				fmt.Sprintf("analyzer %s panicked: %v", a.Dimension(), r), nil)
			logger.LogError(err, "analyzer crashed, reporting failure sentinel")

			sub = types.SubScore{
				Dimension: a.Dimension(),
				Value:     0,
				Failed:    true,
				Findings: []types.Finding{{
					Dimension: a.Dimension(),
					Severity:  types.SeverityCritical,
					Category:  "analysis_failed",
					Message:   fmt.Sprintf("%s analysis unavailable for this document", a.Dimension()),
				}},
			}
		}
	}()

	sub = a.Analyze(doc, sections)
	sub.Value = clampScore(sub.Value)
	return sub
}

// clampScore bounds a score to [0,100]
func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// sectionsNamed returns the sections carrying the given label, in order
func sectionsNamed(sections []types.Section, name types.SectionName) []types.Section {
	var out []types.Section
	for _, s := range sections {
		if s.Name == name {
			out = append(out, s)
		}
	}
	return out
}

// hasSection reports whether any section carries the given label
func hasSection(sections []types.Section, name types.SectionName) bool {
	return len(sectionsNamed(sections, name)) > 0
}
