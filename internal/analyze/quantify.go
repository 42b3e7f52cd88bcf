package analyze

import (
	"fmt"
	"strings"

	"resumelens/internal/config"
	"resumelens/internal/extract"
	"resumelens/internal/types"
)

// QuantificationAnalyzer scores how many bullets carry a measurable result.
// A bullet counts as quantified when it contains a percentage, a currency
// amount or a standalone number.
type QuantificationAnalyzer struct {
	cfg config.QuantificationConfig
}

// NewQuantificationAnalyzer creates a quantification analyzer
func NewQuantificationAnalyzer(cfg config.QuantificationConfig) *QuantificationAnalyzer {
	return &QuantificationAnalyzer{cfg: cfg}
}

func (a *QuantificationAnalyzer) Dimension() types.Dimension {
	return types.DimQuantification
}

func (a *QuantificationAnalyzer) Analyze(doc *types.ExtractedText, sections []types.Section) types.SubScore {
	bullets := bulletLines(doc, sections, types.SectionExperience, types.SectionProjects)

	if len(bullets) == 0 {
		return types.SubScore{
			Dimension: types.DimQuantification,
			Value:     0,
			Findings: []types.Finding{{
				Dimension:      types.DimQuantification,
				Severity:       types.SeverityWarning,
				Category:       "no_bullets",
				Message:        "no bullet points found to assess",
				Recommendation: "Describe your work as bullet points with measurable outcomes.",
			}},
		}
	}

	quantified := 0
	var unquantifiedExamples []string
	for _, bullet := range bullets {
		// Strip the marker so a numbered list does not credit itself
		if isQuantified(extract.StripBullet(bullet.Text)) {
			quantified++
		} else if len(unquantifiedExamples) < 3 {
			unquantifiedExamples = append(unquantifiedExamples, bullet.Text)
		}
	}

	score := 100 * quantified / len(bullets)
	ratio := float64(quantified) / float64(len(bullets))

	var findings []types.Finding
	if ratio < a.cfg.MinRatio {
		findings = append(findings, types.Finding{
			Dimension:      types.DimQuantification,
			Severity:       types.SeverityWarning,
			Category:       "unquantified_bullets",
			Message:        fmt.Sprintf("only %d of %d bullets carry a measurable result", quantified, len(bullets)),
			Evidence:       strings.Join(unquantifiedExamples, "; "),
			Recommendation: "Attach numbers to your achievements: throughput, cost, revenue, team size, percentages.",
		})
	} else {
		findings = append(findings, types.Finding{
			Dimension: types.DimQuantification,
			Severity:  types.SeverityGood,
			Category:  "quantified_bullets",
			Message:   fmt.Sprintf("%d of %d bullets carry a measurable result", quantified, len(bullets)),
		})
	}

	return types.SubScore{
		Dimension: types.DimQuantification,
		Value:     score,
		Findings:  findings,
	}
}

// isQuantified reports whether a bullet contains a number worth crediting
func isQuantified(text string) bool {
	return percentRe.MatchString(text) ||
		currencyRe.MatchString(text) ||
		numberRe.MatchString(text)
}
