package analyze

import (
	"fmt"
	"strings"

	"resumelens/internal/types"
)

// canonicalFlow is the section order recruiters expect to scan
var canonicalFlow = []types.SectionName{
	types.SectionContact,
	types.SectionSummary,
	types.SectionExperience,
	types.SectionEducation,
	types.SectionSkills,
}

// FlowAnalyzer scores section ordering: the fraction of observed sections
// that sit in their expected relative order, measured as the longest common
// subsequence with the canonical order.
type FlowAnalyzer struct{}

// NewFlowAnalyzer creates a flow analyzer
func NewFlowAnalyzer() *FlowAnalyzer {
	return &FlowAnalyzer{}
}

func (a *FlowAnalyzer) Dimension() types.Dimension {
	return types.DimFlow
}

func (a *FlowAnalyzer) Analyze(doc *types.ExtractedText, sections []types.Section) types.SubScore {
	observed := observedFlow(sections)

	if len(observed) <= 1 {
		return types.SubScore{
			Dimension: types.DimFlow,
			Value:     100,
			Findings: []types.Finding{{
				Dimension: types.DimFlow,
				Severity:  types.SeverityGood,
				Category:  "section_order",
				Message:   "too few sections for ordering to matter",
			}},
		}
	}

	inOrder := lcsLength(observed, canonicalFlow)
	score := 100 * inOrder / len(observed)

	var findings []types.Finding
	if inOrder == len(observed) {
		findings = append(findings, types.Finding{
			Dimension: types.DimFlow,
			Severity:  types.SeverityGood,
			Category:  "section_order",
			Message:   "sections follow the expected order",
			Evidence:  flowString(observed),
		})
	} else {
		findings = append(findings, types.Finding{
			Dimension:      types.DimFlow,
			Severity:       types.SeverityWarning,
			Category:       "section_order",
			Message:        fmt.Sprintf("%d of %d sections sit out of the expected order", len(observed)-inOrder, len(observed)),
			Evidence:       fmt.Sprintf("found %s, expected %s", flowString(observed), flowString(canonicalFlow)),
			Recommendation: "Order sections contact, summary, experience, education, skills.",
		})
	}

	return types.SubScore{
		Dimension: types.DimFlow,
		Value:     score,
		Findings:  findings,
	}
}

// observedFlow lists the canonical sections in the order they first appear
func observedFlow(sections []types.Section) []types.SectionName {
	canonical := make(map[types.SectionName]bool, len(canonicalFlow))
	for _, name := range canonicalFlow {
		canonical[name] = true
	}

	seen := make(map[types.SectionName]bool)
	var observed []types.SectionName
	for _, section := range sections {
		if canonical[section.Name] && !seen[section.Name] {
			seen[section.Name] = true
			observed = append(observed, section.Name)
		}
	}
	return observed
}

// lcsLength computes the longest common subsequence length of two section
// orderings.
func lcsLength(a, b []types.SectionName) int {
	table := make([][]int, len(a)+1)
	for i := range table {
		table[i] = make([]int, len(b)+1)
	}
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				table[i][j] = table[i-1][j-1] + 1
			} else if table[i-1][j] >= table[i][j-1] {
				table[i][j] = table[i-1][j]
			} else {
				table[i][j] = table[i][j-1]
			}
		}
	}
	return table[len(a)][len(b)]
}

func flowString(names []types.SectionName) string {
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = string(name)
	}
	return strings.Join(parts, " > ")
}
