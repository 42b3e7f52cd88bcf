package analyze

import (
	"fmt"
	"strings"

	"resumelens/internal/config"
	"resumelens/internal/types"
)

// skillPoints is how much each recognized skill contributes before the cap
const skillPoints = 8

// SkillsAnalyzer scores recognized-skill coverage against the skills
// vocabulary. The score saturates, a long tail of skills past the cap does
// not keep raising it.
type SkillsAnalyzer struct {
	vocab *config.Vocabulary
	cfg   config.SkillsConfig
}

// NewSkillsAnalyzer creates a skills analyzer over a vocabulary snapshot
func NewSkillsAnalyzer(vocab *config.Vocabulary, cfg config.SkillsConfig) *SkillsAnalyzer {
	return &SkillsAnalyzer{vocab: vocab, cfg: cfg}
}

func (a *SkillsAnalyzer) Dimension() types.Dimension {
	return types.DimSkills
}

func (a *SkillsAnalyzer) Analyze(doc *types.ExtractedText, sections []types.Section) types.SubScore {
	matched := MatchSkills(doc, a.vocab.Skills)
	score := len(matched) * skillPoints
	if score > 100 {
		score = 100
	}

	var findings []types.Finding

	if len(matched) == 0 {
		findings = append(findings, types.Finding{
			Dimension:      types.DimSkills,
			Severity:       types.SeverityCritical,
			Category:       "no_skills_matched",
			Message:        "no recognizable skills found in the document",
			Recommendation: "Name the concrete technologies and tools you work with, using their common spellings.",
		})
	} else if len(matched) < a.cfg.MinCount {
		findings = append(findings, types.Finding{
			Dimension:      types.DimSkills,
			Severity:       types.SeverityWarning,
			Category:       "few_skills_matched",
			Message:        fmt.Sprintf("only %d recognizable skills found", len(matched)),
			Evidence:       strings.Join(matched, ", "),
			Recommendation: "Expand your skills section with the specific technologies from your recent roles.",
		})
	} else {
		findings = append(findings, types.Finding{
			Dimension: types.DimSkills,
			Severity:  types.SeverityGood,
			Category:  "skills_matched",
			Message:   fmt.Sprintf("%d recognizable skills found", len(matched)),
			Evidence:  strings.Join(matched, ", "),
		})
	}

	if !hasSection(sections, types.SectionSkills) {
		findings = append(findings, types.Finding{
			Dimension:      types.DimSkills,
			Severity:       types.SeverityWarning,
			Category:       "skills_not_grouped",
			Message:        "skills are not grouped under a dedicated section",
			Recommendation: "Group your technologies under a clearly labeled skills heading so parsers can find them.",
		})
	}

	return types.SubScore{
		Dimension: types.DimSkills,
		Value:     score,
		Findings:  findings,
	}
}
