package analyze

import (
	"fmt"
	"strings"

	"resumelens/internal/config"
	"resumelens/internal/extract"
	"resumelens/internal/types"
)

// ActionVerbsAnalyzer scores how bullets open. Bullets led by a strong verb
// score, bullets led by passive phrasing drag the dimension down, and bullet
// hygiene problems surface as findings without affecting the score directly.
type ActionVerbsAnalyzer struct {
	vocab *config.Vocabulary
	cfg   config.ActionVerbsConfig
}

// NewActionVerbsAnalyzer creates an action verb analyzer over a vocabulary snapshot
func NewActionVerbsAnalyzer(vocab *config.Vocabulary, cfg config.ActionVerbsConfig) *ActionVerbsAnalyzer {
	return &ActionVerbsAnalyzer{vocab: vocab, cfg: cfg}
}

func (a *ActionVerbsAnalyzer) Dimension() types.Dimension {
	return types.DimActionVerbs
}

func (a *ActionVerbsAnalyzer) Analyze(doc *types.ExtractedText, sections []types.Section) types.SubScore {
	bullets := bulletLines(doc, sections, types.SectionExperience, types.SectionProjects)

	if len(bullets) == 0 {
		return types.SubScore{
			Dimension: types.DimActionVerbs,
			Value:     0,
			Findings: []types.Finding{{
				Dimension:      types.DimActionVerbs,
				Severity:       types.SeverityWarning,
				Category:       "no_bullets",
				Message:        "no bullet points found to assess",
				Recommendation: "Describe your work as bullet points, each opening with a strong action verb.",
			}},
		}
	}

	strong, weak := 0, 0
	var weakExamples []string
	for _, bullet := range bullets {
		text := extract.StripBullet(bullet.Text)
		switch {
		case a.opensWithActionVerb(text):
			strong++
		case a.opensWeakly(text):
			weak++
			if len(weakExamples) < 3 {
				weakExamples = append(weakExamples, text)
			}
		}
	}

	score := 100 * strong / len(bullets)
	weakRatio := float64(weak) / float64(len(bullets))

	var findings []types.Finding

	switch {
	case weakRatio > a.cfg.CriticalWeakRatio:
		findings = append(findings, types.Finding{
			Dimension:      types.DimActionVerbs,
			Severity:       types.SeverityCritical,
			Category:       "weak_openers",
			Message:        fmt.Sprintf("%d of %d bullets open with passive phrasing", weak, len(bullets)),
			Evidence:       strings.Join(weakExamples, "; "),
			Recommendation: "Rewrite passive bullets to open with what you did: led, built, reduced, shipped.",
		})
	case weak > 0:
		findings = append(findings, types.Finding{
			Dimension:      types.DimActionVerbs,
			Severity:       types.SeverityWarning,
			Category:       "weak_openers",
			Message:        fmt.Sprintf("%d bullets open with passive phrasing", weak),
			Evidence:       strings.Join(weakExamples, "; "),
			Recommendation: "Rewrite passive bullets to open with what you did: led, built, reduced, shipped.",
		})
	}

	if strong == len(bullets) {
		findings = append(findings, types.Finding{
			Dimension: types.DimActionVerbs,
			Severity:  types.SeverityGood,
			Category:  "strong_openers",
			Message:   "every bullet opens with a strong action verb",
		})
	} else if strong < len(bullets)-weak {
		findings = append(findings, types.Finding{
			Dimension:      types.DimActionVerbs,
			Severity:       types.SeverityWarning,
			Category:       "neutral_openers",
			Message:        fmt.Sprintf("%d of %d bullets open with a strong action verb", strong, len(bullets)),
			Recommendation: "Open each bullet with a verb that names your contribution.",
		})
	}

	findings = append(findings, a.hygieneFindings(bullets, sections)...)

	return types.SubScore{
		Dimension: types.DimActionVerbs,
		Value:     score,
		Findings:  findings,
	}
}

func (a *ActionVerbsAnalyzer) opensWithActionVerb(text string) bool {
	fields := strings.Fields(strings.ToLower(text))
	if len(fields) == 0 {
		return false
	}
	first := strings.Trim(fields[0], ".,;:")
	for _, verb := range a.vocab.ActionVerbs {
		if first == verb {
			return true
		}
	}
	return false
}

func (a *ActionVerbsAnalyzer) opensWeakly(text string) bool {
	lowered := strings.ToLower(text)
	for _, opener := range a.vocab.WeakOpeners {
		if strings.HasPrefix(lowered, opener) {
			return true
		}
	}
	return false
}

// hygieneFindings flags overlong bullets and mixed bullet markers. These
// are presentation problems rather than wording problems, so they carry
// warnings without feeding the score.
func (a *ActionVerbsAnalyzer) hygieneFindings(bullets []types.Line, sections []types.Section) []types.Finding {
	var findings []types.Finding

	long := 0
	var longExample string
	for _, bullet := range bullets {
		wordCount := len(strings.Fields(extract.StripBullet(bullet.Text)))
		if wordCount > a.cfg.LongBulletWords {
			long++
			if longExample == "" {
				longExample = bullet.Text
			}
		}
	}
	if long > 0 {
		findings = append(findings, types.Finding{
			Dimension:      types.DimActionVerbs,
			Severity:       types.SeverityWarning,
			Category:       "long_bullets",
			Message:        fmt.Sprintf("%d bullets run past %d words", long, a.cfg.LongBulletWords),
			Evidence:       longExample,
			Recommendation: "Split long bullets into one achievement each.",
		})
	}

	markers := make(map[string]bool)
	for _, bullet := range bullets {
		if marker := extract.BulletMarker(bullet.Text); marker != "" {
			markers[marker] = true
		}
	}
	if len(markers) > 1 {
		findings = append(findings, types.Finding{
			Dimension:      types.DimActionVerbs,
			Severity:       types.SeverityWarning,
			Category:       "inconsistent_bullets",
			Message:        fmt.Sprintf("%d different bullet marker styles in use", len(markers)),
			Recommendation: "Pick one bullet marker and use it throughout.",
		})
	}

	return findings
}
