package analyze

import (
	"testing"

	"resumelens/internal/config"
	"resumelens/internal/types"
)

func skillsAnalyzer() *SkillsAnalyzer {
	return NewSkillsAnalyzer(config.DefaultVocabulary(), config.SkillsConfig{MinCount: 5})
}

func TestSkillsScoreSaturates(t *testing.T) {
	doc := makeDoc("python java javascript react nodejs django flask sql mongodb postgres aws azure gcp docker kubernetes git")
	sub := skillsAnalyzer().Analyze(doc, nil)
	if sub.Value != 100 {
		t.Errorf("Value = %d, want saturation at 100", sub.Value)
	}
}

func TestSkillsScorePerSkill(t *testing.T) {
	doc := makeDoc("I know python and docker")
	sub := skillsAnalyzer().Analyze(doc, nil)
	if sub.Value != 16 {
		t.Errorf("Value = %d, want 16 (2 skills x 8)", sub.Value)
	}
	if !hasFinding(sub, "few_skills_matched", types.SeverityWarning) {
		t.Errorf("expected few_skills_matched warning: %+v", sub.Findings)
	}
}

func TestSkillsNoneMatchedDoubleFinding(t *testing.T) {
	// No skills anywhere and no skills section produce both findings
	doc := makeDoc("I enjoy gardening and long walks")
	sub := skillsAnalyzer().Analyze(doc, nil)

	if sub.Value != 0 {
		t.Errorf("Value = %d, want 0", sub.Value)
	}
	if !hasFinding(sub, "no_skills_matched", types.SeverityCritical) {
		t.Errorf("expected critical no_skills_matched finding: %+v", sub.Findings)
	}
	if !hasFinding(sub, "skills_not_grouped", types.SeverityWarning) {
		t.Errorf("expected skills_not_grouped warning: %+v", sub.Findings)
	}
}

func TestSkillsMonotonic(t *testing.T) {
	// Each additional distinct skill keeps the score non-decreasing
	analyzer := skillsAnalyzer()
	skills := []string{"python", "java", "react", "docker", "aws", "git", "sql", "linux"}

	prev := -1
	text := ""
	for i, skill := range skills {
		text += skill + " "
		sub := analyzer.Analyze(makeDoc(text), nil)
		if sub.Value < prev {
			t.Fatalf("score decreased to %d after adding skill %d (%s)", sub.Value, i+1, skill)
		}
		prev = sub.Value
	}
	if prev != len(skills)*8 {
		t.Errorf("final score = %d, want %d", prev, len(skills)*8)
	}
}
