package analyze

import (
	"testing"

	"resumelens/internal/config"
	"resumelens/internal/types"
)

func quantifyAnalyzer() *QuantificationAnalyzer {
	return NewQuantificationAnalyzer(config.QuantificationConfig{MinRatio: 0.3})
}

func TestQuantificationDetection(t *testing.T) {
	tests := []struct {
		bullet string
		want   bool
	}{
		{"Reduced latency by 40%", true},
		{"Saved $1.2M in annual infrastructure spend", true},
		{"Grew the team from 3 to 12 engineers", true},
		{"Handled 1,500 support tickets per quarter", true},
		{"Improved reliability of the checkout flow", false},
		{"Led the migration to Kubernetes", false},
		{"Mentored a team of 5 engineers", false},
	}
	for _, tt := range tests {
		if got := isQuantified(tt.bullet); got != tt.want {
			t.Errorf("isQuantified(%q) = %v, want %v", tt.bullet, got, tt.want)
		}
	}
}

func TestQuantificationScore(t *testing.T) {
	doc := makeDoc(
		"Experience",
		"- Reduced costs by 30%",
		"- Shipped the new onboarding flow",
		"- Cut page load time by 300 ms",
		"- Maintained internal tooling",
	)
	sections := []types.Section{sectionOf(doc, types.SectionExperience, 0, 5)}

	sub := quantifyAnalyzer().Analyze(doc, sections)
	if sub.Value != 50 {
		t.Errorf("Value = %d, want 50 (2 of 4 quantified)", sub.Value)
	}
	if !hasFinding(sub, "quantified_bullets", types.SeverityGood) {
		t.Errorf("ratio above threshold should read as good: %+v", sub.Findings)
	}
}

func TestQuantificationBelowThreshold(t *testing.T) {
	doc := makeDoc(
		"Experience",
		"- Shipped the new onboarding flow",
		"- Maintained internal tooling",
		"- Drove adoption of code review",
		"- Reduced costs by 30%",
		"- Partnered with the design team",
	)
	sections := []types.Section{sectionOf(doc, types.SectionExperience, 0, 6)}

	sub := quantifyAnalyzer().Analyze(doc, sections)
	if sub.Value != 20 {
		t.Errorf("Value = %d, want 20 (1 of 5 quantified)", sub.Value)
	}
	if !hasFinding(sub, "unquantified_bullets", types.SeverityWarning) {
		t.Errorf("expected unquantified_bullets warning: %+v", sub.Findings)
	}
}

func TestQuantificationIgnoresNumberedListMarkers(t *testing.T) {
	// A resume written as a numbered list earns nothing from its own markers
	doc := makeDoc(
		"Experience",
		"1. Led the migration to Kubernetes",
		"2. Partnered with the design team",
		"3. Maintained internal tooling",
	)
	for i := 1; i < len(doc.Lines); i++ {
		doc.Lines[i].Bullet = true
	}
	sections := []types.Section{sectionOf(doc, types.SectionExperience, 0, 4)}

	sub := quantifyAnalyzer().Analyze(doc, sections)
	if sub.Value != 0 {
		t.Errorf("Value = %d, want 0 (markers are not metrics)", sub.Value)
	}
	if !hasFinding(sub, "unquantified_bullets", types.SeverityWarning) {
		t.Errorf("expected unquantified_bullets warning: %+v", sub.Findings)
	}
}

func TestQuantificationMonotonic(t *testing.T) {
	// Quantifying one more bullet never lowers the score
	analyzer := quantifyAnalyzer()
	before := makeDoc("Experience", "- Improved checkout reliability", "- Cut costs by 10%")
	after := makeDoc("Experience", "- Improved checkout reliability by 25%", "- Cut costs by 10%")
	sections := func(doc *types.ExtractedText) []types.Section {
		return []types.Section{sectionOf(doc, types.SectionExperience, 0, 3)}
	}

	if analyzer.Analyze(after, sections(after)).Value < analyzer.Analyze(before, sections(before)).Value {
		t.Error("quantifying a bullet lowered the score")
	}
}
