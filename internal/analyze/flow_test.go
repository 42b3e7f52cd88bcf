package analyze

import (
	"testing"

	"resumelens/internal/types"
)

func flowSections(doc *types.ExtractedText, names ...types.SectionName) []types.Section {
	sections := make([]types.Section, len(names))
	for i, name := range names {
		sections[i] = sectionOf(doc, name, i, i+1)
	}
	return sections
}

func TestFlowCanonicalOrder(t *testing.T) {
	doc := makeDoc("a", "b", "c", "d", "e")
	sections := flowSections(doc,
		types.SectionContact,
		types.SectionSummary,
		types.SectionExperience,
		types.SectionEducation,
		types.SectionSkills,
	)

	sub := NewFlowAnalyzer().Analyze(doc, sections)
	if sub.Value != 100 {
		t.Errorf("Value = %d, want 100 for canonical order", sub.Value)
	}
}

func TestFlowOneSwap(t *testing.T) {
	// Education before experience leaves 3 of 4 sections in order
	doc := makeDoc("a", "b", "c", "d")
	sections := flowSections(doc,
		types.SectionContact,
		types.SectionEducation,
		types.SectionExperience,
		types.SectionSkills,
	)

	sub := NewFlowAnalyzer().Analyze(doc, sections)
	if sub.Value != 75 {
		t.Errorf("Value = %d, want 75", sub.Value)
	}
	if !hasFinding(sub, "section_order", "warning") {
		t.Errorf("expected section_order warning: %+v", sub.Findings)
	}
}

func TestFlowReversedOrder(t *testing.T) {
	doc := makeDoc("a", "b", "c", "d", "e")
	sections := flowSections(doc,
		types.SectionSkills,
		types.SectionEducation,
		types.SectionExperience,
		types.SectionSummary,
		types.SectionContact,
	)

	sub := NewFlowAnalyzer().Analyze(doc, sections)
	if sub.Value != 20 {
		t.Errorf("Value = %d, want 20 for fully reversed order", sub.Value)
	}
}

func TestFlowFewSections(t *testing.T) {
	doc := makeDoc("a")
	sub := NewFlowAnalyzer().Analyze(doc, flowSections(doc, types.SectionExperience))
	if sub.Value != 100 {
		t.Errorf("Value = %d, want 100 when ordering cannot be judged", sub.Value)
	}
}

func TestFlowIgnoresNonCanonicalSections(t *testing.T) {
	// Projects and other sections do not participate in ordering
	doc := makeDoc("a", "b", "c", "d")
	sections := flowSections(doc,
		types.SectionContact,
		types.SectionProjects,
		types.SectionExperience,
		types.SectionOther,
	)

	sub := NewFlowAnalyzer().Analyze(doc, sections)
	if sub.Value != 100 {
		t.Errorf("Value = %d, want 100 ignoring non-canonical sections", sub.Value)
	}
}
