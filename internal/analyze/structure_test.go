package analyze

import (
	"testing"

	"resumelens/internal/types"
)

func TestStructureAllSectionsPresent(t *testing.T) {
	doc := makeDoc(
		"jane@example.com",
		"Summary text",
		"Experience text",
		"Education text",
		"Skills text",
	)
	sections := []types.Section{
		sectionOf(doc, types.SectionContact, 0, 1),
		sectionOf(doc, types.SectionSummary, 1, 2),
		sectionOf(doc, types.SectionExperience, 2, 3),
		sectionOf(doc, types.SectionEducation, 3, 4),
		sectionOf(doc, types.SectionSkills, 4, 5),
	}

	sub := NewStructureAnalyzer().Analyze(doc, sections)
	if sub.Value != 100 {
		t.Errorf("Value = %d, want 100", sub.Value)
	}
	if !hasFinding(sub, "sections_present", types.SeverityGood) {
		t.Errorf("missing good sections_present finding: %+v", sub.Findings)
	}
}

func TestStructureMissingCriticalSections(t *testing.T) {
	doc := makeDoc("Some unstructured text with no contact details")
	sections := []types.Section{sectionOf(doc, types.SectionOther, 0, 1)}

	sub := NewStructureAnalyzer().Analyze(doc, sections)
	if sub.Value != 0 {
		t.Errorf("Value = %d, want 0", sub.Value)
	}
	if !hasFinding(sub, "missing_contact", types.SeverityCritical) {
		t.Error("missing contact should be critical")
	}
	if !hasFinding(sub, "missing_experience", types.SeverityCritical) {
		t.Error("missing experience should be critical")
	}
	if !hasFinding(sub, "missing_summary", types.SeverityWarning) {
		t.Error("missing summary should be a warning")
	}
}

func TestStructureContactByMarkers(t *testing.T) {
	// Contact details without a labeled section still count as present
	doc := makeDoc(
		"Jane Smith, jane@example.com",
		"Experience",
		"- Built things",
	)
	sections := []types.Section{
		sectionOf(doc, types.SectionOther, 0, 1),
		sectionOf(doc, types.SectionExperience, 1, 3),
	}

	sub := NewStructureAnalyzer().Analyze(doc, sections)
	if hasFinding(sub, "missing_contact", types.SeverityCritical) {
		t.Error("contact markers present, section should not be reported missing")
	}
	if sub.Value != 40 {
		t.Errorf("Value = %d, want 40 (contact + experience)", sub.Value)
	}
}

func TestStructureMonotonic(t *testing.T) {
	// Adding a section never lowers the structure score
	doc := makeDoc("jane@example.com", "Experience", "Education")

	base := []types.Section{
		sectionOf(doc, types.SectionContact, 0, 1),
		sectionOf(doc, types.SectionExperience, 1, 2),
	}
	more := append(append([]types.Section{}, base...),
		sectionOf(doc, types.SectionEducation, 2, 3))

	analyzer := NewStructureAnalyzer()
	if analyzer.Analyze(doc, more).Value < analyzer.Analyze(doc, base).Value {
		t.Error("adding a section lowered the structure score")
	}
}
