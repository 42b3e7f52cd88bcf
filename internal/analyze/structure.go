package analyze

import (
	"fmt"
	"strings"

	"resumelens/internal/classify"
	"resumelens/internal/types"
)

// expectedSections are the sections a complete resume carries, each worth an
// equal share of the structure score.
var expectedSections = []types.SectionName{
	types.SectionContact,
	types.SectionSummary,
	types.SectionExperience,
	types.SectionEducation,
	types.SectionSkills,
}

// StructureAnalyzer scores section completeness. Contact and experience are
// the sections recruiters and parsers require, so their absence is critical;
// the rest degrade the score with warnings.
type StructureAnalyzer struct{}

// NewStructureAnalyzer creates a structure analyzer
func NewStructureAnalyzer() *StructureAnalyzer {
	return &StructureAnalyzer{}
}

func (a *StructureAnalyzer) Dimension() types.Dimension {
	return types.DimStructure
}

func (a *StructureAnalyzer) Analyze(doc *types.ExtractedText, sections []types.Section) types.SubScore {
	contact := classify.FindContactDetails(doc)
	contactPresent := hasSection(sections, types.SectionContact) ||
		contact.Email || contact.Phone || contact.LinkedIn

	var findings []types.Finding
	present := 0
	var foundNames []string

	for _, name := range expectedSections {
		found := hasSection(sections, name)
		if name == types.SectionContact {
			found = contactPresent
		}
		if found {
			present++
			foundNames = append(foundNames, string(name))
			continue
		}
		findings = append(findings, a.missingFinding(name))
	}

	if len(foundNames) > 0 {
		findings = append(findings, types.Finding{
			Dimension: types.DimStructure,
			Severity:  types.SeverityGood,
			Category:  "sections_present",
			Message:   fmt.Sprintf("found %d of %d expected sections", present, len(expectedSections)),
			Evidence:  strings.Join(foundNames, ", "),
		})
	}

	if contactPresent && !hasSection(sections, types.SectionContact) && !contact.Email {
		findings = append(findings, types.Finding{
			Dimension:      types.DimStructure,
			Severity:       types.SeverityWarning,
			Category:       "contact_incomplete",
			Message:        "contact details found but no email address",
			Recommendation: "Include an email address near the top of your resume.",
		})
	}

	return types.SubScore{
		Dimension: types.DimStructure,
		Value:     present * (100 / len(expectedSections)),
		Findings:  findings,
	}
}

func (a *StructureAnalyzer) missingFinding(name types.SectionName) types.Finding {
	severity := types.SeverityWarning
	if name == types.SectionContact || name == types.SectionExperience {
		severity = types.SeverityCritical
	}

	recommendations := map[types.SectionName]string{
		types.SectionContact:    "Add your name, email and phone number at the top of the resume.",
		types.SectionSummary:    "Open with a two or three sentence professional summary.",
		types.SectionExperience: "Add a work experience section with your roles in reverse chronological order.",
		types.SectionEducation:  "List your degrees or relevant training under an education heading.",
		types.SectionSkills:     "Add a skills section listing your core technologies.",
	}

	return types.Finding{
		Dimension:      types.DimStructure,
		Severity:       severity,
		Category:       "missing_" + string(name),
		Message:        fmt.Sprintf("no %s section found", name),
		Recommendation: recommendations[name],
	}
}
