package analyze

import (
	"strings"
	"testing"
	"time"

	"resumelens/internal/config"
	"resumelens/internal/types"
)

func gapsAnalyzerAt(now time.Time) *GapsAnalyzer {
	return NewGapsAnalyzerAt(config.GapsConfig{ThresholdMonths: 6}, func() time.Time { return now })
}

func experienceDoc(lines ...string) (*types.ExtractedText, []types.Section) {
	all := append([]string{"Experience"}, lines...)
	doc := makeDoc(all...)
	return doc, []types.Section{sectionOf(doc, types.SectionExperience, 0, len(all))}
}

func TestGapsSingleGapDetected(t *testing.T) {
	doc, sections := experienceDoc(
		"Software Engineer, Acme, Jan 2019 - Mar 2020",
		"Senior Engineer, Globex, Nov 2020 - present",
	)

	analyzer := gapsAnalyzerAt(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))
	sub := analyzer.Analyze(doc, sections)

	var gapFindings []types.Finding
	for _, f := range sub.Findings {
		if f.Category == "employment_gap" {
			gapFindings = append(gapFindings, f)
		}
	}
	if len(gapFindings) != 1 {
		t.Fatalf("got %d gap findings, want exactly 1: %+v", len(gapFindings), sub.Findings)
	}
	if !strings.Contains(gapFindings[0].Evidence, "Mar 2020") || !strings.Contains(gapFindings[0].Evidence, "Nov 2020") {
		t.Errorf("gap evidence = %q, want the Mar 2020 to Nov 2020 span", gapFindings[0].Evidence)
	}
	if sub.Value != 75 {
		t.Errorf("Value = %d, want 75", sub.Value)
	}
}

func TestGapsContiguousRolesClean(t *testing.T) {
	doc, sections := experienceDoc(
		"Engineer, Acme, Jan 2018 - Jun 2020",
		"Senior Engineer, Globex, Jul 2020 - present",
	)

	analyzer := gapsAnalyzerAt(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))
	sub := analyzer.Analyze(doc, sections)
	if sub.Value != 100 {
		t.Errorf("Value = %d, want 100 for contiguous roles", sub.Value)
	}
	if !hasFinding(sub, "employment_coverage", "good") {
		t.Errorf("expected good coverage finding: %+v", sub.Findings)
	}
}

func TestGapsShortBreakIgnored(t *testing.T) {
	// A 3 month break stays under the 6 month threshold
	doc, sections := experienceDoc(
		"Engineer, Acme, Jan 2018 - Mar 2020",
		"Engineer, Globex, Jul 2020 - Dec 2022",
	)

	analyzer := gapsAnalyzerAt(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))
	sub := analyzer.Analyze(doc, sections)
	if sub.Value != 100 {
		t.Errorf("Value = %d, want 100 for a short break", sub.Value)
	}
}

func TestGapsOverlappingRoles(t *testing.T) {
	// Overlapping ranges never produce a gap
	doc, sections := experienceDoc(
		"Engineer, Acme, Jan 2018 - Dec 2020",
		"Consultant, Globex, Jun 2019 - Mar 2021",
	)

	analyzer := gapsAnalyzerAt(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))
	sub := analyzer.Analyze(doc, sections)
	if sub.Value != 100 {
		t.Errorf("Value = %d, want 100 for overlapping roles", sub.Value)
	}
}

func TestGapsYearOnlyRanges(t *testing.T) {
	// Year-only ranges cover whole years, 2018-2019 then 2021-2022 leaves
	// all of 2020 uncovered
	doc, sections := experienceDoc(
		"Engineer, Acme, 2018 - 2019",
		"Engineer, Globex, 2021 - 2022",
	)

	analyzer := gapsAnalyzerAt(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))
	sub := analyzer.Analyze(doc, sections)
	if sub.Value != 75 {
		t.Errorf("Value = %d, want 75 for a one year gap", sub.Value)
	}
	if !hasFinding(sub, "employment_gap", "critical") {
		t.Errorf("12 month gap should be critical at threshold 6: %+v", sub.Findings)
	}
}

func TestGapsTooFewRanges(t *testing.T) {
	doc, sections := experienceDoc("Engineer, Acme, Jan 2019 - present")
	analyzer := gapsAnalyzerAt(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))
	sub := analyzer.Analyze(doc, sections)
	if sub.Value != 100 {
		t.Errorf("Value = %d, want 100 with a single range", sub.Value)
	}
}

func TestGapsDeterministicWithFixedClock(t *testing.T) {
	doc, sections := experienceDoc(
		"Engineer, Acme, Jan 2019 - Mar 2020",
		"Engineer, Globex, Nov 2020 - present",
	)
	analyzer := gapsAnalyzerAt(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))

	first := analyzer.Analyze(doc, sections)
	for i := 0; i < 5; i++ {
		again := analyzer.Analyze(doc, sections)
		if again.Value != first.Value || len(again.Findings) != len(first.Findings) {
			t.Fatalf("run %d differs: %+v vs %+v", i, again, first)
		}
	}
}
