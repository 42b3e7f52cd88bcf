package analyze

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"resumelens/internal/config"
	"resumelens/internal/types"
)

var (
	monthNames = map[string]int{
		"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
		"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
	}

	// dateRangeRe matches employment date ranges: "Jan 2019 - Mar 2021",
	// "2019 to 2021", "Nov 2020 - present". Months are optional, a bare
	// year covers the whole year.
	monthPat    = `(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?`
	dateRangeRe = regexp.MustCompile(`(?i)\b(?:` + monthPat + `\s+)?(\d{4})\s*(?:-|\x{2013}|\x{2014}|to|until)\s*(?:(?:` + monthPat + `\s+)?(\d{4})|(present|current|now|ongoing))\b`)
)

// monthIndex is a month counted from year zero, so range arithmetic is
// plain integer subtraction
type monthIndex int

func toMonthIndex(year, month int) monthIndex {
	return monthIndex(year*12 + month - 1)
}

func (m monthIndex) String() string {
	return fmt.Sprintf("%s %d", time.Month(int(m)%12+1).String()[:3], int(m)/12)
}

// dateRange is one parsed employment span, inclusive on both ends
type dateRange struct {
	start monthIndex
	end   monthIndex
}

// GapsAnalyzer detects uncovered stretches between employment ranges. The
// clock is injected so "present" resolves the same way in tests as in
// production.
type GapsAnalyzer struct {
	cfg config.GapsConfig
	now func() time.Time
}

// NewGapsAnalyzer creates a gaps analyzer using the wall clock
func NewGapsAnalyzer(cfg config.GapsConfig) *GapsAnalyzer {
	return NewGapsAnalyzerAt(cfg, time.Now)
}

// NewGapsAnalyzerAt creates a gaps analyzer with an explicit clock
func NewGapsAnalyzerAt(cfg config.GapsConfig, now func() time.Time) *GapsAnalyzer {
	return &GapsAnalyzer{cfg: cfg, now: now}
}

func (a *GapsAnalyzer) Dimension() types.Dimension {
	return types.DimEmploymentGaps
}

func (a *GapsAnalyzer) Analyze(doc *types.ExtractedText, sections []types.Section) types.SubScore {
	ranges := a.collectRanges(doc, sections)

	if len(ranges) < 2 {
		return types.SubScore{
			Dimension: types.DimEmploymentGaps,
			Value:     100,
			Findings: []types.Finding{{
				Dimension: types.DimEmploymentGaps,
				Severity:  types.SeverityGood,
				Category:  "employment_coverage",
				Message:   "too few dated ranges to detect gaps",
			}},
		}
	}

	sort.Slice(ranges, func(i, j int) bool {
		if ranges[i].start != ranges[j].start {
			return ranges[i].start < ranges[j].start
		}
		return ranges[i].end < ranges[j].end
	})

	var findings []types.Finding
	gaps := 0
	coveredThrough := ranges[0].end
	for _, r := range ranges[1:] {
		if gapMonths := int(r.start - coveredThrough - 1); gapMonths >= a.cfg.ThresholdMonths {
			gaps++
			severity := types.SeverityWarning
			if gapMonths >= 2*a.cfg.ThresholdMonths {
				severity = types.SeverityCritical
			}
			findings = append(findings, types.Finding{
				Dimension:      types.DimEmploymentGaps,
				Severity:       severity,
				Category:       "employment_gap",
				Message:        fmt.Sprintf("%d month gap between roles", gapMonths),
				Evidence:       fmt.Sprintf("%s to %s", coveredThrough.String(), r.start.String()),
				Recommendation: "Account for longer breaks with a one line explanation or relevant activity.",
			})
		}
		if r.end > coveredThrough {
			coveredThrough = r.end
		}
	}

	if gaps == 0 {
		findings = append(findings, types.Finding{
			Dimension: types.DimEmploymentGaps,
			Severity:  types.SeverityGood,
			Category:  "employment_coverage",
			Message:   "no significant gaps between dated roles",
		})
	}

	return types.SubScore{
		Dimension: types.DimEmploymentGaps,
		Value:     clampScore(100 - 25*gaps),
		Findings:  findings,
	}
}

// collectRanges parses date ranges from the experience sections, falling
// back to the whole document when no experience section was found.
func (a *GapsAnalyzer) collectRanges(doc *types.ExtractedText, sections []types.Section) []dateRange {
	var lines []types.Line
	for _, section := range sectionsNamed(sections, types.SectionExperience) {
		lines = append(lines, section.Lines...)
	}
	if len(lines) == 0 {
		lines = doc.Lines
	}

	var ranges []dateRange
	for _, line := range lines {
		for _, match := range dateRangeRe.FindAllStringSubmatch(line.Text, -1) {
			if r, ok := a.parseRange(match); ok {
				ranges = append(ranges, r)
			}
		}
	}
	return ranges
}

// parseRange converts one regex match into a dateRange. Submatches:
// 1 start month name (optional), 2 start year, 3 end month name (optional),
// 4 end year, 5 open-ended keyword.
func (a *GapsAnalyzer) parseRange(match []string) (dateRange, bool) {
	startYear, err := strconv.Atoi(match[2])
	if err != nil || startYear < 1950 || startYear > 2100 {
		return dateRange{}, false
	}

	startMonth := 1
	if match[1] != "" {
		m, ok := parseMonth(match[1])
		if !ok {
			return dateRange{}, false
		}
		startMonth = m
	}
	start := toMonthIndex(startYear, startMonth)

	var end monthIndex
	if match[5] != "" {
		now := a.now()
		end = toMonthIndex(now.Year(), int(now.Month()))
	} else {
		endYear, err := strconv.Atoi(match[4])
		if err != nil || endYear < 1950 || endYear > 2100 {
			return dateRange{}, false
		}
		endMonth := 12
		if match[3] != "" {
			m, ok := parseMonth(match[3])
			if !ok {
				return dateRange{}, false
			}
			endMonth = m
		}
		end = toMonthIndex(endYear, endMonth)
	}

	if end < start {
		return dateRange{}, false
	}
	return dateRange{start: start, end: end}, true
}

func parseMonth(name string) (int, bool) {
	key := strings.ToLower(name)
	if len(key) > 3 {
		key = key[:3]
	}
	m, ok := monthNames[key]
	return m, ok
}
