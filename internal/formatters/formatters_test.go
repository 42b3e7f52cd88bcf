package formatters

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"resumelens/internal/types"
)

func sampleResult() *types.AnalysisResult {
	return &types.AnalysisResult{
		OverallScore: 72,
		OverallBand:  types.BandWarning,
		SubScores: []types.SubScore{
			{Dimension: types.DimStructure, Value: 80, Band: types.BandGood, Findings: []types.Finding{
				{Dimension: types.DimStructure, Severity: types.SeverityWarning, Category: "missing_summary", Message: "no summary section found"},
			}},
			{Dimension: types.DimReadability, Failed: true, Band: types.BandCritical, Findings: []types.Finding{
				{Dimension: types.DimReadability, Severity: types.SeverityCritical, Category: "analysis_failed", Message: "readability analysis unavailable for this document"},
			}},
		},
		Skills:          []string{"go", "python"},
		Recommendations: []string{"Open with a two or three sentence professional summary."},
		Stats:           types.DocumentStats{WordCount: 350, LineCount: 40, PageEstimate: 1},
		GeneratedAt:     time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestJSONFormatter(t *testing.T) {
	registry := NewFormatterRegistry()
	out, err := registry.Format(sampleResult(), "json")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["overallScore"].(float64) != 72 {
		t.Errorf("overallScore = %v, want 72", decoded["overallScore"])
	}
}

func TestTextFormatter(t *testing.T) {
	registry := NewFormatterRegistry()
	out, err := registry.Format(sampleResult(), "text")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	for _, want := range []string{
		"Overall Score: 72/100 (warning)",
		"structure",
		"no summary section found",
		"unavailable",
		"go, python",
		"1. Open with a two or three sentence professional summary.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
}

func TestMarkdownFormatter(t *testing.T) {
	registry := NewFormatterRegistry()
	out, err := registry.Format(sampleResult(), "markdown")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	for _, want := range []string{
		"# Resume Analysis",
		"| structure | 80/100 | good |",
		"| readability | - | unavailable |",
		"## Recommendations",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q:\n%s", want, out)
		}
	}
}

func TestUnknownFormat(t *testing.T) {
	registry := NewFormatterRegistry()
	if _, err := registry.Format(sampleResult(), "yaml"); err == nil {
		t.Error("expected error for unregistered format")
	}
}
