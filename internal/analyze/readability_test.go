package analyze

import (
	"strings"
	"testing"

	"resumelens/internal/config"
)

func readabilityAnalyzer() *ReadabilityAnalyzer {
	return NewReadabilityAnalyzer(config.ReadabilityConfig{MaxSentenceLength: 25})
}

func TestReadabilitySimpleTextScoresHigh(t *testing.T) {
	doc := makeDoc(
		"I write code. I test it well. I ship it fast.",
		"The team likes my work. We move quick.",
	)
	sub := readabilityAnalyzer().Analyze(doc, nil)
	if sub.Value < 80 {
		t.Errorf("Value = %d, want at least 80 for plain short sentences", sub.Value)
	}
	if !hasFinding(sub, "reading_ease", "good") {
		t.Errorf("expected good reading_ease finding: %+v", sub.Findings)
	}
}

func TestReadabilityDenseTextScoresLow(t *testing.T) {
	dense := strings.Repeat("Spearheaded organizational transformation initiatives encompassing multidimensional stakeholder alignment methodologies ", 5) + "."
	doc := makeDoc(dense)

	sub := readabilityAnalyzer().Analyze(doc, nil)
	if sub.Value > 30 {
		t.Errorf("Value = %d, want low score for dense jargon", sub.Value)
	}
	if !hasFinding(sub, "long_sentences", "warning") {
		t.Errorf("expected long_sentences warning: %+v", sub.Findings)
	}
}

func TestReadabilityEmptyText(t *testing.T) {
	doc := makeDoc()
	sub := readabilityAnalyzer().Analyze(doc, nil)
	if sub.Value != 0 {
		t.Errorf("Value = %d, want 0 for empty text", sub.Value)
	}
	if !hasFinding(sub, "no_prose", "critical") {
		t.Errorf("expected critical no_prose finding: %+v", sub.Findings)
	}
}

func TestReadabilityDeterministic(t *testing.T) {
	doc := makeDoc("Led the team. Built the product. Shipped on time.")
	analyzer := readabilityAnalyzer()

	first := analyzer.Analyze(doc, nil)
	for i := 0; i < 5; i++ {
		if again := analyzer.Analyze(doc, nil); again.Value != first.Value {
			t.Fatalf("run %d value = %d, want %d", i, again.Value, first.Value)
		}
	}
}
