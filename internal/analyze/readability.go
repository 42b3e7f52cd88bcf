package analyze

import (
	"fmt"
	"math"

	"resumelens/internal/config"
	"resumelens/internal/types"
)

// ReadabilityAnalyzer scores prose density using the Flesch reading ease
// statistic. Resumes read in seconds, so the score rewards short sentences
// and plain words rather than literary range.
type ReadabilityAnalyzer struct {
	cfg config.ReadabilityConfig
}

// NewReadabilityAnalyzer creates a readability analyzer
func NewReadabilityAnalyzer(cfg config.ReadabilityConfig) *ReadabilityAnalyzer {
	return &ReadabilityAnalyzer{cfg: cfg}
}

func (a *ReadabilityAnalyzer) Dimension() types.Dimension {
	return types.DimReadability
}

func (a *ReadabilityAnalyzer) Analyze(doc *types.ExtractedText, sections []types.Section) types.SubScore {
	wordList := words(doc.Text)
	sentenceList := sentences(doc.Text)

	if len(wordList) == 0 {
		return types.SubScore{
			Dimension: types.DimReadability,
			Value:     0,
			Findings: []types.Finding{{
				Dimension: types.DimReadability,
				Severity:  types.SeverityCritical,
				Category:  "no_prose",
				Message:   "no readable text to assess",
			}},
		}
	}

	// Fragments without terminal punctuation still read as one unit each
	sentenceCount := len(sentenceList)
	if sentenceCount == 0 {
		sentenceCount = 1
	}

	syllableCount := 0
	for _, word := range wordList {
		syllableCount += syllables(word)
	}

	flesch := fleschReadingEase(len(wordList), sentenceCount, syllableCount)
	score := clampScore(int(math.Round((flesch + 20) / 1.2)))
	avgSentenceLen := float64(len(wordList)) / float64(sentenceCount)

	var findings []types.Finding
	if avgSentenceLen > a.cfg.MaxSentenceLength {
		findings = append(findings, types.Finding{
			Dimension:      types.DimReadability,
			Severity:       types.SeverityWarning,
			Category:       "long_sentences",
			Message:        fmt.Sprintf("sentences average %.0f words", avgSentenceLen),
			Recommendation: "Break long sentences up, one idea per sentence scans faster.",
		})
	}

	switch {
	case flesch >= 60:
		findings = append(findings, types.Finding{
			Dimension: types.DimReadability,
			Severity:  types.SeverityGood,
			Category:  "reading_ease",
			Message:   fmt.Sprintf("text reads easily (Flesch %.0f)", flesch),
		})
	case flesch >= 30:
		findings = append(findings, types.Finding{
			Dimension:      types.DimReadability,
			Severity:       types.SeverityWarning,
			Category:       "reading_ease",
			Message:        fmt.Sprintf("text is fairly dense (Flesch %.0f)", flesch),
			Recommendation: "Prefer short, concrete words over long abstract ones.",
		})
	default:
		findings = append(findings, types.Finding{
			Dimension:      types.DimReadability,
			Severity:       types.SeverityCritical,
			Category:       "reading_ease",
			Message:        fmt.Sprintf("text is very dense (Flesch %.0f)", flesch),
			Recommendation: "Simplify the wording, a resume should scan in seconds.",
		})
	}

	return types.SubScore{
		Dimension: types.DimReadability,
		Value:     score,
		Findings:  findings,
	}
}
