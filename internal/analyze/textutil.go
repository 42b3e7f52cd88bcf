package analyze

import (
	"regexp"
	"strings"

	"resumelens/internal/types"
)

var (
	wordRe     = regexp.MustCompile(`[A-Za-z0-9+#.\-]+`)
	sentenceRe = regexp.MustCompile(`[.!?]+(\s+|$)`)

	percentRe  = regexp.MustCompile(`\d+(\.\d+)?\s*%`)
	currencyRe = regexp.MustCompile(`[$\x{20AC}\x{00A3}\x{20B9}]\s?\d`)
	// Plain numbers need at least two digits; "a team of 5" is not a metric.
	numberRe = regexp.MustCompile(`(^|[^\w])\d{2,}(,\d{3})*(\.\d+)?([^\w]|$)`)

	vowelGroupRe = regexp.MustCompile(`[aeiouy]+`)
	nonLetterRe  = regexp.MustCompile(`[^a-z]`)
)

// words tokenizes text into word tokens. Tokens keep the characters that
// appear inside skill names, so "c++" and "ci/cd" fragments survive.
func words(text string) []string {
	return wordRe.FindAllString(text, -1)
}

// sentences splits text into sentences on terminal punctuation, dropping
// empty fragments. Line breaks without punctuation do not end a sentence.
func sentences(text string) []string {
	parts := sentenceRe.Split(text, -1)
	out := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

// syllables estimates the syllable count of a single word. Short words are
// one syllable; otherwise vowel groups are counted after stripping a silent
// trailing e. Never returns less than 1.
func syllables(word string) int {
	if len(word) <= 3 {
		return 1
	}
	word = nonLetterRe.ReplaceAllString(strings.ToLower(word), "")
	word = strings.TrimSuffix(word, "e")
	count := len(vowelGroupRe.FindAllString(word, -1))
	if count < 1 {
		count = 1
	}
	return count
}

// fleschReadingEase computes the Flesch reading ease statistic
func fleschReadingEase(wordCount, sentenceCount, syllableCount int) float64 {
	if wordCount == 0 || sentenceCount == 0 {
		return 0
	}
	wordsPerSentence := float64(wordCount) / float64(sentenceCount)
	syllablesPerWord := float64(syllableCount) / float64(wordCount)
	return 206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord
}

// MatchSkills returns the vocabulary skills present in the document, in
// vocabulary order. Single-token skills match whole tokens; multi-token
// skills match as substrings of the lowercased text.
func MatchSkills(doc *types.ExtractedText, skills []string) []string {
	lowered := strings.ToLower(doc.Text)

	tokens := make(map[string]bool)
	for _, tok := range words(lowered) {
		tokens[tok] = true
		// Sentence punctuation sticks to tokens, "python." should still
		// match the skill "python".
		tokens[strings.Trim(tok, ".-")] = true
	}

	var matched []string
	for _, skill := range skills {
		skill = strings.ToLower(skill)
		if strings.ContainsAny(skill, " /") {
			if strings.Contains(lowered, skill) {
				matched = append(matched, skill)
			}
		} else if tokens[skill] {
			matched = append(matched, skill)
		}
	}
	return matched
}

// bulletLines collects the bullet lines of the given sections. When no
// section carries bullets, bullets from the whole document are returned so
// an unlabeled resume still gets its bullets scored.
func bulletLines(doc *types.ExtractedText, sections []types.Section, names ...types.SectionName) []types.Line {
	var bullets []types.Line
	for _, name := range names {
		for _, section := range sectionsNamed(sections, name) {
			for _, line := range section.Lines {
				if line.Bullet {
					bullets = append(bullets, line)
				}
			}
		}
	}
	if len(bullets) > 0 {
		return bullets
	}
	for _, line := range doc.Lines {
		if line.Bullet {
			bullets = append(bullets, line)
		}
	}
	return bullets
}
