package extract

import (
	"regexp"
	"strings"
	"unicode"

	"resumelens/internal/types"
)

var (
	// bulletRe matches the common bullet markers: dashes, dots, asterisks
	// and numbered-list prefixes.
	bulletRe = regexp.MustCompile(`^([-*\x{2022}\x{2013}\x{2014}\x{25AA}\x{25CF}\x{25E6}]|\d{1,2}[.)])\s+`)

	// runSpaceRe collapses interior whitespace runs into single spaces
	runSpaceRe = regexp.MustCompile(`[ \t\x{00A0}]+`)
)

// headingMaxWords bounds how long a line can be and still read as a heading
const headingMaxWords = 5

// normalize splits raw extracted text into trimmed, non-empty lines and
// attaches formatting hints. Line numbers are assigned after blank lines are
// dropped, so they index into the returned slice one-based.
func normalize(raw string) *types.ExtractedText {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")

	var lines []types.Line
	var sb strings.Builder

	for _, rawLine := range strings.Split(raw, "\n") {
		text := strings.TrimSpace(runSpaceRe.ReplaceAllString(rawLine, " "))
		if text == "" {
			continue
		}

		line := types.Line{
			Number: len(lines) + 1,
			Text:   text,
			Bullet: bulletRe.MatchString(text),
		}
		line.Heading = !line.Bullet && looksLikeHeading(text)
		lines = append(lines, line)

		sb.WriteString(text)
		sb.WriteByte('\n')
	}

	return &types.ExtractedText{
		Text:  sb.String(),
		Lines: lines,
	}
}

// looksLikeHeading reports whether a line reads as a section heading: short,
// not a sentence, and either shouted or ending in a colon. This is a hint
// only; the classifier still matches the text against section vocabulary.
func looksLikeHeading(text string) bool {
	words := strings.Fields(text)
	if len(words) == 0 || len(words) > headingMaxWords {
		return false
	}
	if strings.HasSuffix(text, ".") || strings.HasSuffix(text, ",") ||
		strings.HasSuffix(text, ";") {
		return false
	}
	if strings.HasSuffix(text, ":") {
		return true
	}

	hasLetter := false
	for _, r := range text {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		}
	}
	return hasLetter
}

// StripBullet removes a leading bullet marker from a line, if present
func StripBullet(text string) string {
	return strings.TrimSpace(bulletRe.ReplaceAllString(text, ""))
}

// BulletMarker returns the bullet marker prefix of a line, or "" when the
// line is not a bullet. Used to detect inconsistent markers within a section.
func BulletMarker(text string) string {
	match := bulletRe.FindStringSubmatch(text)
	if match == nil {
		return ""
	}
	marker := match[1]
	// Numbered prefixes all count as one marker style
	if marker != "" && marker[0] >= '0' && marker[0] <= '9' {
		return "numbered"
	}
	return marker
}
