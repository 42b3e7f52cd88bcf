// Package classify labels extracted resume lines with the section they
// belong to. Classification is pure string matching against the section
// vocabulary, so the same input always yields the same sections.
package classify

import (
	"regexp"
	"strings"

	"resumelens/internal/config"
	"resumelens/internal/types"
)

var (
	emailRe    = regexp.MustCompile(`[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+`)
	phoneRe    = regexp.MustCompile(`\+?\d[\d\-\s()]{7,}\d`)
	linkedinRe = regexp.MustCompile(`(?i)linkedin\.com/[A-Za-z0-9_\-/]+`)

	// headingPunct strips the decoration people put around headings
	headingPunct = regexp.MustCompile(`[:\-_=|#*\x{2022}]+`)
)

// contactScanLines bounds how far into a document the positional contact
// heuristic looks
const contactScanLines = 5

// Classifier assigns section labels to extracted lines
type Classifier struct {
	// synonym -> canonical section name, lowercased
	headings map[string]types.SectionName
}

// New builds a classifier from the vocabulary's section synonyms
func New(vocab *config.Vocabulary) *Classifier {
	headings := make(map[string]types.SectionName)
	for section, synonyms := range vocab.SectionSynonyms {
		name := types.SectionName(section)
		for _, synonym := range synonyms {
			key := normalizeHeading(synonym)
			if key != "" {
				headings[key] = name
			}
		}
	}
	return &Classifier{headings: headings}
}

// Classify splits the document into labeled sections. Every line lands in
// exactly one section: a recognized heading opens a section that runs to the
// next recognized heading, lines before the first heading become a contact
// or other section, and sections appear in document order.
func (c *Classifier) Classify(doc *types.ExtractedText) []types.Section {
	lines := doc.Lines
	if len(lines) == 0 {
		return nil
	}

	type boundary struct {
		index int
		name  types.SectionName
	}
	var boundaries []boundary
	for i, line := range lines {
		if name, ok := c.matchHeading(line); ok {
			boundaries = append(boundaries, boundary{index: i, name: name})
		}
	}

	var sections []types.Section

	// Lines before the first recognized heading form the preamble. Resumes
	// almost always open with name and contact details, so the preamble is
	// labeled contact when it carries contact markers.
	preambleEnd := len(lines)
	if len(boundaries) > 0 {
		preambleEnd = boundaries[0].index
	}
	if preambleEnd > 0 {
		name := types.SectionOther
		if hasContactMarkers(lines[:preambleEnd]) {
			name = types.SectionContact
		}
		sections = append(sections, makeSection(name, 0, preambleEnd, lines))
	}

	for i, b := range boundaries {
		end := len(lines)
		if i+1 < len(boundaries) {
			end = boundaries[i+1].index
		}
		sections = append(sections, makeSection(b.name, b.index, end, lines))
	}

	return sections
}

// matchHeading reports whether a line is a section heading and which
// canonical section it opens.
func (c *Classifier) matchHeading(line types.Line) (types.SectionName, bool) {
	if line.Bullet {
		return "", false
	}
	key := normalizeHeading(line.Text)
	if key == "" {
		return "", false
	}
	if name, ok := c.headings[key]; ok {
		return name, true
	}
	// Plural tolerance in both directions: "certification" matches
	// "certifications" and vice versa.
	if name, ok := c.headings[key+"s"]; ok {
		return name, true
	}
	if strings.HasSuffix(key, "s") {
		if name, ok := c.headings[strings.TrimSuffix(key, "s")]; ok {
			return name, true
		}
	}
	return "", false
}

// normalizeHeading lowercases a candidate heading and strips the punctuation
// and spacing noise that varies between resumes.
func normalizeHeading(text string) string {
	text = strings.ToLower(text)
	text = headingPunct.ReplaceAllString(text, " ")
	return strings.Join(strings.Fields(text), " ")
}

// hasContactMarkers reports whether any of the leading lines carries an
// email address, phone number or LinkedIn URL.
func hasContactMarkers(lines []types.Line) bool {
	limit := len(lines)
	if limit > contactScanLines {
		limit = contactScanLines
	}
	for _, line := range lines[:limit] {
		if emailRe.MatchString(line.Text) || phoneRe.MatchString(line.Text) || linkedinRe.MatchString(line.Text) {
			return true
		}
	}
	return false
}

func makeSection(name types.SectionName, start, end int, lines []types.Line) types.Section {
	return types.Section{
		Name:  name,
		Start: start,
		End:   end,
		Lines: lines[start:end],
	}
}

// ContactDetails summarizes the contact markers found in a document
type ContactDetails struct {
	Email    bool
	Phone    bool
	LinkedIn bool
}

// FindContactDetails scans the whole document for contact markers. The
// structure analyzer uses this to tell a missing contact section apart from
// contact details placed under an unlabeled header.
func FindContactDetails(doc *types.ExtractedText) ContactDetails {
	return ContactDetails{
		Email:    emailRe.MatchString(doc.Text),
		Phone:    phoneRe.MatchString(doc.Text),
		LinkedIn: linkedinRe.MatchString(doc.Text),
	}
}
