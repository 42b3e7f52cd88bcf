package classify

import (
	"testing"

	"resumelens/internal/config"
	"resumelens/internal/types"
)

func makeDoc(texts ...string) *types.ExtractedText {
	doc := &types.ExtractedText{}
	for i, text := range texts {
		doc.Lines = append(doc.Lines, types.Line{Number: i + 1, Text: text})
		doc.Text += text + "\n"
	}
	return doc
}

func sectionNames(sections []types.Section) []types.SectionName {
	names := make([]types.SectionName, len(sections))
	for i, s := range sections {
		names[i] = s.Name
	}
	return names
}

func TestClassifyTypicalResume(t *testing.T) {
	doc := makeDoc(
		"Jane Smith",
		"jane@example.com | +1 415 555 0100",
		"PROFESSIONAL SUMMARY",
		"Backend engineer with 8 years of experience.",
		"Work Experience",
		"Acme Corp, 2019-2023",
		"- Led migration to Kubernetes",
		"Education",
		"BSc Computer Science",
		"Technical Skills:",
		"Go, Python, PostgreSQL",
	)

	classifier := New(config.DefaultVocabulary())
	sections := classifier.Classify(doc)

	want := []types.SectionName{
		types.SectionContact,
		types.SectionSummary,
		types.SectionExperience,
		types.SectionEducation,
		types.SectionSkills,
	}
	got := sectionNames(sections)
	if len(got) != len(want) {
		t.Fatalf("sections = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("section %d = %s, want %s", i, got[i], want[i])
		}
	}

	// Sections must tile the document in order without overlap
	prev := 0
	for _, s := range sections {
		if s.Start != prev {
			t.Errorf("section %s starts at %d, want %d", s.Name, s.Start, prev)
		}
		if s.End <= s.Start {
			t.Errorf("section %s has empty span [%d,%d)", s.Name, s.Start, s.End)
		}
		prev = s.End
	}
	if prev != len(doc.Lines) {
		t.Errorf("sections end at %d, want %d", prev, len(doc.Lines))
	}
}

func TestClassifyHeadingVariants(t *testing.T) {
	tests := []struct {
		heading string
		want    types.SectionName
	}{
		{"EXPERIENCE", types.SectionExperience},
		{"Employment History", types.SectionExperience},
		{"work experience", types.SectionExperience},
		{"## Skills ##", types.SectionSkills},
		{"Certification", types.SectionCertifications},
		{"Projects:", types.SectionProjects},
		{"Summary", types.SectionSummary},
	}

	classifier := New(config.DefaultVocabulary())
	for _, tt := range tests {
		t.Run(tt.heading, func(t *testing.T) {
			doc := makeDoc(tt.heading, "some content")
			sections := classifier.Classify(doc)
			if len(sections) != 1 || sections[0].Name != tt.want {
				t.Errorf("Classify(%q) = %v, want single %s section", tt.heading, sectionNames(sections), tt.want)
			}
		})
	}
}

func TestClassifyNoHeadings(t *testing.T) {
	classifier := New(config.DefaultVocabulary())

	// Contact markers up top label the preamble as contact
	doc := makeDoc("Jane Smith", "jane@example.com", "I build things.")
	sections := classifier.Classify(doc)
	if len(sections) != 1 || sections[0].Name != types.SectionContact {
		t.Errorf("sections = %v, want single contact section", sectionNames(sections))
	}

	// No contact markers anywhere leaves the preamble unlabeled
	doc = makeDoc("Some text", "More text")
	sections = classifier.Classify(doc)
	if len(sections) != 1 || sections[0].Name != types.SectionOther {
		t.Errorf("sections = %v, want single other section", sectionNames(sections))
	}
}

func TestClassifyBulletNotHeading(t *testing.T) {
	classifier := New(config.DefaultVocabulary())
	doc := makeDoc(
		"Experience",
		"- skills", // a bullet that happens to read like a heading
		"Built the data pipeline",
	)
	doc.Lines[1].Bullet = true

	sections := classifier.Classify(doc)
	if len(sections) != 1 || sections[0].Name != types.SectionExperience {
		t.Errorf("sections = %v, want single experience section", sectionNames(sections))
	}
}

func TestClassifyDeterministic(t *testing.T) {
	classifier := New(config.DefaultVocabulary())
	doc := makeDoc("Jane", "jane@example.com", "Experience", "- Built APIs", "Skills", "Go")

	first := classifier.Classify(doc)
	for i := 0; i < 10; i++ {
		again := classifier.Classify(doc)
		if len(again) != len(first) {
			t.Fatalf("run %d produced %d sections, want %d", i, len(again), len(first))
		}
		for j := range first {
			if again[j].Name != first[j].Name || again[j].Start != first[j].Start || again[j].End != first[j].End {
				t.Fatalf("run %d section %d = %+v, want %+v", i, j, again[j], first[j])
			}
		}
	}
}

func TestFindContactDetails(t *testing.T) {
	doc := makeDoc("Jane Smith", "jane@example.com", "linkedin.com/in/janesmith")
	details := FindContactDetails(doc)
	if !details.Email || !details.LinkedIn {
		t.Errorf("details = %+v, want email and linkedin found", details)
	}
	if details.Phone {
		t.Error("no phone number present, but one was reported")
	}
}
