package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Vocabulary is an immutable snapshot of the word lists the analyzers match
// against. A snapshot is taken once per analysis run, so a reload mid-run
// never mixes old and new terms in one result.
type Vocabulary struct {
	// Skills are matched case-insensitively against resume tokens. Multi-word
	// entries are matched as substrings of the lowercased text.
	Skills []string

	// ActionVerbs are strong bullet openers, matched by prefix against the
	// first word of each bullet.
	ActionVerbs []string

	// WeakOpeners are phrases that signal a passive bullet when they start it.
	WeakOpeners []string

	// SectionSynonyms maps a canonical section name to the heading keywords
	// that identify it.
	SectionSynonyms map[string][]string
}

// DefaultVocabulary returns the built-in word lists.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		Skills: []string{
			"python", "java", "c++", "c#", "javascript", "typescript", "go",
			"react", "nodejs", "node", "express", "django", "flask",
			"sql", "mongodb", "postgres", "redis",
			"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "git",
			"html", "css", "rest", "api", "graphql", "grpc",
			"pandas", "numpy", "scikit-learn", "tensorflow", "pytorch", "spacy",
			"nlp", "machine learning", "deep learning", "xgboost",
			"excel", "tableau", "powerbi", "linux", "bash", "ci/cd",
		},
		ActionVerbs: []string{
			"led", "designed", "developed", "implemented", "managed", "built",
			"created", "optimized", "optimised", "improved", "launched",
			"deployed", "engineered", "analyzed", "analysed", "researched",
			"trained", "evaluated", "orchestrated", "automated", "integrated",
			"reduced", "increased", "scaled", "mentored", "delivered",
			"migrated", "streamlined", "architected", "accelerated",
		},
		WeakOpeners: []string{
			"responsible for", "worked on", "helped with", "involved in",
			"assisted with", "participated in", "duties included",
			"tasked with", "in charge of",
		},
		SectionSynonyms: map[string][]string{
			"contact": {
				"contact", "contact information", "personal details",
			},
			"summary": {
				"summary", "professional summary", "objective", "profile",
				"about me", "about",
			},
			"experience": {
				"experience", "work experience", "professional experience",
				"employment", "employment history", "work history", "career",
			},
			"education": {
				"education", "academic background", "academics", "qualifications",
			},
			"skills": {
				"skills", "technical skills", "core competencies", "technologies",
				"tools", "expertise",
			},
			"projects": {
				"projects", "personal projects", "selected projects", "portfolio",
			},
			"certifications": {
				"certifications", "certificates", "licenses", "courses",
				"training", "awards",
			},
		},
	}
}

// LoadVocabulary builds a snapshot from the built-in defaults with any
// configured override files applied. An override file replaces the whole
// list it targets rather than merging into it.
func LoadVocabulary(files VocabularyFilesConfig) (*Vocabulary, error) {
	vocab := DefaultVocabulary()

	if files.SkillsFile != "" {
		terms, err := loadTermList(files.SkillsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load skills vocabulary: %w", err)
		}
		vocab.Skills = terms
	}

	if files.ActionVerbsFile != "" {
		terms, err := loadTermList(files.ActionVerbsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load action verb vocabulary: %w", err)
		}
		vocab.ActionVerbs = terms
	}

	if files.WeakOpenersFile != "" {
		terms, err := loadTermList(files.WeakOpenersFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load weak opener vocabulary: %w", err)
		}
		vocab.WeakOpeners = terms
	}

	if files.SectionSynonymsFile != "" {
		synonyms, err := loadSectionSynonyms(files.SectionSynonymsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load section synonyms: %w", err)
		}
		vocab.SectionSynonyms = synonyms
	}

	return vocab, nil
}

// loadTermList reads a plain-text vocabulary file: one term per line,
// blank lines and lines starting with '#' ignored.
func loadTermList(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var terms []string
	for _, line := range strings.Split(string(content), "\n") {
		term := strings.ToLower(strings.TrimSpace(line))
		if term == "" || strings.HasPrefix(term, "#") {
			continue
		}
		terms = append(terms, term)
	}

	if len(terms) == 0 {
		return nil, fmt.Errorf("vocabulary file %s contains no terms", path)
	}
	return terms, nil
}

// loadSectionSynonyms reads a YAML file mapping canonical section names to
// heading keyword lists.
func loadSectionSynonyms(path string) (map[string][]string, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	synonyms := make(map[string][]string)
	for _, section := range v.AllKeys() {
		keywords := v.GetStringSlice(section)
		for i, keyword := range keywords {
			keywords[i] = strings.ToLower(strings.TrimSpace(keyword))
		}
		synonyms[strings.ToLower(section)] = keywords
	}

	if len(synonyms) == 0 {
		return nil, fmt.Errorf("section synonym file %s defines no sections", path)
	}
	return synonyms, nil
}
