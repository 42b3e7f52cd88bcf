package types

import "time"

// DocumentFormat identifies the container format of an uploaded resume
type DocumentFormat string

const (
	FormatPDF  DocumentFormat = "pdf"
	FormatDOC  DocumentFormat = "doc"
	FormatDOCX DocumentFormat = "docx"
)

// MIME types accepted at the upload boundary
const (
	MIMEPDF  = "application/pdf"
	MIMEDOC  = "application/msword"
	MIMEDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// FormatForMIME maps a declared MIME type to a document format
func FormatForMIME(mime string) (DocumentFormat, bool) {
	switch mime {
	case MIMEPDF:
		return FormatPDF, true
	case MIMEDOC:
		return FormatDOC, true
	case MIMEDOCX:
		return FormatDOCX, true
	}
	return "", false
}

// Document is the raw uploaded resume. It exists only for the duration of
// one analysis request and is never persisted.
type Document struct {
	Content []byte
	Format  DocumentFormat
	Name    string
}

// Line is a single extracted line with formatting hints inferred during extraction
type Line struct {
	Number  int    `json:"number"`
	Text    string `json:"text"`
	Bullet  bool   `json:"bullet,omitempty"`
	Heading bool   `json:"heading,omitempty"`
}

// ExtractedText is the plain-text form of a document. Produced once by the
// extractor and immutable afterwards.
type ExtractedText struct {
	Text  string
	Lines []Line
}

// SectionName identifies a recognized resume section
type SectionName string

const (
	SectionContact        SectionName = "contact"
	SectionSummary        SectionName = "summary"
	SectionExperience     SectionName = "experience"
	SectionEducation      SectionName = "education"
	SectionSkills         SectionName = "skills"
	SectionProjects       SectionName = "projects"
	SectionCertifications SectionName = "certifications"
	SectionOther          SectionName = "other"
)

// Section is a labeled, contiguous run of extracted lines.
// Start/End are line indexes into ExtractedText.Lines, End exclusive.
// Sections never overlap and appear in document order.
type Section struct {
	Name  SectionName `json:"name"`
	Start int         `json:"start"`
	End   int         `json:"end"`
	Lines []Line      `json:"-"`
}

// Dimension identifies one scoring dimension
type Dimension string

const (
	DimStructure      Dimension = "structure"
	DimSkills         Dimension = "skills"
	DimActionVerbs    Dimension = "action_verbs"
	DimQuantification Dimension = "quantification"
	DimReadability    Dimension = "readability"
	DimFlow           Dimension = "flow"
	DimEmploymentGaps Dimension = "employment_gaps"
)

// Dimensions lists all scoring dimensions in analyzer priority order
// (parse impact first, human-reader impact last)
var Dimensions = []Dimension{
	DimStructure,
	DimActionVerbs,
	DimQuantification,
	DimSkills,
	DimFlow,
	DimReadability,
	DimEmploymentGaps,
}

// Severity grades a finding
type Severity string

const (
	SeverityGood     Severity = "good"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Rank returns an ordering value for severities, higher is worse
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 2
	case SeverityWarning:
		return 1
	}
	return 0
}

// Band is the overall score classification
type Band string

const (
	BandGood     Band = "good"
	BandWarning  Band = "warning"
	BandCritical Band = "critical"
)

// Finding is a single observation produced by an analyzer
type Finding struct {
	Dimension Dimension `json:"dimension"`
	Severity  Severity  `json:"severity"`
	Category  string    `json:"category"`
	Message   string    `json:"message"`
	Evidence  string    `json:"evidence,omitempty"`

	// Recommendation is the improvement suggestion associated with this
	// finding, if any. The recommendation engine dedupes these by
	// dimension+category before presenting them.
	Recommendation string `json:"-"`
}

// SubScore is one analyzer's result for its dimension
type SubScore struct {
	Dimension Dimension `json:"dimension"`
	Value     int       `json:"value"`
	Band      Band      `json:"band"`
	Findings  []Finding `json:"findings"`

	// Failed marks the sub-score as a failure sentinel: the analyzer
	// crashed and Value carries no signal. The aggregator excludes failed
	// dimensions from the weighted sum instead of treating them as zero.
	Failed bool `json:"failed,omitempty"`
}

// DocumentStats carries coarse document statistics for the dashboard
type DocumentStats struct {
	WordCount    int `json:"wordCount"`
	LineCount    int `json:"lineCount"`
	PageEstimate int `json:"pageEstimate"`
}

// AnalysisResult is the terminal artifact of one analysis request
type AnalysisResult struct {
	OverallScore    int           `json:"overallScore"`
	OverallBand     Band          `json:"overallBand"`
	SubScores       []SubScore    `json:"subScores"`
	Skills          []string      `json:"skills"`
	Recommendations []string      `json:"recommendations"`
	Stats           DocumentStats `json:"stats"`
	GeneratedAt     time.Time     `json:"generatedAt"`
}

// SubScore returns the sub-score for the given dimension, if present
func (r *AnalysisResult) SubScore(dim Dimension) (SubScore, bool) {
	for _, ss := range r.SubScores {
		if ss.Dimension == dim {
			return ss, true
		}
	}
	return SubScore{}, false
}
