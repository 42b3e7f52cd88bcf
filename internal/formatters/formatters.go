package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"resumelens/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "AnalysisResult", &AnalysisTextFormatter{})
	registry.RegisterFormatter("markdown", "AnalysisResult", &AnalysisMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case *types.AnalysisResult:
		return "AnalysisResult"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// AnalysisTextFormatter handles text formatting for analysis results
type AnalysisTextFormatter struct{}

func (atf *AnalysisTextFormatter) Format(data any) (string, error) {
	result, ok := data.(*types.AnalysisResult)
	if !ok {
		return "", fmt.Errorf("expected *AnalysisResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== RESUME ANALYSIS ===\n\n")
	output.WriteString(fmt.Sprintf("Overall Score: %d/100 (%s)\n\n", result.OverallScore, result.OverallBand))

	output.WriteString("=== DIMENSIONS ===\n\n")
	for _, sub := range result.SubScores {
		if sub.Failed {
			output.WriteString(fmt.Sprintf("%-16s unavailable\n", prettyDimension(sub.Dimension)))
			continue
		}
		output.WriteString(fmt.Sprintf("%-16s %3d/100 (%s)\n", prettyDimension(sub.Dimension), sub.Value, sub.Band))
		for _, finding := range sub.Findings {
			if finding.Severity == types.SeverityGood {
				continue
			}
			output.WriteString(fmt.Sprintf("  [%s] %s\n", finding.Severity, finding.Message))
			if finding.Evidence != "" {
				output.WriteString(fmt.Sprintf("    evidence: %s\n", finding.Evidence))
			}
		}
	}
	output.WriteString("\n")

	if len(result.Skills) > 0 {
		output.WriteString("=== RECOGNIZED SKILLS ===\n")
		output.WriteString(strings.Join(result.Skills, ", "))
		output.WriteString("\n\n")
	}

	if len(result.Recommendations) > 0 {
		output.WriteString("=== RECOMMENDATIONS ===\n")
		for i, rec := range result.Recommendations {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, rec))
		}
		output.WriteString("\n")
	}

	output.WriteString(fmt.Sprintf("Words: %d  Lines: %d  Pages (est.): %d\n",
		result.Stats.WordCount, result.Stats.LineCount, result.Stats.PageEstimate))

	return output.String(), nil
}

func (atf *AnalysisTextFormatter) SupportedType() string {
	return "AnalysisResult"
}

// AnalysisMarkdownFormatter handles markdown formatting for analysis results
type AnalysisMarkdownFormatter struct{}

func (amf *AnalysisMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(*types.AnalysisResult)
	if !ok {
		return "", fmt.Errorf("expected *AnalysisResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Resume Analysis\n\n")
	output.WriteString(fmt.Sprintf("**Overall Score:** %d/100 (%s)\n\n", result.OverallScore, result.OverallBand))

	output.WriteString("## Dimensions\n\n")
	output.WriteString("| Dimension | Score | Band |\n")
	output.WriteString("|-----------|-------|------|\n")
	for _, sub := range result.SubScores {
		if sub.Failed {
			output.WriteString(fmt.Sprintf("| %s | - | unavailable |\n", prettyDimension(sub.Dimension)))
			continue
		}
		output.WriteString(fmt.Sprintf("| %s | %d/100 | %s |\n", prettyDimension(sub.Dimension), sub.Value, sub.Band))
	}
	output.WriteString("\n")

	output.WriteString("## Findings\n\n")
	for _, sub := range result.SubScores {
		for _, finding := range sub.Findings {
			if finding.Severity == types.SeverityGood {
				continue
			}
			output.WriteString(fmt.Sprintf("- **%s** (%s): %s\n", prettyDimension(finding.Dimension), finding.Severity, finding.Message))
			if finding.Evidence != "" {
				output.WriteString(fmt.Sprintf("  - evidence: %s\n", finding.Evidence))
			}
		}
	}
	output.WriteString("\n")

	if len(result.Skills) > 0 {
		output.WriteString("## Recognized Skills\n\n")
		output.WriteString(strings.Join(result.Skills, ", "))
		output.WriteString("\n\n")
	}

	if len(result.Recommendations) > 0 {
		output.WriteString("## Recommendations\n\n")
		for i, rec := range result.Recommendations {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, rec))
		}
		output.WriteString("\n")
	}

	output.WriteString(fmt.Sprintf("*%d words, %d lines, ~%d pages*\n",
		result.Stats.WordCount, result.Stats.LineCount, result.Stats.PageEstimate))

	return output.String(), nil
}

func (amf *AnalysisMarkdownFormatter) SupportedType() string {
	return "AnalysisResult"
}

// GlobalRegistry is the default formatter registry instance
var GlobalRegistry = NewFormatterRegistry()

// prettyDimension renders a dimension name for human-facing output
func prettyDimension(dim types.Dimension) string {
	return strings.ReplaceAll(string(dim), "_", " ")
}
