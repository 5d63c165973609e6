package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"skillgap/internal/types"
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
	registry.RegisterFormatter("text", "MatchOutput", &MatchTextFormatter{})
	registry.RegisterFormatter("markdown", "MatchOutput", &MatchMarkdownFormatter{})
	registry.RegisterFormatter("text", "BatchOutput", &BatchTextFormatter{})
	registry.RegisterFormatter("markdown", "BatchOutput", &BatchMarkdownFormatter{})
	registry.RegisterFormatter("text", "SkillsOutput", &SkillsTextFormatter{})
	registry.RegisterFormatter("markdown", "SkillsOutput", &SkillsMarkdownFormatter{})

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
	case types.MatchOutput:
		return "MatchOutput"
	case types.BatchOutput:
		return "BatchOutput"
	case types.SkillsOutput:
		return "SkillsOutput"
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

// writeSkillList writes a labeled skill list, or a placeholder when empty
func writeSkillList(output *strings.Builder, label string, skills []string) {
	output.WriteString(label)
	output.WriteString(": ")
	if len(skills) == 0 {
		output.WriteString("(none)\n")
		return
	}
	output.WriteString(strings.Join(skills, ", "))
	output.WriteString("\n")
}

// MatchTextFormatter handles text formatting for single-job match results
type MatchTextFormatter struct{}

func (mtf *MatchTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.MatchOutput)
	if !ok {
		return "", fmt.Errorf("expected MatchOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== JOB FIT ANALYSIS ===\n\n")
	if result.JobTitle != "" {
		output.WriteString(fmt.Sprintf("Job: %s\n", result.JobTitle))
	}
	output.WriteString(fmt.Sprintf("Fit Score: %.1f/100\n", result.Analysis.JobFitScore))
	output.WriteString(fmt.Sprintf("Similarity: %.3f\n\n", result.Analysis.SimilarityScore))

	writeSkillList(&output, "Matching", result.Analysis.Matching)
	writeSkillList(&output, "Missing", result.Analysis.Missing)
	writeSkillList(&output, "Additional", result.Analysis.Additional)

	if len(result.Analysis.Recommendations) > 0 {
		output.WriteString("\n=== RECOMMENDATIONS ===\n")
		for i, rec := range result.Analysis.Recommendations {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, rec))
		}
	}

	return output.String(), nil
}

func (mtf *MatchTextFormatter) SupportedType() string {
	return "MatchOutput"
}

// MatchMarkdownFormatter handles markdown formatting for single-job match results
type MatchMarkdownFormatter struct{}

func (mmf *MatchMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.MatchOutput)
	if !ok {
		return "", fmt.Errorf("expected MatchOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Job Fit Analysis\n\n")
	if result.JobTitle != "" {
		output.WriteString(fmt.Sprintf("**Job:** %s\n\n", result.JobTitle))
	}
	output.WriteString(fmt.Sprintf("**Fit Score:** %.1f/100\n\n", result.Analysis.JobFitScore))
	output.WriteString(fmt.Sprintf("**Similarity:** %.3f\n\n", result.Analysis.SimilarityScore))

	output.WriteString("## Skill Breakdown\n\n")
	writeMarkdownSkillList(&output, "Matching", result.Analysis.Matching)
	writeMarkdownSkillList(&output, "Missing", result.Analysis.Missing)
	writeMarkdownSkillList(&output, "Additional", result.Analysis.Additional)

	if len(result.Analysis.Recommendations) > 0 {
		output.WriteString("## Recommendations\n\n")
		for i, rec := range result.Analysis.Recommendations {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, rec))
		}
	}

	return output.String(), nil
}

func writeMarkdownSkillList(output *strings.Builder, heading string, skills []string) {
	output.WriteString(fmt.Sprintf("### %s\n\n", heading))
	if len(skills) == 0 {
		output.WriteString("_None_\n\n")
		return
	}
	for _, skill := range skills {
		output.WriteString(fmt.Sprintf("- %s\n", skill))
	}
	output.WriteString("\n")
}

func (mmf *MatchMarkdownFormatter) SupportedType() string {
	return "MatchOutput"
}

// BatchTextFormatter handles text formatting for multi-job comparison results
type BatchTextFormatter struct{}

func (btf *BatchTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.BatchOutput)
	if !ok {
		return "", fmt.Errorf("expected BatchOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== JOB COMPARISON ===\n\n")
	output.WriteString(fmt.Sprintf("Jobs compared: %d\n\n", result.TotalJobs))

	for i, entry := range result.Results {
		output.WriteString(fmt.Sprintf("%d. %s - %.1f/100\n", i+1, entry.JobTitle, entry.JobFitScore))
		writeSkillList(&output, "   Matching", entry.Matching)
		writeSkillList(&output, "   Missing", entry.Missing)
		output.WriteString("\n")
	}

	return output.String(), nil
}

func (btf *BatchTextFormatter) SupportedType() string {
	return "BatchOutput"
}

// BatchMarkdownFormatter handles markdown formatting for multi-job comparison results
type BatchMarkdownFormatter struct{}

func (bmf *BatchMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.BatchOutput)
	if !ok {
		return "", fmt.Errorf("expected BatchOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Job Comparison\n\n")
	output.WriteString(fmt.Sprintf("**Jobs compared:** %d\n\n", result.TotalJobs))

	output.WriteString("| Rank | Job | Fit Score | Missing Skills |\n")
	output.WriteString("|------|-----|-----------|----------------|\n")
	for i, entry := range result.Results {
		missing := "none"
		if len(entry.Missing) > 0 {
			missing = strings.Join(entry.Missing, ", ")
		}
		output.WriteString(fmt.Sprintf("| %d | %s | %.1f | %s |\n", i+1, entry.JobTitle, entry.JobFitScore, missing))
	}
	output.WriteString("\n")

	if len(result.Results) > 0 {
		best := result.Results[0]
		output.WriteString(fmt.Sprintf("## Best Match: %s\n\n", best.JobTitle))
		for i, rec := range best.Recommendations {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, rec))
		}
	}

	return output.String(), nil
}

func (bmf *BatchMarkdownFormatter) SupportedType() string {
	return "BatchOutput"
}

// SkillsTextFormatter handles text formatting for skill extraction results
type SkillsTextFormatter struct{}

func (stf *SkillsTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.SkillsOutput)
	if !ok {
		return "", fmt.Errorf("expected SkillsOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString(fmt.Sprintf("Extracted %d skills:\n", result.Count))
	for _, skill := range result.Skills {
		output.WriteString(fmt.Sprintf("- %s\n", skill))
	}

	return output.String(), nil
}

func (stf *SkillsTextFormatter) SupportedType() string {
	return "SkillsOutput"
}

// SkillsMarkdownFormatter handles markdown formatting for skill extraction results
type SkillsMarkdownFormatter struct{}

func (smf *SkillsMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.SkillsOutput)
	if !ok {
		return "", fmt.Errorf("expected SkillsOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Extracted Skills\n\n")
	output.WriteString(fmt.Sprintf("**Count:** %d\n\n", result.Count))
	for _, skill := range result.Skills {
		output.WriteString(fmt.Sprintf("- %s\n", skill))
	}

	return output.String(), nil
}

func (smf *SkillsMarkdownFormatter) SupportedType() string {
	return "SkillsOutput"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
