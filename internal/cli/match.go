package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"skillgap/internal/common"
	"skillgap/internal/config"
	"skillgap/internal/errors"
	"skillgap/internal/types"

	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match [resume-skills-file] [job-file]",
	Short: "Match a resume's skills against one job requirement",
	Long: `Match a resume's skills against one job requirement and report the fit.
The first argument is a text file listing the resume's skills (comma, newline
or bullet separated). The job comes either from a second argument, a JSON
file with title/required/preferred fields, or from the job catalog via
--job-title.`,
	Args: cobra.RangeArgs(1, 2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if matchConfig.OutputFormat == "" {
			matchConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		if err := common.ValidateOutputFormat(matchConfig.OutputFormat, cfg.App.SupportedFormats); err != nil {
			return err
		}
		if len(args) < 2 && matchJobTitle == "" {
			return fmt.Errorf("provide a job file argument or --job-title")
		}
		return nil
	},
	RunE: runMatch,
}

var matchConfig common.CommandConfig
var matchJobTitle string

func init() {
	matchCmd.Flags().StringVarP(&matchConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	matchCmd.Flags().StringVar(&matchConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	matchCmd.Flags().StringVar(&matchJobTitle, "job-title", "", "Match against this job from the catalog instead of a job file")

	// Add completion for format flag
	_ = matchCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runMatch(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	matcher, normalizer := buildMatcher(cfg)

	createInput := func(contents []string) (types.MatchInput, error) {
		resume := normalizer.ExtractFromText(contents[0])
		if len(resume) == 0 {
			return types.MatchInput{}, errors.NewValidationError(errors.ErrCodeInvalidSkills,
				"No skills found in resume file", nil)
		}

		job, err := resolveJobInput(cfg, contents)
		if err != nil {
			return types.MatchInput{}, err
		}

		return types.MatchInput{ResumeSkills: resume, JobRequirement: job}, nil
	}

	logDetails := func(input types.MatchInput, cmdCfg common.CommandConfig) {
		logger.Info("Starting skill gap analysis",
			"resume_skills", len(input.ResumeSkills),
			"job_title", input.JobRequirement.Title,
			"output_format", cmdCfg.OutputFormat)
	}

	matchOperation := func(ctx context.Context, input types.MatchInput) (types.MatchOutput, error) {
		result := matcher.Match(input.ResumeSkills, input.JobRequirement)
		return types.MatchOutput{
			JobTitle: input.JobRequirement.Title,
			Analysis: result,
		}, nil
	}

	err := common.RunCommand(
		cmd.Context(),
		logger,
		matchConfig,
		args,
		createInput,
		matchOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to match resume: %w", err)
	}
	logger.Info("Skill gap analysis completed successfully")
	return nil
}

// resolveJobInput resolves the job requirement from the catalog (--job-title)
// or from the second file argument
func resolveJobInput(cfg *config.Config, contents []string) (types.JobRequirement, error) {
	if matchJobTitle != "" {
		cat, err := loadCatalog(cfg, "")
		if err != nil {
			return types.JobRequirement{}, err
		}
		job, ok := cat.Find(matchJobTitle)
		if !ok {
			return types.JobRequirement{}, errors.NewCatalogError(errors.ErrCodeUnknownJob,
				fmt.Sprintf("Job %q not found in catalog", matchJobTitle), nil)
		}
		return job, nil
	}

	var job types.JobRequirement
	if err := json.Unmarshal([]byte(contents[1]), &job); err != nil {
		return types.JobRequirement{}, errors.NewValidationError(errors.ErrCodeInvalidFormat,
			"Job file is not valid JSON", err)
	}
	if job.Title == "" {
		return types.JobRequirement{}, errors.NewValidationError(errors.ErrCodeInvalidRequest,
			"Job file needs a title field", nil)
	}
	if len(job.Required) == 0 {
		return types.JobRequirement{}, errors.NewValidationError(errors.ErrCodeInvalidRequest,
			"Job file needs a non-empty required field", nil)
	}
	return job, nil
}
