package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"skillgap/internal/catalog"
	"skillgap/internal/common"
	"skillgap/internal/errors"
	"skillgap/internal/types"

	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch [resume-skills-file] [jobs-file]",
	Short: "Compare a resume against many jobs and rank them by fit",
	Long: `Compare a resume's skills against many jobs at once and rank them by
fit score. The first argument is a text file listing the resume's skills.
Jobs come either from a second argument, a JSON file with an array of
title/required/preferred objects, or from the job catalog (built-in roles,
or the file given with --catalog).`,
	Args: cobra.RangeArgs(1, 2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if batchConfig.OutputFormat == "" {
			batchConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(batchConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runBatch,
}

var batchConfig common.CommandConfig
var batchCatalogFile string

func init() {
	batchCmd.Flags().StringVarP(&batchConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	batchCmd.Flags().StringVar(&batchConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	batchCmd.Flags().StringVar(&batchCatalogFile, "catalog", "", "Job catalog JSON file (default: built-in roles)")

	// Add completion for format flag
	_ = batchCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	matcher, normalizer := buildMatcher(cfg)

	createInput := func(contents []string) (types.BatchInput, error) {
		resume := normalizer.ExtractFromText(contents[0])
		if len(resume) == 0 {
			return types.BatchInput{}, errors.NewValidationError(errors.ErrCodeInvalidSkills,
				"No skills found in resume file", nil)
		}

		var jobs []types.JobRequirement
		if len(contents) > 1 {
			if err := json.Unmarshal([]byte(contents[1]), &jobs); err != nil {
				return types.BatchInput{}, errors.NewValidationError(errors.ErrCodeInvalidFormat,
					"Jobs file is not valid JSON", err)
			}
			// Run the jobs list through catalog validation
			if _, err := catalog.New(jobs); err != nil {
				return types.BatchInput{}, err
			}
		} else {
			cat, err := loadCatalog(cfg, batchCatalogFile)
			if err != nil {
				return types.BatchInput{}, err
			}
			jobs = cat.Jobs()
		}

		if len(jobs) == 0 {
			return types.BatchInput{}, errors.NewValidationError(errors.ErrCodeInvalidRequest,
				"No jobs to compare", nil)
		}

		return types.BatchInput{ResumeSkills: resume, Jobs: jobs}, nil
	}

	logDetails := func(input types.BatchInput, cmdCfg common.CommandConfig) {
		logger.Info("Starting batch comparison",
			"resume_skills", len(input.ResumeSkills),
			"jobs", len(input.Jobs),
			"output_format", cmdCfg.OutputFormat)
	}

	batchOperation := func(ctx context.Context, input types.BatchInput) (types.BatchOutput, error) {
		results, err := matcher.CompareAll(ctx, input.ResumeSkills, input.Jobs)
		if err != nil {
			return types.BatchOutput{}, err
		}
		return types.BatchOutput{
			TotalJobs: len(results),
			Results:   results,
		}, nil
	}

	err := common.RunCommand(
		cmd.Context(),
		logger,
		batchConfig,
		args,
		createInput,
		batchOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to compare jobs: %w", err)
	}
	logger.Info("Batch comparison completed successfully")
	return nil
}
