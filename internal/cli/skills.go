package cli

import (
	"context"
	"fmt"

	"skillgap/internal/common"
	"skillgap/internal/types"

	"github.com/spf13/cobra"
)

var skillsCmd = &cobra.Command{
	Use:   "skills [text-file]",
	Short: "Extract and normalize skills from free text",
	Long: `Extract skill names from a free-text file, normalize them to their
canonical form and drop duplicates. Tokens are split on commas, semicolons,
pipes, newlines and bullets.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if skillsConfig.OutputFormat == "" {
			skillsConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(skillsConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runSkills,
}

var skillsConfig common.CommandConfig

func init() {
	skillsCmd.Flags().StringVarP(&skillsConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	skillsCmd.Flags().StringVar(&skillsConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	// Add completion for format flag
	_ = skillsCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runSkills(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	normalizer := buildNormalizer(cfg)

	createInput := func(contents []string) (types.SkillsInput, error) {
		return types.SkillsInput{Text: contents[0]}, nil
	}

	logDetails := func(input types.SkillsInput, cmdCfg common.CommandConfig) {
		logger.Info("Starting skill extraction",
			"text_chars", len(input.Text),
			"output_format", cmdCfg.OutputFormat)
	}

	skillsOperation := func(ctx context.Context, input types.SkillsInput) (types.SkillsOutput, error) {
		extracted := normalizer.ExtractFromText(input.Text)
		return types.SkillsOutput{
			Skills: extracted,
			Count:  len(extracted),
		}, nil
	}

	err := common.RunCommand(
		cmd.Context(),
		logger,
		skillsConfig,
		args,
		createInput,
		skillsOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to extract skills: %w", err)
	}
	logger.Info("Skill extraction completed successfully")
	return nil
}
