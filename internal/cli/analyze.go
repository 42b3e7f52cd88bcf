package cli

import (
	"fmt"

	"resumelens/internal/common"
	"resumelens/internal/config"
	"resumelens/internal/engine"
	"resumelens/internal/types"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [resume-file]",
	Short: "Score a resume the way an applicant tracking system would",
	Long: `Analyze a resume document (PDF, DOC or DOCX) and score it across the
dimensions an applicant tracking system cares about.

The analysis includes:
- Section structure and contact details
- Action verb strength and bullet hygiene
- Quantified achievements
- Recognized skills coverage
- Section ordering and readability
- Employment gap detection`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if analyzeConfig.OutputFormat == "" {
			analyzeConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(analyzeConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runAnalyze,
}

var analyzeConfig common.CommandConfig

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	// Add completion for format flag
	_ = analyzeCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	// Load word lists once; a one-shot command has no use for file watching
	vocab, err := config.LoadVocabulary(cfg.Engine.Vocabulary)
	if err != nil {
		return fmt.Errorf("failed to load vocabulary: %w", err)
	}

	eng := engine.New(cfg.Engine, config.NewStaticVocabulary(vocab), logger)

	logDetails := func(doc types.Document, cmdCfg common.CommandConfig) {
		logger.Info("Starting resume analysis",
			"document", doc.Name,
			"format", string(doc.Format),
			"size_bytes", len(doc.Content),
			"output_format", cmdCfg.OutputFormat)
	}

	err = common.RunAnalysisCommand(
		cmd.Context(),
		logger,
		analyzeConfig,
		args[0],
		eng.Analyze,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to analyze resume: %w", err)
	}
	logger.Info("Resume analysis completed successfully")
	return nil
}
