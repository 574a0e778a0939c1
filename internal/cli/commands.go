// Package cli provides the command-line interface for dossiergo.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vbmelo/dossiergo/config"
	"github.com/vbmelo/dossiergo/internal/llm"
	"github.com/vbmelo/dossiergo/internal/research"
	"github.com/vbmelo/dossiergo/pkg/dataflows"
	"github.com/vbmelo/dossiergo/pkg/utils"
)

const version = "dossiergo v1.0.0"

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg := config.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "dossiergo",
		Short: "dossiergo - automated company research dossiers",
		Long: `dossiergo assembles a research dossier on a publicly traded company:
an LLM-generated executive summary, recent headlines from Google News,
the stock ticker inferred by the LLM, and the current Yahoo Finance quote.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: ask for the company interactively.
			company, err := PromptForCompany()
			if err != nil {
				return err
			}
			return runResearch(cmd, cfg, company, saveAsk)
		},
	}

	rootCmd.AddCommand(newResearchCmd(cfg))
	rootCmd.AddCommand(newConfigCmd(cfg))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

type savePolicy int

const (
	saveAsk savePolicy = iota
	saveAlways
	saveNever
)

// newResearchCmd creates the research command
func newResearchCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "research [COMPANY]",
		Short: "Build a research dossier for a company",
		Long: `Run the four research stages for the given company name.
Example: dossiergo research "Banco do Brasil" --save`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			company := strings.Join(args, " ")

			policy := saveAsk
			if save, _ := cmd.Flags().GetBool("save"); save {
				policy = saveAlways
			} else if noSave, _ := cmd.Flags().GetBool("no-save"); noSave {
				policy = saveNever
			}

			return runResearch(cmd, cfg, company, policy)
		},
	}

	cmd.Flags().Bool("save", false, "Write the report without asking")
	cmd.Flags().Bool("no-save", false, "Never write the report (non-interactive runs)")
	cmd.MarkFlagsMutuallyExclusive("save", "no-save")

	return cmd
}

// runResearch wires the pipeline and executes one research run. Only setup
// faults (credentials, directories) are fatal here; stage faults surface as
// degraded dossier fields.
func runResearch(cmd *cobra.Command, cfg *config.Config, company string, policy savePolicy) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration: %w", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	generator, err := llm.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initialize %s provider: %w", cfg.LLMProvider, err)
	}

	pipeline := research.NewPipeline(generator, dataflows.NewNewsClient(cfg), dataflows.NewQuoteClient())

	result, err := pipeline.Run(ctx, company)
	if err != nil {
		return err
	}

	DisplayDossier(result)

	save := policy == saveAlways
	if policy == saveAsk {
		if save, err = ConfirmSaveReport(); err != nil {
			return err
		}
	}
	if !save {
		return nil
	}

	path, err := utils.WriteReport(cfg.ReportsDir, utils.ReportFileName(result.Query), research.RenderReport(result))
	if err != nil {
		return err
	}
	fmt.Printf("Report saved to: %s\n", path)
	return nil
}

// newConfigCmd creates the config command
func newConfigCmd(cfg *config.Config) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Provider:      %s\n", cfg.LLMProvider)
			fmt.Printf("Model:         %s\n", cfg.Model)
			fmt.Printf("Temperature:   %.1f\n", cfg.Temperature)
			fmt.Printf("Max tokens:    %d\n", cfg.MaxTokens)
			fmt.Printf("HTTP timeout:  %s\n", cfg.HTTPTimeout)
			fmt.Printf("News locale:   %s/%s (limit %d)\n", cfg.NewsLanguage, cfg.NewsCountry, cfg.NewsLimit)
			fmt.Printf("Reports dir:   %s\n", cfg.ReportsDir)
			fmt.Printf("Credential:    %s\n", maskedCredential(cfg))
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration and credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			fmt.Println("Configuration OK")
			return nil
		},
	})

	return configCmd
}

func maskedCredential(cfg *config.Config) string {
	var key string
	switch cfg.LLMProvider {
	case config.ProviderOpenAI:
		key = cfg.OpenAIAPIKey
	case config.ProviderDeepSeek:
		key = cfg.DeepSeekAPIKey
	default:
		key = cfg.GeminiAPIKey
	}
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

// newVersionCmd creates the version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}
}
