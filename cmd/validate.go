package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/vitae/internal/config"
	"github.com/papapumpkin/vitae/internal/content"
	"github.com/papapumpkin/vitae/internal/section"
	"github.com/papapumpkin/vitae/internal/ui"
)

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Check a profile file for missing fields and malformed links",
	Long: `Check a profile for missing required fields, malformed links and unknown
project accents. With no path the configured profile is checked, which is the
embedded one unless --content or content_path is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	printer := ui.New()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if len(args) == 1 {
		cfg.ContentPath = args[0]
	}

	prof, source, err := loadProfile(cfg)
	if err != nil {
		printer.Error(err.Error())
		return err
	}
	if cfg.Verbose {
		printer.Banner(prof.Name)
	}

	errs := content.Validate(prof)
	printer.ValidateResult(source, errs)
	if len(errs) > 0 {
		return fmt.Errorf("validation failed with %d error(s)", len(errs))
	}
	if cfg.Verbose {
		printer.ProfileSummary(prof, section.Default())
	}
	return nil
}
