package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/vitae/internal/config"
	"github.com/papapumpkin/vitae/internal/section"
	"github.com/papapumpkin/vitae/internal/tracker"
	"github.com/papapumpkin/vitae/internal/tui"
	"github.com/papapumpkin/vitae/internal/ui"
)

// defaultPrintWidth is the page width used when --width is not set.
const defaultPrintWidth = 100

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Render the whole profile page to stdout",
	Long: `Render every section, fully revealed, to stdout. Nothing is observed,
so the page is drawn the way the interactive view draws it when scroll
tracking is unavailable.`,
	Args: cobra.NoArgs,
	RunE: runPrint,
}

func init() {
	printCmd.Flags().IntP("width", "w", defaultPrintWidth, "page width in columns")
	rootCmd.AddCommand(printCmd)
}

func runPrint(cmd *cobra.Command, _ []string) error {
	printer := ui.New()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	prof, _, err := loadProfile(cfg)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	width, _ := cmd.Flags().GetInt("width")
	if width < tui.MinWidth {
		printer.Warn(fmt.Sprintf("width %d is below the minimum; using %d", width, tui.MinWidth))
		width = tui.MinWidth
	}

	// Attaching without an observer degrades the tracker, which reveals
	// every section.
	order := section.Default()
	tr := tracker.New(order)
	tr.Attach(nil, nil)
	page, _ := tui.RenderPage(prof, order, tr.Revealed, width, 0)

	if cfg.Verbose {
		printer.ProfileSummary(prof, order)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), page)
	return err
}
