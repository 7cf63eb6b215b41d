package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/vitae/internal/config"
	"github.com/papapumpkin/vitae/internal/htmlexport"
	"github.com/papapumpkin/vitae/internal/markup"
	"github.com/papapumpkin/vitae/internal/section"
	"github.com/papapumpkin/vitae/internal/ui"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the profile as a standalone HTML page",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringP("out", "o", "profile.html", "output file")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
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

	exp, err := htmlexport.New(markup.New())
	if err != nil {
		return err
	}
	out, _ := cmd.Flags().GetString("out")
	order := section.Default()
	if err := exp.WriteFile(out, prof, order); err != nil {
		printer.Error(err.Error())
		return err
	}
	printer.ExportDone(out, len(order))
	return nil
}
