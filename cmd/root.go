// Package cmd provides CLI commands for vitae.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/papapumpkin/vitae/internal/config"
	"github.com/papapumpkin/vitae/internal/content"
	"github.com/papapumpkin/vitae/internal/section"
)

var rootCmd = &cobra.Command{
	Use:   "vitae",
	Short: "Terminal profile page with scroll-aware navigation",
	Long: `Vitae renders a personal profile as a scrollable terminal page. The
navigation bar follows the section in view, sections light up the first
time they scroll into view, and every section is one keypress away.`,
	Args:          cobra.NoArgs,
	RunE:          runRootDefault,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .vitae.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringP("content", "c", "", "profile file (.toml, .yaml); default is the embedded profile")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("content_path", rootCmd.PersistentFlags().Lookup("content"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".vitae")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("VITAE")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// runRootDefault opens the interactive page, the same as "vitae view".
func runRootDefault(_ *cobra.Command, _ []string) error {
	return runView(viewCmd, nil)
}

// loadProfile loads the configured profile and names its source for
// messages.
func loadProfile(cfg config.Config) (content.Profile, string, error) {
	source := cfg.ContentPath
	if source == "" {
		source = "embedded"
	}
	p, err := content.Load(cfg.ContentPath)
	if err != nil {
		return content.Profile{}, source, fmt.Errorf("failed to load profile: %w", err)
	}
	return p, source, nil
}

// parseSection resolves a --section value against order.
func parseSection(order section.Order, s string) (section.ID, error) {
	if s == "" {
		return "", nil
	}
	id, ok := order.Parse(s)
	if !ok {
		names := make([]string, len(order))
		for i, id := range order {
			names[i] = string(id)
		}
		return "", fmt.Errorf("unknown section %q (want one of %s)", s, strings.Join(names, ", "))
	}
	return id, nil
}
