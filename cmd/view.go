package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/papapumpkin/vitae/internal/config"
	"github.com/papapumpkin/vitae/internal/section"
	"github.com/papapumpkin/vitae/internal/tracelog"
	"github.com/papapumpkin/vitae/internal/tui"
	"github.com/papapumpkin/vitae/internal/ui"
)

// viewCmd opens the interactive profile page.
var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the interactive profile page",
	Long: `Open the profile page in the terminal. Tab and shift+tab walk the
sections, digits jump to one, and on narrow terminals "m" opens the section
menu. Sections are revealed the first time they scroll into view.`,
	Args: cobra.NoArgs,
	RunE: runView,
}

func init() {
	viewCmd.Flags().String("section", "", "section to open at (e.g. projects)")
	viewCmd.Flags().String("trace", "", "append tracker events as JSON lines to this file")
	viewCmd.Flags().Bool("no-smooth", false, "jump to sections instead of animating the scroll")
	viewCmd.Flags().Bool("no-mouse", false, "disable mouse clicks and wheel scrolling")

	_ = viper.BindPFlag("trace_path", viewCmd.Flags().Lookup("trace"))
	rootCmd.AddCommand(viewCmd)
}

// isStderrTTY reports whether stderr is attached to a terminal.
func isStderrTTY() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// runView loads the profile and runs the page until the user quits.
func runView(cmd *cobra.Command, _ []string) error {
	printer := ui.New()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if noSmooth, _ := cmd.Flags().GetBool("no-smooth"); noSmooth {
		cfg.SmoothScroll = false
	}
	if noMouse, _ := cmd.Flags().GetBool("no-mouse"); noMouse {
		cfg.Mouse = false
	}

	prof, _, err := loadProfile(cfg)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	order := section.Default()
	name, _ := cmd.Flags().GetString("section")
	start, err := parseSection(order, name)
	if err != nil {
		return err
	}

	if !isStderrTTY() {
		return fmt.Errorf("vitae view requires a TTY (terminal); use \"vitae print\" instead")
	}

	trace, err := openTrace(cfg.TracePath)
	if err != nil {
		return err
	}
	defer func() { _ = trace.Close() }()
	if trace != nil {
		printer.TraceStarted(cfg.TracePath, trace.Session())
	}

	m := tui.NewAppModel(prof, order, tui.Options{
		Threshold:    cfg.Threshold,
		SmoothScroll: cfg.SmoothScroll,
		ScrollFPS:    cfg.ScrollFPS,
		Trace:        trace,
		Start:        start,
	})
	return tui.Run(m, tui.Screen{AltScreen: cfg.AltScreen, Mouse: cfg.Mouse})
}

// openTrace opens the trace file, or returns a nil emitter when tracing is
// off. A nil emitter records nothing.
func openTrace(path string) (*tracelog.Emitter, error) {
	if path == "" {
		return nil, nil
	}
	e, err := tracelog.NewEmitter(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace: %w", err)
	}
	return e, nil
}
