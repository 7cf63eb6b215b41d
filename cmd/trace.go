package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/papapumpkin/vitae/internal/config"
	"github.com/papapumpkin/vitae/internal/tracelog"
)

var traceCmd = &cobra.Command{
	Use:   "trace [file]",
	Short: "Print tracker events recorded by \"vitae view --trace\"",
	Long: `Reads and formats a JSONL trace written by "vitae view --trace".

Without a file argument, the configured trace_path is read.
With --follow (-f), watches the file for new events (like tail -f).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTrace,
}

func init() {
	traceCmd.Flags().BoolP("follow", "f", false, "follow the file for new events")
	traceCmd.Flags().String("session", "", "only show events from sessions starting with this id")
	rootCmd.AddCommand(traceCmd)
}

func runTrace(cmd *cobra.Command, args []string) error {
	follow, _ := cmd.Flags().GetBool("follow")
	session, _ := cmd.Flags().GetString("session")

	path, err := resolveTracePath(args)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("trace: open %s: %w", path, err)
	}
	defer f.Close()

	t := &tailer{w: cmd.OutOrStdout(), r: bufio.NewReader(f), session: session}
	if err := t.drain(); err != nil {
		return fmt.Errorf("trace: read %s: %w", path, err)
	}
	if !follow {
		t.flush()
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return t.follow(ctx, path)
}

// resolveTracePath returns the file named on the command line, or the
// configured trace_path.
func resolveTracePath(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.TracePath == "" {
		return "", errors.New("trace: no file given and trace_path is not configured")
	}
	return cfg.TracePath, nil
}

// tailer prints trace events from a growing file. A trailing line without
// its newline is held back until the rest of it arrives.
type tailer struct {
	w       io.Writer
	r       *bufio.Reader
	session string
	pending string
}

// drain prints every complete line available from the reader.
func (t *tailer) drain() error {
	for {
		line, err := t.r.ReadString('\n')
		t.pending += line
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		printEvent(t.w, strings.TrimSpace(t.pending), t.session)
		t.pending = ""
	}
}

// flush prints a held-back final line, for files that are not followed.
func (t *tailer) flush() {
	printEvent(t.w, strings.TrimSpace(t.pending), t.session)
	t.pending = ""
}

// follow watches path using fsnotify and prints new events until ctx is
// done.
func (t *tailer) follow(ctx context.Context, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("trace: create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("trace: watch %s: %w", path, err)
	}

	// Lines written between the first read and Add have no event of their own.
	if err := t.drain(); err != nil {
		return fmt.Errorf("trace: read %s: %w", path, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("trace: watch %s: %w", path, err)
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Write == 0 {
				continue
			}
			if err := t.drain(); err != nil {
				return fmt.Errorf("trace: read %s: %w", path, err)
			}
		}
	}
}

// printEvent decodes a JSONL line and prints a human-readable representation.
// Events from sessions not matching the session prefix are skipped.
func printEvent(w io.Writer, line, session string) {
	if line == "" {
		return
	}
	var evt tracelog.Event
	if err := json.Unmarshal([]byte(line), &evt); err != nil {
		fmt.Fprintf(w, "??? %s\n", line)
		return
	}
	if !strings.HasPrefix(evt.Session, session) {
		return
	}

	parts := []string{fmt.Sprintf("[%s]", evt.Timestamp.Format(time.TimeOnly)), evt.Kind}
	if evt.Section != "" {
		parts = append(parts, "section="+evt.Section)
	}
	if evt.Session != "" {
		parts = append(parts, "session="+shortSession(evt.Session))
	}
	if evt.Data != nil {
		if m, ok := evt.Data.(map[string]any); ok {
			parts = append(parts, formatDataMap(m))
		} else {
			data, _ := json.Marshal(evt.Data)
			parts = append(parts, string(data))
		}
	}

	fmt.Fprintln(w, strings.Join(parts, " "))
}

func shortSession(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// formatDataMap formats a data map as key=value pairs sorted by key.
func formatDataMap(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%v", k, m[k])
	}
	return b.String()
}
