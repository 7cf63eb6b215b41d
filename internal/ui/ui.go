// Package ui prints user-facing status lines for the non-interactive
// commands. All output goes to stderr so stdout stays clean for rendered
// pages.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/papapumpkin/vitae/internal/ansi"
	"github.com/papapumpkin/vitae/internal/content"
	"github.com/papapumpkin/vitae/internal/section"
)

// Printer writes colored status output to stderr.
type Printer struct{}

// New creates a Printer.
func New() *Printer {
	return &Printer{}
}

// Banner prints the program header for a profile.
func (p *Printer) Banner(name string) {
	fmt.Fprintln(os.Stderr, ansi.Wrap("vitae", ansi.Bold, ansi.Cyan)+ansi.Wrap(" · "+name, ansi.Dim))
}

// Error prints an error line.
func (p *Printer) Error(msg string) {
	fmt.Fprintf(os.Stderr, "%s%s\n", ansi.Wrap("error: ", ansi.Red, ansi.Bold), msg)
}

// Warn prints a warning line.
func (p *Printer) Warn(msg string) {
	fmt.Fprintf(os.Stderr, "%s%s\n", ansi.Wrap("⚠ ", ansi.Yellow, ansi.Bold), msg)
}

// Info prints a dimmed informational line.
func (p *Printer) Info(msg string) {
	fmt.Fprintln(os.Stderr, ansi.Wrap(msg, ansi.Dim))
}

// ValidateResult prints the outcome of profile validation. source names the
// payload, such as a file path or "embedded".
func (p *Printer) ValidateResult(source string, errs []content.ValidationError) {
	if len(errs) == 0 {
		fmt.Fprintf(os.Stderr, "%s %s\n", ansi.Wrap(fmt.Sprintf("✓ profile %q", source), ansi.Green, ansi.Bold), "no errors")
		return
	}
	fmt.Fprintf(os.Stderr, "%s %d error(s):\n", ansi.Wrap(fmt.Sprintf("✗ profile %q", source), ansi.Red, ansi.Bold), len(errs))
	for _, e := range errs {
		fmt.Fprintf(os.Stderr, "  %s%s %s\n", ansi.Wrap("•", ansi.Red), ansi.Wrap(" ["+string(e.Category)+"]", ansi.Dim), e.Error())
	}
}

// ProfileSummary prints one line per section with the number of entries it
// renders, in page order.
func (p *Printer) ProfileSummary(prof content.Profile, order section.Order) {
	fmt.Fprintln(os.Stderr, ansi.Wrap("sections:", ansi.Bold))
	for _, id := range order {
		fmt.Fprintf(os.Stderr, "  %-12s %s\n", order.Label(id), ansi.Wrap(sectionDetail(prof, id), ansi.Dim))
	}
}

func sectionDetail(prof content.Profile, id section.ID) string {
	switch id {
	case section.Hero:
		return prof.Headline
	case section.About:
		return plural(len(prof.Bio), "paragraph") + ", " + plural(len(prof.Stats), "stat")
	case section.Skills:
		n := 0
		for _, g := range prof.Skills {
			n += len(g.Skills)
		}
		return plural(len(prof.Skills), "category") + ", " + plural(n, "skill")
	case section.Experience:
		return plural(len(prof.Experience), "role")
	case section.Projects:
		return plural(len(prof.Projects), "project")
	case section.Education:
		return plural(len(prof.Education), "school") + ", " + plural(len(prof.Certifications), "certification")
	}
	return ""
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	if strings.HasSuffix(noun, "y") {
		return fmt.Sprintf("%d %sies", n, strings.TrimSuffix(noun, "y"))
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// ExportDone reports a finished HTML export.
func (p *Printer) ExportDone(path string, sections int) {
	fmt.Fprintf(os.Stderr, "%s %s %s\n", ansi.Wrap("✓ exported", ansi.Green, ansi.Bold), path,
		ansi.Wrap(fmt.Sprintf("(%s)", plural(sections, "section")), ansi.Dim))
}

// TraceStarted reports that tracker events are being recorded.
func (p *Printer) TraceStarted(path, session string) {
	fmt.Fprintf(os.Stderr, "%s %s %s\n", ansi.Wrap("◆ trace", ansi.Cyan), path, ansi.Wrap("session "+session, ansi.Dim))
}
