package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/vitae/internal/content"
	"github.com/papapumpkin/vitae/internal/markup"
	"github.com/papapumpkin/vitae/internal/section"
	"github.com/papapumpkin/vitae/internal/tracker"
)

// RenderPage renders every section of order into a single page for a
// terminal width columns wide, and returns it with the line region each
// section occupies. A section for which revealed returns false is drawn with
// the concealed palette; a nil revealed draws every section revealed. The
// palette never changes a section's geometry, so regions stay valid when the
// revealed set grows. The hero section is at least minHeroHeight lines tall.
func RenderPage(p content.Profile, order section.Order, revealed func(section.ID) bool, width, minHeroHeight int) (string, []tracker.Region) {
	md := markup.New()
	inner := contentWidth(width)
	indent := strings.Repeat(" ", max((width-inner)/2, 0))

	var (
		lines   []string
		regions []tracker.Region
	)
	for _, id := range order {
		pal := fullPalette()
		if revealed != nil && !revealed(id) {
			pal = concealedPalette()
		}
		r := renderer{p: p, order: order, pal: pal, width: inner, md: md}

		block := strings.Split(r.section(id, minHeroHeight), "\n")
		for i := range block {
			block[i] = indent + block[i]
		}
		// Trailing spacer line separates sections.
		block = append(block, "")

		regions = append(regions, tracker.Region{ID: id, Top: len(lines), Height: len(block)})
		lines = append(lines, block...)
	}
	return strings.Join(lines, "\n"), regions
}

// heroChevronLine returns the page line of the hero's scroll-down cue, the
// last line before the hero's trailing spacer.
func heroChevronLine(r tracker.Region) int {
	return r.Bottom() - 2
}

// renderer draws sections of one profile with one palette.
type renderer struct {
	p     content.Profile
	order section.Order
	pal   palette
	width int
	md    *markup.Renderer
}

func (r renderer) center(s string) string {
	return lipgloss.PlaceHorizontal(r.width, lipgloss.Center, s)
}

// heading renders a centered gradient section title.
func (r renderer) heading(title string, from, to lipgloss.Color) string {
	return r.center(r.pal.gradient(title, from, to))
}

// prose renders markdown wrapped to width.
func (r renderer) prose(md string, width int) string {
	spans := r.md.Spans(md)
	if len(spans) == 0 {
		return ""
	}
	var b strings.Builder
	for _, s := range spans {
		st := r.pal.Text
		switch {
		case s.Code:
			st = r.pal.Code
		case s.Link != "":
			st = r.pal.Link
		case s.Strong:
			st = r.pal.Strong
		case s.Emph:
			st = r.pal.Emph
		}
		b.WriteString(st.Render(s.Text))
	}
	return lipgloss.NewStyle().Width(max(width, 1)).Render(b.String())
}

// bullets renders items as a list with a hanging indent under mark, which
// must be one column wide.
func (r renderer) bullets(items []string, width int, mark string, c lipgloss.Color) string {
	var out []string
	for _, it := range items {
		body := strings.Split(r.pal.Text.Width(max(width-2, 1)).Render(it), "\n")
		for i, l := range body {
			if i == 0 {
				out = append(out, r.pal.tint(c).Render(mark)+" "+l)
				continue
			}
			out = append(out, "  "+l)
		}
	}
	return strings.Join(out, "\n")
}

// chips flows items as padded tags, wrapping to width.
func (r renderer) chips(items []string, width int) string {
	var (
		rows []string
		row  strings.Builder
		rowW int
	)
	for _, it := range items {
		c := r.pal.Chip.Render(TruncateWithEllipsis(it, max(width-2, 1)))
		w := lipgloss.Width(c)
		if rowW > 0 && rowW+1+w > width {
			rows = append(rows, row.String())
			row.Reset()
			rowW = 0
		}
		if rowW > 0 {
			row.WriteString(" ")
			rowW++
		}
		row.WriteString(c)
		rowW += w
	}
	if rowW > 0 {
		rows = append(rows, row.String())
	}
	return strings.Join(rows, "\n")
}

// card draws body inside a rounded border width columns wide overall. Body
// should be laid out for cardInner(width).
func (r renderer) card(body string, width int) string {
	return r.pal.Card.Width(max(width-2, 1)).Render(body)
}

// cardInner returns the text width available inside a card of width columns.
func cardInner(width int) int {
	return max(width-4, 1)
}

// columns returns how many grid columns fit in width and the card width.
func columns(width int) (cols, cardWidth int) {
	cols = min(max(width/gridColumnWidth, 1), 3)
	return cols, (width - 2*(cols-1)) / cols
}

// grid lays cards out left to right, cols per row, with a two-column gap.
func grid(cards []string, cols int) string {
	var rows []string
	for i := 0; i < len(cards); i += cols {
		var cells []string
		for j, c := range cards[i:min(i+cols, len(cards))] {
			if j > 0 {
				cells = append(cells, "  ")
			}
			cells = append(cells, c)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

// joinBlocks joins non-empty blocks separated by one blank line.
func joinBlocks(blocks ...string) string {
	var kept []string
	for _, b := range blocks {
		if b != "" {
			kept = append(kept, b)
		}
	}
	return strings.Join(kept, "\n\n")
}
