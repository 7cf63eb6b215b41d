package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Semantic color palette.
var (
	colorBlue        = lipgloss.Color("#60A5FA") // Blue: primary accent
	colorPurple      = lipgloss.Color("#C084FC") // Purple: secondary accent
	colorPink        = lipgloss.Color("#F472B6") // Pink: hero gradient end
	colorGreen       = lipgloss.Color("#4ADE80") // Green: skills
	colorOrange      = lipgloss.Color("#FB923C") // Orange: experience
	colorRed         = lipgloss.Color("#F87171") // Red: experience gradient end
	colorYellow      = lipgloss.Color("#FACC15") // Yellow: education
	colorText        = lipgloss.Color("#CBD5E1") // Light slate: body text
	colorMutedLight  = lipgloss.Color("#94A3B8") // Slate: secondary text
	colorMuted       = lipgloss.Color("#64748B") // Dark slate: de-emphasized
	colorConcealed   = lipgloss.Color("#334155") // Near-background: unrevealed text
	colorBrightWhite = lipgloss.Color("#FFFFFF") // Pure white: emphatic text
	colorSurface     = lipgloss.Color("#1E293B") // Card and chip surface
	colorSurfaceDim  = lipgloss.Color("#0F172A") // Nav and footer background
)

// palette is the set of styles one section is drawn with. The full and
// concealed palettes differ only in color and intensity, never in borders,
// padding or width, so a section occupies the same lines in either.
type palette struct {
	concealed bool

	Text    lipgloss.Style
	Muted   lipgloss.Style
	Faint   lipgloss.Style
	Strong  lipgloss.Style
	Emph    lipgloss.Style
	Code    lipgloss.Style
	Link    lipgloss.Style
	Label   lipgloss.Style
	Chip    lipgloss.Style
	Card    lipgloss.Style
	Bullet  lipgloss.Style
	Heading lipgloss.Style
}

func fullPalette() palette {
	return palette{
		Text:    lipgloss.NewStyle().Foreground(colorText),
		Muted:   lipgloss.NewStyle().Foreground(colorMutedLight),
		Faint:   lipgloss.NewStyle().Foreground(colorMuted),
		Strong:  lipgloss.NewStyle().Foreground(colorBrightWhite).Bold(true),
		Emph:    lipgloss.NewStyle().Foreground(colorText).Italic(true),
		Code:    lipgloss.NewStyle().Foreground(colorPurple),
		Link:    lipgloss.NewStyle().Foreground(colorBlue).Underline(true),
		Label:   lipgloss.NewStyle().Foreground(colorBrightWhite).Bold(true),
		Chip:    lipgloss.NewStyle().Foreground(colorText).Background(colorSurface).Padding(0, 1),
		Card:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorMuted).Padding(0, 1),
		Bullet:  lipgloss.NewStyle().Foreground(colorBlue),
		Heading: lipgloss.NewStyle().Bold(true),
	}
}

func concealedPalette() palette {
	dim := lipgloss.NewStyle().Foreground(colorConcealed).Faint(true)
	return palette{
		concealed: true,
		Text:      dim,
		Muted:     dim,
		Faint:     dim,
		Strong:    dim.Bold(true),
		Emph:      dim,
		Code:      dim,
		Link:      dim,
		Label:     dim.Bold(true),
		Chip:      dim.Padding(0, 1),
		Card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorConcealed).Padding(0, 1),
		Bullet:    dim,
		Heading:   dim.Bold(true),
	}
}

// gradient renders s with its foreground blended from one color to another
// across its runes. The concealed palette renders it flat.
func (p palette) gradient(s string, from, to lipgloss.Color) string {
	if p.concealed {
		return p.Heading.Render(s)
	}
	runes := []rune(s)
	if len(runes) < 2 {
		return p.Heading.Foreground(from).Render(s)
	}
	var b strings.Builder
	for i, r := range runes {
		if r == ' ' {
			b.WriteRune(r)
			continue
		}
		c := blend(from, to, float64(i)/float64(len(runes)-1))
		b.WriteString(p.Heading.Foreground(c).Render(string(r)))
	}
	return b.String()
}

// tint returns a foreground style in color c, or the concealed text style.
func (p palette) tint(c lipgloss.Color) lipgloss.Style {
	if p.concealed {
		return p.Text
	}
	return lipgloss.NewStyle().Foreground(c)
}

// blend linearly interpolates two hex colors. Colors that are not #RRGGBB
// return from unchanged.
func blend(from, to lipgloss.Color, t float64) lipgloss.Color {
	fr, fg, fb, ok1 := parseHex(string(from))
	tr, tg, tb, ok2 := parseHex(string(to))
	if !ok1 || !ok2 {
		return from
	}
	mix := func(a, b int) int { return a + int(float64(b-a)*t+0.5) }
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", mix(fr, tr), mix(fg, tg), mix(fb, tb)))
}

func parseHex(s string) (r, g, b int, ok bool) {
	if len(s) != 7 || s[0] != '#' {
		return 0, 0, 0, false
	}
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return 0, 0, 0, false
	}
	return r, g, b, true
}

// Navigation bar styles.
var (
	styleNav = lipgloss.NewStyle().
			Background(colorSurfaceDim).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(colorMuted)

	styleNavActive = lipgloss.NewStyle().
			Foreground(colorBlue).
			Underline(true).
			Bold(true)

	styleNavItem = lipgloss.NewStyle().
			Foreground(colorMutedLight)

	styleNavToggle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	styleMenu = lipgloss.NewStyle().
			Foreground(colorText)

	styleMenuCursor = lipgloss.NewStyle().
			Foreground(colorBrightWhite).
			Bold(true)
)

// Footer styles.
var (
	styleFooter = lipgloss.NewStyle().
			Foreground(colorMuted).
			Background(colorSurfaceDim).
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(colorMuted)

	styleFooterKey = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	styleFooterSep = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleFooterDesc = lipgloss.NewStyle().
			Foreground(colorMutedLight)

	styleFooterStatus = lipgloss.NewStyle().
				Foreground(colorMuted)
)

// styleTooSmall styles the message shown when the terminal is below the
// minimum size.
var styleTooSmall = lipgloss.NewStyle().
	Foreground(colorYellow).
	Bold(true)
