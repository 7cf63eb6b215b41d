package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/vitae/internal/content"
	"github.com/papapumpkin/vitae/internal/section"
)

// section renders one section without its trailing spacer.
func (r renderer) section(id section.ID, minHeroHeight int) string {
	switch id {
	case section.Hero:
		return r.hero(minHeroHeight)
	case section.About:
		return r.about()
	case section.Skills:
		return r.skills()
	case section.Experience:
		return r.experience()
	case section.Projects:
		return r.projects()
	case section.Education:
		return r.education()
	default:
		return r.heading(r.order.Label(id), colorBlue, colorPurple)
	}
}

// hero renders the name block vertically centered in at least minHeight
// lines, with the scroll-down cue on its last line.
func (r renderer) hero(minHeight int) string {
	parts := []string{r.center(r.pal.gradient(r.p.Name, colorBlue, colorPink))}
	if r.p.Headline != "" {
		parts = append(parts, "", r.center(r.pal.Label.Render(r.p.Headline)))
	}
	if r.p.Tagline != "" {
		parts = append(parts, "", r.pal.Muted.Width(r.width).Align(lipgloss.Center).Render(r.p.Tagline))
	}
	if links := r.contactLinks(); links != "" {
		parts = append(parts, "", links)
	}
	body := strings.Join(parts, "\n")

	// The spacer RenderPage appends and the cue line make up the rest.
	body = lipgloss.PlaceVertical(max(minHeight-2, lipgloss.Height(body)), lipgloss.Center, body)

	cue := "↓"
	if next := r.order.Next(section.Hero); next != section.Hero {
		cue += " " + r.order.Label(next)
	}
	return body + "\n" + r.center(r.pal.Faint.Render(cue))
}

// contactLinks renders the pass-through contact links, centered and wrapped.
func (r renderer) contactLinks() string {
	c := r.p.Contact
	var items []string
	if c.Phone != "" {
		items = append(items, r.pal.Link.Render("✆ "+c.Phone))
	}
	if c.Email != "" {
		items = append(items, r.pal.Link.Render("✉ "+c.Email))
	}
	for _, u := range []string{c.GitHub, c.LinkedIn} {
		if u != "" {
			items = append(items, r.pal.Link.Render(trimScheme(u)))
		}
	}
	if len(items) == 0 {
		return ""
	}
	return lipgloss.NewStyle().Width(r.width).Align(lipgloss.Center).Render(strings.Join(items, "   "))
}

func trimScheme(u string) string {
	u = strings.TrimPrefix(u, "https://")
	u = strings.TrimPrefix(u, "http://")
	return strings.TrimSuffix(u, "/")
}

func (r renderer) about() string {
	var bio []string
	for _, para := range r.p.Bio {
		bio = append(bio, r.prose(para, r.width))
	}
	var loc string
	if r.p.Location != "" {
		loc = r.pal.Muted.Render("⌖ " + r.p.Location)
	}
	return joinBlocks(
		r.heading("About Me", colorBlue, colorPurple),
		strings.Join(bio, "\n\n"),
		loc,
		r.statsCard(),
	)
}

// statsCard renders the label/value summary rows.
func (r renderer) statsCard() string {
	if len(r.p.Stats) == 0 {
		return ""
	}
	valueW := 0
	for _, s := range r.p.Stats {
		valueW = max(valueW, lipgloss.Width(s.Value))
	}
	width := min(r.width, 48)
	rows := make([]string, 0, len(r.p.Stats))
	for _, s := range r.p.Stats {
		pad := strings.Repeat(" ", valueW-lipgloss.Width(s.Value))
		value := r.pal.gradient(s.Value, colorBlue, colorPurple)
		label := TruncateWithEllipsis(s.Label, max(cardInner(width)-valueW-2, 1))
		rows = append(rows, pad+value+"  "+r.pal.Muted.Render(label))
	}
	return r.card(strings.Join(rows, "\n"), width)
}

// skillIcon picks a glyph and color by keyword in a skill category label.
// Labels matching no keyword get a plain bullet.
func skillIcon(category string) (string, lipgloss.Color) {
	switch {
	case strings.Contains(category, "Programming"):
		return "λ", colorBlue
	case strings.Contains(category, "Frontend"):
		return "◎", colorGreen
	case strings.Contains(category, "Backend"):
		return "▣", colorOrange
	case strings.Contains(category, "Database"):
		return "◍", colorPurple
	case strings.Contains(category, "Development"):
		return "λ", colorPink
	case strings.Contains(category, "Core"):
		return "★", colorYellow
	default:
		return "•", colorMutedLight
	}
}

func (r renderer) skills() string {
	cols, cardW := columns(r.width)
	inner := cardInner(cardW)
	cards := make([]string, 0, len(r.p.Skills))
	for _, g := range r.p.Skills {
		icon, c := skillIcon(g.Category)
		title := r.pal.tint(c).Render(icon) + " " + r.pal.Label.Render(TruncateWithEllipsis(g.Category, max(inner-2, 1)))
		cards = append(cards, r.card(joinBlocks(title, r.chips(g.Skills, inner)), cardW))
	}
	return joinBlocks(
		r.heading("Skills & Technologies", colorGreen, colorBlue),
		grid(cards, cols),
	)
}

func (r renderer) experience() string {
	inner := cardInner(r.width)
	cards := make([]string, 0, len(r.p.Experience))
	for _, j := range r.p.Experience {
		head := r.pal.Label.Width(inner).Render(j.Role)
		sub := r.pal.tint(colorOrange).Render(j.Company)
		if j.Period != "" {
			sub += r.pal.Faint.Render(" · " + j.Period)
		}
		head += "\n" + lipgloss.NewStyle().Width(inner).Render(sub)
		cards = append(cards, r.card(joinBlocks(
			head,
			r.prose(j.Description, inner),
			r.bullets(j.Achievements, inner, "▸", colorOrange),
		), r.width))
	}
	return joinBlocks(
		r.heading("Experience", colorOrange, colorRed),
		strings.Join(cards, "\n"),
	)
}

func (r renderer) projects() string {
	cols, cardW := columns(r.width)
	inner := cardInner(cardW)
	cards := make([]string, 0, len(r.p.Projects))
	for _, pr := range r.p.Projects {
		a := content.AccentFor(pr.Accent)
		bar := r.pal.gradient(strings.Repeat("━", inner), lipgloss.Color(a.From), lipgloss.Color(a.To))
		head := bar + "\n" + r.pal.Label.Width(inner).Render(pr.Title)
		var repo string
		if pr.Repository != "" {
			repo = r.pal.Link.Width(inner).Render("⌥ " + trimScheme(pr.Repository))
		}
		cards = append(cards, r.card(joinBlocks(
			head,
			r.prose(pr.Description, inner),
			r.bullets(pr.Highlights, inner, "•", lipgloss.Color(a.From)),
			r.chips(pr.Tech, inner),
			repo,
		), cardW))
	}
	return joinBlocks(
		r.heading("Featured Projects", colorPurple, colorPink),
		grid(cards, cols),
	)
}

// schoolColor cycles the left rule color of education entries.
func schoolColor(i int) lipgloss.Color {
	switch i % 3 {
	case 0:
		return colorBlue
	case 1:
		return colorGreen
	default:
		return colorYellow
	}
}

func (r renderer) education() string {
	side := r.width >= 2*gridColumnWidth+2
	cardW := r.width
	if side {
		cardW = (r.width - 2) / 2
	}
	inner := cardInner(cardW)

	var schools []string
	for i, s := range r.p.Education {
		rule := r.pal.tint(schoolColor(i)).Render("┃")
		var lines []string
		add := func(st lipgloss.Style, text string) {
			if text == "" {
				return
			}
			for _, l := range strings.Split(st.Width(max(inner-2, 1)).Render(text), "\n") {
				lines = append(lines, rule+" "+l)
			}
		}
		add(r.pal.Label, s.Title)
		add(r.pal.tint(schoolColor(i)), s.Detail)
		add(r.pal.Muted, s.Institution)
		add(r.pal.Faint, s.Period)
		schools = append(schools, strings.Join(lines, "\n"))
	}
	var cards []string
	if len(schools) > 0 {
		title := r.pal.tint(colorBlue).Render("◆") + " " + r.pal.Label.Render("Education")
		cards = append(cards, r.card(joinBlocks(title, joinBlocks(schools...)), cardW))
	}
	if len(r.p.Certifications) > 0 {
		title := r.pal.tint(colorYellow).Render("★") + " " + r.pal.Label.Render("Certifications")
		cards = append(cards, r.card(joinBlocks(title, r.bullets(r.p.Certifications, inner, "●", colorYellow)), cardW))
	}
	cols := 1
	if side {
		cols = 2
	}

	var footer string
	if r.p.Footer != "" {
		footer = r.pal.Faint.Width(r.width).Align(lipgloss.Center).Render(r.p.Footer)
	}
	return joinBlocks(
		r.heading("Education & Certifications", colorYellow, colorOrange),
		grid(cards, cols),
		r.pitch(),
		footer,
	)
}

// pitch renders the closing call-to-action block with its contact links.
func (r renderer) pitch() string {
	if r.p.Pitch.Heading == "" {
		return ""
	}
	inner := cardInner(r.width)
	centered := lipgloss.NewStyle().Width(inner).Align(lipgloss.Center)

	var links []string
	if l := r.p.Contact.PhoneLink(); l != "" {
		links = append(links, r.pal.Label.Render("✆ Call Me")+" "+r.pal.Link.Render(l))
	}
	if l := r.p.Contact.EmailLink(); l != "" {
		links = append(links, r.pal.Label.Render("✉ Email Me")+" "+r.pal.Link.Render(l))
	}
	var linkRow string
	if len(links) > 0 {
		linkRow = centered.Render(strings.Join(links, "    "))
	}

	var body string
	if r.p.Pitch.Body != "" {
		body = r.pal.Text.Width(inner).Align(lipgloss.Center).Render(r.md.Plain(r.p.Pitch.Body))
	}
	return r.card(joinBlocks(
		centered.Render(r.pal.gradient(r.p.Pitch.Heading, colorBlue, colorPurple)),
		body,
		linkRow,
	), r.width)
}
