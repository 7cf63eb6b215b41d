// Package htmlexport renders a profile as a single static HTML document. The
// export has no scripts and no visibility tracking: every section is shown
// fully revealed, and the navigation is plain in-page anchors.
package htmlexport

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"
	"os"

	"github.com/papapumpkin/vitae/internal/content"
	"github.com/papapumpkin/vitae/internal/section"
)

// ErrEmptyOrder indicates an export was requested with no sections.
var ErrEmptyOrder = errors.New("htmlexport: no sections to render")

// Converter turns markdown prose into sanitized HTML.
type Converter interface {
	HTML(md string) (string, error)
}

// Exporter renders profiles to HTML.
type Exporter struct {
	md   Converter
	tmpl *template.Template
}

// New creates an Exporter that renders prose fields with md.
func New(md Converter) (*Exporter, error) {
	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("htmlexport: parsing template: %w", err)
	}
	return &Exporter{md: md, tmpl: tmpl}, nil
}

type navItem struct {
	ID    section.ID
	Label string
}

type jobData struct {
	content.Job
	DescriptionHTML template.HTML
}

type projectData struct {
	content.Project
	DescriptionHTML template.HTML
	Theme           string
}

type pageData struct {
	Title     string
	Nav       []navItem
	Sections  []section.ID
	HeroNext  section.ID // scroll-down cue target, empty when hero is last
	P         content.Profile
	Bio       []template.HTML
	PitchBody template.HTML
	Jobs      []jobData
	Projects  []projectData
	PhoneLink template.URL
	EmailLink template.URL
}

// Render writes the HTML document for p with sections in the given order.
func (e *Exporter) Render(w io.Writer, p content.Profile, order section.Order) error {
	if len(order) == 0 {
		return ErrEmptyOrder
	}

	data := pageData{
		Title:    p.Name,
		Sections: order,
		P:        p,
		// Both links are built from fixed scheme prefixes.
		PhoneLink: template.URL(p.Contact.PhoneLink()),
		EmailLink: template.URL(p.Contact.EmailLink()),
	}
	if p.Headline != "" {
		data.Title = p.Name + " | " + p.Headline
	}
	if next := order.Next(section.Hero); next != section.Hero {
		data.HeroNext = next
	}
	for _, id := range order {
		data.Nav = append(data.Nav, navItem{ID: id, Label: order.Label(id)})
	}

	for _, para := range p.Bio {
		h, err := e.prose(para)
		if err != nil {
			return err
		}
		data.Bio = append(data.Bio, h)
	}
	pitch, err := e.prose(p.Pitch.Body)
	if err != nil {
		return err
	}
	data.PitchBody = pitch

	for _, j := range p.Experience {
		h, err := e.prose(j.Description)
		if err != nil {
			return err
		}
		data.Jobs = append(data.Jobs, jobData{Job: j, DescriptionHTML: h})
	}
	for _, pr := range p.Projects {
		h, err := e.prose(pr.Description)
		if err != nil {
			return err
		}
		data.Projects = append(data.Projects, projectData{
			Project:         pr,
			DescriptionHTML: h,
			Theme:           content.AccentFor(pr.Accent).Name,
		})
	}

	var buf bytes.Buffer
	if err := e.tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("htmlexport: executing template: %w", err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("htmlexport: writing output: %w", err)
	}
	return nil
}

// WriteFile renders p into the file at path, replacing it if it exists.
func (e *Exporter) WriteFile(path string, p content.Profile, order section.Order) error {
	var buf bytes.Buffer
	if err := e.Render(&buf, p, order); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("htmlexport: %w", err)
	}
	return nil
}

func (e *Exporter) prose(md string) (template.HTML, error) {
	if md == "" {
		return "", nil
	}
	h, err := e.md.HTML(md)
	if err != nil {
		return "", fmt.Errorf("htmlexport: %w", err)
	}
	// Converter output is sanitized.
	return template.HTML(h), nil
}
