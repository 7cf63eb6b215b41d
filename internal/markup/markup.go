// Package markup turns the markdown prose fields of a profile into the two
// forms the renderers need: styled inline spans for the terminal, and
// sanitized HTML for the static export.
package markup

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Span is a run of inline text with uniform emphasis.
type Span struct {
	Text   string
	Strong bool
	Emph   bool
	Code   bool
	Link   string // destination, when the run is link text
}

// Renderer converts markdown prose. A Renderer is safe to reuse but not for
// concurrent use.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// New creates a Renderer with GitHub-flavored inline extensions.
func New() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.Linkify,
				extension.Strikethrough,
			),
		),
		policy: bluemonday.UGCPolicy(),
	}
}

// Spans parses md and flattens its inline content into spans. Paragraphs are
// separated by a blank line; soft line breaks become spaces. Adjacent runs
// with identical styling are merged.
func (r *Renderer) Spans(md string) []Span {
	src := []byte(md)
	doc := r.md.Parser().Parse(text.NewReader(src))

	var (
		spans        []Span
		strong, emph int
		code         int
		link         []string
		paragraphs   int
	)
	emit := func(s string) {
		if s == "" {
			return
		}
		sp := Span{Text: s, Strong: strong > 0, Emph: emph > 0, Code: code > 0}
		if len(link) > 0 {
			sp.Link = link[len(link)-1]
		}
		appendSpan(&spans, sp)
	}

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.Paragraph, *ast.Heading, *ast.TextBlock:
			if entering {
				if paragraphs > 0 {
					appendSpan(&spans, Span{Text: "\n\n"})
				}
				paragraphs++
			}
		case *ast.Emphasis:
			delta := 1
			if !entering {
				delta = -1
			}
			if node.Level >= 2 {
				strong += delta
			} else {
				emph += delta
			}
		case *ast.CodeSpan:
			if entering {
				code++
			} else {
				code--
			}
		case *ast.Link:
			if entering {
				link = append(link, string(node.Destination))
			} else {
				link = link[:len(link)-1]
			}
		case *ast.AutoLink:
			if entering {
				url := string(node.URL(src))
				link = append(link, url)
				emit(string(node.Label(src)))
				link = link[:len(link)-1]
			}
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			if !entering {
				return ast.WalkContinue, nil
			}
			emit(string(node.Segment.Value(src)))
			switch {
			case node.HardLineBreak():
				appendSpan(&spans, Span{Text: "\n"})
			case node.SoftLineBreak():
				emit(" ")
			}
		case *ast.String:
			if entering {
				emit(string(node.Value))
			}
		}
		return ast.WalkContinue, nil
	})

	return spans
}

func appendSpan(spans *[]Span, sp Span) {
	if n := len(*spans); n > 0 {
		last := &(*spans)[n-1]
		if last.Strong == sp.Strong && last.Emph == sp.Emph && last.Code == sp.Code && last.Link == sp.Link {
			last.Text += sp.Text
			return
		}
	}
	*spans = append(*spans, sp)
}

// Plain returns md with all markup removed.
func (r *Renderer) Plain(md string) string {
	var b strings.Builder
	for _, s := range r.Spans(md) {
		b.WriteString(s.Text)
	}
	return b.String()
}

// HTML renders md to HTML and sanitizes the result for embedding in a page.
func (r *Renderer) HTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("markup: converting markdown: %w", err)
	}
	return string(r.policy.SanitizeBytes(buf.Bytes())), nil
}
