package ui

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/papapumpkin/vitae/internal/content"
	"github.com/papapumpkin/vitae/internal/section"
)

// captureStderr redirects os.Stderr to a pipe and returns the captured output.
func captureStderr(fn func()) string {
	r, w, _ := os.Pipe()
	orig := os.Stderr
	os.Stderr = w

	fn()

	w.Close()
	os.Stderr = orig

	buf := make([]byte, 4096)
	n, _ := r.Read(buf)
	r.Close()
	return string(buf[:n])
}

func TestValidateResult_Clean(t *testing.T) {
	p := New()
	output := captureStderr(func() {
		p.ValidateResult("embedded", nil)
	})

	if !strings.Contains(output, `profile "embedded"`) || !strings.Contains(output, "no errors") {
		t.Errorf("expected clean result, got:\n%s", output)
	}
}

func TestValidateResult_Errors(t *testing.T) {
	p := New()
	errs := []content.ValidationError{
		{Category: content.ValCatMissingField, Field: "name", Err: fmt.Errorf("%w: name", content.ErrMissingField)},
		{Category: content.ValCatInvalidLink, Field: "contact.github", Err: fmt.Errorf("%w: x", content.ErrInvalidLink)},
	}
	output := captureStderr(func() {
		p.ValidateResult("me.toml", errs)
	})

	checks := []struct {
		name   string
		substr string
	}{
		{"count", "2 error(s)"},
		{"missing category", "[missing_field]"},
		{"link category", "[invalid_link]"},
		{"field path", "contact.github"},
	}
	for _, c := range checks {
		if !strings.Contains(output, c.substr) {
			t.Errorf("expected output to contain %s (%q), got:\n%s", c.name, c.substr, output)
		}
	}
}

func TestProfileSummary(t *testing.T) {
	p := New()
	prof := content.Profile{
		Headline: "Engineer",
		Bio:      []string{"one"},
		Skills: []content.SkillGroup{
			{Category: "A", Skills: []string{"x", "y"}},
			{Category: "B", Skills: []string{"z"}},
		},
		Projects: []content.Project{{Title: "P"}},
	}
	output := captureStderr(func() {
		p.ProfileSummary(prof, section.Default())
	})

	checks := []string{
		"Home",
		"Engineer",
		"1 paragraph, 0 stats",
		"2 categories, 3 skills",
		"0 roles",
		"1 project",
		"0 schools, 0 certifications",
	}
	for _, c := range checks {
		if !strings.Contains(output, c) {
			t.Errorf("expected output to contain %q, got:\n%s", c, output)
		}
	}
}

func TestExportDone(t *testing.T) {
	p := New()
	output := captureStderr(func() {
		p.ExportDone("out.html", 6)
	})
	if !strings.Contains(output, "out.html") || !strings.Contains(output, "6 sections") {
		t.Errorf("unexpected export output:\n%s", output)
	}
}

func TestMessages(t *testing.T) {
	p := New()
	tests := []struct {
		name string
		fn   func()
		want string
	}{
		{"error", func() { p.Error("boom") }, "error: "},
		{"warn", func() { p.Warn("careful") }, "careful"},
		{"info", func() { p.Info("fyi") }, "fyi"},
		{"banner", func() { p.Banner("Ada") }, "Ada"},
		{"trace", func() { p.TraceStarted("t.jsonl", "abc") }, "session abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if out := captureStderr(tt.fn); !strings.Contains(out, tt.want) {
				t.Errorf("output %q does not contain %q", out, tt.want)
			}
		})
	}
}
