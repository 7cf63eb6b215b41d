package markup

import (
	"strings"
	"testing"
)

func TestSpans(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		md   string
		want []Span
	}{
		{
			name: "plain text",
			md:   "hello world",
			want: []Span{{Text: "hello world"}},
		},
		{
			name: "strong run",
			md:   "I build **distributed systems** daily",
			want: []Span{
				{Text: "I build "},
				{Text: "distributed systems", Strong: true},
				{Text: " daily"},
			},
		},
		{
			name: "emphasis and code",
			md:   "*fast* `go`",
			want: []Span{
				{Text: "fast", Emph: true},
				{Text: " "},
				{Text: "go", Code: true},
			},
		},
		{
			name: "link text carries destination",
			md:   "see [my repo](https://github.com/x/y)",
			want: []Span{
				{Text: "see "},
				{Text: "my repo", Link: "https://github.com/x/y"},
			},
		},
		{
			name: "soft break becomes a space",
			md:   "one\ntwo",
			want: []Span{{Text: "one two"}},
		},
		{
			name: "paragraph break keeps styling boundaries",
			md:   "**a**\n\nb",
			want: []Span{{Text: "a", Strong: true}, {Text: "\n\nb"}},
		},
		{
			name: "paragraphs separated by blank line",
			md:   "first\n\nsecond",
			want: []Span{{Text: "first\n\nsecond"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := New().Spans(tt.md)
			if len(got) != len(tt.want) {
				t.Fatalf("Spans(%q) = %+v, want %+v", tt.md, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("span %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPlain(t *testing.T) {
	t.Parallel()

	got := New().Plain("Hi, I'm **Ada**. I like *compilers*.")
	want := "Hi, I'm Ada. I like compilers."
	if got != want {
		t.Errorf("Plain = %q, want %q", got, want)
	}
}

func TestHTML(t *testing.T) {
	t.Parallel()

	r := New()
	got, err := r.HTML("I build **systems**.")
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if !strings.Contains(got, "<strong>systems</strong>") {
		t.Errorf("HTML = %q, want a strong element", got)
	}
}

func TestHTML_Sanitizes(t *testing.T) {
	t.Parallel()

	r := New()
	tests := []struct {
		name    string
		md      string
		mustNot string
	}{
		{"javascript link", "[x](javascript:alert(1))", "javascript:"},
		{"inline handler", `<img src="a.png" onerror="alert(1)">`, "onerror"},
		{"script tag", "<script>alert(1)</script>", "<script"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.HTML(tt.md)
			if err != nil {
				t.Fatalf("HTML: %v", err)
			}
			if strings.Contains(got, tt.mustNot) {
				t.Errorf("HTML(%q) = %q, must not contain %q", tt.md, got, tt.mustNot)
			}
		})
	}
}
