// Package ansi provides ANSI escape code constants and helpers for the
// command-line printer. The interactive view styles through lipgloss instead.
package ansi

// ANSI SGR (Select Graphic Rendition) codes.
const (
	Reset     = "\033[0m"
	Bold      = "\033[1m"
	Dim       = "\033[2m"
	Underline = "\033[4m"
	Blue      = "\033[34m"
	Yellow    = "\033[33m"
	Green     = "\033[32m"
	Red       = "\033[31m"
	Cyan      = "\033[36m"
	Magenta   = "\033[35m"
)

// Wrap returns s preceded by the given codes and followed by Reset.
func Wrap(s string, codes ...string) string {
	if len(codes) == 0 {
		return s
	}
	n := len(s) + len(Reset)
	for _, c := range codes {
		n += len(c)
	}
	b := make([]byte, 0, n)
	for _, c := range codes {
		b = append(b, c...)
	}
	b = append(b, s...)
	b = append(b, Reset...)
	return string(b)
}
