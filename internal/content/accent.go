package content

import "strings"

// Accent is a two-stop color theme, as hex RGB strings.
type Accent struct {
	Name string
	From string
	To   string
}

// DefaultAccent is the primary blue-to-purple theme used when a project names
// no theme or an unknown one.
const DefaultAccent = "blue-purple"

// AccentFor resolves a theme name like "green-teal" to its color pair.
// Unknown names resolve to DefaultAccent.
func AccentFor(name string) Accent {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "green-teal":
		return Accent{Name: "green-teal", From: "#22C55E", To: "#0D9488"}
	case "orange-red":
		return Accent{Name: "orange-red", From: "#F97316", To: "#DC2626"}
	case "purple-pink":
		return Accent{Name: "purple-pink", From: "#A855F7", To: "#EC4899"}
	case "yellow-orange":
		return Accent{Name: "yellow-orange", From: "#FACC15", To: "#F97316"}
	default:
		return Accent{Name: DefaultAccent, From: "#3B82F6", To: "#9333EA"}
	}
}

// KnownAccent reports whether name is a theme AccentFor recognizes.
func KnownAccent(name string) bool {
	n := strings.ToLower(strings.TrimSpace(name))
	return n == "" || AccentFor(n).Name == n
}
