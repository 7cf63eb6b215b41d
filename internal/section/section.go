// Package section defines the fixed, ordered enumeration of profile sections.
// The order drives navigation-menu order and is the canonical sequence for
// walking sections forward and backward.
package section

import "strings"

// ID identifies a profile section.
type ID string

// Section identifiers in page order.
const (
	Hero       ID = "hero"
	About      ID = "about"
	Skills     ID = "skills"
	Experience ID = "experience"
	Projects   ID = "projects"
	Education  ID = "education"
)

// Order is an ordered list of section identifiers. The zero value is empty.
type Order []ID

// Default returns the page's section order.
func Default() Order {
	return Order{Hero, About, Skills, Experience, Projects, Education}
}

// First returns the first id, or "" when the order is empty.
func (o Order) First() ID {
	if len(o) == 0 {
		return ""
	}
	return o[0]
}

// Index returns the position of id in the order, or -1.
func (o Order) Index(id ID) int {
	for i, v := range o {
		if v == id {
			return i
		}
	}
	return -1
}

// Contains reports whether id is part of the order.
func (o Order) Contains(id ID) bool {
	return o.Index(id) >= 0
}

// Next returns the id after id, or id itself when it is last or unknown.
func (o Order) Next(id ID) ID {
	i := o.Index(id)
	if i < 0 || i == len(o)-1 {
		return id
	}
	return o[i+1]
}

// Prev returns the id before id, or id itself when it is first or unknown.
func (o Order) Prev(id ID) ID {
	i := o.Index(id)
	if i <= 0 {
		return id
	}
	return o[i-1]
}

// Label returns the navigation label for id. The first section of the order
// is labeled "Home"; every other section uses its capitalized identifier.
func (o Order) Label(id ID) string {
	if len(o) > 0 && id == o[0] {
		return "Home"
	}
	return Capitalize(string(id))
}

// Parse returns the ID matching s (case-insensitive) if it belongs to o.
func (o Order) Parse(s string) (ID, bool) {
	want := ID(strings.ToLower(strings.TrimSpace(s)))
	if !o.Contains(want) {
		return "", false
	}
	return want, true
}

// Capitalize upper-cases the first byte of an ASCII identifier.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
