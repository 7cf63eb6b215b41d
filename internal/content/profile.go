// Package content holds the static profile payload rendered by every surface:
// hero and about text, skills, experience, projects, education and contact
// links. The payload is fixed once loaded; nothing in the program mutates it.
package content

// Profile is the complete content payload of a profile page.
type Profile struct {
	Name           string       `toml:"name" yaml:"name"`
	Headline       string       `toml:"headline" yaml:"headline"`
	Tagline        string       `toml:"tagline" yaml:"tagline"`
	Location       string       `toml:"location" yaml:"location"`
	Bio            []string     `toml:"bio" yaml:"bio"` // markdown paragraphs
	Certifications []string     `toml:"certifications" yaml:"certifications"`
	Footer         string       `toml:"footer" yaml:"footer"`
	Contact        Contact      `toml:"contact" yaml:"contact"`
	Pitch          Pitch        `toml:"pitch" yaml:"pitch"`
	Stats          []Stat       `toml:"stats" yaml:"stats"`
	Skills         []SkillGroup `toml:"skills" yaml:"skills"`
	Experience     []Job        `toml:"experience" yaml:"experience"`
	Projects       []Project    `toml:"projects" yaml:"projects"`
	Education      []School     `toml:"education" yaml:"education"`
}

// Contact holds the pass-through contact links shown in the hero and the
// call-to-action block.
type Contact struct {
	Phone    string `toml:"phone" yaml:"phone"`
	Email    string `toml:"email" yaml:"email"`
	GitHub   string `toml:"github" yaml:"github"`
	LinkedIn string `toml:"linkedin" yaml:"linkedin"`
}

// PhoneLink returns the tel: URI for the phone number, or "" if unset.
func (c Contact) PhoneLink() string {
	if c.Phone == "" {
		return ""
	}
	return "tel:" + c.Phone
}

// EmailLink returns the mailto: URI for the email address, or "" if unset.
func (c Contact) EmailLink() string {
	if c.Email == "" {
		return ""
	}
	return "mailto:" + c.Email
}

// Pitch is the closing call-to-action block.
type Pitch struct {
	Heading string `toml:"heading" yaml:"heading"`
	Body    string `toml:"body" yaml:"body"`
}

// Stat is one label/value row of the about-section summary card.
type Stat struct {
	Label string `toml:"label" yaml:"label"`
	Value string `toml:"value" yaml:"value"`
}

// SkillGroup is one entry of the ordered category → skills mapping.
type SkillGroup struct {
	Category string   `toml:"category" yaml:"category"`
	Skills   []string `toml:"skills" yaml:"skills"`
}

// Job is one work-history record.
type Job struct {
	Company      string   `toml:"company" yaml:"company"`
	Role         string   `toml:"role" yaml:"role"`
	Period       string   `toml:"period" yaml:"period"`
	Description  string   `toml:"description" yaml:"description"`
	Achievements []string `toml:"achievements" yaml:"achievements"`
}

// Project is one portfolio project. Accent names a color theme such as
// "blue-purple"; unknown themes fall back to the default palette.
type Project struct {
	Title       string   `toml:"title" yaml:"title"`
	Description string   `toml:"description" yaml:"description"`
	Highlights  []string `toml:"highlights" yaml:"highlights"`
	Tech        []string `toml:"tech" yaml:"tech"`
	Accent      string   `toml:"accent" yaml:"accent"`
	Repository  string   `toml:"repository" yaml:"repository"`
}

// School is a free-form education record.
type School struct {
	Title       string `toml:"title" yaml:"title"`
	Detail      string `toml:"detail" yaml:"detail"`
	Institution string `toml:"institution" yaml:"institution"`
	Period      string `toml:"period" yaml:"period"`
}

// IsZero reports whether p carries no content at all.
func (p Profile) IsZero() bool {
	return p.Name == "" && p.Headline == "" && len(p.Bio) == 0 &&
		len(p.Skills) == 0 && len(p.Experience) == 0 &&
		len(p.Projects) == 0 && len(p.Education) == 0
}
