package content

import (
	"errors"
	"fmt"
	"net/url"
)

// Sentinel errors for profile validation.
var (
	// ErrMissingField indicates a required field is empty.
	ErrMissingField = errors.New("required field missing")
	// ErrInvalidLink indicates a link that is not an absolute http(s) URL.
	ErrInvalidLink = errors.New("invalid link")
	// ErrUnknownAccent indicates a project accent theme with no color pair.
	ErrUnknownAccent = errors.New("unknown accent theme")
)

// ValidationCategory classifies a validation error for programmatic handling.
type ValidationCategory string

const (
	// ValCatMissingField indicates a required field is empty.
	ValCatMissingField ValidationCategory = "missing_field"
	// ValCatInvalidLink indicates a malformed external link.
	ValCatInvalidLink ValidationCategory = "invalid_link"
	// ValCatUnknownAccent indicates an accent theme that renders with the
	// default palette.
	ValCatUnknownAccent ValidationCategory = "unknown_accent"
)

// ValidationError records a validation problem with the field path that
// caused it, e.g. "projects[1].title".
type ValidationError struct {
	Category ValidationCategory
	Field    string
	Err      error
}

// Error returns the field path followed by the underlying error.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

// Unwrap returns the underlying error for use with errors.Is/As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks a profile for missing required fields and malformed links.
// Rendering never depends on it; it backs the validate command.
func Validate(p Profile) []ValidationError {
	var errs []ValidationError

	missing := func(field string) {
		errs = append(errs, ValidationError{
			Category: ValCatMissingField,
			Field:    field,
			Err:      fmt.Errorf("%w: %s", ErrMissingField, field),
		})
	}
	link := func(field, raw string) {
		if raw == "" {
			return
		}
		if err := checkLink(raw); err != nil {
			errs = append(errs, ValidationError{
				Category: ValCatInvalidLink,
				Field:    field,
				Err:      fmt.Errorf("%w: %q: %v", ErrInvalidLink, raw, err),
			})
		}
	}

	if p.Name == "" {
		missing("name")
	}
	link("contact.github", p.Contact.GitHub)
	link("contact.linkedin", p.Contact.LinkedIn)

	for i, s := range p.Stats {
		if s.Label == "" {
			missing(fmt.Sprintf("stats[%d].label", i))
		}
	}
	for i, g := range p.Skills {
		if g.Category == "" {
			missing(fmt.Sprintf("skills[%d].category", i))
		}
		if len(g.Skills) == 0 {
			missing(fmt.Sprintf("skills[%d].skills", i))
		}
	}
	for i, j := range p.Experience {
		if j.Company == "" {
			missing(fmt.Sprintf("experience[%d].company", i))
		}
		if j.Role == "" {
			missing(fmt.Sprintf("experience[%d].role", i))
		}
	}
	for i, pr := range p.Projects {
		if pr.Title == "" {
			missing(fmt.Sprintf("projects[%d].title", i))
		}
		link(fmt.Sprintf("projects[%d].repository", i), pr.Repository)
		if !KnownAccent(pr.Accent) {
			errs = append(errs, ValidationError{
				Category: ValCatUnknownAccent,
				Field:    fmt.Sprintf("projects[%d].accent", i),
				Err:      fmt.Errorf("%w: %q", ErrUnknownAccent, pr.Accent),
			})
		}
	}
	for i, s := range p.Education {
		if s.Title == "" {
			missing(fmt.Sprintf("education[%d].title", i))
		}
	}

	return errs
}

func checkLink(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("scheme must be http or https")
	}
	if u.Host == "" {
		return errors.New("missing host")
	}
	return nil
}
