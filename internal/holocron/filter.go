package holocron

import (
	"strings"

	"golang.org/x/text/cases"
)

// fold applies Unicode case folding. Casers are stateful, so one is built per call.
func fold(s string) string {
	return cases.Fold().String(s)
}

// IsZero reports whether no predicate is active.
func (f FilterCriteria) IsZero() bool {
	return f == FilterCriteria{}
}

// Get returns the value of the given categorical filter.
func (f FilterCriteria) Get(kind FilterKind) string {
	switch kind {
	case FilterHomeWorld:
		return f.HomeWorld
	case FilterFilm:
		return f.Film
	case FilterSpecies:
		return f.Species
	}
	return ""
}

// With returns a copy of f with the given categorical filter set to value.
func (f FilterCriteria) With(kind FilterKind, value string) FilterCriteria {
	switch kind {
	case FilterHomeWorld:
		f.HomeWorld = value
	case FilterFilm:
		f.Film = value
	case FilterSpecies:
		f.Species = value
	}
	return f
}

// Matches reports whether c satisfies every active predicate.
func (f FilterCriteria) Matches(c Character) bool {
	if f.Search != "" && !strings.Contains(fold(c.Name), fold(f.Search)) {
		return false
	}
	if f.HomeWorld != "" && !strings.Contains(c.HomeWorld, f.HomeWorld) {
		return false
	}
	if f.Film != "" && !anyContains(c.Films, f.Film) {
		return false
	}
	if f.Species != "" && !anyContains(c.Species, f.Species) {
		return false
	}
	return true
}

// Filter returns the characters matching criteria, preserving their order.
// The input slice is never modified.
func Filter(chars []Character, criteria FilterCriteria) []Character {
	out := make([]Character, 0, len(chars))
	for _, c := range chars {
		if criteria.Matches(c) {
			out = append(out, c)
		}
	}
	return out
}

// FindByName returns the character named name, ignoring case, falling back
// to the first partial match.
func FindByName(chars []Character, name string) (Character, bool) {
	needle := fold(strings.TrimSpace(name))
	for _, c := range chars {
		if fold(c.Name) == needle {
			return c, true
		}
	}
	for _, c := range chars {
		if strings.Contains(fold(c.Name), needle) {
			return c, true
		}
	}
	return Character{}, false
}

func anyContains(values []string, sub string) bool {
	for _, v := range values {
		if strings.Contains(v, sub) {
			return true
		}
	}
	return false
}
