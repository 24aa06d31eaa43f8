// Package holocron provides the core catalog types and the pure filtering and
// formatting logic shared by the TUI and the CLI commands.
package holocron

// Character is a catalog record describing a single person.
// Height and mass are kept as the raw strings the API sends ("172", "1,358", "unknown").
type Character struct {
	Name      string   `json:"name" yaml:"name"`
	Height    string   `json:"height" yaml:"height"` // centimeters
	Mass      string   `json:"mass" yaml:"mass"`     // kilograms
	HairColor string   `json:"hair_color" yaml:"hair_color"`
	SkinColor string   `json:"skin_color" yaml:"skin_color"`
	EyeColor  string   `json:"eye_color" yaml:"eye_color"`
	BirthYear string   `json:"birth_year" yaml:"birth_year"` // e.g. "19BBY"
	Gender    string   `json:"gender" yaml:"gender"`
	HomeWorld string   `json:"homeworld" yaml:"homeworld"` // planet resource URL
	Films     []string `json:"films" yaml:"films"`         // film resource URLs, in API order
	Species   []string `json:"species" yaml:"species"`     // species resource URLs, in API order
	Created   string   `json:"created" yaml:"created"`     // RFC 3339 timestamp
	Edited    string   `json:"edited" yaml:"edited"`
	URL       string   `json:"url" yaml:"url"`
}

// HomeWorld is a catalog record describing a planet.
type HomeWorld struct {
	Name           string `json:"name" yaml:"name"`
	Terrain        string `json:"terrain" yaml:"terrain"`
	Climate        string `json:"climate" yaml:"climate"`
	Population     string `json:"population" yaml:"population"`
	RotationPeriod string `json:"rotation_period,omitempty" yaml:"rotation_period,omitempty"`
	OrbitalPeriod  string `json:"orbital_period,omitempty" yaml:"orbital_period,omitempty"`
	Diameter       string `json:"diameter,omitempty" yaml:"diameter,omitempty"`
	Gravity        string `json:"gravity,omitempty" yaml:"gravity,omitempty"`
	URL            string `json:"url,omitempty" yaml:"url,omitempty"`
}

// FilterCriteria is the search term plus the three categorical filters.
// An empty field is treated as always-true.
type FilterCriteria struct {
	Search    string // case-insensitive substring of the name
	HomeWorld string // substring of the home-world reference
	Film      string // substring of at least one film reference
	Species   string // substring of at least one species reference
}

// FilterKind identifies one of the categorical filters.
type FilterKind int

const (
	FilterHomeWorld FilterKind = iota
	FilterFilm
	FilterSpecies
)

// String returns the display label of the filter kind.
func (k FilterKind) String() string {
	switch k {
	case FilterHomeWorld:
		return "Homeworld"
	case FilterFilm:
		return "Film"
	case FilterSpecies:
		return "Species"
	default:
		return "Unknown"
	}
}
