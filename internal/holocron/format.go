package holocron

import (
	"strconv"
	"strings"
	"time"
)

// FormatHeight converts centimeters to meters with two decimals ("172" -> "1.72 m").
// Values that are not numbers ("unknown") are returned unchanged.
func FormatHeight(cm string) string {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(cm), ",", ""), 64)
	if err != nil {
		return cm
	}
	return strconv.FormatFloat(v/100, 'f', 2, 64) + " m"
}

// FormatMass appends the kilogram unit to numeric masses.
func FormatMass(kg string) string {
	if _, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(kg), ",", ""), 64); err != nil {
		return kg
	}
	return kg + " kg"
}

// FormatCreated renders a creation timestamp as day-month-year (UTC).
func FormatCreated(ts string) string {
	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return ts
	}
	return t.UTC().Format("02-01-2006")
}

// FilmCount returns the number of film references.
func FilmCount(c Character) int {
	return len(c.Films)
}

// ResourceID extracts the trailing id from an API resource URL
// ("https://swapi.dev/api/planets/1/" -> "1").
func ResourceID(url string) string {
	trimmed := strings.TrimRight(url, "/")
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		return trimmed[i+1:]
	}
	return trimmed
}
