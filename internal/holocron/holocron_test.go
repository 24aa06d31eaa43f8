package holocron

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCharacters() []Character {
	return []Character{
		{
			Name:      "Luke Skywalker",
			HomeWorld: "https://swapi.dev/api/planets/1/",
			Films:     []string{"https://swapi.dev/api/films/1/", "https://swapi.dev/api/films/2/"},
			Species:   nil,
		},
		{
			Name:      "C-3PO",
			HomeWorld: "https://swapi.dev/api/planets/1/",
			Films:     []string{"https://swapi.dev/api/films/1/"},
			Species:   []string{"https://swapi.dev/api/species/2/"},
		},
		{
			Name:      "Leia Organa",
			HomeWorld: "https://swapi.dev/api/planets/2/",
			Films:     []string{"https://swapi.dev/api/films/2/"},
		},
		{
			Name:      "Owen Lars",
			HomeWorld: "https://swapi.dev/api/planets/1/",
			Films:     []string{"https://swapi.dev/api/films/5/"},
		},
	}
}

func names(chars []Character) []string {
	out := make([]string, 0, len(chars))
	for _, c := range chars {
		out = append(out, c.Name)
	}
	return out
}

func TestFilter(t *testing.T) {
	chars := sampleCharacters()

	t.Run("zero criteria keeps everything in order", func(t *testing.T) {
		got := Filter(chars, FilterCriteria{})
		assert.Equal(t, names(chars), names(got))
	})

	t.Run("search is case-insensitive", func(t *testing.T) {
		got := Filter(chars, FilterCriteria{Search: "SKY"})
		assert.Equal(t, []string{"Luke Skywalker"}, names(got))
	})

	t.Run("homeworld is a substring of the reference", func(t *testing.T) {
		got := Filter(chars, FilterCriteria{HomeWorld: "planets/1/"})
		assert.Equal(t, []string{"Luke Skywalker", "C-3PO", "Owen Lars"}, names(got))
	})

	t.Run("film matches any element", func(t *testing.T) {
		got := Filter(chars, FilterCriteria{Film: "films/2/"})
		assert.Equal(t, []string{"Luke Skywalker", "Leia Organa"}, names(got))
	})

	t.Run("species excludes characters without species", func(t *testing.T) {
		got := Filter(chars, FilterCriteria{Species: "2"})
		assert.Equal(t, []string{"C-3PO"}, names(got))
	})

	t.Run("predicates combine with AND", func(t *testing.T) {
		got := Filter(chars, FilterCriteria{Search: "o", HomeWorld: "planets/1/", Film: "films/1/"})
		assert.Equal(t, []string{"C-3PO"}, names(got))
	})

	t.Run("no match yields an empty view", func(t *testing.T) {
		got := Filter(chars, FilterCriteria{Search: "Yoda"})
		assert.Empty(t, got)
	})

	t.Run("input is not modified", func(t *testing.T) {
		before := names(chars)
		_ = Filter(chars, FilterCriteria{Search: "leia"})
		assert.Equal(t, before, names(chars))
	})
}

func TestFilterIsOrderedSubset(t *testing.T) {
	chars := sampleCharacters()
	criteria := []FilterCriteria{
		{},
		{Search: "a"},
		{HomeWorld: "1"},
		{Film: "1", Species: "2"},
		{Search: "l", Film: "2"},
	}

	for _, c := range criteria {
		got := Filter(chars, c)
		idx := 0
		for _, g := range got {
			for idx < len(chars) && chars[idx].Name != g.Name {
				assert.False(t, c.Matches(chars[idx]), "%s should have been kept", chars[idx].Name)
				idx++
			}
			require.Less(t, idx, len(chars), "result not an ordered subset")
			idx++
		}
		for ; idx < len(chars); idx++ {
			assert.False(t, c.Matches(chars[idx]))
		}
	}
}

func TestFilterCriteriaWith(t *testing.T) {
	var f FilterCriteria
	assert.True(t, f.IsZero())

	f = f.With(FilterFilm, "2")
	assert.Equal(t, "2", f.Get(FilterFilm))
	assert.Empty(t, f.Get(FilterHomeWorld))
	assert.False(t, f.IsZero())

	f = f.With(FilterFilm, "")
	assert.True(t, f.IsZero())
}

func TestFindByName(t *testing.T) {
	chars := sampleCharacters()

	c, ok := FindByName(chars, "leia organa")
	require.True(t, ok)
	assert.Equal(t, "Leia Organa", c.Name)

	c, ok = FindByName(chars, "owen")
	require.True(t, ok)
	assert.Equal(t, "Owen Lars", c.Name)

	_, ok = FindByName(chars, "Chewbacca")
	assert.False(t, ok)
}

func TestFormatHeight(t *testing.T) {
	assert.Equal(t, "1.72 m", FormatHeight("172"))
	assert.Equal(t, "0.96 m", FormatHeight("96"))
	assert.Equal(t, "2.00 m", FormatHeight("200"))
	assert.Equal(t, "unknown", FormatHeight("unknown"))
}

func TestFormatMass(t *testing.T) {
	assert.Equal(t, "77 kg", FormatMass("77"))
	assert.Equal(t, "1,358 kg", FormatMass("1,358"))
	assert.Equal(t, "unknown", FormatMass("unknown"))
}

func TestFormatCreated(t *testing.T) {
	assert.Equal(t, "09-12-2014", FormatCreated("2014-12-09T13:50:51.644000Z"))
	assert.Equal(t, "20-12-2014", FormatCreated("2014-12-20T21:17:56.891000Z"))
	assert.Equal(t, "garbage", FormatCreated("garbage"))
}

func TestResourceID(t *testing.T) {
	assert.Equal(t, "1", ResourceID("https://swapi.dev/api/planets/1/"))
	assert.Equal(t, "12", ResourceID("https://swapi.dev/api/films/12"))
	assert.Equal(t, "", ResourceID(""))
}

func TestFilmCount(t *testing.T) {
	assert.Equal(t, 2, FilmCount(sampleCharacters()[0]))
	assert.Equal(t, 0, FilmCount(Character{}))
}
