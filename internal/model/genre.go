package model

import "strings"

// Genre is the musical genre of an album.
type Genre int

const (
	GenrePop Genre = iota
	GenreClassical
	GenreJazz
	GenreCountry
	GenreUnknown
)

var genreNames = [...]string{
	GenrePop:       "POP",
	GenreClassical: "CLASSICAL",
	GenreJazz:      "JAZZ",
	GenreCountry:   "COUNTRY",
	GenreUnknown:   "UNKNOWN",
}

// String returns the upper-case genre name, e.g. "JAZZ".
func (g Genre) String() string {
	if g < GenrePop || g > GenreUnknown {
		return genreNames[GenreUnknown]
	}
	return genreNames[g]
}

// ParseGenre looks up a genre by name, ignoring case. Names that match
// no genre map to GenreUnknown.
func ParseGenre(name string) Genre {
	name = strings.TrimSpace(name)
	for g, n := range genreNames {
		if strings.EqualFold(n, name) {
			return Genre(g)
		}
	}
	return GenreUnknown
}
