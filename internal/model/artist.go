package model

import "strings"

// Artist identifies who recorded an album.
//
// The name is stored lower-cased so that display and ordering do not
// depend on how the user typed it. Two artists are equal when their
// names match; the birth date only breaks ties in Compare.
type Artist struct {
	Name string
	Born Date
}

// NewArtist creates an Artist with a normalized name.
func NewArtist(name string, born Date) Artist {
	return Artist{
		Name: strings.ToLower(strings.TrimSpace(name)),
		Born: born,
	}
}

// Equal reports whether both artists have the same name, ignoring case.
func (a Artist) Equal(other Artist) bool {
	return strings.EqualFold(a.Name, other.Name)
}

// Compare orders artists by name (case-insensitive), then by birth date.
func (a Artist) Compare(other Artist) int {
	if c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(other.Name)); c != 0 {
		return c
	}
	return a.Born.Compare(other.Born)
}

// String formats the artist as name:MM/DD/YYYY.
func (a Artist) String() string {
	return a.Name + ":" + a.Born.String()
}
