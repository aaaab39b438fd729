package model

import (
	"fmt"
	"strings"
)

// Album is one entry of the collection.
//
// Title, Artist, Genre and Released never change after creation; the
// ratings grow as users rate the album.
//
// Identity is the title (case-insensitive) plus the artist name. Genre
// and release date are not part of it, so two entries that differ only
// there are duplicates as far as the collection is concerned.
//
// Example:
//
//	artist := NewArtist("Miles Davis", NewDate(1926, 5, 26))
//	album := NewAlbum("Kind of Blue", artist, GenreJazz, NewDate(1959, 8, 17))
//	_ = album.Rate(5)
//	fmt.Println(album)
//	// [Kind of Blue] Released 08/17/1959 [miles davis:05/26/1926] [JAZZ] Rating: *(0)**(0)***(0)****(0)*****(1) (average rating: 5.00)
type Album struct {
	// Title is the album title as entered.
	Title string

	// Artist is who recorded the album.
	Artist Artist

	// Genre is the album genre.
	Genre Genre

	// Released is the release date. Zero for lookup keys.
	Released Date

	ratings RatingList
}

// NewAlbum creates an unrated Album.
func NewAlbum(title string, artist Artist, genre Genre, released Date) *Album {
	return &Album{
		Title:    strings.TrimSpace(title),
		Artist:   artist,
		Genre:    genre,
		Released: released,
	}
}

// NewAlbumKey creates an Album that only carries identity fields.
//
// Keys are used to look up, rate or remove a stored album; their genre is
// GenreUnknown and their dates are zero.
func NewAlbumKey(title, artistName string) *Album {
	return NewAlbum(title, NewArtist(artistName, Date{}), GenreUnknown, Date{})
}

// Equal reports whether a and other identify the same album.
func (a *Album) Equal(other *Album) bool {
	if a == other {
		return true
	}
	if a == nil || other == nil {
		return false
	}
	return strings.EqualFold(a.Title, other.Title) && a.Artist.Equal(other.Artist)
}

// Rate records a rating. Stars outside 1..5 fail with ErrInvalidArgument.
func (a *Album) Rate(star int) error {
	return a.ratings.Add(star)
}

// AvgRatings returns the mean rating, or 0 when the album is unrated.
func (a *Album) AvgRatings() float64 {
	return a.ratings.Mean()
}

// Ratings returns the album's rating list.
func (a *Album) Ratings() *RatingList {
	return &a.ratings
}

// String renders the album the way collection listings print it.
func (a *Album) String() string {
	return fmt.Sprintf("[%s] Released %s [%s] [%s] Rating: %s",
		a.Title, a.Released, a.Artist, a.Genre, a.RatingSummary())
}

// RatingSummary renders the per-star histogram followed by the mean,
// e.g. "*(1)**(0)***(2)****(0)*****(0) (average rating: 2.33)".
// Unrated albums render as "none".
func (a *Album) RatingSummary() string {
	if a.ratings.Len() == 0 {
		return "none"
	}

	var sb strings.Builder
	for i, count := range a.ratings.Histogram() {
		sb.WriteString(fmt.Sprintf("%s(%d)", strings.Repeat("*", i+1), count))
	}
	sb.WriteString(fmt.Sprintf(" (average rating: %.2f)", a.ratings.Mean()))
	return sb.String()
}
