package collection

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/TerminTURK/AlbumCollectionManager/internal/model"
)

// Order names one of the listing orders.
type Order int

const (
	// OrderByDate sorts by release date, then title.
	OrderByDate Order = iota

	// OrderByGenre sorts by genre name, then artist name.
	OrderByGenre

	// OrderByRating sorts by mean rating (highest first), then title.
	OrderByRating
)

// String returns a short name for the order.
func (o Order) String() string {
	switch o {
	case OrderByDate:
		return "date"
	case OrderByGenre:
		return "genre"
	case OrderByRating:
		return "rating"
	default:
		return "unknown"
	}
}

func byDate(x, y *model.Album) int {
	if c := x.Released.Compare(y.Released); c != 0 {
		return c
	}
	return strings.Compare(x.Title, y.Title)
}

func byGenre(x, y *model.Album) int {
	if c := strings.Compare(x.Genre.String(), y.Genre.String()); c != 0 {
		return c
	}
	return strings.Compare(x.Artist.Name, y.Artist.Name)
}

func byRating(x, y *model.Album) int {
	if c := cmp.Compare(y.AvgRatings(), x.AvgRatings()); c != 0 {
		return c
	}
	return strings.Compare(x.Title, y.Title)
}

func comparator(o Order) func(x, y *model.Album) int {
	switch o {
	case OrderByGenre:
		return byGenre
	case OrderByRating:
		return byRating
	default:
		return byDate
	}
}

// Sorted returns a stably sorted copy of the stored albums.
func (c *Collection) Sorted(o Order) []*model.Album {
	out := c.Albums()
	slices.SortStableFunc(out, comparator(o))
	return out
}

// ByDate returns the albums ordered by release date, then title.
func (c *Collection) ByDate() []*model.Album {
	return c.Sorted(OrderByDate)
}

// ByGenre returns the albums ordered by genre name, then artist name.
func (c *Collection) ByGenre() []*model.Album {
	return c.Sorted(OrderByGenre)
}

// ByRating returns the albums ordered by mean rating, highest first, then
// title.
func (c *Collection) ByRating() []*model.Album {
	return c.Sorted(OrderByRating)
}

// Print writes the albums in order o to w, one line per album.
func (c *Collection) Print(w io.Writer, o Order) error {
	for _, a := range c.Sorted(o) {
		if _, err := fmt.Fprintln(w, a); err != nil {
			return err
		}
	}
	return nil
}

// PrintByDate writes the albums ordered by release date.
func (c *Collection) PrintByDate(w io.Writer) error {
	return c.Print(w, OrderByDate)
}

// PrintByGenre writes the albums ordered by genre.
func (c *Collection) PrintByGenre(w io.Writer) error {
	return c.Print(w, OrderByGenre)
}

// PrintByRating writes the albums ordered by mean rating.
func (c *Collection) PrintByRating(w io.Writer) error {
	return c.Print(w, OrderByRating)
}
