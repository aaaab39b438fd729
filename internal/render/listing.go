// Package render formats album listings for display.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/TerminTURK/AlbumCollectionManager/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// Format selects how a Listing renders albums.
type Format int

const (
	// FormatPlain renders each album exactly as Album.String does.
	FormatPlain Format = iota

	// FormatStyled renders aligned, colored columns.
	FormatStyled
)

func (f Format) String() string {
	if f == FormatStyled {
		return "styled"
	}
	return "plain"
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500"))

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	artistStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	genreStyle = lipgloss.NewStyle().
			Width(len("CLASSICAL")).
			Foreground(lipgloss.Color("#95E1A3"))

	ratingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	unratedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))
)

// Listing renders sorted album slices.
//
// Example:
//
//	listing := NewListing(FormatStyled)
//	err := listing.Write(os.Stdout, store.ByRating())
type Listing struct {
	format Format
}

// NewListing creates a Listing with the given format.
func NewListing(format Format) *Listing {
	return &Listing{format: format}
}

// Format returns the listing's format.
func (l *Listing) Format() Format {
	return l.format
}

// Lines renders one line per album, in the given order.
func (l *Listing) Lines(albums []*model.Album) []string {
	lines := make([]string, len(albums))
	for i, a := range albums {
		switch l.format {
		case FormatStyled:
			lines[i] = styledLine(a)
		default:
			lines[i] = a.String()
		}
	}
	return lines
}

// Write renders albums to w, one per line.
func (l *Listing) Write(w io.Writer, albums []*model.Album) error {
	for _, line := range l.Lines(albums) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func styledLine(a *model.Album) string {
	rating := unratedStyle.Render("unrated")
	if a.Ratings().Len() > 0 {
		rating = ratingStyle.Render(fmt.Sprintf("%s %.2f", stars(a.AvgRatings()), a.AvgRatings()))
	}

	return strings.Join([]string{
		genreStyle.Render(a.Genre.String()),
		dateStyle.Render(a.Released.String()),
		titleStyle.Render(a.Title),
		artistStyle.Render("by " + a.Artist.Name),
		rating,
	}, "  ")
}

// stars renders a mean rating rounded to whole stars.
func stars(mean float64) string {
	n := int(mean + 0.5)
	return strings.Repeat("★", n) + strings.Repeat("☆", model.MaxStars-n)
}
