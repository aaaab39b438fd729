package audio

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/TerminTURK/AlbumCollectionManager/internal/model"
	"github.com/bogem/id3v2"
)

// Frame IDs read by TagReader.
const (
	frameAlbum       = "TALB"
	frameArtist      = "TPE1"
	frameAlbumArtist = "TPE2"
	frameGenre       = "TCON"
	frameDate        = "TDRC" // ID3v2.4
	frameYear        = "TYER" // ID3v2.3
)

// id3v1Genres maps the ID3v1 numeric genre codes that have a catalog
// genre. Every other code resolves to model.GenreUnknown.
var id3v1Genres = map[int]model.Genre{
	2:  model.GenreCountry,
	8:  model.GenreJazz,
	13: model.GenrePop,
	32: model.GenreClassical,
}

// genreRef matches the "(n)" references that ID3v2.3 writers put in
// front of (or instead of) a genre name.
var genreRef = regexp.MustCompile(`^\((\d+)\)`)

var dateLayouts = []string{"2006-01-02", "2006-01", "2006"}

// TagReader builds catalog albums from the ID3 tags of MP3 files.
//
// The album title comes from TALB and the artist from TPE2 (album
// artist), falling back to TPE1. Genre is read from TCON and the
// release date from TDRC, falling back to TYER.
//
// Example:
//
//	reader := NewTagReader()
//	album, err := reader.ReadAlbum("/music/blue/01.mp3", model.NewDate(1943, 11, 7))
//	if err != nil {
//	    log.Printf("Skipping: %v", err)
//	}
type TagReader struct{}

// NewTagReader creates a new TagReader.
func NewTagReader() *TagReader {
	return &TagReader{}
}

// ReadAlbum reads the tags of the MP3 file at path and returns the
// album it belongs to. ID3 tags carry no artist birth date, so born is
// used for the album's artist.
//
// The returned album is unrated. Its release date is zero when the file
// has no usable date frame; callers decide whether that is acceptable.
// A file without an album title or artist yields an error wrapping
// model.ErrInvalidArgument.
func (r *TagReader) ReadAlbum(path string, born model.Date) (*model.Album, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read tags of %s: %w", path, err)
	}
	defer tag.Close()

	title := strings.TrimSpace(tag.Album())
	if title == "" {
		return nil, fmt.Errorf("%w: %s has no album title", model.ErrInvalidArgument, path)
	}

	artist := strings.TrimSpace(tag.GetTextFrame(frameAlbumArtist).Text)
	if artist == "" {
		artist = strings.TrimSpace(tag.GetTextFrame(frameArtist).Text)
	}
	if artist == "" {
		return nil, fmt.Errorf("%w: %s has no artist", model.ErrInvalidArgument, path)
	}

	released := parseTagDate(tag.GetTextFrame(frameDate).Text)
	if released.IsZero() {
		released = parseTagDate(tag.GetTextFrame(frameYear).Text)
	}

	return model.NewAlbum(
		title,
		model.NewArtist(artist, born),
		parseTagGenre(tag.GetTextFrame(frameGenre).Text),
		released,
	), nil
}

// parseTagGenre resolves a TCON value such as "Jazz", "(8)", "(8)Jazz"
// or "8" to a catalog genre.
func parseTagGenre(s string) model.Genre {
	s = strings.TrimSpace(s)

	code := -1
	if m := genreRef.FindStringSubmatch(s); m != nil {
		code, _ = strconv.Atoi(m[1])
		s = strings.TrimSpace(s[len(m[0]):])
	}
	if n, err := strconv.Atoi(s); err == nil {
		code, s = n, ""
	}

	if s != "" {
		return model.ParseGenre(s)
	}
	if g, ok := id3v1Genres[code]; ok {
		return g
	}
	return model.GenreUnknown
}

// parseTagDate parses an ID3 timestamp. A bare year maps to January 1
// and a year-month to the first of that month. Unparseable input
// yields the zero Date.
func parseTagDate(s string) model.Date {
	s = strings.TrimSpace(s)
	if len(s) > len(dateLayouts[0]) {
		s = s[:len(dateLayouts[0])] // drop any time component
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return model.NewDate(t.Year(), int(t.Month()), t.Day())
		}
	}
	return model.Date{}
}
