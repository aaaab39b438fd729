package collection

import (
	"fmt"

	"github.com/TerminTURK/AlbumCollectionManager/internal/model"
)

// GrowthIncrement is the number of slots added each time the store is full.
// A new Collection starts with this capacity.
const GrowthIncrement = 4

const notFound = -1

// Collection is an in-memory, deduplicating album store.
//
// Collection is not safe for concurrent use. Every operation is short and
// CPU-only; callers that share a Collection across goroutines wrap it in a
// single mutex.
type Collection struct {
	albums []*model.Album
}

// New creates an empty Collection with the initial capacity.
func New() *Collection {
	return &Collection{
		albums: make([]*model.Album, 0, GrowthIncrement),
	}
}

// Add appends album unless an equal album is already stored.
//
// Returns false without changing the store for duplicates, true otherwise.
func (c *Collection) Add(album *model.Album) bool {
	if album == nil || c.Contains(album) {
		return false
	}
	if len(c.albums) == cap(c.albums) {
		c.grow()
	}
	c.albums = append(c.albums, album)
	return true
}

// Remove deletes the first album equal to key.
//
// Later albums move one position left; capacity is kept. Returns false
// when key is not stored.
func (c *Collection) Remove(key *model.Album) bool {
	i := c.find(key)
	if i == notFound {
		return false
	}

	last := len(c.albums) - 1
	copy(c.albums[i:], c.albums[i+1:])
	c.albums[last] = nil
	c.albums = c.albums[:last]
	return true
}

// Contains reports whether an album equal to key is stored.
func (c *Collection) Contains(key *model.Album) bool {
	return c.find(key) != notFound
}

// Get returns the stored album equal to key.
//
// The lookup key usually only carries a title and artist name; Get hands
// back the stored entry with its release date, genre and ratings.
func (c *Collection) Get(key *model.Album) (*model.Album, bool) {
	i := c.find(key)
	if i == notFound {
		return nil, false
	}
	return c.albums[i], true
}

// Rate adds a rating to the stored album equal to key.
//
// The star value is checked before the lookup, so an out-of-range star
// fails with model.ErrInvalidArgument even for unknown albums.
func (c *Collection) Rate(key *model.Album, star int) error {
	if !model.ValidStar(star) {
		return fmt.Errorf("%w: rating %d outside %d..%d", model.ErrInvalidArgument, star, model.MinStars, model.MaxStars)
	}
	if key == nil {
		return fmt.Errorf("%w: no album to rate", model.ErrInvalidArgument)
	}

	album, ok := c.Get(key)
	if !ok {
		return fmt.Errorf("%w: %s(%s)", model.ErrNotFound, key.Title, key.Artist.Name)
	}
	return album.Rate(star)
}

// IsEmpty reports whether the store holds no albums.
func (c *Collection) IsEmpty() bool {
	return len(c.albums) == 0
}

// Len returns the number of stored albums.
func (c *Collection) Len() int {
	return len(c.albums)
}

// Cap returns the current storage capacity.
func (c *Collection) Cap() int {
	return cap(c.albums)
}

// Albums returns a copy of the stored albums in store order.
func (c *Collection) Albums() []*model.Album {
	out := make([]*model.Album, len(c.albums))
	copy(out, c.albums)
	return out
}

func (c *Collection) find(key *model.Album) int {
	for i, a := range c.albums {
		if a.Equal(key) {
			return i
		}
	}
	return notFound
}

// grow reallocates storage with GrowthIncrement more slots.
func (c *Collection) grow() {
	grown := make([]*model.Album, len(c.albums), cap(c.albums)+GrowthIncrement)
	copy(grown, c.albums)
	c.albums = grown
}
