// Package collection implements the album store behind the collection
// manager.
//
// # Store
//
// Collection keeps albums in insertion order and refuses duplicates,
// where two albums are duplicates when their titles and artist names
// match regardless of case:
//
//	c := collection.New()
//	c.Add(album)                                   // true
//	c.Add(model.NewAlbumKey(album.Title, "x"))     // true, different artist
//	c.Contains(model.NewAlbumKey("TITLE", "name")) // case-insensitive lookup
//
// Storage grows by a fixed number of slots whenever it is full and never
// shrinks; removing an album shifts its successors left so the relative
// order of the remaining albums is kept.
//
// # Listings
//
// ByDate, ByGenre and ByRating return stably sorted copies. The
// PrintBy* variants write one line per album. Neither reorders the
// store itself.
//
// # Errors
//
// Rate reports model.ErrInvalidArgument for ratings outside 1..5 and
// model.ErrNotFound for albums that are not stored.
package collection
