// Package model defines the value types of the album collection.
//
// # Album
//
// Album is a catalog entry identified by its title and artist name,
// both compared without regard to case:
//
//	artist := model.NewArtist("Adele", model.NewDate(1988, 5, 5))
//	album := model.NewAlbum("21", artist, model.GenrePop, model.NewDate(2011, 1, 24))
//	key := model.NewAlbumKey("21", "ADELE")
//	album.Equal(key) // true
//
// # Date
//
// Date is a plain (year, month, day) value. Validity is checked on demand
// with IsValid, which accepts years from 1900 up to the current year and
// honors the Gregorian leap-year rule.
//
// # Ratings
//
// RatingList accumulates 1-5 star ratings and reports their mean and a
// per-star histogram. Out-of-range ratings fail with ErrInvalidArgument.
package model
