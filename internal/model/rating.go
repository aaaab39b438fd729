package model

import "fmt"

const (
	// MinStars and MaxStars bound a single rating.
	MinStars = 1
	MaxStars = 5
)

// RatingList records every star rating given to an album.
//
// Only the count per star and the sum matter, so the list is a plain
// append-only slice. The zero value is an empty list ready to use.
type RatingList struct {
	stars []int
}

// Add records one rating. Values outside 1..5 are rejected with
// ErrInvalidArgument and leave the list unchanged.
func (r *RatingList) Add(star int) error {
	if !ValidStar(star) {
		return fmt.Errorf("%w: rating %d outside %d..%d", ErrInvalidArgument, star, MinStars, MaxStars)
	}
	r.stars = append(r.stars, star)
	return nil
}

// Len returns how many ratings were recorded.
func (r *RatingList) Len() int {
	return len(r.stars)
}

// Mean returns the arithmetic mean of all ratings, or 0 when there are none.
func (r *RatingList) Mean() float64 {
	if len(r.stars) == 0 {
		return 0
	}
	sum := 0
	for _, s := range r.stars {
		sum += s
	}
	return float64(sum) / float64(len(r.stars))
}

// Histogram counts ratings per star. Index 0 holds one-star ratings,
// index 4 five-star ratings.
func (r *RatingList) Histogram() [MaxStars]int {
	var h [MaxStars]int
	for _, s := range r.stars {
		h[s-1]++
	}
	return h
}

// ValidStar reports whether star is an acceptable rating.
func ValidStar(star int) bool {
	return star >= MinStars && star <= MaxStars
}
