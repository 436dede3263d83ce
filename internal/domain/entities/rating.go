package entities

import "errors"

// MaxRating is the number of stars in the rating widget.
const MaxRating = 5

var ErrRatingOutOfRange = errors.New("rating out of range")

// Rating is the customer satisfaction score. 0 means not rated yet.
type Rating int

// Set replaces the rating with exactly k. Clicking star 3 then star 1 leaves 1.
func (r *Rating) Set(k int) error {
	if k < 0 || k > MaxRating {
		return ErrRatingOutOfRange
	}
	*r = Rating(k)
	return nil
}

// Filled reports whether star (1-based) is drawn filled.
func (r Rating) Filled(star int) bool {
	return star >= 1 && star <= int(r)
}

// Stars lists the star numbers in display order.
func Stars() []int {
	out := make([]int, MaxRating)
	for i := range out {
		out[i] = i + 1
	}
	return out
}
