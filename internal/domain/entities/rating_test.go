package entities

import (
	"errors"
	"testing"
)

func TestRating_Set(t *testing.T) {
	var r Rating
	if r != 0 {
		t.Fatalf("expected unset rating")
	}

	if err := r.Set(3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Set(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r != 1 {
		t.Fatalf("last click wins: expected 1, got %d", r)
	}

	for _, k := range []int{-1, 6} {
		if err := r.Set(k); !errors.Is(err, ErrRatingOutOfRange) {
			t.Fatalf("expected ErrRatingOutOfRange for %d, got %v", k, err)
		}
	}
	if r != 1 {
		t.Fatalf("rejected value must not change the rating, got %d", r)
	}
}

func TestRating_Filled(t *testing.T) {
	r := Rating(3)
	for _, star := range Stars() {
		if got, want := r.Filled(star), star <= 3; got != want {
			t.Fatalf("star %d: filled=%v want %v", star, got, want)
		}
	}
	if Rating(0).Filled(1) {
		t.Fatalf("no star is filled when unrated")
	}
	if len(Stars()) != MaxRating {
		t.Fatalf("expected %d stars", MaxRating)
	}
}
