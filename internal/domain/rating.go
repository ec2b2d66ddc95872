package domain

const (
	// NoRating marks an entry its owner has not rated.
	NoRating  = 0
	MaxRating = 5
)

// ValidateRating checks that r is NoRating or a star count between 1 and MaxRating.
func ValidateRating(r int) error {
	if r < NoRating || r > MaxRating {
		return NewValidationError("rating", "must be between 0 and 5")
	}
	return nil
}
