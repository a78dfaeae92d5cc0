package domain

import "fmt"

const (
	highMatchThreshold   = 75
	mediumMatchThreshold = 40
)

// AestheticScore is a bounded 0–100 match score.
type AestheticScore int

// NewAestheticScore rejects values outside [0, 100].
func NewAestheticScore(value int) (AestheticScore, error) {
	if value < 0 || value > 100 {
		return 0, fmt.Errorf("score must be between 0 and 100, got %d", value)
	}
	return AestheticScore(value), nil
}

// Value returns the raw integer score.
func (s AestheticScore) Value() int {
	return int(s)
}

// GreaterThan reports whether s is strictly greater than other.
func (s AestheticScore) GreaterThan(other AestheticScore) bool {
	return s > other
}

// IsHighMatch reports whether the score is at least 75, the value the
// recommendation engine assigns to related-aesthetic matches.
func (s AestheticScore) IsHighMatch() bool {
	return s >= highMatchThreshold
}

// IsMediumMatch reports whether the score is in [40, 75).
func (s AestheticScore) IsMediumMatch() bool {
	return s >= mediumMatchThreshold && s < highMatchThreshold
}
