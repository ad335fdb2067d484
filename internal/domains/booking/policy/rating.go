package policy

import "math"

const (
	MinRating = 0
	MaxRating = 5
)

func IsValidRating(rating float64) bool {
	return rating >= MinRating && rating <= MaxRating
}

// AverageRating rounds the mean to one decimal place. No ratings yields 0.
func AverageRating(ratings []float64) float64 {
	if len(ratings) == 0 {
		return 0
	}

	var sum float64
	for _, rating := range ratings {
		sum += rating
	}

	return math.Round(sum/float64(len(ratings))*10) / 10
}
