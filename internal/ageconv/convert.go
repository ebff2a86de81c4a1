package ageconv

import "math"

// Fixed human ages for the first two years, and the per-year rates applied
// after the second year.
const (
	largeYearOne = 12
	largeYearTwo = 23
	largeRate    = 7

	smallYearOne = 15
	smallYearTwo = 24
	smallRate    = 4
	mediumRate   = 5
)

// Convert maps a dog's age and size to an equivalent human age.
//
// Ages less than or equal to zero yield 0. The one- and two-year values are
// matched by exact equality, so fractional ages such as 1.5 use the yearly
// rate with a real-valued offset from year two. Non-integral results are
// truncated toward negative infinity, so 19.5 becomes 19. A size outside the
// known categories is treated as Medium.
func Convert(age float64, size Size) int {
	if age <= 0 || math.IsNaN(age) {
		return 0
	}

	if size == Large {
		switch age {
		case 1:
			return largeYearOne
		case 2:
			return largeYearTwo
		}
		return floor(largeYearTwo + (age-2)*largeRate)
	}

	switch age {
	case 1:
		return smallYearOne
	case 2:
		return smallYearTwo
	}

	if size == Small {
		return floor(smallYearTwo + (age-2)*smallRate)
	}
	return floor(smallYearTwo + (age-2)*mediumRate)
}

func floor(v float64) int {
	return int(math.Floor(v))
}
