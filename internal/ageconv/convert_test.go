package ageconv

import (
	"math"
	"testing"
)

func TestConvert(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		age  float64
		size Size
		want int
	}{
		{"zero small", 0, Small, 0},
		{"zero medium", 0, Medium, 0},
		{"zero large", 0, Large, 0},
		{"negative small", -5, Small, 0},
		{"negative large", -5, Large, 0},
		{"NaN", math.NaN(), Medium, 0},

		{"large year one", 1, Large, 12},
		{"large year two", 2, Large, 23},
		{"large five", 5, Large, 44},
		{"large ten", 10, Large, 79},

		{"small year one", 1, Small, 15},
		{"medium year one", 1, Medium, 15},
		{"small year two", 2, Small, 24},
		{"medium year two", 2, Medium, 24},
		{"small ten", 10, Small, 56},
		{"medium ten", 10, Medium, 64},
		{"small thirty", 30, Small, 136},

		// Fractional ages skip the fixed values and use the yearly rate
		// relative to year two.
		{"large one and a half", 1.5, Large, 19},   // 23 - 3.5 = 19.5
		{"small one and a half", 1.5, Small, 22},   // 24 - 2
		{"medium half year", 0.5, Medium, 16},      // 24 - 7.5 = 16.5
		{"small quarter year", 0.25, Small, 17},    // 24 - 7
		{"medium two and a half", 2.5, Medium, 26}, // 26.5
		{"large two and a half", 2.5, Large, 26},   // 26.5
		{"large just under one", 0.999, Large, 15}, // 15.993

		{"unknown size falls back to medium", 10, SizeUnknown, 64},
		{"unknown size year one", 1, SizeUnknown, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Convert(tt.age, tt.size); got != tt.want {
				t.Errorf("Convert(%v, %v) = %d, want %d", tt.age, tt.size, got, tt.want)
			}
		})
	}
}

func TestConvert_Deterministic(t *testing.T) {
	t.Parallel()
	for _, size := range Sizes() {
		for age := 0.0; age <= MaxAge; age += 0.5 {
			first := Convert(age, size)
			second := Convert(age, size)
			if first != second {
				t.Fatalf("Convert(%v, %v) not deterministic: %d then %d", age, size, first, second)
			}
		}
	}
}
