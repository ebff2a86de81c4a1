package format

import (
	"strconv"
)

// FormatDogAge renders an age in years with at most two decimals and no
// trailing zeros: "1 year", "2.5 years".
func FormatDogAge(age float64) string {
	s := strconv.FormatFloat(age, 'f', 2, 64)
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	if s == "1" {
		return "1 year"
	}
	return s + " years"
}

// FormatHumanAge renders a converted age: "1 human year", "44 human years".
func FormatHumanAge(years int) string {
	if years == 1 {
		return "1 human year"
	}
	return strconv.Itoa(years) + " human years"
}
