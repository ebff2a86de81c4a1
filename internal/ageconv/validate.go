package ageconv

import (
	"math"
	"strconv"
	"strings"

	apperrors "github.com/agbru/dogyears/internal/errors"
)

// MaxAge is the upper bound accepted from input surfaces.
const MaxAge = 30

const (
	msgAgeNotNumber = "Age must be a number."
	msgAgePositive  = "Age must be a positive number."
	msgAgeTooOld    = "That's a very old dog!"
	msgSizeRequired = "You need to select a dog size."
)

// ParseAge parses a decimal age. Range checks are left to Validate.
func ParseAge(text string) (float64, error) {
	age, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(age) || math.IsInf(age, 0) {
		return 0, apperrors.ValidationError{Field: "age", Message: msgAgeNotNumber}
	}
	return age, nil
}

// Validate checks an (age, size) pair against the input bounds:
// 0 < age <= MaxAge and a known size.
func Validate(age float64, size Size) error {
	switch {
	case math.IsNaN(age) || age <= 0:
		return apperrors.ValidationError{Field: "age", Message: msgAgePositive}
	case age > MaxAge:
		return apperrors.ValidationError{Field: "age", Message: msgAgeTooOld}
	case !size.Valid():
		return apperrors.ValidationError{Field: "size", Message: msgSizeRequired}
	}
	return nil
}

// ParseInput parses and validates raw age and size text in one step.
func ParseInput(ageText, sizeText string) (float64, Size, error) {
	age, err := ParseAge(ageText)
	if err != nil {
		return 0, SizeUnknown, err
	}
	size, err := ParseSize(sizeText)
	if err != nil {
		return 0, SizeUnknown, err
	}
	if err := Validate(age, size); err != nil {
		return 0, SizeUnknown, err
	}
	return age, size, nil
}
