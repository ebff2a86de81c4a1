package ageconv

import (
	"strings"

	apperrors "github.com/agbru/dogyears/internal/errors"
)

// Size is a dog size category.
type Size int

// Size categories. The zero value means no selection.
const (
	SizeUnknown Size = iota
	Small
	Medium
	Large
)

var sizeNames = map[Size]string{
	Small:  "small",
	Medium: "medium",
	Large:  "large",
}

var sizeLabels = map[Size]string{
	Small:  "Small (0-20 lbs)",
	Medium: "Medium (21-50 lbs)",
	Large:  "Large (51+ lbs)",
}

// Sizes returns the valid sizes in display order.
func Sizes() []Size {
	return []Size{Small, Medium, Large}
}

// String returns the lower-case name used on the command line and in JSON.
func (s Size) String() string {
	if name, ok := sizeNames[s]; ok {
		return name
	}
	return "unknown"
}

// Label returns the human-facing name including the weight band.
func (s Size) Label() string {
	if label, ok := sizeLabels[s]; ok {
		return label
	}
	return "Unknown"
}

// Valid reports whether s is one of Small, Medium or Large.
func (s Size) Valid() bool {
	_, ok := sizeNames[s]
	return ok
}

// ParseSize parses a size name case-insensitively. Single-letter
// abbreviations ("s", "m", "l") are accepted.
func ParseSize(text string) (Size, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "small", "s":
		return Small, nil
	case "medium", "m":
		return Medium, nil
	case "large", "l":
		return Large, nil
	case "":
		return SizeUnknown, apperrors.ValidationError{Field: "size", Message: msgSizeRequired}
	default:
		return SizeUnknown, apperrors.ValidationError{
			Field:   "size",
			Message: "unknown size " + strings.TrimSpace(text) + " (accepted values: small, medium, large)",
		}
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Size) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Size) UnmarshalText(text []byte) error {
	parsed, err := ParseSize(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
