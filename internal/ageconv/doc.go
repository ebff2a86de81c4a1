// Package ageconv converts a dog's age to an equivalent human age.
//
// The conversion is a piecewise linear function over three size categories.
// Ages of exactly one and two years map to fixed values; every other positive
// age is offset from the two-year value by a per-size yearly rate. The
// package also validates user input against the bounds the input surfaces
// enforce.
package ageconv
