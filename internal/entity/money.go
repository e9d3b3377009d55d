package entity

import "math"

// All currency moves through the system as integer cents so the 50%
// commission split stays exact.

func DollarsToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func CentsToDollars(cents int64) float64 {
	return float64(cents) / 100
}

// HalfCents halves an amount, rounding the half-cent up to the minor
// unit. 2799 cents -> 1400, 2800 cents -> 1400.
func HalfCents(cents int64) int64 {
	return (cents + 1) / 2
}
