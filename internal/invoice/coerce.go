package invoice

import (
	"math"
	"strconv"
	"strings"
)

// CoerceAmount parses user input as a monetary amount. Invalid input yields
// 0 rather than an error; a single comma is accepted as the decimal
// separator ("12,50").
func CoerceAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// CoerceQuantity parses user input as an item quantity. Invalid input
// yields 0 rather than an error.
func CoerceQuantity(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// CoerceRate parses user input as a percentage rate. Invalid input yields
// 0; negative rates pass through untouched.
func CoerceRate(s string) float64 {
	return CoerceAmount(s)
}
