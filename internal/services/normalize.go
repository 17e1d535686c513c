package services

import (
	"strings"

	"golang.org/x/text/cases"
)

// normalizeKey collapses whitespace and case-folds s so that
// "São  Paulo" and "são paulo" share a cache entry.
func normalizeKey(s string) string {
	// A Caser keeps state; one per call keeps this safe for concurrent use.
	return cases.Fold().String(strings.Join(strings.Fields(s), " "))
}

// placeLength counts runes of the normalized name, so that two inputs
// sharing a cache key also share a synthetic estimate.
func placeLength(s string) int {
	return len([]rune(normalizeKey(s)))
}
