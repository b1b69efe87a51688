package arrays

import (
	"fmt"
	"strings"
)

// FindFirstString Finds the first element into the passed in values where the predicate is true
// Returns: -1 when not found, the position of the element otherwise.
func FindFirstString(values []string, predicate func(x string) bool) int {
	idx, _ := FindFirst(values, PredicateFunc[string](predicate))
	return idx
}

// FilterStringSlice returns the strings of `values` matching the given predicate
func FilterStringSlice(values []string, predicate func(x string) bool) []string {
	return Filter(values, PredicateFunc[string](predicate))
}

// StringEqualsIgnoreCasePredicate returns a predicate matching strings equal to the given value ignoring case
func StringEqualsIgnoreCasePredicate(value string) PredicateFunc[string] {
	return func(x string) bool {
		return strings.EqualFold(x, value)
	}
}

// StringHasPrefixIgnoreCasePredicate returns a predicate matching strings starting with the given prefix ignoring case
func StringHasPrefixIgnoreCasePredicate(prefix string) PredicateFunc[string] {
	return func(x string) bool {
		return len(x) >= len(prefix) && strings.EqualFold(x[:len(prefix)], prefix)
	}
}

// FirstNonEmpty Returns the first non-empty string between the passed in values.
// If no non-empty string can be found, returns an empty string and an error
func FirstNonEmpty(values ...string) (string, error) {
	if idx, _ := FindFirst(values, func(s string) bool { return s != "" }); idx == -1 {
		return "", fmt.Errorf("all strings are empty")
	} else {
		return values[idx], nil
	}
}

// FirstNonEmptyOrDefault Returns the first non-empty string between the passed in values.
// If no non-empty string can be found, returns defaultValue
func FirstNonEmptyOrDefault(defaultValue string, values ...string) string {
	if idx, _ := FindFirst(values, func(s string) bool { return s != "" }); idx == -1 {
		return defaultValue
	} else {
		return values[idx]
	}
}
