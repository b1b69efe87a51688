package arrays

const ElementNotFound = -1

type PredicateFunc[T any] func(x T) bool

// FindFirst Finds the first element into the passed in values where the predicate is true.
// Returns: the index of the element and the element itself, ElementNotFound and the zero
// value when no element matches the predicate.
func FindFirst[T any](values []T, predicate PredicateFunc[T]) (int, T) {
	for i, val := range values {
		if predicate(val) {
			return i, val
		}
	}
	return ElementNotFound, *new(T)
}

// Filter returns a slice containing only the elements matching the given predicate
func Filter[T any](values []T, predicate PredicateFunc[T]) []T {
	res := make([]T, 0, len(values))
	for _, val := range values {
		if predicate(val) {
			res = append(res, val)
		}
	}
	return res
}

// AnyMatch returns `true` if at least one element of the slice matches the given predicate
func AnyMatch[T any](values []T, predicate PredicateFunc[T]) bool {
	idx, _ := FindFirst(values, predicate)
	return idx != ElementNotFound
}

// NoneMatch returns `true` if no element of the slice matches the given predicate
func NoneMatch[T any](values []T, predicate PredicateFunc[T]) bool {
	return !AnyMatch(values, predicate)
}

// AllMatch returns `true` if all the elements of the slice match the given predicate
func AllMatch[T any](values []T, predicate PredicateFunc[T]) bool {
	for _, val := range values {
		if !predicate(val) {
			return false
		}
	}
	return true
}

// Contains returns `true` if the slice contains the given element
func Contains[T comparable](values []T, s T) bool {
	return AnyMatch(values, func(x T) bool { return x == s })
}

// Map applies the mapper to each element of the input slice
func Map[T any, U any](values []T, mapper func(x T) U) []U {
	res := make([]U, len(values))
	for i, val := range values {
		res[i] = mapper(val)
	}
	return res
}
