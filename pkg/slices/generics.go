package slices

import (
	originSlices "slices"

	"golang.org/x/exp/constraints"
)

// FilterEmptyValues drops zero values ("", 0, false) from list
func FilterEmptyValues[T comparable](list []T) []T {
	result := make([]T, 0, len(list))
	var emptyValue T
	for _, v := range list {
		if v == emptyValue {
			continue
		}
		result = append(result, v)
	}
	return result
}

// UniqueValues keeps the first occurrence of every value
func UniqueValues[T comparable](list []T) []T {
	result := make([]T, 0, len(list))
	seen := make(map[T]struct{}, len(list))
	for _, v := range list {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			result = append(result, v)
		}
	}
	return result
}

// Standardize returns list without zero values or duplicates, sorted. It never returns nil.
func Standardize[T constraints.Ordered](list []T) []T {
	result := UniqueValues(FilterEmptyValues(list))
	originSlices.Sort(result)
	return result
}

func ContainsAny[T comparable](list []T, in ...T) bool {
	for _, v := range in {
		if originSlices.Contains(list, v) {
			return true
		}
	}
	return false
}
