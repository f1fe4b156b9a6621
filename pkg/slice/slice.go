// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package slice complements the standard [slices] package with the small functional
helpers the document services lean on (Map, Filter, Reduce, Find).

All helpers preserve input order. None of them mutate their input.
*/
package slice

// Map maps a slice of type T to a slice of type U using the provided transformation function.
//
// A nil input yields an empty, non-nil slice so that JSON responses render "[]".
func Map[T any, U any](input []T, transform func(T) U) []U {
	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}

	return result
}

// Filter returns the elements for which the predicate holds.
//
// The result is never nil.
func Filter[T any](input []T, predicate func(T) bool) []T {
	result := make([]T, 0, len(input))
	for _, v := range input {
		if predicate(v) {
			result = append(result, v)
		}
	}

	return result
}

// Reduce folds a slice into a single accumulated result using the reducer function.
func Reduce[T any, U any](input []T, initial U, reducer func(accumulator U, current T) U) U {
	result := initial
	for _, v := range input {
		result = reducer(result, v)
	}
	return result
}

// Count returns how many elements satisfy the predicate.
func Count[T any](input []T, predicate func(T) bool) int {
	return Reduce(input, 0, func(total int, current T) int {
		if predicate(current) {
			return total + 1
		}
		return total
	})
}

// Find returns a pointer to the first element satisfying the predicate, or nil.
//
// The pointer aliases the slice's backing array, so writes through it are
// visible to the caller's slice.
func Find[T any](input []T, predicate func(T) bool) *T {
	for i := range input {
		if predicate(input[i]) {
			return &input[i]
		}
	}
	return nil
}
