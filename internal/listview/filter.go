// Package listview holds the one piece of logic every dashboard screen
// shares: deriving filtered views and summary counts from an authoritative
// collection, and tracking a selection for bulk actions. Everything here is
// pure and recomputed per render; the source collection is never mutated.
package listview

import "sort"

// All is the sentinel filter value meaning "no filter on this dimension".
const All = "all"

// Distinct extracts the filter dropdown values for one dimension: collect
// non-empty values, de-duplicate, sort lexicographically.
func Distinct[T any](items []T, key func(T) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, item := range items {
		v := key(item)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Predicate is one filter dimension.
type Predicate[T any] func(T) bool

// Matches builds a dimension predicate from a selected dropdown value.
// Selecting All (or nothing) contributes true unconditionally.
func Matches[T any](selected string, key func(T) string) Predicate[T] {
	if selected == "" || selected == All {
		return func(T) bool { return true }
	}
	return func(item T) bool { return key(item) == selected }
}

// Apply filters with a conjunction across every dimension, preserving the
// source order. A nil predicate contributes true.
func Apply[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		keep := true
		for _, pred := range preds {
			if pred != nil && !pred(item) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, item)
		}
	}
	return out
}

// Counts are the summary cards above each table.
type Counts struct {
	Total    int
	Active   int
	Inactive int
}

// Count re-scans the full collection. Collections here are small
// administrative datasets; a per-render scan is fine.
func Count[T any](items []T, active func(T) bool) Counts {
	c := Counts{Total: len(items)}
	for _, item := range items {
		if active(item) {
			c.Active++
		} else {
			c.Inactive++
		}
	}
	return c
}

// CountBy tallies items per key (e.g. applications per status).
func CountBy[T any](items []T, key func(T) string) map[string]int {
	out := make(map[string]int)
	for _, item := range items {
		out[key(item)]++
	}
	return out
}
