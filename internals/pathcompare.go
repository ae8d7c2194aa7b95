package internals

import "strings"

// ComparePathComponents compares two path-component vectors component by
// component, NOT on the joined string, so that a directory "a" sorts before
// "a-b" the same way a tree traversal would (spec.md §4.3).
func ComparePathComponents(a, b []string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// ComparePathVectors compares two parallel vectors of paths (used to order
// Folder Groups by their Parents vector, spec.md §4.5) lexicographically,
// one folder at a time, falling back to length.
func ComparePathVectors(a, b [][]string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := ComparePathComponents(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// ComparePathName compares two (parent, name) pairs lexicographically: first
// by parent path components, then by name. Used by the Duplicate-File
// Grouper (C3) to order members within a group.
func ComparePathName(parentA []string, nameA string, parentB []string, nameB string) int {
	if c := ComparePathComponents(parentA, parentB); c != 0 {
		return c
	}
	switch {
	case nameA < nameB:
		return -1
	case nameA > nameB:
		return 1
	default:
		return 0
	}
}

// pathKey returns a map key that uniquely identifies a path-component
// vector, used to intern/dedupe folder paths (spec.md §5 memory discipline).
func pathKey(components []string) string {
	return strings.Join(components, "\x00/\x00")
}
