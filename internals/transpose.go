package internals

// TransposedEntry pairs the parent folders and filenames of one Duplicate
// Group, index by index: Parents[i] and Names[i] both come from the i-th
// member of that group. Parents may contain repeats (C4, spec.md §4.4).
type TransposedEntry struct {
	Parents [][]string
	Names   []string
}

// TransposeFolderSets turns each Duplicate Group into a TransposedEntry,
// preserving C3's emission order.
func TransposeFolderSets(groups []DuplicateGroup) []TransposedEntry {
	entries := make([]TransposedEntry, 0, len(groups))
	for _, group := range groups {
		entry := TransposedEntry{
			Parents: make([][]string, len(group)),
			Names:   make([]string, len(group)),
		}
		for i, record := range group {
			entry.Parents[i] = record.Parent
			entry.Names[i] = record.Name
		}
		entries = append(entries, entry)
	}
	return entries
}
