package internals

import "sort"

// FolderGroup records that every folder in Parents contains mutually
// identical files: the j-th element of Names is one such set of filenames,
// one per folder in Parents, all lists sharing |Parents| length (C5,
// spec.md §3). Parents is unique across distinct Folder Groups (P3).
type FolderGroup struct {
	Parents [][]string
	Names   [][]string
}

// CollapseFolderGroups sorts Transposed Entries by their Parents vector
// (component-wise) and run-length merges adjacent entries with equal
// Parents into one Folder Group, concatenating their Names lists while
// preserving the parallel index into Parents (C5, spec.md §4.5).
func CollapseFolderGroups(entries []TransposedEntry) []FolderGroup {
	if len(entries) == 0 {
		return nil
	}

	sorted := make([]TransposedEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return ComparePathVectors(sorted[i].Parents, sorted[j].Parents) < 0
	})

	groups := make([]FolderGroup, 0, len(sorted))
	current := FolderGroup{
		Parents: sorted[0].Parents,
		Names:   [][]string{sorted[0].Names},
	}
	for i := 1; i < len(sorted); i++ {
		if ComparePathVectors(sorted[i].Parents, current.Parents) == 0 {
			current.Names = append(current.Names, sorted[i].Names)
			continue
		}
		groups = append(groups, current)
		current = FolderGroup{
			Parents: sorted[i].Parents,
			Names:   [][]string{sorted[i].Names},
		}
	}
	groups = append(groups, current)

	return groups
}
