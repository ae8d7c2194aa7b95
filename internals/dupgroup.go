package internals

import "sort"

// DuplicateGroup is a non-empty, sorted sequence of records sharing a
// fingerprint. Always has at least 2 members; sorted by (parent, name).
type DuplicateGroup []Record

// GroupDuplicateFiles stable-sorts records by fingerprint and emits each
// maximal run of ≥2 records sharing a fingerprint as a DuplicateGroup,
// itself sorted by (parent, name) (C3, spec.md §4.3).
func GroupDuplicateFiles(records []Record) []DuplicateGroup {
	if len(records) == 0 {
		return nil
	}

	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Fingerprint() < sorted[j].Fingerprint()
	})

	var groups []DuplicateGroup
	runStart := 0
	for i := 1; i <= len(sorted); i++ {
		if i < len(sorted) && sorted[i].Fingerprint() == sorted[runStart].Fingerprint() {
			continue
		}
		if i-runStart >= 2 {
			group := make(DuplicateGroup, i-runStart)
			copy(group, sorted[runStart:i])
			sort.Slice(group, func(a, b int) bool {
				return ComparePathName(group[a].Parent, group[a].Name, group[b].Parent, group[b].Name) < 0
			})
			groups = append(groups, group)
		}
		runStart = i
	}

	return groups
}
