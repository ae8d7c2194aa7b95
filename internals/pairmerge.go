package internals

import "sort"

// FolderPair is a single ordered pair of folders with the file-pairs they
// share. Unique across distinct FolderPair values in a Pair Merger's
// output (P5).
type FolderPair struct {
	Pair  FolderPairKey
	Files []FilePair
}

func compareFolderPairKey(a, b FolderPairKey) int {
	if c := ComparePathComponents(a.FolderA, b.FolderA); c != 0 {
		return c
	}
	return ComparePathComponents(a.FolderB, b.FolderB)
}

// MergePairs sorts proto-entries by folder pair and merges consecutive
// entries sharing the same pair by extending the filename-pair list (C7,
// spec.md §4.7). Output is deduplicated by folder pair; file-pair lists
// keep input order with no internal sort or dedup — per SPEC_FULL.md's
// Open Question decision, a file identical in name on both sides of
// several duplicate rows is listed once per row, not collapsed, matching
// the original implementation's literal list-extend behavior.
func MergePairs(protos []PairProtoEntry) []FolderPair {
	if len(protos) == 0 {
		return nil
	}
	if len(protos) == 1 {
		return []FolderPair{{Pair: protos[0].Pair, Files: protos[0].Files}}
	}

	sorted := make([]PairProtoEntry, len(protos))
	copy(sorted, protos)
	sort.SliceStable(sorted, func(i, j int) bool {
		return compareFolderPairKey(sorted[i].Pair, sorted[j].Pair) < 0
	})

	merged := make([]FolderPair, 0, len(sorted))
	current := FolderPair{Pair: sorted[0].Pair, Files: append([]FilePair(nil), sorted[0].Files...)}
	for i := 1; i < len(sorted); i++ {
		if compareFolderPairKey(sorted[i].Pair, current.Pair) == 0 {
			current.Files = append(current.Files, sorted[i].Files...)
			continue
		}
		merged = append(merged, current)
		current = FolderPair{Pair: sorted[i].Pair, Files: append([]FilePair(nil), sorted[i].Files...)}
	}
	merged = append(merged, current)

	return merged
}
