package internals

// FolderPairKey identifies an unordered pair of folders, canonicalized so
// that FolderA sorts before FolderB by component-wise comparison. Per
// SPEC_FULL.md's Open Question decision, ordering is canonical (min, max)
// rather than emission order, so that two Folder Groups which encountered
// the same two folders in opposite order still collapse to one pair in C7.
type FolderPairKey struct {
	FolderA []string
	FolderB []string
}

// FilePair is one pair of identical filenames, one living in FolderA, the
// other in FolderB of the enclosing entry.
type FilePair struct {
	NameA string
	NameB string
}

// PairProtoEntry is one un-merged expansion of a Folder Group: a single
// folder pair together with the filename pairs the expansion step produced
// for it. Multiple proto-entries may share a FolderPairKey; C7 merges them.
type PairProtoEntry struct {
	Pair  FolderPairKey
	Files []FilePair
}

// ExpandPairs breaks each Folder Group of k folders into all C(k,2) ordered
// pairs (C6, spec.md §4.6). This is the dominant memory/time sink of the
// pipeline: O(k²·m) per group, m the number of duplicate rows. spec.md §9
// documents three re-architecture options for groups with very large k
// (disk-backed spill, a k-threshold cutoff reporting the k-way group as-is,
// or a similarity-matrix-with-count-only report); none is implemented here
// per spec.md's "do not guess" instruction on open questions — callers
// processing forensic archives with pathological fan-in should pre-filter
// Folder Groups by k before calling ExpandPairs.
func ExpandPairs(groups []FolderGroup) []PairProtoEntry {
	var protos []PairProtoEntry

	for _, group := range groups {
		k := len(group.Parents)
		for i := 0; i < k; i++ {
			for j := i + 1; j < k; j++ {
				folderA, folderB := group.Parents[i], group.Parents[j]
				swap := ComparePathComponents(folderA, folderB) > 0

				files := make([]FilePair, len(group.Names))
				for row, names := range group.Names {
					if swap {
						files[row] = FilePair{NameA: names[j], NameB: names[i]}
					} else {
						files[row] = FilePair{NameA: names[i], NameB: names[j]}
					}
				}

				pair := FolderPairKey{FolderA: folderA, FolderB: folderB}
				if swap {
					pair = FolderPairKey{FolderA: folderB, FolderB: folderA}
				}
				protos = append(protos, PairProtoEntry{Pair: pair, Files: files})
			}
		}
	}

	return protos
}
