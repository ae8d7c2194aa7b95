package internals

// BuildInvertedIndex groups records by hash and returns, for each hash, the
// set of folder-path-keys (see pathKey) where that hash was seen anywhere
// in the index, together with how many files at that folder carry the
// hash. This is the hash->{paths} inverted index the Statistics Pass (C9)
// needs to populate each node's dup-candidate set (spec.md §4.10); it
// adapts digest_data.go's packed-digest-table idea (dedupe a huge multiset
// of digests in one pass, grow append-only) from a byte-packed disk format
// to a string-keyed in-memory map, since folder paths rather than byte
// offsets are the identity this tool indexes by. Building it is O(total
// records), matching the memory-discipline note in spec.md §5.
func BuildInvertedIndex(records []Record) map[string]map[string]int {
	index := make(map[string]map[string]int)
	for _, r := range records {
		key := pathKey(r.Parent)
		folders, ok := index[r.Hash]
		if !ok {
			folders = make(map[string]int)
			index[r.Hash] = folders
		}
		folders[key]++
	}
	return index
}
