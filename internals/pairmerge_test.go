package internals

import "testing"

func TestMergePairsMergesSharedKey(t *testing.T) {
	key := FolderPairKey{FolderA: []string{"a"}, FolderB: []string{"b"}}
	protos := []PairProtoEntry{
		{Pair: key, Files: []FilePair{{NameA: "x1.txt", NameB: "y1.txt"}}},
		{Pair: key, Files: []FilePair{{NameA: "x2.txt", NameB: "y2.txt"}}},
	}
	merged := MergePairs(protos)
	if len(merged) != 1 {
		t.Fatalf("expected 1 merged pair, got %d", len(merged))
	}
	if len(merged[0].Files) != 2 {
		t.Errorf("expected 2 merged file pairs, got %d", len(merged[0].Files))
	}
}

func TestMergePairsNoDedup(t *testing.T) {
	key := FolderPairKey{FolderA: []string{"a"}, FolderB: []string{"b"}}
	protos := []PairProtoEntry{
		{Pair: key, Files: []FilePair{{NameA: "x.txt", NameB: "y.txt"}}},
		{Pair: key, Files: []FilePair{{NameA: "x.txt", NameB: "y.txt"}}},
	}
	merged := MergePairs(protos)
	if len(merged) != 1 || len(merged[0].Files) != 2 {
		t.Fatalf("expected identical file pairs to be kept, not deduplicated: %+v", merged)
	}
}

func TestMergePairsDistinctKeys(t *testing.T) {
	protos := []PairProtoEntry{
		{Pair: FolderPairKey{FolderA: []string{"a"}, FolderB: []string{"b"}}, Files: []FilePair{{NameA: "x", NameB: "y"}}},
		{Pair: FolderPairKey{FolderA: []string{"a"}, FolderB: []string{"c"}}, Files: []FilePair{{NameA: "x", NameB: "z"}}},
	}
	merged := MergePairs(protos)
	if len(merged) != 2 {
		t.Fatalf("expected 2 distinct pairs, got %d", len(merged))
	}
}

func TestMergePairsEmpty(t *testing.T) {
	if merged := MergePairs(nil); merged != nil {
		t.Errorf("expected nil for empty input, got %v", merged)
	}
}
