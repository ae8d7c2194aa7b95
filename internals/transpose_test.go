package internals

import "testing"

func TestTransposeFolderSets(t *testing.T) {
	groups := []DuplicateGroup{
		{
			rec("10", "h1", []string{"a"}, "x.txt"),
			rec("10", "h1", []string{"b"}, "y.txt"),
		},
	}
	entries := TransposeFolderSets(groups)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if len(e.Parents) != 2 || len(e.Names) != 2 {
		t.Fatalf("expected 2 parents/names, got %d/%d", len(e.Parents), len(e.Names))
	}
	if e.Parents[0][0] != "a" || e.Parents[1][0] != "b" {
		t.Errorf("Parents = %v", e.Parents)
	}
	if e.Names[0] != "x.txt" || e.Names[1] != "y.txt" {
		t.Errorf("Names = %v", e.Names)
	}
}

func TestTransposeFolderSetsEmpty(t *testing.T) {
	if entries := TransposeFolderSets(nil); len(entries) != 0 {
		t.Errorf("expected 0 entries, got %d", len(entries))
	}
}
