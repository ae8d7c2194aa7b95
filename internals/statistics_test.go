package internals

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEstimateWalkCountsFilesAndFolders(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "a.txt"), []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "sub", "b.txt"), []byte("worldwide"), 0o644); err != nil {
		t.Fatal(err)
	}

	est, err := EstimateWalk(root, TraversalOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if est.CountFiles != 2 {
		t.Errorf("expected 2 files, got %d", est.CountFiles)
	}
	if est.CountFolders != 2 {
		t.Errorf("expected 2 folders (root + sub), got %d", est.CountFolders)
	}
	if est.MaxSize != 9 {
		t.Errorf("expected largest file size 9, got %d", est.MaxSize)
	}
	if est.MaxDepth < 1 {
		t.Errorf("expected max depth >= 1, got %d", est.MaxDepth)
	}
}

func TestEstimateWalkHonorsExcludes(t *testing.T) {
	root := t.TempDir()
	excluded := filepath.Join(root, "skip")
	if err := os.MkdirAll(excluded, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(excluded, "x.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "keep.txt"), []byte("keep"), 0o644); err != nil {
		t.Fatal(err)
	}

	est, err := EstimateWalk(root, TraversalOptions{Excludes: []string{excluded}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if est.CountFiles != 1 {
		t.Errorf("expected 1 file after excluding subtree, got %d", est.CountFiles)
	}
}

func TestEstimateWalkHonorsExcludePatterns(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "a.tmp"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "a.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	est, err := EstimateWalk(root, TraversalOptions{ExcludePatterns: []string{"*.tmp"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if est.CountFiles != 1 {
		t.Errorf("expected 1 file after excluding *.tmp, got %d", est.CountFiles)
	}
}

func TestWalkEstimateStringSingularPlural(t *testing.T) {
	one := WalkEstimate{CountFiles: 1, CountFolders: 1, MaxSize: 10, MaxDepth: 0}
	if got := one.String(); !strings.HasPrefix(got, "1 dir, 1 file, ") {
		t.Fatalf("expected singular dir/file in summary, got %q", got)
	}

	many := WalkEstimate{CountFiles: 2, CountFolders: 2, MaxSize: 10, MaxDepth: 0}
	if got := many.String(); !strings.HasPrefix(got, "2 dirs, 2 files, ") {
		t.Fatalf("expected plural dirs/files in summary, got %q", got)
	}
}
