package internals

import (
	"fmt"
	"os"
	"path/filepath"

	humanize "github.com/dustin/go-humanize"
)

// WalkEstimate summarizes a tree without reading file contents: createIndex
// runs this pre-evaluation pass first (at --verbose >= 1) so its progress
// reporting has a denominator (grounded on statistics.go's
// GenerateStatistics pre-evaluation pass,
// generalized from its own exclude-flag plumbing to the shared
// TraversalOptions).
type WalkEstimate struct {
	MaxSize      uint64
	MaxDepth     uint32
	CountFiles   uint32
	CountFolders uint32
}

func (s WalkEstimate) String() string {
	d, f := "dirs", "files"
	if s.CountFolders == 1 {
		d = "dir"
	}
	if s.CountFiles == 1 {
		f = "file"
	}
	return fmt.Sprintf("%d %s, %d %s, largest %s, max depth %d",
		s.CountFolders, d, s.CountFiles, f, humanize.Bytes(s.MaxSize), s.MaxDepth)
}

// EstimateWalk walks root without hashing anything, honoring the same
// exclude trees/patterns createIndex itself applies, and reports file/dir
// counts, the largest file size and the deepest path. Because it never
// reads file contents it runs far faster than WalkIndex and is meant to
// size a progress bar before the real hashing walk starts.
func EstimateWalk(root string, opts TraversalOptions) (WalkEstimate, error) {
	var stats WalkEstimate

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if isPermissionError(err) {
				if info != nil && info.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			return err
		}

		if path != root && excludedTree(path, opts.Excludes) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if info.IsDir() {
			stats.CountFolders++
		} else {
			if excludedByPattern(path, opts.ExcludePatterns) {
				return nil
			}
			stats.CountFiles++
			if size := uint64(info.Size()); size > stats.MaxSize {
				stats.MaxSize = size
			}
		}

		if depth := determineDepth(path); depth > stats.MaxDepth {
			stats.MaxDepth = depth
		}

		return nil
	})

	return stats, err
}
