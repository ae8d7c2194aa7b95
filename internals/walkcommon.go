package internals

import (
	"os"
	"path/filepath"
)

// TraversalOptions collects the exclude/resume/relative-to parameters
// shared by the walker (internals/walk.go) and the folder collector
// (internals/collect.go), factored out of fsf_core.py's create_index and
// collect_folders, which duplicate this logic (SPEC_FULL.md §3.2).
type TraversalOptions struct {
	// Excludes lists directories whose entire subtree is skipped.
	Excludes []string
	// ExcludePatterns lists glob patterns matched against file basenames
	// (path/filepath.Match semantics, mirroring pathlib.Path.match).
	ExcludePatterns []string
	// StartAt resumes an interrupted run: traversal output is suppressed
	// until this path is reached. The walker compares it against file paths
	// only and the folder collector against folder paths only; a target of
	// the other kind is never reached, so all output stays suppressed.
	StartAt string
	// StartAfter, if true, excludes StartAt itself from the output;
	// otherwise StartAt is the first entry included.
	StartAfter bool
	// RelativeTo rewrites output paths relative to this base, when set.
	RelativeTo string
}

// startGate tracks the skip-until-StartAt state machine used by both
// create_index and collect_folders in the original implementation.
type startGate struct {
	target     string
	startAfter bool
	active     bool
}

func newStartGate(opts TraversalOptions) *startGate {
	return &startGate{
		target:     opts.StartAt,
		startAfter: opts.StartAfter,
		active:     opts.StartAt != "",
	}
}

// admit reports whether `path` should be processed, advancing the gate's
// state when `path` matches the resume target.
func (g *startGate) admit(path string) bool {
	if !g.active {
		return true
	}
	if samePath(path, g.target) {
		g.active = false
		return !g.startAfter
	}
	return false
}

func samePath(a, b string) bool {
	aAbs, errA := filepath.Abs(a)
	bAbs, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return aAbs == bAbs
}

// excludedTree reports whether `path` lies within one of opts.Excludes.
func excludedTree(path string, excludes []string) bool {
	for _, ex := range excludes {
		if samePath(path, ex) {
			return true
		}
	}
	return false
}

// excludedByPattern reports whether the basename of `path` matches any of
// the given glob patterns.
func excludedByPattern(path string, patterns []string) bool {
	base := filepath.Base(path)
	for _, pattern := range patterns {
		if ok, err := filepath.Match(pattern, base); err == nil && ok {
			return true
		}
	}
	return false
}

// relativize rewrites `path` relative to `base`, when base is non-empty;
// otherwise it returns path unchanged.
func relativize(path, base string) string {
	if base == "" {
		return path
	}
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}

// isSymlink reports whether fi describes a symbolic link; the walker never
// resolves or hashes symlinks (spec.md §1 Non-goals).
func isSymlink(fi os.FileInfo) bool {
	return fi.Mode()&os.ModeSymlink != 0
}
