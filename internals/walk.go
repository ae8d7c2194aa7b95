package internals

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// WalkHooks lets a caller observe createIndex's progress without coupling
// this package to any particular CLI output style (spec.md §4.1). All
// fields are optional; nil hooks are simply skipped.
type WalkHooks struct {
	OnEnterDir func(path string)
	OnSkipDir  func(path string, reason string)
	OnFile     func(path string)
	OnSkipFile func(path string, reason string)
	OnError    func(path string, err error)
}

func (h WalkHooks) enterDir(path string) {
	if h.OnEnterDir != nil {
		h.OnEnterDir(path)
	}
}

func (h WalkHooks) skipDir(path, reason string) {
	if h.OnSkipDir != nil {
		h.OnSkipDir(path, reason)
	}
}

func (h WalkHooks) file(path string) {
	if h.OnFile != nil {
		h.OnFile(path)
	}
}

func (h WalkHooks) skipFile(path, reason string) {
	if h.OnSkipFile != nil {
		h.OnSkipFile(path, reason)
	}
}

func (h WalkHooks) errorf(path string, err error) {
	if h.OnError != nil {
		h.OnError(path, err)
	}
}

// fileJob is the unit of work handed from the single-threaded directory
// walk to the hashing worker pool (grounded in hash_a_tree.go's producer/
// consumer split, generalized from a fixed hash registry to the pinned
// SHA-1 this tool always uses, per spec.md §3).
type fileJob struct {
	fullPath string
	relPath  []string
	name     string
	size     int64
	mtime    float64
}

// WalkIndex walks each of roots and emits one Record per regular file found
// (createIndex, spec.md §4.1). It returns a records channel and an errors
// channel; both are closed once every root has been fully walked and every
// hashing worker has drained its jobs. Errors on individual files (vanished
// between stat and open, unreadable) are reported through hooks.OnError and
// do not stop the walk. A root that cannot be read is reported the same way
// (through hooks.OnSkipDir when permission is denied), so in practice the
// error channel is closed without carrying any error.
func WalkIndex(roots []string, opts TraversalOptions, workers int, hooks WalkHooks) (<-chan Record, <-chan error) {
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan fileJob)
	records := make(chan Record)
	errs := make(chan error)

	var workerWG sync.WaitGroup
	workerWG.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer workerWG.Done()
			for job := range jobs {
				hash, err := hashFile(job.fullPath)
				if err != nil {
					hooks.errorf(job.fullPath, err)
					continue
				}
				records <- Record{
					Size:   fmt.Sprintf("%d", job.size),
					MTime:  job.mtime,
					Hash:   hash,
					Parent: job.relPath,
					Name:   job.name,
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		gate := newStartGate(opts)
		for _, root := range roots {
			if err := walkOneRoot(root, opts, gate, hooks, jobs); err != nil {
				errs <- err
			}
		}
	}()

	go func() {
		workerWG.Wait()
		close(records)
		close(errs)
	}()

	return records, errs
}

// walkOneRoot performs the single-threaded filepath.Walk traversal of one
// root directory, applying exclude trees, exclude patterns and the resume
// gate before handing regular files to the jobs channel (fsf_core.py's
// create_index, generalized over TraversalOptions).
func walkOneRoot(root string, opts TraversalOptions, gate *startGate, hooks WalkHooks, jobs chan<- fileJob) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if isPermissionError(err) {
				hooks.skipDir(path, "permission denied")
				return nil
			}
			hooks.errorf(path, err)
			return nil
		}

		if path != root && excludedTree(path, opts.Excludes) {
			if info.IsDir() {
				hooks.skipDir(path, "excluded")
				return filepath.SkipDir
			}
			hooks.skipFile(path, "excluded")
			return nil
		}

		if info.IsDir() {
			hooks.enterDir(path)
			return nil
		}

		if isSymlink(info) {
			hooks.skipFile(path, "symlink")
			return nil
		}
		if !info.Mode().IsRegular() {
			hooks.skipFile(path, "not a regular file")
			return nil
		}
		if excludedByPattern(path, opts.ExcludePatterns) {
			hooks.skipFile(path, "excluded pattern")
			return nil
		}
		if !gate.admit(path) {
			return nil
		}

		rel := relativize(filepath.Dir(path), opts.RelativeTo)
		parentComponents := splitClean(rel)

		hooks.file(path)
		jobs <- fileJob{
			fullPath: path,
			relPath:  parentComponents,
			name:     info.Name(),
			size:     info.Size(),
			mtime:    float64(info.ModTime().UnixNano()) / 1e9,
		}
		return nil
	})
}

// splitClean splits a slash-normalized relative directory path into
// non-empty components; "." (the relative-to base itself) yields no
// components, matching Record.Parent's convention for top-level files.
func splitClean(dir string) []string {
	dir = filepath.ToSlash(filepath.Clean(dir))
	if dir == "." || dir == "" {
		return nil
	}
	parts := make([]string, 0, 4)
	for _, p := range splitSlash(dir) {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

func splitSlash(s string) []string {
	out := make([]string, 0, 4)
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '/' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}

// hashFile computes the lowercase-hex SHA-1 digest of a file's contents,
// the fixed fingerprint algorithm spec.md §3 pins the wire format to.
func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha1.New()
	buf := make([]byte, 65536)
	if _, err := io.CopyBuffer(h, f, buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
