package internals

import (
	"fmt"
	"os"
	"path/filepath"
)

// FolderRecord is one line of a collectFolders listing: a serial number,
// the folder's path, how many directory entries it has, and (unless fast
// mode is requested) how many of those entries this process could actually
// stat without any error (SPEC_FULL.md §3.2, grounded on
// fsf_core.py's collect_folders).
type FolderRecord struct {
	Serial     int
	Path       string
	NumEntries int
	// NumReadable is -1 in fast mode, where collectFolders skips the
	// per-entry stat pass entirely.
	NumReadable int
}

// Line renders a FolderRecord in collectFolders' canonical tab-separated
// format.
func (f FolderRecord) Line() string {
	return fmt.Sprintf("%d\t%s\t%d\t%d", f.Serial, f.Path, f.NumEntries, f.NumReadable)
}

// CollectFolders walks root and emits one FolderRecord per directory found,
// numbered sequentially starting at startSerial. In fast mode it reports
// NumEntries from the directory listing alone and sets NumReadable to -1,
// skipping the per-entry os.Stat pass collect_folders otherwise performs to
// count how many entries are actually readable.
func CollectFolders(root string, opts TraversalOptions, startSerial int, fast bool, hooks WalkHooks) ([]FolderRecord, error) {
	var out []FolderRecord
	serial := startSerial
	gate := newStartGate(opts)

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if isPermissionError(err) {
				hooks.skipDir(path, "permission denied")
				return nil
			}
			hooks.errorf(path, err)
			return nil
		}
		if !info.IsDir() {
			return nil
		}
		if path != root && excludedTree(path, opts.Excludes) {
			hooks.skipDir(path, "excluded")
			return filepath.SkipDir
		}
		if !gate.admit(path) {
			return nil
		}

		entries, readErr := os.ReadDir(path)
		if readErr != nil {
			hooks.errorf(path, readErr)
			return nil
		}

		numReadable := -1
		if !fast {
			numReadable = 0
			for _, e := range entries {
				if _, statErr := os.Stat(filepath.Join(path, e.Name())); statErr == nil {
					numReadable++
				}
			}
		}

		hooks.enterDir(path)
		out = append(out, FolderRecord{
			Serial:      serial,
			Path:        relativize(path, opts.RelativeTo),
			NumEntries:  len(entries),
			NumReadable: numReadable,
		})
		serial++
		return nil
	})

	return out, err
}
