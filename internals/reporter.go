package internals

import (
	"bufio"
	"fmt"
	"io"
)

// WriteDuplicateFileReport formats Duplicate Groups as specified in
// spec.md §4.8: a blank line, the fingerprint line (right-justified size,
// TAB, hash), then one line per duplicate of the form
// "mtime(10.4f) \t name \t parent". Output order equals the input order.
func WriteDuplicateFileReport(w io.Writer, groups []DuplicateGroup) error {
	buf := bufio.NewWriter(w)
	for _, group := range groups {
		if len(group) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(buf, "\n%*s\t%s\n", FingerprintSizeWidth, group[0].Size, group[0].Hash); err != nil {
			return &ErrOutputSinkFailure{Err: err}
		}
		for _, r := range group {
			if _, err := fmt.Fprintf(buf, "%10.4f\t%s\t%s\n", r.MTime, r.Name, JoinPath(r.Parent, "")); err != nil {
				return &ErrOutputSinkFailure{Err: err}
			}
		}
	}
	if err := buf.Flush(); err != nil {
		return &ErrOutputSinkFailure{Err: err}
	}
	return nil
}

// WriteSimilarFoldersReport formats Folder Pairs as specified in spec.md
// §4.11: two lines with the two folder paths, a "--------" separator, one
// line per file pair "nameA \t nameB", then a blank line. Output order
// equals C7's emission order.
func WriteSimilarFoldersReport(w io.Writer, pairs []FolderPair) error {
	buf := bufio.NewWriter(w)
	for _, pair := range pairs {
		_, err := fmt.Fprintf(buf, "%s\n%s\n--------\n",
			JoinPath(pair.Pair.FolderA, ""), JoinPath(pair.Pair.FolderB, ""))
		if err != nil {
			return &ErrOutputSinkFailure{Err: err}
		}
		for _, fp := range pair.Files {
			if _, err := fmt.Fprintf(buf, "%s\t%s\n", fp.NameA, fp.NameB); err != nil {
				return &ErrOutputSinkFailure{Err: err}
			}
		}
		if _, err := fmt.Fprint(buf, "\n"); err != nil {
			return &ErrOutputSinkFailure{Err: err}
		}
	}
	if err := buf.Flush(); err != nil {
		return &ErrOutputSinkFailure{Err: err}
	}
	return nil
}
