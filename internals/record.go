package internals

import (
	"fmt"
	"strconv"
	"strings"
)

// FingerprintSizeWidth is the right-justification width used when building
// a Record's Fingerprint. 20 digits comfortably covers any uint64 file size.
const FingerprintSizeWidth = 20

// IndexSizeWidth is the right-justification width of the size field in an
// emitted index line (create_index's default size_digits).
const IndexSizeWidth = 13

// Record is the parsed form of one index line: size \t mtime \t hash \t path.
// Size is kept as its trimmed textual form (not parsed to an integer) per
// spec.md §3, so that Fingerprint can right-justify it for stable sorting
// without reintroducing the padding the walker originally wrote.
type Record struct {
	Size   string
	MTime  float64
	Hash   string
	Parent []string
	Name   string
}

// ParseRecord parses one index line into a Record. A line must split into
// exactly four TAB-separated fields; the split limit of four preserves
// embedded TABs in the final (path) field.
func ParseRecord(line string) (Record, error) {
	fields := strings.SplitN(line, "\t", 4)
	if len(fields) != 4 {
		return Record{}, fmt.Errorf(`expected 4 tab-separated fields, got %d`, len(fields))
	}

	size := strings.TrimSpace(fields[0])
	if _, err := strconv.ParseUint(size, 10, 64); err != nil {
		return Record{}, fmt.Errorf(`size field '%s' is not a non-negative integer: %w`, size, err)
	}

	mtime, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return Record{}, fmt.Errorf(`mtime field '%s' is not a float: %w`, fields[1], err)
	}

	hash := strings.TrimSpace(fields[2])
	parent, name := SplitPath(fields[3])

	return Record{
		Size:   size,
		MTime:  mtime,
		Hash:   hash,
		Parent: parent,
		Name:   name,
	}, nil
}

// SplitPath decomposes a '/'-separated path into its parent components and
// its filename. An empty path denotes a file directly at the tree root.
func SplitPath(path string) (parent []string, name string) {
	if path == "" {
		return nil, ""
	}
	parts := strings.Split(path, "/")
	nonEmpty := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	if len(nonEmpty) == 0 {
		return nil, ""
	}
	return nonEmpty[:len(nonEmpty)-1], nonEmpty[len(nonEmpty)-1]
}

// JoinPath is the inverse of SplitPath.
func JoinPath(parent []string, name string) string {
	if name == "" {
		return strings.Join(parent, "/")
	}
	if len(parent) == 0 {
		return name
	}
	return strings.Join(parent, "/") + "/" + name
}

// Path returns this record's full path as parent/name.
func (r Record) Path() string {
	return JoinPath(r.Parent, r.Name)
}

// Fingerprint returns the "<size-padded-right-justified> <hash>" identity
// used to group duplicate files. Concatenating the padded size before the
// hash orders groups by size, per spec.md §3.
func (r Record) Fingerprint() string {
	return fmt.Sprintf("%*s %s", FingerprintSizeWidth, r.Size, r.Hash)
}

// Line renders this Record back into its canonical index-line form, with
// the size right-justified to IndexSizeWidth.
func (r Record) Line() string {
	return fmt.Sprintf("%*s\t%10.4f\t%s\t%s", IndexSizeWidth, r.Size, r.MTime, r.Hash, r.Path())
}
