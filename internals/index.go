package internals

import (
	"bufio"
	"log"
	"os"
)

// LoadIndex reads one or more index files and materializes their Records,
// in file order, then across files in the order given (C2). A file that
// cannot be opened aborts the pass with ErrCannotOpenIndex. A line that
// cannot be parsed is logged with file name and line number and skipped;
// parsing otherwise never fails (spec.md §7).
func LoadIndex(paths []string) ([]Record, error) {
	var records []Record

	for _, path := range paths {
		fd, err := os.Open(path)
		if err != nil {
			return nil, &ErrCannotOpenIndex{Path: path, Err: err}
		}

		lineNo := uint64(0)
		scanner := bufio.NewScanner(fd)
		scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
		for scanner.Scan() {
			lineNo++
			line := scanner.Text()
			if line == "" {
				continue
			}
			record, err := ParseRecord(line)
			if err != nil {
				log.Print(&ErrMalformedRecord{File: path, Line: lineNo, Err: err})
				continue
			}
			records = append(records, record)
		}
		scanErr := scanner.Err()
		fd.Close()
		if scanErr != nil {
			return nil, &ErrCannotOpenIndex{Path: path, Err: scanErr}
		}
	}

	return records, nil
}
