package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/yoook/FindSimilarFolders/internals"
)

// SimilarFoldersCommand defines the CLI command parameters
type SimilarFoldersCommand struct {
	IndexFiles   []string `json:"index-files"`
	OutputFile   string   `json:"output-file"`
	Verbose      int      `json:"verbose"`
	Overwrite    bool     `json:"overwrite"`
	ConfigOutput bool     `json:"config"`
	JSONOutput   bool     `json:"json"`
}

// reportProgress logs a "<stage>: N items, S in use" line at verbosity
// >= 1, once per finished pipeline stage, in place of find_similar_folders'
// \r-rewritten progress lines in the original implementation. S is the Go
// heap in use (runtime.MemStats.Alloc), not the process RSS, and no
// percentage-complete figure is reported.
func reportProgress(log Output, verbose int, stage string, items int) {
	if verbose < 1 {
		return
	}
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	log.Printfln("%s: %d items, %s in use", stage, items, humanize.Bytes(mem.Alloc))
}

var similarFoldersCommand *SimilarFoldersCommand

var similarFoldersCmd = &cobra.Command{
	Use:     "similarFolders <index-file>... <output-file>",
	Aliases: []string{"sf"},
	Short:   "Report folders whose contents substantially overlap",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return fmt.Errorf(`similarFolders requires at least one index file and one output file`)
		}
		similarFoldersCommand = &SimilarFoldersCommand{
			IndexFiles:   args[:len(args)-1],
			OutputFile:   args[len(args)-1],
			Verbose:      argVerbose,
			Overwrite:    argOverwrite,
			ConfigOutput: argConfigOutput,
			JSONOutput:   argJSONOutput,
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		exitCode, cmdError = similarFoldersCommand.Run(w, log)
	},
}

func init() {
	rootCmd.AddCommand(similarFoldersCmd)
}

// Run executes similarFolders: C2 → C3 → C4 → C5 → C6 → C7 → C10.
func (c *SimilarFoldersCommand) Run(w, log Output) (int, error) {
	if c.ConfigOutput {
		b, err := json.Marshal(c)
		if err != nil {
			return 6, fmt.Errorf(configJSONErrMsg, err)
		}
		w.Println(string(b))
		return 0, nil
	}

	_, statErr := os.Stat(c.OutputFile)
	if statErr == nil && !c.Overwrite {
		return 3, fmt.Errorf(existsErrMsg, c.OutputFile)
	}

	records, err := internals.LoadIndex(c.IndexFiles)
	if err != nil {
		return 2, err
	}
	reportProgress(log, c.Verbose, "loaded index", len(records))

	dupGroups := internals.GroupDuplicateFiles(records)
	reportProgress(log, c.Verbose, "grouped duplicate files", len(dupGroups))
	transposed := internals.TransposeFolderSets(dupGroups)
	folderGroups := internals.CollapseFolderGroups(transposed)
	reportProgress(log, c.Verbose, "collapsed folder groups", len(folderGroups))
	protoPairs := internals.ExpandPairs(folderGroups)
	reportProgress(log, c.Verbose, "expanded folder pairs", len(protoPairs))
	pairs := internals.MergePairs(protoPairs)
	reportProgress(log, c.Verbose, "merged folder pairs", len(pairs))

	f, err := os.OpenFile(c.OutputFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return 2, &internals.ErrOutputSinkFailure{Err: err}
	}
	defer f.Close()

	if err := internals.WriteSimilarFoldersReport(f, pairs); err != nil {
		return 2, err
	}

	msg := fmt.Sprintf("found %d similar-folder pairs, written to %s", len(pairs), c.OutputFile)
	if c.JSONOutput {
		type output struct {
			Message string `json:"message"`
			Pairs   int    `json:"pairs"`
		}
		b, err := json.Marshal(output{Message: msg, Pairs: len(pairs)})
		if err != nil {
			return 6, fmt.Errorf(resultJSONErrMsg, err)
		}
		w.Println(string(b))
	} else {
		w.Println(msg)
	}

	return 0, nil
}
