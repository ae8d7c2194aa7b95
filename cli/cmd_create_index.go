package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/yoook/FindSimilarFolders/internals"
)

// CreateIndexCommand defines the CLI command parameters
type CreateIndexCommand struct {
	Roots        []string `json:"roots"`
	IndexFile    string   `json:"index-file"`
	Workers      int      `json:"workers"`
	Verbose      int      `json:"verbose"`
	Overwrite    bool     `json:"overwrite"`
	ConfigOutput bool     `json:"config"`
	JSONOutput   bool     `json:"json"`
}

var createIndexCommand *CreateIndexCommand
var argWorkers int

var createIndexCmd = &cobra.Command{
	Use:     "createIndex <root>... <index-file>",
	Aliases: []string{"ci"},
	Short:   "Walk one or more trees, hash every regular file, write an index",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return fmt.Errorf(`createIndex requires at least one root directory and an index file`)
		}
		createIndexCommand = &CreateIndexCommand{
			Roots:        args[:len(args)-1],
			IndexFile:    args[len(args)-1],
			Workers:      argWorkers,
			Verbose:      argVerbose,
			Overwrite:    argOverwrite,
			ConfigOutput: argConfigOutput,
			JSONOutput:   argJSONOutput,
		}
		if createIndexCommand.Workers <= 0 {
			createIndexCommand.Workers = countCPUs()
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		exitCode, cmdError = createIndexCommand.Run(w, log)
	},
}

func init() {
	rootCmd.AddCommand(createIndexCmd)
	createIndexCmd.Flags().IntVar(&argWorkers, "workers", 0, "number of concurrent hashing workers (default: number of CPUs)")
}

// Run executes createIndex: walk Roots, hash every regular file found, and
// write one index line per file to IndexFile. An existing IndexFile is
// appended to when resuming (--start-with/--start-after) and truncated
// otherwise (which requires --overwrite).
func (c *CreateIndexCommand) Run(w, log Output) (int, error) {
	if c.ConfigOutput {
		b, err := json.Marshal(c)
		if err != nil {
			return 6, fmt.Errorf(configJSONErrMsg, err)
		}
		w.Println(string(b))
		return 0, nil
	}

	opts, err := buildTraversalOptions()
	if err != nil {
		return 1, err
	}

	_, statErr := os.Stat(c.IndexFile)
	exists := statErr == nil
	if exists && !c.Overwrite && opts.StartAt == "" {
		return 3, fmt.Errorf(existsErrMsg, c.IndexFile)
	}

	flags := os.O_WRONLY | os.O_CREATE
	if exists && opts.StartAt != "" {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(c.IndexFile, flags, 0644)
	if err != nil {
		return 2, &internals.ErrCannotOpenIndex{Path: c.IndexFile, Err: err}
	}
	defer f.Close()

	var estimate internals.WalkEstimate
	if c.Verbose >= 1 {
		for _, root := range c.Roots {
			est, estErr := internals.EstimateWalk(root, opts)
			if estErr != nil {
				log.Println(colorError(fmt.Sprintf("error: %s: %s", root, estErr)))
				continue
			}
			estimate.CountFiles += est.CountFiles
			estimate.CountFolders += est.CountFolders
			if est.MaxSize > estimate.MaxSize {
				estimate.MaxSize = est.MaxSize
			}
			if est.MaxDepth > estimate.MaxDepth {
				estimate.MaxDepth = est.MaxDepth
			}
		}
		log.Printfln("estimate: %s", estimate.String())
	}

	checkpoint := estimate.CountFiles / 10
	if checkpoint == 0 {
		checkpoint = 1
	}

	out := bufio.NewWriter(f)
	written := 0
	var totalBytes uint64
	hooks := hooksForVerbosity(c.Verbose, nil)

	records, errs := internals.WalkIndex(c.Roots, opts, c.Workers, hooks)

	for rec := range records {
		if _, err := out.WriteString(rec.Line() + "\n"); err != nil {
			return 2, &internals.ErrOutputSinkFailure{Err: err}
		}
		written++
		if size, err := strconv.ParseUint(rec.Size, 10, 64); err == nil {
			totalBytes += size
		}
		if c.Verbose >= 1 && estimate.CountFiles > 0 && uint32(written)%checkpoint == 0 {
			log.Printfln("hashed %d/%d files (%s written)", written, estimate.CountFiles, humanize.Bytes(totalBytes))
		}
		if c.Verbose >= 3 {
			log.Println(colorSkip(rec.Line()))
		}
	}
	for err := range errs {
		if err != nil {
			return 2, err
		}
	}

	if err := out.Flush(); err != nil {
		return 2, &internals.ErrOutputSinkFailure{Err: err}
	}

	msg := fmt.Sprintf("wrote %d records (%s) to %s", written, humanize.Bytes(totalBytes), c.IndexFile)
	if c.JSONOutput {
		type output struct {
			Message string `json:"message"`
			Records int    `json:"records"`
			Bytes   uint64 `json:"bytes"`
		}
		b, err := json.Marshal(output{Message: msg, Records: written, Bytes: totalBytes})
		if err != nil {
			return 6, fmt.Errorf(resultJSONErrMsg, err)
		}
		w.Println(string(b))
	} else {
		w.Println(msg)
	}

	return 0, nil
}
