package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yoook/FindSimilarFolders/internals"
)

// CollectFoldersCommand defines the CLI command parameters
type CollectFoldersCommand struct {
	Root         string `json:"root"`
	OutputFile   string `json:"output-file"`
	Fast         bool   `json:"fast"`
	StartSerial  int    `json:"start-serial"`
	Verbose      int    `json:"verbose"`
	Overwrite    bool   `json:"overwrite"`
	ConfigOutput bool   `json:"config"`
	JSONOutput   bool   `json:"json"`
}

var collectFoldersCommand *CollectFoldersCommand
var argFast bool
var argStartSerial int

var collectFoldersCmd = &cobra.Command{
	Use:     "collectFolders <root> <output-file>",
	Aliases: []string{"cf"},
	Short:   "Walk a tree, emitting one line per folder with its file counts",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			return fmt.Errorf(`collectFolders requires exactly one root directory and one output file`)
		}
		if argFast && len(argExcludePattern) > 0 {
			return fmt.Errorf(`--fast and --exclude-pattern are mutually exclusive`)
		}
		collectFoldersCommand = &CollectFoldersCommand{
			Root:         args[0],
			OutputFile:   args[1],
			Fast:         argFast,
			StartSerial:  argStartSerial,
			Verbose:      argVerbose,
			Overwrite:    argOverwrite,
			ConfigOutput: argConfigOutput,
			JSONOutput:   argJSONOutput,
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		exitCode, cmdError = collectFoldersCommand.Run(w, log)
	},
}

func init() {
	rootCmd.AddCommand(collectFoldersCmd)
	collectFoldersCmd.Flags().BoolVar(&argFast, "fast", false, "skip the per-entry readability check (NumReadable reported as -1)")
	collectFoldersCmd.Flags().IntVar(&argStartSerial, "start-serial", 0, "first serial number to assign, for resuming a prior collection run")
}

// Run executes collectFolders: walk Root, writing one FolderRecord line per
// directory to OutputFile.
func (c *CollectFoldersCommand) Run(w, log Output) (int, error) {
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

	_, statErr := os.Stat(c.OutputFile)
	if statErr == nil && !c.Overwrite {
		return 3, fmt.Errorf(existsErrMsg, c.OutputFile)
	}

	hooks := hooksForVerbosity(c.Verbose, nil)
	records, err := internals.CollectFolders(c.Root, opts, c.StartSerial, c.Fast, hooks)
	if err != nil {
		return 2, err
	}

	f, err := os.OpenFile(c.OutputFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return 2, &internals.ErrOutputSinkFailure{Err: err}
	}
	defer f.Close()

	out := bufio.NewWriter(f)
	for _, rec := range records {
		if _, err := out.WriteString(rec.Line() + "\n"); err != nil {
			return 2, &internals.ErrOutputSinkFailure{Err: err}
		}
		if c.Verbose >= 3 {
			log.Println(colorSkip(rec.Line()))
		}
	}
	if err := out.Flush(); err != nil {
		return 2, &internals.ErrOutputSinkFailure{Err: err}
	}

	msg := fmt.Sprintf("wrote %d folders to %s", len(records), c.OutputFile)
	if c.JSONOutput {
		type output struct {
			Message string `json:"message"`
			Folders int    `json:"folders"`
		}
		b, err := json.Marshal(output{Message: msg, Folders: len(records)})
		if err != nil {
			return 6, fmt.Errorf(resultJSONErrMsg, err)
		}
		w.Println(string(b))
	} else {
		w.Println(msg)
	}

	return 0, nil
}
