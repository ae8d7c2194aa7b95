package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yoook/FindSimilarFolders/internals"
)

// DuplicateFilesCommand defines the CLI command parameters
type DuplicateFilesCommand struct {
	IndexFiles   []string `json:"index-files"`
	OutputFile   string   `json:"output-file"`
	Overwrite    bool     `json:"overwrite"`
	ConfigOutput bool     `json:"config"`
	JSONOutput   bool     `json:"json"`
}

var duplicateFilesCommand *DuplicateFilesCommand

var duplicateFilesCmd = &cobra.Command{
	Use:     "duplicateFiles <index-file>... <output-file>",
	Aliases: []string{"df"},
	Short:   "Report exact duplicate files across one or more indexes",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return fmt.Errorf(`duplicateFiles requires at least one index file and one output file`)
		}
		duplicateFilesCommand = &DuplicateFilesCommand{
			IndexFiles:   args[:len(args)-1],
			OutputFile:   args[len(args)-1],
			Overwrite:    argOverwrite,
			ConfigOutput: argConfigOutput,
			JSONOutput:   argJSONOutput,
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		exitCode, cmdError = duplicateFilesCommand.Run(w)
	},
}

func init() {
	rootCmd.AddCommand(duplicateFilesCmd)
}

// Run executes duplicateFiles: C2 load → C3 group → C10 write.
func (c *DuplicateFilesCommand) Run(w Output) (int, error) {
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
	groups := internals.GroupDuplicateFiles(records)

	f, err := os.OpenFile(c.OutputFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return 2, &internals.ErrOutputSinkFailure{Err: err}
	}
	defer f.Close()

	if err := internals.WriteDuplicateFileReport(f, groups); err != nil {
		return 2, err
	}

	msg := fmt.Sprintf("found %d duplicate-file groups, written to %s", len(groups), c.OutputFile)
	if c.JSONOutput {
		type output struct {
			Message string `json:"message"`
			Groups  int    `json:"groups"`
		}
		b, err := json.Marshal(output{Message: msg, Groups: len(groups)})
		if err != nil {
			return 6, fmt.Errorf(resultJSONErrMsg, err)
		}
		w.Println(string(b))
	} else {
		w.Println(msg)
	}

	return 0, nil
}
