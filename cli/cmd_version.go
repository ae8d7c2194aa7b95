package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// VersionCommand defines the CLI command parameters
type VersionCommand struct {
	ConfigOutput bool `json:"config"`
	JSONOutput   bool `json:"json"`
}

// VersionJSONResult is a struct used to serialize JSON output
type VersionJSONResult struct {
	Version string `json:"version"`
	Author  string `json:"author"`
	Bugs    string `json:"bugs"`
}

var versionCommand *VersionCommand

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args: func(cmd *cobra.Command, args []string) error {
		versionCommand = &VersionCommand{
			ConfigOutput: argConfigOutput,
			JSONOutput:   argJSONOutput,
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		exitCode, cmdError = versionCommand.Run(w)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Run executes the version subcommand, writing its result to w.
func (c *VersionCommand) Run(w Output) (int, error) {
	if c.ConfigOutput {
		b, err := json.Marshal(c)
		if err != nil {
			return 6, fmt.Errorf(configJSONErrMsg, err)
		}
		w.Println(string(b))
		return 0, nil
	}

	data := VersionJSONResult{
		Version: fmt.Sprintf("%d.%d.%d", versionMajor, versionMinor, versionPatch),
		Author:  "yoook",
		Bugs:    "https://github.com/yoook/FindSimilarFolders/issues/",
	}

	if c.JSONOutput {
		jsonRepr, err := json.Marshal(&data)
		if err != nil {
			return 6, fmt.Errorf(resultJSONErrMsg, err)
		}
		w.Println(string(jsonRepr))
	} else {
		w.Printfln("version:      %s", data.Version)
		w.Printfln("author:       %s", data.Author)
		w.Printfln("report bugs:  %s", data.Bugs)
	}

	return 0, nil
}
