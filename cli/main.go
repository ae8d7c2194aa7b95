package main

import (
	stdlog "log"
	"os"

	"github.com/spf13/cobra"
)

const (
	versionMajor = 1
	versionMinor = 0
	versionPatch = 0
)

// rootCmd is the entrypoint cobra.Command all subcommands attach to in
// their own init() functions, matching the teacher's per-file
// rootCmd.AddCommand(...) convention.
var rootCmd = &cobra.Command{
	Use:   "dupfolders",
	Short: "Find duplicate files and structurally similar folders",
	Long: `dupfolders indexes one or more filesystem trees, then reports
exact duplicate files and folders whose contents substantially overlap.

It operates in two phases: build an index (createIndex) or folder
listing (collectFolders) once, then run one or more analyses
(duplicateFiles, similarFolders, stats) against the saved index as many
times as needed without re-walking the filesystem.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&argVerbose, "verbose", "v", "increase progress output (repeatable, max 3)")
	rootCmd.PersistentFlags().StringSliceVar(&argExcludePath, "exclude-path", nil, "directory subtree to skip entirely (repeatable)")
	rootCmd.PersistentFlags().StringSliceVar(&argExcludePattern, "exclude-pattern", nil, "glob pattern matched against file basenames to skip (repeatable)")
	rootCmd.PersistentFlags().StringVar(&argStartWith, "start-with", "", "resume: suppress output until this path is reached (inclusive)")
	rootCmd.PersistentFlags().StringVar(&argStartAfter, "start-after", "", "resume: suppress output until this path is reached (exclusive)")
	rootCmd.PersistentFlags().StringVar(&argRelativeTo, "relative-to", "", "rewrite output paths relative to this base")
	rootCmd.PersistentFlags().StringVar(&argConfigFile, "config-file", envOr("DUPFOLDERS_CONFIG", ""), "YAML file with exclude-path/exclude-pattern lists")
	rootCmd.PersistentFlags().BoolVar(&argConfigOutput, "config", false, "print the resolved configuration instead of running")
	rootCmd.PersistentFlags().BoolVar(&argJSONOutput, "json", false, "emit machine-readable JSON instead of plain text")
	rootCmd.PersistentFlags().BoolVar(&argOverwrite, "overwrite", false, "overwrite an existing output file without asking")
	rootCmd.PersistentFlags().StringVar(&argLogFile, "log-file", envOr("DUPFOLDERS_LOG_FILE", ""), "append malformed-record and internal warnings to this file instead of stderr")

	w = &PlainOutput{Device: os.Stdout}
	log = &PlainOutput{Device: os.Stderr}
}

// openLogFile redirects the standard log package (used by
// internals.LoadIndex for malformed-record warnings) to argLogFile, when
// set, matching the teacher's plain log.Logger-to-file convention.
func openLogFile() func() {
	if argLogFile == "" {
		return func() {}
	}
	f, err := os.OpenFile(argLogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.Printfln("could not open --log-file '%s': %s", argLogFile, err)
		return func() {}
	}
	stdlog.SetOutput(f)
	return func() { f.Close() }
}

func main() {
	// The log file is opened once flags are parsed, so --log-file is honored
	// and not only its environment-variable default.
	closeLog := func() {}
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		closeLog = openLogFile()
	}
	defer func() { closeLog() }()

	if err := rootCmd.Execute(); err != nil {
		code := handleError(err.Error(), 1, argJSONOutput)
		os.Exit(code)
	}
	if cmdError != nil {
		code := handleError(cmdError.Error(), exitCode, argJSONOutput)
		os.Exit(code)
	}
	os.Exit(exitCode)
}
