package main

import "github.com/fatih/color"

// Progress coloring replaces fsf_core.py's hand-rolled ANSI escapes
// (\033[93m folder, \033[94m skip, \033[91m error) with fatih/color, which
// also handles NO_COLOR/non-tty detection for us. Each wraps an
// already-formatted line, rather than taking a format string itself.
var (
	colorFolder = color.New(color.FgYellow).SprintFunc()
	colorSkip   = color.New(color.FgCyan).SprintFunc()
	colorError  = color.New(color.FgRed).SprintFunc()
)
