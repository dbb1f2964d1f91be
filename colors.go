package main

import "github.com/fatih/color"

// Color helpers for the CLI's help text and summary output, in the same
// style phredsort uses for its own help/usage printing.
var (
	bold   = color.New(color.Bold).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	green  = color.New(color.FgHiGreen).SprintFunc()
)
