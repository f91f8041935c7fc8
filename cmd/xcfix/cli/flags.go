package cli

import (
	"flag"
)

var flagSet = flag.NewFlagSet("xcfix", flag.ExitOnError)

func FlagDryRun(provided *bool) {
	flagSet.BoolVar(provided, "dry-run", dryRun, "print the edits as a diff without changing the project file")
}

func FlagLogLevel(provided *string) {
	flagSet.StringVar(provided, "log-level", logLevel, "logging level")
}

func FlagNoColor(provided *bool) {
	flagSet.BoolVar(provided, "no-color", noColor, "disable color output")
}

func FlagProjectPath(provided *string) {
	flagSet.StringVar(provided, "project", projectPath, "path to project.pbxproj")
}

func FlagReportPath(provided *string) {
	flagSet.StringVar(provided, "report", reportPath, "path to write a report of the run (.toml or .json)")
}

func FlagVersion(provided *bool) {
	flagSet.BoolVar(provided, "version", false, "show version")
}
