package cli

import (
	"os"

	"github.com/aikeyboard/xcfix/cmd"
)

const (
	EnvDryRun      = "XCFIX_DRY_RUN" // defaults to false
	EnvLogLevel    = "XCFIX_LOG_LEVEL"
	EnvNoColor     = "XCFIX_NO_COLOR" // defaults to false
	EnvProjectPath = "XCFIX_PROJECT_PATH"
	EnvReportPath  = "XCFIX_REPORT_PATH"
)

var (
	DefaultLogLevel    = "info"
	DefaultProjectPath = "/Users/kalyan/Ml_project/ai_keyboard/ios/Runner.xcodeproj/project.pbxproj"

	dryRun      = cmd.BoolEnv(EnvDryRun)
	logLevel    = cmd.EnvOrDefault(EnvLogLevel, DefaultLogLevel)
	noColor     = cmd.BoolEnv(EnvNoColor)
	projectPath = cmd.EnvOrDefault(EnvProjectPath, DefaultProjectPath)
	reportPath  = os.Getenv(EnvReportPath)
)
