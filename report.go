package xcfix

import (
	"path/filepath"
	"strings"

	"github.com/aikeyboard/xcfix/internal/encoding"
	"github.com/aikeyboard/xcfix/log"
)

// WriteReport records result at path, as JSON when path ends in .json and TOML otherwise.
func WriteReport(path string, result *Result) error {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return encoding.WriteJSON(path, result)
	}
	return encoding.WriteTOML(path, result)
}

// NextSteps are the manual follow-ups after a run that changed the project file.
func NextSteps(result *Result) []string {
	steps := []string{
		"Open Xcode and clean build folder (Cmd+Shift+K)",
		"Try building the project again",
	}
	if result.BackupPath != "" {
		steps = append(steps, "If issues persist, restore from backup:\n   cp "+result.BackupPath+" "+result.ProjectPath)
	}
	return steps
}

// LogSummary prints which stages changed the file and what to do next.
func LogSummary(logger log.Logger, result *Result) {
	if !result.Changed {
		logger.Warn("No changes were needed")
		return
	}
	for _, stage := range result.Stages {
		if stage.Changed {
			logger.Infof("  - %s", stage.Name)
		}
	}
	logger.Info("\nNext steps:")
	for i, step := range NextSteps(result) {
		logger.Infof("%d. %s", i+1, step)
	}
}
