package main

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/aikeyboard/xcfix"
	"github.com/aikeyboard/xcfix/cmd"
	"github.com/aikeyboard/xcfix/cmd/xcfix/cli"
	"github.com/aikeyboard/xcfix/log"
)

const banner = "iOS Build Cycle Fix"

type fixCmd struct {
	Logger *log.DefaultLogger

	projectPath string
	reportPath  string
	dryRun      bool
}

// DefineFlags defines the flags that are considered valid and reads their values (if provided).
func (f *fixCmd) DefineFlags() {
	cli.FlagProjectPath(&f.projectPath)
	cli.FlagReportPath(&f.reportPath)
	cli.FlagDryRun(&f.dryRun)
}

// Args validates arguments and flags, and fills in default values.
func (f *fixCmd) Args(nargs int, _ []string) error {
	if nargs != 0 {
		return cmd.FailErrCode(errors.New("received unexpected arguments"), cmd.CodeInvalidArgs, "parse arguments")
	}
	if f.projectPath == "" {
		return cmd.FailErrCode(errors.New("-project is required"), cmd.CodeInvalidArgs, "parse arguments")
	}
	return nil
}

func (f *fixCmd) Exec() error {
	f.Logger.Header(banner)
	f.Logger.Info(strings.Repeat("=", 50))

	fixer := xcfix.NewFixer(f.projectPath, f.Logger)
	if f.dryRun {
		return f.preview(fixer)
	}

	result, err := fixer.Fix()
	if err != nil {
		return f.fixError(err)
	}

	if result.Changed {
		f.Logger.Success("\nBUILD CYCLE FIXES APPLIED SUCCESSFULLY!")
	}
	xcfix.LogSummary(f.Logger, result)
	return f.writeReport(result)
}

func (f *fixCmd) preview(fixer *xcfix.Fixer) error {
	result, diff, err := fixer.Preview()
	if err != nil {
		return f.fixError(err)
	}
	if diff != "" {
		f.Logger.Info("\n" + diff)
	}
	xcfix.LogSummary(f.Logger, result)
	return f.writeReport(result)
}

func (f *fixCmd) fixError(err error) error {
	if errors.Is(err, xcfix.ErrProjectNotFound) {
		return cmd.FailErrCode(err, cmd.CodeNotFound, "find project file")
	}
	var stageErr *xcfix.StageError
	if errors.As(err, &stageErr) {
		if stageErr.Restored {
			f.Logger.Warnf("Project file restored from %s", stageErr.BackupPath)
			return cmd.FailErrCode(err, cmd.CodeRestored, "fix build cycle")
		}
		f.Logger.Warnf("Project file may be partially patched, restore it manually:\n   cp %s %s", stageErr.BackupPath, f.projectPath)
	}
	return cmd.FailErr(err, "fix build cycle")
}

func (f *fixCmd) writeReport(result *xcfix.Result) error {
	if f.reportPath == "" {
		return nil
	}
	if err := xcfix.WriteReport(f.reportPath, result); err != nil {
		return cmd.FailErr(err, "write report")
	}
	f.Logger.Debugf("Report written to %s", f.reportPath)
	return nil
}
