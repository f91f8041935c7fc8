// Package xcfix breaks the build cycle between the Runner app and its KeyboardExtension
// by patching project.pbxproj as text.
package xcfix

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/aikeyboard/xcfix/log"
)

var ErrProjectNotFound = errors.New("project file not found")

type StageResult struct {
	Name    string `json:"name" toml:"name"`
	Changed bool   `json:"changed" toml:"changed"`
}

// Result describes a completed run.
type Result struct {
	ProjectPath string        `json:"project-path" toml:"project-path"`
	BackupPath  string        `json:"backup-path,omitempty" toml:"backup-path,omitempty"`
	DryRun      bool          `json:"dry-run" toml:"dry-run"`
	Changed     bool          `json:"changed" toml:"changed"`
	Stages      []StageResult `json:"stages" toml:"stages"`
}

func (r *Result) record(stage string, changed bool) {
	r.Stages = append(r.Stages, StageResult{Name: stage, Changed: changed})
	r.Changed = r.Changed || changed
}

// StageError is returned when a stage fails after the backup was taken.
type StageError struct {
	Stage      string
	BackupPath string
	// Restored reports whether the project file was put back from BackupPath.
	Restored bool
	Err      error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("patch %s: %s", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

type Fixer struct {
	ProjectPath string
	Stages      []Stage
	Logger      log.Logger
	Now         func() time.Time
}

func NewFixer(projectPath string, logger log.Logger) *Fixer {
	return &Fixer{
		ProjectPath: projectPath,
		Stages:      DefaultStages(),
		Logger:      logger,
		Now:         time.Now,
	}
}

// Fix backs up the project file and runs every stage against it in order. If a stage
// fails (or panics) the backup is copied back before Fix returns a *StageError. A failed
// restore is logged and not retried.
func (f *Fixer) Fix() (result *Result, err error) {
	timer := log.NewTimer("fix", f.Logger)
	defer timer.RecordEnd()

	if err := f.checkProject(); err != nil {
		return nil, err
	}

	backupPath, err := Backup(f.ProjectPath, f.Now())
	if err != nil {
		return nil, err
	}
	f.Logger.Infof("Backup created: %s", backupPath)

	var current string
	defer func() {
		if r := recover(); r != nil {
			result, err = nil, &StageError{Stage: current, BackupPath: backupPath, Err: fmt.Errorf("panic: %v", r)}
		}
		var stageErr *StageError
		if !errors.As(err, &stageErr) {
			return
		}
		f.Logger.Infof("Restoring from backup: %s", backupPath)
		if rErr := Restore(backupPath, f.ProjectPath); rErr != nil {
			f.Logger.Errorf("Restore failed: %s", rErr)
			return
		}
		stageErr.Restored = true
	}()

	result = &Result{ProjectPath: f.ProjectPath, BackupPath: backupPath}
	for i, stage := range f.Stages {
		current = stage.Name()
		changed, err := f.runStage(i+1, stage, f.ProjectPath)
		if err != nil {
			return nil, &StageError{Stage: current, BackupPath: backupPath, Err: err}
		}
		result.record(current, changed)
	}
	return result, nil
}

func (f *Fixer) runStage(n int, stage Stage, path string) (bool, error) {
	f.Logger.Infof("\n%d. Patching %s...", n, stage.Name())
	changed, err := stage.Apply(path)
	if err != nil {
		return false, err
	}
	if changed {
		f.Logger.Infof("Patched %s", stage.Name())
	} else {
		f.Logger.Warnf("No changes needed in %s", stage.Name())
	}
	return changed, nil
}

func (f *Fixer) checkProject() error {
	fi, err := os.Stat(f.ProjectPath)
	switch {
	case os.IsNotExist(err):
		return errors.Wrap(ErrProjectNotFound, f.ProjectPath)
	case err != nil:
		return errors.Wrapf(err, "checking %s", f.ProjectPath)
	case fi.IsDir():
		return errors.Errorf("%s is a directory, expected the project.pbxproj file", f.ProjectPath)
	}
	return nil
}
