package xcfix

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/aikeyboard/xcfix/internal/io"
)

// Preview runs the stages against a scratch copy of the project file and returns a
// unified diff of what Fix would change. The project file is not touched and no backup
// is taken.
func (f *Fixer) Preview() (*Result, string, error) {
	if err := f.checkProject(); err != nil {
		return nil, "", err
	}

	tmpDir, err := os.MkdirTemp("", "xcfix-preview-")
	if err != nil {
		return nil, "", errors.Wrap(err, "creating scratch directory")
	}
	defer os.RemoveAll(tmpDir)

	scratch := filepath.Join(tmpDir, filepath.Base(f.ProjectPath))
	if err := io.Copy(f.ProjectPath, scratch); err != nil {
		return nil, "", errors.Wrapf(err, "copying %s", f.ProjectPath)
	}

	result := &Result{ProjectPath: f.ProjectPath, DryRun: true}
	for i, stage := range f.Stages {
		changed, err := f.runStage(i+1, stage, scratch)
		if err != nil {
			return nil, "", errors.Wrapf(err, "patch %s", stage.Name())
		}
		result.record(stage.Name(), changed)
	}

	diff, err := unifiedDiff(f.ProjectPath, scratch)
	if err != nil {
		return nil, "", err
	}
	return result, diff, nil
}

func unifiedDiff(original, patched string) (string, error) {
	before, err := io.ReadFile(original)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", original)
	}
	after, err := io.ReadFile(patched)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", patched)
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: original,
		ToFile:   original + " (patched)",
		Context:  3,
	})
}
