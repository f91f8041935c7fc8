package xcfix

import (
	"github.com/pkg/errors"

	"github.com/aikeyboard/xcfix/internal/io"
	"github.com/aikeyboard/xcfix/internal/patch"
)

//go:generate mockgen -package testmock -destination testmock/stage.go github.com/aikeyboard/xcfix Stage

// Stage is one load-patch-store pass over the project file.
type Stage interface {
	// Name describes what the stage patches, e.g. "build phases order".
	Name() string
	// Apply patches the file at path in place and reports whether it changed.
	Apply(path string) (bool, error)
}

type stageFunc struct {
	name  string
	apply func(path string) (bool, error)
}

func (s stageFunc) Name() string {
	return s.name
}

func (s stageFunc) Apply(path string) (bool, error) {
	return s.apply(path)
}

// DefaultStages are the three cycle-breaking stages in the order they must run.
func DefaultStages() []Stage {
	return []Stage{
		stageFunc{name: "build phases order", apply: ReorderBuildPhases},
		stageFunc{name: "dependency attributes", apply: PatchDependencyAttributes},
		stageFunc{name: "target dependencies", apply: ClearTargetDependencies},
	}
}

// ReorderBuildPhases rewrites the Runner target's build phase list to
// patch.RunnerBuildPhaseOrder.
func ReorderBuildPhases(path string) (bool, error) {
	return applyPatches(path, patch.ReorderRunnerBuildPhases)
}

// PatchDependencyAttributes defers the Embed Foundation Extensions phase to deployment
// postprocessing and turns on code signing when the keyboard extension is copied.
// Both substitutions are attempted whether or not the other one matched.
func PatchDependencyAttributes(path string) (bool, error) {
	return applyPatches(path, patch.DeferEmbedFoundationExtensions, patch.SignKeyboardExtensionOnCopy)
}

// ClearTargetDependencies empties the KeyboardExtension target's dependency list.
func ClearTargetDependencies(path string) (bool, error) {
	return applyPatches(path, patch.ClearKeyboardExtensionDependencies)
}

func applyPatches(path string, patches ...patch.Patch) (bool, error) {
	content, err := io.ReadFile(path)
	if err != nil {
		return false, errors.Wrapf(err, "reading %s", path)
	}
	patched, changed := patch.Chain(content, patches...)
	if !changed {
		return false, nil
	}
	if err := io.WriteFile(path, patched); err != nil {
		return false, errors.Wrapf(err, "writing %s", path)
	}
	return true, nil
}
