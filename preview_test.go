package xcfix_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/pkg/errors"
	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"

	"github.com/aikeyboard/xcfix"
	h "github.com/aikeyboard/xcfix/testhelpers"
)

func TestPreview(t *testing.T) {
	spec.Run(t, "Preview", testPreview, spec.Report(report.Terminal{}))
}

func testPreview(t *testing.T, when spec.G, it spec.S) {
	var (
		tmpDir      string
		projectPath string
		fixer       *xcfix.Fixer
	)

	it.Before(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "xcfix.preview")
		h.AssertNil(t, err)
		projectPath = h.Fixture(t, "testdata", "project.pbxproj", tmpDir)
		fixer = xcfix.NewFixer(projectPath, &log.Logger{Handler: memory.New(), Level: log.DebugLevel})
	})

	it.After(func() {
		os.RemoveAll(tmpDir)
	})

	when("#Preview", func() {
		it("returns a diff of the would-be edits without touching the project", func() {
			original := h.MustReadFile(t, projectPath)

			result, diff, err := fixer.Preview()
			h.AssertNil(t, err)

			h.AssertEq(t, result.DryRun, true)
			h.AssertEq(t, result.Changed, true)
			h.AssertEq(t, result.BackupPath, "")
			h.AssertEq(t, len(result.Stages), 3)

			h.AssertStringContains(t, diff, "--- "+projectPath+"\n")
			h.AssertStringContains(t, diff, "+++ "+projectPath+" (patched)\n")
			h.AssertStringContains(t, diff, "-\t\t\trunOnlyForDeploymentPostprocessing = 0;\n")
			h.AssertStringContains(t, diff, "+\t\t\trunOnlyForDeploymentPostprocessing = 1;\n")
			h.AssertStringContains(t, diff, "-\t\t\t\t3032BDE02E5F606D000CF4B1 /* PBXTargetDependency */,\n")
			h.AssertStringContains(t, diff, "CODE_SIGN_ON_COPY = YES;")

			h.AssertEq(t, h.MustReadFile(t, projectPath), original)
			entries, err := os.ReadDir(tmpDir)
			h.AssertNil(t, err)
			h.AssertEq(t, len(entries), 1)
		})

		it("returns an empty diff for an already fixed project", func() {
			h.Mkfile(t, string(h.MustReadFile(t, filepath.Join("testdata", "project.fixed.pbxproj"))), projectPath)

			result, diff, err := fixer.Preview()
			h.AssertNil(t, err)
			h.AssertEq(t, result.Changed, false)
			h.AssertEq(t, diff, "")
		})

		it("fails for a missing project", func() {
			fixer.ProjectPath = filepath.Join(tmpDir, "missing.pbxproj")
			_, _, err := fixer.Preview()
			h.AssertEq(t, errors.Is(err, xcfix.ErrProjectNotFound), true)
		})
	})
}
