package xcfix_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"

	"github.com/aikeyboard/xcfix"
	"github.com/aikeyboard/xcfix/internal/encoding"
	h "github.com/aikeyboard/xcfix/testhelpers"
)

func TestReport(t *testing.T) {
	spec.Run(t, "Report", testReport, spec.Report(report.Terminal{}))
}

func testReport(t *testing.T, when spec.G, it spec.S) {
	var (
		tmpDir string
		result *xcfix.Result
	)

	it.Before(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "xcfix.report")
		h.AssertNil(t, err)
		result = &xcfix.Result{
			ProjectPath: "/some/Runner.xcodeproj/project.pbxproj",
			BackupPath:  "/some/Runner.xcodeproj/project.pbxproj.backup_20250827_140509",
			Changed:     true,
			Stages: []xcfix.StageResult{
				{Name: "build phases order", Changed: true},
				{Name: "dependency attributes", Changed: false},
				{Name: "target dependencies", Changed: true},
			},
		}
	})

	it.After(func() {
		os.RemoveAll(tmpDir)
	})

	when("#WriteReport", func() {
		it("writes TOML by default", func() {
			path := filepath.Join(tmpDir, "reports", "report.toml")
			h.AssertNil(t, xcfix.WriteReport(path, result))

			var got xcfix.Result
			h.AssertNil(t, encoding.ReadTOML(path, &got))
			h.AssertEq(t, &got, result)
		})

		it("writes JSON for a .json path", func() {
			path := filepath.Join(tmpDir, "report.json")
			h.AssertNil(t, xcfix.WriteReport(path, result))

			var got xcfix.Result
			h.AssertNil(t, json.Unmarshal(h.MustReadFile(t, path), &got))
			h.AssertEq(t, &got, result)
			h.AssertStringContains(t, string(h.MustReadFile(t, path)), `"backup-path": "/some/Runner.xcodeproj/project.pbxproj.backup_20250827_140509"`)
		})
	})

	when("#NextSteps", func() {
		it("ends with the restore command when there is a backup", func() {
			steps := xcfix.NextSteps(result)
			h.AssertEq(t, len(steps), 3)
			h.AssertEq(t, steps[2], "If issues persist, restore from backup:\n   cp "+result.BackupPath+" "+result.ProjectPath)
		})

		it("omits the restore command for a dry run", func() {
			result.BackupPath = ""
			h.AssertEq(t, len(xcfix.NextSteps(result)), 2)
		})
	})

	when("#LogSummary", func() {
		var (
			logHandler *memory.Handler
			logger     *log.Logger
		)

		it.Before(func() {
			logHandler = memory.New()
			logger = &log.Logger{Handler: logHandler, Level: log.InfoLevel}
		})

		it("lists the stages that changed the file and the next steps", func() {
			xcfix.LogSummary(logger, result)

			logs := h.AllLogs(logHandler)
			h.AssertStringContains(t, logs, "  - build phases order\n  - target dependencies\n")
			h.AssertStringDoesNotContain(t, logs, "dependency attributes")
			h.AssertStringContains(t, logs, "1. Open Xcode and clean build folder (Cmd+Shift+K)\n")
			h.AssertStringContains(t, logs, "3. If issues persist, restore from backup:")
		})

		it("warns when nothing changed", func() {
			result.Changed = false
			xcfix.LogSummary(logger, result)

			h.AssertEq(t, len(logHandler.Entries), 1)
			h.AssertEq(t, logHandler.Entries[0].Level, log.WarnLevel)
			h.AssertEq(t, logHandler.Entries[0].Message, "No changes were needed")
		})
	})
}
