package log_test

import (
	"testing"
	"time"

	apexlog "github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"

	"github.com/aikeyboard/xcfix/log"
	h "github.com/aikeyboard/xcfix/testhelpers"
)

func TestTimer(t *testing.T) {
	spec.Run(t, "Timer", testTimer, spec.Parallel(), spec.Report(report.Terminal{}))
}

func testTimer(t *testing.T, when spec.G, it spec.S) {
	var (
		logHandler *memory.Handler
		logger     *apexlog.Logger
	)

	it.Before(func() {
		logHandler = memory.New()
		logger = &apexlog.Logger{Handler: logHandler, Level: apexlog.DebugLevel}
	})

	when("#NewTimer", func() {
		it("records the start at debug level", func() {
			timer := log.NewTimer("patch", logger)

			h.AssertEq(t, timer.Name, "patch")
			h.AssertEq(t, timer.EndTime, time.Time{})
			h.AssertEq(t, len(logHandler.Entries), 1)
			h.AssertEq(t, logHandler.Entries[0].Level, apexlog.DebugLevel)
			h.AssertStringContains(t, logHandler.Entries[0].Message, "Timer: patch started at")
		})
	})

	when("#RecordEnd", func() {
		it("records the duration", func() {
			timer := log.NewTimer("patch", logger)
			timer.RecordEnd()

			h.AssertEq(t, timer.EndTime.Before(timer.StartTime), false)
			h.AssertEq(t, len(logHandler.Entries), 2)
			h.AssertStringContains(t, logHandler.Entries[1].Message, "Timer: patch ran for")
		})
	})

	when("the level is above debug", func() {
		it("stays quiet", func() {
			logger.Level = apexlog.InfoLevel
			timer := log.NewTimer("patch", logger)
			timer.RecordEnd()
			h.AssertEq(t, len(logHandler.Entries), 0)
		})
	})
}
