package cmd

import (
	"fmt"
	"os"
	"strings"
)

const (
	CodeFailed      = 1
	CodeInvalidArgs = 3
	CodeNotFound    = 4
	// CodeRestored means a stage failed and the project file was restored from its backup.
	CodeRestored = 5
)

type ErrorFail struct {
	Err    error
	Code   int
	Action []string
}

func (e *ErrorFail) Error() string {
	message := "failed to " + strings.Join(e.Action, " ")
	if e.Err == nil {
		return message
	}
	return fmt.Sprintf("%s: %s", message, e.Err)
}

func (e *ErrorFail) Unwrap() error {
	return e.Err
}

func FailCode(code int, action ...string) *ErrorFail {
	return FailErrCode(nil, code, action...)
}

func FailErr(err error, action ...string) *ErrorFail {
	code := CodeFailed
	if err, ok := err.(*ErrorFail); ok {
		code = err.Code
	}
	return FailErrCode(err, code, action...)
}

func FailErrCode(err error, code int, action ...string) *ErrorFail {
	return &ErrorFail{Err: err, Code: code, Action: action}
}

// ExitCode maps err to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if err, ok := err.(*ErrorFail); ok {
		return err.Code
	}
	return CodeFailed
}

func Exit(err error) {
	if err == nil {
		os.Exit(0)
	}
	DefaultLogger.Errorf("%s\n", err)
	os.Exit(ExitCode(err))
}

func ExitWithVersion() {
	DefaultLogger.Info(buildVersion())
	os.Exit(0)
}
