package cmd

import (
	"github.com/heroku/color"

	"github.com/aikeyboard/xcfix/log"
)

var (
	Stdout = color.Stdout()

	DefaultLogger = log.NewDefaultLogger(Stdout)
)

func DisableColor(noColor bool) {
	color.Disable(noColor)
}
