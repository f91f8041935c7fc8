package main

import (
	"os"

	"github.com/aikeyboard/xcfix/cmd"
	"github.com/aikeyboard/xcfix/cmd/xcfix/cli"
)

func main() {
	cli.Run(&fixCmd{Logger: cmd.DefaultLogger}, "xcfix", os.Args[1:])
}
