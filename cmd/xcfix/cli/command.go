package cli

import (
	"io"
	"log"
	"strings"

	"github.com/aikeyboard/xcfix/cmd"
)

// Command defines the interface for running xcfix
type Command interface {
	// DefineFlags defines the flags that are considered valid and reads their values (if provided)
	DefineFlags()

	// Args validates arguments and flags, and fills in default values
	Args(nargs int, args []string) error

	// Exec executes the command
	Exec() error
}

func Run(c Command, withName string, args []string) {
	var (
		printVersion bool
		logLevel     string
		noColor      bool
	)

	log.SetOutput(io.Discard)
	FlagVersion(&printVersion)
	FlagLogLevel(&logLevel)
	FlagNoColor(&noColor)
	c.DefineFlags()
	if err := flagSet.Parse(args); err != nil {
		// flagSet exits on error, we shouldn't get here
		cmd.Exit(err)
	}
	cmd.DisableColor(noColor)

	if printVersion {
		cmd.ExitWithVersion()
	}
	if err := cmd.DefaultLogger.SetLevel(logLevel); err != nil {
		cmd.Exit(cmd.FailErrCode(err, cmd.CodeInvalidArgs, "parse arguments"))
	}
	cmd.DefaultLogger.Debugf("Starting %s...", withName)

	for _, arg := range flagSet.Args() {
		if strings.HasPrefix(arg, "-") {
			cmd.DefaultLogger.Warnf("unconsumed flag-like positional arg: \n\t%s\n\t This will not be interpreted as a flag.\n\t Did you mean to put this before the first positional argument?", arg)
		}
	}

	cmd.DefaultLogger.Debugf("Parsing inputs...")
	if err := c.Args(flagSet.NArg(), flagSet.Args()); err != nil {
		cmd.Exit(err)
	}
	cmd.DefaultLogger.Debugf("Executing command...")
	cmd.Exit(c.Exec())
}
