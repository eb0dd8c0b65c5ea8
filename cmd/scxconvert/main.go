// scxconvert is a command line tool over the scenario codec: it inspects
// scenario files, converts them between editions, and maintains a local
// catalog of known scenarios.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/scxtools/scx/internal/config"
	"github.com/scxtools/scx/internal/logging"
)

// Logger is the process-wide CLI logger.
var Logger zerolog.Logger

func main() {
	if err := config.Load("."); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	Logger = logging.Setup(config.GetString("logLevel"), os.Stderr)

	args := os.Args[1:]
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	var err error
	switch args[0] {
	case "info":
		err = runInfo(args[1:])
	case "convert":
		err = runConvert(args[1:])
	case "index":
		err = runIndex(args[1:])
	case "list":
		err = runList(args[1:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		Logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage:
  scxconvert info <file>
  scxconvert convert <target-edition> <in-file> <out-file>
  scxconvert index <file>...
  scxconvert list`)
}
