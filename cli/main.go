package main

import (
	"log"

	"github.com/procon-dev/procon/cli/cmd"
	"github.com/procon-dev/procon/cli/util"
	"github.com/procon-dev/procon/cli/version"
)

func main() {
	defer func() {
		// In case the program panics, recover captures the value given to panic
		// and the error is reported with the version and the call stack.
		if r := recover(); r != nil {
			log.Fatalf(
				"%s", util.InternalError("Unhandled internal error: %s",
					version.GetVersion, r))
		}
	}()

	cmd.InitRoot()
	cmd.Execute()
}
