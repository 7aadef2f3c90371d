package main

import (
	"os"

	"github.com/firefly-engineering/sshconf/cmd"
	"github.com/firefly-engineering/sshconf/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
