package main

import (
	"fmt"
	"os"

	"github.com/fivetwenty-io/xminds-client/cmd/xminds/commands"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := commands.NewRootCommand(version, commit, date)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
