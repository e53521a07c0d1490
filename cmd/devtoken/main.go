// Command devtoken mints and checks bearer tokens for local runs of the
// API against the shared JWT_SECRET.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(&issueCmd{}, "")
	commander.Register(&verifyCmd{}, "")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
