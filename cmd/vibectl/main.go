package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"

	"github.com/ndewijer/VibeInvestor-Backend/internal/cli"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, "vibectl")
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	for _, c := range cli.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
