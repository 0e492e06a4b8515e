package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type syncGoalsCmd struct{}

func (*syncGoalsCmd) Name() string     { return "sync-goals" }
func (*syncGoalsCmd) Synopsis() string { return "recompute goal progress for every user" }
func (*syncGoalsCmd) Usage() string {
	return `vibectl sync-goals

  Runs the same goal progress sync as the server's scheduled job once.
`
}
func (*syncGoalsCmd) SetFlags(*flag.FlagSet) {}

func (*syncGoalsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	if err := a.Prepare(ctx); err != nil {
		return fail(err)
	}
	results, err := a.Services.Goal.SyncAll(ctx)
	if err != nil {
		return fail(err)
	}
	for _, r := range results {
		fmt.Fprintf(stdout, "user %d: %d goals updated, %d completed\n", r.UserID, r.Updated, r.Completed)
	}
	return subcommands.ExitSuccess
}
