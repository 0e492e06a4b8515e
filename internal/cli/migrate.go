package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/ndewijer/VibeInvestor-Backend/internal/database"
)

type migrateCmd struct{}

func (*migrateCmd) Name() string     { return "migrate" }
func (*migrateCmd) Synopsis() string { return "apply pending database migrations" }
func (*migrateCmd) Usage() string {
	return `vibectl migrate

  Applies every embedded migration not yet recorded in the database at DB_PATH
  and prints the resulting schema version.
`
}
func (*migrateCmd) SetFlags(*flag.FlagSet) {}

func (*migrateCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	version, err := database.Migrate(ctx, a.DB, a.Logger)
	if err != nil {
		return fail(err)
	}
	fmt.Fprintf(stdout, "schema version %d\n", version)
	return subcommands.ExitSuccess
}

type seedCmd struct{}

func (*seedCmd) Name() string     { return "seed" }
func (*seedCmd) Synopsis() string { return "insert the demo users and their starter data" }
func (*seedCmd) Usage() string {
	return `vibectl seed

  Migrates the database and inserts the demo data. Sections that already hold
  rows are left untouched, so running it twice is harmless.
`
}
func (*seedCmd) SetFlags(*flag.FlagSet) {}

func (*seedCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	if _, err := database.Migrate(ctx, a.DB, a.Logger); err != nil {
		return fail(err)
	}
	if err := database.Seed(ctx, a.DB); err != nil {
		return fail(err)
	}
	fmt.Fprintln(stdout, "demo data seeded")
	return subcommands.ExitSuccess
}
