package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/ndewijer/VibeInvestor-Backend/internal/model"
)

type digestCmd struct{}

func (*digestCmd) Name() string     { return "digest" }
func (*digestCmd) Synopsis() string { return "print the daily market digest" }
func (*digestCmd) Usage() string {
	return `vibectl digest

  Prints the market digest, regenerating it first when the stored one is more
  than a day old. Without GEMINI_API_KEY the stored or built-in text is shown.
`
}
func (*digestCmd) SetFlags(*flag.FlagSet) {}

func (*digestCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	if err := a.Prepare(ctx); err != nil {
		return fail(err)
	}
	digest, err := a.Services.Digest.GetDigest(ctx)
	if err != nil {
		return fail(err)
	}
	printMarkdown(DigestMarkdown(digest))
	return subcommands.ExitSuccess
}

// DigestMarkdown formats a digest with its origin.
func DigestMarkdown(d model.Digest) string {
	md := "# Vibe Digest\n\n" + d.Content + "\n\n"
	if d.CreatedAt != nil {
		md += fmt.Sprintf("_%s, %s UTC_\n", d.Source, d.CreatedAt.UTC().Format("2006-01-02 15:04"))
	} else {
		md += fmt.Sprintf("_%s_\n", d.Source)
	}
	return md
}
