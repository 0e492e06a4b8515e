package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	"github.com/ndewijer/VibeInvestor-Backend/internal/model"
	"github.com/ndewijer/VibeInvestor-Backend/internal/service"
)

type forecastCmd struct {
	monthly float64
	rate    float64
	years   int
}

func (*forecastCmd) Name() string     { return "forecast" }
func (*forecastCmd) Synopsis() string { return "project a monthly savings plan" }
func (*forecastCmd) Usage() string {
	return `vibectl forecast [-m <monthly>] [-r <rate>] [-y <years>]

  Projects monthly contributions compounded monthly at the given annual rate,
  with the inflation-adjusted value, standard horizons and preset scenarios.
`
}

func (c *forecastCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.monthly, "m", 1000, "Monthly contribution in rubles.")
	f.Float64Var(&c.rate, "r", 12, "Expected annual return in percent.")
	f.IntVar(&c.years, "y", 5, "Investment horizon in years.")
}

func (c *forecastCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := service.BuildForecastReport(c.monthly, c.rate, c.years)
	if err != nil {
		return fail(err)
	}
	printMarkdown(ForecastMarkdown(report))
	return subcommands.ExitSuccess
}

// ForecastMarkdown renders a report as markdown tables.
func ForecastMarkdown(r model.ForecastReport) string {
	var b strings.Builder
	f := r.Forecast
	fmt.Fprintf(&b, "# Forecast: %.0f ₽/month at %g%% for %d years\n\n", f.Monthly, f.Rate, f.Years)
	fmt.Fprintf(&b, "**Nominal:** %s  \n", f.NominalDisplay)
	fmt.Fprintf(&b, "**Inflation-adjusted:** %.2f  \n", f.Adjusted)
	fmt.Fprintf(&b, "**Contributed:** %.2f  \n", f.Contributed)
	fmt.Fprintf(&b, "**Profit:** %.2f\n\n", f.Profit)

	b.WriteString("## Horizons\n\n| Years | Nominal | Adjusted | Profit |\n|---:|---:|---:|---:|\n")
	for _, p := range r.Projections {
		fmt.Fprintf(&b, "| %d | %.2f | %.2f | %.2f |\n", p.Years, p.Nominal, p.Adjusted, p.Profit)
	}

	b.WriteString("\n## Scenarios\n\n| Scenario | Years | Rate | Nominal |\n|---|---:|---:|---:|\n")
	for _, s := range r.Scenarios {
		fmt.Fprintf(&b, "| %s | %d | %g%% | %s |\n", s.Name, s.Forecast.Years, s.Forecast.Rate, s.Forecast.NominalDisplay)
	}
	return b.String()
}
