package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/tally-finance/tally/internal/achievement"
	"github.com/tally-finance/tally/internal/model"
)

func newTable(w io.Writer, headers ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	return tw
}

func row(tw *tabwriter.Writer, cells ...string) {
	fmt.Fprintln(tw, strings.Join(cells, "\t"))
}

// money formats an amount with the configured currency symbol and
// thousands separators, always two decimals.
func (s *session) money(d decimal.Decimal) string {
	return s.cfg.Display.Currency + humanize.FormatFloat("#,###.##", d.InexactFloat64())
}

func percent(d decimal.Decimal) string {
	return d.StringFixed(1) + "%"
}

func whenEarned(t *time.Time, now time.Time) string {
	if t == nil {
		return ""
	}
	return humanize.RelTime(*t, now, "ago", "from now")
}

// printEvents announces newly earned achievements.
func printEvents(w io.Writer, events []achievement.Event) {
	for _, e := range events {
		fmt.Fprintf(w, "Achievement unlocked: %s %s (%s)\n", e.Icon, e.Title, e.Description)
	}
}

// parseDate accepts YYYY-MM-DD, or "" for today.
func parseDate(s string, now time.Time) (model.Date, error) {
	if s == "" {
		return model.DateOf(now), nil
	}
	return model.ParseDate(s)
}

func parseDecimal(s, field string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: must be a number", field, s)
	}
	return d, nil
}
