// Package visualizer renders an account's balance-over-time history as an
// HTML line chart. Rendering failures are returned to the caller, never
// retried.
package visualizer

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/dvloznov/bank-system/internal/ledger"
)

// ErrNoHistory means the account has no operations to plot yet.
var ErrNoHistory = errors.New("no operations to plot")

// AccountView is the read-only account surface the chart needs.
// *account.Account satisfies it.
type AccountView interface {
	Holder() string
	History() []ledger.Record
}

// RenderHistory writes a balance-over-time chart for view to w. Each point is
// annotated with its operation kind and signed amount.
func RenderHistory(view AccountView, w io.Writer) error {
	history := view.History()
	if len(history) == 0 {
		return ErrNoHistory
	}

	xs := make([]string, 0, len(history))
	points := make([]opts.LineData, 0, len(history))
	for _, rec := range history {
		xs = append(xs, rec.Timestamp.Format("02.01.2006 15:04"))
		points = append(points, opts.LineData{
			Value: rec.BalanceAfter.InexactFloat64(),
			Name:  annotate(rec),
		})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Account balance history",
			Subtitle: fmt.Sprintf("Holder: %s", view.Holder()),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "time"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "balance"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	line.SetXAxis(xs).AddSeries("balance", points,
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}"}),
	)

	if err := line.Render(w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

// RenderHistoryFile renders the chart into an HTML file at path.
func RenderHistoryFile(view AccountView, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	defer f.Close()
	return RenderHistory(view, f)
}

// annotate labels a chart point with the operation kind and signed amount.
func annotate(rec ledger.Record) string {
	sign := "+"
	if rec.OpType == ledger.OpWithdraw {
		sign = "-"
	}
	return fmt.Sprintf("%s %s%s", rec.OpType, sign, rec.Amount)
}
