package renderer

import (
	"errors"
	"fmt"
	"io"

	"github.com/etnz/bank"
	"github.com/wcharczuk/go-chart/v2"
)

// ErrNoTransactions is returned when charting an account without transactions.
var ErrNoTransactions = errors.New("no transactions")

// TransactionsChart writes a PNG bar chart of the account transactions, in
// the account order, one bar per transaction.
func TransactionsChart(w io.Writer, acc *bank.Account) error {
	if len(acc.Transactions) == 0 {
		return fmt.Errorf("cannot chart account %q: %w", acc.User, ErrNoTransactions)
	}

	var bars []chart.Value
	for _, tx := range acc.Transactions {
		bars = append(bars, chart.Value{
			Label: fmt.Sprintf("%s %s", tx.Date, tx.Object),
			Value: tx.Amount.InexactFloat64(),
		})
	}

	barChart := chart.BarChart{
		Title: fmt.Sprintf("%s - %s", acc.Description, Balance(acc.Balance, acc.Currency)),
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
		},
		Width:        max(400, 120*len(bars)+80),
		Height:       400,
		BarWidth:     60,
		BarSpacing:   60,
		UseBaseValue: true,
		BaseValue:    0,
		Bars:         bars,
	}
	barChart.YAxis.ValueFormatter = func(v interface{}) string {
		if vf, isFloat := v.(float64); isFloat {
			return fmt.Sprintf("%.2f", vf)
		}
		return ""
	}

	if err := barChart.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("cannot render chart: %w", err)
	}
	return nil
}
