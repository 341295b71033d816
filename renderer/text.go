package renderer

import (
	"fmt"
	"io"

	"github.com/etnz/bank"
	"github.com/olekukonko/tablewriter"
)

// DashboardText writes the account as plain text, for terminals that do not
// render markdown.
func DashboardText(w io.Writer, acc *bank.Account) {
	fmt.Fprintf(w, "%s (%s)\n", acc.Description, acc.User)
	fmt.Fprintf(w, "Balance: %s\n\n", Balance(acc.Balance, acc.Currency))

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Date", "Object", "Amount"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
	for _, tx := range acc.Transactions {
		table.Append(bank.TransactionRow(tx))
	}
	table.Render()
}
