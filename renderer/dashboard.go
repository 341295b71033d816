package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/etnz/bank"
	md "github.com/nao1215/markdown"
)

// DashboardMarkdown renders the account like the dashboard view does.
func DashboardMarkdown(acc *bank.Account) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title := acc.Description
	if title == "" {
		title = acc.User
	}
	doc.H1(title)
	doc.PlainText(fmt.Sprintf("Balance: %s", md.Bold(Balance(acc.Balance, acc.Currency))))

	doc.H2("Transactions")
	if len(acc.Transactions) == 0 {
		doc.PlainText("No transactions yet.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"Date", "Object", "Amount"},
	}
	for _, tx := range acc.Transactions {
		table.Rows = append(table.Rows, bank.TransactionRow(tx))
	}
	doc.Table(table)

	return doc.String()
}

// Balance formats amount in currency. Known ISO 4217 codes are displayed
// with their symbol and fraction, anything else as a two decimals amount
// followed by the currency as typed.
func Balance(amount bank.Amount, currency string) string {
	code := strings.ToUpper(strings.TrimSpace(currency))
	cur := money.GetCurrency(code)
	if cur == nil {
		return strings.TrimSpace(amount.Fixed2() + " " + currency)
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, cur.Code).Display()
}
