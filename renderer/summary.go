package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/yihsuan/ozpocket"
)

// Summary renders the derived tracker state to a markdown string.
func Summary(s *ozpocket.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Pocket Summary on %s", s.Date))

	doc.H2("Cash & Investments")
	rows := make([][]string, 0, len(ozpocket.Currencies))
	for _, c := range ozpocket.Currencies {
		rows = append(rows, []string{
			c,
			formatAmount(s.Balances[c], c),
			formatAmount(s.InvestmentTotals[c], c),
			formatAmount(s.NetWorth[c], c),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Currency", "Cash", "Invested (cost)", "Net Worth"},
		Rows:   rows,
	})
	doc.PlainText(fmt.Sprintf("Rates: 1 AUD = %s TWD, 1 AUD = %s USD, 1 USD = %s TWD",
		s.Rates.AUDTWD, s.Rates.AUDUSD, s.Rates.USDTWD))

	doc.H2("Visa Progress")
	doc.PlainText(fmt.Sprintf("2nd year: %s %d / %d", progressBar(s.SecondYear.Fraction(), 22), s.SecondYear.Done, s.SecondYear.Required))
	doc.PlainText(fmt.Sprintf("3rd year: %s %d / %d", progressBar(s.ThirdYear.Fraction(), 22), s.ThirdYear.Done, s.ThirdYear.Required))

	if s.WeeklyBudget.IsPositive() {
		doc.H2("Weekly Budget")
		doc.PlainText(fmt.Sprintf("Spent %s of %s AUD this week",
			formatAmount(s.WeeklySpend, "AUD"), formatAmount(s.WeeklyBudget, "AUD")))
	}

	if len(s.Recent) > 0 {
		doc.H2("Recent Transactions")
		doc.Table(transactionTable(s.Recent))
	}

	return doc.String()
}
