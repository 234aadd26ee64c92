package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/yihsuan/ozpocket"
)

// Transactions renders the transaction log to a markdown table.
func Transactions(txs []ozpocket.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")
	if len(txs) == 0 {
		doc.PlainText("No transactions recorded.")
		return doc.String()
	}
	doc.Table(transactionTable(txs))
	return doc.String()
}

func transactionTable(txs []ozpocket.Transaction) md.TableSet {
	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		signed := tx.Signed()
		rows = append(rows, []string{
			fmt.Sprintf("%d", tx.ID),
			tx.Date.String(),
			tx.Description,
			formatAmount(signed.Value(), signed.Currency()),
			signed.Currency(),
		})
	}
	return md.TableSet{
		Header: []string{"ID", "Date", "Description", "Amount", "Currency"},
		Rows:   rows,
	}
}
