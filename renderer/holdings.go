package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/yihsuan/ozpocket"
)

// Holdings renders the grouped investment positions to a markdown string.
func Holdings(holdings []ozpocket.Holding) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Holdings")
	if len(holdings) == 0 {
		doc.PlainText("No investments recorded.")
		return doc.String()
	}

	rows := make([][]string, 0, len(holdings))
	for _, h := range holdings {
		avg := "-"
		if a, ok := h.AverageCost(); ok {
			avg = formatAmount(a.Value(), h.Currency)
		}
		rows = append(rows, []string{
			h.Name,
			h.Shares.String(),
			avg,
			formatAmount(h.Cost.Value(), h.Currency),
			h.Currency,
			fmt.Sprintf("%d", len(h.Purchases)),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Name", "Shares", "Avg Cost", "Total Cost", "Currency", "Buys"},
		Rows:   rows,
	})
	return doc.String()
}
