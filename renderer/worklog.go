package renderer

import (
	"bytes"
	"fmt"
	"time"

	md "github.com/nao1215/markdown"
)

// WorkLog renders the visa work-day check-ins to a markdown string.
// Entries are most recent first.
func WorkLog(count int, entries []time.Time) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Work Days: %d", count))
	if len(entries) == 0 {
		doc.PlainText("No work days logged yet.")
		return doc.String()
	}

	items := make([]string, 0, len(entries))
	for i, e := range entries {
		items = append(items, fmt.Sprintf("day %d, checked in %s", count-i, e.Format("2006-01-02 15:04")))
	}
	doc.BulletList(items...)
	return doc.String()
}
