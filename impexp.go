package ozpocket

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// this file contains functions to handle the export and backup formats.
// Both should remain human readable single files.

// utf8BOM is prepended to CSV exports so spreadsheet software decodes the
// file as UTF-8.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ExportCSV writes the transaction log as comma-separated text with a
// byte-order marker prefix. Amounts are signed by the transaction kind.
func ExportCSV(w io.Writer, l *Ledger) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "description", "amount", "currency"}); err != nil {
		return err
	}
	for _, tx := range l.Transactions() {
		signed := tx.Signed()
		record := []string{tx.Date.String(), tx.Description, signed.value.String(), signed.Currency()}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Backup serializes the whole state to text for manual copy.
func Backup(w io.Writer, l *Ledger) error {
	return EncodeSnapshot(w, l)
}

// Restore parses pasted backup text back into a ledger.
//
// Before committing to a full decode it checks that the text actually
// carries a balance object, so arbitrary pasted JSON is rejected with a
// pointed message instead of silently producing an empty ledger.
func Restore(text string) (*Ledger, error) {
	var v interface{}
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil, fmt.Errorf("restore text is not valid JSON: %w", err)
	}
	if _, err := jsonpath.Get("$.balance", v); err != nil {
		return nil, fmt.Errorf("restore text does not look like a snapshot (no balance field): %w", err)
	}
	return DecodeSnapshot(strings.NewReader(text))
}
