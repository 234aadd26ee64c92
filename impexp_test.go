package ozpocket

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
)

func TestExportCSV(t *testing.T) {
	l := newTestLedger()
	if _, err := l.AddTransaction(Income, "weekly wage", AUD(850.50), NewDate(2026, 8, 24)); err != nil {
		t.Fatal(err)
	}
	if _, err := l.AddTransaction(Expense, "groceries", TWD(320), NewDate(2026, 8, 25)); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := ExportCSV(&buf, l); err != nil {
		t.Fatalf("ExportCSV() failed: %v", err)
	}

	out := buf.Bytes()
	if !bytes.HasPrefix(out, utf8BOM) {
		t.Error("export does not start with a UTF-8 byte-order marker")
	}

	records, err := csv.NewReader(bytes.NewReader(out[len(utf8BOM):])).ReadAll()
	if err != nil {
		t.Fatalf("export is not valid CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("export has %d records, want header plus 2", len(records))
	}
	if got, want := strings.Join(records[0], ","), "date,description,amount,currency"; got != want {
		t.Errorf("header = %q, want %q", got, want)
	}
	// Most recent first, amounts signed by kind.
	if got, want := strings.Join(records[1], ","), "2026-08-25,groceries,-320,TWD"; got != want {
		t.Errorf("first record = %q, want %q", got, want)
	}
	if got, want := strings.Join(records[2], ","), "2026-08-24,weekly wage,850.5,AUD"; got != want {
		t.Errorf("second record = %q, want %q", got, want)
	}
}

func TestBackupRestore(t *testing.T) {
	l := newTestLedger()
	if _, err := l.AddTransaction(Income, "wage", AUD(100), Date{}); err != nil {
		t.Fatal(err)
	}
	l.AddWorkDay()

	var buf bytes.Buffer
	if err := Backup(&buf, l); err != nil {
		t.Fatalf("Backup() failed: %v", err)
	}

	got, err := Restore(buf.String())
	if err != nil {
		t.Fatalf("Restore() failed: %v", err)
	}
	if !got.Balance("AUD").Equal(AUD(100)) {
		t.Errorf("restored AUD balance = %s, want %s", got.Balance("AUD"), AUD(100))
	}
	if got.WorkDays() != 1 {
		t.Errorf("restored work days = %d, want 1", got.WorkDays())
	}
}

func TestRestore_Rejections(t *testing.T) {
	testCases := []struct {
		name string
		in   string
	}{
		{"not json", "definitely not json"},
		{"no balance field", `{"transactions":[]}`},
		{"balance but malformed elsewhere", `{"balance":{"EUR":1}}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Restore(tc.in); err == nil {
				t.Error("Restore() accepted invalid text")
			}
		})
	}
}
