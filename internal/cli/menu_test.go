package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"finledger/internal/ledger"
	"finledger/internal/store"
)

func testApp() *app {
	return &app{
		store:    store.Guard(store.NewMemory()),
		coord:    ledger.NewCoordinator(),
		currency: "USD",
		cleanup:  func() {},
	}
}

func TestMenuAddSummaryQuit(t *testing.T) {
	a := testApp()
	in := strings.NewReader(strings.Join([]string{
		"2", "Salary", "1000", "income",
		"2", "Rent", "400", "expense",
		"6",
		"0",
	}, "\n"))
	var out bytes.Buffer

	if err := runMenu(context.Background(), a, in, &out); err != nil {
		t.Fatalf("menu: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"added Salary $1000.00 (income)",
		"added Rent $400.00 (expense)",
		"balance: $600.00",
		"bye",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}

	txs, _ := a.store.Load(context.Background())
	if len(txs) != 2 {
		t.Fatalf("store has %d transactions; want 2", len(txs))
	}
}

func TestMenuDeleteByPosition(t *testing.T) {
	a := testApp()
	in := strings.NewReader(strings.Join([]string{
		"2", "Salary", "1000", "income",
		"2", "Rent", "400", "expense",
		"3", "1",
		"3", "5",
		"0",
	}, "\n"))
	var out bytes.Buffer

	if err := runMenu(context.Background(), a, in, &out); err != nil {
		t.Fatalf("menu: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "deleted Salary $1000.00 (income)") {
		t.Errorf("delete output missing:\n%s", got)
	}
	// second delete addressed a position past the end
	if !strings.Contains(got, "out of range") {
		t.Errorf("expected out of range error in output:\n%s", got)
	}

	txs, _ := a.store.Load(context.Background())
	if len(txs) != 1 || txs[0].Description != "Rent" {
		t.Fatalf("unexpected store contents: %+v", txs)
	}
}

func TestMenuRejectsBadInput(t *testing.T) {
	a := testApp()
	in := strings.NewReader(strings.Join([]string{
		"2", "  ", "10", "income",
		"2", "Coffee", "abc", "expense",
		"9",
		"0",
	}, "\n"))
	var out bytes.Buffer

	if err := runMenu(context.Background(), a, in, &out); err != nil {
		t.Fatalf("menu: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "invalid description") {
		t.Errorf("blank description not rejected:\n%s", got)
	}
	if !strings.Contains(got, `invalid amount "abc"`) {
		t.Errorf("bad amount not rejected:\n%s", got)
	}
	if !strings.Contains(got, "unknown choice") {
		t.Errorf("unknown choice not reported:\n%s", got)
	}

	txs, _ := a.store.Load(context.Background())
	if len(txs) != 0 {
		t.Fatalf("bad input reached the store: %+v", txs)
	}
}
