package reconcile

import (
	"testing"

	"github.com/shopspring/decimal"

	"fluxo-caixa/internal/finance"
)

func amount(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := ParseAmountBR(s)
	if err != nil {
		t.Fatalf("ParseAmountBR(%q): %v", s, err)
	}
	return d
}

func TestParseAmountBR(t *testing.T) {
	cases := map[string]string{
		"14.047,97":    "14047.97",
		"1.234.567,89": "1234567.89",
		"0,50":         "0.5",
		"100":          "100",
		" 42,00 ":      "42",
	}
	for in, want := range cases {
		got := amount(t, in)
		if !got.Equal(decimal.RequireFromString(want)) {
			t.Errorf("ParseAmountBR(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestParseAmountBRRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "abc", "12,34,56"} {
		if _, err := ParseAmountBR(in); err == nil {
			t.Errorf("ParseAmountBR(%q): expected error", in)
		}
	}
}

func ptr(v float64) *float64 { return &v }

func TestPlanSkipsFooterRows(t *testing.T) {
	rows := []Row{
		{Label: "TOTAL LOJA:", Amount: amount(t, "99.999,99")},
		{Label: "TOTAL GERAL:", Amount: amount(t, "99.999,99")},
	}

	if plan := Plan(rows, nil, 7); len(plan) != 0 {
		t.Errorf("footer rows produced %d upserts", len(plan))
	}
}

func TestPlanSelectsMissingAndChangedRows(t *testing.T) {
	current := []finance.Record{
		{Date: "21/09/2026", ValorAPagar: ptr(14047.97)},
		{Date: "22/09/2026", ValorAPagar: ptr(100)},
	}
	rows := []Row{
		{Label: "21/09/2026", Amount: amount(t, "14.047,97")}, // unchanged
		{Label: "22/09/2026", Amount: amount(t, "150,00")},    // changed
		{Label: "23/09/2026", Amount: amount(t, "80,00")},     // missing
	}

	plan := Plan(rows, current, 7)
	if len(plan) != 2 {
		t.Fatalf("plan length = %d, want 2", len(plan))
	}

	if plan[0].DocID != "7_2026-09-22" || plan[0].Valor != 150 {
		t.Errorf("changed row = %+v", plan[0])
	}
	if plan[1].DocID != "7_2026-09-23" || plan[1].Valor != 80 {
		t.Errorf("missing row = %+v", plan[1])
	}
}

func TestPlanIsIdempotentWhenNothingChanged(t *testing.T) {
	current := []finance.Record{
		{Date: "21/09/2026", ValorAPagar: ptr(14047.97)},
	}
	rows := []Row{
		{Label: "21/09/2026", Amount: amount(t, "14.047,97")},
	}

	if plan := Plan(rows, current, 1); len(plan) != 0 {
		t.Errorf("unchanged report produced %d upserts", len(plan))
	}
}

func TestPlanWritesZeroOverMissingPayable(t *testing.T) {
	// the record exists but never had a payable recorded: a 0,00 report row
	// still differs and must be written
	current := []finance.Record{{Date: "21/09/2026"}}
	rows := []Row{{Label: "21/09/2026", Amount: amount(t, "0,00")}}

	plan := Plan(rows, current, 3)
	if len(plan) != 1 {
		t.Fatalf("plan length = %d, want 1", len(plan))
	}
	if plan[0].DocID != "3_2026-09-21" || plan[0].Valor != 0 {
		t.Errorf("upsert = %+v, want doc 3_2026-09-21 with valor 0", plan[0])
	}
}

func TestPlanDropsNonDateLabels(t *testing.T) {
	rows := []Row{
		{Label: "Observações", Amount: amount(t, "10,00")},
		{Label: "2026-09-21", Amount: amount(t, "10,00")}, // wrong layout
	}

	if plan := Plan(rows, nil, 1); len(plan) != 0 {
		t.Errorf("non-date labels produced %d upserts", len(plan))
	}
}

func TestPlanMatchesTrimmedDates(t *testing.T) {
	current := []finance.Record{
		{Date: "21/09/2026", ValorAPagar: ptr(50)},
	}
	rows := []Row{
		{Label: "  21/09/2026  ", Amount: amount(t, "50,00")},
	}

	if plan := Plan(rows, current, 1); len(plan) != 0 {
		t.Errorf("whitespace around the date broke matching: %d upserts", len(plan))
	}
}
