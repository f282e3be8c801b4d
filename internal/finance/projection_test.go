package finance

import (
	"math"
	"testing"
)

func ptr(v float64) *float64 { return &v }

func TestProjectFoldsBalanceForward(t *testing.T) {
	records := []Record{
		{Date: "21/09/2026", Credito: 30, Pix: 20, ValorAPagar: ptr(30)}, // received 50
		{Date: "22/09/2026", Dinheiro: 100},
	}

	got := Project(records, 100, false)

	if len(got) != len(records) {
		t.Fatalf("length = %d, want %d", len(got), len(records))
	}
	// 100 + 50 - 30 = 120, then 120 + 100 - 0 = 220
	want := []float64{120, 220}
	for i, w := range want {
		if got[i].BalanceOfDay == nil {
			t.Fatalf("row %d: BalanceOfDay is nil", i)
		}
		if *got[i].BalanceOfDay != w {
			t.Errorf("row %d: balance = %v, want %v", i, *got[i].BalanceOfDay, w)
		}
		if got[i].Date != records[i].Date {
			t.Errorf("row %d: order changed, date = %s", i, got[i].Date)
		}
	}
}

func TestProjectExcludeToday(t *testing.T) {
	records := []Record{
		{Date: "21/09/2026", Credito: 500, ValorAPagar: ptr(400)},
		{Date: "22/09/2026", Pix: 10, ValorAPagar: ptr(30)},
	}

	got := Project(records, 100, true)

	if len(got) != 2 {
		t.Fatalf("length = %d, want 2", len(got))
	}
	// first row carries the starting balance verbatim
	if *got[0].BalanceOfDay != 100 {
		t.Errorf("today's balance = %v, want 100", *got[0].BalanceOfDay)
	}
	// the fold is still seeded with 100: 100 + 10 - 30 = 80
	if *got[1].BalanceOfDay != 80 {
		t.Errorf("next day's balance = %v, want 80", *got[1].BalanceOfDay)
	}
}

func TestProjectNegativeBalanceIsValid(t *testing.T) {
	records := []Record{{Date: "21/09/2026", ValorAPagar: ptr(500)}}

	got := Project(records, 100, false)
	if *got[0].BalanceOfDay != -400 {
		t.Errorf("balance = %v, want -400", *got[0].BalanceOfDay)
	}
}

func TestProjectNonFiniteStartingBalanceIsNoop(t *testing.T) {
	records := []Record{{Date: "21/09/2026", Credito: 10}}

	for _, sb := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		got := Project(records, sb, false)
		if len(got) != 1 {
			t.Fatalf("length = %d, want 1", len(got))
		}
		if got[0].BalanceOfDay != nil {
			t.Errorf("starting balance %v: expected untouched records", sb)
		}
	}
}

func TestProjectEmptyInput(t *testing.T) {
	if got := Project(nil, 100, false); len(got) != 0 {
		t.Errorf("length = %d, want 0", len(got))
	}
	if got := Project(nil, 100, true); len(got) != 0 {
		t.Errorf("exclude_today length = %d, want 0", len(got))
	}
}

func TestTotalReceivedSumsAllMethods(t *testing.T) {
	rec := Record{Credito: 1, Debito: 2, Pix: 3, Dinheiro: 4, Alelo: 5, Ticket: 6, VR: 7, Sodexo: 8}
	if got := rec.TotalReceived(); got != 36 {
		t.Errorf("TotalReceived = %v, want 36", got)
	}
}
