package finance

import (
	"testing"
	"time"
)

// 19/09/2026 is a Saturday, 20/09 a Sunday, 21/09 a Monday.
func weekendFixture() []Record {
	return []Record{
		{Date: "18/09/2026", ValorAPagar: ptr(10)}, // Friday
		{Date: "19/09/2026", ValorAPagar: ptr(200)},
		{Date: "20/09/2026", ValorAPagar: ptr(30)},
		{Date: "21/09/2026", ValorAPagar: ptr(500)},
		{Date: "22/09/2026", ValorAPagar: ptr(40)}, // Tuesday
	}
}

func TestDisplayPayableMondayRollsUpWeekend(t *testing.T) {
	records := weekendFixture()

	if got := DisplayPayable(records, "21/09/2026"); got != 730 {
		t.Errorf("Monday payable = %v, want 730", got)
	}
	// stored values stay untouched
	if *records[3].ValorAPagar != 500 {
		t.Errorf("stored Monday value changed to %v", *records[3].ValorAPagar)
	}
}

func TestDisplayPayableOtherWeekdaysUnchanged(t *testing.T) {
	records := weekendFixture()

	cases := map[string]float64{
		"18/09/2026": 10,
		"19/09/2026": 200,
		"20/09/2026": 30,
		"22/09/2026": 40,
	}
	for date, want := range cases {
		if got := DisplayPayable(records, date); got != want {
			t.Errorf("payable on %s = %v, want %v", date, got, want)
		}
	}
}

func TestDisplayPayableMondayWithMissingWeekendRecords(t *testing.T) {
	records := []Record{{Date: "21/09/2026", ValorAPagar: ptr(500)}}
	if got := DisplayPayable(records, "21/09/2026"); got != 500 {
		t.Errorf("Monday payable = %v, want 500", got)
	}
}

func TestPayableOnMissingDateIsZero(t *testing.T) {
	if got := PayableOn(weekendFixture(), "01/01/2027"); got != 0 {
		t.Errorf("payable = %v, want 0", got)
	}
}

func TestIsWeekend(t *testing.T) {
	cases := map[string]bool{
		"18/09/2026": false,
		"19/09/2026": true,
		"20/09/2026": true,
		"21/09/2026": false,
		"not-a-date": false,
	}
	for date, want := range cases {
		rec := Record{Date: date}
		if got := rec.IsWeekend(); got != want {
			t.Errorf("IsWeekend(%s) = %v, want %v", date, got, want)
		}
	}
}

func TestScheduleProjectsTermsOntoDueDates(t *testing.T) {
	// today Friday 18/09/2026: a 3-day term lands on Monday 21/09 and
	// picks up the weekend roll-up
	today := time.Date(2026, 9, 18, 12, 0, 0, 0, time.Local)
	records := weekendFixture()

	got := Schedule([]int{3, 4}, records, today)

	if len(got) != 2 {
		t.Fatalf("length = %d, want 2", len(got))
	}
	if got[0].PaymentDate != "21/09/2026" || got[0].TotalToPay != 730 {
		t.Errorf("term 3 = %s / %v, want 21/09/2026 / 730", got[0].PaymentDate, got[0].TotalToPay)
	}
	if got[0].Weekday != "segunda-feira" {
		t.Errorf("term 3 weekday = %s, want segunda-feira", got[0].Weekday)
	}
	if got[1].PaymentDate != "22/09/2026" || got[1].TotalToPay != 40 {
		t.Errorf("term 4 = %s / %v, want 22/09/2026 / 40", got[1].PaymentDate, got[1].TotalToPay)
	}
}
