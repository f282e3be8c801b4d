package finance

import (
	"time"

	"fluxo-caixa/internal/util"
)

// Record is the in-memory view of one day's cash flow, with the date in the
// display format (DD/MM/YYYY) used everywhere outside storage.
type Record struct {
	ID       string
	Date     string
	Credito  float64
	Debito   float64
	Pix      float64
	Dinheiro float64
	Alelo    float64
	Ticket   float64
	VR       float64
	Sodexo   float64

	// ValorAPagar is nil when no accounts-payable amount was recorded for
	// the day.
	ValorAPagar *float64

	// BalanceOfDay is filled in by Project; never persisted.
	BalanceOfDay *float64
}

// TotalReceived sums the eight payment-method amounts.
func (r Record) TotalReceived() float64 {
	return r.Credito + r.Debito + r.Pix + r.Dinheiro + r.Alelo + r.Ticket + r.VR + r.Sodexo
}

// Payable returns the recorded accounts-payable amount, defaulting to 0.
func (r Record) Payable() float64 {
	if r.ValorAPagar == nil {
		return 0
	}
	return *r.ValorAPagar
}

// IsWeekend reports whether the record's date falls on Saturday or Sunday.
// Unparseable dates count as weekdays so they stay visible.
func (r Record) IsWeekend() bool {
	t, err := util.ParseDateBR(r.Date)
	if err != nil {
		return false
	}
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
