package finance

import (
	"time"

	"fluxo-caixa/internal/util"
)

// ScheduledPayment is one projected due date for a supplier payment term.
type ScheduledPayment struct {
	Term        int     `json:"term"`
	PaymentDate string  `json:"payment_date"`
	Weekday     string  `json:"weekday"`
	TotalToPay  float64 `json:"total_to_pay"`
}

// Schedule projects each payment term onto a calendar date (today + term
// days) and looks up the payable due on that date, with the weekend roll-up
// applied when the projected date is a Monday.
func Schedule(terms []int, records []Record, today time.Time) []ScheduledPayment {
	out := make([]ScheduledPayment, 0, len(terms))
	for _, term := range terms {
		due := today.AddDate(0, 0, term)
		dateBR := util.FormatDateBR(due)
		out = append(out, ScheduledPayment{
			Term:        term,
			PaymentDate: dateBR,
			Weekday:     util.WeekdayNamePT(due),
			TotalToPay:  DisplayPayable(records, dateBR),
		})
	}
	return out
}
