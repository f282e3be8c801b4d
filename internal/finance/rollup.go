package finance

import (
	"time"

	"fluxo-caixa/internal/util"
)

// PayableOn returns the stored accounts-payable amount for the given
// DD/MM/YYYY date, or 0 when no record exists. Matching is an exact string
// comparison on the trimmed date, as the records are keyed by display date.
func PayableOn(records []Record, dateBR string) float64 {
	for _, rec := range records {
		if rec.Date == dateBR {
			return rec.Payable()
		}
	}
	return 0
}

// DisplayPayable applies the weekend roll-up rule: obligations falling on
// Saturday or Sunday are settled the following Monday, so a Monday shows its
// own amount plus the two preceding days. Other weekdays show their stored
// value unmodified. Stored values are never altered.
func DisplayPayable(records []Record, dateBR string) float64 {
	total := PayableOn(records, dateBR)

	t, err := util.ParseDateBR(dateBR)
	if err != nil || t.Weekday() != time.Monday {
		return total
	}

	saturday := util.FormatDateBR(t.AddDate(0, 0, -2))
	sunday := util.FormatDateBR(t.AddDate(0, 0, -1))
	total += PayableOn(records, saturday)
	total += PayableOn(records, sunday)
	return total
}
