package finance

import "math"

// Project folds a starting balance forward over records already sorted
// ascending by date, attaching an end-of-day balance to each record:
//
//	balance = previous + totalReceived - valorAPagar
//
// With excludeToday the first record is treated as already settled: the fold
// runs over the remaining records seeded with the unmodified starting
// balance, and the first record is re-emitted at the head carrying the
// starting balance verbatim.
//
// A non-finite starting balance is a no-op: the input is returned unchanged.
// Order and length are always preserved; negative balances are valid.
func Project(records []Record, startingBalance float64, excludeToday bool) []Record {
	if math.IsNaN(startingBalance) || math.IsInf(startingBalance, 0) {
		return records
	}

	toIterate := records
	if excludeToday && len(records) > 0 {
		toIterate = records[1:]
	}

	previous := startingBalance
	out := make([]Record, 0, len(records))

	if excludeToday && len(records) > 0 {
		first := records[0]
		balance := startingBalance
		first.BalanceOfDay = &balance
		out = append(out, first)
	}

	for _, rec := range toIterate {
		balance := previous + rec.TotalReceived() - rec.Payable()
		b := balance
		rec.BalanceOfDay = &b
		out = append(out, rec)
		previous = balance
	}

	return out
}
