package reconcile

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"fluxo-caixa/internal/finance"
	"fluxo-caixa/internal/util"
)

// Footer labels of the consolidated report; aggregate rows, never dated
// entries.
const (
	labelTotalLoja  = "TOTAL LOJA:"
	labelTotalGeral = "TOTAL GERAL:"
)

// Upsert is one pending write: set the accounts-payable amount for the
// document keyed "{userID}_{isoDate}".
type Upsert struct {
	DocID   string
	DateISO string
	Valor   float64
}

// ParseAmountBR parses an amount in the Brazilian convention: period as
// thousands separator, comma as decimal separator ("14.047,97" -> 14047.97).
func ParseAmountBR(s string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}

// Plan compares extracted report rows against the stored finance records and
// returns the upserts needed to bring storage in line with the report.
//
// A row is selected when no record exists for its date, when the record has
// no stored payable yet, or when the stored payable differs numerically from
// the row's amount. Footer rows are skipped
// unconditionally, and rows whose label is not a valid date are dropped.
func Plan(rows []Row, current []finance.Record, userID uint) []Upsert {
	var out []Upsert
	for _, row := range rows {
		if row.Label == labelTotalLoja || row.Label == labelTotalGeral {
			continue
		}

		label := strings.TrimSpace(row.Label)

		var match *finance.Record
		for i := range current {
			if strings.TrimSpace(current[i].Date) == label {
				match = &current[i]
				break
			}
		}

		// a record without a stored payable always differs, even from a
		// 0,00 row: the value must be written, not defaulted away
		if match != nil && match.ValorAPagar != nil &&
			decimal.NewFromFloat(*match.ValorAPagar).Equal(row.Amount) {
			continue // unchanged, idempotent no-op
		}

		iso, err := util.ISOFromBR(label)
		if err != nil {
			continue
		}

		out = append(out, Upsert{
			DocID:   fmt.Sprintf("%d_%s", userID, iso),
			DateISO: iso,
			Valor:   row.Amount.InexactFloat64(),
		})
	}
	return out
}
