package util

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// DateBR is the display layout used across the app ("25/04/2025").
	DateBR = "02/01/2006"
	// DateISO is the storage layout ("2025-04-25").
	DateISO = "2006-01-02"
)

// ParseDateBR parses a DD/MM/YYYY date string.
func ParseDateBR(s string) (time.Time, error) {
	t, err := time.Parse(DateBR, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// FormatDateBR renders a time as DD/MM/YYYY.
func FormatDateBR(t time.Time) string {
	return t.Format(DateBR)
}

// ISOFromBR converts "25/04/2025" to "2025-04-25".
func ISOFromBR(s string) (string, error) {
	t, err := ParseDateBR(s)
	if err != nil {
		return "", err
	}
	return t.Format(DateISO), nil
}

// BRFromISO converts "2025-04-25" to "25/04/2025".
func BRFromISO(s string) (string, error) {
	t, err := time.Parse(DateISO, strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t.Format(DateBR), nil
}

var weekdayNamesPT = [...]string{
	"domingo",
	"segunda-feira",
	"terça-feira",
	"quarta-feira",
	"quinta-feira",
	"sexta-feira",
	"sábado",
}

// WeekdayNamePT returns the Portuguese weekday name for a date.
func WeekdayNamePT(t time.Time) string {
	return weekdayNamesPT[int(t.Weekday())]
}

var currencyPrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatCurrency renders a value as Brazilian currency, e.g. "R$ 14.047,97".
func FormatCurrency(v float64) string {
	return currencyPrinter.Sprintf("R$ %.2f", v)
}

// CNPJDigits strips formatting punctuation, keeping only digit characters.
// Non-digit, non-punctuation characters (stray letters) are kept so that
// validation can reject them.
func CNPJDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '.', '/', '-', ' ':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ValidateCNPJ checks that the tax id contains exactly 14 numeric digits
// after stripping punctuation.
func ValidateCNPJ(s string) error {
	digits := CNPJDigits(s)
	if len(digits) != 14 {
		return fmt.Errorf("CNPJ deve conter 14 números")
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return fmt.Errorf("CNPJ deve conter apenas números")
		}
	}
	return nil
}

// FormatCNPJ renders 14 raw digits as "99.999.999/0001-99". Input that is
// not 14 digits is returned unchanged.
func FormatCNPJ(s string) string {
	d := CNPJDigits(s)
	if ValidateCNPJ(d) != nil {
		return s
	}
	return fmt.Sprintf("%s.%s.%s/%s-%s", d[0:2], d[2:5], d[5:8], d[8:12], d[12:14])
}

var markRemover = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeText strips accents, uppercases and collapses whitespace. Used
// for supplier-name matching.
func NormalizeText(s string) string {
	out, _, err := transform.String(markRemover, s)
	if err != nil {
		out = s
	}
	out = strings.ToUpper(out)
	return strings.Join(strings.Fields(out), " ")
}
