package util

import (
	"testing"
	"time"
)

func TestDateConversionRoundTrip(t *testing.T) {
	iso, err := ISOFromBR("25/04/2025")
	if err != nil {
		t.Fatalf("ISOFromBR: %v", err)
	}
	if iso != "2025-04-25" {
		t.Errorf("ISOFromBR = %s, want 2025-04-25", iso)
	}

	br, err := BRFromISO(iso)
	if err != nil {
		t.Fatalf("BRFromISO: %v", err)
	}
	if br != "25/04/2025" {
		t.Errorf("BRFromISO = %s, want 25/04/2025", br)
	}
}

func TestParseDateBRRejectsOtherLayouts(t *testing.T) {
	for _, in := range []string{"2025-04-25", "25-04-2025", "4/25/2025", ""} {
		if _, err := ParseDateBR(in); err == nil {
			t.Errorf("ParseDateBR(%q): expected error", in)
		}
	}
}

func TestWeekdayNamePT(t *testing.T) {
	cases := map[string]string{
		"20/09/2026": "domingo",
		"21/09/2026": "segunda-feira",
		"19/09/2026": "sábado",
	}
	for date, want := range cases {
		d, err := time.Parse(DateBR, date)
		if err != nil {
			t.Fatalf("parse %s: %v", date, err)
		}
		if got := WeekdayNamePT(d); got != want {
			t.Errorf("WeekdayNamePT(%s) = %s, want %s", date, got, want)
		}
	}
}

func TestValidateCNPJ(t *testing.T) {
	valid := []string{
		"11222333000181",
		"11.222.333/0001-81",
	}
	for _, in := range valid {
		if err := ValidateCNPJ(in); err != nil {
			t.Errorf("ValidateCNPJ(%q): %v", in, err)
		}
	}

	invalid := []string{
		"",
		"1122233300018",    // 13 digits
		"112223330001812",  // 15 digits
		"11.222.333/0001-8a", // stray letter
	}
	for _, in := range invalid {
		if err := ValidateCNPJ(in); err == nil {
			t.Errorf("ValidateCNPJ(%q): expected error", in)
		}
	}
}

func TestFormatCNPJ(t *testing.T) {
	if got := FormatCNPJ("11222333000181"); got != "11.222.333/0001-81" {
		t.Errorf("FormatCNPJ = %s", got)
	}
	// invalid input comes back unchanged
	if got := FormatCNPJ("123"); got != "123" {
		t.Errorf("FormatCNPJ(123) = %s", got)
	}
}

func TestNormalizeText(t *testing.T) {
	cases := map[string]string{
		"Açougue  São   João": "ACOUGUE SAO JOAO",
		"  padaria central ":  "PADARIA CENTRAL",
		"José & Cia":          "JOSE & CIA",
	}
	for in, want := range cases {
		if got := NormalizeText(in); got != want {
			t.Errorf("NormalizeText(%q) = %q, want %q", in, got, want)
		}
	}
}
