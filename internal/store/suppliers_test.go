package store

import (
	"testing"

	"fluxo-caixa/internal/models"
)

func supplier(name string, terms ...int) models.Supplier {
	s := models.Supplier{CompanyName: name}
	s.SetTerms(terms)
	return s
}

func TestSortSuppliersByNumericFirstTerm(t *testing.T) {
	suppliers := []models.Supplier{
		supplier("Trinta", 30),
		supplier("Sete", 7),
		supplier("Cem", 100),
	}

	sortSuppliers(suppliers)

	// numeric order, not the lexicographic order of the serialized column
	// ("100" < "30" < "7")
	want := []string{"Sete", "Trinta", "Cem"}
	for i, name := range want {
		if suppliers[i].CompanyName != name {
			t.Fatalf("position %d = %s, want %s", i, suppliers[i].CompanyName, name)
		}
	}
}

func TestSortSuppliersBreaksTiesByCompanyName(t *testing.T) {
	suppliers := []models.Supplier{
		supplier("Bravo", 30, 60),
		supplier("Alfa", 30),
	}

	sortSuppliers(suppliers)

	if suppliers[0].CompanyName != "Alfa" || suppliers[1].CompanyName != "Bravo" {
		t.Errorf("order = [%s %s], want [Alfa Bravo]", suppliers[0].CompanyName, suppliers[1].CompanyName)
	}
}

func TestSortSuppliersWithoutTermsGoLast(t *testing.T) {
	suppliers := []models.Supplier{
		supplier("Sem Prazo"),
		supplier("Noventa", 90),
	}

	sortSuppliers(suppliers)

	if suppliers[0].CompanyName != "Noventa" {
		t.Errorf("first = %s, want Noventa", suppliers[0].CompanyName)
	}
}
