package models

import (
	"strconv"
	"strings"
	"time"
)

// Supplier is a vendor with one or more payment terms (days after today a
// payment falls due). CNPJ is stored as raw 14 digits and is immutable
// after creation.
type Supplier struct {
	ID          string `gorm:"primaryKey;size:36"`
	UserID      uint   `gorm:"index;not null;uniqueIndex:idx_supplier_cnpj"`
	CompanyName string `gorm:"size:128;not null"`
	CNPJ        string `gorm:"size:14;not null;uniqueIndex:idx_supplier_cnpj"`
	// PaymentTerm holds the terms serialized ascending as "30,60,90".
	PaymentTerm string `gorm:"column:payment_term;size:128;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Terms decodes the serialized payment terms.
func (s *Supplier) Terms() []int {
	if s.PaymentTerm == "" {
		return nil
	}
	parts := strings.Split(s.PaymentTerm, ",")
	terms := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n <= 0 {
			continue
		}
		terms = append(terms, n)
	}
	return terms
}

// SetTerms encodes payment terms in ascending order.
func (s *Supplier) SetTerms(terms []int) {
	sorted := make([]int, 0, len(terms))
	sorted = append(sorted, terms...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j] < sorted[j-1]; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	parts := make([]string, len(sorted))
	for i, t := range sorted {
		parts[i] = strconv.Itoa(t)
	}
	s.PaymentTerm = strings.Join(parts, ",")
}
