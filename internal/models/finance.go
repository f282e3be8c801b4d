package models

import "time"

// FinanceRecord is one calendar day's cash-flow snapshot for a user.
// The document key is "{userID}_{isoDate}", so a date exists at most once
// per user. Amounts are stored as reported; ValorAPagar is nil until an
// accounts-payable import (or calendar edit) sets it.
type FinanceRecord struct {
	DocID  string `gorm:"primaryKey;size:64"`
	UserID uint   `gorm:"index;not null"`
	Date   string `gorm:"size:10;index;not null"` // ISO, YYYY-MM-DD

	Credito  float64 `gorm:"not null;default:0"`
	Debito   float64 `gorm:"not null;default:0"`
	Pix      float64 `gorm:"not null;default:0"`
	Dinheiro float64 `gorm:"not null;default:0"`
	Alelo    float64 `gorm:"not null;default:0"`
	Ticket   float64 `gorm:"not null;default:0"`
	VR       float64 `gorm:"column:vr;not null;default:0"`
	Sodexo   float64 `gorm:"not null;default:0"`

	ValorAPagar *float64 `gorm:"column:valor_a_pagar"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (FinanceRecord) TableName() string { return "financeiros" }
