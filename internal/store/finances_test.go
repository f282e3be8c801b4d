package store

import (
	"testing"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fluxo-caixa/internal/models"
	"fluxo-caixa/internal/reconcile"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.FinanceRecord{}, &models.Supplier{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestCreateOrUpdateFinanceCreatedFlag(t *testing.T) {
	s := NewFinanceStore(testDB(t))

	rec := models.FinanceRecord{
		DocID:   DocID(1, "2026-09-21"),
		UserID:  1,
		Date:    "2026-09-21",
		Credito: 10,
	}

	created, err := s.CreateOrUpdateFinance(rec, []string{"credito"})
	if err != nil {
		t.Fatalf("first write: %v", err)
	}
	if !created {
		t.Errorf("first write: created = false, want true")
	}

	rec.Credito = 20
	created, err = s.CreateOrUpdateFinance(rec, []string{"credito"})
	if err != nil {
		t.Fatalf("second write: %v", err)
	}
	if created {
		t.Errorf("second write: created = true, want false")
	}

	var got models.FinanceRecord
	if err := s.DB.First(&got, "doc_id = ?", rec.DocID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Credito != 20 {
		t.Errorf("credito = %v, want 20", got.Credito)
	}
}

func TestApplyUpsertsCountsCreatedAndUpdated(t *testing.T) {
	s := NewFinanceStore(testDB(t))

	existing := models.FinanceRecord{
		DocID:  DocID(1, "2026-09-21"),
		UserID: 1,
		Date:   "2026-09-21",
	}
	if err := s.DB.Create(&existing).Error; err != nil {
		t.Fatalf("seed record: %v", err)
	}
	seed := models.User{ID: 1, Email: "a@b.com", PasswordHash: "x"}
	if err := s.DB.Create(&seed).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	plan := []reconcile.Upsert{
		{DocID: DocID(1, "2026-09-21"), DateISO: "2026-09-21", Valor: 100},
		{DocID: DocID(1, "2026-09-22"), DateISO: "2026-09-22", Valor: 50},
	}

	result := s.ApplyUpserts(1, plan, zap.NewNop())

	if result.Created != 1 || result.Updated != 1 || result.Failed != 0 {
		t.Errorf("result = %+v, want created 1, updated 1, failed 0", result)
	}

	var user models.User
	if err := s.DB.First(&user, 1).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if user.LastUpdatedPayments == nil {
		t.Errorf("lastUpdatedPayments not touched")
	}
}
