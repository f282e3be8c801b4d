package store

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fluxo-caixa/internal/finance"
	"fluxo-caixa/internal/models"
	"fluxo-caixa/internal/reconcile"
	"fluxo-caixa/internal/util"
)

// FinanceStore owns access to the financeiros collection.
type FinanceStore struct {
	DB *gorm.DB
}

func NewFinanceStore(db *gorm.DB) *FinanceStore {
	return &FinanceStore{DB: db}
}

// DocID builds the composite document key that keeps a date unique per user.
func DocID(userID uint, dateISO string) string {
	return fmt.Sprintf("%d_%s", userID, dateISO)
}

// FetchFinances returns the user's records with date >= today, ascending,
// with dates rendered in the DD/MM/YYYY display format.
func (s *FinanceStore) FetchFinances(userID uint) ([]finance.Record, error) {
	today := time.Now().Format(util.DateISO)

	var rows []models.FinanceRecord
	if err := s.DB.
		Where("user_id = ? AND date >= ?", userID, today).
		Order("date ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("fetch finances: %w", err)
	}

	records := make([]finance.Record, 0, len(rows))
	for _, row := range rows {
		dateBR, err := util.BRFromISO(row.Date)
		if err != nil {
			dateBR = row.Date
		}
		records = append(records, finance.Record{
			ID:           row.DocID,
			Date:         dateBR,
			Credito:      row.Credito,
			Debito:       row.Debito,
			Pix:          row.Pix,
			Dinheiro:     row.Dinheiro,
			Alelo:        row.Alelo,
			Ticket:       row.Ticket,
			VR:           row.VR,
			Sodexo:       row.Sodexo,
			ValorAPagar:  row.ValorAPagar,
			BalanceOfDay: nil,
		})
	}
	return records, nil
}

// CreateOrUpdateFinance writes the selected columns of a record at its
// deterministic document key. It attempts a partial update first; when the
// document does not yet exist it falls back to a merge-write that creates
// it. Returns whether the fallback created the document.
func (s *FinanceStore) CreateOrUpdateFinance(rec models.FinanceRecord, cols []string) (bool, error) {
	res := s.DB.Model(&models.FinanceRecord{}).
		Where("doc_id = ?", rec.DocID).
		Select(cols).
		Updates(rec)
	if res.Error == nil && res.RowsAffected > 0 {
		return false, nil
	}

	// The update touched nothing, but the merge-write below can still take
	// its conflict branch (a concurrent writer, or the update erroring on an
	// existing row), so the created flag comes from row existence.
	var count int64
	if err := s.DB.Model(&models.FinanceRecord{}).
		Where("doc_id = ?", rec.DocID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("check finance %s: %w", rec.DocID, err)
	}

	err := s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "doc_id"}},
		DoUpdates: clause.AssignmentColumns(cols),
	}).Create(&rec).Error
	if err != nil {
		return false, fmt.Errorf("create finance %s: %w", rec.DocID, err)
	}
	return count == 0, nil
}

// ImportResult summarizes one reconciliation batch.
type ImportResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Failed  int `json:"failed"`
}

// ApplyUpserts executes a reconciliation plan row by row. A row whose write
// fails is logged and skipped; the batch is best-effort, not transactional.
// Each successful write touches the user's last-updated-payments timestamp.
func (s *FinanceStore) ApplyUpserts(userID uint, plan []reconcile.Upsert, log *zap.Logger) ImportResult {
	var result ImportResult
	for _, up := range plan {
		valor := up.Valor
		rec := models.FinanceRecord{
			DocID:       up.DocID,
			UserID:      userID,
			Date:        up.DateISO,
			ValorAPagar: &valor,
		}

		created, err := s.CreateOrUpdateFinance(rec, []string{"valor_a_pagar"})
		if err != nil {
			result.Failed++
			log.Error("falha ao gravar conta a pagar",
				zap.String("doc_id", up.DocID),
				zap.Float64("valor", up.Valor),
				zap.Error(err))
			continue
		}
		if created {
			result.Created++
		} else {
			result.Updated++
		}

		if err := s.DB.Model(&models.User{}).
			Where("id = ?", userID).
			Update("last_updated_payments", time.Now()).Error; err != nil {
			log.Warn("falha ao atualizar lastUpdatedPayments",
				zap.Uint("user_id", userID),
				zap.Error(err))
		}
	}
	return result
}
