package handler

import (
	"encoding/csv"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"fluxo-caixa/internal/finance"
	"fluxo-caixa/internal/middleware"
	"fluxo-caixa/internal/store"
	"fluxo-caixa/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler renders the projection and the raw calendar as files.
type ExportHandler struct {
	Finances *store.FinanceStore
}

func NewExportHandler(finances *store.FinanceStore) *ExportHandler {
	return &ExportHandler{Finances: finances}
}

// ProjectionXLSX writes the balance projection as an .xlsx workbook with
// one row per business day.
func (h *ExportHandler) ProjectionXLSX(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Não autenticado.")
		return
	}

	startingBalance, err := strconv.ParseFloat(c.Query("starting_balance"), 64)
	if err != nil || math.IsNaN(startingBalance) || math.IsInf(startingBalance, 0) {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Informe o saldo do dia.")
		return
	}
	if startingBalance < 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "O valor deve ser maior que zero.")
		return
	}
	excludeToday := c.Query("exclude_today") == "true"

	records, err := h.Finances.FetchFinances(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Erro ao buscar finanças.")
		return
	}
	projected := finance.Project(records, startingBalance, excludeToday)

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Fluxo de Caixa"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Data", "Dia", "Receber", "Pagar", "Saldo"}
	for i, hdr := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, hdr)
	}

	rowNum := 2
	for _, rec := range projected {
		if rec.IsWeekend() {
			continue
		}
		weekday := ""
		if t, err := util.ParseDateBR(rec.Date); err == nil {
			weekday = util.WeekdayNamePT(t)
		}
		balance := 0.0
		if rec.BalanceOfDay != nil {
			balance = *rec.BalanceOfDay
		}

		values := []interface{}{
			rec.Date,
			weekday,
			rec.TotalReceived(),
			finance.DisplayPayable(records, rec.Date),
			balance,
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, rowNum)
			f.SetCellValue(sheet, cell, v)
		}
		rowNum++
	}

	filename := fmt.Sprintf("fluxo-caixa-%s.xlsx", time.Now().Format(util.DateISO))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		_ = c.Error(err)
	}
}

// FinancesCSV dumps the stored calendar entries as CSV. A UTF-8 BOM is
// prepended so spreadsheet apps decode the accented headers correctly.
func (h *ExportHandler) FinancesCSV(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Não autenticado.")
		return
	}

	records, err := h.Finances.FetchFinances(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Erro ao buscar finanças.")
		return
	}

	filename := fmt.Sprintf("financeiro-%s.csv", time.Now().Format(util.DateISO))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	w := csv.NewWriter(c.Writer)
	defer w.Flush()

	w.Write([]string{"Data", "Crédito", "Débito", "Pix", "Dinheiro", "Alelo", "Ticket", "VR", "Sodexo", "Total Recebido", "Contas a Pagar"})
	for _, rec := range records {
		payable := ""
		if rec.ValorAPagar != nil {
			payable = formatNumber(*rec.ValorAPagar)
		}
		w.Write([]string{
			rec.Date,
			formatNumber(rec.Credito),
			formatNumber(rec.Debito),
			formatNumber(rec.Pix),
			formatNumber(rec.Dinheiro),
			formatNumber(rec.Alelo),
			formatNumber(rec.Ticket),
			formatNumber(rec.VR),
			formatNumber(rec.Sodexo),
			formatNumber(rec.TotalReceived()),
			payable,
		})
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
