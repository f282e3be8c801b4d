package handler

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"fluxo-caixa/internal/finance"
	"fluxo-caixa/internal/middleware"
	"fluxo-caixa/internal/models"
	"fluxo-caixa/internal/store"
	"fluxo-caixa/internal/util"

	"github.com/gin-gonic/gin"
)

// FinanceHandler owns the calendar entries and the balance projection.
type FinanceHandler struct {
	Finances *store.FinanceStore
}

func NewFinanceHandler(finances *store.FinanceStore) *FinanceHandler {
	return &FinanceHandler{Finances: finances}
}

// ---------- request/response shapes ----------

type financeResp struct {
	ID            string   `json:"id"`
	Date          string   `json:"date"`
	Credito       float64  `json:"credito"`
	Debito        float64  `json:"debito"`
	Pix           float64  `json:"pix"`
	Dinheiro      float64  `json:"dinheiro"`
	Alelo         float64  `json:"alelo"`
	Ticket        float64  `json:"ticket"`
	VR            float64  `json:"vr"`
	Sodexo        float64  `json:"sodexo"`
	ValorAPagar   *float64 `json:"valor_a_pagar"`
	TotalReceived float64  `json:"total_received"`
}

func toFinanceResp(rec finance.Record) financeResp {
	return financeResp{
		ID:            rec.ID,
		Date:          rec.Date,
		Credito:       rec.Credito,
		Debito:        rec.Debito,
		Pix:           rec.Pix,
		Dinheiro:      rec.Dinheiro,
		Alelo:         rec.Alelo,
		Ticket:        rec.Ticket,
		VR:            rec.VR,
		Sodexo:        rec.Sodexo,
		ValorAPagar:   rec.ValorAPagar,
		TotalReceived: rec.TotalReceived(),
	}
}

type dayEntryReq struct {
	Credito  float64 `json:"credito" binding:"min=0"`
	Debito   float64 `json:"debito" binding:"min=0"`
	Pix      float64 `json:"pix" binding:"min=0"`
	Dinheiro float64 `json:"dinheiro" binding:"min=0"`
	Alelo    float64 `json:"alelo" binding:"min=0"`
	Ticket   float64 `json:"ticket" binding:"min=0"`
	VR       float64 `json:"vr" binding:"min=0"`
	Sodexo   float64 `json:"sodexo" binding:"min=0"`
}

var dayEntryColumns = []string{"credito", "debito", "pix", "dinheiro", "alelo", "ticket", "vr", "sodexo"}

// ---------- list ----------

// ListFinances returns the records from today on, ascending.
func (h *FinanceHandler) ListFinances(c *gin.Context) {
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

	items := make([]financeResp, 0, len(records))
	for _, rec := range records {
		items = append(items, toFinanceResp(rec))
	}

	util.Success(c, util.Response{"items": items})
}

// ---------- calendar entry ----------

// UpsertDay saves the eight payment-method amounts for one ISO date.
func (h *FinanceHandler) UpsertDay(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Não autenticado.")
		return
	}

	dateISO := c.Param("date")
	if _, err := time.Parse(util.DateISO, dateISO); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Data inválida, use YYYY-MM-DD.")
		return
	}
	if dateISO < time.Now().Format(util.DateISO) {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "A data não pode ser anterior a hoje.")
		return
	}

	var req dayEntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Parâmetros inválidos.")
		return
	}

	rec := models.FinanceRecord{
		DocID:    store.DocID(user.ID, dateISO),
		UserID:   user.ID,
		Date:     dateISO,
		Credito:  req.Credito,
		Debito:   req.Debito,
		Pix:      req.Pix,
		Dinheiro: req.Dinheiro,
		Alelo:    req.Alelo,
		Ticket:   req.Ticket,
		VR:       req.VR,
		Sodexo:   req.Sodexo,
	}

	if _, err := h.Finances.CreateOrUpdateFinance(rec, dayEntryColumns); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Erro ao salvar as informações.")
		return
	}

	util.Success(c, util.Response{"message": "Informações salvas com sucesso!"})
}

// ---------- projection ----------

type projectionRow struct {
	financeResp
	Weekday          string  `json:"weekday"`
	DisplayPayable   float64 `json:"display_payable"`
	BalanceOfDay     float64 `json:"balance_of_day"`
	ReceivedFmt      string  `json:"total_received_formatted"`
	PayableFmt       string  `json:"display_payable_formatted"`
	BalanceOfDayFmt  string  `json:"balance_of_day_formatted"`
	NegativeBalance  bool    `json:"negative_balance"`
}

// Projection runs the daily-balance fold and decorates each row with the
// weekday name and the roll-up-adjusted payable. view=table hides
// weekend rows; view=list keeps them.
func (h *FinanceHandler) Projection(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Não autenticado.")
		return
	}

	balanceStr := c.Query("starting_balance")
	startingBalance, err := strconv.ParseFloat(balanceStr, 64)
	if err != nil || math.IsNaN(startingBalance) || math.IsInf(startingBalance, 0) {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Informe o saldo do dia.")
		return
	}
	if startingBalance < 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "O valor deve ser maior que zero.")
		return
	}

	excludeToday := c.Query("exclude_today") == "true"
	view := c.DefaultQuery("view", "table")

	records, err := h.Finances.FetchFinances(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Erro ao buscar finanças.")
		return
	}

	projected := finance.Project(records, startingBalance, excludeToday)

	rows := make([]projectionRow, 0, len(projected))
	for _, rec := range projected {
		if view == "table" && rec.IsWeekend() {
			continue
		}

		weekday := ""
		if t, err := util.ParseDateBR(rec.Date); err == nil {
			weekday = util.WeekdayNamePT(t)
		}

		display := finance.DisplayPayable(records, rec.Date)
		balance := 0.0
		if rec.BalanceOfDay != nil {
			balance = *rec.BalanceOfDay
		}

		rows = append(rows, projectionRow{
			financeResp:     toFinanceResp(rec),
			Weekday:         weekday,
			DisplayPayable:  display,
			BalanceOfDay:    balance,
			ReceivedFmt:     util.FormatCurrency(rec.TotalReceived()),
			PayableFmt:      util.FormatCurrency(display),
			BalanceOfDayFmt: util.FormatCurrency(balance),
			NegativeBalance: balance <= 0,
		})
	}

	util.Success(c, util.Response{
		"starting_balance": startingBalance,
		"exclude_today":    excludeToday,
		"view":             view,
		"items":            rows,
	})
}
