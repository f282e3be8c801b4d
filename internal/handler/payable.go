package handler

import (
	"net/http"

	"fluxo-caixa/internal/middleware"
	"fluxo-caixa/internal/reconcile"
	"fluxo-caixa/internal/store"
	"fluxo-caixa/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PayableHandler ingests the consolidated accounts-payable report and
// reconciles it against the stored calendar.
type PayableHandler struct {
	Finances  *store.FinanceStore
	Log       *zap.Logger
	MaxSizeMB int64
}

func NewPayableHandler(finances *store.FinanceStore, log *zap.Logger, maxSizeMB int64) *PayableHandler {
	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}
	return &PayableHandler{Finances: finances, Log: log, MaxSizeMB: maxSizeMB}
}

type importedRow struct {
	Label           string  `json:"label"`
	Amount          float64 `json:"amount"`
	AmountFormatted string  `json:"amount_formatted"`
}

// Import receives an .xls/.xlsx report as the multipart field "file",
// extracts its due-date rows and writes the ones that are new or changed.
func (h *PayableHandler) Import(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Não autenticado.")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Envie o arquivo no campo 'file'.")
		return
	}
	if fileHeader.Size > h.MaxSizeMB*1024*1024 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Arquivo muito grande.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Erro ao ler o arquivo enviado.")
		return
	}
	defer file.Close()

	rows, err := reconcile.ExtractRows(file, fileHeader.Filename)
	if err != nil {
		h.Log.Warn("falha ao abrir planilha",
			zap.String("filename", fileHeader.Filename),
			zap.Error(err))
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam,
			"Formatação do arquivo inválida. Use o relatório de Contas a Pagar - Consolidado.")
		return
	}
	if len(rows) == 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam,
			"Formatação do arquivo inválida. Use o relatório de Contas a Pagar - Consolidado.")
		return
	}

	current, err := h.Finances.FetchFinances(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Erro ao buscar finanças.")
		return
	}

	plan := reconcile.Plan(rows, current, user.ID)
	result := h.Finances.ApplyUpserts(user.ID, plan, h.Log)

	h.Log.Info("importação de contas a pagar",
		zap.Uint("user_id", user.ID),
		zap.Int("rows", len(rows)),
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated),
		zap.Int("failed", result.Failed))

	items := make([]importedRow, 0, len(rows))
	for _, row := range rows {
		amount := row.Amount.InexactFloat64()
		items = append(items, importedRow{
			Label:           row.Label,
			Amount:          amount,
			AmountFormatted: util.FormatCurrency(amount),
		})
	}

	util.Success(c, util.Response{
		"rows":    items,
		"created": result.Created,
		"updated": result.Updated,
		"failed":  result.Failed,
	})
}
