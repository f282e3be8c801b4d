package handler

import (
	"errors"
	"math"
	"net/http"
	"strings"
	"time"

	"fluxo-caixa/internal/finance"
	"fluxo-caixa/internal/middleware"
	"fluxo-caixa/internal/models"
	"fluxo-caixa/internal/store"
	"fluxo-caixa/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/schollz/closestmatch"
)

// SupplierHandler owns the supplier registry and its payment schedule.
type SupplierHandler struct {
	Suppliers *store.SupplierStore
	Finances  *store.FinanceStore
}

func NewSupplierHandler(suppliers *store.SupplierStore, finances *store.FinanceStore) *SupplierHandler {
	return &SupplierHandler{Suppliers: suppliers, Finances: finances}
}

// ---------- request/response shapes ----------

type supplierReq struct {
	CompanyName string `json:"company_name" binding:"required,max=128"`
	CNPJ        string `json:"cnpj"`
	PaymentTerm []int  `json:"payment_term" binding:"required,min=1"`
}

type supplierResp struct {
	ID            string `json:"id"`
	CompanyName   string `json:"company_name"`
	CNPJ          string `json:"cnpj"`
	CNPJFormatted string `json:"cnpj_formatted"`
	PaymentTerm   []int  `json:"payment_term"`
}

func toSupplierResp(s *models.Supplier) supplierResp {
	return supplierResp{
		ID:            s.ID,
		CompanyName:   s.CompanyName,
		CNPJ:          s.CNPJ,
		CNPJFormatted: util.FormatCNPJ(s.CNPJ),
		PaymentTerm:   s.Terms(),
	}
}

func validTerms(terms []int) bool {
	for _, t := range terms {
		if t <= 0 {
			return false
		}
	}
	return len(terms) > 0
}

// ---------- list / search ----------

// List returns the user's suppliers. ?cnpj= looks one up by tax id; ?q=
// filters by name, falling back to fuzzy matching when no substring hits.
func (h *SupplierHandler) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Não autenticado.")
		return
	}

	if cnpj := c.Query("cnpj"); cnpj != "" {
		if err := util.ValidateCNPJ(cnpj); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
			return
		}
		supplier, err := h.Suppliers.FindByCNPJ(user.ID, util.CNPJDigits(cnpj))
		if errors.Is(err, store.ErrSupplierNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "Fornecedor não encontrado.")
			return
		}
		if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Erro ao buscar fornecedores.")
			return
		}
		util.Success(c, util.Response{"items": []supplierResp{toSupplierResp(supplier)}})
		return
	}

	suppliers, err := h.Suppliers.FetchSuppliers(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Erro ao buscar fornecedores.")
		return
	}

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		suppliers = searchByName(suppliers, q)
	}

	items := make([]supplierResp, 0, len(suppliers))
	for i := range suppliers {
		items = append(items, toSupplierResp(&suppliers[i]))
	}
	util.Success(c, util.Response{"items": items})
}

// searchByName filters suppliers by normalized substring match and, when
// nothing matches, falls back to the closest fuzzy name hit.
func searchByName(suppliers []models.Supplier, q string) []models.Supplier {
	needle := util.NormalizeText(q)

	var hits []models.Supplier
	for i := range suppliers {
		if strings.Contains(util.NormalizeText(suppliers[i].CompanyName), needle) {
			hits = append(hits, suppliers[i])
		}
	}
	if len(hits) > 0 || len(suppliers) == 0 {
		return hits
	}

	names := make([]string, len(suppliers))
	byName := make(map[string]int, len(suppliers))
	for i := range suppliers {
		normalized := util.NormalizeText(suppliers[i].CompanyName)
		names[i] = normalized
		byName[normalized] = i
	}

	cm := closestmatch.New(names, []int{2, 3})
	best := cm.Closest(needle)
	if best == "" {
		return nil
	}
	return []models.Supplier{suppliers[byName[best]]}
}

// ---------- create / update / delete ----------

func (h *SupplierHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Não autenticado.")
		return
	}

	var req supplierReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Parâmetros inválidos.")
		return
	}

	req.CompanyName = strings.TrimSpace(req.CompanyName)
	if req.CompanyName == "" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Informe a razão social.")
		return
	}
	if err := util.ValidateCNPJ(req.CNPJ); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}
	if !validTerms(req.PaymentTerm) {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Informe ao menos um prazo de pagamento válido.")
		return
	}

	supplier, err := h.Suppliers.CreateSupplier(user.ID, req.CompanyName, util.CNPJDigits(req.CNPJ), req.PaymentTerm)
	if errors.Is(err, store.ErrSupplierExists) {
		util.Error(c, http.StatusConflict, util.CodeConflict, "Fornecedor já cadastrado.")
		return
	}
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Erro ao cadastrar fornecedor.")
		return
	}

	util.Success(c, util.Response{
		"message":  "Fornecedor cadastrado com sucesso!",
		"supplier": toSupplierResp(supplier),
	})
}

func (h *SupplierHandler) Update(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Não autenticado.")
		return
	}

	var req supplierReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Parâmetros inválidos.")
		return
	}

	req.CompanyName = strings.TrimSpace(req.CompanyName)
	if req.CompanyName == "" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Informe a razão social.")
		return
	}
	if !validTerms(req.PaymentTerm) {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Informe ao menos um prazo de pagamento válido.")
		return
	}

	supplier, err := h.Suppliers.UpdateSupplier(user.ID, c.Param("id"), req.CompanyName, req.PaymentTerm)
	if errors.Is(err, store.ErrSupplierNotFound) {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "Fornecedor não encontrado.")
		return
	}
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Erro ao atualizar fornecedor.")
		return
	}

	util.Success(c, util.Response{
		"message":  "Fornecedor atualizado com sucesso!",
		"supplier": toSupplierResp(supplier),
	})
}

func (h *SupplierHandler) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Não autenticado.")
		return
	}

	err := h.Suppliers.DeleteSupplier(user.ID, c.Param("id"))
	if errors.Is(err, store.ErrSupplierNotFound) {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "Fornecedor não encontrado.")
		return
	}
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Erro ao excluir fornecedor.")
		return
	}

	util.Success(c, util.Response{"message": "Fornecedor excluído com sucesso!"})
}

// ---------- payment schedule ----------

// Schedule projects each of the supplier's payment terms onto a due date
// and the payable already registered for that date.
func (h *SupplierHandler) Schedule(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Não autenticado.")
		return
	}

	supplier, err := h.Suppliers.GetByID(user.ID, c.Param("id"))
	if errors.Is(err, store.ErrSupplierNotFound) {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "Fornecedor não encontrado.")
		return
	}
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Erro ao buscar fornecedor.")
		return
	}

	records, err := h.Finances.FetchFinances(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Erro ao buscar finanças.")
		return
	}

	schedule := finance.Schedule(supplier.Terms(), records, time.Now())
	for i := range schedule {
		schedule[i].TotalToPay = roundCents(schedule[i].TotalToPay)
	}

	util.Success(c, util.Response{
		"supplier": toSupplierResp(supplier),
		"schedule": schedule,
	})
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
