package handler

import (
	"net/http"
	"strings"

	"fluxo-caixa/internal/middleware"
	"fluxo-caixa/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ProfileHandler lets a user edit their own account.
type ProfileHandler struct {
	DB         *gorm.DB
	BcryptCost int
}

func NewProfileHandler(db *gorm.DB, bcryptCost int) *ProfileHandler {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &ProfileHandler{DB: db, BcryptCost: bcryptCost}
}

type updateProfileReq struct {
	DisplayName string `json:"display_name" binding:"required,max=64"`
}

// UpdateProfile changes the display name.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Não autenticado.")
		return
	}

	var req updateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Parâmetros inválidos.")
		return
	}

	name := strings.TrimSpace(req.DisplayName)
	if name == "" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Informe um nome.")
		return
	}

	user.DisplayName = name
	if err := h.DB.Save(user).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Erro ao salvar o perfil.")
		return
	}

	util.Success(c, util.Response{
		"message": "Perfil atualizado com sucesso!",
		"user":    userResp(user),
	})
}

type changePasswordReq struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// ChangePassword verifies the current password and stores a new hash.
func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Não autenticado.")
		return
	}

	var req changePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Parâmetros inválidos.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Senha incorreta.")
		return
	}

	if !isStrongPassword(req.NewPassword) {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "A senha deve ter 8-32 caracteres, com maiúsculas, minúsculas e números.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), h.BcryptCost)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Erro ao proteger a senha.")
		return
	}

	user.PasswordHash = string(hash)
	if err := h.DB.Save(user).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Erro ao salvar a senha.")
		return
	}

	util.Success(c, util.Response{"message": "Senha alterada com sucesso!"})
}
