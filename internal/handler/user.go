package handler

import (
	"net/http"

	"fluxo-caixa/internal/middleware"
	"fluxo-caixa/internal/models"
	"fluxo-caixa/internal/util"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes the authenticated user's own profile.
type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

func userResp(user *models.User) gin.H {
	resp := gin.H{
		"id":           user.ID,
		"email":        user.Email,
		"display_name": user.DisplayName,
	}
	if user.LastUpdatedPayments != nil {
		resp["last_updated_payments"] = user.LastUpdatedPayments
	}
	return resp
}

// GetMe returns the current user.
func (h *UserHandler) GetMe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Não autenticado.")
		return
	}
	util.Success(c, util.Response{"user": userResp(user)})
}
