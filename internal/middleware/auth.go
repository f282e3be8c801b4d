package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"fluxo-caixa/internal/models"
	"fluxo-caixa/internal/store"
	"fluxo-caixa/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the JWT and puts the current user into the
// request context.
func AuthMiddleware(jwtSecret string, users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		// 1) Header: Authorization: Bearer xxx
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenStr = parts[1]
			}
		}

		// 2) query parameter ?token=xxx, for download links that cannot
		// carry headers
		if tokenStr == "" {
			tokenStr = c.Query("token")
		}

		if tokenStr == "" {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Não autenticado.")
			c.Abort()
			return
		}

		claims, err := util.ParseToken(jwtSecret, tokenStr)
		if err != nil || claims.ExpiresAt == nil || claims.ExpiresAt.Before(time.Now()) {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Sessão expirada, faça login novamente.")
			c.Abort()
			return
		}

		user, err := users.GetByID(claims.UserID)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Usuário não encontrado.")
			} else {
				util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Erro ao consultar usuário.")
			}
			c.Abort()
			return
		}

		if user.Disabled {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Essa conta está desativada.")
			c.Abort()
			return
		}

		c.Set("currentUser", user)
		c.Next()
	}
}

// CurrentUser fetches the authenticated user placed by AuthMiddleware.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get("currentUser")
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
