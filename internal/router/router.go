package router

import (
	"net/http"

	"fluxo-caixa/internal/config"
	"fluxo-caixa/internal/handler"
	"fluxo-caixa/internal/middleware"
	"fluxo-caixa/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Setup wires all routes onto a gin engine.
func Setup(db *gorm.DB, cfg *config.Config, log *zap.Logger) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	finances := store.NewFinanceStore(db)
	suppliers := store.NewSupplierStore(db)
	users := store.NewUserStore(db)

	authHandler := handler.NewAuthHandler(db, cfg.JWT.Secret, cfg.JWT.ExpireHours, cfg.Security.BcryptCost)
	userHandler := handler.NewUserHandler()
	profileHandler := handler.NewProfileHandler(db, cfg.Security.BcryptCost)
	financeHandler := handler.NewFinanceHandler(finances)
	payableHandler := handler.NewPayableHandler(finances, log, cfg.Upload.MaxSizeMB)
	supplierHandler := handler.NewSupplierHandler(suppliers, finances)
	exportHandler := handler.NewExportHandler(finances)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(cfg.JWT.Secret, users))
	{
		protected.GET("/me", userHandler.GetMe)
		protected.PUT("/me/profile", profileHandler.UpdateProfile)
		protected.PUT("/me/password", profileHandler.ChangePassword)

		protected.GET("/finances", financeHandler.ListFinances)
		protected.GET("/finances/projection", financeHandler.Projection)
		protected.PUT("/finances/:date", financeHandler.UpsertDay)

		protected.POST("/payables/import", payableHandler.Import)

		protected.GET("/suppliers", supplierHandler.List)
		protected.POST("/suppliers", supplierHandler.Create)
		protected.PUT("/suppliers/:id", supplierHandler.Update)
		protected.DELETE("/suppliers/:id", supplierHandler.Delete)
		protected.GET("/suppliers/:id/schedule", supplierHandler.Schedule)

		protected.GET("/export/projection.xlsx", exportHandler.ProjectionXLSX)
		protected.GET("/export/finances.csv", exportHandler.FinancesCSV)
	}

	return r
}
