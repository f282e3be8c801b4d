package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"fluxo-caixa/internal/config"
	"fluxo-caixa/internal/database"
	"fluxo-caixa/internal/logger"
	"fluxo-caixa/internal/router"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .env is optional; real deployments set FLC_* directly
	_ = godotenv.Load()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if cfg.Log.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0o755); err != nil {
			log.Fatalf("create log dir: %v", err)
		}
	}
	zlog, err := logger.Init(cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zlog.Sync()

	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	r := router.Setup(db, cfg, zlog)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	zlog.Info("servidor iniciado", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}
