package main

import (
	"database/sql"
	"log"
	"net/http"

	"orderdesk-be/internal/config"
	"orderdesk-be/internal/db"
	"orderdesk-be/internal/logger"
	"orderdesk-be/internal/order"
	"orderdesk-be/internal/report"
	"orderdesk-be/internal/rest"
	"orderdesk-be/internal/user"

	"go.uber.org/zap"
)

// Swappable seams for tests.
var (
	initDBFunc      = db.InitDB
	startServerFunc = http.ListenAndServe
)

func newServer(database *sql.DB) http.Handler {
	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo)

	reportRepo := report.NewRepository(database)
	reportSvc := report.NewService(reportRepo, orderRepo)

	h := rest.NewHandler(userSvc, orderSvc, reportSvc, database)
	return rest.NewRouter(h)
}

func run() error {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := initDBFunc(cfg)
	defer database.Close()

	router := newServer(database)

	logger.L().Info("server listening", zap.String("port", cfg.AppPort))
	return startServerFunc(":"+cfg.AppPort, router)
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
