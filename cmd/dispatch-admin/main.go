package main

import (
	"fmt"
	"os"

	"github.com/nurpe/dispatch-admin/internal/auth"
	"github.com/nurpe/dispatch-admin/internal/config"
	"github.com/nurpe/dispatch-admin/internal/db"
	"github.com/nurpe/dispatch-admin/internal/excel"
	httphandler "github.com/nurpe/dispatch-admin/internal/http"
	"github.com/nurpe/dispatch-admin/internal/http/middleware"
	"github.com/nurpe/dispatch-admin/internal/logger"
	"github.com/nurpe/dispatch-admin/internal/pdf"
	"github.com/nurpe/dispatch-admin/internal/repository"
	"github.com/nurpe/dispatch-admin/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	ledgerRepo := repository.NewLedgerRepository(database)
	staffRepo := repository.NewStaffRepository(database)
	fieldWorkRepo := repository.NewFieldWorkRepository(database)
	transactionRepo := repository.NewTransactionRepository(database)
	directoryRepo := repository.NewDirectoryRepository(database)

	excelGenerator := excel.NewGenerator()
	pdfGenerator, err := pdf.NewGenerator()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init pdf generator")
	}

	ledgerService := service.NewLedgerService(ledgerRepo, directoryRepo, excelGenerator, pdfGenerator, cfg)
	staffService := service.NewStaffService(staffRepo, ledgerRepo, cfg)
	fieldWorkService := service.NewFieldWorkService(fieldWorkRepo)
	transactionService := service.NewTransactionService(transactionRepo)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(ledgerService, staffService, fieldWorkService, transactionService, log)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, auth.RolePolicy{}, authMiddleware, log, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting dispatch admin service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
