package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/octobees/leads-outreach/api/internal/config"
	"github.com/octobees/leads-outreach/api/internal/database"
	"github.com/octobees/leads-outreach/api/internal/dto"
	"github.com/octobees/leads-outreach/api/internal/handler"
	middlewarepkg "github.com/octobees/leads-outreach/api/internal/middleware"
	"github.com/octobees/leads-outreach/api/internal/repository"
	"github.com/octobees/leads-outreach/api/internal/router"
	"github.com/octobees/leads-outreach/api/internal/service"
	"github.com/octobees/leads-outreach/api/internal/service/linkage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := config.InitLogger(cfg.Log); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = zap.L().Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		zap.L().Fatal("failed to connect database", zap.Error(err))
	}
	defer pool.Close()

	contactsRepo := repository.NewPGXContactsRepository(pool)
	statusRepo := repository.NewPGXStatusRepository(pool)

	webhook, err := handler.NewWebhookClient(nil, cfg.CRM.WebhookURL, cfg.CRM.WebhookAudience)
	if err != nil {
		zap.L().Fatal("failed to build crm webhook client", zap.Error(err))
	}

	filter := dto.ContactFilter{SourceTag: cfg.Contacts.SourceTag, PhonePrefix: cfg.Contacts.PhonePrefix}
	companiesService := service.NewCompaniesService(contactsRepo, statusRepo, linkage.NewAggregator(cfg.Locale), filter, cfg.DefaultOwner)
	statusService := service.NewStatusService(statusRepo)
	crmService := service.NewCRMService(webhook, cfg.CRM.SourceTag, cfg.Contacts.PhoneRegion)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(middlewarepkg.RequestTimeout(cfg.RequestTimeout))
	e.Use(echoMiddleware.Recover())

	router.Register(e, cfg, router.Handlers{
		Companies: handler.NewCompaniesHandler(companiesService),
		Status:    handler.NewStatusHandler(statusService),
		CRM:       handler.NewCRMHandler(crmService),
		Health:    handler.NewHealthHandler(contactsRepo),
	})

	serverErr := make(chan error, 1)
	go func() {
		zap.L().Info("server starting", zap.String("port", cfg.Port))
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		zap.L().Info("shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("server error", zap.Error(err))
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("graceful shutdown failed", zap.Error(err))
	}
}
