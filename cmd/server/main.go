package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/vighnaharta/engineers-backend/internal/config"
	"github.com/vighnaharta/engineers-backend/internal/repository/mongodb"
	"github.com/vighnaharta/engineers-backend/internal/repository/sheets"
	"github.com/vighnaharta/engineers-backend/internal/repository/storage"
	"github.com/vighnaharta/engineers-backend/internal/scheduler"
	"github.com/vighnaharta/engineers-backend/internal/server/handlers"
	"github.com/vighnaharta/engineers-backend/internal/server/router"
	carouselsvc "github.com/vighnaharta/engineers-backend/internal/service/carousel"
	contactsvc "github.com/vighnaharta/engineers-backend/internal/service/contact"
	contentsvc "github.com/vighnaharta/engineers-backend/internal/service/content"
	invoicingsvc "github.com/vighnaharta/engineers-backend/internal/service/invoicing"
	"github.com/vighnaharta/engineers-backend/pkg/clients/identity"
	"github.com/vighnaharta/engineers-backend/pkg/clients/mailer"
	"github.com/vighnaharta/engineers-backend/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := mongoRepo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	uploader, err := storage.NewS3Uploader(cfg.Storage, baseLogger.Named("repo.storage"))
	if err != nil {
		baseLogger.Fatal("failed to init object storage uploader", zap.Error(err))
	}

	// The spreadsheet ledger is optional bookkeeping; invoices work without it.
	var ledger sheets.Ledger
	if cfg.SheetsEnabled() {
		sheetLedger, err := sheets.NewGoogleSheetLedger(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets ledger", zap.Error(err))
		}
		ledger = sheetLedger
		baseLogger.Info("invoice ledger export enabled")
	} else {
		baseLogger.Warn("sheets credentials missing, invoice ledger export disabled")
	}

	mailClient := mailer.NewClient(cfg.Mail)
	identityClient := identity.NewClient(cfg.Identity)

	contentSvc := contentsvc.NewService(mongoRepo, uploader, baseLogger.Named("svc.content"))
	invoicingSvc := invoicingsvc.NewService(mongoRepo, ledger, cfg.Invoice, baseLogger.Named("svc.invoicing"))
	contactSvc := contactsvc.NewService(mailClient, baseLogger.Named("svc.contact"))
	carouselSvc := carouselsvc.NewService(cfg.Carousel, mongoRepo, baseLogger.Named("svc.carousel"))

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	if err := carouselSvc.Refresh(startupCtx); err != nil {
		baseLogger.Warn("initial content refresh incomplete", zap.Error(err))
	}
	cancelStartup()

	carouselSvc.Start()
	defer carouselSvc.Stop()

	publicHandler := handlers.NewPublicHandler(carouselSvc, contentSvc, contactSvc, baseLogger.Named("handlers.public"))
	adminHandler := handlers.NewAdminHandler(identityClient, contentSvc, invoicingSvc, baseLogger.Named("handlers.admin"))
	engine := router.New(publicHandler, adminHandler, identityClient, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(*cfg, carouselSvc, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
