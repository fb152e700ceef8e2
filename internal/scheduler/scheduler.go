package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/vighnaharta/engineers-backend/internal/config"
	"github.com/vighnaharta/engineers-backend/internal/service/carousel"
)

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron        *cron.Cron
	carouselSvc *carousel.Service
	cfg         config.Config
	logger      *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.Config, carouselSvc *carousel.Service, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:        cron.New(),
		carouselSvc: carouselSvc,
		cfg:         cfg,
		logger:      logger,
	}
}

// Start registers the periodic content refresh and starts the scheduler.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler",
		zap.String("content_refresh_schedule", s.cfg.Carousel.RefreshSchedule))

	_, err := s.cron.AddFunc(s.cfg.Carousel.RefreshSchedule, s.refreshContent)
	if err != nil {
		s.logger.Error("failed to schedule content refresh", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) refreshContent() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.carouselSvc.Refresh(ctx); err != nil {
		s.logger.Error("content refresh failed", zap.Error(err))
		return
	}
	s.logger.Debug("content refreshed")
}
