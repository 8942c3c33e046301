package scheduler

import (
	"context"
	"log/slog"
	"time"

	portssvc "github.com/eggkhata/egg_khata_app/internal/core/ports/services"
	"github.com/robfig/cron/v3"
)

// Scheduler runs background jobs on a cron schedule.
type Scheduler struct {
	cron        *cron.Cron
	logger      *slog.Logger
	rateService portssvc.RateSvcFacade
}

// New creates a Scheduler with its jobs registered but not yet running.
func New(logger *slog.Logger, rateService portssvc.RateSvcFacade) (*Scheduler, error) {
	s := &Scheduler{
		cron:        cron.New(),
		logger:      logger,
		rateService: rateService,
	}

	// Board rates are usually set first thing in the morning. Nudge the
	// operator at 06:00 if today's board is still empty.
	if _, err := s.cron.AddFunc("0 6 * * *", s.checkTodayRates); err != nil {
		return nil, err
	}

	return s, nil
}

// Start begins running scheduled jobs in their own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Scheduler started")
}

// Stop stops the scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Scheduler stopped")
}

func (s *Scheduler) checkTodayRates() {
	// cron jobs get no context; use a short deadline per run
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	rates, err := s.rateService.GetTodayRates(ctx, time.Now())
	if err != nil {
		s.logger.Error("Failed to check today's board rates", slog.String("error", err.Error()))
		return
	}

	if len(rates) == 0 {
		s.logger.Warn("No board rates set for today")
		return
	}

	s.logger.Info("Board rates present for today", slog.Int("count", len(rates)))
}
