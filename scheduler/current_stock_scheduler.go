package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

const CurrentStockSpec = "@every 5m"

// QuoteSaver persists the latest quotes.
type QuoteSaver interface {
	SaveAllQuotesToDb(ctx context.Context) error
}

// CurrentStockScheduler refreshes the current_stocks collection on a fixed
// interval.
type CurrentStockScheduler struct {
	Cron    *cron.Cron
	saver   QuoteSaver
	timeout time.Duration
}

func NewCurrentStockScheduler(saver QuoteSaver) *CurrentStockScheduler {
	return &CurrentStockScheduler{
		Cron:    cron.New(),
		saver:   saver,
		timeout: time.Minute,
	}
}

func (s *CurrentStockScheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.RunOnce); err != nil {
		return fmt.Errorf("register current stock task: %w", err)
	}
	return nil
}

// RunOnce saves the quotes once. Failures are logged; the next tick runs
// regardless.
func (s *CurrentStockScheduler) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	log.Info().Msg("Starting scheduled task to save stock quotes to DB.")
	if err := s.saver.SaveAllQuotesToDb(ctx); err != nil {
		log.Error().Err(err).Msg("Scheduled quote save failed")
		return
	}
	log.Info().Msg("Scheduled task completed successfully.")
}

func (s *CurrentStockScheduler) Start() {
	s.Cron.Start()
	log.Info().Str("spec", CurrentStockSpec).Msg("current stock scheduler started")
}

func (s *CurrentStockScheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Info().Msg("current stock scheduler stopped")
}
