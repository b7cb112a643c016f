package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/bedtime-patrol/bedtime-bot/internal/config"
	"github.com/bedtime-patrol/bedtime-bot/internal/domain"
)

// reportScheduler fires once per day at the configured report time (in the
// report timezone) and publishes the night that just ended. A failed publish
// is logged and not retried until the next day.
type reportScheduler struct {
	curfew   *curfewService
	cfg      *config.Config
	stopChan chan struct{}
	running  bool
	now      func() time.Time
}

func newReportScheduler(curfew *curfewService, cfg *config.Config, now func() time.Time) *reportScheduler {
	return &reportScheduler{
		curfew:   curfew,
		cfg:      cfg,
		stopChan: make(chan struct{}),
		now:      now,
	}
}

func (s *reportScheduler) Start() {
	if s.running {
		return
	}
	s.running = true
	log.Println("Report scheduler starting...")
	go s.mainLoop()
}

func (s *reportScheduler) Stop() {
	if !s.running {
		return
	}
	log.Println("Report scheduler stopping...")
	close(s.stopChan)
	s.running = false
}

func (s *reportScheduler) mainLoop() {
	for {
		nextTime := s.nextReportTime(s.now())
		log.Printf("Next report at %s", nextTime.Format("2006-01-02 15:04:05 MST"))

		timer := time.NewTimer(time.Until(nextTime))

		select {
		case <-timer.C:
			s.publishReport()
			// Wait 1 minute to prevent re-processing the same time
			time.Sleep(1 * time.Minute)

		case <-s.stopChan:
			timer.Stop()
			return
		}
	}
}

// nextReportTime is the next occurrence of the report time in the report
// timezone.
func (s *reportScheduler) nextReportTime(now time.Time) time.Time {
	local := now.In(s.cfg.Location)
	next := time.Date(local.Year(), local.Month(), local.Day(),
		s.cfg.ReportAt.Hour(), s.cfg.ReportAt.Minute(), 0, 0, s.cfg.Location)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

func (s *reportScheduler) publishReport() {
	// At 07:00 the current night is the one whose window closed at 06:00.
	night := domain.NightFor(s.now(), s.cfg.Location)

	err := s.curfew.Publish(context.Background(), night)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyPublished) {
			log.Printf("Report for night %s was already published, skipping", night)
			return
		}
		log.Printf("Failed to publish report for night %s: %v", night, err)
	}
}
