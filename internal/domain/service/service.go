package service

import (
	"time"

	"github.com/bedtime-patrol/bedtime-bot/internal/config"
	"github.com/bedtime-patrol/bedtime-bot/internal/domain/contract"
)

type Services struct {
	Curfew    *curfewService
	Scheduler *reportScheduler
}

func New(dm contract.DataManager, slackClient contract.SlackClient, cfg *config.Config) *Services {
	curfew := newCurfew(dm, slackClient, cfg)

	return &Services{
		Curfew:    curfew,
		Scheduler: newReportScheduler(curfew, cfg, time.Now),
	}
}
