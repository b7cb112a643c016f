package contract

import (
	"context"
	"time"

	"github.com/bedtime-patrol/bedtime-bot/internal/domain"
)

// Report is a fully derived nightly report, ready to render.
type Report struct {
	Night      domain.Night
	Brackets   []ReportBracket
	Exemptions []string
}

// ReportBracket is one bracket line of the report. Members keeps recording
// order and may be empty; every bracket of the night's variant is present.
type ReportBracket struct {
	Name    string
	Members []string
}

// CurfewService is the command surface the handlers dispatch into.
type CurfewService interface {
	RecordEvent(ctx context.Context, slackUserID string, postedAt time.Time) error
	Correct(ctx context.Context, night domain.Night, slackUserID, bracketName string) error
	Exempt(ctx context.Context, night domain.Night, slackUserID string) error
	SetAlias(ctx context.Context, slackUserID, displayName string) error
	Generate(ctx context.Context, night domain.Night) (*Report, error)
	RenderReport(report *Report) string
	Publish(ctx context.Context, night domain.Night) error
	CurrentNight() domain.Night
}
