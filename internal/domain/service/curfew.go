package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/bedtime-patrol/bedtime-bot/internal/config"
	"github.com/bedtime-patrol/bedtime-bot/internal/domain"
	"github.com/bedtime-patrol/bedtime-bot/internal/domain/contract"
	"github.com/bedtime-patrol/bedtime-bot/internal/domain/entity"
	"github.com/slack-go/slack"
)

// curfewService owns the night-cycle state machine: recording qualifying
// messages, corrections, exemptions, and publishing/updating the nightly
// report. All ledger read-modify-write cycles run under mu plus a database
// transaction; Slack calls happen with the lock released.
type curfewService struct {
	dm          contract.DataManager
	slackClient contract.SlackClient
	cfg         *config.Config
	mu          sync.Mutex
	now         func() time.Time
}

func newCurfew(dm contract.DataManager, slackClient contract.SlackClient, cfg *config.Config) *curfewService {
	return &curfewService{
		dm:          dm,
		slackClient: slackClient,
		cfg:         cfg,
		now:         time.Now,
	}
}

// CurrentNight is the night the current instant belongs to, in the report
// timezone.
func (s *curfewService) CurrentNight() domain.Night {
	return domain.NightFor(s.now(), s.cfg.Location)
}

// RecordEvent handles one qualifying message. Messages outside the judgment
// window, from exempt users, or later than an already recorded time are
// ignored; only a strictly earlier time within the same night overwrites.
func (s *curfewService) RecordEvent(ctx context.Context, slackUserID string, postedAt time.Time) error {
	judged, err := s.isJudged(slackUserID)
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if !judged {
		return nil
	}

	loc := s.timezoneFor(slackUserID)
	night := domain.NightFor(postedAt, loc)
	if !night.InJudgmentWindow(postedAt, loc) {
		return nil
	}

	bedTime := domain.TimeOfDayOf(postedAt, loc)
	changed := false

	s.mu.Lock()
	err = s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		exempt, err := tx.Exemption().Exists(night, slackUserID)
		if err != nil {
			return err
		}
		if exempt {
			return nil
		}

		entry, err := tx.Ledger().Get(night, slackUserID)
		if err != nil {
			return err
		}
		if entry != nil && !bedTime.EarlierInNight(entry.BedTime) {
			return nil
		}

		changed = true
		return tx.Ledger().Set(night, slackUserID, bedTime)
	})
	s.mu.Unlock()

	if err != nil {
		return fmt.Errorf("failed to record event: %w", err)
	}

	if changed {
		s.refreshAnnouncement(ctx, night)
	}

	return nil
}

// Correct force-sets a user's entry to the start of the named bracket,
// bypassing earliest-wins. Commands offer the weekday bracket names, so the
// name is validated against the actual night's variant first.
func (s *curfewService) Correct(ctx context.Context, night domain.Night, slackUserID, bracketName string) error {
	bracket, err := s.cfg.Brackets.ForNight(night, bracketName)
	if err != nil {
		return err
	}

	s.mu.Lock()
	err = s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		return tx.Ledger().Set(night, slackUserID, bracket.Start)
	})
	s.mu.Unlock()

	if err != nil {
		return fmt.Errorf("failed to correct entry: %w", err)
	}

	s.refreshAnnouncement(ctx, night)
	return nil
}

// Exempt excuses a user for one night and clears any entry already recorded,
// so an exempted user never appears in a report.
func (s *curfewService) Exempt(ctx context.Context, night domain.Night, slackUserID string) error {
	s.mu.Lock()
	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		if err := tx.Exemption().Add(night, slackUserID); err != nil {
			return err
		}
		return tx.Ledger().Delete(night, slackUserID)
	})
	s.mu.Unlock()

	if err != nil {
		return fmt.Errorf("failed to exempt user: %w", err)
	}

	s.refreshAnnouncement(ctx, night)
	return nil
}

// SetAlias stores the display name to use for a user in reports.
func (s *curfewService) SetAlias(ctx context.Context, slackUserID, displayName string) error {
	if err := s.dm.Alias().Set(slackUserID, displayName); err != nil {
		return fmt.Errorf("failed to set alias: %w", err)
	}
	return nil
}

// Generate derives the night's report from the ledger and the exemption
// registry. Every bracket of the night's variant is present even when empty;
// users keep recording order. Pure read, no mutation.
func (s *curfewService) Generate(ctx context.Context, night domain.Night) (*contract.Report, error) {
	entries, err := s.dm.Ledger().ListByNight(night)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}

	byBracket := make(map[string][]string)
	for _, entry := range entries {
		bucket, err := s.cfg.Brackets.Bucket(night, entry.BedTime)
		if err != nil {
			// The ledger only holds times that passed the judgment window
			// check, so a miss here is a defect, not a user error.
			return nil, err
		}
		byBracket[bucket] = append(byBracket[bucket], s.displayName(entry.SlackUserID))
	}

	report := &contract.Report{Night: night}
	for _, bracket := range s.cfg.Brackets.For(night) {
		report.Brackets = append(report.Brackets, contract.ReportBracket{
			Name:    bracket.Name,
			Members: byBracket[bracket.Name],
		})
	}

	exemptions, err := s.dm.Exemption().ListByNight(night)
	if err != nil {
		return nil, fmt.Errorf("failed to read exemptions: %w", err)
	}
	for _, exemption := range exemptions {
		report.Exemptions = append(report.Exemptions, s.displayName(exemption.SlackUserID))
	}

	return report, nil
}

// RenderReport formats a report as the message posted to the bed channel.
func (s *curfewService) RenderReport(report *contract.Report) string {
	var b strings.Builder

	if s.cfg.InsomniacsGroupID != "" {
		fmt.Fprintf(&b, "<!subteam^%s> ", s.cfg.InsomniacsGroupID)
	}
	if s.cfg.PatrolGroupID != "" {
		fmt.Fprintf(&b, "<!subteam^%s> ", s.cfg.PatrolGroupID)
	}
	b.WriteString("Last night's results:\n")

	fmt.Fprintf(&b, "Exemptions: %s\n", strings.Join(report.Exemptions, ", "))
	for _, bracket := range report.Brackets {
		fmt.Fprintf(&b, "%s: %s\n", bracket.Name, strings.Join(bracket.Members, ", "))
	}

	return strings.TrimRight(b.String(), "\n")
}

// Publish posts the night's report to the bed channel and records the message
// handle. Publishing is once per night; later changes go through the update
// path triggered by ledger and exemption mutations.
func (s *curfewService) Publish(ctx context.Context, night domain.Night) error {
	existing, err := s.dm.Announcement().GetByNight(night)
	if err != nil {
		return fmt.Errorf("failed to check announcement: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("night %s: %w", night, domain.ErrAlreadyPublished)
	}

	report, err := s.Generate(ctx, night)
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	channelID, timestamp, err := s.slackClient.PostMessage(
		s.cfg.BedChannelID,
		slack.MsgOptionText(s.RenderReport(report), false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		return fmt.Errorf("failed to post report: %w", err)
	}

	announcement := &entity.Announcement{
		Night:          night.String(),
		SlackChannelID: channelID,
		SlackMessageTS: timestamp,
	}
	if err := s.dm.Announcement().Create(announcement); err != nil {
		return fmt.Errorf("failed to record announcement: %w", err)
	}

	log.Printf("Published report for night %s as message %s", night, timestamp)
	return nil
}

// refreshAnnouncement re-renders and edits the posted report after a ledger
// or exemption change. Before publication there is nothing to edit, and a
// failed edit never rolls back the already committed state change: the next
// correction or exemption will retry the edit anyway.
func (s *curfewService) refreshAnnouncement(ctx context.Context, night domain.Night) {
	announcement, err := s.dm.Announcement().GetByNight(night)
	if err != nil {
		log.Printf("Failed to look up announcement for night %s: %v", night, err)
		return
	}
	if announcement == nil {
		log.Printf("Night %s not published yet, nothing to update", night)
		return
	}

	report, err := s.Generate(ctx, night)
	if err != nil {
		log.Printf("Failed to regenerate report for night %s: %v", night, err)
		return
	}

	_, _, _, err = s.slackClient.UpdateMessage(
		announcement.SlackChannelID,
		announcement.SlackMessageTS,
		slack.MsgOptionText(s.RenderReport(report), false),
	)
	if err != nil {
		log.Printf("Failed to edit report for night %s: %v", night, err)
		return
	}

	if err := s.dm.Announcement().Touch(night); err != nil {
		log.Printf("Failed to touch announcement for night %s: %v", night, err)
	}
}
