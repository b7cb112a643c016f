package entity

import (
	"time"

	"github.com/bedtime-patrol/bedtime-bot/internal/domain"
)

// LedgerEntry is a user's earliest qualifying post time for one night. At most
// one entry exists per (night, user); rows keep insertion order so the report
// lists users in the order they were caught.
type LedgerEntry struct {
	ID          int64
	Night       string
	SlackUserID string
	BedTime     domain.TimeOfDay
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Exemption excuses a user from one night's judgment.
type Exemption struct {
	ID          int64
	Night       string
	SlackUserID string
	CreatedAt   time.Time
}

// Announcement records where a night's report was posted so later corrections
// can edit it in place. At most one per night.
type Announcement struct {
	ID             int64
	Night          string
	SlackChannelID string
	SlackMessageTS string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Alias is a user-chosen display name used in reports instead of the Slack
// profile name.
type Alias struct {
	SlackUserID string
	DisplayName string
	UpdatedAt   time.Time
}
