package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/bedtime-patrol/bedtime-bot/internal/domain"
	"github.com/bedtime-patrol/bedtime-bot/internal/domain/contract"
	"github.com/bedtime-patrol/bedtime-bot/internal/domain/entity"
)

type announcementRepository struct {
	db dbConn
}

func newAnnouncementRepo(db dbConn) contract.AnnouncementRepo {
	return &announcementRepository{db: db}
}

// Create stores the handle of a posted report. The UNIQUE constraint on night
// backs the once-per-night publish rule.
func (r *announcementRepository) Create(announcement *entity.Announcement) error {
	query := `
		INSERT INTO announcements (night, slack_channel_id, slack_message_ts)
		VALUES (?, ?, ?)
	`

	result, err := r.db.Exec(query,
		announcement.Night,
		announcement.SlackChannelID,
		announcement.SlackMessageTS,
	)
	if err != nil {
		return fmt.Errorf("failed to create announcement: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	announcement.ID = id
	return nil
}

func (r *announcementRepository) GetByNight(night domain.Night) (*entity.Announcement, error) {
	query := `
		SELECT id, night, slack_channel_id, slack_message_ts, created_at, updated_at
		FROM announcements
		WHERE night = ?
	`

	announcement := &entity.Announcement{}
	err := r.db.QueryRow(query, night.String()).Scan(
		&announcement.ID,
		&announcement.Night,
		&announcement.SlackChannelID,
		&announcement.SlackMessageTS,
		&announcement.CreatedAt,
		&announcement.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get announcement: %w", err)
	}

	return announcement, nil
}

// Touch bumps updated_at after an in-place edit of the posted report.
func (r *announcementRepository) Touch(night domain.Night) error {
	query := `UPDATE announcements SET updated_at = ? WHERE night = ?`

	_, err := r.db.Exec(query, time.Now(), night.String())
	if err != nil {
		return fmt.Errorf("failed to touch announcement: %w", err)
	}

	return nil
}
