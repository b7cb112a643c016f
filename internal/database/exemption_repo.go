package database

import (
	"fmt"

	"github.com/bedtime-patrol/bedtime-bot/internal/domain"
	"github.com/bedtime-patrol/bedtime-bot/internal/domain/contract"
	"github.com/bedtime-patrol/bedtime-bot/internal/domain/entity"
)

type exemptionRepository struct {
	db dbConn
}

func newExemptionRepo(db dbConn) contract.ExemptionRepo {
	return &exemptionRepository{db: db}
}

// Add is idempotent: exempting an already exempt user is a no-op.
func (r *exemptionRepository) Add(night domain.Night, slackUserID string) error {
	query := `
		INSERT INTO exemptions (night, slack_user_id)
		VALUES (?, ?)
		ON CONFLICT(night, slack_user_id) DO NOTHING
	`

	_, err := r.db.Exec(query, night.String(), slackUserID)
	if err != nil {
		return fmt.Errorf("failed to add exemption: %w", err)
	}

	return nil
}

func (r *exemptionRepository) Exists(night domain.Night, slackUserID string) (bool, error) {
	query := `SELECT COUNT(1) FROM exemptions WHERE night = ? AND slack_user_id = ?`

	var count int
	err := r.db.QueryRow(query, night.String(), slackUserID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check exemption: %w", err)
	}

	return count > 0, nil
}

func (r *exemptionRepository) ListByNight(night domain.Night) ([]*entity.Exemption, error) {
	query := `
		SELECT id, night, slack_user_id, created_at
		FROM exemptions
		WHERE night = ?
		ORDER BY id ASC
	`

	rows, err := r.db.Query(query, night.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list exemptions: %w", err)
	}
	defer rows.Close()

	var exemptions []*entity.Exemption
	for rows.Next() {
		exemption := &entity.Exemption{}
		err := rows.Scan(
			&exemption.ID,
			&exemption.Night,
			&exemption.SlackUserID,
			&exemption.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan exemption: %w", err)
		}
		exemptions = append(exemptions, exemption)
	}

	return exemptions, nil
}
