package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/bedtime-patrol/bedtime-bot/internal/domain"
	"github.com/bedtime-patrol/bedtime-bot/internal/domain/contract"
	"github.com/bedtime-patrol/bedtime-bot/internal/domain/entity"
)

type ledgerRepository struct {
	db dbConn
}

func newLedgerRepo(db dbConn) contract.LedgerRepo {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) Get(night domain.Night, slackUserID string) (*entity.LedgerEntry, error) {
	query := `
		SELECT id, night, slack_user_id, bed_time, created_at, updated_at
		FROM ledger_entries
		WHERE night = ? AND slack_user_id = ?
	`

	entry := &entity.LedgerEntry{}
	var bedTime string
	err := r.db.QueryRow(query, night.String(), slackUserID).Scan(
		&entry.ID,
		&entry.Night,
		&entry.SlackUserID,
		&bedTime,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger entry: %w", err)
	}

	entry.BedTime, err = domain.ParseTimeOfDay(bedTime)
	if err != nil {
		return nil, fmt.Errorf("corrupt bed time in ledger: %w", err)
	}

	return entry, nil
}

// Set upserts the entry for (night, user). The original row id is kept on
// conflict, so ListByNight still returns users in first-recorded order.
func (r *ledgerRepository) Set(night domain.Night, slackUserID string, bedTime domain.TimeOfDay) error {
	query := `
		INSERT INTO ledger_entries (night, slack_user_id, bed_time)
		VALUES (?, ?, ?)
		ON CONFLICT(night, slack_user_id) DO UPDATE SET
			bed_time = excluded.bed_time,
			updated_at = ?
	`

	_, err := r.db.Exec(query, night.String(), slackUserID, bedTime.String(), time.Now())
	if err != nil {
		return fmt.Errorf("failed to set ledger entry: %w", err)
	}

	return nil
}

func (r *ledgerRepository) Delete(night domain.Night, slackUserID string) error {
	query := `DELETE FROM ledger_entries WHERE night = ? AND slack_user_id = ?`

	_, err := r.db.Exec(query, night.String(), slackUserID)
	if err != nil {
		return fmt.Errorf("failed to delete ledger entry: %w", err)
	}

	return nil
}

func (r *ledgerRepository) ListByNight(night domain.Night) ([]*entity.LedgerEntry, error) {
	query := `
		SELECT id, night, slack_user_id, bed_time, created_at, updated_at
		FROM ledger_entries
		WHERE night = ?
		ORDER BY id ASC
	`

	rows, err := r.db.Query(query, night.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []*entity.LedgerEntry
	for rows.Next() {
		entry := &entity.LedgerEntry{}
		var bedTime string
		err := rows.Scan(
			&entry.ID,
			&entry.Night,
			&entry.SlackUserID,
			&bedTime,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}

		entry.BedTime, err = domain.ParseTimeOfDay(bedTime)
		if err != nil {
			return nil, fmt.Errorf("corrupt bed time in ledger: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
