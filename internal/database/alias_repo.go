package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/bedtime-patrol/bedtime-bot/internal/domain/contract"
	"github.com/bedtime-patrol/bedtime-bot/internal/domain/entity"
)

type aliasRepository struct {
	db dbConn
}

func newAliasRepo(db dbConn) contract.AliasRepo {
	return &aliasRepository{db: db}
}

func (r *aliasRepository) Set(slackUserID, displayName string) error {
	query := `
		INSERT INTO user_aliases (slack_user_id, display_name)
		VALUES (?, ?)
		ON CONFLICT(slack_user_id) DO UPDATE SET
			display_name = excluded.display_name,
			updated_at = ?
	`

	_, err := r.db.Exec(query, slackUserID, displayName, time.Now())
	if err != nil {
		return fmt.Errorf("failed to set alias: %w", err)
	}

	return nil
}

func (r *aliasRepository) Get(slackUserID string) (*entity.Alias, error) {
	query := `
		SELECT slack_user_id, display_name, updated_at
		FROM user_aliases
		WHERE slack_user_id = ?
	`

	alias := &entity.Alias{}
	err := r.db.QueryRow(query, slackUserID).Scan(
		&alias.SlackUserID,
		&alias.DisplayName,
		&alias.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get alias: %w", err)
	}

	return alias, nil
}
