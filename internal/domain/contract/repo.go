package contract

import (
	"context"

	"github.com/bedtime-patrol/bedtime-bot/internal/domain"
	"github.com/bedtime-patrol/bedtime-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Ledger() LedgerRepo
	Exemption() ExemptionRepo
	Announcement() AnnouncementRepo
	Alias() AliasRepo
}

// LedgerRepo defines the contract for the night ledger repository
type LedgerRepo interface {
	Get(night domain.Night, slackUserID string) (*entity.LedgerEntry, error)
	Set(night domain.Night, slackUserID string, bedTime domain.TimeOfDay) error
	Delete(night domain.Night, slackUserID string) error
	ListByNight(night domain.Night) ([]*entity.LedgerEntry, error)
}

// ExemptionRepo defines the contract for the exemption registry repository
type ExemptionRepo interface {
	Add(night domain.Night, slackUserID string) error
	Exists(night domain.Night, slackUserID string) (bool, error)
	ListByNight(night domain.Night) ([]*entity.Exemption, error)
}

// AnnouncementRepo defines the contract for the announcement tracker repository
type AnnouncementRepo interface {
	Create(announcement *entity.Announcement) error
	GetByNight(night domain.Night) (*entity.Announcement, error)
	Touch(night domain.Night) error
}

// AliasRepo defines the contract for the display-name alias repository
type AliasRepo interface {
	Set(slackUserID, displayName string) error
	Get(slackUserID string) (*entity.Alias, error)
}
