package database

import (
	"context"
	"fmt"

	"github.com/bedtime-patrol/bedtime-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db               *DB
	ledgerRepo       contract.LedgerRepo
	exemptionRepo    contract.ExemptionRepo
	announcementRepo contract.AnnouncementRepo
	aliasRepo        contract.AliasRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	i := &instance{db: db}
	i.ledgerRepo = newLedgerRepo(db.conn)
	i.exemptionRepo = newExemptionRepo(db.conn)
	i.announcementRepo = newAnnouncementRepo(db.conn)
	i.aliasRepo = newAliasRepo(db.conn)
	return i
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		ledgerRepo:       newLedgerRepo(db),
		exemptionRepo:    newExemptionRepo(db),
		announcementRepo: newAnnouncementRepo(db),
		aliasRepo:        newAliasRepo(db),
	}
}

func (i *instance) Ledger() contract.LedgerRepo             { return i.ledgerRepo }
func (i *instance) Exemption() contract.ExemptionRepo       { return i.exemptionRepo }
func (i *instance) Announcement() contract.AnnouncementRepo { return i.announcementRepo }
func (i *instance) Alias() contract.AliasRepo               { return i.aliasRepo }

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
