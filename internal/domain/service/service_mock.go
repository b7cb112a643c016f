package service

import (
	"context"
	"testing"
	"time"

	"github.com/bedtime-patrol/bedtime-bot/internal/config"
	"github.com/bedtime-patrol/bedtime-bot/internal/domain/contract"
	"github.com/bedtime-patrol/bedtime-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager      *mocks.MockDataManager
	mockLedgerRepo       *mocks.MockLedgerRepo
	mockExemptionRepo    *mocks.MockExemptionRepo
	mockAnnouncementRepo *mocks.MockAnnouncementRepo
	mockAliasRepo        *mocks.MockAliasRepo
	mockSlackClient      *mocks.MockSlackClient
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	ledgerRepo := mocks.NewMockLedgerRepo(ctrl)
	dm.EXPECT().Ledger().Return(ledgerRepo).AnyTimes()

	exemptionRepo := mocks.NewMockExemptionRepo(ctrl)
	dm.EXPECT().Exemption().Return(exemptionRepo).AnyTimes()

	announcementRepo := mocks.NewMockAnnouncementRepo(ctrl)
	dm.EXPECT().Announcement().Return(announcementRepo).AnyTimes()

	aliasRepo := mocks.NewMockAliasRepo(ctrl)
	dm.EXPECT().Alias().Return(aliasRepo).AnyTimes()

	// Transactions run the callback against the same mocked repositories
	dm.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(contract.DataManager) error) error {
			return fn(dm)
		}).AnyTimes()

	slackClient := mocks.NewMockSlackClient(ctrl)

	m = allMocks{
		mockDataManager:      dm,
		mockLedgerRepo:       ledgerRepo,
		mockExemptionRepo:    exemptionRepo,
		mockAnnouncementRepo: announcementRepo,
		mockAliasRepo:        aliasRepo,
		mockSlackClient:      slackClient,
	}

	return
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{
		BedChannelID:    "C-BEDROOM",
		SingleTimezone:  true,
		DefaultTimezone: "America/Los_Angeles",
		ReportTime:      "07:00",
	}
	require.NoError(t, cfg.Validate())

	return cfg
}

func newTestCurfew(t *testing.T, m allMocks, cfg *config.Config, now time.Time) *curfewService {
	t.Helper()

	curfew := newCurfew(m.mockDataManager, m.mockSlackClient, cfg)
	curfew.now = func() time.Time { return now }
	require.NotNil(t, curfew)

	return curfew
}
