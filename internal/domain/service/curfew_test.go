package service

import (
	"context"
	"testing"
	"time"

	"github.com/bedtime-patrol/bedtime-bot/internal/domain"
	"github.com/bedtime-patrol/bedtime-bot/internal/domain/contract"
	"github.com/bedtime-patrol/bedtime-bot/internal/domain/entity"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	tuesdayNight   = domain.Night{Year: 2025, Month: time.November, Day: 18}
	wednesdayNight = domain.Night{Year: 2025, Month: time.November, Day: 19}
	saturdayNight  = domain.Night{Year: 2025, Month: time.November, Day: 22}
)

func Test_curfewService_RecordEvent(t *testing.T) {
	type args struct {
		slackUserID string
		postedAt    func(loc *time.Location) time.Time
	}
	tests := []struct {
		name      string
		args      args
		buildMock func(m allMocks, args args)
		wantErr   bool
	}{
		{
			name: "Should record the first event inside the window",
			args: args{
				slackUserID: "U123",
				postedAt: func(loc *time.Location) time.Time {
					return time.Date(2025, 11, 18, 23, 30, 0, 0, loc)
				},
			},
			buildMock: func(m allMocks, args args) {
				m.mockExemptionRepo.EXPECT().
					Exists(wednesdayNight, args.slackUserID).
					Return(false, nil).Times(1)

				m.mockLedgerRepo.EXPECT().
					Get(wednesdayNight, args.slackUserID).
					Return(nil, nil).Times(1)

				m.mockLedgerRepo.EXPECT().
					Set(wednesdayNight, args.slackUserID, domain.NewTimeOfDay(23, 30)).
					Return(nil).Times(1)

				// Not published yet, nothing to edit
				m.mockAnnouncementRepo.EXPECT().
					GetByNight(wednesdayNight).
					Return(nil, nil).Times(1)
			},
		},
		{
			name: "Should ignore events outside the judgment window",
			args: args{
				slackUserID: "U123",
				postedAt: func(loc *time.Location) time.Time {
					return time.Date(2025, 11, 18, 21, 0, 0, 0, loc)
				},
			},
			buildMock: func(m allMocks, args args) {
				// No repository calls at all
			},
		},
		{
			name: "Should ignore events from exempt users",
			args: args{
				slackUserID: "U123",
				postedAt: func(loc *time.Location) time.Time {
					return time.Date(2025, 11, 18, 23, 30, 0, 0, loc)
				},
			},
			buildMock: func(m allMocks, args args) {
				m.mockExemptionRepo.EXPECT().
					Exists(wednesdayNight, args.slackUserID).
					Return(true, nil).Times(1)
			},
		},
		{
			name: "Should not overwrite with a later time",
			args: args{
				slackUserID: "U123",
				postedAt: func(loc *time.Location) time.Time {
					return time.Date(2025, 11, 19, 0, 30, 0, 0, loc)
				},
			},
			buildMock: func(m allMocks, args args) {
				m.mockExemptionRepo.EXPECT().
					Exists(wednesdayNight, args.slackUserID).
					Return(false, nil).Times(1)

				m.mockLedgerRepo.EXPECT().
					Get(wednesdayNight, args.slackUserID).
					Return(&entity.LedgerEntry{
						Night:       wednesdayNight.String(),
						SlackUserID: args.slackUserID,
						BedTime:     domain.NewTimeOfDay(23, 30),
					}, nil).Times(1)
			},
		},
		{
			name: "Should not overwrite with the same time",
			args: args{
				slackUserID: "U123",
				postedAt: func(loc *time.Location) time.Time {
					return time.Date(2025, 11, 18, 23, 30, 0, 0, loc)
				},
			},
			buildMock: func(m allMocks, args args) {
				m.mockExemptionRepo.EXPECT().
					Exists(wednesdayNight, args.slackUserID).
					Return(false, nil).Times(1)

				m.mockLedgerRepo.EXPECT().
					Get(wednesdayNight, args.slackUserID).
					Return(&entity.LedgerEntry{
						Night:       wednesdayNight.String(),
						SlackUserID: args.slackUserID,
						BedTime:     domain.NewTimeOfDay(23, 30),
					}, nil).Times(1)
			},
		},
		{
			name: "Should overwrite with a strictly earlier time",
			args: args{
				slackUserID: "U123",
				postedAt: func(loc *time.Location) time.Time {
					return time.Date(2025, 11, 18, 23, 30, 0, 0, loc)
				},
			},
			buildMock: func(m allMocks, args args) {
				m.mockExemptionRepo.EXPECT().
					Exists(wednesdayNight, args.slackUserID).
					Return(false, nil).Times(1)

				// 00:30 is later in the night than 23:30
				m.mockLedgerRepo.EXPECT().
					Get(wednesdayNight, args.slackUserID).
					Return(&entity.LedgerEntry{
						Night:       wednesdayNight.String(),
						SlackUserID: args.slackUserID,
						BedTime:     domain.NewTimeOfDay(0, 30),
					}, nil).Times(1)

				m.mockLedgerRepo.EXPECT().
					Set(wednesdayNight, args.slackUserID, domain.NewTimeOfDay(23, 30)).
					Return(nil).Times(1)

				m.mockAnnouncementRepo.EXPECT().
					GetByNight(wednesdayNight).
					Return(nil, nil).Times(1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			cfg := testConfig(t)
			curfew := newTestCurfew(t, m, cfg, time.Now())

			tt.buildMock(m, tt.args)

			err := curfew.RecordEvent(context.Background(), tt.args.slackUserID, tt.args.postedAt(cfg.Location))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func Test_curfewService_Correct(t *testing.T) {
	tests := []struct {
		name        string
		night       domain.Night
		bracketName string
		buildMock   func(m allMocks)
		wantErr     error
	}{
		{
			name:        "Should set the entry to the bracket start on a weekday",
			night:       tuesdayNight,
			bracketName: "12-1",
			buildMock: func(m allMocks) {
				m.mockLedgerRepo.EXPECT().
					Set(tuesdayNight, "U123", domain.NewTimeOfDay(0, 0)).
					Return(nil).Times(1)

				m.mockAnnouncementRepo.EXPECT().
					GetByNight(tuesdayNight).
					Return(nil, nil).Times(1)
			},
		},
		{
			name:        "Should map a shared bracket onto the weekend variant",
			night:       saturdayNight,
			bracketName: "bruh",
			buildMock: func(m allMocks) {
				m.mockLedgerRepo.EXPECT().
					Set(saturdayNight, "U123", domain.NewTimeOfDay(3, 0)).
					Return(nil).Times(1)

				m.mockAnnouncementRepo.EXPECT().
					GetByNight(saturdayNight).
					Return(nil, nil).Times(1)
			},
		},
		{
			name:        "Should reject a weekday-only bracket on a weekend night",
			night:       saturdayNight,
			bracketName: "12-1",
			buildMock:   func(m allMocks) {},
			wantErr:     domain.ErrInvalidBracketForNight,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			cfg := testConfig(t)
			curfew := newTestCurfew(t, m, cfg, time.Now())

			tt.buildMock(m)

			err := curfew.Correct(context.Background(), tt.night, "U123", tt.bracketName)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func Test_curfewService_Exempt(t *testing.T) {
	t.Run("Should add the exemption and clear the ledger entry", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		cfg := testConfig(t)
		curfew := newTestCurfew(t, m, cfg, time.Now())

		m.mockExemptionRepo.EXPECT().
			Add(wednesdayNight, "U123").
			Return(nil).Times(1)

		m.mockLedgerRepo.EXPECT().
			Delete(wednesdayNight, "U123").
			Return(nil).Times(1)

		m.mockAnnouncementRepo.EXPECT().
			GetByNight(wednesdayNight).
			Return(nil, nil).Times(1)

		err := curfew.Exempt(context.Background(), wednesdayNight, "U123")
		require.NoError(t, err)
	})

	t.Run("Should edit the published report after an exemption", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		cfg := testConfig(t)
		curfew := newTestCurfew(t, m, cfg, time.Now())

		m.mockExemptionRepo.EXPECT().
			Add(wednesdayNight, "U123").
			Return(nil).Times(1)

		m.mockLedgerRepo.EXPECT().
			Delete(wednesdayNight, "U123").
			Return(nil).Times(1)

		m.mockAnnouncementRepo.EXPECT().
			GetByNight(wednesdayNight).
			Return(&entity.Announcement{
				ID:             1,
				Night:          wednesdayNight.String(),
				SlackChannelID: "C-BEDROOM",
				SlackMessageTS: "1763535600.000100",
			}, nil).Times(1)

		// Re-derivation: the exempted user is gone from the ledger and shows
		// up in the exemption list instead
		m.mockLedgerRepo.EXPECT().
			ListByNight(wednesdayNight).
			Return(nil, nil).Times(1)

		m.mockExemptionRepo.EXPECT().
			ListByNight(wednesdayNight).
			Return([]*entity.Exemption{
				{Night: wednesdayNight.String(), SlackUserID: "U123"},
			}, nil).Times(1)

		m.mockAliasRepo.EXPECT().
			Get("U123").
			Return(&entity.Alias{SlackUserID: "U123", DisplayName: "sleepyhead"}, nil).Times(1)

		m.mockSlackClient.EXPECT().
			UpdateMessage("C-BEDROOM", "1763535600.000100", gomock.Any()).
			Return("C-BEDROOM", "1763535600.000100", "", nil).Times(1)

		m.mockAnnouncementRepo.EXPECT().
			Touch(wednesdayNight).
			Return(nil).Times(1)

		err := curfew.Exempt(context.Background(), wednesdayNight, "U123")
		require.NoError(t, err)
	})
}

func Test_curfewService_Generate(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	cfg := testConfig(t)
	curfew := newTestCurfew(t, m, cfg, time.Now())

	entries := []*entity.LedgerEntry{
		{Night: wednesdayNight.String(), SlackUserID: "U111", BedTime: domain.NewTimeOfDay(23, 30)},
		{Night: wednesdayNight.String(), SlackUserID: "U222", BedTime: domain.NewTimeOfDay(23, 45)},
		{Night: wednesdayNight.String(), SlackUserID: "U333", BedTime: domain.NewTimeOfDay(3, 30)},
	}

	m.mockLedgerRepo.EXPECT().
		ListByNight(wednesdayNight).
		Return(entries, nil).Times(2)

	m.mockExemptionRepo.EXPECT().
		ListByNight(wednesdayNight).
		Return([]*entity.Exemption{
			{Night: wednesdayNight.String(), SlackUserID: "U444"},
		}, nil).Times(2)

	// U111 has an alias, the others fall back to their Slack profile
	m.mockAliasRepo.EXPECT().
		Get("U111").
		Return(&entity.Alias{SlackUserID: "U111", DisplayName: "sleepyhead"}, nil).Times(2)
	m.mockAliasRepo.EXPECT().
		Get("U222").
		Return(nil, nil).Times(2)
	m.mockAliasRepo.EXPECT().
		Get("U333").
		Return(nil, nil).Times(2)
	m.mockAliasRepo.EXPECT().
		Get("U444").
		Return(nil, nil).Times(2)

	m.mockSlackClient.EXPECT().
		GetUserInfo("U222").
		Return(&slack.User{Name: "u222", Profile: slack.UserProfile{DisplayName: "night owl"}}, nil).Times(2)
	m.mockSlackClient.EXPECT().
		GetUserInfo("U333").
		Return(&slack.User{Name: "u333", Profile: slack.UserProfile{RealName: "Third User"}}, nil).Times(2)
	m.mockSlackClient.EXPECT().
		GetUserInfo("U444").
		Return(&slack.User{Name: "u444"}, nil).Times(2)

	report, err := curfew.Generate(context.Background(), wednesdayNight)
	require.NoError(t, err)

	// Every weekday bracket is present, in table order, empty or not
	require.Len(t, report.Brackets, 7)
	assert.Equal(t, "Winner", report.Brackets[0].Name)
	assert.Equal(t, []string{"sleepyhead", "night owl"}, report.Brackets[0].Members)
	assert.Equal(t, "12-1", report.Brackets[1].Name)
	assert.Empty(t, report.Brackets[1].Members)
	assert.Equal(t, "bruh", report.Brackets[4].Name)
	assert.Equal(t, []string{"Third User"}, report.Brackets[4].Members)
	assert.Equal(t, "turbo cringe", report.Brackets[6].Name)
	assert.Empty(t, report.Brackets[6].Members)

	assert.Equal(t, []string{"u444"}, report.Exemptions)

	// Same state in, same report out
	again, err := curfew.Generate(context.Background(), wednesdayNight)
	require.NoError(t, err)
	assert.Equal(t, report, again)
}

func Test_curfewService_RenderReport(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	cfg := testConfig(t)
	cfg.InsomniacsGroupID = "S-INSOMNIACS"
	cfg.PatrolGroupID = "S-PATROL"
	curfew := newTestCurfew(t, m, cfg, time.Now())

	report := &contract.Report{
		Night: wednesdayNight,
		Brackets: []contract.ReportBracket{
			{Name: "Winner", Members: []string{"sleepyhead", "night owl"}},
			{Name: "12-1"},
		},
		Exemptions: []string{"resting"},
	}
	text := curfew.RenderReport(report)

	want := "<!subteam^S-INSOMNIACS> <!subteam^S-PATROL> Last night's results:\n" +
		"Exemptions: resting\n" +
		"Winner: sleepyhead, night owl\n" +
		"12-1: "
	assert.Equal(t, want, text)
}

func Test_curfewService_Publish(t *testing.T) {
	t.Run("Should post the report and record the announcement", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		cfg := testConfig(t)
		curfew := newTestCurfew(t, m, cfg, time.Now())

		m.mockAnnouncementRepo.EXPECT().
			GetByNight(wednesdayNight).
			Return(nil, nil).Times(1)

		m.mockLedgerRepo.EXPECT().
			ListByNight(wednesdayNight).
			Return(nil, nil).Times(1)

		m.mockExemptionRepo.EXPECT().
			ListByNight(wednesdayNight).
			Return(nil, nil).Times(1)

		m.mockSlackClient.EXPECT().
			PostMessage("C-BEDROOM", gomock.Any(), gomock.Any()).
			Return("C-BEDROOM", "1763535600.000100", nil).Times(1)

		m.mockAnnouncementRepo.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(announcement *entity.Announcement) error {
				announcement.ID = 1
				require.Equal(t, wednesdayNight.String(), announcement.Night)
				require.Equal(t, "C-BEDROOM", announcement.SlackChannelID)
				require.Equal(t, "1763535600.000100", announcement.SlackMessageTS)
				return nil
			}).Times(1)

		err := curfew.Publish(context.Background(), wednesdayNight)
		require.NoError(t, err)
	})

	t.Run("Should refuse to publish twice", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		cfg := testConfig(t)
		curfew := newTestCurfew(t, m, cfg, time.Now())

		m.mockAnnouncementRepo.EXPECT().
			GetByNight(wednesdayNight).
			Return(&entity.Announcement{
				ID:             1,
				Night:          wednesdayNight.String(),
				SlackChannelID: "C-BEDROOM",
				SlackMessageTS: "1763535600.000100",
			}, nil).Times(1)

		err := curfew.Publish(context.Background(), wednesdayNight)
		require.ErrorIs(t, err, domain.ErrAlreadyPublished)
	})
}

func Test_curfewService_CurrentNight(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	cfg := testConfig(t)

	evening := time.Date(2025, 11, 18, 23, 0, 0, 0, cfg.Location)
	curfew := newTestCurfew(t, m, cfg, evening)
	assert.Equal(t, wednesdayNight, curfew.CurrentNight())

	morning := time.Date(2025, 11, 19, 7, 0, 0, 0, cfg.Location)
	curfew = newTestCurfew(t, m, cfg, morning)
	assert.Equal(t, wednesdayNight, curfew.CurrentNight())
}
