package test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/bedtime-patrol/bedtime-bot/internal/config"
	"github.com/bedtime-patrol/bedtime-bot/internal/handlers"
	"github.com/bedtime-patrol/bedtime-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const SigningSecret = "test-signing-secret"

type ServiceMocks struct {
	CurfewServiceMock *mocks.MockCurfewService
	SlackClientMock   *mocks.MockSlackClient
}

func GetHandlerTest(t *testing.T) (m ServiceMocks, handler *handlers.SlackHandler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		CurfewServiceMock: mocks.NewMockCurfewService(ctrl),
		SlackClientMock:   mocks.NewMockSlackClient(ctrl),
	}

	cfg := &config.Config{
		SlackSigningSecret: SigningSecret,
		BedChannelID:       "C-BEDROOM",
		InsomniacsGroupID:  "S-INSOMNIACS",
		PatrolGroupID:      "S-PATROL",
		SingleTimezone:     true,
		DefaultTimezone:    "America/Los_Angeles",
		ReportTime:         "07:00",
	}
	require.NoError(t, cfg.Validate())

	handler = handlers.New(m.SlackClientMock, m.CurfewServiceMock, cfg)

	return
}

// CreateSlackRequest creates a properly signed Slack slash command request
func CreateSlackRequest(t *testing.T, command, text, channelID, userID string) *http.Request {
	t.Helper()

	// Create form data matching Slack's slash command format
	form := url.Values{
		"token":        {"test-token"},
		"team_id":      {"T123456789"},
		"team_domain":  {"test-team"},
		"channel_id":   {channelID},
		"channel_name": {"bedroom"},
		"user_id":      {userID},
		"user_name":    {"test-user"},
		"command":      {command},
		"text":         {text},
		"response_url": {"https://hooks.slack.com/commands/test"},
		"trigger_id":   {"test-trigger-id"},
	}

	return signedRequest(t, "/slack/commands", form.Encode(), "application/x-www-form-urlencoded")
}

// CreateEventRequest creates a properly signed Events API request with a JSON
// payload.
func CreateEventRequest(t *testing.T, payload string) *http.Request {
	t.Helper()

	return signedRequest(t, "/slack/events", payload, "application/json")
}

func signedRequest(t *testing.T, path, body, contentType string) *http.Request {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
	require.NoError(t, err)

	req.Header.Set("Content-Type", contentType)

	// Generate Slack signature
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)

	sig := generateSlackSignature(SigningSecret, timestamp, body)
	req.Header.Set("X-Slack-Signature", sig)

	return req
}

func generateSlackSignature(signingSecret, timestamp, body string) string {
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, body)
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	signature := hex.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("v0=%s", signature)
}

func CreateTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
