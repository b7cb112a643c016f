package handlers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/bedtime-patrol/bedtime-bot/internal/handlers/test"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func messageEventPayload(channel, user, botID, subType, ts string) string {
	return fmt.Sprintf(`{
		"type": "event_callback",
		"team_id": "T123456789",
		"event": {
			"type": "message",
			"channel": %q,
			"user": %q,
			"bot_id": %q,
			"subtype": %q,
			"text": "good night",
			"ts": %q
		}
	}`, channel, user, botID, subType, ts)
}

func TestSlackHandler_HandleEvents_URLVerification(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	recorder := test.CreateTestRecorder()
	req := test.CreateEventRequest(t, `{"type":"url_verification","challenge":"challenge-token"}`)

	handler.HandleEvents(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "challenge-token", recorder.Body.String())
}

func TestSlackHandler_HandleEvents_Message(t *testing.T) {
	tests := []struct {
		name       string
		payload    string
		buildMocks func(m test.ServiceMocks)
	}{
		{
			name:    "Should record a plain message in the bed channel",
			payload: messageEventPayload("C-BEDROOM", "U123456789", "", "", "1763535600.000100"),
			buildMocks: func(m test.ServiceMocks) {
				postedAt := time.Unix(1763535600, 100000000)
				m.CurfewServiceMock.EXPECT().
					RecordEvent(gomock.Any(), "U123456789", gomock.Cond(func(at time.Time) bool {
						return at.Unix() == postedAt.Unix()
					})).
					Return(nil).Times(1)
			},
		},
		{
			name:       "Should ignore messages outside the bed channel",
			payload:    messageEventPayload("C-ELSEWHERE", "U123456789", "", "", "1763535600.000100"),
			buildMocks: func(m test.ServiceMocks) {},
		},
		{
			name:       "Should ignore bot messages",
			payload:    messageEventPayload("C-BEDROOM", "U123456789", "B000000001", "", "1763535600.000100"),
			buildMocks: func(m test.ServiceMocks) {},
		},
		{
			name:       "Should ignore message edits",
			payload:    messageEventPayload("C-BEDROOM", "U123456789", "", "message_changed", "1763535600.000100"),
			buildMocks: func(m test.ServiceMocks) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			tt.buildMocks(m)

			recorder := test.CreateTestRecorder()
			req := test.CreateEventRequest(t, tt.payload)

			handler.HandleEvents(recorder, req)

			assert.Equal(t, http.StatusOK, recorder.Code)
		})
	}
}
