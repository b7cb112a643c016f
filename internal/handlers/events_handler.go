package handlers

import (
	"encoding/json"
	"log"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/slack-go/slack/slackevents"
)

// HandleEvents receives Events API callbacks. Messages posted in the bed
// channel are the qualifying activity signals the night ledger records.
func (h *SlackHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	body, ok := h.verifiedBody(w, r)
	if !ok {
		return
	}

	event, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	switch event.Type {
	case slackevents.URLVerification:
		var challenge slackevents.ChallengeResponse
		if err := json.Unmarshal(body, &challenge); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte(challenge.Challenge))

	case slackevents.CallbackEvent:
		h.handleCallbackEvent(r, event)
		w.WriteHeader(http.StatusOK)

	default:
		w.WriteHeader(http.StatusOK)
	}
}

func (h *SlackHandler) handleCallbackEvent(r *http.Request, event slackevents.EventsAPIEvent) {
	messageEvent, ok := event.InnerEvent.Data.(*slackevents.MessageEvent)
	if !ok {
		return
	}

	// Only plain user messages in the bed channel count: no bots, no edits,
	// no thread broadcasts.
	if messageEvent.Channel != h.cfg.BedChannelID {
		return
	}
	if messageEvent.BotID != "" || messageEvent.SubType != "" || messageEvent.User == "" {
		return
	}

	postedAt, err := parseSlackTimestamp(messageEvent.TimeStamp)
	if err != nil {
		log.Printf("Failed to parse message timestamp %q: %v", messageEvent.TimeStamp, err)
		return
	}

	if err := h.curfewService.RecordEvent(r.Context(), messageEvent.User, postedAt); err != nil {
		log.Printf("Failed to record event for user %s: %v", messageEvent.User, err)
	}
}

// parseSlackTimestamp converts a Slack "1695619200.000100" timestamp.
func parseSlackTimestamp(ts string) (time.Time, error) {
	seconds, err := strconv.ParseFloat(ts, 64)
	if err != nil {
		return time.Time{}, err
	}
	whole, frac := math.Modf(seconds)
	return time.Unix(int64(whole), int64(frac*1e9)), nil
}
