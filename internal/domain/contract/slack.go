package contract

import "github.com/slack-go/slack"

// SlackClient defines the interface for Slack operations
// This allows mocking in tests while keeping the real implementation simple
type SlackClient interface {
	// GetUserInfo retrieves user information from Slack
	GetUserInfo(userID string) (*slack.User, error)

	// GetUserGroupMembers lists the user IDs belonging to a usergroup
	GetUserGroupMembers(userGroup string) ([]string, error)

	// PostMessage sends a message to a Slack channel
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)

	// UpdateMessage edits a previously posted message in place
	UpdateMessage(channelID, timestamp string, options ...slack.MsgOption) (string, string, string, error)
}
