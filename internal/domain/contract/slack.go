package contract

//go:generate mockgen -source=slack.go -destination=../../../mocks/slack_mock.go -package=mocks

import (
	"context"

	"github.com/slack-go/slack"
)

// SlackClient defines the interface for Slack operations
// This allows mocking in tests while keeping the real implementation simple
type SlackClient interface {
	// AuthTestContext checks that the bot token opens a session
	AuthTestContext(ctx context.Context) (*slack.AuthTestResponse, error)

	// GetUserGroupMembersContext lists the user IDs in a Slack user group
	GetUserGroupMembersContext(ctx context.Context, userGroup string) ([]string, error)

	// PostMessageContext sends a message to a Slack channel
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}
