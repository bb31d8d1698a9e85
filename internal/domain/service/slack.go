package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/diegoclair/attendance-bot/internal/domain/contract"
	"github.com/rs/zerolog"
	"github.com/slack-go/slack"
)

// slackDirectory maps the "Players" and "GMs" roles onto Slack user groups.
type slackDirectory struct {
	client       contract.SlackClient
	playersGroup string
	gmsGroup     string
}

func newSlackDirectory(client contract.SlackClient, playersGroup, gmsGroup string) *slackDirectory {
	return &slackDirectory{
		client:       client,
		playersGroup: playersGroup,
		gmsGroup:     gmsGroup,
	}
}

func (d *slackDirectory) Roster(ctx context.Context) ([]string, error) {
	if d.playersGroup == "" {
		return []string{}, nil
	}

	members, err := d.client.GetUserGroupMembersContext(ctx, d.playersGroup)
	if err != nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}
	return members, nil
}

func (d *slackDirectory) IsGM(ctx context.Context, userID string) (bool, error) {
	if d.gmsGroup == "" {
		return false, nil
	}

	members, err := d.client.GetUserGroupMembersContext(ctx, d.gmsGroup)
	if err != nil {
		return false, fmt.Errorf("failed to get GMs: %w", err)
	}
	return slices.Contains(members, userID), nil
}

type slackNotifier struct {
	client contract.SlackClient
}

func newSlackNotifier(client contract.SlackClient) *slackNotifier {
	return &slackNotifier{client: client}
}

func (n *slackNotifier) Send(ctx context.Context, destination, text string) error {
	_, _, err := n.client.PostMessageContext(ctx, destination,
		slack.MsgOptionText(text, false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		return fmt.Errorf("failed to send Slack message: %w", err)
	}
	return nil
}

// readinessGate blocks until the bot token opens a Slack session. Nothing
// that posts to Slack on its own may start before Wait returns nil.
type readinessGate struct {
	client   contract.SlackClient
	interval time.Duration
	log      zerolog.Logger
}

func newReadinessGate(client contract.SlackClient, interval time.Duration, log zerolog.Logger) *readinessGate {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &readinessGate{client: client, interval: interval, log: log}
}

func (g *readinessGate) Wait(ctx context.Context) error {
	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	for {
		resp, err := g.client.AuthTestContext(ctx)
		if err == nil {
			g.log.Info().Str("team", resp.Team).Str("bot_user", resp.UserID).Msg("Slack session ready")
			return nil
		}
		g.log.Warn().Err(err).Msg("waiting for Slack session...")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
