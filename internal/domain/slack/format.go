package slack

import (
	"fmt"
	"sort"
	"strings"

	"github.com/diegoclair/attendance-bot/internal/domain"
	"github.com/diegoclair/attendance-bot/internal/domain/entity"
)

// Mention renders a Slack user ID so the client shows the member's name.
func Mention(memberID string) string {
	return fmt.Sprintf("<@%s>", memberID)
}

// FormatReason returns the note shown for a skipping member.
func FormatReason(reason string) string {
	if reason == "" {
		return domain.UnspecifiedReason
	}
	return reason
}

func FormatRollcall(tally *entity.Tally) string {
	attending := "None."
	if len(tally.Attending) > 0 {
		attending = joinMentions(tally.Attending)
	}

	skipping := "None."
	if len(tally.Skipping) > 0 {
		members := make([]string, 0, len(tally.Skipping))
		for member := range tally.Skipping {
			members = append(members, member)
		}
		sort.Strings(members)

		lines := make([]string, 0, len(members))
		for _, member := range members {
			lines = append(lines, fmt.Sprintf("%s -- Note: %s", Mention(member), FormatReason(tally.Skipping[member])))
		}
		skipping = strings.Join(lines, "\n")
	}

	unaccounted := "None. Thanks everyone!"
	if len(tally.Unaccounted) > 0 {
		unaccounted = joinMentions(tally.Unaccounted)
	}

	return "Roll Call! Here is what I know: \n\n" +
		"Confirmed attendance: " + attending + "\n" +
		"Confirmed not in attendance: " + skipping + "\n" +
		"Unaccounted for: " + unaccounted
}

func joinMentions(members []string) string {
	mentions := make([]string, len(members))
	for i, member := range members {
		mentions[i] = Mention(member)
	}
	return strings.Join(mentions, ", ")
}
