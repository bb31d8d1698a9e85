package slack

import (
	"fmt"
	"strings"

	"github.com/diegoclair/attendance-bot/internal/domain"
)

type CommandType string

const (
	CmdAttending CommandType = "attending"
	CmdSkipping  CommandType = "skipping"
	CmdRollcall  CommandType = "rollcall"
	CmdCancel    CommandType = "cancel"
	CmdSchedule  CommandType = "schedule"
	CmdClear     CommandType = "clear"
	CmdHelp      CommandType = "help"
)

// Privileged reports whether only GMs may run the command.
func (c CommandType) Privileged() bool {
	switch c {
	case CmdCancel, CmdSchedule, CmdClear:
		return true
	}
	return false
}

type Command struct {
	Type CommandType
	// Rest is everything after the subcommand word, inner spacing untouched.
	Rest string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return &Command{Type: CmdHelp, Raw: text}, nil
	}

	name, rest, _ := strings.Cut(trimmed, " ")
	cmd := &Command{
		Rest: strings.TrimSpace(rest),
		Raw:  text,
	}

	switch strings.ToLower(name) {
	case "attending", "in":
		cmd.Type = CmdAttending
	case "skipping", "out":
		cmd.Type = CmdSkipping
	case "rollcall", "status":
		cmd.Type = CmdRollcall
	case "cancel":
		cmd.Type = CmdCancel
	case "schedule":
		cmd.Type = CmdSchedule
	case "clear":
		cmd.Type = CmdClear
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", name)
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Available Commands:*

*Players:*
• ` + "`" + domain.SlashCommand + " attending`" + ` - Confirm you will be at the next game
• ` + "`" + domain.SlashCommand + " skipping [note]`" + ` - Let everyone know you can't make it (note optional)
• ` + "`" + domain.SlashCommand + " rollcall`" + ` - Show who is in, who is out and who hasn't answered

*GMs:*
• ` + "`" + domain.SlashCommand + " cancel`" + ` - Cancel the next game and clear all reservations
• ` + "`" + domain.SlashCommand + " schedule`" + ` - Put a canceled game back on
• ` + "`" + domain.SlashCommand + " clear`" + ` - Clear all attendance records`
}
