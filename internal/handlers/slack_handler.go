package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/diegoclair/attendance-bot/internal/domain"
	"github.com/diegoclair/attendance-bot/internal/domain/contract"
	slackcmd "github.com/diegoclair/attendance-bot/internal/domain/slack"
	"github.com/diegoclair/attendance-bot/internal/logger"
	"github.com/diegoclair/attendance-bot/internal/metrics"
	"github.com/rs/zerolog"
	"github.com/slack-go/slack"
)

const (
	resultOK      = "ok"
	resultDenied  = "denied"
	resultError   = "error"
	resultUnknown = "unknown"
)

type SlackHandler struct {
	attendance    contract.AttendanceService
	directory     contract.Directory
	schedule      domain.WeeklySchedule
	signingSecret string
	log           zerolog.Logger
}

func New(attendance contract.AttendanceService, directory contract.Directory, schedule domain.WeeklySchedule, signingSecret string) *SlackHandler {
	return &SlackHandler{
		attendance:    attendance,
		directory:     directory,
		schedule:      schedule,
		signingSecret: signingSecret,
		log:           logger.WithComponent("slack_handler"),
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		h.log.Warn().Err(err).Msg("Rejected slash command with invalid signature")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		metrics.CommandsTotal.WithLabelValues(resultUnknown, resultError).Inc()
		h.respondWithError(w, fmt.Sprintf("%v. Use `%s help` to see the available commands.", err, domain.SlashCommand))
		return
	}

	response, result := h.handleCommand(r.Context(), cmd, &s)
	metrics.CommandsTotal.WithLabelValues(string(cmd.Type), result).Inc()

	h.respond(w, response)
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) (*slack.Msg, string) {
	if cmd.Type.Privileged() {
		isGM, err := h.directory.IsGM(ctx, slashCmd.UserID)
		if err != nil {
			h.log.Error().Err(err).Str("user_id", slashCmd.UserID).Msg("Failed to check GM permission")
			return h.createErrorResponse("Could not verify GM permission, please try again"), resultError
		}
		if !isGM {
			h.log.Debug().Str("user_id", slashCmd.UserID).Str("command", string(cmd.Type)).Msg("Denied privileged command")
			return h.createEphemeral(deniedText(cmd.Type)), resultDenied
		}
	}

	switch cmd.Type {
	case slackcmd.CmdAttending:
		return h.handleAttending(slashCmd), resultOK
	case slackcmd.CmdSkipping:
		return h.handleSkipping(cmd, slashCmd), resultOK
	case slackcmd.CmdRollcall:
		return h.handleRollcall(ctx, slashCmd)
	case slackcmd.CmdCancel:
		return h.handleCancel(slashCmd), resultOK
	case slackcmd.CmdSchedule:
		return h.handleSchedule(slashCmd), resultOK
	case slackcmd.CmdClear:
		return h.handleClear(slashCmd), resultOK
	case slackcmd.CmdHelp:
		return h.handleHelp(), resultOK
	default:
		return h.createErrorResponse("Command not recognized"), resultUnknown
	}
}

func (h *SlackHandler) handleAttending(slashCmd *slack.SlashCommand) *slack.Msg {
	h.attendance.MarkAttending(slashCmd.UserID)

	return h.createInChannel(fmt.Sprintf("%s is attending!", slackcmd.Mention(slashCmd.UserID)))
}

func (h *SlackHandler) handleSkipping(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	h.attendance.MarkSkipping(slashCmd.UserID, cmd.Rest)

	return h.createInChannel(fmt.Sprintf("%s will not be attending. Reason: %s",
		slackcmd.Mention(slashCmd.UserID), slackcmd.FormatReason(cmd.Rest)))
}

func (h *SlackHandler) handleRollcall(ctx context.Context, slashCmd *slack.SlashCommand) (*slack.Msg, string) {
	tally, err := h.attendance.Rollcall(ctx)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", slashCmd.UserID).Msg("Failed to build roll call")
		return h.createErrorResponse("Could not load the player roster, please try again"), resultError
	}

	return h.createInChannel(slackcmd.FormatRollcall(tally)), resultOK
}

func (h *SlackHandler) handleCancel(slashCmd *slack.SlashCommand) *slack.Msg {
	h.attendance.Cancel()
	h.log.Info().Str("user_id", slashCmd.UserID).Msg("Game canceled")

	return h.createInChannel("Game canceled. All reservations canceled.")
}

func (h *SlackHandler) handleSchedule(slashCmd *slack.SlashCommand) *slack.Msg {
	h.attendance.Reinstate()
	h.log.Info().Str("user_id", slashCmd.UserID).Msg("Game scheduled")

	return h.createInChannel(fmt.Sprintf("Game on for %s!", h.schedule.EventDayName()))
}

func (h *SlackHandler) handleClear(slashCmd *slack.SlashCommand) *slack.Msg {
	h.attendance.ClearAttendance()
	h.log.Info().Str("user_id", slashCmd.UserID).Msg("Attendance cleared")

	return h.createInChannel("Records cleared.")
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return h.createEphemeral(slackcmd.GetHelpText())
}

func deniedText(cmd slackcmd.CommandType) string {
	switch cmd {
	case slackcmd.CmdCancel:
		return "Only GMs can cancel games!"
	case slackcmd.CmdSchedule:
		return "Only GMs can schedule games!"
	default:
		return "Only GMs can clear all attendance."
	}
}

func (h *SlackHandler) createInChannel(text string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         text,
	}
}

func (h *SlackHandler) createEphemeral(text string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text,
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return h.createEphemeral(fmt.Sprintf("❌ %s", message))
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	h.respond(w, h.createErrorResponse(message))
}

func (h *SlackHandler) respond(w http.ResponseWriter, msg *slack.Msg) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		h.log.Error().Err(err).Msg("Failed to write slash command response")
	}
}
