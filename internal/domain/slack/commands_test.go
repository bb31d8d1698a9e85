package slack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantType CommandType
		wantRest string
		wantErr  bool
	}{
		{name: "Should default to help on empty text", text: "   ", wantType: CmdHelp},
		{name: "Should parse attending", text: "attending", wantType: CmdAttending},
		{name: "Should parse attending alias", text: "in", wantType: CmdAttending},
		{name: "Should parse skipping without note", text: "skipping", wantType: CmdSkipping},
		{name: "Should keep inner spacing of the note", text: "skipping  out of  town ", wantType: CmdSkipping, wantRest: "out of  town"},
		{name: "Should ignore case of the subcommand", text: "RollCall", wantType: CmdRollcall},
		{name: "Should parse cancel", text: "cancel", wantType: CmdCancel},
		{name: "Should parse schedule", text: "schedule", wantType: CmdSchedule},
		{name: "Should parse clear", text: "clear", wantType: CmdClear},
		{name: "Should parse help", text: "help", wantType: CmdHelp},
		{name: "Should reject unknown subcommands", text: "roll 2d6", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.text)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantType, cmd.Type)
			assert.Equal(t, tt.wantRest, cmd.Rest)
			assert.Equal(t, tt.text, cmd.Raw)
		})
	}
}

func TestCommandType_Privileged(t *testing.T) {
	for _, c := range []CommandType{CmdCancel, CmdSchedule, CmdClear} {
		assert.True(t, c.Privileged(), c)
	}
	for _, c := range []CommandType{CmdAttending, CmdSkipping, CmdRollcall, CmdHelp} {
		assert.False(t, c.Privileged(), c)
	}
}

func TestGetHelpText(t *testing.T) {
	help := GetHelpText()
	for _, sub := range []string{"attending", "skipping [note]", "rollcall", "cancel", "schedule", "clear"} {
		assert.Contains(t, help, "/attendance "+sub)
	}
}
