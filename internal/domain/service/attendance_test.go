package service

import (
	"context"
	"errors"
	"testing"

	"github.com/diegoclair/attendance-bot/internal/domain/entity"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_attendanceService_Rollcall(t *testing.T) {
	tests := []struct {
		name      string
		build     func(s *attendanceService)
		buildMock func(m allMocks)
		want      *entity.Tally
		wantErr   bool
	}{
		{
			name: "Should tally the players roster",
			build: func(s *attendanceService) {
				s.MarkAttending("A")
				s.MarkSkipping("B", "sick")
			},
			buildMock: func(m allMocks) {
				m.mockDirectory.EXPECT().Roster(gomock.Any()).Return([]string{"A", "B", "C"}, nil)
			},
			want: &entity.Tally{
				Attending:   []string{"A"},
				Skipping:    map[string]string{"B": "sick"},
				Unaccounted: []string{"C"},
			},
		},
		{
			name: "Should return error when roster is unavailable",
			buildMock: func(m allMocks) {
				m.mockDirectory.EXPECT().Roster(gomock.Any()).Return(nil, errors.New("missing_scope"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m)
			s := newAttendance(NewRegistry(nil), m.mockDirectory, zerolog.Nop())
			if tt.build != nil {
				tt.build(s)
			}

			got, err := s.Rollcall(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_attendanceService_CancelAndReinstate(t *testing.T) {
	registry := NewRegistry(nil)
	s := newAttendance(registry, nil, zerolog.Nop())

	s.MarkAttending("A")
	s.MarkSkipping("B", "")
	s.Cancel()

	assert.True(t, registry.Canceled())
	assert.Empty(t, registry.Tally(nil).Attending)
	assert.Empty(t, registry.Tally(nil).Skipping)

	s.MarkAttending("A")
	s.Reinstate()
	assert.False(t, registry.Canceled())
	assert.Equal(t, []string{"A"}, registry.Tally(nil).Attending)

	s.ClearAttendance()
	assert.Empty(t, registry.Tally(nil).Attending)
	assert.False(t, registry.Canceled())
}
