package service

import (
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/diegoclair/attendance-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Tally(t *testing.T) {
	tests := []struct {
		name   string
		build  func(r *Registry)
		roster []string
		want   *entity.Tally
	}{
		{
			name: "Should classify attending, skipping and unaccounted members",
			build: func(r *Registry) {
				r.MarkAttending("A")
				r.MarkSkipping("B", "sick")
			},
			roster: []string{"A", "B", "C"},
			want: &entity.Tally{
				Attending:   []string{"A"},
				Skipping:    map[string]string{"B": "sick"},
				Unaccounted: []string{"C"},
			},
		},
		{
			name: "Should report everyone unaccounted after clear",
			build: func(r *Registry) {
				r.MarkAttending("A")
				r.MarkSkipping("B", "")
				r.Clear()
			},
			roster: []string{"A", "B", "C"},
			want: &entity.Tally{
				Attending:   []string{},
				Skipping:    map[string]string{},
				Unaccounted: []string{"A", "B", "C"},
			},
		},
		{
			name: "Should keep an empty skipping reason",
			build: func(r *Registry) {
				r.MarkSkipping("B", "")
			},
			roster: []string{"B"},
			want: &entity.Tally{
				Attending:   []string{},
				Skipping:    map[string]string{"B": ""},
				Unaccounted: []string{},
			},
		},
		{
			name: "Should report attending members outside the roster",
			build: func(r *Registry) {
				r.MarkAttending("guest")
			},
			roster: []string{"A", "A"},
			want: &entity.Tally{
				Attending:   []string{"guest"},
				Skipping:    map[string]string{},
				Unaccounted: []string{"A"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry(nil)
			tt.build(r)

			assert.Equal(t, tt.want, r.Tally(tt.roster))
		})
	}
}

func TestRegistry_MembershipIsExclusive(t *testing.T) {
	r := NewRegistry(nil)
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		if rng.Intn(2) == 0 {
			r.MarkAttending("A")
		} else {
			r.MarkSkipping("A", fmt.Sprintf("reason %d", i))
		}

		tally := r.Tally([]string{"A"})
		_, skipping := tally.Skipping["A"]
		attending := len(tally.Attending) == 1

		require.True(t, attending != skipping, "member must be in exactly one set after call %d", i)
		require.Empty(t, tally.Unaccounted)
	}
}

func TestRegistry_MarkSkippingReplacesReason(t *testing.T) {
	r := NewRegistry(nil)
	r.MarkSkipping("A", "sick")
	r.MarkSkipping("A", "travel")

	assert.Equal(t, map[string]string{"A": "travel"}, r.Tally(nil).Skipping)
}

func TestRegistry_ClearKeepsCanceled(t *testing.T) {
	r := NewRegistry(nil)
	r.SetCanceled(true)
	r.MarkAttending("A")

	r.Clear()

	assert.True(t, r.Canceled())
	assert.Empty(t, r.Tally(nil).Attending)

	r.SetCanceled(false)
	assert.False(t, r.Canceled())
}

func TestRegistry_OnChange(t *testing.T) {
	var got []entity.AttendanceSnapshot
	r := NewRegistry(func(snap entity.AttendanceSnapshot) {
		got = append(got, snap)
	})

	r.MarkAttending("A")
	r.MarkSkipping("B", "late")
	r.SetCanceled(true)
	r.Clear()

	require.Len(t, got, 4)
	for i, snap := range got {
		assert.Equal(t, uint64(i+1), snap.Version)
	}
	assert.Equal(t, []string{"A"}, got[0].Attending)
	assert.Equal(t, map[string]string{"B": "late"}, got[1].Skipping)
	assert.True(t, got[2].Canceled)
	assert.Empty(t, got[3].Attending)
	assert.Empty(t, got[3].Skipping)
	assert.True(t, got[3].Canceled)
}

func TestRegistry_Restore(t *testing.T) {
	r := NewRegistry(nil)
	r.MarkAttending("old")

	r.Restore(entity.AttendanceSnapshot{
		Version:   7,
		Attending: []string{"A", "B"},
		Skipping:  map[string]string{"B": "dup", "C": ""},
		Canceled:  true,
	})

	snap := r.Snapshot()
	assert.Equal(t, uint64(7), snap.Version)
	assert.Equal(t, []string{"A", "B"}, snap.Attending)
	assert.Equal(t, map[string]string{"C": ""}, snap.Skipping)
	assert.True(t, snap.Canceled)

	r.MarkAttending("C")
	assert.Equal(t, uint64(8), r.Snapshot().Version)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry(nil)
	roster := []string{"A", "B", "C", "D"}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				member := roster[(worker+j)%len(roster)]
				switch j % 4 {
				case 0:
					r.MarkAttending(member)
				case 1:
					r.MarkSkipping(member, "busy")
				case 2:
					r.Tally(roster)
				case 3:
					if j%40 == 3 {
						r.Clear()
					}
				}
			}
		}(i)
	}
	wg.Wait()

	tally := r.Tally(roster)
	for _, member := range tally.Attending {
		_, skipping := tally.Skipping[member]
		assert.False(t, skipping, "%s is both attending and skipping", member)
	}
	assert.Equal(t, len(roster), len(tally.Attending)+len(tally.Skipping)+len(tally.Unaccounted))
}
