package service

import (
	"sort"
	"sync"

	"github.com/diegoclair/attendance-bot/internal/domain/entity"
)

// Registry holds the current cycle's attendance. The attending set, the
// skipping map and the canceled flag are one unit guarded by mu; a member is
// never present in both attending and skipping.
type Registry struct {
	mu        sync.Mutex
	attending map[string]struct{}
	skipping  map[string]string
	canceled  bool
	version   uint64

	// onChange runs after every mutation, outside the lock.
	onChange func(entity.AttendanceSnapshot)
}

func NewRegistry(onChange func(entity.AttendanceSnapshot)) *Registry {
	return &Registry{
		attending: make(map[string]struct{}),
		skipping:  make(map[string]string),
		onChange:  onChange,
	}
}

func (r *Registry) MarkAttending(memberID string) {
	r.mutate(func() {
		delete(r.skipping, memberID)
		r.attending[memberID] = struct{}{}
	})
}

// MarkSkipping records memberID as not attending. An empty reason is kept as
// is and stays distinct from not skipping at all.
func (r *Registry) MarkSkipping(memberID, reason string) {
	r.mutate(func() {
		delete(r.attending, memberID)
		r.skipping[memberID] = reason
	})
}

// Clear empties attendance in place. The canceled flag is left alone.
func (r *Registry) Clear() {
	r.mutate(func() {
		clear(r.attending)
		clear(r.skipping)
	})
}

func (r *Registry) SetCanceled(canceled bool) {
	r.mutate(func() {
		r.canceled = canceled
	})
}

func (r *Registry) Canceled() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.canceled
}

// Tally classifies roster members against the current state. Attending and
// skipping are reported as stored, unaccounted keeps roster order.
func (r *Registry) Tally(roster []string) *entity.Tally {
	r.mu.Lock()
	defer r.mu.Unlock()

	tally := &entity.Tally{
		Attending:   r.attendingLocked(),
		Skipping:    make(map[string]string, len(r.skipping)),
		Unaccounted: []string{},
	}
	for member, reason := range r.skipping {
		tally.Skipping[member] = reason
	}

	seen := make(map[string]bool, len(roster))
	for _, member := range roster {
		if seen[member] {
			continue
		}
		seen[member] = true

		if _, ok := r.attending[member]; ok {
			continue
		}
		if _, ok := r.skipping[member]; ok {
			continue
		}
		tally.Unaccounted = append(tally.Unaccounted, member)
	}

	return tally
}

func (r *Registry) Snapshot() entity.AttendanceSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

// Restore replaces the state with a persisted snapshot. It does not call the
// change hook.
func (r *Registry) Restore(snap entity.AttendanceSnapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.attending)
	clear(r.skipping)
	for _, member := range snap.Attending {
		r.attending[member] = struct{}{}
	}
	for member, reason := range snap.Skipping {
		if _, ok := r.attending[member]; ok {
			continue
		}
		r.skipping[member] = reason
	}
	r.canceled = snap.Canceled
	r.version = snap.Version
}

func (r *Registry) mutate(fn func()) {
	r.mu.Lock()
	fn()
	r.version++

	var snap entity.AttendanceSnapshot
	hook := r.onChange
	if hook != nil {
		snap = r.snapshotLocked()
	}
	r.mu.Unlock()

	if hook != nil {
		hook(snap)
	}
}

func (r *Registry) snapshotLocked() entity.AttendanceSnapshot {
	snap := entity.AttendanceSnapshot{
		Version:   r.version,
		Attending: r.attendingLocked(),
		Skipping:  make(map[string]string, len(r.skipping)),
		Canceled:  r.canceled,
	}
	for member, reason := range r.skipping {
		snap.Skipping[member] = reason
	}
	return snap
}

func (r *Registry) attendingLocked() []string {
	members := make([]string, 0, len(r.attending))
	for member := range r.attending {
		members = append(members, member)
	}
	sort.Strings(members)
	return members
}
