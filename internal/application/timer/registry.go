// Package timer keeps simulation-time timers for one session.
// Nothing here reads the wall clock; time only moves when Advance is called.
package timer

import "time"

// Owner tags timers so a group can be cancelled together
type Owner uint64

// NoOwner is used for timers that belong to the session itself
const NoOwner Owner = 0

// Handle identifies a scheduled timer
type Handle uint64

type entry struct {
	id    Handle
	owner Owner
	due   time.Duration
	fn    func()
}

// Registry holds fire-once timers ordered by due time
type Registry struct {
	now     time.Duration
	nextID  Handle
	pending []*entry
}

// NewRegistry returns an empty registry at time zero
func NewRegistry() *Registry {
	return &Registry{}
}

// Now returns the current simulation time
func (r *Registry) Now() time.Duration {
	return r.now
}

// Pending returns the number of timers still waiting to fire
func (r *Registry) Pending() int {
	return len(r.pending)
}

// After schedules fn to run once, delay after the current time
func (r *Registry) After(delay time.Duration, owner Owner, fn func()) Handle {
	if delay < 0 {
		delay = 0
	}
	r.nextID++
	r.pending = append(r.pending, &entry{
		id:    r.nextID,
		owner: owner,
		due:   r.now + delay,
		fn:    fn,
	})
	return r.nextID
}

// Cancel drops a timer. Reports false if it already fired or was cancelled.
func (r *Registry) Cancel(h Handle) bool {
	for i, e := range r.pending {
		if e.id == h {
			r.pending = append(r.pending[:i], r.pending[i+1:]...)
			return true
		}
	}
	return false
}

// CancelOwner drops every timer of an owner and returns how many were dropped
func (r *Registry) CancelOwner(owner Owner) int {
	kept := r.pending[:0]
	for _, e := range r.pending {
		if e.owner != owner {
			kept = append(kept, e)
		}
	}
	n := len(r.pending) - len(kept)
	clear(r.pending[len(kept):])
	r.pending = kept
	return n
}

// CancelAll drops every pending timer and returns how many were dropped
func (r *Registry) CancelAll() int {
	n := len(r.pending)
	r.pending = nil
	return n
}

// Advance moves time forward to `to` and fires every timer due by then,
// earliest first, ties in scheduling order. While a callback runs, Now
// reports its due time, so timers it schedules are relative to that moment
// and fire in the same Advance when they fall due before `to`.
func (r *Registry) Advance(to time.Duration) int {
	fired := 0
	for {
		idx := r.nextDue(to)
		if idx < 0 {
			break
		}
		e := r.pending[idx]
		r.pending = append(r.pending[:idx], r.pending[idx+1:]...)
		r.now = e.due
		e.fn()
		fired++
	}
	if to > r.now {
		r.now = to
	}
	return fired
}

func (r *Registry) nextDue(to time.Duration) int {
	best := -1
	for i, e := range r.pending {
		if e.due > to {
			continue
		}
		if best < 0 || e.due < r.pending[best].due || (e.due == r.pending[best].due && e.id < r.pending[best].id) {
			best = i
		}
	}
	return best
}
