// Package sched provides cancellable repeating tasks for a cooperative,
// single-threaded event loop.
//
// A [Loop] never schedules anything itself. The event loop calls Start to
// get a generation token, hands the token to the host scheduler (e.g. a
// Bubble Tea tick command), and validates it with Next when the callback
// fires. Stopping the loop invalidates every outstanding token, so a
// callback already in flight when the simulation pauses or resets is
// recognised as stale and dropped instead of mutating state.
package sched

import "time"

// Tick is the token carried by one scheduled callback.
type Tick struct {
	Gen int
	At  time.Time
}

// Loop is a repeating task with at most one live generation.
type Loop struct {
	every  time.Duration
	gen    int
	active bool
}

func NewLoop(every time.Duration) *Loop {
	return &Loop{every: every}
}

// Interval returns the scheduling period.
func (l *Loop) Interval() time.Duration { return l.every }

func (l *Loop) Active() bool { return l.active }

// Start activates the loop and returns the token for the first callback.
// Starting an already-active loop supersedes its previous generation.
func (l *Loop) Start(now time.Time) Tick {
	l.gen++
	l.active = true
	return Tick{Gen: l.gen, At: now}
}

// Stop deactivates the loop immediately and unconditionally. Outstanding
// tokens become stale.
func (l *Loop) Stop() {
	l.gen++
	l.active = false
}

// Next validates a fired token and issues the follow-up token. ok is false
// when the token is stale or the loop is stopped; the callback chain ends
// there.
func (l *Loop) Next(t Tick, now time.Time) (next Tick, ok bool) {
	if !l.active || t.Gen != l.gen {
		return Tick{}, false
	}
	return Tick{Gen: l.gen, At: now}, true
}
