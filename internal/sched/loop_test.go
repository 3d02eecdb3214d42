package sched

import (
	"testing"
	"time"
)

func TestLoopStartNext(t *testing.T) {
	l := NewLoop(time.Second)
	now := time.Now()

	tok := l.Start(now)
	if !l.Active() {
		t.Fatal("loop should be active after start")
	}

	next, ok := l.Next(tok, now.Add(time.Second))
	if !ok {
		t.Fatal("expected live token to be accepted")
	}
	if next.Gen != tok.Gen {
		t.Errorf("generation changed across Next: %d -> %d", tok.Gen, next.Gen)
	}
}

func TestLoopStopInvalidatesTokens(t *testing.T) {
	l := NewLoop(time.Second)
	now := time.Now()

	tok := l.Start(now)
	l.Stop()

	if l.Active() {
		t.Error("loop should be inactive after stop")
	}
	if _, ok := l.Next(tok, now.Add(time.Second)); ok {
		t.Error("token issued before Stop must be rejected")
	}
}

func TestLoopRestartSupersedesOldGeneration(t *testing.T) {
	l := NewLoop(time.Second)
	now := time.Now()

	old := l.Start(now)
	fresh := l.Start(now.Add(time.Second))

	if _, ok := l.Next(old, now.Add(2*time.Second)); ok {
		t.Error("token from the previous generation must be rejected")
	}
	if _, ok := l.Next(fresh, now.Add(2*time.Second)); !ok {
		t.Error("token from the current generation must be accepted")
	}
}

func TestLoopStopThenStart(t *testing.T) {
	l := NewLoop(time.Second / 60)
	now := time.Now()

	l.Start(now)
	l.Stop()
	tok := l.Start(now.Add(time.Minute))

	next, ok := l.Next(tok, now.Add(time.Minute).Add(time.Second/60))
	if !ok {
		t.Fatal("restarted loop should accept its new token")
	}
	if _, ok := l.Next(next, now.Add(time.Hour)); !ok {
		t.Error("chained token should remain valid until the next stop")
	}
}
