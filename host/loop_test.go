package host

import (
	"context"
	"testing"
	"time"
)

func runLoop(t *testing.T, l *Loop) context.CancelFunc {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = l.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return cancel
}

func TestLoop_DoRunsOnLoop(t *testing.T) {
	l := NewLoop()
	runLoop(t, l)

	var order []int
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	// Tasks posted from the loop itself run after the current task.
	if err := l.Do(ctx, func() {
		order = append(order, 1)
		l.Post(func() { order = append(order, 3) })
		order = append(order, 2)
	}); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if err := l.Do(ctx, func() {}); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if len(order) != 3 || order[2] != 3 {
		t.Errorf("order = %v, want [1 2 3]", order)
	}
}

func TestLoop_TimerThenFrame(t *testing.T) {
	l := NewLoop(WithFrameInterval(2 * time.Millisecond))
	runLoop(t, l)

	fired := make(chan struct{})
	l.AfterFunc(5*time.Millisecond, func() {
		l.RequestFrame(func() { close(fired) })
	})

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("frame callback did not run")
	}
}

func TestLoop_DoHonoursContext(t *testing.T) {
	l := NewLoop() // never run
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := l.Do(ctx, func() {}); err == nil {
		t.Error("Do() on a stopped loop returned nil")
	}
}
