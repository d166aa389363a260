package tasks

import (
	"context"
	"testing"
	"time"
)

func TestWatcher_StopsOnCancel(t *testing.T) {
	s := newTestStore(t, &fakeRewards{}, &fakeRoster{})
	w := NewWatcher(s)
	w.interval = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestWatcher_ChecksImmediately(t *testing.T) {
	roster := onePetRoster()
	s := newTestStore(t, &fakeRewards{}, roster)
	s.AddTask("write report", "09/03/2026", "", "")

	w := NewWatcher(s)
	w.interval = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	// The first check runs before the first tick.
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if len(s.Tasks()) > 0 && s.Tasks()[0].LastDamageAt != 0 {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	cancel()
	<-done

	if got := s.Tasks()[0].LastDamageAt; got == 0 {
		t.Error("no immediate deadline check before the first tick")
	}
}
