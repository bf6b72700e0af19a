package sender

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func collect(sub *Subscription) []Event {
	var events []Event
	for msg := range sub.Events() {
		events = append(events, msg.(Event))
	}
	return events
}

func TestProgress_PublishesJobEvents(t *testing.T) {
	progress := NewProgress(64)
	defer progress.Shutdown()
	sub := progress.Subscribe("s1")

	o := NewOrchestrator(NewMemoryFlags(time.Minute), testTick, 0)
	dispatch := func(_ context.Context, task *Task) error {
		if task.Phone == "b" {
			return errors.New("rejected")
		}
		return nil
	}

	var nextDone bool
	obs := progress.Observe("s1", Observer{OnJobDone: func(Report) { nextDone = true }})
	_, err := o.Run(context.Background(), Job{SessionId: "s1", Delay: testDelay, Tasks: tasks("a", "b")}, dispatch, obs)
	require.NoError(t, err)

	events := collect(sub)
	require.True(t, nextDone)
	require.NotEmpty(t, events)

	var kinds []EventKind
	for _, ev := range events {
		if ev.Kind != EventTick {
			kinds = append(kinds, ev.Kind)
		}
	}
	require.Equal(t, []EventKind{EventSucceeded, EventFailed, EventDone}, kinds)

	last := events[len(events)-1]
	require.Equal(t, 1, last.Succeeded)
	require.Equal(t, 1, last.Failed)
	require.Equal(t, EventTick, events[0].Kind)
}

func TestProgress_OtherSessionsNotDelivered(t *testing.T) {
	progress := NewProgress(8)
	defer progress.Shutdown()
	sub := progress.Subscribe("mine")

	progress.Publish(Event{Kind: EventTick, SessionId: "other"})
	progress.Publish(Event{Kind: EventTick, SessionId: "mine", RemainingSeconds: 3})

	select {
	case msg := <-sub.Events():
		require.Equal(t, 3, msg.(Event).RemainingSeconds)
	case <-time.After(time.Second):
		t.Fatal("expected an event")
	}
	sub.Close()
}

func TestProgress_SlowSubscriberDoesNotBlock(t *testing.T) {
	progress := NewProgress(1)
	defer progress.Shutdown()
	sub := progress.Subscribe("s1")
	defer sub.Close()

	finished := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			progress.Publish(Event{Kind: EventTick, SessionId: "s1", RemainingSeconds: i})
		}
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("publishing blocked on a slow subscriber")
	}
}
