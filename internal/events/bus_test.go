package events

import (
	"testing"
	"time"
)

func TestBus_PublishSubscribe(t *testing.T) {
	bus := New()
	received := make(chan RecordingStartedEvent, 1)

	unsub := bus.Subscribe(func(e RecordingStartedEvent) {
		received <- e
	})
	defer unsub()

	ev := RecordingStartedEvent{
		ID:         "rec-1",
		OutputPath: "/tmp/out.mp4",
		Timestamp:  "2025-01-27T10:30:00Z",
	}
	bus.Publish(ev)

	got := <-received
	if got.ID != ev.ID || got.OutputPath != ev.OutputPath {
		t.Errorf("received %+v, want %+v", got, ev)
	}
}

func TestBus_MultipleSubscribers(_ *testing.T) {
	bus := New()
	received1 := make(chan RecordingFinishedEvent, 1)
	received2 := make(chan RecordingFinishedEvent, 1)

	unsub1 := bus.Subscribe(func(e RecordingFinishedEvent) {
		received1 <- e
	})
	defer unsub1()

	unsub2 := bus.Subscribe(func(e RecordingFinishedEvent) {
		received2 <- e
	})
	defer unsub2()

	bus.Publish(RecordingFinishedEvent{ID: "rec-1", State: "completed"})

	<-received1
	<-received2
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := New()
	received := make(chan RecordingFinishedEvent, 1)

	unsub := bus.Subscribe(func(e RecordingFinishedEvent) {
		received <- e
	})

	bus.Publish(RecordingFinishedEvent{ID: "rec-1"})
	<-received

	unsub()
	bus.Publish(RecordingFinishedEvent{ID: "rec-2"})

	select {
	case e := <-received:
		t.Errorf("received event after unsubscribe: %+v", e)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBus_UnknownHandlerType(t *testing.T) {
	bus := New()
	unsub := bus.Subscribe(func(int) {})
	if unsub == nil {
		t.Fatal("expected no-op unsubscribe function")
	}
	unsub()
}
