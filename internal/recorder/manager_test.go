package recorder

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/smazurov/recordscreen/internal/events"
	"github.com/smazurov/recordscreen/internal/ffmpeg"
)

func newTestManager(t *testing.T) (*Manager, *events.Bus) {
	t.Helper()
	bus := events.New()
	return NewManager(bus, testLogger()), bus
}

func TestManagerStartAndFinishEvents(t *testing.T) {
	useStub(t, `exit 0`)

	m, bus := newTestManager(t)
	started := make(chan events.RecordingStartedEvent, 1)
	finished := make(chan events.RecordingFinishedEvent, 1)
	defer bus.Subscribe(func(e events.RecordingStartedEvent) { started <- e })()
	defer bus.Subscribe(func(e events.RecordingFinishedEvent) { finished <- e })()

	out := filepath.Join(t.TempDir(), "out.mp4")
	session := m.Start(out, ffmpeg.Options{})

	select {
	case e := <-started:
		if e.ID != session.ID || e.OutputPath != out {
			t.Errorf("started event = %+v", e)
		}
	case <-time.After(time.Second):
		t.Fatal("no started event")
	}

	select {
	case e := <-finished:
		if e.State != string(StateCompleted) || e.Error != "" {
			t.Errorf("finished event = %+v", e)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no finished event")
	}
}

func TestManagerFailureEventCarriesError(t *testing.T) {
	useStub(t, `echo boom >&2
exit 1`)

	m, bus := newTestManager(t)
	finished := make(chan events.RecordingFinishedEvent, 1)
	defer bus.Subscribe(func(e events.RecordingFinishedEvent) { finished <- e })()

	m.Start(filepath.Join(t.TempDir(), "out.mp4"), ffmpeg.Options{})

	select {
	case e := <-finished:
		if e.State != string(StateFailed) || e.Error == "" {
			t.Errorf("finished event = %+v", e)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no finished event")
	}
}

func TestManagerDefaultsMerge(t *testing.T) {
	useStub(t, `exit 0`)

	m, _ := newTestManager(t)
	fps := 25
	m.SetDefaults(ffmpeg.Options{FPS: &fps, LogLevel: "error"})

	session := m.Start(filepath.Join(t.TempDir(), "out.mp4"), ffmpeg.Options{LogLevel: "debug"})
	waitSettled(t, session.Recording)

	opts := session.Recording.opts
	if opts.FPS == nil || *opts.FPS != 25 {
		t.Errorf("expected default FPS 25, got %+v", opts.FPS)
	}
	if opts.LogLevel != "debug" {
		t.Errorf("caller LogLevel should win, got %q", opts.LogLevel)
	}
}

func TestManagerGetListRemove(t *testing.T) {
	useStub(t, `exit 0`)

	m, _ := newTestManager(t)
	session := m.Start(filepath.Join(t.TempDir(), "out.mp4"), ffmpeg.Options{})

	if got, ok := m.Get(session.ID); !ok || got.ID != session.ID {
		t.Errorf("Get(%q) = %v, %v", session.ID, got, ok)
	}
	if got := len(m.List()); got != 1 {
		t.Errorf("List() length = %d, want 1", got)
	}

	waitSettled(t, session.Recording)

	if err := m.Remove(session.ID); err != nil {
		t.Errorf("Remove() error: %v", err)
	}
	if _, ok := m.Get(session.ID); ok {
		t.Error("expected session to be gone after Remove")
	}
	if err := m.Remove(session.ID); err != ErrNotFound {
		t.Errorf("Remove() on missing ID = %v, want ErrNotFound", err)
	}
}

func TestManagerCancel(t *testing.T) {
	useStub(t, `trap 'exit 255' INT
while :; do sleep 0.1; done`)

	m, _ := newTestManager(t)
	session := m.Start(filepath.Join(t.TempDir(), "out.mp4"), ffmpeg.Options{})
	time.Sleep(100 * time.Millisecond)

	if err := m.Cancel(session.ID); err != nil {
		t.Fatalf("Cancel() error: %v", err)
	}
	if _, err := waitSettled(t, session.Recording); err != nil {
		t.Errorf("cancelled recording should resolve, got %v", err)
	}

	if err := m.Cancel("missing"); err != ErrNotFound {
		t.Errorf("Cancel() on missing ID = %v, want ErrNotFound", err)
	}
}

func TestManagerCancelAll(t *testing.T) {
	useStub(t, `trap 'exit 255' INT
while :; do sleep 0.1; done`)

	m, _ := newTestManager(t)
	s1 := m.Start(filepath.Join(t.TempDir(), "a.mp4"), ffmpeg.Options{})
	s2 := m.Start(filepath.Join(t.TempDir(), "b.mp4"), ffmpeg.Options{})
	time.Sleep(100 * time.Millisecond)

	m.CancelAll(5 * time.Second)

	for _, s := range []*Session{s1, s2} {
		if got := s.Recording.State(); got != StateCancelled {
			t.Errorf("State() = %q, want %q", got, StateCancelled)
		}
	}
}
