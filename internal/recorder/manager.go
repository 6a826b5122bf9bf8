package recorder

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/smazurov/recordscreen/internal/events"
	"github.com/smazurov/recordscreen/internal/ffmpeg"
	"github.com/smazurov/recordscreen/internal/metrics"
)

// ErrNotFound is returned when no recording exists for an ID.
var ErrNotFound = fmt.Errorf("recording not found")

// Session pairs a recording handle with its registry metadata.
type Session struct {
	ID        string
	StartedAt time.Time
	Recording *Recording
}

// Manager is a registry of recordings keyed by ID. It merges configured
// default options into each start request, publishes lifecycle events, and
// keeps recording metrics current. Independent recordings do not interact;
// the registry lock only guards the map and the defaults.
type Manager struct {
	bus    *events.Bus
	logger *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
	defaults ffmpeg.Options
}

// NewManager creates a recording manager.
func NewManager(bus *events.Bus, logger *slog.Logger) *Manager {
	return &Manager{
		bus:      bus,
		logger:   logger,
		sessions: make(map[string]*Session),
	}
}

// SetDefaults replaces the default options merged into subsequent start
// requests. Called at startup and from the defaults file watcher.
func (m *Manager) SetDefaults(defaults ffmpeg.Options) {
	m.mu.Lock()
	m.defaults = defaults
	m.mu.Unlock()
}

// Start begins a recording and registers it. Caller-supplied options win
// over the configured defaults; spawn failures surface through the
// session's Recording handle, same as any other failure.
func (m *Manager) Start(outputPath string, opts ffmpeg.Options) *Session {
	m.mu.Lock()
	merged := ffmpeg.Merge(opts, m.defaults)
	m.mu.Unlock()

	id := uuid.NewString()
	session := &Session{
		ID:        id,
		StartedAt: time.Now(),
		Recording: Start(outputPath, merged, m.logger.With("recording_id", id)),
	}

	m.mu.Lock()
	m.sessions[session.ID] = session
	m.mu.Unlock()

	metrics.RecordingStarted()
	m.bus.Publish(events.RecordingStartedEvent{
		ID:         session.ID,
		OutputPath: outputPath,
		Timestamp:  session.StartedAt.UTC().Format(time.RFC3339),
	})

	go m.watch(session)
	return session
}

// watch publishes the terminal event and metrics once a session settles.
func (m *Manager) watch(session *Session) {
	<-session.Recording.Done()

	state := session.Recording.State()
	_, err := session.Recording.Wait(context.Background())
	errText := ""
	if err != nil {
		errText = err.Error()
	}

	metrics.RecordingSettled(string(state), time.Since(session.StartedAt).Seconds())
	m.bus.Publish(events.RecordingFinishedEvent{
		ID:         session.ID,
		OutputPath: session.Recording.OutputPath(),
		State:      string(state),
		Error:      errText,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	})
}

// Get returns the session for an ID.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// List returns all registered sessions, including settled ones that have
// not been removed yet.
func (m *Manager) List() []*Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, s)
	}
	return out
}

// Cancel sends SIGINT to a running recording. Settled recordings are a
// no-op, unknown IDs return ErrNotFound.
func (m *Manager) Cancel(id string) error {
	session, ok := m.Get(id)
	if !ok {
		return ErrNotFound
	}
	session.Recording.Cancel()
	return nil
}

// Remove drops a session from the registry, cancelling it first if it is
// still running.
func (m *Manager) Remove(id string) error {
	session, ok := m.Get(id)
	if !ok {
		return ErrNotFound
	}
	session.Recording.Cancel()

	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
	return nil
}

// CancelAll interrupts every running recording and waits up to timeout for
// them to settle. Used on server shutdown.
func (m *Manager) CancelAll(timeout time.Duration) {
	deadline := time.After(timeout)
	for _, session := range m.List() {
		session.Recording.Cancel()
	}
	for _, session := range m.List() {
		select {
		case <-session.Recording.Done():
		case <-deadline:
			m.logger.Warn("Timed out waiting for recordings to settle")
			return
		}
	}
}
