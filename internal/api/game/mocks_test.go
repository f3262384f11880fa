package game

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"quickdraw-service/domain"
)

type sentEvent struct {
	To      string
	Event   string
	Payload any
}

type recordingSink struct {
	mu       sync.Mutex
	events   []sentEvent
	released []string
	err      error
}

func (s *recordingSink) Broadcast(event string, payload any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, sentEvent{Event: event, Payload: payload})
	return s.err
}

func (s *recordingSink) SendTo(playerID, event string, payload any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, sentEvent{To: playerID, Event: event, Payload: payload})
	return s.err
}

func (s *recordingSink) Release(playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.released = append(s.released, playerID)
	return s.err
}

func (s *recordingSink) Released() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.released...)
}

func (s *recordingSink) Events() []sentEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]sentEvent(nil), s.events...)
}

func (s *recordingSink) Names() []string {
	var names []string
	for _, e := range s.Events() {
		names = append(names, e.Event)
	}
	return names
}

func (s *recordingSink) Named(event string) []sentEvent {
	var out []sentEvent
	for _, e := range s.Events() {
		if e.Event == event {
			out = append(out, e)
		}
	}
	return out
}

// ReceivedBy returns what a connection of playerID would see: broadcasts plus events addressed to it.
func (s *recordingSink) ReceivedBy(playerID string) []sentEvent {
	var out []sentEvent
	for _, e := range s.Events() {
		if e.To == "" || e.To == playerID {
			out = append(out, e)
		}
	}
	return out
}

func (s *recordingSink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = nil
}

type panickingSink struct{}

func (panickingSink) Broadcast(string, any) error      { panic("transport gone") }
func (panickingSink) SendTo(string, string, any) error { return errors.New("unreachable") }
func (panickingSink) Release(string) error             { return nil }

type recordingRecorder struct {
	events chan domain.LifecycleEvent
}

func newRecordingRecorder() *recordingRecorder {
	return &recordingRecorder{events: make(chan domain.LifecycleEvent, 64)}
}

func (r *recordingRecorder) Record(_ context.Context, event domain.LifecycleEvent) {
	r.events <- event
}

func (r *recordingRecorder) next(t *testing.T, kind domain.LifecycleKind) domain.LifecycleEvent {
	t.Helper()
	timeout := time.After(time.Second)
	for {
		select {
		case ev := <-r.events:
			if ev.Kind == kind {
				return ev
			}
		case <-timeout:
			t.Fatalf("no %s lifecycle event recorded", kind)
		}
	}
}

// firstWordBank always takes the first eligible word, so draws are predictable.
func firstWordBank(t *testing.T) *WordBank {
	t.Helper()
	bank, err := NewWordBank(DefaultWords)
	require.NoError(t, err)
	bank.intn = func(int) int { return 0 }
	return bank
}

func newTestRegistry(t *testing.T, recorder Recorder) *Registry {
	t.Helper()
	cfg := DefaultRegistryConfig()
	cfg.InterRoundPause = 10 * time.Millisecond
	g := NewRegistry(cfg, firstWordBank(t), recorder)
	t.Cleanup(g.Close)
	return g
}

type testRoom struct {
	registry *Registry
	room     *Room
	sink     *recordingSink
	drawer   string
	guesser  string
}

// setupRoom creates a hosted room and seats a second player.
func setupRoom(t *testing.T, settings domain.Settings) *testRoom {
	t.Helper()
	g := newTestRegistry(t, nil)

	room, created, err := g.Create(settings)
	require.NoError(t, err)

	sink := &recordingSink{}
	g.RegisterSink(room.ID(), sink)

	_, joined, err := g.Join(created.Room.Code)
	require.NoError(t, err)

	return &testRoom{registry: g, room: room, sink: sink, drawer: created.PlayerID, guesser: joined.PlayerID}
}

// setupPlaying readies both players and starts the game, then clears recorded events.
func setupPlaying(t *testing.T, settings domain.Settings) *testRoom {
	t.Helper()
	tr := setupRoom(t, settings)

	_, err := tr.room.ToggleReady(tr.drawer, true)
	require.NoError(t, err)
	_, err = tr.room.ToggleReady(tr.guesser, true)
	require.NoError(t, err)
	_, err = tr.room.Start(tr.drawer)
	require.NoError(t, err)

	tr.sink.Reset()
	return tr
}

func (tr *testRoom) state() domain.Room {
	tr.room.mu.Lock()
	defer tr.room.mu.Unlock()
	s := tr.room.state
	s.Players = tr.room.state.PlayersSnapshot()
	s.UsedWords = append([]string(nil), tr.room.state.UsedWords...)
	return s
}

func (tr *testRoom) currentWord(t *testing.T) string {
	t.Helper()
	s := tr.state()
	require.NotNil(t, s.CurrentWord)
	return s.CurrentWord.Text
}

func toJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// slowRecorder stalls on one kind of event and keeps the order it saw.
type slowRecorder struct {
	mu    sync.Mutex
	kinds []domain.LifecycleKind
	slow  domain.LifecycleKind
	delay time.Duration
}

func (r *slowRecorder) Record(_ context.Context, event domain.LifecycleEvent) {
	if event.Kind == r.slow {
		time.Sleep(r.delay)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.kinds = append(r.kinds, event.Kind)
}

func (r *slowRecorder) Kinds() []domain.LifecycleKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.LifecycleKind(nil), r.kinds...)
}
