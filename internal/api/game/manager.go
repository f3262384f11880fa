package game

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"quickdraw-service/domain"
)

const (
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// CodeLength is fixed: join codes are always six characters.
	CodeLength   = 6
)

type RegistryConfig struct {
	Defaults        domain.Settings
	CodeAttempts    int
	InterRoundPause time.Duration
}

func DefaultRegistryConfig() RegistryConfig {
	return RegistryConfig{
		Defaults: domain.Settings{
			RoundDurationSeconds: 90,
			MaxRounds:            1,
			Difficulty:           domain.DifficultyMixed,
		},
		CodeAttempts:    10,
		InterRoundPause: 2 * time.Second,
	}
}

// Registry owns every active room, its join code and its broadcast sink.
//
// Lock order: a room holding its own lock may read sinks (sinkMu). The registry
// never takes a room lock while holding mu or sinkMu.
type Registry struct {
	mu     sync.RWMutex
	rooms  map[string]*Room
	codes  map[string]string
	closed bool

	sinkMu sync.RWMutex
	sinks  map[string]Sink

	config   RegistryConfig
	words    WordPicker
	recorder *recordQueue
	newCode  func() string
	newID    func() string
	now      func() time.Time
	logger   *zap.Logger
}

func NewRegistry(config RegistryConfig, words WordPicker, recorder Recorder) *Registry {
	if config.Defaults == (domain.Settings{}) {
		config.Defaults = DefaultRegistryConfig().Defaults
	}
	if config.CodeAttempts <= 0 {
		config.CodeAttempts = 10
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	g := &Registry{
		rooms:    make(map[string]*Room),
		codes:    make(map[string]string),
		sinks:    make(map[string]Sink),
		config:   config,
		words:    words,
		recorder: newRecordQueue(recorder),
		newID:    uuid.NewString,
		now:      time.Now,
		logger:   zap.L().Named("registry"),
	}
	g.newCode = func() string { return randomCode(CodeLength) }
	return g
}

// Create seats the creator as Drawer in a new waiting room under a fresh join code.
func (g *Registry) Create(settings domain.Settings) (*Room, domain.Seat, error) {
	settings, err := g.normalize(settings)
	if err != nil {
		return nil, domain.Seat{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return nil, domain.Seat{}, fmt.Errorf("%w: registry is closed", domain.ErrInternal)
	}

	code, err := g.allocateCodeLocked()
	if err != nil {
		return nil, domain.Seat{}, err
	}

	id := g.newID()
	room := newRoom(id, code, settings, roomDeps{
		words:    g.words,
		sinks:    g,
		recorder: g.recorder,
		pause:    g.config.InterRoundPause,
		now:      g.now,
		newID:    g.newID,
		logger:   g.logger.Named("room"),
	})
	// Not yet published, so the state can be read without the room lock.
	creator := room.state.Players[0]
	seat := domain.Seat{Room: room.state.Public(), PlayerID: creator.ID, Role: creator.Role}
	room.recordLocked(domain.LifecycleRoomCreated, "")

	g.rooms[id] = room
	g.codes[code] = id

	g.logger.Info("room created",
		zap.String("room_id", id),
		zap.String("code", code),
		zap.String("difficulty", string(settings.Difficulty)),
		zap.Int("max_rounds", settings.MaxRounds))

	return room, seat, nil
}

// Join resolves a join code (case-insensitive) and seats a new player.
func (g *Registry) Join(code string) (*Room, domain.Seat, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	g.mu.RLock()
	id, ok := g.codes[code]
	room := g.rooms[id]
	g.mu.RUnlock()

	if !ok || room == nil {
		return nil, domain.Seat{}, domain.ErrRoomNotFound
	}

	seat, err := room.join()
	if err != nil {
		return nil, domain.Seat{}, err
	}
	return room, seat, nil
}

func (g *Registry) Get(roomID string) (*Room, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	room, ok := g.rooms[roomID]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	return room, nil
}

func (g *Registry) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.rooms)
}

func (g *Registry) RegisterSink(roomID string, sink Sink) {
	g.sinkMu.Lock()
	defer g.sinkMu.Unlock()
	g.sinks[roomID] = sink
}

func (g *Registry) UnregisterSink(roomID string) {
	g.sinkMu.Lock()
	defer g.sinkMu.Unlock()
	delete(g.sinks, roomID)
}

func (g *Registry) Sink(roomID string) (Sink, bool) {
	g.sinkMu.RLock()
	defer g.sinkMu.RUnlock()
	sink, ok := g.sinks[roomID]
	return sink, ok
}

// Dispose destroys a room and frees its id and code for reuse.
func (g *Registry) Dispose(roomID string) error {
	g.mu.Lock()
	room, ok := g.rooms[roomID]
	if ok {
		delete(g.rooms, roomID)
		delete(g.codes, room.Code())
	}
	g.mu.Unlock()

	g.UnregisterSink(roomID)

	if !ok {
		return domain.ErrRoomNotFound
	}
	room.dispose()
	g.logger.Info("room disposed", zap.String("room_id", roomID), zap.String("code", room.Code()))
	return nil
}

// Close disposes every room and refuses further creates.
func (g *Registry) Close() {
	g.mu.Lock()
	g.closed = true
	rooms := make([]*Room, 0, len(g.rooms))
	for _, room := range g.rooms {
		rooms = append(rooms, room)
	}
	g.rooms = make(map[string]*Room)
	g.codes = make(map[string]string)
	g.mu.Unlock()

	g.sinkMu.Lock()
	g.sinks = make(map[string]Sink)
	g.sinkMu.Unlock()

	for _, room := range rooms {
		room.dispose()
	}
	g.recorder.Close()
	g.logger.Info("registry closed", zap.Int("rooms", len(rooms)))
}

func (g *Registry) allocateCodeLocked() (string, error) {
	for attempt := 0; attempt < g.config.CodeAttempts; attempt++ {
		code := g.newCode()
		if _, taken := g.codes[code]; !taken {
			return code, nil
		}
	}
	g.logger.Error("room code space exhausted",
		zap.Int("attempts", g.config.CodeAttempts),
		zap.Int("active_rooms", len(g.rooms)))
	return "", domain.ErrCodeExhausted
}

// normalize fills zero settings from the configured defaults and rejects invalid ones.
func (g *Registry) normalize(s domain.Settings) (domain.Settings, error) {
	d := g.config.Defaults
	if s.RoundDurationSeconds == 0 {
		s.RoundDurationSeconds = d.RoundDurationSeconds
	}
	if s.MaxRounds == 0 {
		s.MaxRounds = d.MaxRounds
	}
	if s.Difficulty == "" {
		s.Difficulty = d.Difficulty
	}

	switch {
	case s.RoundDurationSeconds <= 0:
		return s, fmt.Errorf("%w: round duration must be positive", domain.ErrInvalidInput)
	case s.MaxRounds <= 0:
		return s, fmt.Errorf("%w: max rounds must be positive", domain.ErrInvalidInput)
	case !s.Difficulty.Valid():
		return s, fmt.Errorf("%w: unknown difficulty %q", domain.ErrInvalidInput, s.Difficulty)
	}
	return s, nil
}

func randomCode(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = codeAlphabet[rand.IntN(len(codeAlphabet))]
	}
	return string(b)
}
