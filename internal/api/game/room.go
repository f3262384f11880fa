package game

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"quickdraw-service/domain"
)

// Room owns one session's state. Every transition runs under mu and issues its
// broadcasts before releasing it, so per-room broadcast order is commit order.
type Room struct {
	mu    sync.Mutex
	state domain.Room

	words    WordPicker
	notify   *notifier
	recorder Recorder
	pause    time.Duration
	now      func() time.Time
	newID    func() string
	logger   *zap.Logger

	// epoch moves on every reset, finish or disposal; a pending round start
	// compares it after the inter-round pause.
	epoch     uint64
	advancing bool
	interrupt chan struct{}
	disposed  bool
}

type roomDeps struct {
	words    WordPicker
	sinks    sinkLookup
	recorder Recorder
	pause    time.Duration
	now      func() time.Time
	newID    func() string
	logger   *zap.Logger
}

// RoundOutcome is the result of NextRound: either the game ended or a new round started.
type RoundOutcome struct {
	GameEnded  bool            `json:"gameEnded"`
	FinalScore int             `json:"finalScore"`
	Round      int             `json:"round,omitempty"`
	Players    []domain.Player `json:"players,omitempty"`
}

func newRoom(id, code string, settings domain.Settings, deps roomDeps) *Room {
	r := &Room{
		words:    deps.words,
		recorder: deps.recorder,
		pause:    deps.pause,
		now:      deps.now,
		newID:    deps.newID,
		logger:   deps.logger.With(zap.String("room_id", id), zap.String("code", code)),
	}
	r.notify = &notifier{roomID: id, sinks: deps.sinks, logger: r.logger}
	r.state = domain.Room{
		ID:           id,
		Code:         code,
		CreatedAt:    deps.now(),
		Status:       domain.StatusWaiting,
		Settings:     settings,
		CurrentRound: 1,
		Players: []domain.Player{{
			ID:        deps.newID(),
			Name:      "Player1",
			Role:      domain.RoleDrawer,
			Connected: true,
		}},
	}
	return r
}

func (r *Room) ID() string {
	return r.state.ID
}

func (r *Room) Code() string {
	return r.state.Code
}

func (r *Room) Snapshot() domain.PublicRoom {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.Public()
}

// View returns the reconnect recovery read. Only the current Drawer sees the word text.
func (r *Room) View(playerID string) domain.RoomView {
	r.mu.Lock()
	defer r.mu.Unlock()

	view := domain.RoomView{
		PublicRoom:    r.state.Public(),
		Strokes:       append([]domain.Stroke{}, r.state.Strokes...),
		Guesses:       append([]domain.Guess{}, r.state.Guesses...),
		UsedWordCount: len(r.state.UsedWords),
	}
	if !r.state.RoundStartTime.IsZero() {
		t := r.state.RoundStartTime
		view.RoundStartTime = &t
	}
	if !r.state.GameStartTime.IsZero() {
		t := r.state.GameStartTime
		view.GameStartTime = &t
	}
	if w := r.state.CurrentWord; w != nil {
		view.Hint = w.Hint
		view.WordLength = utf8.RuneCountInString(w.Text)
		if p, ok := r.state.Player(playerID); ok && p.Role == domain.RoleDrawer {
			view.Word = w.Text
		}
	}
	return view
}

func (r *Room) HasPlayer(playerID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.state.Player(playerID)
	return ok
}

func (r *Room) join() (domain.Seat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.disposed {
		return domain.Seat{}, domain.ErrRoomNotFound
	}
	if r.state.ConnectedCount() >= 2 {
		return domain.Seat{}, domain.ErrRoomFull
	}

	slot := -1
	for i, p := range r.state.Players {
		if !p.Connected {
			slot = i
			break
		}
	}
	if slot < 0 {
		role := domain.RoleGuesser
		if len(r.state.Players) == 1 {
			role = r.state.Players[0].Role.Opposite()
		}
		r.state.Players = append(r.state.Players, domain.Player{Role: role})
		slot = len(r.state.Players) - 1
	}

	p := &r.state.Players[slot]
	p.ID = r.newID()
	p.Name = fmt.Sprintf("Player%d", slot+1)
	p.Connected = true
	p.Ready = false

	r.notify.broadcast(domain.EventPlayerJoined, domain.PlayerJoinedPayload{
		Players:    r.state.PlayersSnapshot(),
		PlayerName: p.Name,
	})
	r.logger.Info("player joined", zap.String("player_id", p.ID), zap.Int("slot", slot))

	return domain.Seat{Room: r.state.Public(), PlayerID: p.ID, Role: p.Role}, nil
}

// ToggleReady sets the player's ready flag and reports whether both seats are ready.
func (r *Room) ToggleReady(playerID string, ready bool) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.state.Player(playerID)
	if !ok {
		return false, domain.ErrPlayerNotFound
	}
	if r.state.Status != domain.StatusWaiting {
		return false, fmt.Errorf("%w: readiness can only change while waiting", domain.ErrInvalidState)
	}

	p.Ready = ready
	r.notify.broadcast(domain.EventPlayerReady, domain.PlayerReadyPayload{
		PlayerID: p.ID,
		Ready:    ready,
		Players:  r.state.PlayersSnapshot(),
	})
	return r.state.AllReady(), nil
}

func (r *Room) Start(playerID string) (domain.PublicRoom, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state.Status != domain.StatusWaiting {
		return domain.PublicRoom{}, fmt.Errorf("%w: game already %s", domain.ErrInvalidState, r.state.Status)
	}
	if _, ok := r.state.Player(playerID); !ok {
		return domain.PublicRoom{}, domain.ErrPlayerNotFound
	}
	if !r.state.AllReady() {
		return domain.PublicRoom{}, fmt.Errorf("%w: both players must be connected and ready", domain.ErrInvalidState)
	}

	now := r.now()
	r.state.Status = domain.StatusPlaying
	r.state.GameStartTime = now
	r.drawWordLocked(true)
	r.state.RoundStartTime = now

	public := r.state.Public()
	r.notify.broadcast(domain.EventGameStarted, domain.GameStartedPayload{Room: public})
	r.revealLocked()
	r.recordLocked(domain.LifecycleGameStarted, "")

	return public, nil
}

func (r *Room) AddStroke(playerID string, stroke domain.Stroke) (domain.Stroke, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.actorLocked(playerID, domain.RoleDrawer); err != nil {
		return domain.Stroke{}, err
	}

	if stroke.ID == "" {
		stroke.ID = r.newID()
	}
	if stroke.Timestamp == 0 {
		stroke.Timestamp = r.now().UnixMilli()
	}
	r.state.Strokes = append(r.state.Strokes, stroke)
	r.notify.broadcast(domain.EventStrokeAdded, domain.StrokeAddedPayload{Stroke: stroke})

	return stroke, nil
}

// AddGuess scores a guess. A correct guess moves on to a word drawn from the whole
// tier without consulting usedWords, and that word is not recorded as used.
func (r *Room) AddGuess(playerID, text string) (bool, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.actorLocked(playerID, domain.RoleGuesser); err != nil {
		return false, 0, err
	}

	correct := matches(text, r.state.CurrentWord.Text)
	guess := domain.Guess{
		ID:        r.newID(),
		PlayerID:  playerID,
		Text:      text,
		Correct:   correct,
		Timestamp: r.now().UnixMilli(),
	}
	r.state.Guesses = append(r.state.Guesses, guess)
	if correct {
		r.state.Score++
	}

	// score already includes this guess
	r.notify.broadcast(domain.EventGuessResult, domain.GuessResultPayload{
		Guess:   guess,
		Correct: correct,
		Score:   r.state.Score,
	})

	if correct {
		r.drawWordLocked(false)
		r.state.Strokes = nil
		r.notify.broadcast(domain.EventCanvasClear, domain.CanvasClearPayload{})
		r.revealLocked()
	}

	return correct, r.state.Score, nil
}

func (r *Room) ClearCanvas(playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.actorLocked(playerID, domain.RoleDrawer); err != nil {
		return err
	}
	r.state.Strokes = nil
	r.notify.broadcast(domain.EventCanvasClear, domain.CanvasClearPayload{})
	return nil
}

func (r *Room) SkipWord(playerID string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.actorLocked(playerID, domain.RoleDrawer); err != nil {
		return "", err
	}

	word := r.drawWordLocked(true)
	r.state.Strokes = nil
	r.notify.broadcast(domain.EventCanvasClear, domain.CanvasClearPayload{})
	r.revealLocked()

	return word.Text, nil
}

// NextRound finishes the game when the round bound is reached. Otherwise it waits
// for the inter-round pause without holding the room lock and then starts the next
// round, unless the room was reset, finished or disposed in the meantime.
func (r *Room) NextRound(ctx context.Context) (RoundOutcome, error) {
	r.mu.Lock()
	if r.state.Status != domain.StatusPlaying {
		r.mu.Unlock()
		return RoundOutcome{}, domain.ErrNotPlaying
	}
	if r.advancing {
		r.mu.Unlock()
		return RoundOutcome{}, domain.ErrRoundPending
	}
	if r.state.CurrentRound >= r.state.Settings.MaxRounds {
		score := r.finishLocked()
		r.mu.Unlock()
		return RoundOutcome{GameEnded: true, FinalScore: score}, nil
	}

	epoch := r.epoch
	interrupt := make(chan struct{})
	r.advancing = true
	r.interrupt = interrupt
	r.mu.Unlock()

	timer := time.NewTimer(r.pause)
	defer timer.Stop()

	var waitErr error
	select {
	case <-timer.C:
	case <-interrupt:
	case <-ctx.Done():
		waitErr = ctx.Err()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.interrupt == interrupt {
		r.advancing = false
		r.interrupt = nil
	}
	if waitErr != nil {
		return RoundOutcome{}, waitErr
	}
	if r.epoch != epoch || r.state.Status != domain.StatusPlaying {
		r.logger.Info("pending round start cancelled", zap.Int("round", r.state.CurrentRound))
		return RoundOutcome{}, domain.ErrRoundCancelled
	}

	for i := range r.state.Players {
		p := &r.state.Players[i]
		p.Role = p.Role.Opposite()
		p.Ready = false
	}
	r.state.CurrentRound++
	r.state.Strokes = nil
	r.state.Guesses = nil
	r.state.RoundStartTime = r.now()
	r.drawWordLocked(true)

	players := r.state.PlayersSnapshot()
	r.notify.broadcast(domain.EventRoundStarted, domain.RoundStartedPayload{
		Round:   r.state.CurrentRound,
		Players: players,
	})
	r.revealLocked()

	return RoundOutcome{Round: r.state.CurrentRound, Players: players}, nil
}

func (r *Room) EndGame() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state.Status == domain.StatusFinished {
		return 0, fmt.Errorf("%w: game already finished", domain.ErrInvalidState)
	}
	return r.finishLocked(), nil
}

// Leave disconnects the player. Leaving mid-game resets the room to the lobby.
func (r *Room) Leave(playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.state.Player(playerID)
	if !ok {
		return domain.ErrPlayerNotFound
	}
	r.disconnectLocked(p)
	r.notify.release(playerID)
	return nil
}

func (r *Room) MarkConnected(playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.state.Player(playerID)
	if !ok {
		return domain.ErrPlayerNotFound
	}
	p.Connected = true
	return nil
}

// MarkDisconnected applies the leave policy if the player is still connected and
// reports whether anything changed.
func (r *Room) MarkDisconnected(playerID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.state.Player(playerID)
	if !ok {
		return false, domain.ErrPlayerNotFound
	}
	if !p.Connected {
		return false, nil
	}
	r.disconnectLocked(p)
	return true, nil
}

func (r *Room) dispose() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.disposed {
		return
	}
	r.disposed = true
	r.bumpEpochLocked()
	r.recordLocked(domain.LifecycleRoomDisposed, "")
}

func (r *Room) disconnectLocked(p *domain.Player) {
	p.Connected = false
	p.Ready = false

	if r.state.Status != domain.StatusPlaying {
		r.notify.broadcast(domain.EventPlayerDisconnected, domain.PlayerDisconnectedPayload{
			PlayerID: p.ID,
			Players:  r.state.PlayersSnapshot(),
		})
		return
	}

	r.recordLocked(domain.LifecycleGameAborted, domain.ReasonPlayerDisconnected)
	r.resetLocked()
	r.notify.broadcast(domain.EventGameEnded, domain.GameAbortedPayload{
		Reason:  domain.ReasonPlayerDisconnected,
		Message: domain.MessagePlayerDisconnected,
		Room:    r.state.Public(),
	})
	r.logger.Info("game aborted by disconnect", zap.String("player_id", p.ID))
}

func (r *Room) resetLocked() {
	r.state.Status = domain.StatusWaiting
	r.state.CurrentWord = nil
	r.state.Strokes = nil
	r.state.Guesses = nil
	r.state.CurrentRound = 1
	r.state.Score = 0
	r.state.UsedWords = nil
	r.state.RoundStartTime = time.Time{}
	r.state.GameStartTime = time.Time{}
	for i := range r.state.Players {
		r.state.Players[i].Ready = false
	}
	r.bumpEpochLocked()
}

func (r *Room) finishLocked() int {
	r.state.Status = domain.StatusFinished
	r.state.CurrentWord = nil
	r.bumpEpochLocked()

	r.notify.broadcast(domain.EventGameEnded, domain.GameEndedPayload{
		FinalScore:  r.state.Score,
		TotalRounds: r.state.CurrentRound,
	})
	r.recordLocked(domain.LifecycleGameEnded, "")
	r.logger.Info("game finished", zap.Int("score", r.state.Score), zap.Int("rounds", r.state.CurrentRound))

	return r.state.Score
}

// bumpEpochLocked invalidates and wakes any pending round start.
func (r *Room) bumpEpochLocked() {
	r.epoch++
	if r.interrupt != nil {
		close(r.interrupt)
		r.interrupt = nil
		r.advancing = false
	}
}

// actorLocked checks that playerID is seated, holds the wanted role and that a word is in play.
func (r *Room) actorLocked(playerID string, want domain.Role) (*domain.Player, error) {
	p, ok := r.state.Player(playerID)
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}

	var allowed bool
	switch p.Role {
	case domain.RoleDrawer:
		allowed = want == domain.RoleDrawer
	case domain.RoleGuesser:
		allowed = want == domain.RoleGuesser
	default:
		return nil, fmt.Errorf("%w: player %s holds %s", domain.ErrInternal, p.ID, p.Role)
	}
	if !allowed {
		return nil, fmt.Errorf("%w: only the %s can do that", domain.ErrForbidden, want)
	}

	if r.state.Status != domain.StatusPlaying {
		return nil, domain.ErrNotPlaying
	}
	if r.state.CurrentWord == nil {
		return nil, domain.ErrNoActiveWord
	}
	return p, nil
}

// drawWordLocked replaces the current word. With track set, the draw avoids used
// words and the new word is recorded as used.
func (r *Room) drawWordLocked(track bool) domain.Word {
	var exclude []string
	if track {
		exclude = r.state.UsedWords
	}
	word := r.words.Pick(r.state.Settings.Difficulty, exclude)
	r.state.CurrentWord = &word
	if track {
		r.state.UsedWords = append(r.state.UsedWords, strings.ToLower(word.Text))
	}
	return word
}

// revealLocked sends the Drawer the word and the Guesser only its length and hint.
func (r *Room) revealLocked() {
	word := r.state.CurrentWord
	if word == nil {
		return
	}
	for _, p := range r.state.Players {
		switch p.Role {
		case domain.RoleDrawer:
			r.notify.sendTo(p.ID, domain.EventWordRevealed, domain.WordRevealedPayload{
				PlayerID: p.ID,
				Word:     word.Text,
				Hint:     word.Hint,
			})
		case domain.RoleGuesser:
			r.notify.sendTo(p.ID, domain.EventWordHint, domain.WordHintPayload{
				PlayerID:   p.ID,
				WordLength: utf8.RuneCountInString(word.Text),
				Hint:       word.Hint,
			})
		default:
			r.logger.Error("reveal skipped player with unknown role", zap.String("player_id", p.ID), zap.Stringer("role", p.Role))
		}
	}
}

func (r *Room) recordLocked(kind domain.LifecycleKind, reason string) {
	event := domain.LifecycleEvent{
		Kind:       kind,
		RoomID:     r.state.ID,
		Code:       r.state.Code,
		Difficulty: r.state.Settings.Difficulty,
		Score:      r.state.Score,
		Rounds:     r.state.CurrentRound,
		MaxRounds:  r.state.Settings.MaxRounds,
		WordsShown: len(r.state.UsedWords),
		Reason:     reason,
		StartedAt:  r.state.GameStartTime,
		OccurredAt: r.now(),
	}
	r.recorder.Record(context.Background(), event)
}

func matches(guess, word string) bool {
	return strings.ToLower(strings.TrimSpace(guess)) == strings.ToLower(strings.TrimSpace(word))
}
