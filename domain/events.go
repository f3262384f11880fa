package domain

import "time"

// Room broadcast events.
const (
	EventPlayerJoined       = "player:joined"
	EventPlayerReady        = "player:ready"
	EventGameStarted        = "game:started"
	EventWordRevealed       = "word:revealed"
	EventWordHint           = "word:hint"
	EventStrokeAdded        = "stroke:added"
	EventGuessResult        = "guess:result"
	EventCanvasClear        = "canvas:clear"
	EventRoundStarted       = "round:started"
	EventGameEnded          = "game:ended"
	EventPlayerDisconnected = "player:disconnected"
)

const (
	ReasonPlayerDisconnected  = "player_disconnected"
	MessagePlayerDisconnected = "Game ended because a player disconnected"
)

type PlayerJoinedPayload struct {
	Players    []Player `json:"players"`
	PlayerName string   `json:"playerName"`
}

type PlayerReadyPayload struct {
	PlayerID string   `json:"playerId"`
	Ready    bool     `json:"ready"`
	Players  []Player `json:"players"`
}

type GameStartedPayload struct {
	Room PublicRoom `json:"room"`
}

type WordRevealedPayload struct {
	PlayerID string `json:"playerId"`
	Word     string `json:"word"`
	Hint     string `json:"hint"`
}

// WordHintPayload must never carry the word text.
type WordHintPayload struct {
	PlayerID   string `json:"playerId"`
	WordLength int    `json:"wordLength"`
	Hint       string `json:"hint"`
}

type StrokeAddedPayload struct {
	Stroke Stroke `json:"stroke"`
}

type GuessResultPayload struct {
	Guess   Guess `json:"guess"`
	Correct bool  `json:"correct"`
	Score   int   `json:"score"`
}

type CanvasClearPayload struct{}

type RoundStartedPayload struct {
	Round   int      `json:"round"`
	Players []Player `json:"players"`
}

type GameEndedPayload struct {
	FinalScore  int `json:"finalScore"`
	TotalRounds int `json:"totalRounds"`
}

type GameAbortedPayload struct {
	Reason  string     `json:"reason"`
	Message string     `json:"message"`
	Room    PublicRoom `json:"room"`
}

type PlayerDisconnectedPayload struct {
	PlayerID string   `json:"playerId"`
	Players  []Player `json:"players"`
}

type LifecycleKind string

const (
	LifecycleRoomCreated  LifecycleKind = "room.created"
	LifecycleGameStarted  LifecycleKind = "game.started"
	LifecycleGameEnded    LifecycleKind = "game.ended"
	LifecycleGameAborted  LifecycleKind = "game.aborted"
	LifecycleRoomDisposed LifecycleKind = "room.disposed"
)

// LifecycleEvent is emitted off the room lock for external recorders (history, event stream).
type LifecycleEvent struct {
	Kind       LifecycleKind `json:"kind"`
	RoomID     string        `json:"roomId"`
	Code       string        `json:"code"`
	Difficulty Difficulty    `json:"difficulty"`
	Score      int           `json:"score"`
	Rounds     int           `json:"rounds"`
	MaxRounds  int           `json:"maxRounds"`
	WordsShown int           `json:"wordsShown"`
	Reason     string        `json:"reason,omitempty"`
	StartedAt  time.Time     `json:"startedAt,omitzero"`
	OccurredAt time.Time     `json:"occurredAt"`
}
