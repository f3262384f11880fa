package domain

import (
	"fmt"
	"time"
)

type RoomStatus string

const (
	StatusWaiting  RoomStatus = "waiting"
	StatusPlaying  RoomStatus = "playing"
	StatusFinished RoomStatus = "finished"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyMixed  Difficulty = "mixed"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyMixed:
		return true
	}
	return false
}

// Tier maps a word difficulty to the numeric tier stored in the catalog table.
func (d Difficulty) Tier() int {
	switch d {
	case DifficultyEasy:
		return 1
	case DifficultyMedium:
		return 2
	case DifficultyHard:
		return 3
	}
	return 0
}

func DifficultyFromTier(tier int) (Difficulty, error) {
	switch tier {
	case 1:
		return DifficultyEasy, nil
	case 2:
		return DifficultyMedium, nil
	case 3:
		return DifficultyHard, nil
	}
	return "", fmt.Errorf("%w: unknown difficulty tier %d", ErrInvalidInput, tier)
}

// Role is closed: every switch over it names both variants.
type Role uint8

const (
	RoleDrawer Role = iota + 1
	RoleGuesser
)

func (r Role) String() string {
	switch r {
	case RoleDrawer:
		return "drawer"
	case RoleGuesser:
		return "guesser"
	}
	return fmt.Sprintf("role(%d)", uint8(r))
}

// Opposite panics on an unknown role; an unknown role in room state is a programming error.
func (r Role) Opposite() Role {
	switch r {
	case RoleDrawer:
		return RoleGuesser
	case RoleGuesser:
		return RoleDrawer
	}
	panic(fmt.Sprintf("domain: opposite of unknown %s", r))
}

func (r Role) MarshalText() ([]byte, error) {
	switch r {
	case RoleDrawer, RoleGuesser:
		return []byte(r.String()), nil
	}
	return nil, fmt.Errorf("%w: cannot encode %s", ErrInternal, r)
}

func (r *Role) UnmarshalText(text []byte) error {
	switch string(text) {
	case "drawer":
		*r = RoleDrawer
	case "guesser":
		*r = RoleGuesser
	default:
		return fmt.Errorf("%w: unknown role %q", ErrInvalidInput, text)
	}
	return nil
}

type Settings struct {
	RoundDurationSeconds int        `json:"roundDuration"`
	MaxRounds            int        `json:"maxRounds"`
	Difficulty           Difficulty `json:"difficulty"`
}

type Player struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      Role   `json:"role"`
	Connected bool   `json:"connected"`
	Ready     bool   `json:"ready"`
}

type Word struct {
	Text       string     `json:"text"`
	Hint       string     `json:"hint"`
	Difficulty Difficulty `json:"difficulty"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Stroke struct {
	ID        string  `json:"id"`
	Points    []Point `json:"points"`
	Color     string  `json:"color"`
	Size      float64 `json:"size"`
	Timestamp int64   `json:"timestamp"`
}

type Guess struct {
	ID        string `json:"id"`
	PlayerID  string `json:"playerId"`
	Text      string `json:"text"`
	Correct   bool   `json:"correct"`
	Timestamp int64  `json:"timestamp"`
}

// Room is the full state of one game session. Only its state machine mutates it.
type Room struct {
	ID             string
	Code           string
	CreatedAt      time.Time
	Status         RoomStatus
	Settings       Settings
	Players        []Player
	CurrentRound   int
	Score          int
	CurrentWord    *Word
	UsedWords      []string
	Strokes        []Stroke
	Guesses        []Guess
	RoundStartTime time.Time
	GameStartTime  time.Time
}

type PublicRoom struct {
	ID           string     `json:"id"`
	Code         string     `json:"code"`
	Status       RoomStatus `json:"status"`
	Players      []Player   `json:"players"`
	Settings     Settings   `json:"settings"`
	CurrentRound int        `json:"currentRound"`
	Score        int        `json:"score"`
}

// Seat is what a player receives on taking a place in a room.
type Seat struct {
	Room     PublicRoom `json:"room"`
	PlayerID string     `json:"playerId"`
	Role     Role       `json:"role"`
}

// RoomView is the recovery read served to a (re)connecting client.
type RoomView struct {
	PublicRoom
	Strokes        []Stroke   `json:"strokes"`
	Guesses        []Guess    `json:"guesses"`
	UsedWordCount  int        `json:"usedWordCount"`
	RoundStartTime *time.Time `json:"roundStartTime,omitempty"`
	GameStartTime  *time.Time `json:"gameStartTime,omitempty"`
	Word           string     `json:"word,omitempty"`
	WordLength     int        `json:"wordLength,omitempty"`
	Hint           string     `json:"hint,omitempty"`
}

func (r *Room) Public() PublicRoom {
	return PublicRoom{
		ID:           r.ID,
		Code:         r.Code,
		Status:       r.Status,
		Players:      r.PlayersSnapshot(),
		Settings:     r.Settings,
		CurrentRound: r.CurrentRound,
		Score:        r.Score,
	}
}

func (r *Room) PlayersSnapshot() []Player {
	players := make([]Player, len(r.Players))
	copy(players, r.Players)
	return players
}

func (r *Room) Player(playerID string) (*Player, bool) {
	for i := range r.Players {
		if r.Players[i].ID == playerID {
			return &r.Players[i], true
		}
	}
	return nil, false
}

func (r *Room) ConnectedCount() int {
	n := 0
	for _, p := range r.Players {
		if p.Connected {
			n++
		}
	}
	return n
}

// AllReady reports whether both seats are filled by connected, ready players.
func (r *Room) AllReady() bool {
	if len(r.Players) < 2 {
		return false
	}
	for _, p := range r.Players {
		if !p.Connected || !p.Ready {
			return false
		}
	}
	return true
}
