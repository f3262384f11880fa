package postgres

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	"quickdraw-service/domain"
)

type sessionRow struct {
	roomID     string
	code       string
	outcome    string
	reason     sql.NullString
	difficulty string
	score      int
	rounds     int
	maxRounds  int
	wordsShown int
	startedAt  sql.NullTime
	finishedAt time.Time
}

// sessionFromEvent maps the two terminal lifecycle events to a history row.
func sessionFromEvent(event domain.LifecycleEvent) (sessionRow, bool) {
	var outcome string
	switch event.Kind {
	case domain.LifecycleGameEnded:
		outcome = "ended"
	case domain.LifecycleGameAborted:
		outcome = "aborted"
	default:
		return sessionRow{}, false
	}

	return sessionRow{
		roomID:     event.RoomID,
		code:       event.Code,
		outcome:    outcome,
		reason:     sql.NullString{String: event.Reason, Valid: event.Reason != ""},
		difficulty: string(event.Difficulty),
		score:      event.Score,
		rounds:     event.Rounds,
		maxRounds:  event.MaxRounds,
		wordsShown: event.WordsShown,
		startedAt:  sql.NullTime{Time: event.StartedAt, Valid: !event.StartedAt.IsZero()},
		finishedAt: event.OccurredAt,
	}, true
}

// Record stores finished and aborted games. Other lifecycle events are ignored.
// Failures are logged; history is never allowed to affect a running room.
func (r *Repository) Record(ctx context.Context, event domain.LifecycleEvent) {
	row, ok := sessionFromEvent(event)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := `
		INSERT INTO game_sessions
			(room_id, room_code, outcome, reason, difficulty, score, rounds_played, max_rounds, words_shown, started_at, finished_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.ExecContext(ctx, query,
		row.roomID, row.code, row.outcome, row.reason, row.difficulty,
		row.score, row.rounds, row.maxRounds, row.wordsShown, row.startedAt, row.finishedAt)
	if err != nil {
		r.logger.Error("failed to record game session",
			zap.String("room_id", row.roomID),
			zap.String("outcome", row.outcome),
			zap.Error(err))
		return
	}
	r.logger.Debug("game session recorded", zap.String("room_id", row.roomID), zap.String("outcome", row.outcome))
}
