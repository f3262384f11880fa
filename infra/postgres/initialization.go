package postgres

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"
)

const (
	createWordsTable = `
		CREATE TABLE IF NOT EXISTS words (
			id SERIAL PRIMARY KEY,
			word VARCHAR(100) UNIQUE NOT NULL,
			hint VARCHAR(200) NOT NULL DEFAULT '',
			difficulty INT NOT NULL DEFAULT 1, -- 1: easy, 2: medium, 3: hard
			created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		);`

	createGameSessionsTable = `
		CREATE TABLE IF NOT EXISTS game_sessions (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			room_id UUID NOT NULL,
			room_code VARCHAR(10) NOT NULL,
			outcome VARCHAR(20) NOT NULL, -- 'ended', 'aborted'
			reason VARCHAR(50),
			difficulty VARCHAR(10) NOT NULL,
			score INT NOT NULL DEFAULT 0,
			rounds_played INT NOT NULL DEFAULT 0,
			max_rounds INT NOT NULL,
			words_shown INT NOT NULL DEFAULT 0,
			started_at TIMESTAMP WITH TIME ZONE,
			finished_at TIMESTAMP WITH TIME ZONE NOT NULL
		);`

	createIndexes = `
		CREATE INDEX IF NOT EXISTS idx_words_difficulty ON words(difficulty);
		CREATE INDEX IF NOT EXISTS idx_game_sessions_room_id ON game_sessions(room_id);
		CREATE INDEX IF NOT EXISTS idx_game_sessions_finished_at ON game_sessions(finished_at);`
)

// initDB creates the catalog and history tables if they do not exist yet.
func initDB(db *sql.DB, logger *zap.Logger) error {
	tables := []struct {
		name  string
		query string
	}{
		{"words", createWordsTable},
		{"game_sessions", createGameSessionsTable},
	}

	for _, table := range tables {
		if _, err := db.Exec(table.query); err != nil {
			return fmt.Errorf("failed to create '%s' table: %w", table.name, err)
		}
		logger.Debug("table ready", zap.String("table", table.name))
	}

	if _, err := db.Exec(createIndexes); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	logger.Info("database initialized")
	return nil
}
