package bootstrap

import (
	"go.uber.org/zap"

	"quickdraw-service/config"
	"quickdraw-service/domain"
	"quickdraw-service/internal/api/game"
)

// RegistryConfig maps the game section onto registry settings. Unusable values
// keep the built-in defaults.
func RegistryConfig(cfg config.GameConfig) game.RegistryConfig {
	rc := game.DefaultRegistryConfig()

	if cfg.RoundDurationSeconds > 0 {
		rc.Defaults.RoundDurationSeconds = cfg.RoundDurationSeconds
	}
	if cfg.MaxRounds > 0 {
		rc.Defaults.MaxRounds = cfg.MaxRounds
	}
	if d := domain.Difficulty(cfg.Difficulty); d.Valid() {
		rc.Defaults.Difficulty = d
	} else if cfg.Difficulty != "" {
		zap.L().Warn("Unknown default difficulty, using mixed", zap.String("difficulty", cfg.Difficulty))
	}
	if cfg.CodeAttempts > 0 {
		rc.CodeAttempts = cfg.CodeAttempts
	}
	if cfg.InterRoundPause > 0 {
		rc.InterRoundPause = cfg.InterRoundPause
	}
	return rc
}
