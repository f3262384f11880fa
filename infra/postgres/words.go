package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"quickdraw-service/domain"
)

// SeedWords inserts the given catalog, leaving words that already exist untouched.
func (r *Repository) SeedWords(ctx context.Context, words []domain.Word) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO words (word, hint, difficulty)
		VALUES ($1, $2, $3)
		ON CONFLICT (word) DO NOTHING
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare word insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, w := range words {
		tier := w.Difficulty.Tier()
		if tier == 0 {
			return fmt.Errorf("%w: word %q has difficulty %q", domain.ErrInvalidInput, w.Text, w.Difficulty)
		}
		res, err := stmt.ExecContext(ctx, w.Text, w.Hint, tier)
		if err != nil {
			return fmt.Errorf("failed to insert word %q: %w", w.Text, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.logger.Info("word catalog seeded", zap.Int("inserted", inserted), zap.Int("total", len(words)))
	return nil
}

// ListWords loads the whole catalog. Rows with an unknown tier are skipped.
func (r *Repository) ListWords(ctx context.Context) ([]domain.Word, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT word, hint, difficulty FROM words ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query words: %w", err)
	}
	defer rows.Close()

	var words []domain.Word
	for rows.Next() {
		var (
			text, hint string
			tier       int
		)
		if err := rows.Scan(&text, &hint, &tier); err != nil {
			return nil, fmt.Errorf("failed to scan word: %w", err)
		}
		difficulty, err := domain.DifficultyFromTier(tier)
		if err != nil {
			r.logger.Warn("skipping word with unknown tier", zap.String("word", text), zap.Int("tier", tier))
			continue
		}
		words = append(words, domain.Word{Text: text, Hint: hint, Difficulty: difficulty})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate words: %w", err)
	}
	return words, nil
}
