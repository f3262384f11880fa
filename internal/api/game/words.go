package game

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"quickdraw-service/domain"
)

// WordPicker selects the next word for a room.
type WordPicker interface {
	Pick(difficulty domain.Difficulty, exclude []string) domain.Word
}

// WordBank is an immutable word catalog. Pick is safe for concurrent use.
type WordBank struct {
	words []domain.Word
	intn  func(n int) int
}

// NewWordBank copies the catalog and rejects it unless every tier has at least one word.
func NewWordBank(words []domain.Word) (*WordBank, error) {
	tiers := map[domain.Difficulty]int{}
	catalog := make([]domain.Word, 0, len(words))
	for _, w := range words {
		if strings.TrimSpace(w.Text) == "" {
			return nil, fmt.Errorf("%w: empty word in catalog", domain.ErrInvalidInput)
		}
		if w.Difficulty.Tier() == 0 {
			return nil, fmt.Errorf("%w: word %q has difficulty %q", domain.ErrInvalidInput, w.Text, w.Difficulty)
		}
		tiers[w.Difficulty]++
		catalog = append(catalog, w)
	}
	for _, d := range []domain.Difficulty{domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard} {
		if tiers[d] == 0 {
			return nil, fmt.Errorf("%w: no %s words in catalog", domain.ErrInvalidInput, d)
		}
	}
	return &WordBank{words: catalog, intn: rand.IntN}, nil
}

// DefaultWordBank is backed by DefaultWords.
func DefaultWordBank() *WordBank {
	bank, err := NewWordBank(DefaultWords)
	if err != nil {
		panic(err)
	}
	return bank
}

func (b *WordBank) Len() int {
	return len(b.words)
}

// Pick draws uniformly from the difficulty tier (any tier for Mixed), skipping words whose
// lower-cased text is in exclude. If nothing survives the exclusion the whole tier is used.
func (b *WordBank) Pick(difficulty domain.Difficulty, exclude []string) domain.Word {
	tier := b.tier(difficulty)

	if len(exclude) > 0 {
		used := make(map[string]struct{}, len(exclude))
		for _, text := range exclude {
			used[strings.ToLower(text)] = struct{}{}
		}
		fresh := make([]domain.Word, 0, len(tier))
		for _, w := range tier {
			if _, ok := used[strings.ToLower(w.Text)]; !ok {
				fresh = append(fresh, w)
			}
		}
		if len(fresh) > 0 {
			tier = fresh
		}
	}

	return tier[b.intn(len(tier))]
}

func (b *WordBank) tier(difficulty domain.Difficulty) []domain.Word {
	if difficulty == domain.DifficultyMixed || !difficulty.Valid() {
		return b.words
	}
	tier := make([]domain.Word, 0, len(b.words)/3+1)
	for _, w := range b.words {
		if w.Difficulty == difficulty {
			tier = append(tier, w)
		}
	}
	return tier
}

var DefaultWords = []domain.Word{
	{Text: "cat", Hint: "Small furry pet", Difficulty: domain.DifficultyEasy},
	{Text: "house", Hint: "Place where people live", Difficulty: domain.DifficultyEasy},
	{Text: "sun", Hint: "Bright star in the sky", Difficulty: domain.DifficultyEasy},
	{Text: "car", Hint: "Vehicle with four wheels", Difficulty: domain.DifficultyEasy},
	{Text: "tree", Hint: "Tall plant with leaves", Difficulty: domain.DifficultyEasy},
	{Text: "book", Hint: "You read this", Difficulty: domain.DifficultyEasy},
	{Text: "fish", Hint: "Lives in water", Difficulty: domain.DifficultyEasy},
	{Text: "bird", Hint: "Flies in the sky", Difficulty: domain.DifficultyEasy},
	{Text: "dog", Hint: "Loyal pet that barks", Difficulty: domain.DifficultyEasy},
	{Text: "flower", Hint: "Colorful plant bloom", Difficulty: domain.DifficultyEasy},

	{Text: "running", Hint: "Fast movement on foot", Difficulty: domain.DifficultyMedium},
	{Text: "cooking", Hint: "Making food", Difficulty: domain.DifficultyMedium},
	{Text: "swimming", Hint: "Moving through water", Difficulty: domain.DifficultyMedium},
	{Text: "doctor", Hint: "Medical professional", Difficulty: domain.DifficultyMedium},
	{Text: "rainbow", Hint: "Colorful arc in sky", Difficulty: domain.DifficultyMedium},
	{Text: "volcano", Hint: "Mountain that erupts", Difficulty: domain.DifficultyMedium},
	{Text: "bicycle", Hint: "Two-wheeled vehicle", Difficulty: domain.DifficultyMedium},
	{Text: "elephant", Hint: "Large gray animal", Difficulty: domain.DifficultyMedium},
	{Text: "hospital", Hint: "Where sick people go", Difficulty: domain.DifficultyMedium},
	{Text: "computer", Hint: "Electronic device", Difficulty: domain.DifficultyMedium},

	{Text: "invisible", Hint: "Cannot be seen", Difficulty: domain.DifficultyHard},
	{Text: "friendship", Hint: "Close relationship", Difficulty: domain.DifficultyHard},
	{Text: "gravity", Hint: "Force pulling down", Difficulty: domain.DifficultyHard},
	{Text: "microscope", Hint: "Makes tiny things big", Difficulty: domain.DifficultyHard},
	{Text: "ecosystem", Hint: "Environmental community", Difficulty: domain.DifficultyHard},
	{Text: "philosophy", Hint: "Study of wisdom", Difficulty: domain.DifficultyHard},
	{Text: "psychology", Hint: "Study of the mind", Difficulty: domain.DifficultyHard},
	{Text: "evolution", Hint: "Change over time", Difficulty: domain.DifficultyHard},
	{Text: "melancholy", Hint: "Thoughtful sadness", Difficulty: domain.DifficultyHard},
	{Text: "serendipity", Hint: "Happy accident", Difficulty: domain.DifficultyHard},
}
