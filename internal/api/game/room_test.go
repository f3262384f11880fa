package game

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickdraw-service/domain"
)

func TestRoom_ToggleReadyReportsAllReady(t *testing.T) {
	tr := setupRoom(t, domain.Settings{})

	allReady, err := tr.room.ToggleReady(tr.drawer, true)
	require.NoError(t, err)
	assert.False(t, allReady)

	allReady, err = tr.room.ToggleReady(tr.guesser, true)
	require.NoError(t, err)
	assert.True(t, allReady)

	allReady, err = tr.room.ToggleReady(tr.guesser, false)
	require.NoError(t, err)
	assert.False(t, allReady)

	ready := tr.sink.Named(domain.EventPlayerReady)
	require.Len(t, ready, 3)
	last := ready[2].Payload.(domain.PlayerReadyPayload)
	assert.Equal(t, tr.guesser, last.PlayerID)
	assert.False(t, last.Ready)
}

func TestRoom_ToggleReadyErrors(t *testing.T) {
	tr := setupPlaying(t, domain.Settings{})

	_, err := tr.room.ToggleReady("nobody", true)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = tr.room.ToggleReady(tr.drawer, false)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestRoom_StartRequiresBothReady(t *testing.T) {
	tr := setupRoom(t, domain.Settings{})

	_, err := tr.room.Start(tr.drawer)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	_, err = tr.room.ToggleReady(tr.drawer, true)
	require.NoError(t, err)
	_, err = tr.room.Start(tr.drawer)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	_, err = tr.room.ToggleReady(tr.guesser, true)
	require.NoError(t, err)

	_, err = tr.room.Start("stranger")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	public, err := tr.room.Start(tr.guesser)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPlaying, public.Status)

	_, err = tr.room.Start(tr.drawer)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestRoom_StartWithSingleReadyPlayerFails(t *testing.T) {
	g := newTestRegistry(t, nil)
	room, seat, err := g.Create(domain.Settings{})
	require.NoError(t, err)

	allReady, err := room.ToggleReady(seat.PlayerID, true)
	require.NoError(t, err)
	assert.False(t, allReady)

	_, err = room.Start(seat.PlayerID)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestRoom_StartRevealsWordOnlyToDrawer(t *testing.T) {
	tr := setupRoom(t, domain.Settings{})
	_, err := tr.room.ToggleReady(tr.drawer, true)
	require.NoError(t, err)
	_, err = tr.room.ToggleReady(tr.guesser, true)
	require.NoError(t, err)
	tr.sink.Reset()

	_, err = tr.room.Start(tr.drawer)
	require.NoError(t, err)

	s := tr.state()
	require.NotNil(t, s.CurrentWord)
	word := s.CurrentWord.Text
	assert.Equal(t, []string{word}, s.UsedWords)
	assert.False(t, s.GameStartTime.IsZero())
	assert.False(t, s.RoundStartTime.IsZero())

	assert.Equal(t, []string{domain.EventGameStarted, domain.EventWordRevealed, domain.EventWordHint}, tr.sink.Names())

	revealed := tr.sink.Named(domain.EventWordRevealed)
	require.Len(t, revealed, 1)
	assert.Equal(t, tr.drawer, revealed[0].To)
	assert.Equal(t, domain.WordRevealedPayload{PlayerID: tr.drawer, Word: word, Hint: s.CurrentWord.Hint}, revealed[0].Payload)

	hint := tr.sink.Named(domain.EventWordHint)
	require.Len(t, hint, 1)
	assert.Equal(t, tr.guesser, hint[0].To)
	assert.Equal(t, domain.WordHintPayload{PlayerID: tr.guesser, WordLength: len(word), Hint: s.CurrentWord.Hint}, hint[0].Payload)

	for _, e := range tr.sink.ReceivedBy(tr.guesser) {
		assert.NotContains(t, strings.ToLower(toJSON(t, e.Payload)), `"`+word+`"`, "event %s leaks the word", e.Event)
	}
}

func TestRoom_AddGuessMatching(t *testing.T) {
	tests := []struct {
		guess   string
		correct bool
	}{
		{"CAT", true},
		{" Cat ", true},
		{"cat", true},
		{"dog", false},
		{"ca t", false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.guess), func(t *testing.T) {
			tr := setupPlaying(t, domain.Settings{})
			require.Equal(t, "cat", tr.currentWord(t))

			correct, score, err := tr.room.AddGuess(tr.guesser, tt.guess)
			require.NoError(t, err)
			assert.Equal(t, tt.correct, correct)
			if tt.correct {
				assert.Equal(t, 1, score)
			} else {
				assert.Zero(t, score)
			}

			s := tr.state()
			require.Len(t, s.Guesses, 1)
			assert.Equal(t, tt.guess, s.Guesses[0].Text)
			assert.Equal(t, tt.correct, s.Guesses[0].Correct)
		})
	}
}

func TestRoom_CorrectGuessClearsCanvasAndRevealsFreshWord(t *testing.T) {
	tr := setupPlaying(t, domain.Settings{})

	_, err := tr.room.AddStroke(tr.drawer, domain.Stroke{Points: []domain.Point{{X: 1, Y: 2}}, Color: "#000", Size: 4})
	require.NoError(t, err)
	tr.sink.Reset()

	correct, score, err := tr.room.AddGuess(tr.guesser, "cat")
	require.NoError(t, err)
	require.True(t, correct)
	assert.Equal(t, 1, score)

	assert.Equal(t, []string{
		domain.EventGuessResult,
		domain.EventCanvasClear,
		domain.EventWordRevealed,
		domain.EventWordHint,
	}, tr.sink.Names())

	result := tr.sink.Named(domain.EventGuessResult)[0].Payload.(domain.GuessResultPayload)
	assert.True(t, result.Correct)
	assert.Equal(t, 1, result.Score)

	s := tr.state()
	assert.Empty(t, s.Strokes)
	assert.Equal(t, 1, s.Score)
	// The correct-guess draw ignores and does not extend usedWords, so "cat" can come straight back.
	assert.Equal(t, "cat", s.CurrentWord.Text)
	assert.Equal(t, []string{"cat"}, s.UsedWords)
}

func TestRoom_IncorrectGuessOnlyReportsResult(t *testing.T) {
	tr := setupPlaying(t, domain.Settings{})

	correct, score, err := tr.room.AddGuess(tr.guesser, "dog")
	require.NoError(t, err)
	assert.False(t, correct)
	assert.Zero(t, score)
	assert.Equal(t, []string{domain.EventGuessResult}, tr.sink.Names())
}

func TestRoom_RoleChecks(t *testing.T) {
	tr := setupPlaying(t, domain.Settings{})

	_, err := tr.room.AddStroke(tr.guesser, domain.Stroke{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.ErrorIs(t, tr.room.ClearCanvas(tr.guesser), domain.ErrForbidden)
	_, err = tr.room.SkipWord(tr.guesser)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, _, err = tr.room.AddGuess(tr.drawer, "cat")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = tr.room.AddStroke("ghost", domain.Stroke{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, _, err = tr.room.AddGuess("ghost", "cat")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Empty(t, tr.sink.Events())
}

func TestRoom_DrawingRequiresActiveGame(t *testing.T) {
	tr := setupRoom(t, domain.Settings{})

	_, err := tr.room.AddStroke(tr.drawer, domain.Stroke{})
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	_, _, err = tr.room.AddGuess(tr.guesser, "cat")
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	_, err = tr.room.SkipWord(tr.drawer)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestRoom_AddStrokeFillsIdentity(t *testing.T) {
	tr := setupPlaying(t, domain.Settings{})

	stroke, err := tr.room.AddStroke(tr.drawer, domain.Stroke{Points: []domain.Point{{X: 0, Y: 0}, {X: 5, Y: 5}}, Color: "red", Size: 3})
	require.NoError(t, err)
	assert.NotEmpty(t, stroke.ID)
	assert.NotZero(t, stroke.Timestamp)

	kept, err := tr.room.AddStroke(tr.drawer, domain.Stroke{ID: "s-1", Timestamp: 42})
	require.NoError(t, err)
	assert.Equal(t, "s-1", kept.ID)
	assert.EqualValues(t, 42, kept.Timestamp)

	assert.Len(t, tr.state().Strokes, 2)
	added := tr.sink.Named(domain.EventStrokeAdded)
	require.Len(t, added, 2)
	assert.Equal(t, stroke, added[0].Payload.(domain.StrokeAddedPayload).Stroke)

	require.NoError(t, tr.room.ClearCanvas(tr.drawer))
	assert.Empty(t, tr.state().Strokes)
	assert.Len(t, tr.sink.Named(domain.EventCanvasClear), 1)
}

func TestRoom_SkipWordAvoidsUsedWordsUntilTierRunsOut(t *testing.T) {
	tr := setupPlaying(t, domain.Settings{Difficulty: domain.DifficultyEasy})
	tr.room.words = DefaultWordBank()

	seen := map[string]bool{tr.currentWord(t): true}
	for range 9 {
		word, err := tr.room.SkipWord(tr.drawer)
		require.NoError(t, err)
		require.False(t, seen[word], "skip reselected %q", word)
		seen[word] = true
	}
	assert.Len(t, tr.state().UsedWords, 10)

	word, err := tr.room.SkipWord(tr.drawer)
	require.NoError(t, err)
	assert.True(t, seen[word], "fallback must stay within the tier")
	assert.Len(t, tr.state().UsedWords, 11)

	assert.Len(t, tr.sink.Named(domain.EventCanvasClear), 10)
	assert.Len(t, tr.sink.Named(domain.EventWordRevealed), 10)
	assert.Len(t, tr.sink.Named(domain.EventWordHint), 10)
}

func TestRoom_NextRoundAtLimitFinishes(t *testing.T) {
	tr := setupPlaying(t, domain.Settings{MaxRounds: 1})
	_, _, err := tr.room.AddGuess(tr.guesser, "cat")
	require.NoError(t, err)
	tr.sink.Reset()

	outcome, err := tr.room.NextRound(context.Background())
	require.NoError(t, err)
	assert.Equal(t, RoundOutcome{GameEnded: true, FinalScore: 1}, outcome)

	s := tr.state()
	assert.Equal(t, domain.StatusFinished, s.Status)
	assert.Nil(t, s.CurrentWord)
	assert.Equal(t, []string{"cat"}, s.UsedWords)

	assert.Equal(t, []string{domain.EventGameEnded}, tr.sink.Names())
	assert.Equal(t, domain.GameEndedPayload{FinalScore: 1, TotalRounds: 1}, tr.sink.Events()[0].Payload)

	_, err = tr.room.NextRound(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestRoom_NextRoundScorelessGameKeepsFinalScore(t *testing.T) {
	tr := setupPlaying(t, domain.Settings{MaxRounds: 1})

	outcome, err := tr.room.NextRound(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{"gameEnded":true,"finalScore":0}`, toJSON(t, outcome))
}

func TestRoom_NextRoundSwapsRoles(t *testing.T) {
	tr := setupPlaying(t, domain.Settings{MaxRounds: 3})
	_, err := tr.room.AddStroke(tr.drawer, domain.Stroke{})
	require.NoError(t, err)
	_, _, err = tr.room.AddGuess(tr.guesser, "nope")
	require.NoError(t, err)
	tr.sink.Reset()

	outcome, err := tr.room.NextRound(context.Background())
	require.NoError(t, err)
	assert.False(t, outcome.GameEnded)
	assert.Equal(t, 2, outcome.Round)

	s := tr.state()
	assert.Equal(t, 2, s.CurrentRound)
	assert.Empty(t, s.Strokes)
	assert.Empty(t, s.Guesses)
	assert.Equal(t, []string{"cat", "house"}, s.UsedWords)
	assert.Equal(t, "house", s.CurrentWord.Text)
	for _, p := range s.Players {
		assert.False(t, p.Ready)
	}
	assert.Equal(t, domain.RoleGuesser, s.Players[0].Role)
	assert.Equal(t, domain.RoleDrawer, s.Players[1].Role)

	names := tr.sink.Names()
	require.Len(t, names, 3)
	assert.Equal(t, domain.EventRoundStarted, names[0])
	assert.ElementsMatch(t, []string{domain.EventWordRevealed, domain.EventWordHint}, names[1:])
	assert.Equal(t, tr.guesser, tr.sink.Named(domain.EventWordRevealed)[0].To)
	assert.Equal(t, tr.drawer, tr.sink.Named(domain.EventWordHint)[0].To)

	// the former guesser now draws
	_, err = tr.room.AddStroke(tr.guesser, domain.Stroke{})
	assert.NoError(t, err)
	_, err = tr.room.AddStroke(tr.drawer, domain.Stroke{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRoom_NextRoundRefusesSecondPendingAdvance(t *testing.T) {
	tr := setupPlaying(t, domain.Settings{MaxRounds: 2})
	tr.room.pause = 200 * time.Millisecond

	done := make(chan error, 1)
	go func() {
		_, err := tr.room.NextRound(context.Background())
		done <- err
	}()
	waitAdvancing(t, tr.room)

	_, err := tr.room.NextRound(context.Background())
	assert.ErrorIs(t, err, domain.ErrRoundPending)
	assert.ErrorIs(t, err, domain.ErrConflict)

	require.NoError(t, <-done)
	assert.Equal(t, 2, tr.state().CurrentRound)
}

func TestRoom_LeaveDuringPauseCancelsRoundStart(t *testing.T) {
	tr := setupPlaying(t, domain.Settings{MaxRounds: 3})
	tr.room.pause = time.Minute

	done := make(chan error, 1)
	go func() {
		_, err := tr.room.NextRound(context.Background())
		done <- err
	}()
	waitAdvancing(t, tr.room)

	// not queued behind the pause
	require.NoError(t, tr.room.Leave(tr.guesser))

	select {
	case err := <-done:
		assert.ErrorIs(t, err, domain.ErrRoundCancelled)
	case <-time.After(2 * time.Second):
		t.Fatal("pending round start was not interrupted")
	}

	s := tr.state()
	assert.Equal(t, domain.StatusWaiting, s.Status)
	assert.Equal(t, 1, s.CurrentRound)
	assert.Empty(t, tr.sink.Named(domain.EventRoundStarted))
}

func TestRoom_EndGameDuringPauseCancelsRoundStart(t *testing.T) {
	tr := setupPlaying(t, domain.Settings{MaxRounds: 3})
	tr.room.pause = time.Minute

	done := make(chan error, 1)
	go func() {
		_, err := tr.room.NextRound(context.Background())
		done <- err
	}()
	waitAdvancing(t, tr.room)

	_, err := tr.room.EndGame()
	require.NoError(t, err)
	assert.ErrorIs(t, <-done, domain.ErrRoundCancelled)
	assert.Equal(t, domain.StatusFinished, tr.state().Status)
}

func TestRoom_NextRoundHonoursContext(t *testing.T) {
	tr := setupPlaying(t, domain.Settings{MaxRounds: 3})
	tr.room.pause = time.Minute

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := tr.room.NextRound(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	tr.room.pause = 0
	outcome, err := tr.room.NextRound(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, outcome.Round)
}

func TestRoom_LeaveWhilePlayingResetsRoom(t *testing.T) {
	recorder := newRecordingRecorder()
	tr := setupPlaying(t, domain.Settings{MaxRounds: 3})
	tr.room.recorder = recorder

	_, _, err := tr.room.AddGuess(tr.guesser, "cat")
	require.NoError(t, err)
	_, err = tr.room.SkipWord(tr.drawer)
	require.NoError(t, err)
	_, err = tr.room.NextRound(context.Background())
	require.NoError(t, err)
	tr.sink.Reset()

	require.NoError(t, tr.room.Leave(tr.drawer))

	s := tr.state()
	assert.Equal(t, domain.StatusWaiting, s.Status)
	assert.Zero(t, s.Score)
	assert.Equal(t, 1, s.CurrentRound)
	assert.Empty(t, s.UsedWords)
	assert.Nil(t, s.CurrentWord)
	assert.Empty(t, s.Strokes)
	assert.Empty(t, s.Guesses)
	assert.True(t, s.GameStartTime.IsZero())
	assert.True(t, s.RoundStartTime.IsZero())
	for _, p := range s.Players {
		assert.False(t, p.Ready)
	}

	require.Equal(t, []string{domain.EventGameEnded}, tr.sink.Names())
	payload := tr.sink.Events()[0].Payload.(domain.GameAbortedPayload)
	assert.Equal(t, domain.ReasonPlayerDisconnected, payload.Reason)
	assert.Equal(t, "Game ended because a player disconnected", payload.Message)
	assert.Equal(t, domain.StatusWaiting, payload.Room.Status)
	assert.Zero(t, payload.Room.Score)

	aborted := recorder.next(t, domain.LifecycleGameAborted)
	assert.Equal(t, 1, aborted.Score)
	assert.Equal(t, 2, aborted.Rounds)
}

func TestRoom_LeaveWhileWaitingOnlyNotifies(t *testing.T) {
	tr := setupRoom(t, domain.Settings{})
	_, err := tr.room.ToggleReady(tr.drawer, true)
	require.NoError(t, err)
	tr.sink.Reset()

	require.NoError(t, tr.room.Leave(tr.guesser))

	require.Equal(t, []string{domain.EventPlayerDisconnected}, tr.sink.Names())
	payload := tr.sink.Events()[0].Payload.(domain.PlayerDisconnectedPayload)
	assert.Equal(t, tr.guesser, payload.PlayerID)
	assert.False(t, payload.Players[1].Connected)
	assert.True(t, tr.state().Players[0].Ready)

	assert.ErrorIs(t, tr.room.Leave("ghost"), domain.ErrNotFound)
}

func TestRoom_LeaveReleasesTheSeatsConnections(t *testing.T) {
	tr := setupPlaying(t, domain.Settings{})

	require.NoError(t, tr.room.Leave(tr.guesser))
	assert.Equal(t, []string{tr.guesser}, tr.sink.Released())

	changed, err := tr.room.MarkDisconnected(tr.drawer)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []string{tr.guesser}, tr.sink.Released())
}

func TestRoom_MarkDisconnectedOnlyFiresOnce(t *testing.T) {
	tr := setupPlaying(t, domain.Settings{})

	changed, err := tr.room.MarkDisconnected(tr.guesser)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = tr.room.MarkDisconnected(tr.guesser)
	require.NoError(t, err)
	assert.False(t, changed)

	assert.Equal(t, []string{domain.EventGameEnded}, tr.sink.Names())
	assert.Equal(t, domain.StatusWaiting, tr.state().Status)

	require.NoError(t, tr.room.MarkConnected(tr.guesser))
	assert.True(t, tr.state().Players[1].Connected)
	assert.ErrorIs(t, tr.room.MarkConnected("ghost"), domain.ErrNotFound)
}

func TestRoom_EndGame(t *testing.T) {
	tr := setupPlaying(t, domain.Settings{MaxRounds: 5})

	score, err := tr.room.EndGame()
	require.NoError(t, err)
	assert.Zero(t, score)
	assert.Equal(t, domain.StatusFinished, tr.state().Status)
	assert.Equal(t, domain.GameEndedPayload{FinalScore: 0, TotalRounds: 1}, tr.sink.Named(domain.EventGameEnded)[0].Payload)

	_, err = tr.room.EndGame()
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	// a finished room is not reset by a later disconnect
	require.NoError(t, tr.room.Leave(tr.guesser))
	assert.Equal(t, domain.StatusFinished, tr.state().Status)
}

func TestRoom_ViewHidesWordFromGuesser(t *testing.T) {
	tr := setupPlaying(t, domain.Settings{})
	_, err := tr.room.AddStroke(tr.drawer, domain.Stroke{})
	require.NoError(t, err)

	drawerView := tr.room.View(tr.drawer)
	assert.Equal(t, "cat", drawerView.Word)
	assert.Equal(t, 3, drawerView.WordLength)
	assert.Len(t, drawerView.Strokes, 1)
	assert.Equal(t, 1, drawerView.UsedWordCount)
	require.NotNil(t, drawerView.RoundStartTime)
	require.NotNil(t, drawerView.GameStartTime)

	guesserView := tr.room.View(tr.guesser)
	assert.Empty(t, guesserView.Word)
	assert.Equal(t, 3, guesserView.WordLength)
	assert.Equal(t, "Small furry pet", guesserView.Hint)
	assert.NotContains(t, toJSON(t, guesserView), `"cat"`)

	anonymous := tr.room.View("")
	assert.Empty(t, anonymous.Word)
}

func TestRoom_BroadcastOrderMatchesCommitOrder(t *testing.T) {
	tr := setupPlaying(t, domain.Settings{})

	const n = 100
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := tr.room.AddStroke(tr.drawer, domain.Stroke{ID: fmt.Sprintf("s-%d", i)})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	strokes := tr.state().Strokes
	added := tr.sink.Named(domain.EventStrokeAdded)
	require.Len(t, strokes, n)
	require.Len(t, added, n)
	for i := range strokes {
		assert.Equal(t, strokes[i].ID, added[i].Payload.(domain.StrokeAddedPayload).Stroke.ID)
	}
}

func TestRoom_DistinctRoomsDoNotContend(t *testing.T) {
	a := setupPlaying(t, domain.Settings{MaxRounds: 2})
	b := setupPlaying(t, domain.Settings{MaxRounds: 2})
	a.room.pause = time.Minute

	go func() { _, _ = a.room.NextRound(context.Background()) }()
	waitAdvancing(t, a.room)

	// room a is paused, room b and room a's other commands keep flowing
	_, err := b.room.AddStroke(b.drawer, domain.Stroke{})
	require.NoError(t, err)
	_, err = a.room.AddStroke(a.drawer, domain.Stroke{})
	require.NoError(t, err)

	_, err = a.room.EndGame()
	require.NoError(t, err)
}

func TestRoom_EndToEndScenario(t *testing.T) {
	g := newTestRegistry(t, nil)
	g.words = DefaultWordBank()

	room, created, err := g.Create(domain.Settings{RoundDurationSeconds: 90, MaxRounds: 1, Difficulty: domain.DifficultyMixed})
	require.NoError(t, err)
	sink := &recordingSink{}
	g.RegisterSink(room.ID(), sink)

	_, joined, err := g.Join(created.Room.Code)
	require.NoError(t, err)

	_, err = room.ToggleReady(created.PlayerID, true)
	require.NoError(t, err)
	allReady, err := room.ToggleReady(joined.PlayerID, true)
	require.NoError(t, err)
	require.True(t, allReady)

	_, err = room.Start(created.PlayerID)
	require.NoError(t, err)

	first, err := room.SkipWord(created.PlayerID)
	require.NoError(t, err)
	second, err := room.SkipWord(created.PlayerID)
	require.NoError(t, err)

	room.mu.Lock()
	used := append([]string(nil), room.state.UsedWords...)
	word := room.state.CurrentWord.Text
	room.mu.Unlock()
	require.Len(t, used, 3)
	assert.NotEqual(t, used[0], used[1])
	assert.NotEqual(t, used[1], used[2])
	assert.NotEqual(t, used[0], used[2])
	assert.Equal(t, first, used[1])
	assert.Equal(t, second, used[2])

	correct, score, err := room.AddGuess(joined.PlayerID, strings.ToUpper(word))
	require.NoError(t, err)
	assert.True(t, correct)
	assert.Equal(t, 1, score)

	room.mu.Lock()
	require.NotNil(t, room.state.CurrentWord)
	room.mu.Unlock()

	finalScore, err := room.EndGame()
	require.NoError(t, err)
	assert.Equal(t, 1, finalScore)
	assert.Equal(t, domain.StatusFinished, room.Snapshot().Status)

	// the guesser never saw any of the words in plain text
	for _, e := range sink.ReceivedBy(joined.PlayerID) {
		if e.Event == domain.EventWordRevealed {
			t.Fatalf("guesser received %s", e.Event)
		}
	}
}

func waitAdvancing(t *testing.T, r *Room) {
	t.Helper()
	require.Eventually(t, func() bool {
		r.mu.Lock()
		defer r.mu.Unlock()
		return r.advancing
	}, time.Second, time.Millisecond)
}
