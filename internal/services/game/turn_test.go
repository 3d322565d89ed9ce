package game

import (
	"testing"

	"github.com/KirkDiggler/thousand/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	bustRoll  = models.Roll{2, 3, 4, 6, 2}
	fiveRoll  = models.Roll{5, 2, 3, 4, 6}
	fortyRoll = models.Roll{1, 1, 1, 2, 3} // 30 from ones, 10 from the set
	sixtyRoll = models.Roll{6, 6, 6, 2, 3}
)

func newTestGame(names ...string) *models.Game {
	players := make([]*models.Player, len(names))
	for i, name := range names {
		players[i] = &models.Player{Name: name}
	}
	return &models.Game{
		ID:          "game",
		Players:     players,
		Phase:       models.PhaseAwaitingRoll,
		WinnerIndex: models.NoWinner,
	}
}

// rollOnce drives one full roll through the state machine
func rollOnce(t *testing.T, g *models.Game, roll models.Roll) *rollResult {
	t.Helper()
	require.NoError(t, beginRoll(g))
	result, err := applyRoll(g, roll)
	require.NoError(t, err)
	return result
}

func TestBustResetsAndPassesTurn(t *testing.T) {
	g := newTestGame("Anna", "Boris", "Vera")

	rollOnce(t, g, sixtyRoll)
	_, err := applyDecision(g, true)
	require.NoError(t, err)
	require.Equal(t, 60, g.Players[0].CurrentScore)

	result := rollOnce(t, g, bustRoll)

	assert.True(t, result.busted)
	assert.Equal(t, 60, result.forfeited)
	assert.Equal(t, 0, g.Players[0].CurrentScore)
	assert.Equal(t, 0, g.Players[0].TotalScore)
	assert.Equal(t, 1, g.ActivePlayerIndex)
	assert.Equal(t, models.PhaseAwaitingRoll, g.Phase)
	assert.Equal(t, bustRoll, g.LastRoll)
}

func TestScoringRollWaitsForDecision(t *testing.T) {
	g := newTestGame("Anna", "Boris")

	result := rollOnce(t, g, fiveRoll)

	assert.False(t, result.busted)
	assert.Equal(t, 5, result.score)
	assert.Equal(t, 5, result.turnScore)
	assert.Equal(t, models.PhaseAwaitingContinueDecision, g.Phase)
	assert.Equal(t, 0, g.ActivePlayerIndex)

	// Rolling again without a decision is out of order
	assert.ErrorIs(t, beginRoll(g), ErrInvalidGameState)
}

func TestContinueKeepsTurnScore(t *testing.T) {
	g := newTestGame("Anna", "Boris")

	rollOnce(t, g, fiveRoll)
	result, err := applyDecision(g, true)
	require.NoError(t, err)

	assert.Equal(t, 0, result.banked)
	assert.Equal(t, models.PhaseAwaitingRoll, g.Phase)
	assert.Equal(t, 0, g.ActivePlayerIndex)
	assert.Equal(t, 5, g.Players[0].CurrentScore)

	rollOnce(t, g, fiveRoll)
	assert.Equal(t, 10, g.Players[0].CurrentScore)
}

func TestBankAddsTurnScore(t *testing.T) {
	g := newTestGame("Anna", "Boris")
	g.Players[0].TotalScore = 100

	rollOnce(t, g, sixtyRoll)
	_, err := applyDecision(g, true)
	require.NoError(t, err)
	rollOnce(t, g, fortyRoll)

	before := g.Players[0].CurrentScore
	require.Equal(t, 100, before)

	result, err := applyDecision(g, false)
	require.NoError(t, err)

	assert.Equal(t, before, result.banked)
	assert.Equal(t, 200, result.totalScore)
	assert.Equal(t, 200, g.Players[0].TotalScore)
	assert.Equal(t, 0, g.Players[0].CurrentScore)
	assert.Equal(t, 1, g.ActivePlayerIndex)
	assert.Equal(t, models.PhaseAwaitingRoll, g.Phase)
	assert.False(t, result.gameOver)
}

func TestOpeningSetOnceOnCrossingRoll(t *testing.T) {
	g := newTestGame("Anna", "Boris")

	// 40 + 40 crosses 75 on the second roll
	first := rollOnce(t, g, fortyRoll)
	assert.False(t, first.opened)
	assert.False(t, g.Players[0].HasOpened)
	_, err := applyDecision(g, true)
	require.NoError(t, err)

	second := rollOnce(t, g, fortyRoll)
	assert.True(t, second.opened)
	assert.True(t, g.Players[0].HasOpened)
	_, err = applyDecision(g, true)
	require.NoError(t, err)

	third := rollOnce(t, g, fortyRoll)
	assert.False(t, third.opened, "opening is reported only once")
	assert.True(t, g.Players[0].HasOpened)

	// Banking and busting later never re-reports the opening
	_, err = applyDecision(g, false)
	require.NoError(t, err)
	rollOnce(t, g, bustRoll)
	again := rollOnce(t, g, sixtyRoll)
	_, err = applyDecision(g, true)
	require.NoError(t, err)
	more := rollOnce(t, g, sixtyRoll)

	assert.False(t, again.opened)
	assert.False(t, more.opened)
}

func TestBankingIsNotGatedOnOpening(t *testing.T) {
	g := newTestGame("Anna", "Boris")

	rollOnce(t, g, fiveRoll)
	result, err := applyDecision(g, false)
	require.NoError(t, err)

	assert.Equal(t, 5, result.banked)
	assert.False(t, g.Players[0].HasOpened)
	assert.Equal(t, 5, g.Players[0].TotalScore)
}

func TestWinEndsGame(t *testing.T) {
	g := newTestGame("Anna", "Boris")
	g.Players[0].TotalScore = 950

	rollOnce(t, g, sixtyRoll)
	result, err := applyDecision(g, false)
	require.NoError(t, err)

	assert.True(t, result.gameOver)
	assert.Equal(t, 1010, g.Players[0].TotalScore)
	assert.Equal(t, 0, g.Players[0].CurrentScore)
	assert.Equal(t, models.PhaseGameOver, g.Phase)
	assert.Equal(t, 0, g.WinnerIndex)
	assert.Equal(t, "Anna", g.Winner().Name)
	assert.Equal(t, 0, g.ActivePlayerIndex, "turn does not pass after a win")

	// No further actions are accepted
	assert.ErrorIs(t, beginRoll(g), ErrGameOver)
	_, err = applyRoll(g, fiveRoll)
	assert.ErrorIs(t, err, ErrGameOver)
	_, err = applyDecision(g, true)
	assert.ErrorIs(t, err, ErrGameOver)
	assert.Equal(t, models.PhaseGameOver, g.Phase)
}

func TestExactWinningScoreWins(t *testing.T) {
	g := newTestGame("Anna", "Boris")
	g.Players[1].TotalScore = 995
	g.ActivePlayerIndex = 1

	rollOnce(t, g, fiveRoll)
	result, err := applyDecision(g, false)
	require.NoError(t, err)

	assert.True(t, result.gameOver)
	assert.Equal(t, 1, g.WinnerIndex)
}

func TestTurnIndexCycles(t *testing.T) {
	for n := models.MinPlayers; n <= models.MaxPlayers; n++ {
		names := make([]string, n)
		for i := range names {
			names[i] = "p"
		}
		g := newTestGame(names...)
		g.ActivePlayerIndex = n / 2
		start := g.ActivePlayerIndex

		for i := 0; i < n; i++ {
			// alternate busts and banks; both end the turn
			if i%2 == 0 {
				rollOnce(t, g, bustRoll)
			} else {
				rollOnce(t, g, fiveRoll)
				_, err := applyDecision(g, false)
				require.NoError(t, err)
			}
			assert.Equal(t, (start+i+1)%n, g.ActivePlayerIndex)
		}

		assert.Equal(t, start, g.ActivePlayerIndex, "%d players", n)
	}
}

func TestOutOfOrderActions(t *testing.T) {
	g := newTestGame("Anna", "Boris")

	_, err := applyRoll(g, fiveRoll)
	assert.ErrorIs(t, err, ErrInvalidGameState)

	_, err = applyDecision(g, false)
	assert.ErrorIs(t, err, ErrInvalidGameState)

	require.NoError(t, beginRoll(g))
	assert.ErrorIs(t, beginRoll(g), ErrInvalidGameState)
	_, err = applyDecision(g, true)
	assert.ErrorIs(t, err, ErrInvalidGameState)
}

func TestApplyRollRejectsMalformedRoll(t *testing.T) {
	g := newTestGame("Anna", "Boris")
	require.NoError(t, beginRoll(g))

	_, err := applyRoll(g, models.Roll{1, 2, 3})
	assert.ErrorIs(t, err, ErrInvalidRoll)

	_, err = applyRoll(g, models.Roll{0, 2, 3, 4, 5})
	assert.ErrorIs(t, err, ErrInvalidRoll)

	assert.Equal(t, models.PhaseRollInProgress, g.Phase)
}
