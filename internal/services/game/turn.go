package game

import (
	"github.com/KirkDiggler/thousand/internal/models"
	"github.com/KirkDiggler/thousand/internal/scoring"
)

// rollResult describes what a completed roll did to the active player
type rollResult struct {
	score     int
	breakdown scoring.Breakdown
	busted    bool
	forfeited int
	opened    bool
	turnScore int
}

// decisionResult describes what a continue decision did to the active player
type decisionResult struct {
	banked     int
	totalScore int
	gameOver   bool
}

// requirePhase rejects any action on a finished game and any action taken out of turn order
func requirePhase(g *models.Game, want models.Phase) error {
	if g.Phase.IsGameOver() {
		return ErrGameOver
	}
	if g.Phase != want {
		return ErrInvalidGameState
	}
	return nil
}

// validRoll reports whether roll is a full set of legal faces
func validRoll(roll models.Roll) bool {
	if len(roll) != models.DiceCount {
		return false
	}
	for _, face := range roll {
		if face < 1 || face > models.FaceCount {
			return false
		}
	}
	return true
}

// passTurn hands the turn to the next player in seating order
func passTurn(g *models.Game) {
	g.ActivePlayerIndex = (g.ActivePlayerIndex + 1) % len(g.Players)
	g.Phase = models.PhaseAwaitingRoll
}

// beginRoll moves the game from AwaitingRoll to RollInProgress
func beginRoll(g *models.Game) error {
	if err := requirePhase(g, models.PhaseAwaitingRoll); err != nil {
		return err
	}
	g.Phase = models.PhaseRollInProgress
	return nil
}

// applyRoll scores a finished roll for the active player.
// A zero score busts the turn; anything else waits on a continue decision.
func applyRoll(g *models.Game, roll models.Roll) (*rollResult, error) {
	if err := requirePhase(g, models.PhaseRollInProgress); err != nil {
		return nil, err
	}
	if !validRoll(roll) {
		return nil, ErrInvalidRoll
	}

	player := g.ActivePlayer()
	breakdown := scoring.Explain(roll)
	result := &rollResult{
		score:     breakdown.Total(),
		breakdown: breakdown,
	}

	g.LastRoll = roll

	if result.score == 0 {
		result.busted = true
		result.forfeited = player.CurrentScore
		player.CurrentScore = 0
		passTurn(g)
		return result, nil
	}

	player.CurrentScore += result.score
	if !player.HasOpened && player.CurrentScore >= models.OpeningThreshold {
		player.HasOpened = true
		result.opened = true
	}
	result.turnScore = player.CurrentScore

	g.Phase = models.PhaseAwaitingContinueDecision
	return result, nil
}

// applyDecision either returns the active player to AwaitingRoll or banks their turn score.
// Banking to the winning score ends the game with the active player as winner.
func applyDecision(g *models.Game, rollAgain bool) (*decisionResult, error) {
	if err := requirePhase(g, models.PhaseAwaitingContinueDecision); err != nil {
		return nil, err
	}

	player := g.ActivePlayer()

	if rollAgain {
		g.Phase = models.PhaseAwaitingRoll
		return &decisionResult{totalScore: player.TotalScore}, nil
	}

	result := &decisionResult{banked: player.CurrentScore}
	player.TotalScore += player.CurrentScore
	player.CurrentScore = 0
	result.totalScore = player.TotalScore

	if player.TotalScore >= models.WinningScore {
		g.Phase = models.PhaseGameOver
		g.WinnerIndex = g.ActivePlayerIndex
		result.gameOver = true
		return result, nil
	}

	passTurn(g)
	return result, nil
}
