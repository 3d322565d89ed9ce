package models

import (
	"time"
)

// Phase represents where a game is in the turn cycle
type Phase string

const (
	// PhaseAwaitingRoll indicates the active player may request a roll
	PhaseAwaitingRoll Phase = "awaiting_roll"

	// PhaseRollInProgress indicates a roll is animating and has not been scored yet
	PhaseRollInProgress Phase = "roll_in_progress"

	// PhaseAwaitingContinueDecision indicates the active player must choose to roll again or bank
	PhaseAwaitingContinueDecision Phase = "awaiting_continue_decision"

	// PhaseGameOver indicates a player has reached the winning score
	PhaseGameOver Phase = "game_over"
)

// IsAwaitingRoll returns true if the active player may roll
func (p Phase) IsAwaitingRoll() bool {
	return p == PhaseAwaitingRoll
}

// IsRollInProgress returns true if a roll has been started but not completed
func (p Phase) IsRollInProgress() bool {
	return p == PhaseRollInProgress
}

// IsAwaitingDecision returns true if the active player must decide whether to continue
func (p Phase) IsAwaitingDecision() bool {
	return p == PhaseAwaitingContinueDecision
}

// IsGameOver returns true if the game has ended
func (p Phase) IsGameOver() bool {
	return p == PhaseGameOver
}

// NoWinner is the WinnerIndex of a game that has not ended
const NoWinner = -1

// Game represents the state of a single dice game
type Game struct {
	// ID is the unique identifier for the game
	ID string

	// Players are the participants in turn order, fixed after setup
	Players []*Player

	// ActivePlayerIndex is the index of the player whose turn it is
	ActivePlayerIndex int

	// Phase is the current point in the turn cycle
	Phase Phase

	// WinnerIndex is the index of the winning player, or NoWinner
	WinnerIndex int

	// LastRoll is the most recent completed roll, if any
	LastRoll Roll

	// CreatedAt is when the game was created
	CreatedAt time.Time

	// UpdatedAt is when the game was last updated
	UpdatedAt time.Time
}

// ActivePlayer returns the player whose turn it is
func (g *Game) ActivePlayer() *Player {
	if g == nil || len(g.Players) == 0 {
		return nil
	}
	return g.Players[g.ActivePlayerIndex]
}

// Winner returns the winning player, or nil if the game has not ended
func (g *Game) Winner() *Player {
	if g == nil || g.WinnerIndex < 0 || g.WinnerIndex >= len(g.Players) {
		return nil
	}
	return g.Players[g.WinnerIndex]
}
