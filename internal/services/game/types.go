package game

import (
	"log/slog"

	"github.com/KirkDiggler/thousand/internal/common/clock"
	"github.com/KirkDiggler/thousand/internal/common/uuid"
	"github.com/KirkDiggler/thousand/internal/dice"
	"github.com/KirkDiggler/thousand/internal/models"
	gameRepo "github.com/KirkDiggler/thousand/internal/repositories/game"
	"github.com/KirkDiggler/thousand/internal/scoring"
)

// Config holds configuration for the game service
type Config struct {
	// Repository dependencies
	GameRepo gameRepo.Repository

	// Service dependencies
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Logger is optional; nil discards
	Logger *slog.Logger
}

// CreateGameInput contains parameters for creating a new game
type CreateGameInput struct {
	// PlayerNames in turn order; blank names are replaced with "Player N"
	PlayerNames []string
}

// CreateGameOutput contains the result of creating a new game
type CreateGameOutput struct {
	Game *models.Game
}

// GetGameInput defines the input for retrieving a game by ID
type GetGameInput struct {
	GameID string
}

// GetGameOutput contains the result of retrieving a game by ID
type GetGameOutput struct {
	Game *models.Game
}

// StartRollInput contains parameters for starting a roll
type StartRollInput struct {
	GameID string
}

// StartRollOutput contains the result of starting a roll
type StartRollOutput struct {
	Game *models.Game
}

// CompleteRollInput contains parameters for completing a roll
type CompleteRollInput struct {
	GameID string
}

// CompleteRollOutput contains the result of completing a roll
type CompleteRollOutput struct {
	// Game is the state after the roll was applied
	Game *models.Game

	// PlayerName is the name of the player who rolled
	PlayerName string

	// Roll is the faces thrown
	Roll models.Roll

	// Score is what the roll was worth
	Score int

	// Breakdown itemizes Score
	Breakdown scoring.Breakdown

	// Busted is true when the roll scored nothing and the turn passed on
	Busted bool

	// Forfeited is the turn score lost to a bust
	Forfeited int

	// Opened is true when this roll first took the player to the opening threshold
	Opened bool

	// TurnScore is the player's accumulated turn score after the roll
	TurnScore int
}

// DecideInput contains the active player's continue decision
type DecideInput struct {
	GameID string

	// RollAgain keeps the turn going; false banks the turn score
	RollAgain bool
}

// DecideOutput contains the result of a continue decision
type DecideOutput struct {
	// Game is the state after the decision was applied
	Game *models.Game

	// PlayerName is the name of the player who decided
	PlayerName string

	// Banked is the turn score added to the player's total (zero when rolling again)
	Banked int

	// TotalScore is the player's banked total after the decision
	TotalScore int

	// GameOver is true when the bank reached the winning score
	GameOver bool
}

// AbandonGameInput contains parameters for forcefully abandoning a game
type AbandonGameInput struct {
	// GameID is the unique identifier for the game
	GameID string
}

// AbandonGameOutput contains the result of abandoning a game
type AbandonGameOutput struct {
	// Success indicates if the game was successfully abandoned
	Success bool
}
