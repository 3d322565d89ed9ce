package game

import "context"

// Service defines the interface for game operations
type Service interface {
	// CreateGame seats the players and hands the first turn to the first of them
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// GetGame returns the current state of a game
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)

	// StartRoll marks the active player's roll as in progress
	StartRoll(ctx context.Context, input *StartRollInput) (*StartRollOutput, error)

	// CompleteRoll throws the dice, scores them and busts or extends the turn
	CompleteRoll(ctx context.Context, input *CompleteRollInput) (*CompleteRollOutput, error)

	// Decide applies the active player's choice to roll again or bank
	Decide(ctx context.Context, input *DecideInput) (*DecideOutput, error)

	// AbandonGame discards the game state
	AbandonGame(ctx context.Context, input *AbandonGameInput) (*AbandonGameOutput, error)
}
