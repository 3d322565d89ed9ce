package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/thousand/internal/repositories/game Repository

import (
	"context"

	"github.com/KirkDiggler/thousand/internal/models"
)

// Repository defines the interface for holding live game state
type Repository interface {
	// SaveGame stores the current state of a game
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error)

	// DeleteGame removes a game
	DeleteGame(ctx context.Context, input *DeleteGameInput) error
}
