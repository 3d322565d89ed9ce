package game

import (
	"errors"

	"github.com/KirkDiggler/thousand/internal/models"
)

// ErrGameNotFound is returned when a game is not found
var ErrGameNotFound = errors.New("game not found")

type SaveGameInput struct {
	Game *models.Game
}

type GetGameInput struct {
	GameID string
}

type DeleteGameInput struct {
	GameID string
}
