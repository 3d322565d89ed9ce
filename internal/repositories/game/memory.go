package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/KirkDiggler/thousand/internal/models"
)

// memoryRepository implements the Repository interface with an in-process map.
// Games are stored as JSON so callers never share pointers with the store.
type memoryRepository struct {
	mu    sync.Mutex
	games map[string][]byte
}

// NewMemory creates a new in-memory game repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		games: make(map[string][]byte),
	}
}

// SaveGame stores a copy of the game
func (r *memoryRepository) SaveGame(ctx context.Context, input *SaveGameInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}

	if input.Game.ID == "" {
		return errors.New("game ID cannot be empty")
	}

	gameJSON, err := json.Marshal(input.Game)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.games[input.Game.ID] = gameJSON
	return nil
}

// GetGame returns a copy of the stored game
func (r *memoryRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	r.mu.Lock()
	gameJSON, ok := r.games[input.GameID]
	r.mu.Unlock()

	if !ok {
		return nil, ErrGameNotFound
	}

	var game models.Game
	if err := json.Unmarshal(gameJSON, &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &game, nil
}

// DeleteGame removes a game. Deleting a missing game is not an error.
func (r *memoryRepository) DeleteGame(ctx context.Context, input *DeleteGameInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.games, input.GameID)
	return nil
}
