package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/thousand/internal/common/clock"
	"github.com/KirkDiggler/thousand/internal/common/uuid"
	"github.com/KirkDiggler/thousand/internal/dice"
	"github.com/KirkDiggler/thousand/internal/models"
	gameRepo "github.com/KirkDiggler/thousand/internal/repositories/game"
)

// service implements the Service interface
type service struct {
	gameRepo      gameRepo.Repository
	diceRoller    dice.Roller
	clock         clock.Clock
	uuidGenerator uuid.UUID
	logger        *slog.Logger
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &service{
		gameRepo:      cfg.GameRepo,
		diceRoller:    cfg.DiceRoller,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        logger,
	}, nil
}

// CreateGame seats the players and hands the first turn to the first of them
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if len(input.PlayerNames) < models.MinPlayers || len(input.PlayerNames) > models.MaxPlayers {
		return nil, ErrInvalidPlayerCount
	}

	players := make([]*models.Player, len(input.PlayerNames))
	for i, name := range input.PlayerNames {
		name = strings.TrimSpace(name)
		if name == "" {
			name = fmt.Sprintf("Player %d", i+1)
		}
		players[i] = &models.Player{Name: name}
	}

	now := s.clock.Now()
	game := &models.Game{
		ID:                s.uuidGenerator.NewUUID(),
		Players:           players,
		ActivePlayerIndex: 0,
		Phase:             models.PhaseAwaitingRoll,
		WinnerIndex:       models.NoWinner,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.saveGame(ctx, game); err != nil {
		return nil, err
	}

	s.logger.Info("game created", "game_id", game.ID, "players", len(players))

	return &CreateGameOutput{
		Game: game,
	}, nil
}

// GetGame returns the current state of a game
func (s *service) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	game, err := s.loadGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	return &GetGameOutput{
		Game: game,
	}, nil
}

// StartRoll marks the active player's roll as in progress
func (s *service) StartRoll(ctx context.Context, input *StartRollInput) (*StartRollOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	game, err := s.loadGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if err := beginRoll(game); err != nil {
		return nil, err
	}

	if err := s.saveGame(ctx, game); err != nil {
		return nil, err
	}

	s.logger.Debug("roll started", "game_id", game.ID, "player", game.ActivePlayer().Name)

	return &StartRollOutput{
		Game: game,
	}, nil
}

// CompleteRoll throws the dice, scores them and busts or extends the turn
func (s *service) CompleteRoll(ctx context.Context, input *CompleteRollInput) (*CompleteRollOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	game, err := s.loadGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	// Check the phase before consuming any randomness
	if err := requirePhase(game, models.PhaseRollInProgress); err != nil {
		return nil, err
	}

	player := game.ActivePlayer()
	roll := dice.Throw(s.diceRoller, models.DiceCount)

	result, err := applyRoll(game, roll)
	if err != nil {
		return nil, err
	}

	if err := s.saveGame(ctx, game); err != nil {
		return nil, err
	}

	if result.busted {
		s.logger.Info("player busted", "game_id", game.ID, "player", player.Name, "roll", roll.String(), "forfeited", result.forfeited)
	} else {
		s.logger.Debug("roll scored", "game_id", game.ID, "player", player.Name, "roll", roll.String(), "score", result.score)
	}

	if result.opened {
		s.logger.Info("player opened", "game_id", game.ID, "player", player.Name, "turn_score", result.turnScore)
	}

	return &CompleteRollOutput{
		Game:       game,
		PlayerName: player.Name,
		Roll:       roll,
		Score:      result.score,
		Breakdown:  result.breakdown,
		Busted:     result.busted,
		Forfeited:  result.forfeited,
		Opened:     result.opened,
		TurnScore:  result.turnScore,
	}, nil
}

// Decide applies the active player's choice to roll again or bank
func (s *service) Decide(ctx context.Context, input *DecideInput) (*DecideOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	game, err := s.loadGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	player := game.ActivePlayer()

	result, err := applyDecision(game, input.RollAgain)
	if err != nil {
		return nil, err
	}

	if err := s.saveGame(ctx, game); err != nil {
		return nil, err
	}

	if !input.RollAgain {
		s.logger.Info("turn banked", "game_id", game.ID, "player", player.Name, "banked", result.banked, "total", result.totalScore)
	}

	if result.gameOver {
		s.logger.Info("game won", "game_id", game.ID, "winner", player.Name, "total", result.totalScore)
	}

	return &DecideOutput{
		Game:       game,
		PlayerName: player.Name,
		Banked:     result.banked,
		TotalScore: result.totalScore,
		GameOver:   result.gameOver,
	}, nil
}

// AbandonGame discards the game state
func (s *service) AbandonGame(ctx context.Context, input *AbandonGameInput) (*AbandonGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.GameID == "" {
		return nil, ErrGameNotFound
	}

	err := s.gameRepo.DeleteGame(ctx, &gameRepo.DeleteGameInput{
		GameID: input.GameID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete game: %w", err)
	}

	s.logger.Debug("game abandoned", "game_id", input.GameID)

	return &AbandonGameOutput{
		Success: true,
	}, nil
}

func (s *service) loadGame(ctx context.Context, gameID string) (*models.Game, error) {
	if gameID == "" {
		return nil, ErrGameNotFound
	}

	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{
		GameID: gameID,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	if len(game.Players) == 0 || game.ActivePlayerIndex < 0 || game.ActivePlayerIndex >= len(game.Players) {
		return nil, ErrInvalidGameState
	}

	return game, nil
}

func (s *service) saveGame(ctx context.Context, game *models.Game) error {
	game.UpdatedAt = s.clock.Now()

	err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Game: game,
	})
	if err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}
