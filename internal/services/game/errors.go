package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameNotFound       GameError = "game not found"
	ErrInvalidGameState   GameError = "invalid game state"
	ErrGameOver           GameError = "game is over"
	ErrInvalidPlayerCount GameError = "player count must be between 2 and 8"
	ErrInvalidRoll        GameError = "roll must have exactly five faces between 1 and 6"
	ErrNilConfig          GameError = "config cannot be nil"
	ErrNilGameRepo        GameError = "game repository cannot be nil"
	ErrNilDiceRoller      GameError = "dice roller cannot be nil"
	ErrNilClock           GameError = "clock cannot be nil"
	ErrNilUUIDGenerator   GameError = "UUID generator cannot be nil"
)
