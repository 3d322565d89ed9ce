package models

// Fixed rules of the game
const (
	// DiceCount is the number of dice thrown per roll
	DiceCount = 5

	// FaceCount is the number of sides on each die
	FaceCount = 6

	// OpeningThreshold is the turn score a player must reach to open the game
	OpeningThreshold = 75

	// WinningScore is the banked total that ends the game
	WinningScore = 1000

	// MinPlayers is the fewest players a game can be created with
	MinPlayers = 2

	// MaxPlayers is the most players a game can be created with
	MaxPlayers = 8
)
