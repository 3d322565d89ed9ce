package models

// Player represents a participant in a game
type Player struct {
	// Name is the display name of the player
	Name string

	// TotalScore is the score banked across turns
	TotalScore int

	// CurrentScore is the score accumulated in the active turn
	CurrentScore int

	// HasOpened is set once CurrentScore first reaches the opening threshold
	HasOpened bool
}
