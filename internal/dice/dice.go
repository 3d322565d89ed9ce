package dice

import (
	"math/rand"
	"time"

	"github.com/KirkDiggler/thousand/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/thousand/internal/dice Roller

// Roller produces uniformly random die faces
type Roller interface {
	// Face returns a value in 1..models.FaceCount
	Face() int
}

// Config for dice roller
type Config struct {
	// Optional seed for reproducible games
	Seed int64
}

// roller implements Roller on top of math/rand
type roller struct {
	random *rand.Rand
}

// New creates a new dice roller
func New(cfg *Config) Roller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &roller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Face rolls a single six-sided die
func (r *roller) Face() int {
	return r.random.Intn(models.FaceCount) + 1
}

// Fill overwrites every die in dice with a fresh face
func Fill(r Roller, dice []int) {
	for i := range dice {
		dice[i] = r.Face()
	}
}

// Throw rolls n dice
func Throw(r Roller, n int) models.Roll {
	roll := make(models.Roll, n)
	Fill(r, roll)
	return roll
}
