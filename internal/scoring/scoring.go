// Package scoring turns a roll of the dice into points.
package scoring

import (
	"github.com/KirkDiggler/thousand/internal/models"
)

const (
	// pointsPerOne is awarded for every 1 in the roll
	pointsPerOne = 10

	// pointsPerFive is awarded for every 5 in the roll
	pointsPerFive = 5

	// setSize is how many matching faces make a set
	setSize = 3
)

// Breakdown itemizes where the points of a roll came from
type Breakdown struct {
	// Ones are the points from individual 1s
	Ones int

	// Fives are the points from individual 5s
	Fives int

	// Sets are the points from sets of three or more, indexed by face
	Sets [7]int
}

// Total sums every component of the breakdown
func (b Breakdown) Total() int {
	total := b.Ones + b.Fives
	for _, points := range b.Sets {
		total += points
	}
	return total
}

// Explain computes the itemized score of a roll.
//
// Every 1 and every 5 is counted on its own even when it is also part of a
// set, and a set of v is worth v*10 per three dice, ones included.
func Explain(roll models.Roll) Breakdown {
	counts := roll.Counts()

	var b Breakdown
	b.Ones = counts[1] * pointsPerOne
	b.Fives = counts[5] * pointsPerFive

	for face := 1; face <= models.FaceCount; face++ {
		if counts[face] >= setSize {
			b.Sets[face] = face * 10 * (counts[face] / setSize)
		}
	}

	return b
}

// Score returns the points a roll is worth. A roll with no scoring dice is worth 0.
func Score(roll models.Roll) int {
	return Explain(roll).Total()
}
