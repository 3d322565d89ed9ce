package models

import (
	"strconv"
	"strings"
)

// Roll is the ordered set of faces produced by a single throw of the dice
type Roll []int

// String renders the roll as space separated faces
func (r Roll) String() string {
	parts := make([]string, len(r))
	for i, face := range r {
		parts[i] = strconv.Itoa(face)
	}
	return strings.Join(parts, " ")
}

// Counts returns how many times each face appears, indexed by face value.
// Faces outside 1..6 are not counted.
func (r Roll) Counts() [7]int {
	var counts [7]int
	for _, face := range r {
		if face >= 1 && face <= 6 {
			counts[face]++
		}
	}
	return counts
}
