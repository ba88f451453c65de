package rules

// DefaultThreshold is the minimum neighbor count an occupied cell needs
// to survive a round.
const DefaultThreshold = 4

/*
ShouldRemove applies the stabilization rule to determine whether a cell
is removed this round.

Removal rule: occupied && neighbors < threshold
*/
func ShouldRemove(occupied bool, neighbors, threshold int) bool {
	return occupied && neighbors < threshold
}
