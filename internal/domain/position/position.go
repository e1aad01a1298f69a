// Package position orders siblings by integer position.
//
// New siblings always go after the last one: positions are never shifted to
// open a slot, so gaps left by moves and trashing are tolerated.
package position

import "sort"

// Next returns the position for a sibling appended after all of siblings.
func Next[E any](siblings []E, pos func(E) int) int {
	if len(siblings) == 0 {
		return 0
	}
	highest := pos(siblings[0])
	for _, s := range siblings[1:] {
		if p := pos(s); p > highest {
			highest = p
		}
	}
	return highest + 1
}

// Sort orders siblings by ascending position, keeping ties in their current order.
func Sort[E any](siblings []E, pos func(E) int) {
	sort.SliceStable(siblings, func(i, j int) bool {
		return pos(siblings[i]) < pos(siblings[j])
	})
}

// Change is a position a sibling must move to.
type Change struct {
	Index int
	From  int
	To    int
}

// Renumber computes dense positions 0..n-1 for siblings in position order.
// Only siblings whose position changes are reported, lowest target first.
func Renumber[E any](siblings []E, pos func(E) int) []Change {
	order := make([]int, len(siblings))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return pos(siblings[order[a]]) < pos(siblings[order[b]])
	})

	var changes []Change
	for target, idx := range order {
		if from := pos(siblings[idx]); from != target {
			changes = append(changes, Change{Index: idx, From: from, To: target})
		}
	}
	return changes
}
