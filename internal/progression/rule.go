package progression

import "slices"

// GameStatus is a catalog entry with its unlock state for one player.
type GameStatus struct {
	Game
	IsUnlocked bool
}

// Unlock returns the unlocked id set after applying the rule for points.
// Every catalog game whose UnlockScore is reached is appended; ids already
// present are kept in place and never removed. newly lists the ids this
// call added, in catalog order.
func Unlock(catalog []Game, points int64, unlocked []int) (result []int, newly []int) {
	result = slices.Clone(unlocked)
	if result == nil {
		result = []int{}
	}
	for _, g := range catalog {
		if points >= g.UnlockScore && !slices.Contains(result, g.ID) {
			result = append(result, g.ID)
			newly = append(newly, g.ID)
		}
	}
	return result, newly
}

// Statuses pairs each catalog game with its unlock state. A game counts as
// unlocked only through membership in the unlocked set.
func Statuses(catalog []Game, unlocked []int) []GameStatus {
	out := make([]GameStatus, 0, len(catalog))
	for _, g := range catalog {
		out = append(out, GameStatus{Game: g, IsUnlocked: slices.Contains(unlocked, g.ID)})
	}
	return out
}
