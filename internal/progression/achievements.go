package progression

// Achievement is derived from points on every read and never stored.
type Achievement struct {
	ID           int
	Title        string
	Description  string
	Threshold    int64
	RewardPoints int64
	IsUnlocked   bool
}

// Achievements lists the achievement definitions; IsUnlocked is filled by Evaluate.
var Achievements = []Achievement{
	{ID: 1, Title: "First Win", Description: "Earn 500 points", Threshold: 500, RewardPoints: 500},
	{ID: 2, Title: "Played 10 Games", Description: "Play 10 times", Threshold: 1000, RewardPoints: 1000},
	{ID: 3, Title: "Reach 50000 Points", Description: "Accumulate 50000 points", Threshold: 50000, RewardPoints: 5000},
}

// EvaluateAchievements marks each definition unlocked when points reach its threshold.
// RewardPoints are informational; nothing grants them.
func EvaluateAchievements(defs []Achievement, points int64) []Achievement {
	out := make([]Achievement, len(defs))
	for i, a := range defs {
		a.IsUnlocked = points >= a.Threshold
		out[i] = a
	}
	return out
}
