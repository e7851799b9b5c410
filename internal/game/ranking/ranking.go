package ranking

// Rank represents the title awarded for a finished session
type Rank struct {
	Title     string
	MinPoints int
	MaxPoints int
}

// Available ranks in ascending order
var Ranks = []Rank{
	{Title: "Beginner", MinPoints: 0, MaxPoints: 29},
	{Title: "Explorer", MinPoints: 30, MaxPoints: 79},
	{Title: "Word Smith", MinPoints: 80, MaxPoints: 149},
	{Title: "Spell Master", MinPoints: 150, MaxPoints: 249},
	{Title: "Intellispeller", MinPoints: 250, MaxPoints: 1<<31 - 1},
}

// GetRankByPoints returns the rank for a final session score
func GetRankByPoints(points int) Rank {
	for _, rank := range Ranks {
		if points >= rank.MinPoints && points <= rank.MaxPoints {
			return rank
		}
	}
	return Ranks[0] // negative scores cannot happen, default to the first rank
}

// WordsToNextRank returns how many more solved words would lift points to
// the next rank, or 0 when already at the top
func WordsToNextRank(points, reward int) int {
	if reward <= 0 {
		return 0
	}
	for _, rank := range Ranks {
		if rank.MinPoints > points {
			missing := rank.MinPoints - points
			return (missing + reward - 1) / reward
		}
	}
	return 0
}
