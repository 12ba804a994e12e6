package leaderboard

// giftScores maps every santa to category points plus manual bonus/malus.
// A gift whose category no longer exists counts its category as zero; players
// without a gift simply have no entry.
func giftScores(gifts []Gift, categories []Category) map[string]int {
	categoryPoints := make(map[string]int, len(categories))
	for _, c := range categories {
		categoryPoints[c.ID] = c.Points
	}

	scores := make(map[string]int, len(gifts))
	for _, g := range gifts {
		scores[g.SantaOwnerID] = categoryPoints[g.CategoryID] + g.BonusPoints
	}
	return scores
}
