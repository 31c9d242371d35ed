package giveaway

// weightFor computes the selection weight of a member holding the given
// roles. Bonus weights do not stack: the member gets the single highest
// configured bonus among held roles, or the default when none apply.
func weightFor(roleIDs []string, roleWeights map[string]int) int {
	weight := DefaultWeight
	for _, id := range roleIDs {
		if bonus, ok := roleWeights[id]; ok && bonus > weight {
			weight = bonus
		}
	}
	return weight
}
