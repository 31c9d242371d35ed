package leveling

import "math"

// XPForLevel returns the total XP required to reach the given level. The
// curve is 100 * level^1.35, rounded down.
func XPForLevel(level int) int {
	if level <= 0 {
		return 0
	}
	return int(100 * math.Pow(float64(level), LevelCurveExponent))
}

// LevelFromXP returns the highest level whose XP requirement the given
// total meets.
func LevelFromXP(xp int) int {
	if xp <= 0 {
		return 0
	}
	level := 0
	for XPForLevel(level+1) <= xp {
		level++
	}
	return level
}
