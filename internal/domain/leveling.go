package domain

// LevelProfile is a member's accumulated XP within one guild.
type LevelProfile struct {
	UserID  string
	GuildID string
	XP      int
	Level   int
}

// LeaderboardRow is one row of the per-guild XP leaderboard.
type LeaderboardRow struct {
	UserID string
	Level  int
	XP     int
}

// DailyTopUser identifies the member who gained the most XP on one day.
type DailyTopUser struct {
	UserID string
	XPGain int
}

// XPResult describes the outcome of a single XP award.
type XPResult struct {
	Awarded   int
	TotalXP   int
	OldLevel  int
	NewLevel  int
	LeveledUp bool
}
