package domain

import "time"

// Giveaway is one timed prize drawing. The announcement message ID doubles
// as the primary key, so a giveaway cannot exist before its announcement
// was successfully sent.
type Giveaway struct {
	MessageID   string
	ChannelID   string
	GuildID     string
	Prize       string
	EndTime     time.Time
	WinnerCount int
	HostID      string
	IsActive    bool
	CreatedAt   time.Time
}

// Due reports whether the giveaway should be finalized at the given time.
func (g *Giveaway) Due(now time.Time) bool {
	return g.IsActive && !g.EndTime.After(now)
}

// Entry is one user's registered participation in one giveaway.
// (giveaway_id, user_id) is unique at the storage layer; entries are never
// mutated or deleted so rerolls can replay the closed entrant list.
type Entry struct {
	GiveawayID string
	UserID     string
	CreatedAt  time.Time
}

// Entrant is an entry joined with the member's current selection weight.
// Computed fresh at finalization and reroll time, never persisted, so the
// weight reflects the roles the member holds right now.
type Entrant struct {
	UserID string
	Weight int
}
