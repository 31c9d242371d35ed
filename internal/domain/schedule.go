package domain

import "time"

// PingSchedule is one recurring role ping: mention RoleID in ChannelID at
// Hour:Minute on the listed weekdays, optionally purging the channel at
// PurgeHour:PurgeMinute the same day. Purge times are pointers because
// midnight is a valid value.
type PingSchedule struct {
	RoleID      string
	ChannelID   string
	Hour        int
	Minute      int
	Days        []time.Weekday
	Message     string
	PurgeHour   *int
	PurgeMinute *int
}

// PingDueAt reports whether the ping fires at the given wall-clock minute.
func (p *PingSchedule) PingDueAt(t time.Time) bool {
	return p.onDay(t) && t.Hour() == p.Hour && t.Minute() == p.Minute
}

// PurgeDueAt reports whether the channel purge fires at the given minute.
func (p *PingSchedule) PurgeDueAt(t time.Time) bool {
	if p.PurgeHour == nil || p.PurgeMinute == nil {
		return false
	}
	return p.onDay(t) && t.Hour() == *p.PurgeHour && t.Minute() == *p.PurgeMinute
}

func (p *PingSchedule) onDay(t time.Time) bool {
	for _, d := range p.Days {
		if t.Weekday() == d {
			return true
		}
	}
	return false
}
