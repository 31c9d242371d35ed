package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/atreus-labs/wardenbot/internal/domain"
)

// pingScheduleFile is the on-disk JSON shape of one schedule entry.
type pingScheduleFile struct {
	RoleID      string `json:"role_id"`
	ChannelID   string `json:"channel_id"`
	Hour        int    `json:"hour"`
	Minute      int    `json:"minute"`
	Days        []int  `json:"days"` // 0 = Sunday, matching time.Weekday
	Message     string `json:"message"`
	PurgeHour   *int   `json:"purge_hour,omitempty"`
	PurgeMinute *int   `json:"purge_minute,omitempty"`
}

// LoadSchedules reads the role-ping schedule file. An empty path means no
// schedules are configured, which is not an error.
func LoadSchedules(path string) ([]domain.PingSchedule, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schedule file: %w", err)
	}

	var entries []pingScheduleFile
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse schedule file: %w", err)
	}

	schedules := make([]domain.PingSchedule, 0, len(entries))
	for i, e := range entries {
		if err := validateScheduleEntry(e); err != nil {
			return nil, fmt.Errorf("schedule entry %d: %w", i, err)
		}
		days := make([]time.Weekday, 0, len(e.Days))
		for _, d := range e.Days {
			days = append(days, time.Weekday(d))
		}
		schedules = append(schedules, domain.PingSchedule{
			RoleID:      e.RoleID,
			ChannelID:   e.ChannelID,
			Hour:        e.Hour,
			Minute:      e.Minute,
			Days:        days,
			Message:     e.Message,
			PurgeHour:   e.PurgeHour,
			PurgeMinute: e.PurgeMinute,
		})
	}
	return schedules, nil
}

func validateScheduleEntry(e pingScheduleFile) error {
	if e.RoleID == "" || e.ChannelID == "" {
		return fmt.Errorf("role_id and channel_id are required")
	}
	if e.Hour < 0 || e.Hour > 23 || e.Minute < 0 || e.Minute > 59 {
		return fmt.Errorf("invalid ping time %02d:%02d", e.Hour, e.Minute)
	}
	if len(e.Days) == 0 {
		return fmt.Errorf("at least one weekday is required")
	}
	for _, d := range e.Days {
		if d < 0 || d > 6 {
			return fmt.Errorf("invalid weekday %d", d)
		}
	}
	if (e.PurgeHour == nil) != (e.PurgeMinute == nil) {
		return fmt.Errorf("purge_hour and purge_minute must be set together")
	}
	if e.PurgeHour != nil && (*e.PurgeHour < 0 || *e.PurgeHour > 23 || *e.PurgeMinute < 0 || *e.PurgeMinute > 59) {
		return fmt.Errorf("invalid purge time %02d:%02d", *e.PurgeHour, *e.PurgeMinute)
	}
	return nil
}
