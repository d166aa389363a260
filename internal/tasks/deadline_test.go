package tasks

import (
	"testing"
	"time"
)

func TestResolveDeadline(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name      string
		date      string
		timeOfDay string
		want      *time.Time
	}{
		{"empty", "", "", nil},
		{"date only gets end of day", "11/03/2026", "",
			ptr(time.Date(2026, 3, 11, 23, 59, 0, 0, time.Local))},
		{"time only gets today", "", "15:30",
			ptr(time.Date(2026, 3, 10, 15, 30, 0, 0, time.Local))},
		{"date and time", "11/03/2026", "09:15",
			ptr(time.Date(2026, 3, 11, 9, 15, 0, 0, time.Local))},
		{"bad date", "tomorrow", "", nil},
		{"bad time", "", "noonish", nil},
		{"bad date with good time", "2026-03-11", "09:15", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveDeadline(tt.date, tt.timeOfDay, now)
			switch {
			case got == nil && tt.want == nil:
			case got == nil || tt.want == nil:
				t.Errorf("resolveDeadline = %v, want %v", got, tt.want)
			case !got.Equal(*tt.want):
				t.Errorf("resolveDeadline = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDisplayDatetime(t *testing.T) {
	tests := []struct {
		date, timeOfDay, want string
	}{
		{"", "", ""},
		{"11/03/2026", "", "11/03/2026"},
		{"", "15:30", "15:30"},
		{"11/03/2026", "15:30", "11/03/2026, 15:30"},
	}
	for _, tt := range tests {
		if got := displayDatetime(tt.date, tt.timeOfDay); got != tt.want {
			t.Errorf("displayDatetime(%q, %q) = %q, want %q", tt.date, tt.timeOfDay, got, tt.want)
		}
	}
}

func TestTimeLeftLabel(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		deadline *time.Time
		want     string
	}{
		{"no deadline", nil, "No due date"},
		{"exactly at deadline", ptr(now), "Due date exceeded"},
		{"past deadline", ptr(now.Add(-time.Hour)), "Due date exceeded"},
		{"under a minute", ptr(now.Add(30 * time.Second)), "Under a minute left"},
		{"one minute", ptr(now.Add(90 * time.Second)), "1 minute left"},
		{"minutes", ptr(now.Add(45 * time.Minute)), "45 minutes left"},
		{"one hour", ptr(now.Add(90 * time.Minute)), "1 hour left"},
		{"hours", ptr(now.Add(7 * time.Hour)), "7 hours left"},
		{"one day", ptr(now.Add(30 * time.Hour)), "1 day left"},
		{"days", ptr(now.Add(75 * time.Hour)), "3 days left"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := timeLeftLabel(tt.deadline, now); got != tt.want {
				t.Errorf("timeLeftLabel = %q, want %q", got, tt.want)
			}
		})
	}
}

func ptr(t time.Time) *time.Time { return &t }
