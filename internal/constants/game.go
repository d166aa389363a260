package constants

import "time"

const (
	AppName           = "taskive"
	DefaultConfigPath = "~/.config/taskive/taskive.db"
	Version           = "v0.1.0"

	// DateFormat is the display date format used throughout the application (DD/MM/YYYY)
	DateFormat = "02/01/2006"

	// TimeFormat is the display time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Reward amounts granted when a task is completed strictly before its deadline.
	RewardXP    = 20
	RewardCoins = 15

	// LatenessDamageHP is the health deducted from a task's assigned pet per
	// charged day of lateness.
	LatenessDamageHP = 10

	// XPPerLevel scales the XP requirement: requirement(level) = level * XPPerLevel.
	XPPerLevel = 100

	// StartingCoins is the coin balance of a freshly initialized profile.
	StartingCoins = 200

	// DefaultUsername is used until the user sets their own.
	DefaultUsername = "User"

	// StartingLevel is the level of a freshly initialized profile.
	StartingLevel = 1

	// WatcherInterval is the cadence of the deadline/health maintenance loop.
	// A tuning knob, not a contract.
	WatcherInterval = 15 * time.Second

	// Tasks with a date but no time are due at the end of that day.
	EndOfDayHour   = 23
	EndOfDayMinute = 59
)

// XPRequiredForLevel returns the XP needed to advance past the given level.
func XPRequiredForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return level * XPPerLevel
}
