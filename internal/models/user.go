package models

// User is the single per-installation profile. XP is the progress within the
// current level and is always below the level's requirement.
type User struct {
	Username       string `json:"username"`
	Level          int    `json:"level"`
	XP             int    `json:"xp"`
	Coins          int    `json:"coins"`
	CompletedTasks int    `json:"completed_tasks"`
	Pets           []Pet  `json:"pets"`
}
