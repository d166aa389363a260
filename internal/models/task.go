package models

import "time"

// Task is a single to-do item. Active tasks live in the task record;
// completed tasks move to the completed record and are never deleted
// implicitly.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	// Datetime is the raw display text the task was created or edited with,
	// "DD/MM/YYYY, HH:MM" with either half optional.
	Datetime string `json:"datetime"`
	// TimeLeft is the derived label ("3 days left", "Due date exceeded", ...).
	// Recomputed by the deadline watcher.
	TimeLeft      string     `json:"time_left"`
	Completed     bool       `json:"completed"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	AssignedPetID *int       `json:"assigned_pet_id,omitempty"`
	// LastDamageAt is the unix timestamp of the last lateness charge against
	// the assigned pet. Zero means the deadline has never been breached.
	LastDamageAt int64 `json:"last_damage_at,omitempty"`
}

// HasDeadline reports whether the task carries an absolute deadline.
// Tasks without one never have an assigned pet and never take damage.
func (t Task) HasDeadline() bool {
	return t.Deadline != nil
}

// Late reports whether the task's deadline has passed at the given instant.
func (t Task) Late(now time.Time) bool {
	return t.Deadline != nil && !now.Before(*t.Deadline)
}
