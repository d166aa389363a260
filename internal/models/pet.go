package models

type PetStatus string

const (
	PetHealthy PetStatus = "Healthy"
	PetSick    PetStatus = "Sick"
	PetDead    PetStatus = "Dead"
)

// Pet is an owned virtual pet. Pets are instantiated from catalog templates
// at purchase time and exist only inside the user's pet list.
type Pet struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	SickImage string    `json:"sick_image,omitempty"`
	Health    int       `json:"health"`
	MaxHealth int       `json:"max_health"`
	Status    PetStatus `json:"status"`
}

// StatusForHealth derives a pet's status from its clamped health.
func StatusForHealth(health, maxHealth int) PetStatus {
	switch {
	case health <= 0:
		return PetDead
	case health < maxHealth:
		return PetSick
	default:
		return PetHealthy
	}
}

// Usable reports whether the pet can be assigned to new tasks.
// Dead pets cannot; existing assignments are not retroactively cleared.
func (p Pet) Usable() bool {
	return p.Status != PetDead
}
