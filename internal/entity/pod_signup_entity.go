package entity

import (
	"time"

	"github.com/google/uuid"
)

// PodSignup is a waitlist entry for a pattern group. The pod key groups
// people with an identical archetype, domain and scale combination.
type PodSignup struct {
	Id        uuid.UUID
	SessionId string
	Email     string
	Name      string
	PodKey    string
	Archetype string
	Domain    string
	Scale     string
	CreatedAt time.Time
}
