package entity

import (
	"time"

	"github.com/google/uuid"
)

// QuizResult is a delivered classification, persisted for telemetry and
// pod formation.
type QuizResult struct {
	Id            uuid.UUID
	SessionId     string
	Primary       string
	Secondary     string
	Domain        string
	Subdomain     string
	Scale         string
	PodKey        string
	Confidence    float64
	Level         string
	IsBlended     bool
	LowConfidence bool
	Scores        map[string]map[string]float64
	CreatedAt     time.Time
}
