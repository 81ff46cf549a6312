package model

import (
	"time"

	"github.com/google/uuid"
)

type PodSignup struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId string    `gorm:"type:varchar(64);not null;index"`
	Email     string    `gorm:"type:varchar(255);not null"`
	Name      string    `gorm:"type:varchar(100);not null"`
	PodKey    string    `gorm:"type:varchar(120);not null;index"`
	Archetype string    `gorm:"type:varchar(20);not null"`
	Domain    string    `gorm:"type:varchar(20);not null"`
	Scale     string    `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time `gorm:"default:now();not null"`
}

func (PodSignup) TableName() string {
	return "pod_signups"
}
