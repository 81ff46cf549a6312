package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type QuizResult struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId     string         `gorm:"type:varchar(64);not null;uniqueIndex"`
	Primary       string         `gorm:"column:primary_archetype;type:varchar(20);not null;index"`
	Secondary     string         `gorm:"column:secondary_archetype;type:varchar(20)"`
	Domain        string         `gorm:"type:varchar(20);not null;index"`
	Subdomain     string         `gorm:"type:varchar(40)"`
	Scale         string         `gorm:"type:varchar(20);not null;index"`
	PodKey        string         `gorm:"type:varchar(120);not null;index"`
	Confidence    float64        `gorm:"not null"`
	Level         string         `gorm:"type:varchar(10);not null"`
	IsBlended     bool           `gorm:"not null;default:false"`
	LowConfidence bool           `gorm:"not null;default:false"`
	Scores        datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt     time.Time      `gorm:"default:now();not null;index"`
}

func (QuizResult) TableName() string {
	return "quiz_results"
}
