package model

import (
	"time"
)

// GenerationJob represents the database model for video generation jobs
type GenerationJob struct {
	ID            string `gorm:"primaryKey;size:36"`
	UserID        uint64 `gorm:"not null;index"`
	Title         string `gorm:"size:255"`
	ImageURL      string `gorm:"not null;type:text"`
	Prompt        string `gorm:"not null;size:500"`
	Mood          string `gorm:"not null;size:20"`
	Status        string `gorm:"not null;size:20;index"`
	ProviderJobID string `gorm:"size:255;index"`
	Error         string `gorm:"type:text"`
	VideoURL      string `gorm:"type:text"`
	ThumbnailURL  string `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
	CompletedAt   *time.Time

	// Define relationships
	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for GenerationJob
func (GenerationJob) TableName() string {
	return "generation_jobs"
}
