package entities

import "time"

// JobStatus is the lifecycle of an asynchronous image-processing job.
type JobStatus string

const (
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// ImageProcessingJob tracks one item-image download/conversion performed by
// the catalog import pipeline.
type ImageProcessingJob struct {
	ID     string    `gorm:"type:char(36);primaryKey" json:"id"`
	ItemID string    `gorm:"type:char(36);not null;index" json:"itemId"`
	Status JobStatus `gorm:"type:varchar(20);not null;default:processing" json:"status"`

	ImageURL     string  `gorm:"type:text;not null" json:"imageUrl"`
	ErrorMessage *string `gorm:"type:text" json:"errorMessage"`

	StartedAt   time.Time  `gorm:"not null" json:"startedAt"`
	CompletedAt *time.Time `json:"completedAt"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
