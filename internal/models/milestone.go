package models

import (
	"time"
)

// MilestoneStatus represents the status of a project milestone
type MilestoneStatus string

const (
	MilestoneStatusPending MilestoneStatus = "pending"
	MilestoneStatusReached MilestoneStatus = "reached"
	MilestoneStatusMissed  MilestoneStatus = "missed"
)

// Milestone represents a dated checkpoint in a project's timeline
type Milestone struct {
	BaseModel
	ProjectID   string          `gorm:"size:36;index" json:"projectId"`
	Title       string          `gorm:"size:255;not null" json:"title"`
	Description string          `gorm:"type:text" json:"description"`
	Status      MilestoneStatus `gorm:"size:20;default:'pending'" json:"status"`
	DueDate     *time.Time      `json:"dueDate,omitempty"`

	// Relations
	Project Project `gorm:"foreignKey:ProjectID" json:"-"`
}
