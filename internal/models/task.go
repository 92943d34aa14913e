package models

import (
	"time"
)

// TaskStatus represents the status of a project task
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

// Task represents a unit of work a supervisor assigns within a project
type Task struct {
	BaseModel
	ProjectID   string     `gorm:"size:36;index" json:"projectId"`
	CreatedByID string     `gorm:"size:36;index" json:"createdById"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Status      TaskStatus `gorm:"size:20;default:'todo'" json:"status"`
	DueDate     *time.Time `json:"dueDate,omitempty"`

	// Relations
	Project   Project `gorm:"foreignKey:ProjectID" json:"-"`
	CreatedBy User    `gorm:"foreignKey:CreatedByID" json:"-"`
}
