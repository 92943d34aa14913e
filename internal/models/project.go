package models

// ProjectStatus represents the status of a final-year project registration
type ProjectStatus string

const (
	ProjectStatusProposed   ProjectStatus = "proposed"
	ProjectStatusApproved   ProjectStatus = "approved"
	ProjectStatusRejected   ProjectStatus = "rejected"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
)

// Project represents a registered final-year project
type Project struct {
	BaseModel
	StudentID    string        `gorm:"size:36;index" json:"studentId"`
	SupervisorID string        `gorm:"size:36;index" json:"supervisorId"`
	Title        string        `gorm:"size:255;not null" json:"title"`
	Description  string        `gorm:"type:text" json:"description"`
	AcademicYear string        `gorm:"size:20" json:"academicYear"`
	Status       ProjectStatus `gorm:"size:20;default:'proposed'" json:"status"`
	Feedback     string        `gorm:"type:text" json:"feedback,omitempty"` // Supervisor feedback on approval/rejection

	// Relations
	Student    User        `gorm:"foreignKey:StudentID" json:"-"`
	Supervisor User        `gorm:"foreignKey:SupervisorID" json:"-"`
	Documents  []Document  `gorm:"foreignKey:ProjectID" json:"documents,omitempty"`
	Tasks      []Task      `gorm:"foreignKey:ProjectID" json:"tasks,omitempty"`
	Milestones []Milestone `gorm:"foreignKey:ProjectID" json:"milestones,omitempty"`
}
