package models

// DocumentStatus represents the review status of a shared document
type DocumentStatus string

const (
	DocumentStatusDraft     DocumentStatus = "draft"
	DocumentStatusSubmitted DocumentStatus = "submitted"
	DocumentStatusReviewed  DocumentStatus = "reviewed"
	DocumentStatusApproved  DocumentStatus = "approved"
)

// Document represents a file shared between a student and their supervisor
type Document struct {
	BaseModel
	ProjectID   string         `gorm:"size:36;index" json:"projectId"`
	UploaderID  string         `gorm:"size:36;index" json:"uploaderId"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Status      DocumentStatus `gorm:"size:20;default:'draft'" json:"status"`
	FileName    string         `gorm:"size:255" json:"fileName"`
	FileType    string         `gorm:"size:100" json:"fileType"`          // MIME type of the file
	FileData    []byte         `gorm:"type:longblob" json:"-"`            // File content as binary data (longblob for MySQL)

	// Relations
	Project  Project `gorm:"foreignKey:ProjectID" json:"-"`
	Uploader User    `gorm:"foreignKey:UploaderID" json:"-"`
}
