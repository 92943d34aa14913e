package models

import (
	"time"
)

// Conversation represents the single message thread between a student and a
// supervisor. The unique index on the participant pair is what guarantees at
// most one conversation per pair, even under concurrent creation.
type Conversation struct {
	BaseModel
	StudentID     string     `gorm:"size:36;uniqueIndex:idx_conversation_pair" json:"studentId"`
	SupervisorID  string     `gorm:"size:36;uniqueIndex:idx_conversation_pair" json:"supervisorId"`
	LastMessageAt *time.Time `gorm:"index" json:"lastMessageAt,omitempty"`

	// Relations
	Student    User          `gorm:"foreignKey:StudentID" json:"-"`
	Supervisor User          `gorm:"foreignKey:SupervisorID" json:"-"`
	Messages   []ChatMessage `gorm:"foreignKey:ConversationID" json:"-"`
}

// HasParticipant reports whether the given user is one of the two participants.
func (conv *Conversation) HasParticipant(userID string) bool {
	return userID != "" && (userID == conv.StudentID || userID == conv.SupervisorID)
}
