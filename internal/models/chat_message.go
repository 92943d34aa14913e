package models

import (
	"time"
)

// MessageType discriminates what a chat message carries besides text.
type MessageType string

const (
	MessageTypeText         MessageType = "text"
	MessageTypeFile         MessageType = "file"
	MessageTypeImage        MessageType = "image"
	MessageTypeDocumentTag  MessageType = "document_tag"
	MessageTypeTaskTag      MessageType = "task_tag"
	MessageTypeMilestoneTag MessageType = "milestone_tag"
)

// IsTag reports whether the type carries a tagged-item snapshot.
func (t MessageType) IsTag() bool {
	return t == MessageTypeDocumentTag || t == MessageTypeTaskTag || t == MessageTypeMilestoneTag
}

// IsAttachment reports whether the type carries a file/image reference.
func (t MessageType) IsAttachment() bool {
	return t == MessageTypeFile || t == MessageTypeImage
}

// Valid reports whether the type is one of the known message types.
func (t MessageType) Valid() bool {
	switch t {
	case MessageTypeText, MessageTypeFile, MessageTypeImage,
		MessageTypeDocumentTag, MessageTypeTaskTag, MessageTypeMilestoneTag:
		return true
	}
	return false
}

// TaggedItemType identifies which kind of project item a tag points at.
type TaggedItemType string

const (
	TaggedItemDocument  TaggedItemType = "document"
	TaggedItemTask      TaggedItemType = "task"
	TaggedItemMilestone TaggedItemType = "milestone"
)

// Valid reports whether the tagged item type is known.
func (t TaggedItemType) Valid() bool {
	return t == TaggedItemDocument || t == TaggedItemTask || t == TaggedItemMilestone
}

// MessageType returns the message type that carries a tag of this kind.
func (t TaggedItemType) MessageType() MessageType {
	switch t {
	case TaggedItemDocument:
		return MessageTypeDocumentTag
	case TaggedItemTask:
		return MessageTypeTaskTag
	case TaggedItemMilestone:
		return MessageTypeMilestoneTag
	}
	return ""
}

// TaggedItemData is the snapshot of a tagged item captured at send time.
// It is deliberately denormalized: the chat stays readable even if the
// underlying document/task/milestone is later modified or deleted.
type TaggedItemData struct {
	Title       string `gorm:"size:255" json:"title"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Status      string `gorm:"size:50" json:"status,omitempty"`
}

// ChatMessage represents one message in a conversation. The auto-increment ID
// is the tiebreaker for ordering: messages are rendered by (created_at, id).
type ChatMessage struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	ConversationID string          `gorm:"size:36;index" json:"conversationId"`
	SenderID       string          `gorm:"size:36;index" json:"senderId"`
	SenderRole     Role            `gorm:"size:20" json:"senderRole"`
	Content        string          `gorm:"type:text" json:"content"`
	MessageType    MessageType     `gorm:"size:20;default:'text'" json:"messageType"`
	TaggedItemID   string          `gorm:"size:36" json:"taggedItemId,omitempty"`
	TaggedItemType TaggedItemType  `gorm:"size:20" json:"taggedItemType,omitempty"`
	TaggedItemData *TaggedItemData `gorm:"embedded;embeddedPrefix:tagged_" json:"taggedItemData,omitempty"`
	AttachmentURL  string          `gorm:"size:500" json:"attachmentUrl,omitempty"`
	AttachmentName string          `gorm:"size:255" json:"attachmentName,omitempty"`
	IsRead         bool            `gorm:"default:false" json:"isRead"`
	ReadAt         *time.Time      `json:"readAt,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`

	// Relations
	Sender User `gorm:"foreignKey:SenderID" json:"-"`
}
