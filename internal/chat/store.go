package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fyp-app-server/internal/models"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// Store is the persistence contract the conversation service depends on.
// Any engine works as long as CreateConversation surfaces ErrConflict on a
// duplicate participant pair and AppendMessage persists the message and the
// conversation's last_message_at as one all-or-nothing unit.
type Store interface {
	FindConversationByID(ctx context.Context, conversationID string) (*models.Conversation, error)
	FindConversationByParticipants(ctx context.Context, studentID, supervisorID string) (*models.Conversation, error)
	CreateConversation(ctx context.Context, studentID, supervisorID string) (*models.Conversation, error)
	AppendMessage(ctx context.Context, msg *models.ChatMessage) error
	ListMessagesPage(ctx context.Context, conversationID string, offset, limit int) ([]models.ChatMessage, int64, error)
	ListMessagesSince(ctx context.Context, conversationID string, since time.Time) ([]models.ChatMessage, error)
	MarkRead(ctx context.Context, conversationID, excludeSenderID string, at time.Time) (int64, error)
	SearchByContent(ctx context.Context, conversationID, query string, typeFilter models.MessageType) ([]models.ChatMessage, error)
}

type gormStore struct {
	db *gorm.DB
}

// NewGormStore returns a Store backed by a GORM MySQL connection.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) FindConversationByID(ctx context.Context, conversationID string) (*models.Conversation, error) {
	var conv models.Conversation
	err := s.db.WithContext(ctx).First(&conv, "id = ?", conversationID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("conversation %s: %w", conversationID, ErrNotFound)
		}
		return nil, storeErr(err)
	}
	return &conv, nil
}

func (s *gormStore) FindConversationByParticipants(ctx context.Context, studentID, supervisorID string) (*models.Conversation, error) {
	var conv models.Conversation
	err := s.db.WithContext(ctx).
		Where("student_id = ? AND supervisor_id = ?", studentID, supervisorID).
		First(&conv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storeErr(err)
	}
	return &conv, nil
}

func (s *gormStore) CreateConversation(ctx context.Context, studentID, supervisorID string) (*models.Conversation, error) {
	conv := models.Conversation{
		StudentID:    studentID,
		SupervisorID: supervisorID,
	}
	if err := s.db.WithContext(ctx).Create(&conv).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrConflict
		}
		return nil, storeErr(err)
	}
	return &conv, nil
}

// AppendMessage inserts the message and touches the conversation's
// last_message_at in one transaction. The timestamp guard keeps
// last_message_at from moving backwards if appends commit out of order.
func (s *gormStore) AppendMessage(ctx context.Context, msg *models.ChatMessage) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(msg).Error; err != nil {
			return err
		}
		return tx.Model(&models.Conversation{}).
			Where("id = ? AND (last_message_at IS NULL OR last_message_at <= ?)", msg.ConversationID, msg.CreatedAt).
			Update("last_message_at", msg.CreatedAt).Error
	})
	if err != nil {
		return storeErr(err)
	}
	return nil
}

func (s *gormStore) ListMessagesPage(ctx context.Context, conversationID string, offset, limit int) ([]models.ChatMessage, int64, error) {
	db := s.db.WithContext(ctx)

	var total int64
	if err := db.Model(&models.ChatMessage{}).
		Where("conversation_id = ?", conversationID).
		Count(&total).Error; err != nil {
		return nil, 0, storeErr(err)
	}

	var messages []models.ChatMessage
	if err := db.Where("conversation_id = ?", conversationID).
		Order("created_at asc, id asc").
		Offset(offset).Limit(limit).
		Find(&messages).Error; err != nil {
		return nil, 0, storeErr(err)
	}
	return messages, total, nil
}

func (s *gormStore) ListMessagesSince(ctx context.Context, conversationID string, since time.Time) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	if err := s.db.WithContext(ctx).
		Where("conversation_id = ? AND created_at > ?", conversationID, since).
		Order("created_at asc, id asc").
		Find(&messages).Error; err != nil {
		return nil, storeErr(err)
	}
	return messages, nil
}

func (s *gormStore) MarkRead(ctx context.Context, conversationID, excludeSenderID string, at time.Time) (int64, error) {
	res := s.db.WithContext(ctx).Model(&models.ChatMessage{}).
		Where("conversation_id = ? AND sender_id <> ? AND is_read = ?", conversationID, excludeSenderID, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": at})
	if res.Error != nil {
		return 0, storeErr(res.Error)
	}
	return res.RowsAffected, nil
}

// likeEscaper makes user-supplied search text match literally inside a LIKE
// pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (s *gormStore) SearchByContent(ctx context.Context, conversationID, query string, typeFilter models.MessageType) ([]models.ChatMessage, error) {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(query)) + "%"

	db := s.db.WithContext(ctx).
		Where("conversation_id = ? AND LOWER(content) LIKE ?", conversationID, pattern)
	if typeFilter != "" {
		db = db.Where("message_type = ?", typeFilter)
	}

	var messages []models.ChatMessage
	if err := db.Order("created_at asc, id asc").Find(&messages).Error; err != nil {
		return nil, storeErr(err)
	}
	return messages, nil
}

// isDuplicateKey detects a unique-constraint violation on the conversation
// pair index (MySQL error 1062).
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

func storeErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
