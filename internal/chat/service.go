package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fyp-app-server/internal/models"
)

const (
	defaultPageSize = 50
	maxPageSize     = 100
)

// Service is the single entry point for all conversation operations. Handlers
// never touch the stores directly; that funnel is what keeps the uniqueness
// and atomicity invariants enforceable.
type Service interface {
	GetOrCreateConversation(ctx context.Context, callerID string, callerRole models.Role, counterpartID string) (*models.Conversation, error)
	SendMessage(ctx context.Context, in SendMessageInput) (*models.ChatMessage, error)
	ListMessages(ctx context.Context, conversationID, requesterID string, page, pageSize int) ([]models.ChatMessage, Pagination, error)
	ListMessagesSince(ctx context.Context, conversationID, requesterID string, since time.Time) ([]models.ChatMessage, error)
	MarkMessagesAsRead(ctx context.Context, conversationID, requesterID string) (int64, error)
	SearchMessages(ctx context.Context, conversationID, requesterID, query string, typeFilter models.MessageType) ([]models.ChatMessage, error)
	ListTaggableItems(ctx context.Context, callerID string) (*TaggableItems, error)
}

// TagRef points at the project item a tag message embeds.
type TagRef struct {
	Kind   models.TaggedItemType
	ItemID string
}

// SendMessageInput carries everything needed to append one message. Tag must
// be set exactly when MessageType is a *_tag variant; attachment fields only
// for file/image.
type SendMessageInput struct {
	ConversationID string
	SenderID       string
	SenderRole     models.Role
	Content        string
	MessageType    models.MessageType
	Tag            *TagRef
	AttachmentURL  string
	AttachmentName string
}

// Pagination describes one page of a message listing.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalCount int64 `json:"totalCount"`
	HasMore    bool  `json:"hasMore"`
}

// TaggableItems groups the items a caller may tag, per kind.
type TaggableItems struct {
	Documents  []TaggableItem `json:"documents"`
	Tasks      []TaggableItem `json:"tasks"`
	Milestones []TaggableItem `json:"milestones"`
}

type service struct {
	store           Store
	identity        IdentityResolver
	tags            TagResolver
	items           TaggableLister
	defaultPageSize int
	maxPageSize     int
	now             func() time.Time
}

// NewService wires the conversation service. Zero page sizes fall back to the
// defaults (50 per page, capped at 100).
func NewService(store Store, identity IdentityResolver, tags TagResolver, items TaggableLister, defaultSize, maxSize int) Service {
	if defaultSize <= 0 {
		defaultSize = defaultPageSize
	}
	if maxSize <= 0 {
		maxSize = maxPageSize
	}
	return &service{
		store:           store,
		identity:        identity,
		tags:            tags,
		items:           items,
		defaultPageSize: defaultSize,
		maxPageSize:     maxSize,
		now:             time.Now,
	}
}

// GetOrCreateConversation looks up the conversation for the caller and the
// counterpart, creating it on first contact. Safe under concurrent calls for
// the same pair: a duplicate-pair conflict from the store is converted into a
// retry of the lookup.
func (s *service) GetOrCreateConversation(ctx context.Context, callerID string, callerRole models.Role, counterpartID string) (*models.Conversation, error) {
	if callerID == "" || counterpartID == "" {
		return nil, fmt.Errorf("%w: caller and counterpart ids are required", ErrValidation)
	}
	if callerID == counterpartID {
		return nil, fmt.Errorf("%w: cannot start a conversation with yourself", ErrValidation)
	}

	counterpartRole, err := s.identity.RoleOf(ctx, counterpartID)
	if err != nil {
		return nil, err
	}

	var studentID, supervisorID string
	switch callerRole {
	case models.RoleStudent:
		if counterpartRole != models.RoleSupervisor {
			return nil, fmt.Errorf("supervisor %s: %w", counterpartID, ErrNotFound)
		}
		studentID, supervisorID = callerID, counterpartID
	case models.RoleSupervisor:
		if counterpartRole != models.RoleStudent {
			return nil, fmt.Errorf("student %s: %w", counterpartID, ErrNotFound)
		}
		studentID, supervisorID = counterpartID, callerID
	default:
		return nil, fmt.Errorf("%w: only students and supervisors have conversations", ErrForbidden)
	}

	conv, err := s.store.FindConversationByParticipants(ctx, studentID, supervisorID)
	if err == nil {
		return conv, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	conv, err = s.store.CreateConversation(ctx, studentID, supervisorID)
	if err == nil {
		return conv, nil
	}
	if errors.Is(err, ErrConflict) {
		// Lost the creation race; the other caller's row is the conversation.
		return s.store.FindConversationByParticipants(ctx, studentID, supervisorID)
	}
	return nil, err
}

// SendMessage validates the input, resolves the tag snapshot when applicable,
// and appends the message. Validation and permission failures happen before
// any write; no partial state is left behind.
func (s *service) SendMessage(ctx context.Context, in SendMessageInput) (*models.ChatMessage, error) {
	conv, err := s.requireParticipant(ctx, in.ConversationID, in.SenderID)
	if err != nil {
		return nil, err
	}
	if !senderMatches(conv, in.SenderID, in.SenderRole) {
		return nil, fmt.Errorf("%w: sender role does not match conversation participant", ErrForbidden)
	}

	msgType := in.MessageType
	if msgType == "" {
		msgType = models.MessageTypeText
	}
	if !msgType.Valid() {
		return nil, fmt.Errorf("%w: unknown message type %q", ErrValidation, in.MessageType)
	}

	content := strings.TrimSpace(in.Content)
	if content == "" && !(msgType.IsAttachment() && in.AttachmentURL != "") {
		return nil, fmt.Errorf("%w: message content is required", ErrValidation)
	}

	if (in.AttachmentURL != "" || in.AttachmentName != "") && !msgType.IsAttachment() {
		return nil, fmt.Errorf("%w: attachments are only valid for file or image messages", ErrValidation)
	}

	msg := &models.ChatMessage{
		ConversationID: conv.ID,
		SenderID:       in.SenderID,
		SenderRole:     in.SenderRole,
		Content:        content,
		MessageType:    msgType,
		AttachmentURL:  in.AttachmentURL,
		AttachmentName: in.AttachmentName,
		CreatedAt:      s.now().UTC(),
	}

	if msgType.IsTag() {
		if in.Tag == nil || in.Tag.ItemID == "" || !in.Tag.Kind.Valid() {
			return nil, fmt.Errorf("%w: %s messages require a tagged item reference", ErrValidation, msgType)
		}
		if in.Tag.Kind.MessageType() != msgType {
			return nil, fmt.Errorf("%w: tagged item type %q does not match message type %q", ErrValidation, in.Tag.Kind, msgType)
		}
		// Snapshot is captured here, at send time, and never re-fetched.
		snapshot, err := s.tags.ResolveTag(ctx, in.Tag.Kind, in.Tag.ItemID)
		if err != nil {
			return nil, err
		}
		msg.TaggedItemID = in.Tag.ItemID
		msg.TaggedItemType = in.Tag.Kind
		msg.TaggedItemData = snapshot
	} else if in.Tag != nil {
		return nil, fmt.Errorf("%w: tag reference is only valid for tag message types", ErrValidation)
	}

	if err := s.store.AppendMessage(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// ListMessages returns one page of the conversation in chronological order
// (created_at ascending, ties broken by id), ready to render without
// re-sorting.
func (s *service) ListMessages(ctx context.Context, conversationID, requesterID string, page, pageSize int) ([]models.ChatMessage, Pagination, error) {
	if page < 1 {
		return nil, Pagination{}, fmt.Errorf("%w: page must be 1 or greater", ErrValidation)
	}
	if pageSize <= 0 {
		pageSize = s.defaultPageSize
	}
	if pageSize > s.maxPageSize {
		pageSize = s.maxPageSize
	}

	if _, err := s.requireParticipant(ctx, conversationID, requesterID); err != nil {
		return nil, Pagination{}, err
	}

	offset := (page - 1) * pageSize
	messages, total, err := s.store.ListMessagesPage(ctx, conversationID, offset, pageSize)
	if err != nil {
		return nil, Pagination{}, err
	}

	return messages, Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
		HasMore:    int64(offset+len(messages)) < total,
	}, nil
}

// ListMessagesSince returns every message created after the given instant,
// the cursor the polling UI uses between full page loads.
func (s *service) ListMessagesSince(ctx context.Context, conversationID, requesterID string, since time.Time) ([]models.ChatMessage, error) {
	if _, err := s.requireParticipant(ctx, conversationID, requesterID); err != nil {
		return nil, err
	}
	return s.store.ListMessagesSince(ctx, conversationID, since)
}

// MarkMessagesAsRead flags every unread message not sent by the requester.
// Idempotent: already-read messages keep their original ReadAt.
func (s *service) MarkMessagesAsRead(ctx context.Context, conversationID, requesterID string) (int64, error) {
	if _, err := s.requireParticipant(ctx, conversationID, requesterID); err != nil {
		return 0, err
	}
	return s.store.MarkRead(ctx, conversationID, requesterID, s.now().UTC())
}

// SearchMessages does a case-insensitive substring match over message content,
// optionally restricted to one message type. Matches come back in
// chronological order; no matches is an empty slice, not an error.
func (s *service) SearchMessages(ctx context.Context, conversationID, requesterID, query string, typeFilter models.MessageType) ([]models.ChatMessage, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", ErrValidation)
	}
	if typeFilter != "" && !typeFilter.Valid() {
		return nil, fmt.Errorf("%w: unknown message type filter %q", ErrValidation, typeFilter)
	}

	if _, err := s.requireParticipant(ctx, conversationID, requesterID); err != nil {
		return nil, err
	}
	return s.store.SearchByContent(ctx, conversationID, query, typeFilter)
}

// ListTaggableItems returns the documents, tasks and milestones the caller may
// tag in a message.
func (s *service) ListTaggableItems(ctx context.Context, callerID string) (*TaggableItems, error) {
	if callerID == "" {
		return nil, fmt.Errorf("%w: caller id is required", ErrValidation)
	}

	docs, err := s.items.ListAccessibleDocuments(ctx, callerID)
	if err != nil {
		return nil, err
	}
	tasks, err := s.items.ListAccessibleTasks(ctx, callerID)
	if err != nil {
		return nil, err
	}
	milestones, err := s.items.ListAccessibleMilestones(ctx, callerID)
	if err != nil {
		return nil, err
	}

	return &TaggableItems{Documents: docs, Tasks: tasks, Milestones: milestones}, nil
}

func (s *service) requireParticipant(ctx context.Context, conversationID, userID string) (*models.Conversation, error) {
	if conversationID == "" {
		return nil, fmt.Errorf("%w: conversation id is required", ErrValidation)
	}
	conv, err := s.store.FindConversationByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conv.HasParticipant(userID) {
		return nil, fmt.Errorf("%w: user %s is not a participant of this conversation", ErrForbidden, userID)
	}
	return conv, nil
}

func senderMatches(conv *models.Conversation, senderID string, senderRole models.Role) bool {
	switch senderRole {
	case models.RoleStudent:
		return senderID == conv.StudentID
	case models.RoleSupervisor:
		return senderID == conv.SupervisorID
	}
	return false
}
