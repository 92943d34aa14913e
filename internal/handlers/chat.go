package handlers

import (
	"errors"
	"strconv"
	"time"

	"fyp-app-server/internal/chat"
	"fyp-app-server/internal/middleware"
	"fyp-app-server/internal/models"
	"fyp-app-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// ChatHandler exposes the conversation service over HTTP.
type ChatHandler struct {
	Service chat.Service
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(service chat.Service) *ChatHandler {
	return &ChatHandler{Service: service}
}

// chatError maps the conversation service's error taxonomy onto HTTP responses.
func chatError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrValidation):
		utils.BadRequest(c, err.Error())
	case errors.Is(err, chat.ErrForbidden):
		utils.Forbidden(c, err.Error())
	case errors.Is(err, chat.ErrNotFound):
		utils.NotFound(c, err.Error())
	case errors.Is(err, chat.ErrConflict):
		utils.Conflict(c, err.Error())
	default:
		utils.InternalServerError(c, "Chat service error: "+err.Error())
	}
}

// GetOrCreateConversation handles opening (or resuming) the conversation
// between the authenticated user and a counterpart.
func (h *ChatHandler) GetOrCreateConversation(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}
	userRole, _ := middleware.GetUserRoleFromContext(c)

	conv, err := h.Service.GetOrCreateConversation(c.Request.Context(), userID, userRole, c.Param("counterpartId"))
	if err != nil {
		chatError(c, err)
		return
	}

	utils.Success(c, "Conversation ready", conv)
}

// messagesPage is the paged listing envelope for conversation messages.
type messagesPage struct {
	Messages   []models.ChatMessage `json:"messages"`
	Pagination chat.Pagination      `json:"pagination"`
}

// GetMessages handles the paged message listing for a conversation.
func (h *ChatHandler) GetMessages(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		utils.BadRequest(c, "Invalid page parameter")
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil {
		utils.BadRequest(c, "Invalid limit parameter")
		return
	}

	messages, pagination, err := h.Service.ListMessages(c.Request.Context(), c.Param("id"), userID, page, limit)
	if err != nil {
		chatError(c, err)
		return
	}
	if messages == nil {
		messages = []models.ChatMessage{}
	}

	utils.Success(c, "Messages fetched successfully", messagesPage{Messages: messages, Pagination: pagination})
}

// GetNewMessages handles the polling endpoint: messages created strictly
// after the supplied RFC 3339 timestamp.
func (h *ChatHandler) GetNewMessages(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	sinceStr := c.Query("since")
	if sinceStr == "" {
		utils.BadRequest(c, "Query parameter 'since' is required")
		return
	}
	since, err := time.Parse(time.RFC3339, sinceStr)
	if err != nil {
		utils.BadRequest(c, "Invalid 'since' timestamp, use RFC 3339 format")
		return
	}

	messages, err := h.Service.ListMessagesSince(c.Request.Context(), c.Param("id"), userID, since)
	if err != nil {
		chatError(c, err)
		return
	}
	if messages == nil {
		messages = []models.ChatMessage{}
	}

	utils.Success(c, "New messages fetched successfully", messages)
}

// SendMessageRequest represents the request body for sending a chat message.
type SendMessageRequest struct {
	Content        string             `json:"content"`
	MessageType    models.MessageType `json:"messageType"`
	TaggedItemID   string             `json:"taggedItemId"`
	TaggedItemType string             `json:"taggedItemType"`
	AttachmentURL  string             `json:"attachmentUrl"`
	AttachmentName string             `json:"attachmentName"`
}

// SendMessage handles posting a message into a conversation.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}
	userRole, _ := middleware.GetUserRoleFromContext(c)

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	input := chat.SendMessageInput{
		ConversationID: c.Param("id"),
		SenderID:       userID,
		SenderRole:     userRole,
		Content:        req.Content,
		MessageType:    req.MessageType,
		AttachmentURL:  req.AttachmentURL,
		AttachmentName: req.AttachmentName,
	}
	if req.TaggedItemID != "" || req.TaggedItemType != "" {
		input.Tag = &chat.TagRef{
			Kind:   models.TaggedItemType(req.TaggedItemType),
			ItemID: req.TaggedItemID,
		}
	}

	msg, err := h.Service.SendMessage(c.Request.Context(), input)
	if err != nil {
		chatError(c, err)
		return
	}

	utils.Created(c, "Message sent successfully", msg)
}

// MarkMessagesAsRead flips the unread messages addressed to the caller.
func (h *ChatHandler) MarkMessagesAsRead(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	updated, err := h.Service.MarkMessagesAsRead(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		chatError(c, err)
		return
	}

	utils.Success(c, "Messages marked as read", gin.H{"updatedCount": updated})
}

// SearchMessages handles substring search within a conversation.
func (h *ChatHandler) SearchMessages(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	matches, err := h.Service.SearchMessages(
		c.Request.Context(),
		c.Param("id"),
		userID,
		c.Query("query"),
		models.MessageType(c.Query("type")),
	)
	if err != nil {
		chatError(c, err)
		return
	}
	if matches == nil {
		matches = []models.ChatMessage{}
	}

	utils.Success(c, "Search completed successfully", matches)
}

// GetTaggableItems lists the documents, tasks and milestones the caller can
// reference from a chat message.
func (h *ChatHandler) GetTaggableItems(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	items, err := h.Service.ListTaggableItems(c.Request.Context(), userID)
	if err != nil {
		chatError(c, err)
		return
	}

	utils.Success(c, "Taggable items fetched successfully", items)
}
