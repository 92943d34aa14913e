package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fyp-app-server/internal/chat"
	"fyp-app-server/internal/models"
	"fyp-app-server/internal/utils"
)

// stubChatService returns canned results so the tests can focus on request
// parsing and status-code mapping.
type stubChatService struct {
	conv       *models.Conversation
	msg        *models.ChatMessage
	messages   []models.ChatMessage
	pagination chat.Pagination
	updated    int64
	items      *chat.TaggableItems
	err        error

	gotInput chat.SendMessageInput
	gotPage  int
	gotLimit int
	gotSince time.Time
}

func (s *stubChatService) GetOrCreateConversation(_ context.Context, _ string, _ models.Role, _ string) (*models.Conversation, error) {
	return s.conv, s.err
}

func (s *stubChatService) SendMessage(_ context.Context, in chat.SendMessageInput) (*models.ChatMessage, error) {
	s.gotInput = in
	return s.msg, s.err
}

func (s *stubChatService) ListMessages(_ context.Context, _, _ string, page, pageSize int) ([]models.ChatMessage, chat.Pagination, error) {
	s.gotPage, s.gotLimit = page, pageSize
	return s.messages, s.pagination, s.err
}

func (s *stubChatService) ListMessagesSince(_ context.Context, _, _ string, since time.Time) ([]models.ChatMessage, error) {
	s.gotSince = since
	return s.messages, s.err
}

func (s *stubChatService) MarkMessagesAsRead(_ context.Context, _, _ string) (int64, error) {
	return s.updated, s.err
}

func (s *stubChatService) SearchMessages(_ context.Context, _, _, _ string, _ models.MessageType) ([]models.ChatMessage, error) {
	return s.messages, s.err
}

func (s *stubChatService) ListTaggableItems(_ context.Context, _ string) (*chat.TaggableItems, error) {
	return s.items, s.err
}

func newChatRouter(svc chat.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("userID", "student-1")
		c.Set("userRole", models.RoleStudent)
	})

	h := NewChatHandler(svc)
	router.GET("/conversations/with/:counterpartId", h.GetOrCreateConversation)
	router.GET("/conversations/:id/messages", h.GetMessages)
	router.GET("/conversations/:id/messages/new", h.GetNewMessages)
	router.POST("/conversations/:id/messages", h.SendMessage)
	router.PUT("/conversations/:id/messages/read", h.MarkMessagesAsRead)
	router.GET("/conversations/:id/search", h.SearchMessages)
	router.GET("/conversations/taggable-items", h.GetTaggableItems)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, utils.ResponseData) {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp utils.ResponseData
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestChatErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation maps to 400", chat.ErrValidation, http.StatusBadRequest},
		{"forbidden maps to 403", chat.ErrForbidden, http.StatusForbidden},
		{"not found maps to 404", chat.ErrNotFound, http.StatusNotFound},
		{"conflict maps to 409", chat.ErrConflict, http.StatusConflict},
		{"store failure maps to 500", chat.ErrStoreUnavailable, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newChatRouter(&stubChatService{err: tt.err})
			w, resp := doRequest(t, router, http.MethodGet, "/conversations/with/supervisor-1", "")
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestGetOrCreateConversationEndpoint(t *testing.T) {
	svc := &stubChatService{conv: &models.Conversation{
		BaseModel:    models.BaseModel{ID: "conv-1"},
		StudentID:    "student-1",
		SupervisorID: "supervisor-1",
	}}
	router := newChatRouter(svc)

	w, resp := doRequest(t, router, http.MethodGet, "/conversations/with/supervisor-1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Conversation ready", resp.Message)
}

func TestSendMessageEndpoint(t *testing.T) {
	svc := &stubChatService{msg: &models.ChatMessage{ID: 12, Content: "hello"}}
	router := newChatRouter(svc)

	body := `{"content":"hello","messageType":"document_tag","taggedItemId":"doc-1","taggedItemType":"document"}`
	w, _ := doRequest(t, router, http.MethodPost, "/conversations/conv-1/messages", body)
	assert.Equal(t, http.StatusCreated, w.Code)

	assert.Equal(t, "conv-1", svc.gotInput.ConversationID)
	assert.Equal(t, "student-1", svc.gotInput.SenderID)
	assert.Equal(t, models.RoleStudent, svc.gotInput.SenderRole)
	require.NotNil(t, svc.gotInput.Tag)
	assert.Equal(t, models.TaggedItemDocument, svc.gotInput.Tag.Kind)
	assert.Equal(t, "doc-1", svc.gotInput.Tag.ItemID)
}

func TestSendMessageEndpoint_MalformedBody(t *testing.T) {
	router := newChatRouter(&stubChatService{})
	w, _ := doRequest(t, router, http.MethodPost, "/conversations/conv-1/messages", `{"content":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetMessagesEndpoint_Paging(t *testing.T) {
	svc := &stubChatService{
		messages:   []models.ChatMessage{{ID: 1, Content: "hi"}},
		pagination: chat.Pagination{Page: 2, PageSize: 25, TotalCount: 51, HasMore: true},
	}
	router := newChatRouter(svc)

	w, _ := doRequest(t, router, http.MethodGet, "/conversations/conv-1/messages?page=2&limit=25", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, svc.gotPage)
	assert.Equal(t, 25, svc.gotLimit)

	w, _ = doRequest(t, router, http.MethodGet, "/conversations/conv-1/messages?page=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetNewMessagesEndpoint(t *testing.T) {
	svc := &stubChatService{messages: []models.ChatMessage{}}
	router := newChatRouter(svc)

	w, _ := doRequest(t, router, http.MethodGet, "/conversations/conv-1/messages/new?since=2026-03-10T09:00:00Z", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC), svc.gotSince.UTC())

	w, _ = doRequest(t, router, http.MethodGet, "/conversations/conv-1/messages/new", "")
	assert.Equal(t, http.StatusBadRequest, w.Code, "missing since parameter is rejected")

	w, _ = doRequest(t, router, http.MethodGet, "/conversations/conv-1/messages/new?since=yesterday", "")
	assert.Equal(t, http.StatusBadRequest, w.Code, "non RFC 3339 since is rejected")
}

func TestMarkMessagesAsReadEndpoint(t *testing.T) {
	svc := &stubChatService{updated: 3}
	router := newChatRouter(svc)

	w, resp := doRequest(t, router, http.MethodPut, "/conversations/conv-1/messages/read", "")
	assert.Equal(t, http.StatusOK, w.Code)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 3, data["updatedCount"])
}

func TestGetTaggableItemsEndpoint(t *testing.T) {
	svc := &stubChatService{items: &chat.TaggableItems{
		Documents: []chat.TaggableItem{{ID: "doc-1", Title: "Proposal", Type: models.TaggedItemDocument}},
	}}
	router := newChatRouter(svc)

	w, resp := doRequest(t, router, http.MethodGet, "/conversations/taggable-items", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotNil(t, resp.Data)
}
