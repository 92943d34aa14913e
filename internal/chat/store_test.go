package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fyp-app-server/internal/models"
)

func newMockStore(t *testing.T) (Store, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return NewGormStore(db), mock
}

func TestFindConversationByParticipants(t *testing.T) {
	store, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"id", "student_id", "supervisor_id"}).
		AddRow("conv-1", "student-1", "supervisor-1")
	mock.ExpectQuery("SELECT (.+) FROM `conversations` WHERE student_id = (.+) AND supervisor_id = (.+)").
		WithArgs("student-1", "supervisor-1", 1).
		WillReturnRows(rows)

	conv, err := store.FindConversationByParticipants(context.Background(), "student-1", "supervisor-1")
	require.NoError(t, err)
	assert.Equal(t, "conv-1", conv.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindConversationByParticipants_NotFound(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT (.+) FROM `conversations`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "student_id", "supervisor_id"}))

	conv, err := store.FindConversationByParticipants(context.Background(), "student-1", "supervisor-1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, conv)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateConversation(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `conversations`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	conv, err := store.CreateConversation(context.Background(), "student-1", "supervisor-1")
	require.NoError(t, err)
	assert.NotEmpty(t, conv.ID, "id is generated before insert")
	assert.Equal(t, "student-1", conv.StudentID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateConversation_DuplicatePair(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `conversations`").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
	mock.ExpectRollback()

	conv, err := store.CreateConversation(context.Background(), "student-1", "supervisor-1")
	assert.ErrorIs(t, err, ErrConflict)
	assert.Nil(t, conv)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateConversation_OtherErrorIsNotConflict(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `conversations`").
		WillReturnError(errors.New("server has gone away"))
	mock.ExpectRollback()

	_, err := store.CreateConversation(context.Background(), "student-1", "supervisor-1")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.NotErrorIs(t, err, ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppendMessage(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `chat_messages`").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("UPDATE `conversations` SET `last_message_at`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	msg := &models.ChatMessage{
		ConversationID: "conv-1",
		SenderID:       "student-1",
		SenderRole:     models.RoleStudent,
		Content:        "hello",
		MessageType:    models.MessageTypeText,
		CreatedAt:      time.Now().UTC(),
	}
	err := store.AppendMessage(context.Background(), msg)
	require.NoError(t, err)
	assert.Equal(t, uint(7), msg.ID, "id comes from the insert")
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A failed insert must roll back without touching the conversation row.
func TestAppendMessage_RollsBackOnInsertFailure(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `chat_messages`").
		WillReturnError(errors.New("lock wait timeout"))
	mock.ExpectRollback()

	err := store.AppendMessage(context.Background(), &models.ChatMessage{
		ConversationID: "conv-1",
		SenderID:       "student-1",
		Content:        "hello",
		MessageType:    models.MessageTypeText,
		CreatedAt:      time.Now().UTC(),
	})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListMessagesPage(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT count(.+) FROM `chat_messages` WHERE conversation_id").
		WithArgs("conv-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "conversation_id", "sender_id", "content", "message_type", "created_at"}).
		AddRow(3, "conv-1", "student-1", "first", "text", base).
		AddRow(4, "conv-1", "supervisor-1", "second", "text", base.Add(time.Minute))
	mock.ExpectQuery("SELECT (.+) FROM `chat_messages` WHERE conversation_id = (.+) ORDER BY created_at asc, id asc").
		WithArgs("conv-1").
		WillReturnRows(rows)

	msgs, total, err := store.ListMessagesPage(context.Background(), "conv-1", 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, msgs, 2)
	assert.Equal(t, uint(3), msgs[0].ID)
	assert.Equal(t, "second", msgs[1].Content)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkRead(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `chat_messages` SET").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	updated, err := store.MarkRead(context.Background(), "conv-1", "supervisor-1", time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, int64(3), updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// LIKE metacharacters in the query must match literally.
func TestSearchByContent_EscapesPattern(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT (.+) FROM `chat_messages` WHERE conversation_id = (.+) AND LOWER\\(content\\) LIKE (.+) AND message_type").
		WithArgs("conv-1", `%50\%\_done%`, "text").
		WillReturnRows(sqlmock.NewRows([]string{"id", "conversation_id", "sender_id", "content", "message_type"}).
			AddRow(1, "conv-1", "student-1", "about 50%_done now", "text"))

	msgs, err := store.SearchByContent(context.Background(), "conv-1", "50%_Done", models.MessageTypeText)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "about 50%_done now", msgs[0].Content)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchByContent_NoTypeFilter(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT (.+) FROM `chat_messages` WHERE conversation_id = (.+) AND LOWER\\(content\\) LIKE").
		WithArgs("conv-1", "%draft%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "conversation_id", "sender_id", "content", "message_type"}))

	msgs, err := store.SearchByContent(context.Background(), "conv-1", "draft", "")
	require.NoError(t, err)
	assert.Empty(t, msgs)
	assert.NoError(t, mock.ExpectationsWereMet())
}
