package repositories

import (
	"chat-gate/domain"
	"chat-gate/errors"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func storeMessages(t *testing.T, repository MessageRepository, conversationID uuid.UUID, sender uuid.UUID, at time.Time, bodies ...string) []domain.Message {
	t.Helper()
	var messages []domain.Message
	for i, body := range bodies {
		message := domain.Message{
			ID:             uuid.New(),
			ConversationID: conversationID,
			SenderID:       sender,
			Body:           body,
			SentAt:         at.Add(time.Duration(i) * time.Minute),
			Seq:            uint64(i + 1),
		}
		require.NoError(t, repository.StoreMessage(message))
		messages = append(messages, message)
	}
	return messages
}

func Test_Record_Multiple_Message(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openDB(t), slog.Default())
	conversationID := uuid.New()
	at := time.Now().UTC()
	stored := storeMessages(t, repository, conversationID, uuid.New(), at, "first", "second", "third")

	fetched, total, err := repository.ListMessages(conversationID, domain.MessageFilter{}, 0, 10)
	req.NoError(err)
	req.Equal(3, total)
	req.Equal([]domain.Message{stored[2], stored[1], stored[0]}, fetched)
}

func Test_Record_Multiple_Message_And_Limit(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openDB(t), slog.Default())
	conversationID := uuid.New()
	stored := storeMessages(t, repository, conversationID, uuid.New(), time.Now().UTC(), "a", "b", "c", "d", "e")

	fetched, total, err := repository.ListMessages(conversationID, domain.MessageFilter{}, 2, 2)
	req.NoError(err)
	req.Equal(5, total)
	req.Equal([]domain.Message{stored[2], stored[1]}, fetched)
}

func Test_Same_Timestamp_Keeps_Insertion_Order(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openDB(t), slog.Default())
	conversationID := uuid.New()
	at := time.Now().UTC()

	first := domain.Message{ID: uuid.New(), ConversationID: conversationID, SenderID: uuid.New(), Body: "first", SentAt: at, Seq: 9}
	second := domain.Message{ID: uuid.New(), ConversationID: conversationID, SenderID: uuid.New(), Body: "second", SentAt: at, Seq: 10}
	req.NoError(repository.StoreMessage(second))
	req.NoError(repository.StoreMessage(first))

	fetched, _, err := repository.ListMessages(conversationID, domain.MessageFilter{}, 0, 10)
	req.NoError(err)
	req.Equal([]domain.Message{second, first}, fetched)

	last, err := repository.LastMessage(conversationID)
	req.NoError(err)
	req.Equal(second, *last)
}

func Test_List_Messages_Filters(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openDB(t), slog.Default())
	conversationID := uuid.New()
	alice, bob := uuid.New(), uuid.New()
	at := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	fromAlice := storeMessages(t, repository, conversationID, alice, at, "Hello", "hello world", "bye")
	fromBob := storeMessages(t, repository, conversationID, bob, at.Add(30*time.Second), "hello Alice")
	// Other conversations never leak into the scan
	storeMessages(t, repository, uuid.New(), alice, at, "hello elsewhere")

	t.Run("by sender", func(t *testing.T) {
		fetched, total, err := repository.ListMessages(conversationID, domain.MessageFilter{SenderID: &bob}, 0, 10)
		req.NoError(err)
		req.Equal(1, total)
		req.Equal(fromBob, fetched)
	})

	t.Run("case sensitive substring", func(t *testing.T) {
		fetched, total, err := repository.ListMessages(conversationID, domain.MessageFilter{Contains: "hello"}, 0, 10)
		req.NoError(err)
		req.Equal(2, total)
		req.Equal([]domain.Message{fromAlice[1], fromBob[0]}, fetched)
	})

	t.Run("inclusive time bounds", func(t *testing.T) {
		filter := domain.MessageFilter{
			SentAfter:  lo.ToPtr(fromAlice[1].SentAt),
			SentBefore: lo.ToPtr(fromAlice[2].SentAt),
		}
		fetched, total, err := repository.ListMessages(conversationID, filter, 0, 10)
		req.NoError(err)
		req.Equal(2, total)
		req.Equal([]domain.Message{fromAlice[2], fromAlice[1]}, fetched)
	})

	t.Run("empty range", func(t *testing.T) {
		filter := domain.MessageFilter{SentBefore: lo.ToPtr(at.Add(-time.Hour))}
		fetched, total, err := repository.ListMessages(conversationID, filter, 0, 10)
		req.NoError(err)
		req.Zero(total)
		req.Empty(fetched)
	})
}

func Test_Get_Message(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openDB(t), slog.Default())
	stored := storeMessages(t, repository, uuid.New(), uuid.New(), time.Now().UTC(), "kept")

	message, err := repository.GetMessage(stored[0].ID)
	req.NoError(err)
	req.Equal(stored[0], message)

	_, err = repository.GetMessage(uuid.New())
	req.ErrorIs(err, errors.ErrMessageNotFound)
}

func Test_Last_Message_Of_Empty_Conversation(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openDB(t), slog.Default())

	last, err := repository.LastMessage(uuid.New())
	req.NoError(err)
	req.Nil(last)
}

func Test_Closed_Store_Is_Unavailable(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	repository := NewMessageRepository(db, slog.Default())
	req.NoError(db.Close())

	err = repository.StoreMessage(domain.Message{ID: uuid.New(), ConversationID: uuid.New(), Body: "lost"})
	req.ErrorIs(err, errors.ErrStoreUnavailable)
}

func Test_List_Messages_Bounds_Beyond_Key_Range(t *testing.T) {
	repository := NewMessageRepository(openDB(t), slog.Default())
	conversationID := uuid.New()
	stored := storeMessages(t, repository, conversationID, uuid.New(), time.Now().UTC(), "first", "second", "third")
	newestFirst := []domain.Message{stored[2], stored[1], stored[0]}

	for name, filter := range map[string]domain.MessageFilter{
		"sent after 1500":   {SentAfter: lo.ToPtr(time.Date(1500, 1, 1, 0, 0, 0, 0, time.UTC))},
		"sent before 3000":  {SentBefore: lo.ToPtr(time.Date(3000, 1, 1, 0, 0, 0, 0, time.UTC))},
		"both out of range": {SentAfter: lo.ToPtr(time.Date(1500, 1, 1, 0, 0, 0, 0, time.UTC)), SentBefore: lo.ToPtr(time.Date(3000, 1, 1, 0, 0, 0, 0, time.UTC))},
	} {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			fetched, total, err := repository.ListMessages(conversationID, filter, 0, 10)
			req.NoError(err)
			req.Equal(3, total)
			req.Equal(newestFirst, fetched)
		})
	}

	t.Run("nothing before 1500", func(t *testing.T) {
		req := require.New(t)
		filter := domain.MessageFilter{SentBefore: lo.ToPtr(time.Date(1500, 1, 1, 0, 0, 0, 0, time.UTC))}
		fetched, total, err := repository.ListMessages(conversationID, filter, 0, 10)
		req.NoError(err)
		req.Zero(total)
		req.Empty(fetched)
	})

	t.Run("nothing after 3000", func(t *testing.T) {
		req := require.New(t)
		filter := domain.MessageFilter{SentAfter: lo.ToPtr(time.Date(3000, 1, 1, 0, 0, 0, 0, time.UTC))}
		fetched, total, err := repository.ListMessages(conversationID, filter, 0, 10)
		req.NoError(err)
		req.Zero(total)
		req.Empty(fetched)
	})
}
