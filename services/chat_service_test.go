package services

import (
	"chat-gate/contract"
	"chat-gate/domain"
	"chat-gate/domain/event"
	"chat-gate/errors"
	"chat-gate/mocks"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mockedService struct {
	service       *ChatService
	users         *mocks.MockIUserRepository
	conversations *mocks.MockIConversationRepository
	messages      *mocks.MockIMessageRepository
	index         *mocks.MockIMessageIndex
	events        chan event.DomainEvent
	now           time.Time
}

func newMockedService(t *testing.T) *mockedService {
	ctrl := gomock.NewController(t)
	m := &mockedService{
		users:         mocks.NewMockIUserRepository(ctrl),
		conversations: mocks.NewMockIConversationRepository(ctrl),
		messages:      mocks.NewMockIMessageRepository(ctrl),
		index:         mocks.NewMockIMessageIndex(ctrl),
		events:        make(chan event.DomainEvent, 1),
		now:           time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}
	clock := contract.ClockFunc(func() time.Time { return m.now })
	m.service = NewChatService(logs.GetLoggerFromLevel(slog.LevelDebug),
		m.users, m.conversations, m.messages, m.index, clock, m.events)
	return m
}

func users(t *testing.T) (alice, bob, clara domain.User) {
	t.Helper()
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return domain.NewUser("Alice", "alice@example.com", domain.RoleHost, at),
		domain.NewUser("Bob", "bob@example.com", domain.RoleGuest, at),
		domain.NewUser("Clara", "clara@example.com", domain.RoleGuest, at)
}

func TestChatService_CreateConversation(t *testing.T) {
	alice, bob, _ := users(t)

	t.Run("creator is always a participant", func(t *testing.T) {
		req := require.New(t)
		m := newMockedService(t)
		m.users.EXPECT().GetUser(alice.ID).Return(alice, nil)
		m.users.EXPECT().GetUsers([]uuid.UUID{bob.ID}).Return([]domain.User{bob}, nil)
		m.conversations.EXPECT().CreateConversation(gomock.Any()).Return(nil)

		conversation, err := m.service.CreateConversation(context.Background(), &alice, []uuid.UUID{bob.ID})
		req.NoError(err)
		req.ElementsMatch([]uuid.UUID{alice.ID, bob.ID}, conversation.Participants.IDs())
		req.Equal(m.now, conversation.CreatedAt)
	})

	t.Run("empty participants is a validation error", func(t *testing.T) {
		req := require.New(t)
		m := newMockedService(t)
		m.conversations.EXPECT().CreateConversation(gomock.Any()).Times(0)

		for _, ids := range [][]uuid.UUID{nil, {}} {
			_, err := m.service.CreateConversation(context.Background(), &alice, ids)
			req.ErrorIs(err, errors.ErrValidation)
			rejection, ok := errors.AsRejection(err)
			req.True(ok)
			req.Equal("participant_ids", rejection.Field)
		}
	})

	t.Run("unknown participant is named", func(t *testing.T) {
		req := require.New(t)
		m := newMockedService(t)
		ghost := uuid.New()
		m.users.EXPECT().GetUser(alice.ID).Return(alice, nil)
		m.users.EXPECT().GetUsers([]uuid.UUID{bob.ID, ghost}).Return(nil, errors.UserNotFound(ghost.String()))
		m.conversations.EXPECT().CreateConversation(gomock.Any()).Times(0)

		_, err := m.service.CreateConversation(context.Background(), &alice, []uuid.UUID{bob.ID, ghost})
		req.ErrorIs(err, errors.ErrUserNotFound)
		req.ErrorContains(err, ghost.String())
	})

	t.Run("anonymous caller", func(t *testing.T) {
		m := newMockedService(t)
		_, err := m.service.CreateConversation(context.Background(), nil, []uuid.UUID{bob.ID})
		require.ErrorIs(t, err, errors.ErrUnauthenticated)
	})
}

func TestChatService_PostMessage(t *testing.T) {
	alice, bob, clara := users(t)
	conversation := domain.NewConversation(alice.ID, []uuid.UUID{bob.ID}, time.Now().UTC())

	t.Run("body length boundaries", func(t *testing.T) {
		req := require.New(t)
		m := newMockedService(t)
		m.conversations.EXPECT().GetConversation(conversation.ID).Return(conversation, nil).AnyTimes()
		m.messages.EXPECT().LastMessage(conversation.ID).Return(nil, nil)
		m.messages.EXPECT().StoreMessage(gomock.Any()).Return(nil)

		// Runes, not bytes
		_, err := m.service.PostMessage(context.Background(), &bob, conversation.ID, strings.Repeat("é", 1000))
		req.NoError(err)
		<-m.events

		_, err = m.service.PostMessage(context.Background(), &bob, conversation.ID, strings.Repeat("a", 1001))
		req.ErrorIs(err, errors.ErrValidation)
		rejection, ok := errors.AsRejection(err)
		req.True(ok)
		req.Equal("body", rejection.Field)

		_, err = m.service.PostMessage(context.Background(), &bob, conversation.ID, "")
		req.ErrorIs(err, errors.ErrValidation)
	})

	t.Run("non participant never reaches the store", func(t *testing.T) {
		req := require.New(t)
		m := newMockedService(t)
		m.conversations.EXPECT().GetConversation(conversation.ID).Return(conversation, nil)
		m.messages.EXPECT().StoreMessage(gomock.Any()).Times(0)

		_, err := m.service.PostMessage(context.Background(), &clara, conversation.ID, "let me in")
		req.ErrorIs(err, errors.ErrNotParticipant)
	})

	t.Run("ordering survives a clock going backwards", func(t *testing.T) {
		req := require.New(t)
		m := newMockedService(t)
		last := domain.Message{SentAt: m.now.Add(time.Minute), Seq: 41}
		m.conversations.EXPECT().GetConversation(conversation.ID).Return(conversation, nil).AnyTimes()
		m.messages.EXPECT().LastMessage(conversation.ID).Return(&last, nil).Times(1)
		m.messages.EXPECT().StoreMessage(gomock.Any()).Return(nil).Times(2)

		first, err := m.service.PostMessage(context.Background(), &alice, conversation.ID, "one")
		req.NoError(err)
		<-m.events
		second, err := m.service.PostMessage(context.Background(), &bob, conversation.ID, "two")
		req.NoError(err)

		req.Equal(last.SentAt, first.SentAt)
		req.Equal(uint64(42), first.Seq)
		req.Equal(last.SentAt, second.SentAt)
		req.Equal(uint64(43), second.Seq)
	})

	t.Run("failed store does not consume a sequence", func(t *testing.T) {
		req := require.New(t)
		m := newMockedService(t)
		m.conversations.EXPECT().GetConversation(conversation.ID).Return(conversation, nil).AnyTimes()
		m.messages.EXPECT().LastMessage(conversation.ID).Return(nil, nil)
		gomock.InOrder(
			m.messages.EXPECT().StoreMessage(gomock.Any()).Return(errors.StoreUnavailable("store message", context.DeadlineExceeded)),
			m.messages.EXPECT().StoreMessage(gomock.Any()).Return(nil),
		)

		_, err := m.service.PostMessage(context.Background(), &bob, conversation.ID, "lost")
		req.ErrorIs(err, errors.ErrStoreUnavailable)
		req.Empty(m.events)

		message, err := m.service.PostMessage(context.Background(), &bob, conversation.ID, "kept")
		req.NoError(err)
		req.Equal(uint64(1), message.Seq)
	})

	t.Run("full event channel does not block", func(t *testing.T) {
		req := require.New(t)
		m := newMockedService(t)
		m.conversations.EXPECT().GetConversation(conversation.ID).Return(conversation, nil).AnyTimes()
		m.messages.EXPECT().LastMessage(conversation.ID).Return(nil, nil)
		m.messages.EXPECT().StoreMessage(gomock.Any()).Return(nil).Times(2)

		_, err := m.service.PostMessage(context.Background(), &bob, conversation.ID, "fills the channel")
		req.NoError(err)
		_, err = m.service.PostMessage(context.Background(), &bob, conversation.ID, "dropped event")
		req.NoError(err)

		posted := (<-m.events).(event.MessagePosted)
		req.Equal("fills the channel", posted.Message.Body)
	})
}

func TestChatService_EvictIdleClocks(t *testing.T) {
	alice, bob, _ := users(t)
	quiet := domain.NewConversation(alice.ID, []uuid.UUID{bob.ID}, time.Now().UTC())
	busy := domain.NewConversation(alice.ID, []uuid.UUID{bob.ID}, time.Now().UTC())

	req := require.New(t)
	m := newMockedService(t)
	m.conversations.EXPECT().GetConversation(quiet.ID).Return(quiet, nil).AnyTimes()
	m.conversations.EXPECT().GetConversation(busy.ID).Return(busy, nil).AnyTimes()
	m.messages.EXPECT().StoreMessage(gomock.Any()).Return(nil).AnyTimes()

	// quiet is seeded twice: once before and once after its eviction
	m.messages.EXPECT().LastMessage(quiet.ID).Return(nil, nil)
	m.messages.EXPECT().LastMessage(busy.ID).Return(nil, nil).Times(1)

	_, err := m.service.PostMessage(context.Background(), &bob, quiet.ID, "anyone?")
	req.NoError(err)
	m.now = m.now.Add(5 * time.Minute)
	_, err = m.service.PostMessage(context.Background(), &bob, busy.ID, "still here")
	req.NoError(err)
	req.Equal(2, m.service.ActiveClocks())

	req.Equal(1, m.service.EvictIdleClocks(m.now, 5*time.Minute))
	req.Equal(1, m.service.ActiveClocks())
	req.Zero(m.service.EvictIdleClocks(m.now, 5*time.Minute))

	// The evicted clock comes back from the store and keeps the order
	last := domain.Message{SentAt: m.now.Add(time.Hour), Seq: 7}
	m.messages.EXPECT().LastMessage(quiet.ID).Return(&last, nil)
	message, err := m.service.PostMessage(context.Background(), &alice, quiet.ID, "back")
	req.NoError(err)
	req.Equal(uint64(8), message.Seq)
	req.Equal(last.SentAt, message.SentAt)

	// busy kept its clock and is not read again
	message, err = m.service.PostMessage(context.Background(), &alice, busy.ID, "again")
	req.NoError(err)
	req.Equal(uint64(2), message.Seq)
}

func TestChatService_ListMessages(t *testing.T) {
	alice, bob, clara := users(t)
	conversation := domain.NewConversation(alice.ID, []uuid.UUID{bob.ID}, time.Now().UTC())

	t.Run("page is normalized before hitting the store", func(t *testing.T) {
		req := require.New(t)
		m := newMockedService(t)
		m.conversations.EXPECT().GetConversation(conversation.ID).Return(conversation, nil)
		m.messages.EXPECT().
			ListMessages(conversation.ID, domain.MessageFilter{}, 0, domain.MaxPageSize).
			Return([]domain.Message{{Body: "hi"}}, 101, nil)

		page, err := m.service.ListMessages(context.Background(), &alice, conversation.ID, domain.PageRequest{Page: 0, PageSize: 500}, domain.MessageFilter{})
		req.NoError(err)
		req.Equal(1, page.Page)
		req.Equal(domain.MaxPageSize, page.PageSize)
		req.Equal(101, page.Total)
		req.True(page.HasNext)
	})

	t.Run("non participant gets no content", func(t *testing.T) {
		req := require.New(t)
		m := newMockedService(t)
		m.conversations.EXPECT().GetConversation(conversation.ID).Return(conversation, nil)
		m.messages.EXPECT().ListMessages(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		page, err := m.service.ListMessages(context.Background(), &clara, conversation.ID, domain.PageRequest{}, domain.MessageFilter{})
		req.ErrorIs(err, errors.ErrNotParticipant)
		req.Empty(page.Items)
	})

	t.Run("store failure is not an authorization failure", func(t *testing.T) {
		req := require.New(t)
		m := newMockedService(t)
		m.conversations.EXPECT().GetConversation(conversation.ID).Return(domain.Conversation{}, errors.StoreUnavailable("get conversation", context.Canceled))

		_, err := m.service.ListMessages(context.Background(), &alice, conversation.ID, domain.PageRequest{}, domain.MessageFilter{})
		req.ErrorIs(err, errors.ErrStoreUnavailable)
		req.NotErrorIs(err, errors.ErrNotParticipant)
	})

	t.Run("inverted time range", func(t *testing.T) {
		req := require.New(t)
		m := newMockedService(t)
		m.conversations.EXPECT().GetConversation(conversation.ID).Return(conversation, nil)
		after, before := m.now, m.now.Add(-time.Hour)

		_, err := m.service.ListMessages(context.Background(), &alice, conversation.ID, domain.PageRequest{},
			domain.MessageFilter{SentAfter: &after, SentBefore: &before})
		req.ErrorIs(err, errors.ErrValidation)
	})
}

func TestChatService_SearchMessages_Rechecks_Hits(t *testing.T) {
	req := require.New(t)
	m := newMockedService(t)
	alice, bob, _ := users(t)
	mine := domain.NewConversation(alice.ID, []uuid.UUID{bob.ID}, m.now)
	visible := domain.Message{ID: uuid.New(), ConversationID: mine.ID, SenderID: bob.ID, Body: "deploy at noon"}
	// The index is stale or wrong: this hit belongs to a conversation alice is not in
	leaked := domain.Message{ID: uuid.New(), ConversationID: uuid.New(), SenderID: bob.ID, Body: "deploy secrets"}

	m.conversations.EXPECT().ListByParticipant(alice.ID, 0, maxSearchScope).Return([]domain.Conversation{mine}, 1, nil)
	m.index.EXPECT().Search(gomock.Any(), "deploy", []uuid.UUID{mine.ID}, 0, domain.DefaultPageSize).
		Return([]uuid.UUID{visible.ID, leaked.ID}, 2, nil)
	m.messages.EXPECT().GetMessage(visible.ID).Return(visible, nil)
	m.messages.EXPECT().GetMessage(leaked.ID).Return(leaked, nil)

	page, err := m.service.SearchMessages(context.Background(), &alice, "deploy", domain.PageRequest{})
	req.NoError(err)
	req.Equal([]domain.Message{visible}, page.Items)
	req.Equal(1, page.Total)
	req.False(page.HasNext)
}

func TestChatService_SearchMessages_Total_Excludes_Dropped_Hits(t *testing.T) {
	req := require.New(t)
	m := newMockedService(t)
	alice, bob, _ := users(t)
	mine := domain.NewConversation(alice.ID, []uuid.UUID{bob.ID}, m.now)
	visible := domain.Message{ID: uuid.New(), ConversationID: mine.ID, SenderID: bob.ID, Body: "release notes"}
	vanished := uuid.New()

	// More conversations than a search spans: only the newest are searched
	m.conversations.EXPECT().ListByParticipant(alice.ID, 0, maxSearchScope).Return([]domain.Conversation{mine}, maxSearchScope+500, nil)
	m.index.EXPECT().Search(gomock.Any(), "release", []uuid.UUID{mine.ID}, 2, 2).
		Return([]uuid.UUID{visible.ID, vanished}, 4, nil)
	m.messages.EXPECT().GetMessage(visible.ID).Return(visible, nil)
	m.messages.EXPECT().GetMessage(vanished).Return(domain.Message{}, errors.ErrMessageNotFound)

	page, err := m.service.SearchMessages(context.Background(), &alice, "release", domain.PageRequest{Page: 2, PageSize: 2})
	req.NoError(err)
	req.Equal([]domain.Message{visible}, page.Items)
	req.Equal(3, page.Total)
	req.False(page.HasNext)
}

func TestChatService_AddParticipants(t *testing.T) {
	alice, bob, clara := users(t)
	conversation := domain.NewConversation(alice.ID, []uuid.UUID{bob.ID}, time.Now().UTC())

	t.Run("member adds a known user", func(t *testing.T) {
		req := require.New(t)
		m := newMockedService(t)
		m.conversations.EXPECT().GetConversation(conversation.ID).Return(conversation, nil)
		m.users.EXPECT().GetUsers([]uuid.UUID{clara.ID}).Return([]domain.User{clara}, nil)
		m.conversations.EXPECT().AddParticipants(conversation.ID, []uuid.UUID{clara.ID}).
			Return(conversation.WithParticipants(clara.ID), nil)

		updated, err := m.service.AddParticipants(context.Background(), &alice, conversation.ID, []uuid.UUID{clara.ID})
		req.NoError(err)
		req.True(domain.IsParticipant(updated, clara.ID))
	})

	t.Run("outsider cannot add itself", func(t *testing.T) {
		m := newMockedService(t)
		m.conversations.EXPECT().GetConversation(conversation.ID).Return(conversation, nil)
		m.conversations.EXPECT().AddParticipants(gomock.Any(), gomock.Any()).Times(0)

		_, err := m.service.AddParticipants(context.Background(), &clara, conversation.ID, []uuid.UUID{clara.ID})
		require.ErrorIs(t, err, errors.ErrNotParticipant)
	})
}
