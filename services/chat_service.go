package services

import (
	"chat-gate/contract"
	"chat-gate/domain"
	"chat-gate/domain/event"
	"chat-gate/errors"
	"chat-gate/policy"
	"chat-gate/repositories"
	"chat-gate/search"
	"context"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// maxSearchScope bounds how many of the caller's conversations a search spans.
const maxSearchScope = 1000

// IChatService is called once the pipeline admitted the request.
// It still enforces membership itself: the pipeline is a deployment choice,
// the service rules are not.
type IChatService interface {
	CreateConversation(ctx context.Context, identity *domain.User, participantIDs []uuid.UUID) (domain.Conversation, error)
	GetConversation(ctx context.Context, identity *domain.User, conversationID uuid.UUID) (domain.Conversation, error)
	ListConversations(ctx context.Context, identity *domain.User, page domain.PageRequest) (domain.Page[domain.Conversation], error)
	ListMessages(ctx context.Context, identity *domain.User, conversationID uuid.UUID, page domain.PageRequest, filter domain.MessageFilter) (domain.Page[domain.Message], error)
	PostMessage(ctx context.Context, identity *domain.User, conversationID uuid.UUID, body string) (domain.Message, error)
	AddParticipants(ctx context.Context, identity *domain.User, conversationID uuid.UUID, participantIDs []uuid.UUID) (domain.Conversation, error)
	SearchMessages(ctx context.Context, identity *domain.User, text string, page domain.PageRequest) (domain.Page[domain.Message], error)
}

type ChatService struct {
	log           *slog.Logger
	users         repositories.IUserRepository
	conversations repositories.IConversationRepository
	messages      repositories.IMessageRepository
	index         search.IMessageIndex
	clock         contract.Clock
	events        chan<- event.DomainEvent
	validate      *validator.Validate
	sequencer     *sequencer
	participants  policy.ParticipantPolicy
}

// NewChatService wires the service. events may be nil when nothing consumes them.
func NewChatService(
	log *slog.Logger,
	users repositories.IUserRepository,
	conversations repositories.IConversationRepository,
	messages repositories.IMessageRepository,
	index search.IMessageIndex,
	clock contract.Clock,
	events chan<- event.DomainEvent,
) *ChatService {
	return &ChatService{
		log:           log,
		users:         users,
		conversations: conversations,
		messages:      messages,
		index:         index,
		clock:         clock,
		events:        events,
		validate:      newValidator(),
		sequencer:     newSequencer(),
	}
}

// CreateConversation adds the creator to the requested participants.
// Every id must resolve to a known user.
func (s *ChatService) CreateConversation(_ context.Context, identity *domain.User, participantIDs []uuid.UUID) (domain.Conversation, error) {
	if err := s.participants.Authenticated(identity); err != nil {
		return domain.Conversation{}, err
	}
	if err := validate(s.validate, createConversationRequest{ParticipantIDs: participantIDs}); err != nil {
		return domain.Conversation{}, err
	}
	if _, err := s.users.GetUser(identity.ID); err != nil {
		return domain.Conversation{}, err
	}
	if _, err := s.users.GetUsers(lo.Uniq(participantIDs)); err != nil {
		return domain.Conversation{}, err
	}

	conversation := domain.NewConversation(identity.ID, participantIDs, s.clock.Now().UTC())
	if err := s.conversations.CreateConversation(conversation); err != nil {
		return domain.Conversation{}, err
	}
	s.log.Info("Conversation created",
		"conversation_id", conversation.ID,
		"creator_id", identity.ID,
		"participants", conversation.Participants.Len())
	return conversation, nil
}

func (s *ChatService) GetConversation(_ context.Context, identity *domain.User, conversationID uuid.UUID) (domain.Conversation, error) {
	return s.authorizedConversation(identity, conversationID)
}

func (s *ChatService) ListConversations(_ context.Context, identity *domain.User, page domain.PageRequest) (domain.Page[domain.Conversation], error) {
	if err := s.participants.Authenticated(identity); err != nil {
		return domain.Page[domain.Conversation]{}, err
	}
	page = page.Normalize(domain.DefaultPageSize, domain.MaxPageSize)
	conversations, total, err := s.conversations.ListByParticipant(identity.ID, page.Offset(), page.PageSize)
	if err != nil {
		return domain.Page[domain.Conversation]{}, err
	}
	return domain.NewPage(conversations, page, total), nil
}

func (s *ChatService) ListMessages(_ context.Context, identity *domain.User, conversationID uuid.UUID, page domain.PageRequest, filter domain.MessageFilter) (domain.Page[domain.Message], error) {
	if _, err := s.authorizedConversation(identity, conversationID); err != nil {
		return domain.Page[domain.Message]{}, err
	}
	if filter.SentAfter != nil && filter.SentBefore != nil && filter.SentAfter.After(*filter.SentBefore) {
		return domain.Page[domain.Message]{}, errors.Validation("sent_after", "must not be after sent_before")
	}
	page = page.Normalize(domain.DefaultPageSize, domain.MaxPageSize)
	messages, total, err := s.messages.ListMessages(conversationID, filter, page.Offset(), page.PageSize)
	if err != nil {
		return domain.Page[domain.Message]{}, err
	}
	return domain.NewPage(messages, page, total), nil
}

// PostMessage assigns the ordering key under the conversation lock, so two
// concurrent posts never share one and SentAt never decreases.
func (s *ChatService) PostMessage(ctx context.Context, identity *domain.User, conversationID uuid.UUID, body string) (domain.Message, error) {
	if _, err := s.authorizedConversation(identity, conversationID); err != nil {
		return domain.Message{}, err
	}
	if err := validate(s.validate, postMessageRequest{Body: body}); err != nil {
		return domain.Message{}, err
	}

	clock := s.sequencer.acquire(conversationID)
	defer func() { s.sequencer.release(clock, s.clock.Now()) }()

	if !clock.seeded {
		last, err := s.messages.LastMessage(conversationID)
		if err != nil {
			return domain.Message{}, err
		}
		if last != nil {
			clock.commit(last.SentAt, last.Seq)
		}
		clock.seeded = true
	}
	if ctx.Err() != nil {
		return domain.Message{}, errors.Timeout("post_message")
	}

	sentAt, seq := clock.next(s.clock.Now().UTC())
	message := domain.Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		SenderID:       identity.ID,
		Body:           body,
		SentAt:         sentAt,
		Seq:            seq,
	}
	if err := s.messages.StoreMessage(message); err != nil {
		return domain.Message{}, err
	}
	clock.commit(sentAt, seq)

	s.publish(event.MessagePosted{Message: message})
	return message, nil
}

// AddParticipants is the only mutation of an existing conversation.
// The role gate runs upstream, here the actor must still be a member.
func (s *ChatService) AddParticipants(_ context.Context, identity *domain.User, conversationID uuid.UUID, participantIDs []uuid.UUID) (domain.Conversation, error) {
	if _, err := s.authorizedConversation(identity, conversationID); err != nil {
		return domain.Conversation{}, err
	}
	if err := validate(s.validate, addParticipantsRequest{ParticipantIDs: participantIDs}); err != nil {
		return domain.Conversation{}, err
	}
	if _, err := s.users.GetUsers(lo.Uniq(participantIDs)); err != nil {
		return domain.Conversation{}, err
	}
	updated, err := s.conversations.AddParticipants(conversationID, participantIDs)
	if err != nil {
		return domain.Conversation{}, err
	}
	s.log.Info("Participants added",
		"conversation_id", conversationID,
		"actor_id", identity.ID,
		"participants", updated.Participants.Len())
	return updated, nil
}

// SearchMessages queries the index over the caller's conversations and
// re-checks every hit, the index is never trusted for authorization.
// Only the caller's newest maxSearchScope conversations are searched. Hits
// dropped by the re-check are taken out of the total.
func (s *ChatService) SearchMessages(ctx context.Context, identity *domain.User, text string, page domain.PageRequest) (domain.Page[domain.Message], error) {
	if err := s.participants.Authenticated(identity); err != nil {
		return domain.Page[domain.Message]{}, err
	}
	if err := validate(s.validate, searchMessagesRequest{Text: text}); err != nil {
		return domain.Page[domain.Message]{}, err
	}
	page = page.Normalize(domain.DefaultPageSize, domain.MaxPageSize)

	conversations, joined, err := s.conversations.ListByParticipant(identity.ID, 0, maxSearchScope)
	if err != nil {
		return domain.Page[domain.Message]{}, err
	}
	if joined > maxSearchScope {
		s.log.Warn("Search limited to the newest conversations",
			"user_id", identity.ID,
			"searched", len(conversations),
			"joined", joined)
	}
	byID := lo.KeyBy(conversations, func(c domain.Conversation) uuid.UUID { return c.ID })

	ids, total, err := s.index.Search(ctx, text, lo.Keys(byID), page.Offset(), page.PageSize)
	if err != nil {
		return domain.Page[domain.Message]{}, errors.StoreUnavailable("search messages", err)
	}

	messages := make([]domain.Message, 0, len(ids))
	for _, id := range ids {
		message, err := s.messages.GetMessage(id)
		if err != nil {
			s.log.Debug("Dropping search hit", "message_id", id, "error", err)
			continue
		}
		target := policy.MessageTarget{Message: message, Conversation: byID[message.ConversationID]}
		if err = s.participants.Authorize(identity, target); err != nil {
			s.log.Warn("Search hit outside caller conversations", "message_id", id, "user_id", identity.ID)
			continue
		}
		messages = append(messages, message)
	}
	total -= len(ids) - len(messages)
	return domain.NewPage(messages, page, total), nil
}

// EvictIdleClocks drops the ordering state of conversations nobody posted to
// for idle. It is reseeded from the store on the next post.
func (s *ChatService) EvictIdleClocks(now time.Time, idle time.Duration) int {
	return s.sequencer.sweep(now, idle)
}

// ActiveClocks is the number of conversations with ordering state in memory.
func (s *ChatService) ActiveClocks() int {
	return s.sequencer.len()
}

// ResolveConversation and ResolveMessage feed the participant stage of the pipeline.
func (s *ChatService) ResolveConversation(id uuid.UUID) (domain.Conversation, error) {
	return s.conversations.GetConversation(id)
}

func (s *ChatService) ResolveMessage(id uuid.UUID) (domain.Message, domain.Conversation, error) {
	message, err := s.messages.GetMessage(id)
	if err != nil {
		return domain.Message{}, domain.Conversation{}, err
	}
	conversation, err := s.conversations.GetConversation(message.ConversationID)
	if err != nil {
		return domain.Message{}, domain.Conversation{}, err
	}
	return message, conversation, nil
}

// ResolveIdentity loads the caller behind an authenticated user id.
func (s *ChatService) ResolveIdentity(userID uuid.UUID) (*domain.User, error) {
	user, err := s.users.GetUser(userID)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *ChatService) authorizedConversation(identity *domain.User, conversationID uuid.UUID) (domain.Conversation, error) {
	if err := s.participants.Authenticated(identity); err != nil {
		return domain.Conversation{}, err
	}
	conversation, err := s.conversations.GetConversation(conversationID)
	if err != nil {
		return domain.Conversation{}, err
	}
	if err = s.participants.Authorize(identity, policy.ConversationTarget{Conversation: conversation}); err != nil {
		return domain.Conversation{}, err
	}
	return conversation, nil
}

// publish never blocks the request path, a full channel drops the event.
func (s *ChatService) publish(e event.DomainEvent) {
	if s.events == nil {
		return
	}
	select {
	case s.events <- e:
	default:
		s.log.Warn("Event channel full, dropping event", "conversation_id", e.ConversationID())
	}
}
