//go:generate go run go.uber.org/mock/mockgen -source=conversation.go -destination=../mocks/mock_conversation_repository.go -package=mocks
package repositories

import (
	"chat-gate/domain"
	"chat-gate/errors"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IConversationRepository interface {
	CreateConversation(conversation domain.Conversation) error
	GetConversation(id uuid.UUID) (domain.Conversation, error)
	AddParticipants(id uuid.UUID, userIDs []uuid.UUID) (domain.Conversation, error)
	ListByParticipant(userID uuid.UUID, offset, limit int) ([]domain.Conversation, int, error)
}

type ConversationRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewConversationRepository(db *badger.DB, log *slog.Logger) ConversationRepository {
	return ConversationRepository{db: db, log: log}
}

// CreateConversation writes the record and one participant index entry per
// member in the same transaction, readers never observe a half created
// conversation.
func (r ConversationRepository) CreateConversation(conversation domain.Conversation) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(conversationKey(conversation.ID), encodeConversation(conversation)); err != nil {
			return err
		}
		for _, userID := range conversation.Participants.IDs() {
			if err := txn.Set(memberKey(userID, conversation.CreatedAt, conversation.ID), nil); err != nil {
				return err
			}
		}
		return nil
	})
	return storeError("create conversation", err)
}

func (r ConversationRepository) GetConversation(id uuid.UUID) (domain.Conversation, error) {
	var conversation domain.Conversation
	err := r.db.View(func(txn *badger.Txn) (err error) {
		conversation, err = readConversation(txn, id)
		return err
	})
	if err != nil {
		return domain.Conversation{}, storeError("get conversation", err)
	}
	return conversation, nil
}

// AddParticipants merges userIDs into the participant set.
// Read and write happen in one transaction: a concurrent update makes
// badger abort with a conflict instead of losing one of the writes.
func (r ConversationRepository) AddParticipants(id uuid.UUID, userIDs []uuid.UUID) (domain.Conversation, error) {
	var updated domain.Conversation
	err := r.db.Update(func(txn *badger.Txn) error {
		current, err := readConversation(txn, id)
		if err != nil {
			return err
		}
		updated = current.WithParticipants(userIDs...)
		if updated.Participants.Len() == current.Participants.Len() {
			return nil
		}
		if err = txn.Set(conversationKey(id), encodeConversation(updated)); err != nil {
			return err
		}
		for _, userID := range userIDs {
			if current.Participants.Contains(userID) {
				continue
			}
			if err = txn.Set(memberKey(userID, updated.CreatedAt, id), nil); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return domain.Conversation{}, storeError("add participants", err)
	}
	return updated, nil
}

// ListByParticipant returns the conversations userID belongs to, newest first,
// along with the total count so callers can paginate.
func (r ConversationRepository) ListByParticipant(userID uuid.UUID, offset, limit int) ([]domain.Conversation, int, error) {
	var (
		conversations []domain.Conversation
		total         int
	)
	err := r.db.View(func(txn *badger.Txn) error {
		prefixStr := memberIndexPrefix(userID)
		prefix := []byte(prefixStr)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		options.PrefetchValues = false
		options.Prefix = prefix
		it := txn.NewIterator(options)
		defer it.Close()

		var ids []uuid.UUID
		for it.Seek(append([]byte(prefixStr), upperBound...)); it.ValidForPrefix(prefix); it.Next() {
			if total >= offset && len(ids) < limit {
				id, err := parseMemberKey(prefixStr, it.Item().KeyCopy(nil))
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}
			total++
		}

		for _, id := range ids {
			conversation, err := readConversation(txn, id)
			if err != nil {
				return err
			}
			conversations = append(conversations, conversation)
		}
		return nil
	})
	if err != nil {
		return nil, 0, storeError("list conversations", err)
	}
	r.log.Debug("Listed conversations", "user_id", userID, "returned", len(conversations), "total", total)
	return conversations, total, nil
}

func readConversation(txn *badger.Txn, id uuid.UUID) (domain.Conversation, error) {
	raw, err := getValue(txn, conversationKey(id))
	if isNotFound(err) {
		return domain.Conversation{}, errors.ConversationNotFound(id.String())
	}
	if err != nil {
		return domain.Conversation{}, err
	}
	return decodeConversation(raw)
}
