//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"chat-gate/domain"
	"chat-gate/errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IMessageRepository interface {
	StoreMessage(message domain.Message) error
	GetMessage(id uuid.UUID) (domain.Message, error)
	LastMessage(conversationID uuid.UUID) (*domain.Message, error)
	ListMessages(conversationID uuid.UUID, filter domain.MessageFilter, offset, limit int) ([]domain.Message, int, error)
}

type MessageRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMessageRepository(db *badger.DB, log *slog.Logger) MessageRepository {
	return MessageRepository{db: db, log: log}
}

// StoreMessage persists a message in BadgerDB.
// The key is formatted as "msg:{conversation_id}:{timestamp_padded}:{seq_padded}" to:
//  1. Ensure chronological sorting using 19-digit zero padding (lexicographical order).
//  2. Keep insertion order between messages sent at the same nanosecond.
//
// A second key indexes the message by id.
func (m MessageRepository) StoreMessage(message domain.Message) error {
	key := messageKey(message.ConversationID, message.SentAt, message.Seq)
	err := m.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(key, encodeMessage(message)); err != nil {
			return err
		}
		return txn.Set(messageIDKey(message.ID), key)
	})
	return storeError("store message", err)
}

func (m MessageRepository) GetMessage(id uuid.UUID) (domain.Message, error) {
	var message domain.Message
	err := m.db.View(func(txn *badger.Txn) error {
		key, err := getValue(txn, messageIDKey(id))
		if isNotFound(err) {
			return errors.MessageNotFound(id.String())
		}
		if err != nil {
			return err
		}
		raw, err := getValue(txn, key)
		if isNotFound(err) {
			return fmt.Errorf("%w: dangling message index %s", errors.ErrInvalidRecord, id)
		}
		if err != nil {
			return err
		}
		message, err = decodeMessage(raw)
		return err
	})
	if err != nil {
		return domain.Message{}, storeError("get message", err)
	}
	return message, nil
}

// LastMessage returns the newest message of the conversation, nil when empty.
func (m MessageRepository) LastMessage(conversationID uuid.UUID) (*domain.Message, error) {
	var last *domain.Message
	err := m.db.View(func(txn *badger.Txn) error {
		prefixStr := messageConversationPrefix(conversationID)
		prefix := []byte(prefixStr)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		options.PrefetchSize = 1
		it := txn.NewIterator(options)
		defer it.Close()

		it.Seek(append([]byte(prefixStr), upperBound...))
		if !it.ValidForPrefix(prefix) {
			return nil
		}
		raw, err := it.Item().ValueCopy(nil)
		if err != nil {
			return err
		}
		message, err := decodeMessage(raw)
		if err != nil {
			return err
		}
		last = &message
		return nil
	})
	if err != nil {
		return nil, storeError("last message", err)
	}
	return last, nil
}

// ListMessages scans a conversation newest first.
// SentBefore positions the reverse seek and SentAfter ends the scan, so the
// time bounds never walk keys outside the requested range. A bound the key
// layout cannot encode is left to the decoded record check only, as are the
// remaining criteria. Total counts every match.
func (m MessageRepository) ListMessages(conversationID uuid.UUID, filter domain.MessageFilter, offset, limit int) ([]domain.Message, int, error) {
	var (
		messages []domain.Message
		total    int
	)
	err := m.db.View(func(txn *badger.Txn) error {
		prefixStr := messageConversationPrefix(conversationID)
		prefix := []byte(prefixStr)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		seekKey := append([]byte(prefixStr), upperBound...)
		if before, ok := keyNanos(filter.SentBefore); ok {
			seekKey = []byte(fmt.Sprintf("%s%019d:%s", prefixStr, before, upperBound))
		}
		after, stopAtAfter := keyNanos(filter.SentAfter)

		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			if stopAtAfter {
				nanos, err := parseMessageTimestamp(prefixStr, item.Key())
				if err != nil {
					return err
				}
				if nanos < after {
					break
				}
			}
			var message domain.Message
			err := item.Value(func(value []byte) (err error) {
				message, err = decodeMessage(value)
				return err
			})
			if err != nil {
				return err
			}
			if !filter.Matches(message) {
				continue
			}
			if total >= offset && len(messages) < limit {
				messages = append(messages, message)
			}
			total++
		}
		return nil
	})
	if err != nil {
		return nil, 0, storeError("list messages", err)
	}
	m.log.Debug(fmt.Sprintf("Listed %d of %d messages", len(messages), total), "conversation_id", conversationID)
	return messages, total, nil
}
