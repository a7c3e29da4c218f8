//go:generate go run go.uber.org/mock/mockgen -source=message_index.go -destination=../mocks/mock_message_index.go -package=mocks
package search

import (
	"chat-gate/domain"
	"context"
	"fmt"
	"log/slog"

	"github.com/blugelabs/bluge"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

const (
	fieldID             = "_id"
	fieldBody           = "body"
	fieldConversationID = "conversation_id"
	fieldSenderID       = "sender_id"
)

// IMessageIndex is a full-text index over message bodies.
// It is fed asynchronously, so a freshly posted message may not be
// searchable yet.
type IMessageIndex interface {
	Index(message domain.Message) error
	Search(ctx context.Context, text string, conversationIDs []uuid.UUID, offset, limit int) ([]uuid.UUID, int, error)
}

type MessageIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewMessageIndex(writer *bluge.Writer, log *slog.Logger) *MessageIndex {
	return &MessageIndex{writer: writer, log: log}
}

// Index upserts the message document, indexing twice is harmless.
func (i *MessageIndex) Index(message domain.Message) error {
	doc := bluge.NewDocument(message.ID.String()).
		AddField(bluge.NewTextField(fieldBody, message.Body)).
		AddField(bluge.NewKeywordField(fieldConversationID, message.ConversationID.String()).StoreValue()).
		AddField(bluge.NewKeywordField(fieldSenderID, message.SenderID.String()))
	if err := i.writer.Update(doc.ID(), doc); err != nil {
		return fmt.Errorf("index message %s: %w", message.ID, err)
	}
	return nil
}

// Search returns ids of messages matching text, restricted to the given
// conversations, best match first, along with the total number of hits.
func (i *MessageIndex) Search(ctx context.Context, text string, conversationIDs []uuid.UUID, offset, limit int) ([]uuid.UUID, int, error) {
	if text == "" || len(conversationIDs) == 0 || limit <= 0 {
		return nil, 0, nil
	}

	scope := bluge.NewBooleanQuery().SetMinShould(1)
	for _, id := range conversationIDs {
		scope.AddShould(bluge.NewTermQuery(id.String()).SetField(fieldConversationID))
	}
	query := bluge.NewBooleanQuery().
		AddMust(bluge.NewMatchQuery(text).SetField(fieldBody)).
		AddMust(scope)

	reader, err := i.writer.Reader()
	if err != nil {
		return nil, 0, fmt.Errorf("open index reader: %w", err)
	}
	defer func() { _ = reader.Close() }()

	request := bluge.NewTopNSearch(limit, query).SetFrom(offset).WithStandardAggregations()
	matches, err := reader.Search(ctx, request)
	if err != nil {
		return nil, 0, fmt.Errorf("search messages: %w", err)
	}

	var ids []string
	match, err := matches.Next()
	for err == nil && match != nil {
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == fieldID {
				ids = append(ids, string(value))
			}
			return true
		})
		if err != nil {
			break
		}
		match, err = matches.Next()
	}
	if err != nil {
		return nil, 0, fmt.Errorf("iterate search results: %w", err)
	}

	total := int(matches.Aggregations().Count())
	i.log.Debug("Searched messages", "query", text, "conversations", len(conversationIDs), "hits", total)
	return lo.FilterMap(ids, func(raw string, _ int) (uuid.UUID, bool) {
		id, err := uuid.Parse(raw)
		return id, err == nil
	}), total, nil
}
