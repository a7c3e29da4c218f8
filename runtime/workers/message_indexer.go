package workers

import (
	"chat-gate/domain/event"
	"chat-gate/search"
	"context"
	"log/slog"
)

// MessageIndexer feeds the search index from MessagePosted events.
// Indexing is best effort: a failure is logged and the message stays
// readable through listings, only search misses it.
type MessageIndexer struct {
	log    *slog.Logger
	events <-chan event.DomainEvent
	index  search.IMessageIndex
}

func NewMessageIndexer(log *slog.Logger, events <-chan event.DomainEvent, index search.IMessageIndex) *MessageIndexer {
	return &MessageIndexer{log: log, events: events, index: index}
}

func (w *MessageIndexer) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping message indexer")
			return nil
		case evt, ok := <-w.events:
			if !ok {
				return nil
			}
			w.handle(evt)
		}
	}
}

func (w *MessageIndexer) handle(evt event.DomainEvent) {
	switch e := evt.(type) {
	case event.MessagePosted:
		if err := w.index.Index(e.Message); err != nil {
			w.log.Error("Failed to index message", "message_id", e.Message.ID, "error", err)
		}
	default:
		w.log.Debug("Ignoring event", "conversation_id", evt.ConversationID())
	}
}
