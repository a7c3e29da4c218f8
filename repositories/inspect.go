package repositories

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const detailMaxRunes = 60

// Record is a readable view of a raw entry, used by the inspectors.
type Record struct {
	Key       string
	Kind      string
	EntityID  string
	Timestamp string
	Detail    string
}

// Prefixes lists the key namespaces in the order the inspectors show them.
func Prefixes() []string {
	return []string{userPrefix, userEmailPrefix, conversationPrefix, memberPrefix, messagePrefix, messageIDPrefix}
}

// DescribeRecord decodes an entry from its key namespace. Undecodable values
// are reported in Detail rather than failing the whole listing.
func DescribeRecord(key string, val []byte) Record {
	record := Record{Key: key, Kind: "raw", Timestamp: "-", Detail: fmt.Sprintf("%d bytes", len(val))}
	switch {
	case strings.HasPrefix(key, userEmailPrefix):
		record.Kind = "email index"
		if id, err := uuid.FromBytes(val); err == nil {
			record.EntityID = id.String()
		}
		record.Detail = strings.TrimPrefix(key, userEmailPrefix)
	case strings.HasPrefix(key, userPrefix):
		record.Kind = "user"
		user, err := decodeUser(val)
		if err != nil {
			record.Detail = err.Error()
			return record
		}
		record.EntityID = user.ID.String()
		record.Timestamp = formatTime(user.CreatedAt)
		record.Detail = fmt.Sprintf("%s <%s> %s", user.DisplayName, user.Email, user.Role)
	case strings.HasPrefix(key, conversationPrefix):
		record.Kind = "conversation"
		conversation, err := decodeConversation(val)
		if err != nil {
			record.Detail = err.Error()
			return record
		}
		record.EntityID = conversation.ID.String()
		record.Timestamp = formatTime(conversation.CreatedAt)
		record.Detail = fmt.Sprintf("%d participants", conversation.Participants.Len())
	case strings.HasPrefix(key, memberPrefix):
		record.Kind = "member index"
		parts := strings.Split(strings.TrimPrefix(key, memberPrefix), ":")
		if len(parts) == 3 {
			record.EntityID = parts[2]
			record.Detail = "user " + parts[0]
		}
	case strings.HasPrefix(key, messageIDPrefix):
		record.Kind = "message index"
		record.EntityID = strings.TrimPrefix(key, messageIDPrefix)
		record.Detail = string(val)
	case strings.HasPrefix(key, messagePrefix):
		record.Kind = "message"
		message, err := decodeMessage(val)
		if err != nil {
			record.Detail = err.Error()
			return record
		}
		record.EntityID = message.ID.String()
		record.Timestamp = formatTime(message.SentAt)
		record.Detail = fmt.Sprintf("#%d %s: %s", message.Seq, message.SenderID, truncate(message.Body))
	}
	return record
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func truncate(s string) string {
	if utf8.RuneCountInString(s) <= detailMaxRunes {
		return s
	}
	return string([]rune(s)[:detailMaxRunes]) + "…"
}
