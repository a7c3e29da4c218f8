package repositories

import (
	"chat-gate/domain"
	"chat-gate/errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/encoding/protowire"
)

// Records are stored in protobuf wire format. Field numbers are part of the
// on-disk format: never renumber, only append.

const (
	userID          protowire.Number = 1
	userDisplayName protowire.Number = 2
	userEmail       protowire.Number = 3
	userRole        protowire.Number = 4
	userCreatedAt   protowire.Number = 5
)

const (
	conversationID          protowire.Number = 1
	conversationParticipant protowire.Number = 2 // repeated
	conversationCreatedAt   protowire.Number = 3
)

const (
	messageID             protowire.Number = 1
	messageConversationID protowire.Number = 2
	messageSenderID       protowire.Number = 3
	messageBody           protowire.Number = 4
	messageSentAt         protowire.Number = 5
	messageSeq            protowire.Number = 6
)

func appendString(b []byte, num protowire.Number, s string) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func appendUUID(b []byte, num protowire.Number, id uuid.UUID) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, id[:])
}

func appendTime(b []byte, num protowire.Number, t time.Time) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(t.UnixNano()))
}

func appendUint(b []byte, num protowire.Number, v uint64) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

// field is one decoded wire field, only the member matching its type is set.
type field struct {
	num    protowire.Number
	bytes  []byte
	varint uint64
}

// decodeFields walks the buffer and hands every field to fn.
// Unknown wire types are skipped so older binaries can read newer records.
func decodeFields(b []byte, fn func(f field) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("%w: %v", errors.ErrInvalidRecord, protowire.ParseError(n))
		}
		b = b[n:]

		f := field{num: num}
		switch typ {
		case protowire.BytesType:
			v, m := protowire.ConsumeBytes(b)
			if m < 0 {
				return fmt.Errorf("%w: %v", errors.ErrInvalidRecord, protowire.ParseError(m))
			}
			f.bytes, n = v, m
		case protowire.VarintType:
			v, m := protowire.ConsumeVarint(b)
			if m < 0 {
				return fmt.Errorf("%w: %v", errors.ErrInvalidRecord, protowire.ParseError(m))
			}
			f.varint, n = v, m
		default:
			m := protowire.ConsumeFieldValue(num, typ, b)
			if m < 0 {
				return fmt.Errorf("%w: %v", errors.ErrInvalidRecord, protowire.ParseError(m))
			}
			b = b[m:]
			continue
		}
		b = b[n:]
		if err := fn(f); err != nil {
			return err
		}
	}
	return nil
}

func (f field) uuid() (uuid.UUID, error) {
	id, err := uuid.FromBytes(f.bytes)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: field %d: %v", errors.ErrInvalidRecord, f.num, err)
	}
	return id, nil
}

func (f field) time() time.Time {
	return time.Unix(0, int64(f.varint)).UTC()
}

func encodeUser(u domain.User) []byte {
	var b []byte
	b = appendUUID(b, userID, u.ID)
	b = appendString(b, userDisplayName, u.DisplayName)
	b = appendString(b, userEmail, u.Email)
	b = appendString(b, userRole, string(u.Role))
	b = appendTime(b, userCreatedAt, u.CreatedAt)
	return b
}

func decodeUser(b []byte) (domain.User, error) {
	var u domain.User
	err := decodeFields(b, func(f field) (err error) {
		switch f.num {
		case userID:
			u.ID, err = f.uuid()
		case userDisplayName:
			u.DisplayName = string(f.bytes)
		case userEmail:
			u.Email = string(f.bytes)
		case userRole:
			u.Role, err = domain.ParseRole(string(f.bytes))
		case userCreatedAt:
			u.CreatedAt = f.time()
		}
		return err
	})
	if err != nil {
		return domain.User{}, err
	}
	if u.Role == "" {
		u.Role = domain.RoleGuest
	}
	return u, nil
}

func encodeConversation(c domain.Conversation) []byte {
	var b []byte
	b = appendUUID(b, conversationID, c.ID)
	for _, id := range c.Participants.IDs() {
		b = appendUUID(b, conversationParticipant, id)
	}
	b = appendTime(b, conversationCreatedAt, c.CreatedAt)
	return b
}

func decodeConversation(b []byte) (domain.Conversation, error) {
	var (
		c            domain.Conversation
		participants []uuid.UUID
	)
	err := decodeFields(b, func(f field) (err error) {
		switch f.num {
		case conversationID:
			c.ID, err = f.uuid()
		case conversationParticipant:
			var id uuid.UUID
			if id, err = f.uuid(); err == nil {
				participants = append(participants, id)
			}
		case conversationCreatedAt:
			c.CreatedAt = f.time()
		}
		return err
	})
	if err != nil {
		return domain.Conversation{}, err
	}
	c.Participants = domain.NewParticipantSet(participants...)
	return c, nil
}

func encodeMessage(m domain.Message) []byte {
	var b []byte
	b = appendUUID(b, messageID, m.ID)
	b = appendUUID(b, messageConversationID, m.ConversationID)
	b = appendUUID(b, messageSenderID, m.SenderID)
	b = appendString(b, messageBody, m.Body)
	b = appendTime(b, messageSentAt, m.SentAt)
	b = appendUint(b, messageSeq, m.Seq)
	return b
}

func decodeMessage(b []byte) (domain.Message, error) {
	var m domain.Message
	err := decodeFields(b, func(f field) (err error) {
		switch f.num {
		case messageID:
			m.ID, err = f.uuid()
		case messageConversationID:
			m.ConversationID, err = f.uuid()
		case messageSenderID:
			m.SenderID, err = f.uuid()
		case messageBody:
			m.Body = string(f.bytes)
		case messageSentAt:
			m.SentAt = f.time()
		case messageSeq:
			m.Seq = f.varint
		}
		return err
	})
	if err != nil {
		return domain.Message{}, err
	}
	return m, nil
}
