package repositories

import (
	"chat-gate/errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Key layout. Timestamps are zero padded to 19 digits so the lexicographical
// order of keys is the chronological order, and reverse prefix scans return
// the newest entries first.
//
//	user:{id}                                    -> user record
//	user-email:{email}                           -> user id
//	conv:{id}                                    -> conversation record
//	member:{user}:{created 019d}:{conversation}  -> empty (participant index)
//	msg:{conversation}:{sent 019d}:{seq 020d}    -> message record
//	msg-id:{id}                                  -> msg key
const (
	userPrefix         = "user:"
	userEmailPrefix    = "user-email:"
	conversationPrefix = "conv:"
	memberPrefix       = "member:"
	messagePrefix      = "msg:"
	messageIDPrefix    = "msg-id:"
)

// upperBound sorts after any key sharing the prefix, used as reverse seek start.
const upperBound = "\xff"

// Key timestamps are nanoseconds since the epoch, which only cover the years
// 1678 to 2262.
var (
	minKeyTime = time.Unix(0, math.MinInt64)
	maxKeyTime = time.Unix(0, math.MaxInt64)
)

// keyNanos returns the key timestamp of t, ok is false when t is nil or
// outside the range keys can hold.
func keyNanos(t *time.Time) (int64, bool) {
	if t == nil || t.Before(minKeyTime) || t.After(maxKeyTime) {
		return 0, false
	}
	return t.UnixNano(), true
}

func userKey(id uuid.UUID) []byte {
	return []byte(userPrefix + id.String())
}

func userEmailKey(email string) []byte {
	return []byte(userEmailPrefix + strings.ToLower(email))
}

func conversationKey(id uuid.UUID) []byte {
	return []byte(conversationPrefix + id.String())
}

func memberIndexPrefix(userID uuid.UUID) string {
	return memberPrefix + userID.String() + ":"
}

func memberKey(userID uuid.UUID, createdAt time.Time, conversationID uuid.UUID) []byte {
	return []byte(fmt.Sprintf("%s%019d:%s", memberIndexPrefix(userID), createdAt.UnixNano(), conversationID))
}

func messageConversationPrefix(conversationID uuid.UUID) string {
	return messagePrefix + conversationID.String() + ":"
}

func messageKey(conversationID uuid.UUID, sentAt time.Time, seq uint64) []byte {
	return []byte(fmt.Sprintf("%s%019d:%020d", messageConversationPrefix(conversationID), sentAt.UnixNano(), seq))
}

func messageIDKey(id uuid.UUID) []byte {
	return []byte(messageIDPrefix + id.String())
}

// parseMemberKey extracts the conversation id from a participant index key.
func parseMemberKey(prefix string, key []byte) (uuid.UUID, error) {
	rest := string(key[len(prefix):])
	_, raw, ok := strings.Cut(rest, ":")
	if !ok {
		return uuid.Nil, fmt.Errorf("%w: malformed member key %q", errors.ErrInvalidRecord, key)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: member key %q: %v", errors.ErrInvalidRecord, key, err)
	}
	return id, nil
}

// parseMessageTimestamp extracts the padded send time of a message key.
func parseMessageTimestamp(prefix string, key []byte) (int64, error) {
	rest := string(key[len(prefix):])
	ts, _, ok := strings.Cut(rest, ":")
	if !ok {
		return 0, fmt.Errorf("%w: malformed message key %q", errors.ErrInvalidRecord, key)
	}
	nanos, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: message key %q: %v", errors.ErrInvalidRecord, key, err)
	}
	return nanos, nil
}
