package server

import (
	"chat-gate/domain"
	"chat-gate/errors"
	pb "chat-gate/proto/chat/v1"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func parseID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, errors.Validation(field, "must be a valid id")
	}
	return id, nil
}

func parseIDs(field string, values []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(values))
	for _, value := range values {
		id, err := parseID(field, value)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// parseTime returns nil when the bound is absent.
func parseTime(field string, ts *timestamppb.Timestamp) (*time.Time, error) {
	if ts == nil {
		return nil, nil
	}
	if err := ts.CheckValid(); err != nil {
		return nil, errors.Validation(field, "must be a valid timestamp")
	}
	return lo.ToPtr(ts.AsTime()), nil
}

func toPageRequest(p *pb.PageRequest) domain.PageRequest {
	return domain.PageRequest{Page: int(p.GetPage()), PageSize: int(p.GetPageSize())}
}

func toPageInfo[T any](p domain.Page[T]) *pb.PageInfo {
	return &pb.PageInfo{
		Page:     int32(p.Page),
		PageSize: int32(p.PageSize),
		Total:    int32(min(p.Total, math.MaxInt32)),
		HasNext:  p.HasNext,
	}
}

func toConversation(c domain.Conversation) *pb.Conversation {
	return &pb.Conversation{
		Id:             c.ID.String(),
		ParticipantIds: lo.Map(c.Participants.IDs(), func(id uuid.UUID, _ int) string { return id.String() }),
		CreatedAt:      timestamppb.New(c.CreatedAt),
	}
}

func toConversations(conversations []domain.Conversation) []*pb.Conversation {
	return lo.Map(conversations, func(c domain.Conversation, _ int) *pb.Conversation { return toConversation(c) })
}

func toMessage(m domain.Message) *pb.Message {
	return &pb.Message{
		Id:             m.ID.String(),
		ConversationId: m.ConversationID.String(),
		SenderId:       m.SenderID.String(),
		Body:           m.Body,
		SentAt:         timestamppb.New(m.SentAt),
		Seq:            m.Seq,
	}
}

func toMessages(messages []domain.Message) []*pb.Message {
	return lo.Map(messages, func(m domain.Message, _ int) *pb.Message { return toMessage(m) })
}

func toMessageFilter(req *pb.ListMessagesRequest) (domain.MessageFilter, error) {
	sentAfter, err := parseTime("sent_after", req.GetSentAfter())
	if err != nil {
		return domain.MessageFilter{}, err
	}
	sentBefore, err := parseTime("sent_before", req.GetSentBefore())
	if err != nil {
		return domain.MessageFilter{}, err
	}
	filter := domain.MessageFilter{
		SentAfter:  sentAfter,
		SentBefore: sentBefore,
		Contains:   req.GetContains(),
	}
	if req.GetSenderId() != "" {
		senderID, err := parseID("sender_id", req.GetSenderId())
		if err != nil {
			return domain.MessageFilter{}, err
		}
		filter.SenderID = &senderID
	}
	return filter, nil
}
