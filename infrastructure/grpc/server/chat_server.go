package server

import (
	"chat-gate/auth"
	"chat-gate/contract"
	"chat-gate/domain"
	"chat-gate/errors"
	"chat-gate/pipeline"
	"chat-gate/policy"
	pb "chat-gate/proto/chat/v1"
	"chat-gate/services"
	"context"
	stderrors "errors"
	"log/slog"

	"github.com/google/uuid"
)

// IdentityResolver loads the user behind an authenticated user id.
type IdentityResolver interface {
	ResolveIdentity(userID uuid.UUID) (*domain.User, error)
}

// ChatServer adapts the gRPC surface to the chat service. Every RPC is
// described as a pipeline.Request and only reaches the service once the
// pipeline admitted it.
type ChatServer struct {
	pb.UnimplementedConversationServiceServer
	log        *slog.Logger
	chat       services.IChatService
	identities IdentityResolver
	pipeline   *pipeline.Pipeline
	clock      contract.Clock
}

func NewChatServer(log *slog.Logger, chat services.IChatService, identities IdentityResolver,
	gate *pipeline.Pipeline, clock contract.Clock) *ChatServer {
	return &ChatServer{log: log, chat: chat, identities: identities, pipeline: gate, clock: clock}
}

func (s *ChatServer) CreateConversation(ctx context.Context, in *pb.CreateConversationRequest) (*pb.CreateConversationResponse, error) {
	participantIDs, err := parseIDs("participant_ids", in.GetParticipantIds())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	var conversation domain.Conversation
	err = s.serve(ctx, policy.MethodCreate, pipeline.ResourceConversation, nil,
		func(ctx context.Context, identity *domain.User) (err error) {
			conversation, err = s.chat.CreateConversation(ctx, identity, participantIDs)
			return err
		})
	if err != nil {
		return nil, err
	}
	return &pb.CreateConversationResponse{Conversation: toConversation(conversation)}, nil
}

func (s *ChatServer) GetConversation(ctx context.Context, in *pb.GetConversationRequest) (*pb.GetConversationResponse, error) {
	conversationID, err := parseID("conversation_id", in.GetConversationId())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	var conversation domain.Conversation
	err = s.serve(ctx, policy.MethodRead, pipeline.ResourceConversation, &conversationID,
		func(ctx context.Context, identity *domain.User) (err error) {
			conversation, err = s.chat.GetConversation(ctx, identity, conversationID)
			return err
		})
	if err != nil {
		return nil, err
	}
	return &pb.GetConversationResponse{Conversation: toConversation(conversation)}, nil
}

func (s *ChatServer) ListConversations(ctx context.Context, in *pb.ListConversationsRequest) (*pb.ListConversationsResponse, error) {
	var page domain.Page[domain.Conversation]
	err := s.serve(ctx, policy.MethodRead, pipeline.ResourceConversation, nil,
		func(ctx context.Context, identity *domain.User) (err error) {
			page, err = s.chat.ListConversations(ctx, identity, toPageRequest(in.GetPage()))
			return err
		})
	if err != nil {
		return nil, err
	}
	return &pb.ListConversationsResponse{Conversations: toConversations(page.Items), Page: toPageInfo(page)}, nil
}

func (s *ChatServer) ListMessages(ctx context.Context, in *pb.ListMessagesRequest) (*pb.ListMessagesResponse, error) {
	conversationID, err := parseID("conversation_id", in.GetConversationId())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	filter, err := toMessageFilter(in)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	var page domain.Page[domain.Message]
	err = s.serve(ctx, policy.MethodRead, pipeline.ResourceMessage, &conversationID,
		func(ctx context.Context, identity *domain.User) (err error) {
			page, err = s.chat.ListMessages(ctx, identity, conversationID, toPageRequest(in.GetPage()), filter)
			return err
		})
	if err != nil {
		return nil, err
	}
	return &pb.ListMessagesResponse{Messages: toMessages(page.Items), Page: toPageInfo(page)}, nil
}

func (s *ChatServer) PostMessage(ctx context.Context, in *pb.PostMessageRequest) (*pb.PostMessageResponse, error) {
	conversationID, err := parseID("conversation_id", in.GetConversationId())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	var message domain.Message
	err = s.serve(ctx, policy.MethodCreate, pipeline.ResourceMessage, &conversationID,
		func(ctx context.Context, identity *domain.User) (err error) {
			message, err = s.chat.PostMessage(ctx, identity, conversationID, in.GetBody())
			return err
		})
	if err != nil {
		return nil, err
	}
	return &pb.PostMessageResponse{Message: toMessage(message)}, nil
}

// AddParticipants modifies an existing conversation, so the role gate asks
// for host or admin on top of membership.
func (s *ChatServer) AddParticipants(ctx context.Context, in *pb.AddParticipantsRequest) (*pb.AddParticipantsResponse, error) {
	conversationID, err := parseID("conversation_id", in.GetConversationId())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	participantIDs, err := parseIDs("participant_ids", in.GetParticipantIds())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	var conversation domain.Conversation
	err = s.serve(ctx, policy.MethodPartialUpdate, pipeline.ResourceConversation, &conversationID,
		func(ctx context.Context, identity *domain.User) (err error) {
			conversation, err = s.chat.AddParticipants(ctx, identity, conversationID, participantIDs)
			return err
		})
	if err != nil {
		return nil, err
	}
	return &pb.AddParticipantsResponse{Conversation: toConversation(conversation)}, nil
}

func (s *ChatServer) SearchMessages(ctx context.Context, in *pb.SearchMessagesRequest) (*pb.SearchMessagesResponse, error) {
	var page domain.Page[domain.Message]
	err := s.serve(ctx, policy.MethodRead, pipeline.ResourceMessage, nil,
		func(ctx context.Context, identity *domain.User) (err error) {
			page, err = s.chat.SearchMessages(ctx, identity, in.GetText(), toPageRequest(in.GetPage()))
			return err
		})
	if err != nil {
		return nil, err
	}
	return &pb.SearchMessagesResponse{Messages: toMessages(page.Items), Page: toPageInfo(page)}, nil
}

// serve runs the pipeline then the operation, and maps the outcome to a gRPC status.
func (s *ChatServer) serve(ctx context.Context, method policy.Method, resource pipeline.Resource,
	conversationID *uuid.UUID, operation func(ctx context.Context, identity *domain.User) error) error {
	identity, err := s.identity(ctx)
	if err != nil {
		return errors.MapToGRPCError(err)
	}
	req := pipeline.Request{
		Identity:       identity,
		Method:         method,
		Resource:       resource,
		ConversationID: conversationID,
		ClientKey:      ClientKey(ctx),
		Now:            s.clock.Now(),
	}
	err = s.pipeline.Do(ctx, req, func(ctx context.Context) error {
		return operation(ctx, identity)
	})
	if err != nil {
		s.log.Debug("Request failed",
			"user", displayName(identity),
			"method", method.String(),
			"resource", resource.String(),
			"error", err)
	}
	return errors.MapToGRPCError(err)
}

// identity is nil for anonymous callers and for tokens of users that no
// longer exist.
func (s *ChatServer) identity(ctx context.Context) (*domain.User, error) {
	userID, ok := auth.UserIDFrom(ctx)
	if !ok {
		return nil, nil
	}
	user, err := s.identities.ResolveIdentity(userID)
	if stderrors.Is(err, errors.ErrUserNotFound) {
		s.log.Debug("Token for unknown user", "user_id", userID)
		return nil, nil
	}
	return user, err
}

func displayName(identity *domain.User) string {
	if identity == nil {
		return "Anonymous"
	}
	return identity.DisplayName
}
