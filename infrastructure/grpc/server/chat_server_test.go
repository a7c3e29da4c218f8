package server

import (
	"chat-gate/auth"
	"chat-gate/contract"
	"chat-gate/domain"
	"chat-gate/domain/event"
	"chat-gate/infrastructure/grpc/client"
	"chat-gate/pipeline"
	"chat-gate/policy"
	pb "chat-gate/proto/chat/v1"
	"chat-gate/repositories"
	"chat-gate/runtime/workers"
	"chat-gate/search"
	"chat-gate/services"
	"context"
	"log/slog"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type chatServerSuite struct {
	suite.Suite
	mu     sync.Mutex
	now    time.Time
	tokens auth.Tokens
	chat   *client.ChatClient
	alice  domain.User
	bob    domain.User
	carol  domain.User
}

func TestChatServerSuite(t *testing.T) {
	suite.Run(t, &chatServerSuite{})
}

func (s *chatServerSuite) clock() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

func (s *chatServerSuite) setClock(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *chatServerSuite) SetupTest() {
	t := s.T()
	s.setClock(time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC))
	s.tokens = auth.NewTokens("test-secret", auth.DefaultIssuer)
	log := slog.Default()
	clock := contract.ClockFunc(s.clock)

	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	s.Require().NoError(err)
	writer, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	s.Require().NoError(err)

	index := search.NewMessageIndex(writer, log)
	events := make(chan event.DomainEvent, 16)
	users := repositories.NewUserRepository(db)
	chat := services.NewChatService(log,
		users,
		repositories.NewConversationRepository(db, log),
		repositories.NewMessageRepository(db, log),
		index, clock, events)
	gate := pipeline.NewDefault(log, pipeline.Gates{
		TimeWindow:  policy.NewTimeWindowGate(policy.DefaultFromHour, policy.DefaultToHour, time.UTC),
		RateLimiter: policy.NewRateLimiter(policy.DefaultRateLimit, policy.DefaultRateWindow),
		Role:        policy.NewRoleGate(),
		Resolver:    chat,
	}).WithTimeout(time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = workers.NewMessageIndexer(log, events, index).Run(ctx) }()

	listener := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(AuthInterceptor(log, s.tokens)))
	pb.RegisterConversationServiceServer(srv, NewChatServer(log, chat, chat, gate, clock))
	go func() { _ = srv.Serve(listener) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	s.Require().NoError(err)

	t.Cleanup(func() {
		_ = conn.Close()
		srv.Stop()
		cancel()
		_ = writer.Close()
		_ = db.Close()
	})

	s.chat = client.NewChatClient(conn)
	registry := services.NewUserService(log, users, clock)
	s.alice = s.register(registry, "alice", domain.RoleHost)
	s.bob = s.register(registry, "bob", domain.RoleGuest)
	s.carol = s.register(registry, "carol", domain.RoleGuest)
}

func (s *chatServerSuite) register(registry *services.UserService, name string, role domain.Role) domain.User {
	user, err := registry.Register(name, name+"@example.com", string(role))
	s.Require().NoError(err)
	return user
}

func (s *chatServerSuite) as(user domain.User) *client.ChatClient {
	token, err := s.tokens.Generate(user.ID, []string{string(user.Role)}, time.Hour)
	s.Require().NoError(err)
	return s.chat.WithToken(token)
}

func (s *chatServerSuite) requireCode(err error, code codes.Code) {
	s.Require().Error(err)
	s.Require().Equal(code, status.Code(err), err.Error())
}

func (s *chatServerSuite) createConversation(owner domain.User, participants ...domain.User) *pb.Conversation {
	ids := make([]string, 0, len(participants))
	for _, p := range participants {
		ids = append(ids, p.ID.String())
	}
	resp, err := s.as(owner).CreateConversation(context.Background(), &pb.CreateConversationRequest{ParticipantIds: ids})
	s.Require().NoError(err)
	return resp.GetConversation()
}

func (s *chatServerSuite) TestParticipants_Post_And_Read() {
	ctx := context.Background()
	conversation := s.createConversation(s.alice, s.bob)
	s.ElementsMatch([]string{s.alice.ID.String(), s.bob.ID.String()}, conversation.GetParticipantIds())

	posted, err := s.as(s.bob).PostMessage(ctx, &pb.PostMessageRequest{ConversationId: conversation.GetId(), Body: "hi"})
	s.Require().NoError(err)
	s.Equal(s.bob.ID.String(), posted.GetMessage().GetSenderId())
	s.Equal(uint64(1), posted.GetMessage().GetSeq())

	listed, err := s.as(s.alice).ListMessages(ctx, &pb.ListMessagesRequest{ConversationId: conversation.GetId()})
	s.Require().NoError(err)
	s.Require().Len(listed.Messages, 1)
	s.Equal("hi", listed.Messages[0].GetBody())
	s.True(proto.Equal(&pb.PageInfo{Page: 1, PageSize: domain.DefaultPageSize, Total: 1}, listed.GetPage()), listed.GetPage().String())

	_, err = s.as(s.carol).ListMessages(ctx, &pb.ListMessagesRequest{ConversationId: conversation.GetId()})
	s.requireCode(err, codes.PermissionDenied)
	_, err = s.as(s.carol).GetConversation(ctx, &pb.GetConversationRequest{ConversationId: conversation.GetId()})
	s.requireCode(err, codes.PermissionDenied)
	_, err = s.as(s.carol).PostMessage(ctx, &pb.PostMessageRequest{ConversationId: conversation.GetId(), Body: "let me in"})
	s.requireCode(err, codes.PermissionDenied)
}

func (s *chatServerSuite) TestAnonymous_Callers_Are_Unauthenticated() {
	ctx := context.Background()
	conversation := s.createConversation(s.alice, s.bob)

	_, err := s.chat.PostMessage(ctx, &pb.PostMessageRequest{ConversationId: conversation.GetId(), Body: "hi"})
	s.requireCode(err, codes.Unauthenticated)

	_, err = s.chat.WithToken("not-a-jwt").ListConversations(ctx, &pb.ListConversationsRequest{})
	s.requireCode(err, codes.Unauthenticated)

	forged, err := auth.NewTokens("other-secret", auth.DefaultIssuer).Generate(s.alice.ID, nil, time.Hour)
	s.Require().NoError(err)
	_, err = s.chat.WithToken(forged).GetConversation(ctx, &pb.GetConversationRequest{ConversationId: conversation.GetId()})
	s.requireCode(err, codes.Unauthenticated)

	unknown, err := s.tokens.Generate(uuid.New(), nil, time.Hour)
	s.Require().NoError(err)
	_, err = s.chat.WithToken(unknown).ListConversations(ctx, &pb.ListConversationsRequest{})
	s.requireCode(err, codes.Unauthenticated)
}

func (s *chatServerSuite) TestTime_Window_Comes_Before_Authentication() {
	ctx := context.Background()
	s.setClock(time.Date(2026, 3, 14, 23, 0, 0, 0, time.UTC))

	_, err := s.chat.ListConversations(ctx, &pb.ListConversationsRequest{})
	s.requireCode(err, codes.PermissionDenied)
	_, err = s.as(s.alice).ListConversations(ctx, &pb.ListConversationsRequest{})
	s.requireCode(err, codes.PermissionDenied)

	s.setClock(time.Date(2026, 3, 14, 21, 59, 0, 0, time.UTC))
	_, err = s.as(s.alice).ListConversations(ctx, &pb.ListConversationsRequest{})
	s.Require().NoError(err)
}

func (s *chatServerSuite) TestAdd_Participants_Requires_Elevated_Role() {
	ctx := context.Background()
	conversation := s.createConversation(s.alice, s.bob)
	add := &pb.AddParticipantsRequest{ConversationId: conversation.GetId(), ParticipantIds: []string{s.carol.ID.String()}}

	_, err := s.as(s.bob).AddParticipants(ctx, add)
	s.requireCode(err, codes.PermissionDenied)

	updated, err := s.as(s.alice).AddParticipants(ctx, add)
	s.Require().NoError(err)
	s.Contains(updated.GetConversation().GetParticipantIds(), s.carol.ID.String())

	got, err := s.as(s.carol).GetConversation(ctx, &pb.GetConversationRequest{ConversationId: conversation.GetId()})
	s.Require().NoError(err)
	s.Len(got.GetConversation().GetParticipantIds(), 3)
}

func (s *chatServerSuite) TestRate_Limit_Counts_Posts_Per_Client_Key() {
	conversation := s.createConversation(s.alice, s.bob)
	post := &pb.PostMessageRequest{ConversationId: conversation.GetId(), Body: "ping"}
	ctx := metadata.AppendToOutgoingContext(context.Background(), "x-forwarded-for", "203.0.113.9, 10.0.0.1")
	alice := s.as(s.alice)
	for range policy.DefaultRateLimit {
		_, err := alice.PostMessage(ctx, post)
		s.Require().NoError(err)
	}
	_, err := alice.PostMessage(ctx, post)
	s.requireCode(err, codes.ResourceExhausted)

	// Reads are not counted
	_, err = alice.ListMessages(ctx, &pb.ListMessagesRequest{ConversationId: conversation.GetId()})
	s.Require().NoError(err)

	other := metadata.AppendToOutgoingContext(context.Background(), "x-forwarded-for", "198.51.100.4")
	_, err = s.as(s.bob).PostMessage(other, post)
	s.Require().NoError(err)

	// The ledger empties once the window has elapsed
	s.setClock(s.clock().Add(time.Minute))
	_, err = alice.PostMessage(ctx, post)
	s.Require().NoError(err)
}

func (s *chatServerSuite) TestMalformed_And_Missing_Targets() {
	ctx := context.Background()
	alice := s.as(s.alice)

	_, err := alice.GetConversation(ctx, &pb.GetConversationRequest{ConversationId: "42"})
	s.requireCode(err, codes.InvalidArgument)

	_, err = alice.GetConversation(ctx, &pb.GetConversationRequest{ConversationId: uuid.NewString()})
	s.requireCode(err, codes.NotFound)

	conversation := s.createConversation(s.alice, s.bob)
	_, err = alice.PostMessage(ctx, &pb.PostMessageRequest{ConversationId: conversation.GetId(), Body: ""})
	s.requireCode(err, codes.InvalidArgument)

	_, err = alice.ListMessages(ctx, &pb.ListMessagesRequest{ConversationId: conversation.GetId(), SenderId: "bob"})
	s.requireCode(err, codes.InvalidArgument)
}

func (s *chatServerSuite) TestSearch_Finds_Indexed_Messages() {
	ctx := context.Background()
	mine := s.createConversation(s.alice, s.bob)
	theirs := s.createConversation(s.carol, s.bob)

	_, err := s.as(s.bob).PostMessage(ctx, &pb.PostMessageRequest{ConversationId: mine.GetId(), Body: "deploy friday"})
	s.Require().NoError(err)
	_, err = s.as(s.carol).PostMessage(ctx, &pb.PostMessageRequest{ConversationId: theirs.GetId(), Body: "deploy monday"})
	s.Require().NoError(err)

	alice := s.as(s.alice)
	var found *pb.SearchMessagesResponse
	s.Require().Eventually(func() bool {
		found, err = alice.SearchMessages(ctx, &pb.SearchMessagesRequest{Text: "deploy"})
		return err == nil && len(found.Messages) == 1
	}, 2*time.Second, 20*time.Millisecond)
	s.Equal("deploy friday", found.Messages[0].GetBody())
	s.Equal(mine.GetId(), found.Messages[0].GetConversationId())
}

func (s *chatServerSuite) TestList_Messages_Time_Bounds_Over_The_Wire() {
	ctx := context.Background()
	conversation := s.createConversation(s.alice, s.bob)
	bob := s.as(s.bob)
	for _, body := range []string{"one", "two", "three"} {
		_, err := bob.PostMessage(ctx, &pb.PostMessageRequest{ConversationId: conversation.GetId(), Body: body})
		s.Require().NoError(err)
	}

	// Bounds far outside the stored range match every message
	listed, err := bob.ListMessages(ctx, &pb.ListMessagesRequest{
		ConversationId: conversation.GetId(),
		SentAfter:      timestamppb.New(time.Date(1500, 1, 1, 0, 0, 0, 0, time.UTC)),
		SentBefore:     timestamppb.New(time.Date(3000, 1, 1, 0, 0, 0, 0, time.UTC)),
	})
	s.Require().NoError(err)
	s.Len(listed.GetMessages(), 3)
	s.Equal(int32(3), listed.GetPage().GetTotal())

	_, err = bob.ListMessages(ctx, &pb.ListMessagesRequest{
		ConversationId: conversation.GetId(),
		SentBefore:     &timestamppb.Timestamp{Seconds: 1 << 62},
	})
	s.requireCode(err, codes.InvalidArgument)
}
