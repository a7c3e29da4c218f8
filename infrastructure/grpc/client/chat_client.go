package client

import (
	pb "chat-gate/proto/chat/v1"
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

// ChatClient wraps the generated conversation client and attaches the
// bearer token, if any, to every call.
type ChatClient struct {
	client pb.ConversationServiceClient
	token  string
}

func NewChatClient(cc grpc.ClientConnInterface) *ChatClient {
	return &ChatClient{client: pb.NewConversationServiceClient(cc)}
}

// Dial opens a plaintext connection, the server sits behind a TLS terminating proxy.
func Dial(target string) (*grpc.ClientConn, error) {
	return grpc.NewClient(target, grpc.WithTransportCredentials(insecure.NewCredentials()))
}

// WithToken returns a copy of the client authenticating as the token holder.
func (c *ChatClient) WithToken(token string) *ChatClient {
	return &ChatClient{client: c.client, token: token}
}

func (c *ChatClient) CreateConversation(ctx context.Context, in *pb.CreateConversationRequest) (*pb.CreateConversationResponse, error) {
	return c.client.CreateConversation(c.authorize(ctx), in)
}

func (c *ChatClient) GetConversation(ctx context.Context, in *pb.GetConversationRequest) (*pb.GetConversationResponse, error) {
	return c.client.GetConversation(c.authorize(ctx), in)
}

func (c *ChatClient) ListConversations(ctx context.Context, in *pb.ListConversationsRequest) (*pb.ListConversationsResponse, error) {
	return c.client.ListConversations(c.authorize(ctx), in)
}

func (c *ChatClient) ListMessages(ctx context.Context, in *pb.ListMessagesRequest) (*pb.ListMessagesResponse, error) {
	return c.client.ListMessages(c.authorize(ctx), in)
}

func (c *ChatClient) PostMessage(ctx context.Context, in *pb.PostMessageRequest) (*pb.PostMessageResponse, error) {
	return c.client.PostMessage(c.authorize(ctx), in)
}

func (c *ChatClient) AddParticipants(ctx context.Context, in *pb.AddParticipantsRequest) (*pb.AddParticipantsResponse, error) {
	return c.client.AddParticipants(c.authorize(ctx), in)
}

func (c *ChatClient) SearchMessages(ctx context.Context, in *pb.SearchMessagesRequest) (*pb.SearchMessagesResponse, error) {
	return c.client.SearchMessages(c.authorize(ctx), in)
}

func (c *ChatClient) authorize(ctx context.Context) context.Context {
	if c.token == "" {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+c.token)
}
