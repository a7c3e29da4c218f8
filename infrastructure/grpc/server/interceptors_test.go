package server

import (
	"chat-gate/auth"
	"context"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
)

func TestClientKey(t *testing.T) {
	req := require.New(t)
	withPeer := peer.NewContext(context.Background(), &peer.Peer{
		Addr: &net.TCPAddr{IP: net.ParseIP("192.0.2.10"), Port: 53211},
	})
	req.Equal("192.0.2.10", ClientKey(withPeer))

	forwarded := metadata.NewIncomingContext(withPeer, metadata.Pairs("x-forwarded-for", " 203.0.113.9 , 10.0.0.1"))
	req.Equal("203.0.113.9", ClientKey(forwarded))

	req.Equal(unknownClient, ClientKey(context.Background()))
}

func TestAuthInterceptor(t *testing.T) {
	req := require.New(t)
	tokens := auth.NewTokens("secret", auth.DefaultIssuer)
	userID := uuid.New()
	token, err := tokens.Generate(userID, []string{"guest"}, time.Minute)
	req.NoError(err)

	interceptor := AuthInterceptor(slog.Default(), tokens)
	info := &grpc.UnaryServerInfo{FullMethod: "/chat.v1.ConversationService/ListConversations"}
	seen := func(md metadata.MD) (uuid.UUID, bool) {
		var got uuid.UUID
		var ok bool
		_, err := interceptor(metadata.NewIncomingContext(context.Background(), md), nil, info,
			func(ctx context.Context, _ any) (any, error) {
				got, ok = auth.UserIDFrom(ctx)
				return nil, nil
			})
		req.NoError(err)
		return got, ok
	}

	got, ok := seen(metadata.Pairs("authorization", "Bearer "+token))
	req.True(ok)
	req.Equal(userID, got)

	_, ok = seen(metadata.Pairs("authorization", "bearer "+token))
	req.True(ok)

	_, ok = seen(metadata.Pairs("authorization", token))
	req.False(ok)

	_, ok = seen(metadata.Pairs("authorization", "Bearer garbage"))
	req.False(ok)

	_, ok = seen(metadata.MD{})
	req.False(ok)
}
