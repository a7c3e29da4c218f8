package main

import (
	"chat-gate/auth"
	"chat-gate/contract"
	"chat-gate/infrastructure/grpc/client"
	pb "chat-gate/proto/chat/v1"
	"chat-gate/repositories"
	"chat-gate/services"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const callTimeout = 10 * time.Second

type command func(config Config, out printer, args []string) (int, error)

var commands = map[string]command{
	"seed":          seed,
	"token":         token,
	"create":        online(create),
	"conversation":  online(conversation),
	"conversations": online(conversations),
	"post":          online(post),
	"messages":      online(messages),
	"add":           online(add),
	"search":        online(searchMessages),
}

func seed(config Config, out printer, args []string) (int, error) {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "email")
	role := fs.String("role", "guest", "guest, host or admin")
	ttl := fs.Duration("ttl", 24*time.Hour, "token lifetime")
	if err := fs.Parse(args); err != nil {
		return exitConfig, err
	}
	tokens, err := offlineTokens(config)
	if err != nil {
		return exitConfig, err
	}
	if config.BadgerFilepath == "" {
		return exitConfig, errors.New("BADGER_FILEPATH is required")
	}

	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).WithLoggingLevel(badger.WARNING))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed (is the server running?): %w", err)
	}
	defer db.Close()

	users := services.NewUserService(logs.GetLoggerFromLevel(slog.LevelWarn), repositories.NewUserRepository(db), contract.SystemClock{})
	user, err := users.Register(*name, *email, *role)
	if err != nil {
		return exitRuntime, err
	}
	signed, err := tokens.Generate(user.ID, []string{string(user.Role)}, *ttl)
	if err != nil {
		return exitRuntime, err
	}
	out.ok("registered %s (%s) as %s", user.DisplayName, user.ID, user.Role)
	out.table([]string{"User ID", "Token"}, [][]string{{user.ID.String(), signed}})
	return exitOK, nil
}

func token(config Config, out printer, args []string) (int, error) {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	userID := fs.String("user", "", "user id")
	ttl := fs.Duration("ttl", 24*time.Hour, "token lifetime")
	if err := fs.Parse(args); err != nil {
		return exitConfig, err
	}
	id, err := uuid.Parse(*userID)
	if err != nil {
		return exitConfig, fmt.Errorf("-user: %w", err)
	}
	tokens, err := offlineTokens(config)
	if err != nil {
		return exitConfig, err
	}
	signed, err := tokens.Generate(id, nil, *ttl)
	if err != nil {
		return exitRuntime, err
	}
	fmt.Fprintln(out.out, signed)
	return exitOK, nil
}

func offlineTokens(config Config) (auth.Tokens, error) {
	if config.JWTSecret == "" {
		return auth.Tokens{}, errors.New("JWT_SECRET is required")
	}
	return auth.NewTokens(config.JWTSecret, config.JWTIssuer), nil
}

type onlineCommand func(ctx context.Context, chat *client.ChatClient, out printer, args []string) error

// online dials the server and turns a call failure into a printed status
// and a runtime exit code.
func online(fn onlineCommand) command {
	return func(config Config, out printer, args []string) (int, error) {
		conn, err := client.Dial(config.Addr)
		if err != nil {
			return exitRuntime, err
		}
		defer conn.Close()

		ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
		defer cancel()
		chat := client.NewChatClient(conn).WithToken(config.Token)
		if err = fn(ctx, chat, out, args); err != nil {
			var usage usageError
			if errors.As(err, &usage) {
				return exitConfig, err
			}
			out.failure(err)
			return exitRuntime, nil
		}
		return exitOK, nil
	}
}

type usageError struct{ error }

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return usageError{err}
	}
	return nil
}

// pageFlags registers -page and -size, the request is built once parsed.
func pageFlags(fs *flag.FlagSet) func() *pb.PageRequest {
	page := fs.Int("page", 1, "page number, from 1")
	size := fs.Int("size", 0, "page size, server default when 0")
	return func() *pb.PageRequest {
		return &pb.PageRequest{Page: int32(*page), PageSize: int32(*size)}
	}
}

func splitIDs(raw string) []string {
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func create(ctx context.Context, chat *client.ChatClient, out printer, args []string) error {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	with := fs.String("with", "", "comma separated participant ids")
	if err := parse(fs, args); err != nil {
		return err
	}
	resp, err := chat.CreateConversation(ctx, &pb.CreateConversationRequest{ParticipantIds: splitIDs(*with)})
	if err != nil {
		return err
	}
	out.ok("conversation created")
	out.conversations(resp.Conversation)
	return nil
}

func conversation(ctx context.Context, chat *client.ChatClient, out printer, args []string) error {
	fs := flag.NewFlagSet("conversation", flag.ContinueOnError)
	id := fs.String("id", "", "conversation id")
	if err := parse(fs, args); err != nil {
		return err
	}
	resp, err := chat.GetConversation(ctx, &pb.GetConversationRequest{ConversationId: *id})
	if err != nil {
		return err
	}
	out.conversations(resp.Conversation)
	return nil
}

func conversations(ctx context.Context, chat *client.ChatClient, out printer, args []string) error {
	fs := flag.NewFlagSet("conversations", flag.ContinueOnError)
	page := pageFlags(fs)
	if err := parse(fs, args); err != nil {
		return err
	}
	resp, err := chat.ListConversations(ctx, &pb.ListConversationsRequest{Page: page()})
	if err != nil {
		return err
	}
	out.conversations(resp.Conversations...)
	out.page(resp.Page)
	return nil
}

func post(ctx context.Context, chat *client.ChatClient, out printer, args []string) error {
	fs := flag.NewFlagSet("post", flag.ContinueOnError)
	id := fs.String("conv", "", "conversation id")
	body := fs.String("body", "", "message body")
	if err := parse(fs, args); err != nil {
		return err
	}
	resp, err := chat.PostMessage(ctx, &pb.PostMessageRequest{ConversationId: *id, Body: *body})
	if err != nil {
		return err
	}
	out.ok("message %s posted", resp.GetMessage().GetId())
	out.messages(resp.Message)
	return nil
}

func messages(ctx context.Context, chat *client.ChatClient, out printer, args []string) error {
	fs := flag.NewFlagSet("messages", flag.ContinueOnError)
	id := fs.String("conv", "", "conversation id")
	sender := fs.String("sender", "", "only messages from this user id")
	contains := fs.String("contains", "", "case sensitive substring")
	after := fs.String("after", "", "RFC3339, inclusive")
	before := fs.String("before", "", "RFC3339, inclusive")
	page := pageFlags(fs)
	if err := parse(fs, args); err != nil {
		return err
	}
	req := &pb.ListMessagesRequest{ConversationId: *id, Page: page(), SenderId: *sender, Contains: *contains}
	var err error
	if req.SentAfter, err = parseInstant("after", *after); err != nil {
		return err
	}
	if req.SentBefore, err = parseInstant("before", *before); err != nil {
		return err
	}
	resp, err := chat.ListMessages(ctx, req)
	if err != nil {
		return err
	}
	out.messages(resp.Messages...)
	out.page(resp.Page)
	return nil
}

func parseInstant(name, raw string) (*timestamppb.Timestamp, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, usageError{fmt.Errorf("-%s: %w", name, err)}
	}
	return timestamppb.New(t), nil
}

func add(ctx context.Context, chat *client.ChatClient, out printer, args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	id := fs.String("conv", "", "conversation id")
	with := fs.String("with", "", "comma separated participant ids")
	if err := parse(fs, args); err != nil {
		return err
	}
	resp, err := chat.AddParticipants(ctx, &pb.AddParticipantsRequest{ConversationId: *id, ParticipantIds: splitIDs(*with)})
	if err != nil {
		return err
	}
	out.ok("participants added")
	out.conversations(resp.Conversation)
	return nil
}

func searchMessages(ctx context.Context, chat *client.ChatClient, out printer, args []string) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	text := fs.String("text", "", "full text query")
	page := pageFlags(fs)
	if err := parse(fs, args); err != nil {
		return err
	}
	resp, err := chat.SearchMessages(ctx, &pb.SearchMessagesRequest{Text: *text, Page: page()})
	if err != nil {
		return err
	}
	out.messages(resp.Messages...)
	out.page(resp.Page)
	return nil
}
