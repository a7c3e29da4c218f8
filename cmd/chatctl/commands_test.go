package main

import (
	"bytes"
	pb "chat-gate/proto/chat/v1"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestSplitIDs(t *testing.T) {
	req := require.New(t)
	req.Equal([]string{"a", "b"}, splitIDs(" a, ,b,"))
	req.Nil(splitIDs(""))
}

func TestParseInstant(t *testing.T) {
	req := require.New(t)
	instant, err := parseInstant("after", "")
	req.NoError(err)
	req.Nil(instant)

	instant, err = parseInstant("after", "2026-03-14T12:00:00Z")
	req.NoError(err)
	req.Equal(12, instant.AsTime().Hour())

	_, err = parseInstant("after", "yesterday")
	var usage usageError
	req.True(errors.As(err, &usage))
}

func TestPrinter_Messages_Without_Timestamp(t *testing.T) {
	var buf bytes.Buffer
	printer{out: &buf}.messages(&pb.Message{Seq: 3, SenderId: "alice", Body: "hi"})
	require.Contains(t, buf.String(), "-")
	require.Contains(t, buf.String(), "hi")
}

func TestPrinter_Failure_Shows_Code(t *testing.T) {
	var buf bytes.Buffer
	printer{out: &buf}.failure(status.Error(codes.ResourceExhausted, "rate limited"))
	require.Equal(t, "ResourceExhausted: rate limited\n", buf.String())
}

func TestRun_Rejects_Unknown_Command(t *testing.T) {
	code, err := run([]string{"launch"})
	require.Error(t, err)
	require.Equal(t, exitConfig, code)
}
