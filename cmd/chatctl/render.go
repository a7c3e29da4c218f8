package main

import (
	pb "chat-gate/proto/chat/v1"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type printer struct {
	out     io.Writer
	colours bool
}

func (p printer) table(header []string, rows [][]string) {
	table := tablewriter.NewWriter(p.out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetTablePadding("\t")
	table.AppendBulk(rows)
	table.Render()
}

func (p printer) ok(format string, args ...any) {
	p.line(color.FgGreen, format, args...)
}

// failure prints the gRPC code first, it is what operators grep for.
func (p printer) failure(err error) {
	st := status.Convert(err)
	p.line(color.FgRed, "%s: %s", st.Code(), st.Message())
}

func (p printer) line(c color.Color, format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	if p.colours {
		text = c.Render(text)
	}
	fmt.Fprintln(p.out, text)
}

func (p printer) page(info *pb.PageInfo) {
	more := ""
	if info.GetHasNext() {
		more = ", more available"
	}
	fmt.Fprintf(p.out, "page %d (size %d) of %d total%s\n", info.GetPage(), info.GetPageSize(), info.GetTotal(), more)
}

func (p printer) conversations(conversations ...*pb.Conversation) {
	rows := make([][]string, 0, len(conversations))
	for _, c := range conversations {
		rows = append(rows, []string{c.GetId(), formatTime(c.GetCreatedAt()), strings.Join(c.GetParticipantIds(), " ")})
	}
	p.table([]string{"ID", "Created", "Participants"}, rows)
}

func (p printer) messages(messages ...*pb.Message) {
	rows := make([][]string, 0, len(messages))
	for _, m := range messages {
		rows = append(rows, []string{formatTime(m.GetSentAt()), fmt.Sprint(m.GetSeq()), m.GetSenderId(), m.GetBody()})
	}
	p.table([]string{"Sent", "Seq", "Sender", "Body"}, rows)
}

func formatTime(ts *timestamppb.Timestamp) string {
	if ts == nil {
		return "-"
	}
	return ts.AsTime().Format(time.RFC3339)
}
