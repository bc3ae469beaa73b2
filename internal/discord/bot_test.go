package discord

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BabyEggBot_Go/internal/command"
	"github.com/osse101/BabyEggBot_Go/internal/prompt"
)

type recordingRouter struct {
	handled []command.Message
}

func (r *recordingRouter) Handle(_ context.Context, msg command.Message) bool {
	r.handled = append(r.handled, msg)
	return true
}

type fakeSink struct {
	consume bool
	keys    []prompt.Key
}

func (f *fakeSink) Deliver(key prompt.Key, _ string) bool {
	f.keys = append(f.keys, key)
	return f.consume
}

func newTestBot(router Router, sink PromptSink) *Bot {
	b := &Bot{seen: newSeenMessages(16, time.Minute), ctx: context.Background()}
	b.Attach(router, sink)
	return b
}

func message(id, author, content string) *discordgo.Message {
	return &discordgo.Message{
		ID:        id,
		ChannelID: "chan",
		Content:   content,
		Author:    &discordgo.User{ID: author, Username: "user" + author},
	}
}

func TestHandle_RoutesUnconsumedMessages(t *testing.T) {
	router := &recordingRouter{}
	sink := &fakeSink{}
	b := newTestBot(router, sink)

	b.handle(context.Background(), message("m1", "1", "!balance"))

	require.Len(t, router.handled, 1)
	assert.Equal(t, "!balance", router.handled[0].Content)
	assert.Equal(t, []prompt.Key{{ChannelID: "chan", UserID: "1"}}, sink.keys)
}

func TestHandle_PromptConsumesMessage(t *testing.T) {
	router := &recordingRouter{}
	b := newTestBot(router, &fakeSink{consume: true})

	b.handle(context.Background(), message("m1", "1", "Pip"))

	assert.Empty(t, router.handled)
}

func TestHandle_IgnoresBotsAndDuplicates(t *testing.T) {
	router := &recordingRouter{}
	b := newTestBot(router, &fakeSink{})

	botMsg := message("m0", "2", "!balance")
	botMsg.Author.Bot = true
	b.handle(context.Background(), botMsg)
	b.handle(context.Background(), &discordgo.Message{ID: "m9"})

	b.handle(context.Background(), message("m1", "1", "!balance"))
	b.handle(context.Background(), message("m1", "1", "!balance"))

	assert.Len(t, router.handled, 1)
}

func TestToMessage(t *testing.T) {
	m := message("m1", "1", "!marry <@2>")
	m.Author.GlobalName = "Alice"
	m.Mentions = []*discordgo.User{{ID: "2", Username: "bob"}, nil}

	msg := toMessage(m)

	assert.Equal(t, "m1", msg.ID)
	assert.Equal(t, "chan", msg.ChannelID)
	assert.Equal(t, "1", msg.AuthorID)
	assert.Equal(t, "Alice", msg.AuthorName)
	assert.Equal(t, []command.Mention{{ID: "2", Username: "bob"}}, msg.Mentions)
}

func TestSeenMessages(t *testing.T) {
	s := newSeenMessages(2, time.Minute)

	assert.True(t, s.firstSighting("a"))
	assert.False(t, s.firstSighting("a"))
	assert.True(t, s.firstSighting(""))
	assert.True(t, s.firstSighting(""))
}

func TestSplitMessage(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  []string
	}{
		{"fits", "hello", 10, []string{"hello"}},
		{"line boundaries", "aaa\nbbb\nccc", 8, []string{"aaa\nbbb\n", "ccc"}},
		{"long line cut", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"multibyte not split", "ééé", 3, []string{"é", "é", "é"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitMessage(tt.text, tt.limit)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.text, strings.Join(got, ""))
		})
	}
}

type fakeSender struct {
	sent []string
	refs []*discordgo.MessageReference
	err  error
}

func (f *fakeSender) ChannelMessageSendReply(channelID, content string, ref *discordgo.MessageReference, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, content)
	f.refs = append(f.refs, ref)
	return &discordgo.Message{ChannelID: channelID, Content: content}, nil
}

func TestReplier_Reply(t *testing.T) {
	sender := &fakeSender{}
	r := NewReplier(sender)
	to := command.Message{ID: "m1", ChannelID: "chan"}

	long := strings.Repeat("x", MaxMessageLength-1) + "\n" + "tail"
	require.NoError(t, r.Reply(context.Background(), to, long))

	require.Len(t, sender.sent, 2)
	assert.Equal(t, "tail", sender.sent[1])
	assert.Equal(t, "m1", sender.refs[0].MessageID)
	assert.Equal(t, "chan", sender.refs[0].ChannelID)

	sender.err = errors.New("boom")
	assert.Error(t, r.Reply(context.Background(), to, "hi"))
}
