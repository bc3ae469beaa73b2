package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/BabyEggBot_Go/internal/command"
)

// replySender is the part of discordgo.Session used for replies
type replySender interface {
	ChannelMessageSendReply(channelID, content string, reference *discordgo.MessageReference, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Replier answers commands with Discord replies
type Replier struct {
	sender replySender
}

// NewReplier creates a replier over a session
func NewReplier(s replySender) *Replier {
	return &Replier{sender: s}
}

// Reply sends text as a reply to msg, split into as many messages as Discord's
// length limit requires
func (r *Replier) Reply(ctx context.Context, to command.Message, text string) error {
	ref := &discordgo.MessageReference{MessageID: to.ID, ChannelID: to.ChannelID}
	for _, chunk := range splitMessage(text, MaxMessageLength) {
		if _, err := r.sender.ChannelMessageSendReply(to.ChannelID, chunk, ref, discordgo.WithContext(ctx)); err != nil {
			return fmt.Errorf(ErrMsgSendReply, err)
		}
	}
	return nil
}

// splitMessage breaks text on line boundaries into chunks of at most limit bytes.
// A single line longer than limit is cut hard.
func splitMessage(text string, limit int) []string {
	if len(text) <= limit {
		return []string{text}
	}

	var chunks []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			chunks = append(chunks, cur.String())
			cur.Reset()
		}
	}

	for _, line := range strings.SplitAfter(text, "\n") {
		for len(line) > limit {
			flush()
			cut := limit
			for cut > 0 && !utf8RuneStart(line[cut]) {
				cut--
			}
			if cut == 0 {
				cut = limit
			}
			chunks = append(chunks, line[:cut])
			line = line[cut:]
		}
		if cur.Len()+len(line) > limit {
			flush()
		}
		cur.WriteString(line)
	}
	flush()
	return chunks
}

func utf8RuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
