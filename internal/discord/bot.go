package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/BabyEggBot_Go/internal/command"
	"github.com/osse101/BabyEggBot_Go/internal/prompt"
)

// Config holds the bot configuration
type Config struct {
	Token string
}

// Router handles command messages
type Router interface {
	Handle(ctx context.Context, msg command.Message) bool
}

// PromptSink receives messages before they are routed as commands
type PromptSink interface {
	Deliver(key prompt.Key, content string) bool
}

// Bot represents the Discord bot
type Bot struct {
	Session *discordgo.Session
	router  Router
	prompts PromptSink
	seen    *seenMessages
	ctx     context.Context
}

// New creates a new Discord bot. The session is not opened until Start.
func New(cfg Config) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCreateSession, err)
	}
	s.Identify.Intents = Intents

	return &Bot{
		Session: s,
		seen:    newSeenMessages(DefaultSeenCacheSize, DefaultSeenTTL),
		ctx:     context.Background(),
	}, nil
}

// Replier returns a command.Replier backed by this bot's session
func (b *Bot) Replier() *Replier {
	return NewReplier(b.Session)
}

// Attach wires the command router and prompt broker
func (b *Bot) Attach(router Router, prompts PromptSink) {
	b.router = router
	b.prompts = prompts
}

// Start opens the gateway connection. Handlers run with ctx as their parent context.
func (b *Bot) Start(ctx context.Context) error {
	b.ctx = ctx
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.messageCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf(ErrMsgOpenSession, err)
	}

	slog.Info(LogMsgBotRunning)
	return nil
}

// Stop closes the gateway connection
func (b *Bot) Stop() error {
	err := b.Session.Close()
	slog.Info(LogMsgBotStopped)
	return err
}

// Connected reports whether the gateway session is ready
func (b *Bot) Connected() bool {
	return b.Session != nil && b.Session.DataReady
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info(LogMsgBotReady, "user", r.User.Username)
}

func (b *Bot) messageCreate(_ *discordgo.Session, m *discordgo.MessageCreate) {
	b.handle(b.ctx, m.Message)
}

// handle feeds pending prompts first; only unconsumed messages reach the router
func (b *Bot) handle(ctx context.Context, m *discordgo.Message) {
	if m == nil || m.Author == nil || m.Author.Bot {
		return
	}
	if !b.seen.firstSighting(m.ID) {
		slog.Debug(LogMsgDuplicateDrop, "message_id", m.ID)
		return
	}

	msg := toMessage(m)
	if b.prompts != nil && b.prompts.Deliver(prompt.Key{ChannelID: msg.ChannelID, UserID: msg.AuthorID}, msg.Content) {
		slog.Debug(LogMsgPromptConsumed, "user_id", msg.AuthorID, "channel_id", msg.ChannelID)
		return
	}
	if b.router != nil {
		b.router.Handle(ctx, msg)
	}
}

func toMessage(m *discordgo.Message) command.Message {
	msg := command.Message{
		ID:         m.ID,
		ChannelID:  m.ChannelID,
		AuthorID:   m.Author.ID,
		AuthorName: displayName(m.Author),
		Content:    m.Content,
	}
	for _, u := range m.Mentions {
		if u == nil {
			continue
		}
		msg.Mentions = append(msg.Mentions, command.Mention{ID: u.ID, Username: displayName(u)})
	}
	return msg
}

func displayName(u *discordgo.User) string {
	if u.GlobalName != "" {
		return u.GlobalName
	}
	return u.Username
}
