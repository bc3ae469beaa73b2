package command

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/osse101/BabyEggBot_Go/internal/domain"
	"github.com/osse101/BabyEggBot_Go/internal/economy"
	"github.com/osse101/BabyEggBot_Go/internal/egg"
	"github.com/osse101/BabyEggBot_Go/internal/inventory"
	"github.com/osse101/BabyEggBot_Go/internal/logger"
	"github.com/osse101/BabyEggBot_Go/internal/marriage"
	"github.com/osse101/BabyEggBot_Go/internal/metrics"
	"github.com/osse101/BabyEggBot_Go/internal/prompt"
)

// Mention is a user referenced in a message
type Mention struct {
	ID       string
	Username string
}

// Message is a chat message as seen by the router
type Message struct {
	ID         string
	ChannelID  string
	AuthorID   string
	AuthorName string
	Content    string
	Mentions   []Mention
}

// FirstMention returns the first mentioned user
func (m Message) FirstMention() (Mention, bool) {
	if len(m.Mentions) == 0 {
		return Mention{}, false
	}
	return m.Mentions[0], true
}

// Replier sends reply text addressed to the message's author
type Replier interface {
	Reply(ctx context.Context, to Message, text string) error
}

// Prompter waits for the next matching message from a user in a channel
type Prompter interface {
	Await(ctx context.Context, key prompt.Key, accept prompt.Accept, timeout time.Duration) (string, error)
}

// Handler runs one command. Returned errors are unexpected failures; user
// mistakes are answered with a reply and a nil error.
type Handler func(ctx context.Context, msg Message, args []string) error

// Deps are the services commands operate on
type Deps struct {
	Eggs          egg.Service
	Marriages     marriage.Service
	Ledger        economy.Service
	Inventory     inventory.Service
	Prompts       Prompter
	Replier       Replier
	PromptTimeout time.Duration
}

// Router dispatches prefixed text commands
type Router struct {
	Deps
	handlers map[string]Handler
}

// NewRouter creates a router with every command registered
func NewRouter(deps Deps) *Router {
	if deps.PromptTimeout <= 0 {
		deps.PromptTimeout = domain.DefaultPromptTimeout
	}
	r := &Router{
		Deps:     deps,
		handlers: make(map[string]Handler),
	}
	r.registerEggCommands()
	r.registerSocialCommands()
	r.registerEconomyCommands()
	r.Register(CmdHelp, r.help)
	return r
}

// Register adds a handler for name, replacing any existing one
func (r *Router) Register(name string, h Handler) {
	r.handlers[strings.ToLower(name)] = h
}

// Commands returns the number of registered commands
func (r *Router) Commands() int {
	return len(r.handlers)
}

// Parse splits content into a lowercased command word and its arguments.
// ok is false when content is not a command.
func Parse(content string) (name string, args []string, ok bool) {
	fields := strings.Fields(content)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], Prefix) {
		return "", nil, false
	}
	return strings.ToLower(fields[0]), fields[1:], true
}

// Handle routes msg to its command. It reports whether a command matched.
func (r *Router) Handle(ctx context.Context, msg Message) bool {
	name, args, ok := Parse(msg.Content)
	if !ok {
		return false
	}
	h, ok := r.handlers[name]
	if !ok {
		return false
	}

	ctx = logger.WithRequestID(ctx, logger.GenerateRequestID())
	log := logger.FromContext(ctx).With("command", name, "user_id", msg.AuthorID, "channel_id", msg.ChannelID)
	ctx = logger.WithLogger(ctx, log)

	metrics.CommandsHandled.WithLabelValues(name).Inc()
	log.Debug(LogMsgCommandReceived, "args", len(args))

	if err := h(ctx, msg, args); err != nil {
		metrics.CommandErrors.WithLabelValues(name).Inc()
		log.Error(LogMsgCommandFailed, "error", err)
		r.reply(ctx, msg, MsgGenericError)
	}
	return true
}

func (r *Router) reply(ctx context.Context, msg Message, text string) {
	if err := r.Replier.Reply(ctx, msg, text); err != nil {
		logger.FromContext(ctx).Warn(LogMsgReplyFailed, "error", err)
	}
}

// await asks the prompter for the next reply from userID in msg's channel.
// Timeouts are counted under name.
func (r *Router) await(ctx context.Context, msg Message, userID, name string, accept prompt.Accept) (string, error) {
	content, err := r.Prompts.Await(ctx, prompt.Key{ChannelID: msg.ChannelID, UserID: userID}, accept, r.PromptTimeout)
	if errors.Is(err, domain.ErrPromptTimeout) {
		metrics.PromptTimeouts.WithLabelValues(name).Inc()
		logger.FromContext(ctx).Info(LogMsgPromptLapsed, "prompt", name, "waiting_for", userID)
	}
	return content, err
}

// isPromptEnd reports whether err means the prompt ended without an answer
func isPromptEnd(err error) bool {
	return errors.Is(err, domain.ErrPromptTimeout) ||
		errors.Is(err, domain.ErrPromptSuperseded) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

func (r *Router) help(ctx context.Context, msg Message, _ []string) error {
	r.reply(ctx, msg, HelpText)
	return nil
}
