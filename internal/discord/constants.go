package discord

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

// Intents needed to read prefixed commands in guild channels
const Intents = discordgo.IntentsGuilds |
	discordgo.IntentsGuildMessages |
	discordgo.IntentsMessageContent |
	discordgo.IntentsGuildMembers

// MaxMessageLength is Discord's limit for a single message
const MaxMessageLength = 2000

// Duplicate delivery filter
const (
	DefaultSeenCacheSize = 4096
	DefaultSeenTTL       = 10 * time.Minute
)

// Log messages
const (
	LogMsgBotReady       = "Baby Egg Bot is online!"
	LogMsgBotRunning     = "Discord bot is now running"
	LogMsgDuplicateDrop  = "Dropping duplicate gateway delivery"
	LogMsgPromptConsumed = "Message consumed by pending prompt"
	LogMsgBotStopped     = "Discord bot stopped"
)

// Error messages
const (
	ErrMsgCreateSession = "error creating Discord session: %w"
	ErrMsgOpenSession   = "error opening connection: %w"
	ErrMsgSendReply     = "failed to send reply: %w"
)
