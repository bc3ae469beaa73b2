package command

// Prefix starts every command
const Prefix = "!"

// Command names
const (
	CmdCreateEgg      = "!create-egg"
	CmdEggStatus      = "!egg-status"
	CmdInventory      = "!inventory"
	CmdRevive         = "!revive"
	CmdDisownEgg      = "!disown-egg"
	CmdMarry          = "!marry"
	CmdBreakup        = "!breakup"
	CmdFeed           = "!feed"
	CmdHydrate        = "!hydrate"
	CmdPlay           = "!play"
	CmdWash           = "!wash"
	CmdCuddle         = "!cuddle"
	CmdHug            = "!hug"
	CmdShop           = "!shop"
	CmdDaily          = "!daily"
	CmdBalance        = "!balance"
	CmdMarriageStatus = "!marriage-status"
	CmdBuy            = "!buy"
	CmdPetShop        = "!pet-shop"
	CmdBuyPet         = "!buy-pet"
	CmdAddCoins       = "!add-coins"
	CmdRemoveCoins    = "!remove-coins"
	CmdShareCoins     = "!share-coins"
	CmdViewBalance    = "!view-balance"
	CmdBet            = "!bet"
	CmdRob            = "!rob"
	CmdHelp           = "!help"
)

// Prompt names, used as metric labels
const (
	PromptGender   = "gender"
	PromptName     = "name"
	PromptProposal = "proposal"
)

// Proposal answers
const (
	AnswerYes = "yes"
	AnswerNo  = "no"
)

// Log messages
const (
	LogMsgCommandReceived = "Command received"
	LogMsgCommandFailed   = "Command failed"
	LogMsgReplyFailed     = "Failed to send reply"
	LogMsgPromptLapsed    = "Prompt lapsed"
)
