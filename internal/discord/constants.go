package discord

import (
	"time"

	"github.com/osse101/SlotBot_Go/internal/slots"
)

// Custom emotes. The rolling token is animated.
const (
	EmoteRolling = "<a:rolling:1467751477211562035>"
	EmoteCherry  = "<:cherryslot:1467753520974270605>"
	EmoteLemon   = "<:lemonslot:1467753414648795320>"
	EmoteMoney   = "<:moneyslot:1467753282041811025>"
	EmoteDiamond = "<:diamondslot:1467753600745734466>"
	EmoteCrown   = "<:crownslot:1467753347728674909>"
)

var symbolEmotes = map[slots.Symbol]string{
	slots.SymbolCherry:  EmoteCherry,
	slots.SymbolLemon:   EmoteLemon,
	slots.SymbolMoney:   EmoteMoney,
	slots.SymbolDiamond: EmoteDiamond,
	slots.SymbolCrown:   EmoteCrown,
}

// Embed colours
const (
	ColorWin  = 0x57F287
	ColorLoss = 0xED4337
	ColorInfo = 0x5865F2
)

// Player facing messages
const (
	MsgUsageFmt             = "please provide a bet amount: `%s <amount>`"
	MsgBadWager             = "bet must be a positive whole number"
	MsgInsufficientFundsFmt = "not enough coins. your balance: **%s**"
	MsgCooldownFmt          = "on cooldown. try again in **%.1fs**"
	MsgAlreadyClaimedFmt    = "daily bonus already claimed. resets in **%s**"
	MsgRefunded             = "something went wrong, bet has been refunded"
	MsgNotAdmin             = "only the bot admin can give coins"
	MsgInvalidInput         = "that doesn't look right, check the command and try again"
	MsgBalanceLimit         = "that would push the balance past the most coins the bank can hold"
	MsgGenericError         = "❌ something went wrong"

	MsgWonFmt         = "you won **%s** coins"
	MsgLostFmt        = "you lost **%s** coins"
	MsgBalanceFmt     = "%s has **%s** coins"
	MsgDailyFmt       = "you claimed **%s** coins. your balance: **%s**"
	MsgGiveFmt        = "gave **%s** coins to %s. their balance: **%s**"
	MsgLeaderboardRow = "%d. %s: **%s**"
	MsgLeaderboardNil = "nobody has played yet"
)

// Embed text
const (
	TitleWin         = "🏆 you won!"
	TitleLoss        = "💸 you lost"
	TitleLeaderboard = "🎰 leaderboard"

	FieldBet        = "bet"
	FieldPayout     = "payout"
	FieldNewBalance = "new balance"
)

// Presence shown under the bot's name
const PresenceFmt = "%s [amount]"

// Slash command names and options
const (
	CommandSlots       = "slots"
	CommandDaily       = "daily"
	CommandBalance     = "balance"
	CommandLeaderboard = "leaderboard"
	CommandGive        = "give"

	OptionBet    = "bet"
	OptionUser   = "user"
	OptionLimit  = "limit"
	OptionAmount = "amount"

	// CommandPrefixName labels prefix bets in metrics
	CommandPrefixName = "prefix_slots"
)

// Leaderboard bounds for the slash command
const (
	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 25
)

// De-duplication of gateway events. Discord may redeliver a message or an
// interaction after a reconnect.
const (
	DedupSize = 1024
	DedupTTL  = 10 * time.Minute
)

// Log messages
const (
	LogMsgBotRunning        = "Discord bot is now running"
	LogMsgBotReady          = "Bot is ready"
	LogMsgPresenceFailed    = "Failed to set presence"
	LogMsgDuplicateEvent    = "Ignoring duplicate gateway event"
	LogMsgReplyFailed       = "Failed to reply to message"
	LogMsgRespondFailed     = "Failed to respond to interaction"
	LogMsgCommandFailed     = "Command failed"
	LogMsgUnknownCommand    = "Unknown command"
	LogMsgCheckingCommands  = "Checking Discord commands..."
	LogMsgCommandsUnchanged = "Commands unchanged, skipping registration"
	LogMsgCommandsChanged   = "Commands changed, updating..."
	LogMsgCommandsUpdated   = "Commands updated successfully"
	LogMsgRegisterFailed    = "Failed to register slash commands"
)
