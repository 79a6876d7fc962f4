package discord

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/SlotBot_Go/internal/cooldown"
	"github.com/osse101/SlotBot_Go/internal/domain"
	"github.com/osse101/SlotBot_Go/internal/economy"
	"github.com/osse101/SlotBot_Go/internal/game"
	"github.com/osse101/SlotBot_Go/internal/slots"
)

// renderer turns game values into chat text and embeds.
type renderer struct {
	printer *message.Printer
	prefix  string
	now     func() time.Time
}

func newRenderer(prefix string, now func() time.Time) *renderer {
	if now == nil {
		now = time.Now
	}
	return &renderer{
		printer: message.NewPrinter(language.English),
		prefix:  prefix,
		now:     now,
	}
}

// coins formats an amount with thousands separators.
func (r *renderer) coins(n int64) string {
	return r.printer.Sprintf("%d", n)
}

// rollingLine is the placeholder shown while the reels spin.
func rollingLine() string {
	return strings.Join([]string{EmoteRolling, EmoteRolling, EmoteRolling}, " ")
}

// reelLine renders drawn symbols as emotes. Symbols from a custom odds table
// without an emote are shown by name.
func reelLine(reels slots.Reels) string {
	parts := make([]string, len(reels))
	for i, sym := range reels {
		if emote, ok := symbolEmotes[sym]; ok {
			parts[i] = emote
		} else {
			parts[i] = fmt.Sprintf("**%s**", sym)
		}
	}
	return strings.Join(parts, " ")
}

func mention(userID string) string {
	return "<@" + userID + ">"
}

// resultEmbed is the card attached to a revealed spin.
func (r *renderer) resultEmbed(o game.Outcome, username string) *discordgo.MessageEmbed {
	color, title := ColorLoss, TitleLoss
	desc := fmt.Sprintf(MsgLostFmt, r.coins(o.Wager))
	if o.IsWin() {
		color, title = ColorWin, TitleWin
		desc = fmt.Sprintf(MsgWonFmt, r.coins(o.Payout.Amount))
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: desc,
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: FieldBet, Value: r.coins(o.Wager), Inline: true},
			{Name: FieldPayout, Value: r.coins(o.Payout.Amount), Inline: true},
			{Name: FieldNewBalance, Value: r.coins(o.NewBalance), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: username,
		},
		Timestamp: r.now().UTC().Format(time.RFC3339),
	}
}

// leaderboardEmbed lists standings with mentions.
func (r *renderer) leaderboardEmbed(standings []economy.Standing) *discordgo.MessageEmbed {
	desc := MsgLeaderboardNil
	if len(standings) > 0 {
		rows := make([]string, len(standings))
		for i, st := range standings {
			rows[i] = fmt.Sprintf(MsgLeaderboardRow, i+1, mention(st.AccountID), r.coins(st.Balance))
		}
		desc = strings.Join(rows, "\n")
	}
	return &discordgo.MessageEmbed{
		Title:       TitleLeaderboard,
		Description: desc,
		Color:       ColorInfo,
	}
}

// errorText maps a rejected operation to the reply shown to the player.
func (r *renderer) errorText(err error) string {
	var (
		funds   game.InsufficientFundsError
		onCD    cooldown.ErrOnCooldown
		claimed cooldown.ErrAlreadyClaimed
	)

	switch {
	case errors.Is(err, game.ErrMissingWager):
		return fmt.Sprintf(MsgUsageFmt, r.prefix)
	case errors.Is(err, game.ErrBadWager):
		return MsgBadWager
	case errors.As(err, &funds):
		return fmt.Sprintf(MsgInsufficientFundsFmt, r.coins(funds.Balance))
	case errors.As(err, &onCD):
		return fmt.Sprintf(MsgCooldownFmt, onCD.Remaining.Seconds())
	case errors.As(err, &claimed):
		return fmt.Sprintf(MsgAlreadyClaimedFmt, formatResetIn(claimed.ResetIn))
	case errors.Is(err, domain.ErrDeliveryFailure):
		return MsgRefunded
	case errors.Is(err, domain.ErrUnauthorized):
		return MsgNotAdmin
	case errors.Is(err, domain.ErrBalanceLimit):
		return MsgBalanceLimit
	case errors.Is(err, domain.ErrInvalidInput):
		return MsgInvalidInput
	default:
		return MsgGenericError
	}
}

func formatResetIn(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm %ds", minutes, int(d.Seconds())%60)
}
