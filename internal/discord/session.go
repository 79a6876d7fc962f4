package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/SlotBot_Go/internal/economy"
	"github.com/osse101/SlotBot_Go/internal/game"
)

// Session is the part of *discordgo.Session the command handlers use.
type Session interface {
	ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendReply(channelID, content string, reference *discordgo.MessageReference, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEditComplex(m *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)

	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

var _ Session = (*discordgo.Session)(nil)

// Economy is what the bot needs from game.EconomyState.
type Economy interface {
	PlaceBet(ctx context.Context, accountID string, wager int64, notifier game.Notifier) (*game.Spin, error)
	ClaimDaily(ctx context.Context, accountID string) (game.Claim, error)
	AdminCredit(ctx context.Context, requesterID, targetID string, amount int64) (int64, error)
	Balance(ctx context.Context, accountID string) (int64, error)
	Leaderboard(limit int) []economy.Standing
}
