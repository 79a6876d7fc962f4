package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// dailyCommand grants the once-per-UTC-day bonus
func (b *Bot) dailyCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CommandDaily,
		Description: "Claim your daily coins",
	}

	handler := func(ctx context.Context, s Session, i *discordgo.InteractionCreate) {
		user := getInteractionUser(i)

		claim, err := b.econ.ClaimDaily(ctx, user.ID)
		if err != nil {
			b.respondFriendlyError(ctx, s, i, err)
			return
		}

		respond(ctx, s, i, fmt.Sprintf(MsgDailyFmt, b.render.coins(claim.Amount), b.render.coins(claim.NewBalance)), false)
	}

	return cmd, handler
}

// balanceCommand shows the caller's balance, or another user's
func (b *Bot) balanceCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CommandBalance,
		Description: "Show a coin balance",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        OptionUser,
				Description: "Whose balance to show (default: you)",
				Required:    false,
			},
		},
	}

	handler := func(ctx context.Context, s Session, i *discordgo.InteractionCreate) {
		targetID := getInteractionUser(i).ID
		if opt := getOption(i, OptionUser); opt != nil {
			targetID = opt.UserValue(nil).ID
		}

		balance, err := b.econ.Balance(ctx, targetID)
		if err != nil {
			b.respondFriendlyError(ctx, s, i, err)
			return
		}

		respond(ctx, s, i, fmt.Sprintf(MsgBalanceFmt, mention(targetID), b.render.coins(balance)), false)
	}

	return cmd, handler
}

// leaderboardCommand lists the richest accounts
func (b *Bot) leaderboardCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minValue := float64(1)

	cmd := &discordgo.ApplicationCommand{
		Name:        CommandLeaderboard,
		Description: "Show the richest players",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        OptionLimit,
				Description: fmt.Sprintf("How many players to show (default: %d)", DefaultLeaderboardLimit),
				Required:    false,
				MinValue:    &minValue,
				MaxValue:    MaxLeaderboardLimit,
			},
		},
	}

	handler := func(ctx context.Context, s Session, i *discordgo.InteractionCreate) {
		limit := DefaultLeaderboardLimit
		if opt := getOption(i, OptionLimit); opt != nil {
			limit = min(max(int(opt.IntValue()), 1), MaxLeaderboardLimit)
		}

		respondEmbed(ctx, s, i, b.render.leaderboardEmbed(b.econ.Leaderboard(limit)))
	}

	return cmd, handler
}

// giveCommand credits coins on behalf of the configured admin
func (b *Bot) giveCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minValue := float64(1)

	cmd := &discordgo.ApplicationCommand{
		Name:        CommandGive,
		Description: "Give coins to a player (admin only)",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        OptionUser,
				Description: "Who receives the coins",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        OptionAmount,
				Description: "How many coins",
				Required:    true,
				MinValue:    &minValue,
			},
		},
	}

	handler := func(ctx context.Context, s Session, i *discordgo.InteractionCreate) {
		requester := getInteractionUser(i)

		var targetID string
		if opt := getOption(i, OptionUser); opt != nil {
			targetID = opt.UserValue(nil).ID
		}
		var amount int64
		if opt := getOption(i, OptionAmount); opt != nil {
			amount = opt.IntValue()
		}

		balance, err := b.econ.AdminCredit(ctx, requester.ID, targetID, amount)
		if err != nil {
			b.respondFriendlyError(ctx, s, i, err)
			return
		}

		respond(ctx, s, i, fmt.Sprintf(MsgGiveFmt, b.render.coins(amount), mention(targetID), b.render.coins(balance)), false)
	}

	return cmd, handler
}
