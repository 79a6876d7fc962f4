package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/SlotBot_Go/internal/game"
)

// commands builds the slash command registry.
func (b *Bot) commands() *CommandRegistry {
	r := NewCommandRegistry()
	r.Register(b.slotsCommand())
	r.Register(b.dailyCommand())
	r.Register(b.balanceCommand())
	r.Register(b.leaderboardCommand())
	r.Register(b.giveCommand())
	return r
}

// slotsCommand mirrors the prefix command. The bet is a string option so
// both surfaces share one parser.
func (b *Bot) slotsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CommandSlots,
		Description: "Spin the slot machine",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptionBet,
				Description: "Coins to bet (a positive whole number)",
				Required:    true,
			},
		},
	}

	handler := func(ctx context.Context, s Session, i *discordgo.InteractionCreate) {
		user := getInteractionUser(i)

		raw := ""
		if opt := getOption(i, OptionBet); opt != nil {
			raw = opt.StringValue()
		}

		wager, err := game.ParseWager(raw)
		if err != nil {
			b.respondFriendlyError(ctx, s, i, err)
			return
		}

		_, err = b.econ.PlaceBet(ctx, user.ID, wager, &interactionNotifier{
			session:     s,
			render:      b.render,
			interaction: i.Interaction,
			player:      player{ID: user.ID, Username: user.Username},
		})
		if err != nil {
			b.respondFriendlyError(ctx, s, i, err)
		}
	}

	return cmd, handler
}
