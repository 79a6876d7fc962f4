package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/SlotBot_Go/internal/game"
)

// player identifies who placed a bet, for footers and mentions.
type player struct {
	ID       string
	Username string
}

// channelNotifier announces prefix-command bets as a plain channel message
// and edits it into the result.
type channelNotifier struct {
	session   Session
	render    *renderer
	channelID string
	player    player
}

func (n *channelNotifier) AnnounceSpin(_ context.Context, _ game.Bet) (game.Announcement, error) {
	msg, err := n.session.ChannelMessageSend(n.channelID, rollingLine())
	if err != nil {
		return nil, err
	}
	return &channelAnnouncement{notifier: n, messageID: msg.ID}, nil
}

// Reply posts the result as a new message mentioning the player.
func (n *channelNotifier) Reply(_ context.Context, o game.Outcome) error {
	_, err := n.session.ChannelMessageSendComplex(n.channelID, &discordgo.MessageSend{
		Content: mention(n.player.ID) + " " + reelLine(o.Reels),
		Embeds:  []*discordgo.MessageEmbed{n.render.resultEmbed(o, n.player.Username)},
	})
	return err
}

type channelAnnouncement struct {
	notifier  *channelNotifier
	messageID string
}

func (a *channelAnnouncement) Reveal(_ context.Context, o game.Outcome) error {
	n := a.notifier
	content := reelLine(o.Reels)
	embeds := []*discordgo.MessageEmbed{n.render.resultEmbed(o, n.player.Username)}
	_, err := n.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
		ID:      a.messageID,
		Channel: n.channelID,
		Content: &content,
		Embeds:  &embeds,
	})
	return err
}

// interactionNotifier announces slash-command bets as the interaction
// response and edits that response into the result.
type interactionNotifier struct {
	session     Session
	render      *renderer
	interaction *discordgo.Interaction
	player      player
}

func (n *interactionNotifier) AnnounceSpin(_ context.Context, _ game.Bet) (game.Announcement, error) {
	err := n.session.InteractionRespond(n.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: rollingLine(),
		},
	})
	if err != nil {
		return nil, err
	}
	return n, nil
}

// Reveal edits the original interaction response.
func (n *interactionNotifier) Reveal(_ context.Context, o game.Outcome) error {
	content := reelLine(o.Reels)
	_, err := n.session.InteractionResponseEdit(n.interaction, &discordgo.WebhookEdit{
		Content: &content,
		Embeds:  &[]*discordgo.MessageEmbed{n.render.resultEmbed(o, n.player.Username)},
	})
	return err
}

// Reply sends a follow-up. Interaction tokens outlive the original response
// for fifteen minutes, which covers any reveal delay.
func (n *interactionNotifier) Reply(_ context.Context, o game.Outcome) error {
	_, err := n.session.FollowupMessageCreate(n.interaction, false, &discordgo.WebhookParams{
		Content: mention(n.player.ID) + " " + reelLine(o.Reels),
		Embeds:  []*discordgo.MessageEmbed{n.render.resultEmbed(o, n.player.Username)},
	})
	return err
}
