package discord

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/SlotBot_Go/internal/logger"
	"github.com/osse101/SlotBot_Go/internal/metrics"
)

// CommandHandler handles a slash command
type CommandHandler func(ctx context.Context, s Session, i *discordgo.InteractionCreate)

// CommandRegistry holds the registered commands
type CommandRegistry struct {
	Commands map[string]*discordgo.ApplicationCommand
	Handlers map[string]CommandHandler
}

// NewCommandRegistry creates a new registry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		Commands: make(map[string]*discordgo.ApplicationCommand),
		Handlers: make(map[string]CommandHandler),
	}
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(cmd *discordgo.ApplicationCommand, handler CommandHandler) {
	r.Commands[cmd.Name] = cmd
	r.Handlers[cmd.Name] = handler
}

// Handle processes an interaction
func (r *CommandRegistry) Handle(ctx context.Context, s Session, i *discordgo.InteractionCreate) {
	name := i.ApplicationCommandData().Name
	h, ok := r.Handlers[name]
	if !ok {
		logger.FromContext(ctx).Warn(LogMsgUnknownCommand, "command", name)
		return
	}
	metrics.ChatCommands.WithLabelValues(name).Inc()
	h(ctx, s, i)
}

// RegisterCommands pushes the registry to Discord. The bulk overwrite is
// skipped when Discord already holds the same definitions, since it counts
// against a tight daily quota.
func (b *Bot) RegisterCommands(appID string, forceUpdate bool) error {
	slog.Info(LogMsgCheckingCommands, "guild_id", b.cfg.GuildID)

	existing, err := b.Session.ApplicationCommands(appID, b.cfg.GuildID)
	if err != nil {
		return fmt.Errorf("failed to fetch existing commands: %w", err)
	}

	desired := slices.SortedFunc(maps.Values(b.Registry.Commands), func(a, c *discordgo.ApplicationCommand) int {
		return strings.Compare(a.Name, c.Name)
	})

	if !forceUpdate && commandsEqual(existing, desired) {
		slog.Info(LogMsgCommandsUnchanged, "count", len(existing))
		return nil
	}

	slog.Info(LogMsgCommandsChanged,
		"existing", len(existing),
		"desired", len(desired),
		"force", forceUpdate)

	if _, err := b.Session.ApplicationCommandBulkOverwrite(appID, b.cfg.GuildID, desired); err != nil {
		return fmt.Errorf("failed to update commands: %w", err)
	}

	slog.Info(LogMsgCommandsUpdated, "count", len(desired))
	return nil
}

// commandsEqual compares two command sets by fingerprint, ignoring order and
// the server-assigned ids and versions.
func commandsEqual(a, b []*discordgo.ApplicationCommand) bool {
	return maps.Equal(fingerprints(a), fingerprints(b))
}

func fingerprints(cmds []*discordgo.ApplicationCommand) map[string]string {
	out := make(map[string]string, len(cmds))
	for _, cmd := range cmds {
		out[cmd.Name] = fingerprint(cmd)
	}
	return out
}

// fingerprint covers the fields this bot sets on a command.
func fingerprint(cmd *discordgo.ApplicationCommand) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s|%s", cmd.Name, cmd.Description)
	if p := cmd.DefaultMemberPermissions; p != nil {
		fmt.Fprintf(&sb, "|perm=%d", *p)
	}
	for _, o := range cmd.Options {
		fmt.Fprintf(&sb, "|opt:%d:%s:%s:%t:%g", o.Type, o.Name, o.Description, o.Required, o.MaxValue)
		if o.MinValue != nil {
			fmt.Fprintf(&sb, ":min=%g", *o.MinValue)
		}
	}
	return sb.String()
}

// getInteractionUser extracts the user from an interaction.
// Handles both guild (i.Member.User) and DM (i.User) contexts.
func getInteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// getOption returns the named option, or nil when it was not supplied.
func getOption(i *discordgo.InteractionCreate, name string) *discordgo.ApplicationCommandInteractionDataOption {
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == name {
			return opt
		}
	}
	return nil
}

// respond answers an interaction with plain content.
func respond(ctx context.Context, s Session, i *discordgo.InteractionCreate, content string, ephemeral bool) {
	data := &discordgo.InteractionResponseData{Content: content}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}); err != nil {
		logger.FromContext(ctx).Warn(LogMsgRespondFailed, "error", err)
	}
}

// respondEmbed answers an interaction with a single embed.
func respondEmbed(ctx context.Context, s Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	}); err != nil {
		logger.FromContext(ctx).Warn(LogMsgRespondFailed, "error", err)
	}
}

// respondFriendlyError shows a rejected command only to the caller.
func (b *Bot) respondFriendlyError(ctx context.Context, s Session, i *discordgo.InteractionCreate, err error) {
	logger.FromContext(ctx).Debug(LogMsgCommandFailed,
		"command", i.ApplicationCommandData().Name,
		"error", err)
	respond(ctx, s, i, b.render.errorText(err), true)
}
