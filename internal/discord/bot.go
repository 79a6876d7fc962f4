package discord

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/SlotBot_Go/internal/game"
	"github.com/osse101/SlotBot_Go/internal/logger"
	"github.com/osse101/SlotBot_Go/internal/metrics"
)

// Bot represents the Discord bot
type Bot struct {
	Session  *discordgo.Session
	Registry *CommandRegistry

	cfg    Config
	econ   Economy
	render *renderer
	seen   *dedup

	// ctx is the parent of every handler context; set by Start
	ctx context.Context
}

// Config holds the bot configuration
type Config struct {
	Token string
	// AppID defaults to the bot user's id once connected
	AppID string
	// GuildID scopes slash commands to one guild; empty registers globally
	GuildID string
	Prefix  string
}

// New creates a new Discord bot
func New(cfg Config, econ Economy) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsMessageContent

	b := newBot(cfg, econ)
	b.Session = s
	return b, nil
}

func newBot(cfg Config, econ Economy) *Bot {
	b := &Bot{
		cfg:    cfg,
		econ:   econ,
		render: newRenderer(cfg.Prefix, nil),
		seen:   newDedup(DedupSize),
		ctx:    context.Background(),
	}
	b.Registry = b.commands()
	return b
}

// Start opens the gateway connection. Handlers run with contexts derived
// from ctx.
func (b *Bot) Start(ctx context.Context) error {
	b.ctx = ctx

	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		b.handleMessage(s, m)
	})
	b.Session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		b.handleInteraction(s, i)
	})

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	slog.Info(LogMsgBotRunning, "prefix", b.cfg.Prefix)
	return nil
}

// Stop closes the gateway connection
func (b *Bot) Stop() error {
	return b.Session.Close()
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info(LogMsgBotReady, "user", r.User.Username)

	if err := s.UpdateStatusComplex(discordgo.UpdateStatusData{
		Activities: []*discordgo.Activity{
			{
				Name: fmt.Sprintf(PresenceFmt, b.cfg.Prefix),
				Type: discordgo.ActivityTypeGame,
			},
		},
		Status: string(discordgo.StatusOnline),
	}); err != nil {
		slog.Warn(LogMsgPresenceFailed, "error", err)
	}

	appID := b.cfg.AppID
	if appID == "" {
		appID = r.User.ID
	}
	if err := b.RegisterCommands(appID, false); err != nil {
		slog.Error(LogMsgRegisterFailed, "error", err)
	}
}

// handlerContext tags one gateway event with a request id.
func (b *Bot) handlerContext() context.Context {
	return logger.WithRequestID(b.ctx, logger.GenerateRequestID())
}

// parsePrefix splits "<prefix> <amount>" and reports whether the message is
// addressed to the bot. The amount is empty when missing.
func parsePrefix(content, prefix string) (string, bool) {
	fields := strings.Fields(content)
	if len(fields) == 0 || !strings.EqualFold(fields[0], prefix) {
		return "", false
	}
	if len(fields) < 2 {
		return "", true
	}
	return fields[1], true
}

// handleMessage runs the prefix command.
func (b *Bot) handleMessage(s Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	raw, ok := parsePrefix(m.Content, b.cfg.Prefix)
	if !ok {
		return
	}
	if !b.seen.first("message:" + m.ID) {
		slog.Debug(LogMsgDuplicateEvent, "message_id", m.ID)
		return
	}
	metrics.ChatCommands.WithLabelValues(CommandPrefixName).Inc()

	ctx := b.handlerContext()
	log := logger.FromContext(ctx).With("account_id", m.Author.ID, "channel_id", m.ChannelID)

	wager, err := game.ParseWager(raw)
	if err == nil {
		_, err = b.econ.PlaceBet(ctx, m.Author.ID, wager, &channelNotifier{
			session:   s,
			render:    b.render,
			channelID: m.ChannelID,
			player:    player{ID: m.Author.ID, Username: m.Author.Username},
		})
	}
	if err == nil {
		return
	}

	log.Debug(LogMsgCommandFailed, "command", CommandPrefixName, "error", err)
	if _, rerr := s.ChannelMessageSendReply(m.ChannelID, b.render.errorText(err), m.Reference()); rerr != nil {
		log.Warn(LogMsgReplyFailed, "error", rerr)
	}
}

// handleInteraction dispatches slash commands.
func (b *Bot) handleInteraction(s Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	if !b.seen.first("interaction:" + i.ID) {
		slog.Debug(LogMsgDuplicateEvent, "interaction_id", i.ID)
		return
	}
	b.Registry.Handle(b.handlerContext(), s, i)
}

// dedup remembers recently seen gateway event ids.
type dedup struct {
	mu    sync.Mutex
	cache *expirable.LRU[string, struct{}]
}

func newDedup(size int) *dedup {
	return &dedup{cache: expirable.NewLRU[string, struct{}](size, nil, DedupTTL)}
}

// first reports whether key has not been seen within DedupTTL, and marks it seen.
func (d *dedup) first(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cache.Contains(key) {
		return false
	}
	d.cache.Add(key, struct{}{})
	return true
}
