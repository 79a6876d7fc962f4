package discord

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"

	"github.com/osse101/SlotBot_Go/internal/game"
)

const testPrefix = ".slots"

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// inlineScheduler reveals immediately
type inlineScheduler struct{}

func (inlineScheduler) Schedule(_ time.Duration, fn func(ctx context.Context)) uuid.UUID {
	fn(context.Background())
	return uuid.New()
}

// fakeSession records every outgoing call
type fakeSession struct {
	mu sync.Mutex

	sendErr        error
	editErr        error
	sendComplexErr error
	respondErr     error
	responseEdErr  error
	followupErr    error

	sent          []string
	edits         []*discordgo.MessageEdit
	sentComplex   []*discordgo.MessageSend
	replies       []string
	responses     []*discordgo.InteractionResponse
	responseEdits []*discordgo.WebhookEdit
	followups     []*discordgo.WebhookParams

	nextID int
}

func (f *fakeSession) id() string {
	f.nextID++
	return fmt.Sprintf("msg-%d", f.nextID)
}

func (f *fakeSession) ChannelMessageSend(channelID, content string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.sent = append(f.sent, content)
	return &discordgo.Message{ID: f.id(), ChannelID: channelID, Content: content}, nil
}

func (f *fakeSession) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendComplexErr != nil {
		return nil, f.sendComplexErr
	}
	f.sentComplex = append(f.sentComplex, data)
	return &discordgo.Message{ID: f.id(), ChannelID: channelID}, nil
}

func (f *fakeSession) ChannelMessageSendReply(channelID, content string, _ *discordgo.MessageReference, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies = append(f.replies, content)
	return &discordgo.Message{ID: f.id(), ChannelID: channelID, Content: content}, nil
}

func (f *fakeSession) ChannelMessageEditComplex(m *discordgo.MessageEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.editErr != nil {
		return nil, f.editErr
	}
	f.edits = append(f.edits, m)
	return &discordgo.Message{ID: m.ID, ChannelID: m.Channel}, nil
}

func (f *fakeSession) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.respondErr != nil {
		return f.respondErr
	}
	f.responses = append(f.responses, resp)
	return nil
}

func (f *fakeSession) InteractionResponseEdit(_ *discordgo.Interaction, edit *discordgo.WebhookEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.responseEdErr != nil {
		return nil, f.responseEdErr
	}
	f.responseEdits = append(f.responseEdits, edit)
	return &discordgo.Message{ID: f.id()}, nil
}

func (f *fakeSession) FollowupMessageCreate(_ *discordgo.Interaction, _ bool, data *discordgo.WebhookParams, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.followupErr != nil {
		return nil, f.followupErr
	}
	f.followups = append(f.followups, data)
	return &discordgo.Message{ID: f.id()}, nil
}

// newTestBot wires a bot to a real economy whose reels always land on the
// symbol at roll.
func newTestBot(roll float64) (*Bot, *game.EconomyState) {
	state := game.New(game.Config{AdminID: "admin"}, nil, inlineScheduler{},
		game.WithRNG(func() float64 { return roll }),
		game.WithClock(func() time.Time { return testNow }),
	)
	b := newBot(Config{Prefix: testPrefix}, state)
	b.render = newRenderer(testPrefix, func() time.Time { return testNow })
	return b, state
}

func chatMessage(id, userID, content string) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{Message: &discordgo.Message{
		ID:        id,
		ChannelID: "channel-1",
		Content:   content,
		Author:    &discordgo.User{ID: userID, Username: userID + "_name"},
	}}
}

func slash(id, userID, name string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:     id,
		Type:   discordgo.InteractionApplicationCommand,
		Member: &discordgo.Member{User: &discordgo.User{ID: userID, Username: userID + "_name"}},
		Data: discordgo.ApplicationCommandInteractionData{
			Name:    name,
			Options: opts,
		},
	}}
}

func stringOpt(name, v string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionString, Value: v}
}

func intOpt(name string, v int64) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionInteger, Value: float64(v)}
}

func userOpt(name, id string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionUser, Value: id}
}
