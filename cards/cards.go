// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cards

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/danielhkuo/lookout/models"
)

// Embed field names. EditCard patches by name, so these are part of the
// card's wire contract with itself.
const (
	fieldDeviceUser = "Device User"
	fieldDeviceID   = "Device ID"
	fieldLocation   = "Location"
	fieldUsername   = "Username"
	fieldDiscord    = "Discord"

	emptyValue = "—"
)

// Component custom IDs. The card reference is the ID of the message carrying
// the component, so buttons need no per-card state.
const (
	buttonSetUsername = "lookout:set:username"
	buttonSetDiscord  = "lookout:set:discord"
	modalUsername     = "lookout:modal:username"
	modalDiscord      = "lookout:modal:discord"
	inputValue        = "lookout:input:value"
)

// Service posts and edits intake cards in one Discord channel. It implements
// reconcile.Cards.
type Service struct {
	session   *discordgo.Session
	channelID string
}

func NewService(session *discordgo.Session, channelID string) *Service {
	return &Service{session: session, channelID: channelID}
}

// CreateCard posts an intake card and returns the message ID as the card
// reference.
func (s *Service) CreateCard(ctx context.Context, rec models.Record) (string, error) {
	msg, err := s.session.ChannelMessageSendComplex(s.channelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{intakeEmbed(rec)},
		Components: cardButtons(),
	}, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to send card: %w", err)
	}
	return msg.ID, nil
}

// EditCard patches the identity fields on an existing card.
func (s *Service) EditCard(ctx context.Context, ref string, patch models.Patch) error {
	msg, err := s.session.ChannelMessage(s.channelID, ref, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to fetch card %s: %w", ref, err)
	}
	if len(msg.Embeds) == 0 {
		return fmt.Errorf("card %s has no embed", ref)
	}

	embed := msg.Embeds[0]
	for _, f := range embed.Fields {
		switch f.Name {
		case fieldUsername:
			if patch.Username != "" {
				f.Value = patch.Username
			}
		case fieldDiscord:
			if patch.DiscordID != "" {
				f.Value = patch.DiscordID
			}
		}
	}

	embeds := []*discordgo.MessageEmbed{embed}
	_, err = s.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel: s.channelID,
		ID:      ref,
		Embeds:  &embeds,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to edit card %s: %w", ref, err)
	}
	return nil
}

func intakeEmbed(rec models.Record) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "Launcher Report",
		Color: 0x5865F2,
		Fields: []*discordgo.MessageEmbedField{
			{Name: fieldDeviceUser, Value: orEmpty(rec.DeviceUser), Inline: true},
			{Name: fieldDeviceID, Value: orEmpty(rec.DeviceID), Inline: true},
			{Name: fieldLocation, Value: orEmpty(rec.Location()), Inline: false},
			{Name: fieldUsername, Value: orEmpty(rec.Username), Inline: true},
			{Name: fieldDiscord, Value: orEmpty(rec.DiscordID), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: rec.Timestamp},
	}
}

func cardButtons() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Set Username",
					Style:    discordgo.PrimaryButton,
					CustomID: buttonSetUsername,
				},
				discordgo.Button{
					Label:    "Set Discord",
					Style:    discordgo.SecondaryButton,
					CustomID: buttonSetDiscord,
				},
			},
		},
	}
}

func orEmpty(s string) string {
	if s == "" {
		return emptyValue
	}
	return s
}
