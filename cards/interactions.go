// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cards

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/danielhkuo/lookout/avatar"
	"github.com/danielhkuo/lookout/query"
	"github.com/danielhkuo/lookout/reconcile"
	"github.com/danielhkuo/lookout/store"
)

const interactionTimeout = 30 * time.Second

// Bot routes Discord interactions (card buttons, identity modals, the
// /search command) to the core components.
type Bot struct {
	service *Service
	rec     *reconcile.Reconciler
	store   *store.Store
	avatar  *avatar.Resolver
	guildID string
}

func NewBot(service *Service, rec *reconcile.Reconciler, st *store.Store, av *avatar.Resolver, guildID string) *Bot {
	return &Bot{service: service, rec: rec, store: st, avatar: av, guildID: guildID}
}

// Register attaches the interaction handler to the session. Call before
// Open.
func (b *Bot) Register(s *discordgo.Session) {
	s.AddHandler(b.onInteraction)
}

// RegisterCommands creates the /search slash command. Call after Open, once
// the session knows its application ID.
func (b *Bot) RegisterCommands(s *discordgo.Session) error {
	_, err := s.ApplicationCommandCreate(s.State.User.ID, b.guildID, &discordgo.ApplicationCommand{
		Name:        "search",
		Description: "Search launcher reports",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "value",
				Description: "Substring to search for",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "field",
				Description: "Field to search (default: any)",
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "any", Value: "any"},
					{Name: "username", Value: "username"},
					{Name: "device id", Value: "deviceid"},
					{Name: "device user", Value: "deviceuser"},
					{Name: "location", Value: "location"},
				},
			},
		},
	})
	return err
}

func (b *Bot) onInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionMessageComponent:
		b.onButton(s, i)
	case discordgo.InteractionModalSubmit:
		b.onModal(s, i)
	case discordgo.InteractionApplicationCommand:
		if i.ApplicationCommandData().Name == "search" {
			b.onSearch(s, i)
		}
	}
}

// onButton opens the identity modal for the clicked card. The card's message
// ID rides along in the modal custom ID so the submission can find its
// record.
func (b *Bot) onButton(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var modalID, title, label string
	switch i.MessageComponentData().CustomID {
	case buttonSetUsername:
		modalID, title, label = modalUsername, "Set Username", "Roblox username"
	case buttonSetDiscord:
		modalID, title, label = modalDiscord, "Set Discord", "Discord user ID"
	default:
		return
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: modalID + "|" + i.Message.ID,
			Title:    title,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:  inputValue,
							Label:     label,
							Style:     discordgo.TextInputShort,
							Required:  true,
							MaxLength: 100,
						},
					},
				},
			},
		},
	})
	if err != nil {
		slog.Error("failed to open identity modal", "error", err)
	}
}

// onModal applies a submitted identity field and confirms to the submitter.
func (b *Bot) onModal(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ModalSubmitData()
	modalID, cardRef, ok := strings.Cut(data.CustomID, "|")
	if !ok {
		return
	}

	var field reconcile.IdentityField
	switch modalID {
	case modalUsername:
		field = reconcile.IdentityUsername
	case modalDiscord:
		field = reconcile.IdentityDiscord
	default:
		return
	}

	value := modalValue(data)
	submitter := interactionUser(i)

	ctx, cancel := context.WithTimeout(context.Background(), interactionTimeout)
	defer cancel()

	if err := b.rec.ApplyIdentitySubmission(ctx, cardRef, field, value); err != nil {
		slog.Error("identity submission failed",
			"card_ref", cardRef, "submitter", submitter, "error", err)
		respondEphemeral(s, i, "Could not update the card. Try again.")
		return
	}

	slog.Info("identity submitted", "card_ref", cardRef, "submitter", submitter)
	respondEphemeral(s, i, "Saved.")
}

// onSearch runs the query pipeline and renders the summary embed. The
// response is deferred because the avatar lookup can outlast the 3 second
// interaction window.
func (b *Bot) onSearch(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var fieldName, value string
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "field":
			fieldName = opt.StringValue()
		case "value":
			value = opt.StringValue()
		}
	}

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		slog.Error("failed to defer search response", "error", err)
		return
	}

	field := query.ParseField(fieldName)
	matched := query.Search(b.store.Records(), field, value)
	if len(matched) == 0 {
		followup(s, i, &discordgo.WebhookParams{Content: "No results."})
		return
	}

	sum := query.Aggregate(matched)
	embed := summaryEmbed(field, value, sum)
	if sum.AvatarName != "" && b.avatar != nil {
		ctx, cancel := context.WithTimeout(context.Background(), interactionTimeout)
		if url, ok := b.avatar.Resolve(ctx, sum.AvatarName); ok {
			embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: url}
		}
		cancel()
	}

	followup(s, i, &discordgo.WebhookParams{Embeds: []*discordgo.MessageEmbed{embed}})
}

func summaryEmbed(field query.Field, value string, sum query.Summary) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "Search Results",
		Description: "`" + field.String() + "` contains `" + value + "`",
		Color:       0x57F287,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Matches", Value: strconv.Itoa(sum.Matches), Inline: true},
		},
	}
	appendList := func(name string, items []string) {
		if len(items) > 0 {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:  name,
				Value: strings.Join(items, "\n"),
			})
		}
	}
	appendList("Device IDs", sum.DeviceIDs)
	appendList("Device Users", sum.DeviceUsers)
	appendList("Locations", sum.Locations)
	appendList("Timestamps", sum.Timestamps)
	if sum.AvatarName != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Username", Value: sum.AvatarName, Inline: true,
		})
	}
	return embed
}

func modalValue(data discordgo.ModalSubmitInteractionData) string {
	for _, row := range data.Components {
		actions, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, comp := range actions.Components {
			if input, ok := comp.(*discordgo.TextInput); ok && input.CustomID == inputValue {
				return input.Value
			}
		}
	}
	return ""
}

func interactionUser(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.Username
	}
	if i.User != nil {
		return i.User.Username
	}
	return "unknown"
}

func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		slog.Error("failed to respond to interaction", "error", err)
	}
}

func followup(s *discordgo.Session, i *discordgo.InteractionCreate, params *discordgo.WebhookParams) {
	if _, err := s.FollowupMessageCreate(i.Interaction, true, params); err != nil {
		slog.Error("failed to send search followup", "error", err)
	}
}

