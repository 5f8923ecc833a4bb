// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cards

import (
	"testing"

	"github.com/bwmarrin/discordgo"

	"github.com/danielhkuo/lookout/models"
	"github.com/danielhkuo/lookout/query"
)

func TestIntakeEmbed(t *testing.T) {
	rec := models.Record{
		Timestamp:  "2025-01-02 03:04:05",
		DeviceUser: "u1",
		DeviceID:   "d1",
		Country:    "US",
		Region:     "CA",
	}

	embed := intakeEmbed(rec)

	values := map[string]string{}
	for _, f := range embed.Fields {
		values[f.Name] = f.Value
	}

	if values[fieldDeviceUser] != "u1" || values[fieldDeviceID] != "d1" {
		t.Errorf("Device fields wrong: %v", values)
	}
	if values[fieldLocation] != "CA, US" {
		t.Errorf("Location = %q, want \"CA, US\"", values[fieldLocation])
	}
	// Identity fields start as placeholders; EditCard patches them later.
	if values[fieldUsername] != emptyValue || values[fieldDiscord] != emptyValue {
		t.Errorf("Identity fields should start empty: %v", values)
	}
	if embed.Footer == nil || embed.Footer.Text != rec.Timestamp {
		t.Error("Timestamp should ride in the footer")
	}
}

func TestCardButtons(t *testing.T) {
	components := cardButtons()
	if len(components) != 1 {
		t.Fatalf("Expected one actions row, got %d", len(components))
	}
	row, ok := components[0].(discordgo.ActionsRow)
	if !ok {
		t.Fatalf("Expected ActionsRow, got %T", components[0])
	}
	if len(row.Components) != 2 {
		t.Fatalf("Expected two buttons, got %d", len(row.Components))
	}

	ids := map[string]bool{}
	for _, c := range row.Components {
		btn, ok := c.(discordgo.Button)
		if !ok {
			t.Fatalf("Expected Button, got %T", c)
		}
		ids[btn.CustomID] = true
	}
	if !ids[buttonSetUsername] || !ids[buttonSetDiscord] {
		t.Errorf("Button IDs wrong: %v", ids)
	}
}

func TestModalValue(t *testing.T) {
	data := discordgo.ModalSubmitInteractionData{
		CustomID: modalUsername + "|12345",
		Components: []discordgo.MessageComponent{
			&discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					&discordgo.TextInput{CustomID: inputValue, Value: "Bob"},
				},
			},
		},
	}

	if got := modalValue(data); got != "Bob" {
		t.Errorf("modalValue = %q, want Bob", got)
	}

	if got := modalValue(discordgo.ModalSubmitInteractionData{}); got != "" {
		t.Errorf("Expected empty value for empty modal, got %q", got)
	}
}

func TestSummaryEmbedSkipsEmptyLists(t *testing.T) {
	sum := query.Summary{
		Matches:     2,
		DeviceIDs:   []string{"d1"},
		DeviceUsers: []string{"u1", "u2"},
		Timestamps:  []string{"2025-01-01 10:00:00"},
	}
	embed := summaryEmbed(query.FieldDeviceID, "abc", sum)
	names := map[string]bool{}
	for _, f := range embed.Fields {
		names[f.Name] = true
	}
	if !names["Matches"] || !names["Device IDs"] {
		t.Errorf("Expected core fields, got %v", names)
	}
	if names["Locations"] {
		t.Error("Empty location list should be omitted")
	}
}
