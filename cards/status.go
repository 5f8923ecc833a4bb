// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cards

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// PlanStatusUpdate decides whether the status display needs an edit. Pure:
// given the desired text and what is currently displayed, it returns the
// topic to set and whether an edit is required. An empty desired text never
// edits.
func PlanStatusUpdate(desired, current string) (string, bool) {
	desired = strings.TrimSpace(desired)
	if desired == "" || desired == strings.TrimSpace(current) {
		return "", false
	}
	return desired, true
}

// ReconcileStatus syncs the status channel topic to the desired text.
// Idempotent; called periodically from main.
func (s *Service) ReconcileStatus(ctx context.Context, channelID, desired string) error {
	ch, err := s.session.Channel(channelID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to fetch status channel: %w", err)
	}

	topic, needed := PlanStatusUpdate(desired, ch.Topic)
	if !needed {
		return nil
	}

	if _, err := s.session.ChannelEdit(channelID, &discordgo.ChannelEdit{
		Topic: topic,
	}, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to edit status channel: %w", err)
	}
	return nil
}
