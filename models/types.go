// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "strings"

// TimestampFormat is the fixed wire format for record timestamps.
// Lexicographic order on these strings equals chronological order.
const TimestampFormat = "2006-01-02 15:04:05"

// Request types

type IntakeRequest struct {
	DeviceUser string `json:"device_user"`
	DeviceID   string `json:"device_id"`
	Country    string `json:"country,omitempty"`
	Region     string `json:"region,omitempty"`
	City       string `json:"city,omitempty"`
}

type SearchRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// Response types

type IntakeResponse struct {
	OK bool `json:"ok"`
}

type SearchResponse struct {
	Matches     int      `json:"matches"`
	DeviceIDs   []string `json:"device_ids,omitempty"`
	DeviceUsers []string `json:"device_users,omitempty"`
	Locations   []string `json:"locations,omitempty"`
	Timestamps  []string `json:"timestamps,omitempty"`
	AvatarName  string   `json:"avatar_name,omitempty"`
	AvatarURL   string   `json:"avatar_url,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Domain types

// Record is one intake event reported by the launcher, later enriched by
// operator identity submissions.
type Record struct {
	ID            string `json:"id"`
	Timestamp     string `json:"timestamp"`
	DeviceUser    string `json:"device_user"`
	DeviceID      string `json:"device_id"`
	Country       string `json:"country,omitempty"`
	Region        string `json:"region,omitempty"`
	City          string `json:"city,omitempty"`
	Username      string `json:"username,omitempty"`
	DiscordID     string `json:"discord_id,omitempty"`
	CardReference string `json:"card_reference,omitempty"`
}

// Location renders the "city, region, country" display string, omitting
// empty parts. Empty when the record carries no location at all.
func (r Record) Location() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{r.City, r.Region, r.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// Patch carries enrichment fields for an existing record. Only non-empty
// fields overwrite.
type Patch struct {
	Username  string
	DiscordID string
}

// Apply merges the patch into r, skipping empty patch fields.
func (p Patch) Apply(r *Record) {
	if p.Username != "" {
		r.Username = p.Username
	}
	if p.DiscordID != "" {
		r.DiscordID = p.DiscordID
	}
}

// IsZero reports whether the patch carries no fields at all.
func (p Patch) IsZero() bool {
	return p.Username == "" && p.DiscordID == ""
}
