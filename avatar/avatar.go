// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package avatar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// Resolver looks up a Roblox avatar headshot for a username. Both lookups
// are best-effort: any failure yields absent, never an error.
type Resolver struct {
	Client    *http.Client
	UsersURL  string // base URL of the users API
	ThumbsURL string // base URL of the thumbnails API
}

// New returns a resolver against the production Roblox APIs.
func New() *Resolver {
	return &Resolver{
		Client:    &http.Client{Timeout: 10 * time.Second},
		UsersURL:  "https://users.roblox.com",
		ThumbsURL: "https://thumbnails.roblox.com",
	}
}

// Resolve returns the headshot image URL for username. ok is false when
// either lookup step fails; the failure is logged and swallowed.
func (r *Resolver) Resolve(ctx context.Context, username string) (imageURL string, ok bool) {
	id, ok := r.lookupID(ctx, username)
	if !ok {
		return "", false
	}
	return r.lookupHeadshot(ctx, id)
}

// lookupID resolves a username to a numeric user id.
func (r *Resolver) lookupID(ctx context.Context, username string) (int64, bool) {
	payload, err := json.Marshal(map[string]any{
		"usernames":          []string{username},
		"excludeBannedUsers": true,
	})
	if err != nil {
		return 0, false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		r.UsersURL+"/v1/usernames/users", bytes.NewReader(payload))
	if err != nil {
		return 0, false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.Client.Do(req)
	if err != nil {
		slog.Debug("avatar user lookup failed", "username", username, "error", err)
		return 0, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Debug("avatar user lookup failed", "username", username, "status", resp.StatusCode)
		return 0, false
	}

	var out struct {
		Data []struct {
			ID int64 `json:"id"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil || len(out.Data) == 0 {
		return 0, false
	}
	return out.Data[0].ID, true
}

// lookupHeadshot resolves a user id to a headshot image URL.
func (r *Resolver) lookupHeadshot(ctx context.Context, userID int64) (string, bool) {
	endpoint := fmt.Sprintf("%s/v1/users/avatar-headshot?%s", r.ThumbsURL, url.Values{
		"userIds": {fmt.Sprintf("%d", userID)},
		"size":    {"150x150"},
		"format":  {"Png"},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", false
	}

	resp, err := r.Client.Do(req)
	if err != nil {
		slog.Debug("avatar headshot lookup failed", "user_id", userID, "error", err)
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Debug("avatar headshot lookup failed", "user_id", userID, "status", resp.StatusCode)
		return "", false
	}

	var out struct {
		Data []struct {
			ImageURL string `json:"imageUrl"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil || len(out.Data) == 0 {
		return "", false
	}
	if out.Data[0].ImageURL == "" {
		return "", false
	}
	return out.Data[0].ImageURL, true
}
