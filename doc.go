// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the lookout bridge server.

Lookout accepts device/location reports from an external launcher over HTTP,
posts them as interactive cards into a Discord channel, lets operators attach
identity fields (Roblox username, Discord id) via pop-up forms, persists the
merged records to a flat JSON blob, and answers keyword searches with
deduplicated summaries.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	LOOKOUT_SECRET=... DISCORD_TOKEN=... INTAKE_CHANNEL_ID=... go run main.go

Or with flags:

	go run main.go -p 3319 -f lookout.json --channel 1234567890

# Configuration

Required settings:

  - LOOKOUT_SECRET (--secret): shared secret for the intake API
  - DISCORD_TOKEN (--token): Discord bot token
  - INTAKE_CHANNEL_ID (--channel): channel receiving intake cards

Optional settings:

  - PORT (-p): server port (default: 3319)
  - STORE_PATH (-f): record store file (default: lookout.json)
  - GUILD_ID (--guild): guild for slash-command registration
  - STATUS_CHANNEL_ID / STATUS_TEXT: status display sync

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (intake, search)
  - router: Route definitions using Go 1.22+ routing
  - middleware: logging, shared-secret guard, JSON helpers
  - models: request/response and record types
  - store: flat-file JSON record store
  - reconcile: intake and identity-submission merging with propagation
  - query: search and aggregation
  - avatar: best-effort Roblox avatar lookup
  - cards: Discord cards, modals, /search command, status display
  - auth: shared-secret validation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
