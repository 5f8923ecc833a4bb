// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse parses server configuration from CLI flags with environment
variable fallback. A local .env file is loaded first when present.

Required settings:

  - LOOKOUT_SECRET (--secret): shared secret for the intake API
  - DISCORD_TOKEN (--token): Discord bot token
  - INTAKE_CHANNEL_ID (--channel): channel receiving intake cards

Optional settings:

  - PORT (-p): server port (default: 3319)
  - STORE_PATH (-f): record store file (default: lookout.json)
  - GUILD_ID (--guild): guild for slash-command registration (empty = global)
  - STATUS_CHANNEL_ID (--status-channel), STATUS_TEXT (--status-text):
    status display reconciliation; disabled unless both are set
*/
package cliparse
