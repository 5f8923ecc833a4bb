// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the bridge.

# Request Types

Types for parsing incoming JSON:

  - IntakeRequest: device_user, device_id, country, region, city
  - SearchRequest: field, value

# Response Types

Types for JSON responses:

  - IntakeResponse: ok
  - SearchResponse: matches plus the aggregated display lists
  - ErrorResponse: error, message

# Domain Types

  - Record: one intake event plus its later identity enrichment
  - Patch: partial identity update (non-empty fields win)

Record timestamps use TimestampFormat, chosen so that sorting the strings
sorts the instants.
*/
package models
