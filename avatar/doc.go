// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package avatar resolves Roblox usernames to headshot image URLs via two
// sequential API lookups (name to id, id to thumbnail). The lookup is a
// best-effort enrichment for search results: every failure mode collapses to
// "no avatar" and is never surfaced to the caller. No retries; the next
// search attempts a fresh resolution.
package avatar
