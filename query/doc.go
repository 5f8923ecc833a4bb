// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package query filters and aggregates the record log.

Search is case-insensitive substring containment on a single field, where
"location" spans city, region, and country, and "any" spans every searchable
field. An unrecognized field name searches every field instead of failing.

Aggregate turns a filtered set into deduplicated display lists: device ids,
device users, and locations in first-occurrence order, timestamps sorted
ascending, plus the first non-empty username as the avatar candidate. Lists
longer than the display limit end with a "+N more" marker.
*/
package query
