// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package query

import (
	"fmt"
	"sort"
	"strings"

	"github.com/danielhkuo/lookout/models"
)

// Field selects which record field a search matches against.
type Field int

const (
	FieldAny Field = iota
	FieldUsername
	FieldDeviceID
	FieldDeviceUser
	FieldLocation
)

// Display truncation limits. Longer lists get a "+N more" marker entry.
const (
	maxListEntries      = 10
	maxTimestampEntries = 15
)

// ParseField maps a user-supplied field name to a Field. Unrecognized names
// fall back to FieldAny rather than erroring.
func ParseField(s string) Field {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "username":
		return FieldUsername
	case "deviceid", "device_id":
		return FieldDeviceID
	case "deviceuser", "device_user":
		return FieldDeviceUser
	case "location":
		return FieldLocation
	default:
		return FieldAny
	}
}

func (f Field) String() string {
	switch f {
	case FieldUsername:
		return "username"
	case FieldDeviceID:
		return "device_id"
	case FieldDeviceUser:
		return "device_user"
	case FieldLocation:
		return "location"
	default:
		return "any"
	}
}

// Search returns the records whose selected field case-insensitively
// contains value, preserving insertion order.
func Search(records []models.Record, field Field, value string) []models.Record {
	needle := strings.ToLower(strings.TrimSpace(value))
	var out []models.Record
	for _, rec := range records {
		if matches(rec, field, needle) {
			out = append(out, rec)
		}
	}
	return out
}

func matches(rec models.Record, field Field, needle string) bool {
	switch field {
	case FieldUsername:
		return contains(rec.Username, needle)
	case FieldDeviceID:
		return contains(rec.DeviceID, needle)
	case FieldDeviceUser:
		return contains(rec.DeviceUser, needle)
	case FieldLocation:
		return matchesLocation(rec, needle)
	case FieldAny:
		return contains(rec.Username, needle) ||
			contains(rec.DeviceUser, needle) ||
			contains(rec.DeviceID, needle) ||
			matchesLocation(rec, needle)
	}
	return false
}

func matchesLocation(rec models.Record, needle string) bool {
	return contains(rec.Region, needle) ||
		contains(rec.Country, needle) ||
		contains(rec.City, needle)
}

func contains(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(strings.TrimSpace(haystack)), needle)
}

// Summary is the deduplicated rollup of a non-empty result set.
type Summary struct {
	Matches     int
	DeviceIDs   []string
	DeviceUsers []string
	Locations   []string
	Timestamps  []string
	AvatarName  string
}

// Aggregate rolls a filtered record set up into deduplicated display lists.
// Device ids, device users, and locations keep first-occurrence order;
// timestamps are sorted ascending. Callers invoke it only on a non-empty set.
func Aggregate(records []models.Record) Summary {
	sum := Summary{Matches: len(records)}

	var deviceIDs, deviceUsers, locations, timestamps []string
	seenIDs := map[string]bool{}
	seenUsers := map[string]bool{}
	seenLocs := map[string]bool{}
	seenTimes := map[string]bool{}

	for _, rec := range records {
		if rec.DeviceID != "" && !seenIDs[rec.DeviceID] {
			seenIDs[rec.DeviceID] = true
			deviceIDs = append(deviceIDs, rec.DeviceID)
		}
		if rec.DeviceUser != "" && !seenUsers[rec.DeviceUser] {
			seenUsers[rec.DeviceUser] = true
			deviceUsers = append(deviceUsers, rec.DeviceUser)
		}
		if loc := rec.Location(); loc != "" {
			// Dedup on the case-folded composite key; the first-seen
			// rendering is the one displayed.
			key := locationKey(rec)
			if !seenLocs[key] {
				seenLocs[key] = true
				locations = append(locations, loc)
			}
		}
		if rec.Timestamp != "" && !seenTimes[rec.Timestamp] {
			seenTimes[rec.Timestamp] = true
			timestamps = append(timestamps, rec.Timestamp)
		}
		if sum.AvatarName == "" && rec.Username != "" {
			sum.AvatarName = rec.Username
		}
	}

	sort.Strings(timestamps)

	sum.DeviceIDs = truncate(deviceIDs, maxListEntries)
	sum.DeviceUsers = truncate(deviceUsers, maxListEntries)
	sum.Locations = truncate(locations, maxListEntries)
	sum.Timestamps = truncate(timestamps, maxTimestampEntries)
	return sum
}

func locationKey(rec models.Record) string {
	return strings.ToLower(strings.Join([]string{rec.City, rec.Region, rec.Country}, "|"))
}

// truncate caps a list at max entries, appending a marker for the remainder.
func truncate(items []string, max int) []string {
	if len(items) <= max {
		return items
	}
	return append(items[:max:max], fmt.Sprintf("+%d more", len(items)-max))
}
