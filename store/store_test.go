// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/danielhkuo/lookout/models"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return Open(filepath.Join(t.TempDir(), "lookout.json"))
}

func rec(deviceUser, deviceID, cardRef string) models.Record {
	return models.Record{
		ID:            deviceUser + "-" + deviceID,
		Timestamp:     "2025-01-02 03:04:05",
		DeviceUser:    deviceUser,
		DeviceID:      deviceID,
		CardReference: cardRef,
	}
}

func TestLoadMissingFile(t *testing.T) {
	st := tempStore(t)

	snap := st.Load()
	if len(snap.Records) != 0 {
		t.Errorf("Expected empty records, got %d", len(snap.Records))
	}
	if snap.MessageIndex == nil || len(snap.MessageIndex) != 0 {
		t.Errorf("Expected empty non-nil index, got %v", snap.MessageIndex)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"garbage", "not json at all {"},
		{"wrong shape", `[1, 2, 3]`},
		{"null containers", `{"records": null, "messageIndex": null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "lookout.json")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("Failed to write fixture: %v", err)
			}

			snap := Open(path).Load()
			if len(snap.Records) != 0 {
				t.Errorf("Expected empty records, got %d", len(snap.Records))
			}
			if snap.MessageIndex == nil {
				t.Error("Expected non-nil index")
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := tempStore(t)

	if _, err := st.Append(rec("u1", "d1", "msg-1")); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if _, err := st.Append(models.Record{
		ID:            "r2",
		Timestamp:     "2025-01-02 03:04:06",
		DeviceUser:    "u2",
		DeviceID:      "d2",
		Country:       "US",
		Region:        "CA",
		City:          "Fresno",
		Username:      "Bob",
		DiscordID:     "1234",
		CardReference: "msg-2",
	}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	first := st.Load()
	if err := st.Save(first); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	second := st.Load()

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Round trip mismatch:\nbefore: %+v\nafter:  %+v", first, second)
	}
}

func TestAppendIndexInvariant(t *testing.T) {
	st := tempStore(t)

	// Mix of carded and card-less records
	refs := []string{"msg-1", "", "msg-3", "msg-4", ""}
	for i, ref := range refs {
		pos, err := st.Append(rec("u", string(rune('a'+i)), ref))
		if err != nil {
			t.Fatalf("Append failed: %v", err)
		}
		if pos != i {
			t.Errorf("Expected position %d, got %d", i, pos)
		}
	}

	snap := st.Load()
	if len(snap.Records) != len(refs) {
		t.Fatalf("Expected %d records, got %d", len(refs), len(snap.Records))
	}

	// Every record with a card reference has exactly one index entry
	// pointing at its own position.
	indexed := 0
	for pos, r := range snap.Records {
		if r.CardReference == "" {
			continue
		}
		indexed++
		got, ok := snap.MessageIndex[r.CardReference]
		if !ok {
			t.Errorf("Record at %d: reference %q not indexed", pos, r.CardReference)
			continue
		}
		if got != pos {
			t.Errorf("Reference %q: index points at %d, record is at %d", r.CardReference, got, pos)
		}
	}
	if len(snap.MessageIndex) != indexed {
		t.Errorf("Expected %d index entries, got %d", indexed, len(snap.MessageIndex))
	}
}

func TestFindByCardRef(t *testing.T) {
	st := tempStore(t)
	seedPos, err := st.Append(rec("u1", "d1", "msg-1"))
	if err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	got, pos, err := st.FindByCardRef("msg-1")
	if err != nil {
		t.Fatalf("FindByCardRef failed: %v", err)
	}
	if pos != seedPos {
		t.Errorf("Expected position %d, got %d", seedPos, pos)
	}
	if got.DeviceID != "d1" {
		t.Errorf("Expected device d1, got %q", got.DeviceID)
	}

	_, _, err = st.FindByCardRef("nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestMutatePatchSemantics(t *testing.T) {
	st := tempStore(t)
	pos, err := st.Append(models.Record{
		ID:         "r1",
		DeviceUser: "u1",
		DeviceID:   "d1",
		Username:   "Original",
	})
	if err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	// Empty patch fields do not overwrite.
	if err := st.Mutate(pos, models.Patch{DiscordID: "9876"}); err != nil {
		t.Fatalf("Mutate failed: %v", err)
	}

	got := st.Records()[pos]
	if got.Username != "Original" {
		t.Errorf("Username overwritten by empty patch field: %q", got.Username)
	}
	if got.DiscordID != "9876" {
		t.Errorf("Expected discord id 9876, got %q", got.DiscordID)
	}

	// Non-empty patch fields do overwrite, and survive a reload.
	if err := st.Mutate(pos, models.Patch{Username: "Replacement"}); err != nil {
		t.Fatalf("Mutate failed: %v", err)
	}
	got = st.Records()[pos]
	if got.Username != "Replacement" {
		t.Errorf("Expected username Replacement, got %q", got.Username)
	}
	if got.DiscordID != "9876" {
		t.Errorf("Discord id lost across mutations: %q", got.DiscordID)
	}
}

func TestMutateOutOfRange(t *testing.T) {
	st := tempStore(t)
	if err := st.Mutate(0, models.Patch{Username: "x"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if err := st.Mutate(-1, models.Patch{Username: "x"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestSaveUnwritablePath(t *testing.T) {
	st := Open(filepath.Join(t.TempDir(), "missing-dir", "lookout.json"))
	if _, err := st.Append(rec("u1", "d1", "msg-1")); err == nil {
		t.Error("Expected append to an unwritable path to fail")
	}
}
