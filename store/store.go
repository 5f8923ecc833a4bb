// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/danielhkuo/lookout/models"
)

var ErrNotFound = errors.New("record not found")

// Snapshot is the serialized shape of the durable blob: the insertion-ordered
// record sequence plus the card-reference index.
type Snapshot struct {
	Records      []models.Record `json:"records"`
	MessageIndex map[string]int  `json:"messageIndex"`
}

// NewSnapshot returns an empty snapshot with both containers allocated.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Records:      []models.Record{},
		MessageIndex: map[string]int{},
	}
}

// FindByCardRef returns the position of the record linked to ref.
func (snap *Snapshot) FindByCardRef(ref string) (int, bool) {
	pos, ok := snap.MessageIndex[ref]
	if !ok || pos < 0 || pos >= len(snap.Records) {
		return 0, false
	}
	return pos, true
}

// Store persists records to a single JSON blob on disk. Every operation runs
// its own load-mutate-save cycle; no state is held between calls.
type Store struct {
	path string
}

// Open returns a store backed by the blob at path. The file is not touched
// until the first save.
func Open(path string) *Store {
	return &Store{path: path}
}

// Load reads the blob. A missing or damaged file yields an empty snapshot;
// startup never fails because of a corrupt store.
func (s *Store) Load() *Snapshot {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return NewSnapshot()
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		slog.Warn("store blob damaged, starting empty", "path", s.path, "error", err)
		return NewSnapshot()
	}
	if snap.Records == nil {
		snap.Records = []models.Record{}
	}
	if snap.MessageIndex == nil {
		snap.MessageIndex = map[string]int{}
	}
	return &snap
}

// Save writes the whole snapshot back to disk. The write goes to a temp file
// first so a crash mid-write cannot leave a half-written blob behind.
func (s *Store) Save(snap *Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace store: %w", err)
	}
	return nil
}

// Update runs one load-mutate-save cycle. When fn returns an error the save
// is skipped and the error returned unchanged.
func (s *Store) Update(fn func(*Snapshot) error) error {
	snap := s.Load()
	if err := fn(snap); err != nil {
		return err
	}
	return s.Save(snap)
}

// Append adds rec at the end of the sequence and returns its position. A
// record carrying a card reference is also indexed under that reference.
func (s *Store) Append(rec models.Record) (int, error) {
	pos := 0
	err := s.Update(func(snap *Snapshot) error {
		pos = len(snap.Records)
		snap.Records = append(snap.Records, rec)
		if rec.CardReference != "" {
			snap.MessageIndex[rec.CardReference] = pos
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return pos, nil
}

// FindByCardRef returns the record linked to ref and its position, or
// ErrNotFound.
func (s *Store) FindByCardRef(ref string) (models.Record, int, error) {
	snap := s.Load()
	pos, ok := snap.FindByCardRef(ref)
	if !ok {
		return models.Record{}, 0, fmt.Errorf("card reference %q: %w", ref, ErrNotFound)
	}
	return snap.Records[pos], pos, nil
}

// Mutate applies patch to the record at pos and persists the whole store.
func (s *Store) Mutate(pos int, patch models.Patch) error {
	return s.Update(func(snap *Snapshot) error {
		if pos < 0 || pos >= len(snap.Records) {
			return fmt.Errorf("position %d: %w", pos, ErrNotFound)
		}
		patch.Apply(&snap.Records[pos])
		return nil
	})
}

// Records returns all records in insertion order. The slice is a fresh load,
// safe for the caller to iterate without holding the store.
func (s *Store) Records() []models.Record {
	return s.Load().Records
}
