// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/lookout/auth"
	"github.com/danielhkuo/lookout/cliparse"
	"github.com/danielhkuo/lookout/models"
	"github.com/danielhkuo/lookout/store"
)

// TempStore creates a store backed by a fresh file in a test temp dir
func TempStore(t *testing.T) *store.Store {
	t.Helper()
	return store.Open(filepath.Join(t.TempDir(), "lookout.json"))
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:            3319,
		StorePath:       "lookout.json",
		SharedSecret:    "test-secret",
		DiscordToken:    "test-token",
		IntakeChannelID: "test-channel",
	}
}

// SeedRecord appends a record to the store and returns its position
func SeedRecord(t *testing.T, st *store.Store, rec models.Record) int {
	t.Helper()
	pos, err := st.Append(rec)
	if err != nil {
		t.Fatalf("Failed to seed record: %v", err)
	}
	return pos
}

// FakeCards is an in-memory card service recording every call. CreateCard
// mints a random reference unless CreateErr is set.
type FakeCards struct {
	CreateErr error
	EditErr   error

	Created []models.Record
	Refs    []string
	Edits   map[string][]models.Patch
}

func NewFakeCards() *FakeCards {
	return &FakeCards{Edits: map[string][]models.Patch{}}
}

func (f *FakeCards) CreateCard(ctx context.Context, rec models.Record) (string, error) {
	if f.CreateErr != nil {
		return "", f.CreateErr
	}
	ref, err := auth.GenerateReference(8)
	if err != nil {
		return "", err
	}
	f.Created = append(f.Created, rec)
	f.Refs = append(f.Refs, ref)
	return ref, nil
}

func (f *FakeCards) EditCard(ctx context.Context, ref string, patch models.Patch) error {
	if f.EditErr != nil {
		return f.EditErr
	}
	f.Edits[ref] = append(f.Edits[ref], patch)
	return nil
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
