// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/lookout/middleware"
	"github.com/danielhkuo/lookout/models"
	"github.com/danielhkuo/lookout/reconcile"
	"github.com/danielhkuo/lookout/testutil"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	st := testutil.TempStore(t)
	rec := reconcile.New(st, testutil.NewFakeCards())
	return NewRouter(st, rec, nil, testutil.GetTestConfig())
}

func TestRouterHealth(t *testing.T) {
	mux := newTestRouter(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 from /health, got %d", w.Code)
	}
	if w.Body.String() != "OK" {
		t.Errorf("Unexpected health body: %q", w.Body.String())
	}
}

func TestRouterRoot(t *testing.T) {
	mux := newTestRouter(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 from /, got %d", w.Code)
	}
}

func TestRouterIntakeRequiresSecret(t *testing.T) {
	mux := newTestRouter(t)

	req := testutil.MakeRequest(http.MethodPost, "/intake",
		models.IntakeRequest{DeviceUser: "u1", DeviceID: "d1"}, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	req = testutil.MakeRequest(http.MethodPost, "/intake",
		models.IntakeRequest{DeviceUser: "u1", DeviceID: "d1"},
		map[string]string{middleware.SecretHeader: "test-secret"})
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)
}

func TestRouterSearchRequiresSecret(t *testing.T) {
	mux := newTestRouter(t)

	req := testutil.MakeRequest(http.MethodPost, "/search",
		models.SearchRequest{Field: "any", Value: "x"}, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	req = testutil.MakeRequest(http.MethodPost, "/search",
		models.SearchRequest{Field: "any", Value: "x"},
		map[string]string{middleware.SecretHeader: "test-secret"})
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)
}

func TestRouterMethodNotAllowed(t *testing.T) {
	mux := newTestRouter(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/intake", nil))
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405 for GET /intake, got %d", w.Code)
	}
}
