// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/lookout/avatar"
	"github.com/danielhkuo/lookout/cliparse"
	"github.com/danielhkuo/lookout/handlers"
	"github.com/danielhkuo/lookout/middleware"
	"github.com/danielhkuo/lookout/reconcile"
	"github.com/danielhkuo/lookout/store"
)

func NewRouter(st *store.Store, rec *reconcile.Reconciler, av *avatar.Resolver, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	intakeHandler := handlers.NewIntakeHandler(rec)
	searchHandler := handlers.NewSearchHandler(st, av)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Launcher intake (shared-secret protected)
	mux.HandleFunc("POST /intake", middleware.WithLogging(
		middleware.RequireSecret(cfg.SharedSecret, intakeHandler.Report)))

	// Record search (shared-secret protected, ops tooling path)
	mux.HandleFunc("POST /search", middleware.WithLogging(
		middleware.RequireSecret(cfg.SharedSecret, searchHandler.Search)))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("lookout API v1"))
	})

	return mux
}
