// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package router wires the HTTP endpoints using Go 1.22+ method routing:
// GET /health, POST /intake, POST /search. The intake and search routes sit
// behind the shared-secret guard and request logging.
package router
