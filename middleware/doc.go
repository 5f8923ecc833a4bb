// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP cross-cutting helpers.

  - WithLogging: request start/completion logging with duration
  - RequireSecret: shared-secret guard for the intake and search endpoints
  - JSONResponse / ErrorResponse: response encoding helpers
  - ParseJSONBody: request decoding helper
  - GetClientIP: client address extraction behind proxies
*/
package middleware
