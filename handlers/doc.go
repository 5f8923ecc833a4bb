// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP layer of the bridge.

  - IntakeHandler.Report: POST /intake — launcher device/location reports.
    401 on a bad shared secret (enforced by middleware), 400 on malformed
    JSON or missing required fields, 500 when the card cannot be posted or
    the store cannot be written. The launcher resubmits on 500; nothing is
    retried server-side.
  - SearchHandler.Search: POST /search — keyword search returning the
    aggregated summary; zero matches is a 200 with matches=0.
*/
package handlers
