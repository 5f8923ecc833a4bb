// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package reconcile owns the record lifecycle.

RecordIntake validates a launcher report, has the presentation layer create
its card, and appends the record linked to that card's reference.

ApplyIdentitySubmission merges an operator-submitted username or Discord id
into the linked record and copies it to every record with the same device id.
The device id is the stable join key across repeated launcher runs from one
machine: once an identity is attached to any event from that device, all of
its events present the same identity without re-entry. Submissions are
last-writer-wins per field, ordered by arrival.
*/
package reconcile
