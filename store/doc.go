// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists intake records to a single JSON blob on disk.

The blob holds an insertion-ordered record sequence plus a messageIndex
mapping card references to record positions, giving O(1) lookup when a form
submission arrives referencing a card. Records are append-only and mutated in
place only for identity enrichment fields; nothing is ever deleted.

Every operation (Append, Mutate, Update) is its own load-mutate-save cycle
against the file. There is no locking: the system is single-writer by design,
and two racing cycles resolve last-writer-wins.

A missing or damaged blob loads as an empty store. Startup never fails
because of a corrupt file.
*/
package store
