// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cards is the Discord presentation layer.

Service posts intake reports as embeds with "Set Username" / "Set Discord"
buttons into one channel and edits identity fields on existing cards. The
card reference handed back to the core is the Discord message ID.

Bot routes interactions: a button click opens a modal whose custom ID carries
the card's message ID, a modal submission feeds the reconciler, and the
/search command runs the query pipeline and renders a summary embed with the
resolved avatar as thumbnail.

ReconcileStatus keeps one channel topic synced to a configured status string;
the decision of whether an edit is needed is the pure PlanStatusUpdate.
*/
package cards
