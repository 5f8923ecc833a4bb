// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cards

import "testing"

func TestPlanStatusUpdate(t *testing.T) {
	tests := []struct {
		name    string
		desired string
		current string
		topic   string
		needed  bool
	}{
		{"differs", "password: hunter2", "password: old", "password: hunter2", true},
		{"already current", "password: hunter2", "password: hunter2", "", false},
		{"whitespace-equal", " password: hunter2 ", "password: hunter2", "", false},
		{"empty desired never edits", "", "anything", "", false},
		{"blank desired never edits", "   ", "anything", "", false},
		{"sets empty topic", "password: hunter2", "", "password: hunter2", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topic, needed := PlanStatusUpdate(tt.desired, tt.current)
			if needed != tt.needed {
				t.Errorf("PlanStatusUpdate(%q, %q) needed = %v, want %v", tt.desired, tt.current, needed, tt.needed)
			}
			if topic != tt.topic {
				t.Errorf("PlanStatusUpdate(%q, %q) topic = %q, want %q", tt.desired, tt.current, topic, tt.topic)
			}
		})
	}
}

// Idempotence: planning against the result of a previous plan never edits
// again.
func TestPlanStatusUpdateIdempotent(t *testing.T) {
	topic, needed := PlanStatusUpdate("status: open", "status: closed")
	if !needed {
		t.Fatal("Expected initial edit")
	}
	if _, again := PlanStatusUpdate("status: open", topic); again {
		t.Error("Second plan against applied topic should be a no-op")
	}
}
