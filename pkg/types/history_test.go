package types

import "testing"

func TestRelevantPosition(t *testing.T) {
	tests := []struct {
		name  string
		entry HistoryEntry
		want  int
		ok    bool
	}{
		{"add uses position", HistoryEntry{ActionKind: ActionAdd, Position: 7}, 7, true},
		{"remove uses position", HistoryEntry{ActionKind: ActionRemove, Position: 3}, 3, true},
		{"move uses destination", HistoryEntry{ActionKind: ActionMove, FromPosition: 2, ToPosition: 11}, 11, true},
		{"bulk move uses destination", HistoryEntry{ActionKind: ActionBulkMove, FromPosition: 0, ToPosition: 40}, 40, true},
		{"swap uses target", HistoryEntry{ActionKind: ActionSwap, Position: 1, TargetPosition: 9}, 9, true},
		{"unknown kind", HistoryEntry{ActionKind: "merge", Position: 5}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.entry.RelevantPosition()
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if got != tt.want {
				t.Fatalf("expected position %d, got %d", tt.want, got)
			}
		})
	}
}

func TestBinderHelpers(t *testing.T) {
	t.Run("empty binder", func(t *testing.T) {
		b := &Binder{Cards: map[int]CardEntry{}}
		if b.UsedSlots() != 0 {
			t.Fatalf("expected 0 used slots, got %d", b.UsedSlots())
		}
		if b.HighestPosition() != -1 {
			t.Fatalf("expected highest -1, got %d", b.HighestPosition())
		}
	})

	t.Run("sparse binder", func(t *testing.T) {
		b := &Binder{Cards: map[int]CardEntry{
			4:  {Key: "a"},
			19: {Key: "b"},
			2:  {Key: "c"},
		}}
		if b.UsedSlots() != 3 {
			t.Fatalf("expected 3 used slots, got %d", b.UsedSlots())
		}
		if b.HighestPosition() != 19 {
			t.Fatalf("expected highest 19, got %d", b.HighestPosition())
		}
		if len(b.Positions()) != 3 {
			t.Fatalf("expected 3 positions, got %d", len(b.Positions()))
		}
	})
}
