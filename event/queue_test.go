package event

import (
	"testing"
)

func TestQueue_ConsumeFIFO(t *testing.T) {
	q := NewQueue(2)

	q.Push(GameEvent{Type: EventWeaponFired, Frame: 1})
	q.Push(GameEvent{Type: EventEnemyHit, Frame: 1})
	q.Push(GameEvent{Type: EventEnemyKilled, Frame: 2})

	if q.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", q.Len())
	}

	got := q.Consume()
	want := []EventType{EventWeaponFired, EventEnemyHit, EventEnemyKilled}
	if len(got) != len(want) {
		t.Fatalf("Consume() returned %d events, want %d", len(got), len(want))
	}
	for i, ev := range got {
		if ev.Type != want[i] {
			t.Errorf("event %d: got %v, want %v", i, ev.Type, want[i])
		}
	}

	if q.Len() != 0 {
		t.Errorf("queue not empty after Consume: %d", q.Len())
	}
	if again := q.Consume(); again != nil {
		t.Errorf("second Consume() = %v, want nil", again)
	}
}

func TestQueue_ConsumedSliceIndependent(t *testing.T) {
	q := NewQueue(4)
	q.Push(GameEvent{Type: EventPlayerHit})
	first := q.Consume()

	q.Push(GameEvent{Type: EventEnemySpawned})
	if first[0].Type != EventPlayerHit {
		t.Errorf("consumed events mutated by later Push: %v", first[0].Type)
	}
}

func TestEventType_String(t *testing.T) {
	if got := EventEnemyKilled.String(); got != "EnemyKilled" {
		t.Errorf("String() = %q", got)
	}
	if got := EventType(999).String(); got != "Unknown" {
		t.Errorf("unregistered type String() = %q", got)
	}
}
