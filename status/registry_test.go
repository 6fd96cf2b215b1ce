package status

import (
	"strings"
	"sync"
	"testing"
)

func TestMetricMap_GetReturnsStablePointer(t *testing.T) {
	r := NewRegistry()

	a := r.Ints.Get("combat.kills")
	b := r.Ints.Get("combat.kills")
	if a != b {
		t.Fatal("Get must return the cached pointer for an existing key")
	}

	a.Add(3)
	if got := b.Load(); got != 3 {
		t.Errorf("shared pointer value = %d, want 3", got)
	}
}

func TestMetricMap_ConcurrentRegistration(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Ints.Get("spawn.count").Add(1)
		}()
	}
	wg.Wait()

	if got := r.Ints.Get("spawn.count").Load(); got != 16 {
		t.Errorf("spawn.count = %d, want 16", got)
	}
	if r.Ints.Count() != 1 {
		t.Errorf("Count() = %d, want 1", r.Ints.Count())
	}
}

func TestRegistry_Snapshot(t *testing.T) {
	r := NewRegistry()
	r.Bools.Get("player.invincible").Store(true)
	r.Ints.Get("player.health").Store(4)
	r.Floats.Get("arena.delta_ms").Set(16.5)
	r.Strings.Get("weapon.selected").Store("Shotgun")

	snap := r.Snapshot()
	if len(snap) != r.TotalCount() {
		t.Fatalf("snapshot has %d keys, registry has %d", len(snap), r.TotalCount())
	}
	if snap["player.invincible"] != true {
		t.Errorf("player.invincible = %v", snap["player.invincible"])
	}
	if snap["player.health"] != int64(4) {
		t.Errorf("player.health = %v", snap["player.health"])
	}
	if snap["arena.delta_ms"] != 16.5 {
		t.Errorf("arena.delta_ms = %v", snap["arena.delta_ms"])
	}
	if snap["weapon.selected"] != "Shotgun" {
		t.Errorf("weapon.selected = %v", snap["weapon.selected"])
	}
}

func TestAtomicString_Truncates(t *testing.T) {
	var s AtomicString
	s.Store(strings.Repeat("x", MaxStringLen+10))
	if got := len(s.Load()); got != MaxStringLen {
		t.Errorf("stored length = %d, want %d", got, MaxStringLen)
	}
}

func TestRegistry_LookupDoesNotRegister(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("combat.kills").Store(7)

	if val, ok := r.Lookup("combat.kills"); !ok || val != int64(7) {
		t.Errorf("Lookup(combat.kills) = %v, %v", val, ok)
	}
	if _, ok := r.Lookup("enemy.alive"); ok {
		t.Error("Lookup of an unknown name must miss")
	}
	if r.TotalCount() != 1 {
		t.Errorf("TotalCount() = %d after lookups, want 1", r.TotalCount())
	}
}
