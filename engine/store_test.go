package engine

import (
	"testing"

	"github.com/lixenwraith/cthulhu-strike/core"
)

type testComponent struct {
	Value int
}

func TestStore_SetGetRemove(t *testing.T) {
	s := NewStore[testComponent]()

	s.SetComponent(1, testComponent{Value: 10})
	s.SetComponent(2, testComponent{Value: 20})
	s.SetComponent(1, testComponent{Value: 11}) // update must not duplicate

	if s.CountEntities() != 2 {
		t.Fatalf("CountEntities() = %d, want 2", s.CountEntities())
	}

	got, ok := s.GetComponent(1)
	if !ok || got.Value != 11 {
		t.Errorf("GetComponent(1) = %v, %v; want {11}, true", got, ok)
	}

	s.RemoveEntity(1)
	if _, ok := s.GetComponent(1); ok {
		t.Error("GetComponent succeeded for removed entity")
	}

	// Removing twice is a no-op
	s.RemoveEntity(1)
	if s.CountEntities() != 1 {
		t.Errorf("CountEntities() = %d after double remove, want 1", s.CountEntities())
	}
}

func TestStore_IterationOrderStable(t *testing.T) {
	s := NewStore[testComponent]()
	for e := core.Entity(1); e <= 5; e++ {
		s.SetComponent(e, testComponent{Value: int(e)})
	}

	s.RemoveEntity(2)

	want := []core.Entity{1, 3, 4, 5}
	got := s.GetAllEntities()
	if len(got) != len(want) {
		t.Fatalf("GetAllEntities() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("GetAllEntities()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestStore_GetAllEntitiesIsCopy(t *testing.T) {
	s := NewStore[testComponent]()
	s.SetComponent(1, testComponent{})
	s.SetComponent(2, testComponent{})

	entities := s.GetAllEntities()
	for _, e := range entities {
		s.RemoveEntity(e)
	}

	if len(entities) != 2 {
		t.Errorf("snapshot changed length while store was mutated: %v", entities)
	}
	if s.CountEntities() != 0 {
		t.Errorf("CountEntities() = %d, want 0", s.CountEntities())
	}
}
