package cart

import "testing"

func TestManagerReturnsSameStorePerSession(t *testing.T) {
	m := NewManager(NewMemoryPersister())

	a := m.Get("guest_1")
	b := m.Get("guest_1")
	if a != b {
		t.Error("expected the same store instance for repeat lookups")
	}

	a.AddItem(ItemInput{ID: "p1", Title: "Scaler", Price: 120})
	if got := b.TotalItems(); got != 1 {
		t.Errorf("second handle TotalItems = %d, want 1", got)
	}
}

func TestManagerIsolatesSessions(t *testing.T) {
	m := NewManager(NewMemoryPersister())

	m.Get("guest_1").AddItem(ItemInput{ID: "p1", Title: "Scaler", Price: 120})

	if got := m.Get("guest_2").TotalItems(); got != 0 {
		t.Errorf("guest_2 TotalItems = %d, want 0", got)
	}
}

func TestManagerDropForcesRehydrate(t *testing.T) {
	p := NewMemoryPersister()
	m := NewManager(p)

	s := m.Get("guest_1")
	s.AddItem(ItemInput{ID: "p1", Title: "Scaler", Price: 120})

	m.Drop("guest_1")

	again := m.Get("guest_1")
	if again == s {
		t.Error("expected a fresh store after Drop")
	}
	if got := again.TotalItems(); got != 1 {
		t.Errorf("rehydrated TotalItems = %d, want 1", got)
	}
}
