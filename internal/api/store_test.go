package api

import (
	"fmt"
	"sync"
	"testing"
)

func TestHeaderStoreEvictsOldest(t *testing.T) {
	t.Parallel()

	s := NewHeaderStore(2)
	first := s.Put(HeaderRecord{Name: "first"})
	second := s.Put(HeaderRecord{Name: "second"})
	third := s.Put(HeaderRecord{Name: "third"})

	if _, ok := s.Get(first.ID); ok {
		t.Fatalf("expected oldest record to be evicted")
	}
	for _, rec := range []HeaderRecord{second, third} {
		if got, ok := s.Get(rec.ID); !ok || got.Name != rec.Name {
			t.Fatalf("expected %s to be kept", rec.Name)
		}
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", s.Len())
	}
}

func TestHeaderStoreDeleteKeepsOrder(t *testing.T) {
	t.Parallel()

	s := NewHeaderStore(0)
	a := s.Put(HeaderRecord{Name: "a"})
	b := s.Put(HeaderRecord{Name: "b"})
	c := s.Put(HeaderRecord{Name: "c"})

	if !s.Delete(b.ID) {
		t.Fatalf("delete b failed")
	}
	if s.Delete(b.ID) {
		t.Fatalf("second delete of b should fail")
	}
	list := s.List()
	if len(list) != 2 || list[0].ID != c.ID || list[1].ID != a.ID {
		t.Fatalf("unexpected list after delete: %+v", list)
	}
}

func TestHeaderStoreConcurrentPut(t *testing.T) {
	t.Parallel()

	s := NewHeaderStore(16)
	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Put(HeaderRecord{Name: fmt.Sprintf("n%d", i)})
		}(i)
	}
	wg.Wait()

	if s.Len() != 16 {
		t.Fatalf("expected store capped at 16, got %d", s.Len())
	}
	seen := make(map[string]bool)
	for _, rec := range s.List() {
		if seen[rec.ID] {
			t.Fatalf("duplicate id %s", rec.ID)
		}
		seen[rec.ID] = true
	}
}
