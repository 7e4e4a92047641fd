package api

import (
	"sync"

	"github.com/google/uuid"
)

// DefaultStoreSize bounds how many decoded headers are kept in memory.
const DefaultStoreSize = 256

// HeaderStore keeps the most recent decode results. When full, the oldest
// record is evicted.
type HeaderStore struct {
	mu       sync.Mutex
	capacity int
	records  map[string]HeaderRecord
	order    []string
}

func NewHeaderStore(capacity int) *HeaderStore {
	if capacity <= 0 {
		capacity = DefaultStoreSize
	}
	return &HeaderStore{
		capacity: capacity,
		records:  make(map[string]HeaderRecord),
	}
}

// Put assigns an ID to rec, stores it and returns the stored copy.
func (s *HeaderStore) Put(rec HeaderRecord) HeaderRecord {
	rec.ID = newHeaderID()

	s.mu.Lock()
	defer s.mu.Unlock()
	for len(s.order) >= s.capacity {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.records, oldest)
	}
	s.records[rec.ID] = rec
	s.order = append(s.order, rec.ID)
	return rec
}

func (s *HeaderStore) Get(id string) (HeaderRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[id]
	return rec, ok
}

func (s *HeaderStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return false
	}
	delete(s.records, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// List returns all records, newest first.
func (s *HeaderStore) List() []HeaderRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]HeaderRecord, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		out = append(out, s.records[s.order[i]])
	}
	return out
}

func (s *HeaderStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}

func newHeaderID() string {
	return "hdr_" + uuid.NewString()
}
