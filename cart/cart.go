package cart

import (
	"encoding/json"
	"log"
	"sync"
)

// Item is one cart line. Title, Price and ImageURL are snapshotted when the
// item is added and never re-synced against later product edits.
type Item struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url,omitempty"`
	Quantity int     `json:"quantity"`
}

// ItemInput is what callers pass to AddItem; quantity always starts at 1.
type ItemInput struct {
	ID       string
	Title    string
	Price    float64
	ImageURL string
}

// snapshot is the persisted wire form of a cart.
type snapshot struct {
	Items []Item `json:"items"`
}

// Store holds one session's cart. Items keep insertion order and there is at
// most one line per product id. Every mutation persists the cart best-effort:
// a storage failure is logged and the in-memory state stays authoritative.
type Store struct {
	mu        sync.Mutex
	key       string
	items     []Item
	persister Persister
}

// NewStore creates a store for the given session key, rehydrating from the
// persister if a snapshot exists. Missing or malformed data yields an empty
// cart rather than an error.
func NewStore(key string, p Persister) *Store {
	s := &Store{key: key, persister: p}

	data, err := p.Load(key)
	if err != nil {
		if err != ErrNotFound {
			log.Printf("⚠️ Cart %s: load failed, starting empty: %v", key, err)
		}
		return s
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Printf("⚠️ Cart %s: corrupt snapshot, starting empty: %v", key, err)
		return s
	}
	s.items = snap.Items
	return s
}

// AddItem appends a new line with quantity 1, or bumps the quantity when the
// product is already in the cart. It never fails.
func (s *Store) AddItem(in ItemInput) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == in.ID {
			s.items[i].Quantity++
			s.persist()
			return
		}
	}
	s.items = append(s.items, Item{
		ID:       in.ID,
		Title:    in.Title,
		Price:    in.Price,
		ImageURL: in.ImageURL,
		Quantity: 1,
	})
	s.persist()
}

// UpdateQuantity sets the quantity of an existing line. Values below 1 are
// clamped to 1; removal is only ever explicit via RemoveItem. Unknown ids
// are ignored.
func (s *Store) UpdateQuantity(id string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity < 1 {
		quantity = 1
	}
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			s.persist()
			return
		}
	}
}

// RemoveItem deletes the line with the given product id, if present.
func (s *Store) RemoveItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			return
		}
	}
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persist()
}

// Items returns a copy of the cart lines in insertion order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// TotalItems is the sum of all quantities, not the number of distinct lines.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, it := range s.items {
		total += it.Quantity
	}
	return total
}

// TotalPrice is the sum of price*quantity over all lines. Rounding to two
// decimals is left to the presentation layer.
func (s *Store) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, it := range s.items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// persist writes the current snapshot; callers must hold s.mu.
func (s *Store) persist() {
	data, err := json.Marshal(snapshot{Items: s.items})
	if err != nil {
		log.Printf("⚠️ Cart %s: marshal failed: %v", s.key, err)
		return
	}
	if err := s.persister.Save(s.key, data); err != nil {
		log.Printf("⚠️ Cart %s: save failed, keeping in-memory state: %v", s.key, err)
	}
}
