package store

import (
	"log/slog"
	"sync"

	"github.com/pvhao2002/smart-health-sub000/internal/model"
)

// CartStore holds the items the user intends to purchase, independent of
// any one command's lifetime, surviving restarts via Storage.
// Mutations only touch local state and cannot fail; persistence errors
// are logged and otherwise swallowed.
type CartStore struct {
	mu      sync.RWMutex
	items   []model.CartItem
	storage Storage
	log     *slog.Logger
}

type cartDocument struct {
	Items []model.CartItem `json:"items"`
}

func NewCartStore(storage Storage, log *slog.Logger) *CartStore {
	s := &CartStore{storage: storage, log: log}

	var doc cartDocument
	found, err := storage.Load(CartStorageKey, &doc)
	if err != nil {
		log.Warn("cart storage unreadable, starting empty", "err", err)
	}
	if found {
		s.items = doc.Items
	}
	return s
}

// AddItem merges by medicine id: an existing line gains the new quantity,
// otherwise the item is appended. Stock is validated by the caller.
func (s *CartStore) AddItem(item model.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, it := range s.items {
		if it.MedicineID == item.MedicineID {
			s.items[i].Quantity += item.Quantity
			s.persistLocked()
			return
		}
	}
	s.items = append(s.items, item)
	s.persistLocked()
}

// UpdateQuantity applies delta and clamps at 1. Going below 1 never
// removes the item; removal is an explicit separate action.
func (s *CartStore) UpdateQuantity(medicineID int64, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, it := range s.items {
		if it.MedicineID == medicineID {
			q := it.Quantity + delta
			if q < 1 {
				q = 1
			}
			s.items[i].Quantity = q
			s.persistLocked()
			return
		}
	}
}

// RemoveItem drops the item; absent ids are a no-op.
func (s *CartStore) RemoveItem(medicineID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, it := range s.items {
		if it.MedicineID != medicineID {
			kept = append(kept, it)
		}
	}
	s.items = kept
	s.persistLocked()
}

func (s *CartStore) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persistLocked()
}

// Items returns a copy in insertion order.
func (s *CartStore) Items() []model.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *CartStore) TotalQuantity() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sum := 0
	for _, it := range s.items {
		sum += it.Quantity
	}
	return sum
}

func (s *CartStore) TotalPrice() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sum := 0.0
	for _, it := range s.items {
		sum += it.Subtotal()
	}
	return sum
}

func (s *CartStore) persistLocked() {
	if err := s.storage.Save(CartStorageKey, cartDocument{Items: s.items}); err != nil {
		s.log.Warn("persist cart failed", "err", err)
	}
}
