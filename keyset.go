package meshgo

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// KeySet is a set of non-negative vertex or face keys backed by a Roaring
// Bitmap. Iteration order is always ascending.
type KeySet struct {
	rb *roaring.Bitmap
}

// NewKeySet creates a key set holding the given keys.
func NewKeySet(keys ...int) *KeySet {
	s := &KeySet{rb: roaring.New()}
	for _, key := range keys {
		s.Add(key)
	}
	return s
}

// Add adds a key to the set.
func (s *KeySet) Add(key int) {
	s.rb.Add(uint32(key))
}

// Remove removes a key from the set.
func (s *KeySet) Remove(key int) {
	s.rb.Remove(uint32(key))
}

// Contains reports whether a key is in the set.
func (s *KeySet) Contains(key int) bool {
	return s.rb.Contains(uint32(key))
}

// Len returns the number of keys in the set.
func (s *KeySet) Len() int {
	return int(s.rb.GetCardinality())
}

// IsEmpty reports whether the set is empty.
func (s *KeySet) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Clone returns a deep copy of the set.
func (s *KeySet) Clone() *KeySet {
	return &KeySet{rb: s.rb.Clone()}
}

// And intersects the set with another set in place.
func (s *KeySet) And(other *KeySet) {
	s.rb.And(other.rb)
}

// Or unions the set with another set in place.
func (s *KeySet) Or(other *KeySet) {
	s.rb.Or(other.rb)
}

// Keys returns the keys in ascending order.
func (s *KeySet) Keys() []int {
	keys := make([]int, 0, s.Len())
	it := s.rb.Iterator()
	for it.HasNext() {
		keys = append(keys, int(it.Next()))
	}
	return keys
}

// Iterator returns an iterator over the keys in ascending order.
func (s *KeySet) Iterator() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}
