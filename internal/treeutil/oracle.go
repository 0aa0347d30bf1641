package treeutil

import "github.com/bits-and-blooms/bitset"

// HashSet tracks, over a bounded range of hash values, which hashes a
// property test currently expects to be present in a tree. It backs
// presence/absence and round-trip checks across long randomized
// insert/delete sequences, where the generated hashes are dense over
// [0, maxHash]; a bitset is far cheaper there than a map[uint64]struct{}.
type HashSet struct {
	bits *bitset.BitSet
	max  uint64
}

// NewHashSet returns a HashSet able to track hashes in [0, maxHash].
func NewHashSet(maxHash uint64) *HashSet {
	return &HashSet{bits: bitset.New(uint(maxHash + 1)), max: maxHash}
}

// Add marks hash as present.
func (s *HashSet) Add(hash uint64) {
	if hash > s.max {
		return
	}
	s.bits.Set(uint(hash))
}

// Remove marks hash as absent.
func (s *HashSet) Remove(hash uint64) {
	if hash > s.max {
		return
	}
	s.bits.Clear(uint(hash))
}

// Contains reports whether hash is currently marked present.
func (s *HashSet) Contains(hash uint64) bool {
	if hash > s.max {
		return false
	}
	return s.bits.Test(uint(hash))
}

// Count returns the number of hashes currently marked present.
func (s *HashSet) Count() int {
	return int(s.bits.Count())
}
