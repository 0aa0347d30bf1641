package bptree

import (
	"errors"
	"testing"
)

func TestNewRejectsLowDegree(t *testing.T) {
	if _, err := New[int](2, identityHash); err == nil {
		t.Fatalf("expected error for degree < 3")
	}
}

func TestNewRejectsNilHashFn(t *testing.T) {
	if _, err := New[int](5, nil); err == nil {
		t.Fatalf("expected error for nil hash function")
	}
}

func TestEmptyTreeSearch(t *testing.T) {
	var tr Tree[int]
	if _, err := tr.SearchByHash(1); !errors.Is(err, ErrEmptyTree) {
		t.Fatalf("expected ErrEmptyTree, got %v", err)
	}
}

func TestSingleInsertThenLookup(t *testing.T) {
	tr, err := New[int](5, identityHash)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tr.Insert(5)

	got, err := tr.SearchByHash(5)
	if err != nil || got != 5 {
		t.Fatalf("SearchByHash(5) = %v, %v", got, err)
	}
	if _, err := tr.SearchByHash(42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("SearchByHash(42): got %v", err)
	}
}

func TestInsertOverwritesDuplicateHash(t *testing.T) {
	tr, _ := New[string](5, func(s string) uint64 { return 7 })
	tr.InsertByHash(7, "first")
	tr.InsertByHash(7, "second")

	got, err := tr.SearchByHash(7)
	if err != nil {
		t.Fatalf("SearchByHash: %v", err)
	}
	if got != "second" {
		t.Fatalf("expected overwrite to win, got %q", got)
	}
	if n := tr.Root().Len(); n != 1 {
		t.Fatalf("expected a single stored entry after overwrite, got %d", n)
	}
}

func TestDeleteReturnsGone(t *testing.T) {
	tr, _ := New[int](5, identityHash)
	for i := 0; i < 20; i++ {
		tr.Insert(i)
	}

	if !tr.DeleteByHash(10) {
		t.Fatalf("expected first delete of 10 to succeed")
	}
	if _, err := tr.SearchByHash(10); !errors.Is(err, ErrNotFound) {
		t.Fatalf("SearchByHash(10) after delete: got %v", err)
	}
	if tr.DeleteByHash(10) {
		t.Fatalf("expected second delete of 10 to fail")
	}
}

func TestDeepCopyIndependence(t *testing.T) {
	tr, _ := New[int](5, identityHash)
	for i := 0; i < 100; i++ {
		tr.Insert(i)
	}

	var clone Tree[int]
	clone.DeepCopyFrom(tr)

	tr.DeleteByHash(50)

	if _, err := tr.SearchByHash(50); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected 50 removed from source")
	}
	got, err := clone.SearchByHash(50)
	if err != nil || got != 50 {
		t.Fatalf("expected clone to still have 50, got %v, %v", got, err)
	}

	if clone.Root() == tr.Root() {
		t.Fatalf("clone must not share its root node with the source")
	}
	checkAllInvariants(t, &clone)
	checkAllInvariants(t, tr)
}

func TestDeepCopyFromPreservesDegreeAndHashFn(t *testing.T) {
	tr, _ := New[int](7, identityHash)
	tr.Insert(1)

	var clone Tree[int]
	clone.DeepCopyFrom(tr)

	if clone.Degree() != 7 {
		t.Fatalf("expected degree 7, got %d", clone.Degree())
	}
	clone.Insert(2)
	if got, err := clone.SearchByHash(2); err != nil || got != 2 {
		t.Fatalf("clone hash function not usable: %v, %v", got, err)
	}
}

func TestNewFromConfigLeafCapacityHint(t *testing.T) {
	tr, err := NewFromConfig(Config[int]{Degree: 8, HashFn: identityHash, LeafCapacityHint: 64})
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	for i := 0; i < 5; i++ {
		tr.Insert(i)
	}
	for i := 0; i < 5; i++ {
		if got, err := tr.SearchByHash(uint64(i)); err != nil || got != i {
			t.Fatalf("SearchByHash(%d) = %v, %v", i, got, err)
		}
	}
	checkAllInvariants(t, tr)
}

func TestBulkInsertDeleteRoundTrip(t *testing.T) {
	tr, _ := New[int](5, identityHash)
	for i := 0; i < 100; i++ {
		tr.Insert(i)
	}

	for i := 30; i < 80; i++ {
		if !tr.DeleteByHash(uint64(i)) {
			t.Fatalf("expected first delete of %d to succeed", i)
		}
		if tr.DeleteByHash(uint64(i)) {
			t.Fatalf("expected second delete of %d to fail", i)
		}
	}

	for i := 0; i < 30; i++ {
		if _, err := tr.SearchByHash(uint64(i)); err != nil {
			t.Fatalf("expected %d to still be present: %v", i, err)
		}
	}
	for i := 80; i < 100; i++ {
		if _, err := tr.SearchByHash(uint64(i)); err != nil {
			t.Fatalf("expected %d to still be present: %v", i, err)
		}
	}
	checkAllInvariants(t, tr)
}
