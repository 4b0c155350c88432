package changequeue

import "testing"

// TestSimpleChangeQueue checks that duplicate Adds collapse into a
// single pending entry and that Next drains each distinct entry once.
func TestSimpleChangeQueue(t *testing.T) {
	q := New()
	if !q.Empty() {
		t.Fatal("new queue should be empty")
	}

	q.Add(Coord{1, 0})
	if q.Empty() {
		t.Fatal("queue should not be empty after Add")
	}

	v, ok := q.Next()
	if !ok || v != (Coord{1, 0}) {
		t.Fatalf("Next() = %v, %v; want {1,0}, true", v, ok)
	}
	if !q.Empty() {
		t.Fatal("queue should be empty after draining")
	}

	q.Add(Coord{1, 0})
	q.Add(Coord{2, 0})
	q.Add(Coord{2, 0})
	q.Add(Coord{3, 0})
	q.Add(Coord{2, 0})

	if q.Empty() {
		t.Fatal("queue should not be empty")
	}
	q.Next()
	q.Next()
	q.Next()
	if !q.Empty() {
		t.Fatal("three distinct coordinates should drain the queue in three Next calls")
	}
}

// TestNextOnEmpty checks the zero-value, false result on an empty queue.
func TestNextOnEmpty(t *testing.T) {
	q := New()
	if v, ok := q.Next(); ok || v != (Coord{}) {
		t.Errorf("Next() on empty queue = %v, %v; want zero value, false", v, ok)
	}
}
