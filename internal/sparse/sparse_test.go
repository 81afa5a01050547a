package sparse

import "testing"

func TestSetBasic(t *testing.T) {
	s := New(8)
	if s.Len() != 0 {
		t.Fatalf("new set: Len = %d", s.Len())
	}

	if !s.Insert(5) {
		t.Error("Insert(5) on empty set = false")
	}
	if s.Insert(5) {
		t.Error("second Insert(5) = true")
	}
	s.Insert(0)
	s.Insert(7)

	for v, want := range map[int]bool{0: true, 5: true, 7: true, 1: false, 6: false, -1: false, 8: false} {
		if got := s.Contains(v); got != want {
			t.Errorf("Contains(%d) = %v, want %v", v, got, want)
		}
	}
	if s.Len() != 3 {
		t.Errorf("Len = %d, want 3", s.Len())
	}
}

// TestSetClearIgnoresStaleEntries checks that sparse entries left over from
// before Clear never make a value look present.
func TestSetClearIgnoresStaleEntries(t *testing.T) {
	s := New(4)
	s.Insert(3)
	s.Insert(1)
	s.Clear()

	if s.Len() != 0 {
		t.Fatalf("Len after Clear = %d", s.Len())
	}
	for v := range 4 {
		if s.Contains(v) {
			t.Errorf("Contains(%d) after Clear", v)
		}
	}

	s.Insert(1)
	if s.Contains(3) {
		t.Error("stale value 3 reported present")
	}
	if !s.Contains(1) || s.Len() != 1 {
		t.Errorf("after reinsert: Contains(1) = %v, Len = %d", s.Contains(1), s.Len())
	}
}

func TestSetInsertOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Insert beyond capacity did not panic")
		}
	}()
	New(2).Insert(2)
}

func BenchmarkSetInsertClear(b *testing.B) {
	s := New(64)
	for b.Loop() {
		for v := range 64 {
			s.Insert(v)
		}
		s.Clear()
	}
}
