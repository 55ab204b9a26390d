package gesture

import "testing"

func TestWindowBatches(t *testing.T) {
	var w Window[int]
	if b := w.Flush(); b != nil {
		t.Errorf("empty Flush = %v, want nil", b)
	}
	for i := 1; i <= 3; i++ {
		w.Add(i)
	}
	if w.Len() != 3 {
		t.Errorf("Len = %d", w.Len())
	}
	first := w.Flush()
	w.Add(4)
	second := w.Flush()

	if len(first) != 3 || first[0] != 1 || first[1] != 2 || first[2] != 3 {
		t.Errorf("first batch = %v, want [1 2 3]", first)
	}
	if len(second) != 1 || second[0] != 4 {
		t.Errorf("second batch = %v, want [4], nothing carried over", second)
	}
	// Later adds must not write into a batch already handed out.
	w.Add(5)
	if first[0] != 1 {
		t.Error("flushed batch was modified")
	}
}
