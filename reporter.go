package gesture

// Window accumulates emissions between interval boundaries. Order within a
// batch is emission order; nothing carries over from one batch to the next.
// The owner decides where the boundaries fall: Recognizer.Tick flushes it,
// driven by Recognizer.Run's report ticker or by the caller's own loop.
type Window[T any] struct {
	items []T
}

// Add appends v to the open batch.
func (w *Window[T]) Add(v T) {
	w.items = append(w.items, v)
}

// Len returns the size of the open batch.
func (w *Window[T]) Len() int { return len(w.items) }

// Flush closes the open batch and returns it. The returned slice is owned by
// the caller; an empty batch returns nil.
func (w *Window[T]) Flush() []T {
	batch := w.items
	w.items = nil
	return batch
}
