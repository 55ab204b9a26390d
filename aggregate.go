package gesture

import "gonum.org/v1/gonum/spatial/r2"

// Aggregator folds the displacement records of all active contacts into a
// Frame. It owns the pointer cache and holds no other state; every Frame is
// recomputed from the current cache contents, so a contact joining or
// leaving shifts every other contact's relative frame immediately.
type Aggregator struct {
	cache *PointerCache
	buf   []DisplacementRecord
}

// NewAggregator creates an Aggregator over cache.
func NewAggregator(cache *PointerCache) *Aggregator {
	return &Aggregator{cache: cache}
}

// Cache returns the underlying pointer cache.
func (a *Aggregator) Cache() *PointerCache { return a.cache }

// Upsert stores rec under its collapsed slot, replacing the previous record
// for that slot.
func (a *Aggregator) Upsert(rec DisplacementRecord) {
	a.cache.Set(KeyFor(rec.ID, rec.Primary), rec)
}

// Release drops the record of contact id. The primary slot is dropped only
// while it still holds that contact's record.
func (a *Aggregator) Release(id int) bool {
	removed := a.cache.Remove(ContactKey(id))
	if rec, ok := a.cache.Peek(PrimaryKey()); ok && rec.ID == id {
		removed = a.cache.Remove(PrimaryKey()) || removed
	}
	return removed
}

// Aggregate is Upsert followed by Snapshot.
func (a *Aggregator) Aggregate(rec DisplacementRecord) (Frame, bool) {
	a.Upsert(rec)
	return a.Snapshot()
}

// Snapshot computes the Frame for the live cache contents. It reports false
// when no contact is active.
func (a *Aggregator) Snapshot() (Frame, bool) {
	a.buf = a.buf[:0]
	for _, rec := range a.cache.All() {
		a.buf = append(a.buf, rec)
	}
	if len(a.buf) == 0 {
		return Frame{}, false
	}

	var centroid, anchor Vec2
	for _, rec := range a.buf {
		centroid = r2.Add(centroid, rec.Pos())
		anchor = r2.Add(anchor, rec.Origin())
	}
	inv := 1 / float64(len(a.buf))
	centroid = r2.Scale(inv, centroid)
	anchor = r2.Scale(inv, anchor)

	ts := make([]Trajectory, len(a.buf))
	for i, rec := range a.buf {
		ts[i] = Trajectory{
			ID:       rec.ID,
			Position: r2.Sub(rec.Origin(), anchor),
			Delta:    rec.Delta(),
		}
	}
	return Frame{Centroid: centroid, Anchor: anchor, Trajectories: ts}, true
}

// Len returns the number of cached slots.
func (a *Aggregator) Len() int { return a.cache.Len() }
