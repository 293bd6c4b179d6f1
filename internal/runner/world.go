package runner

// World is the registry of live world objects. It owns them exclusively;
// callers outside the package only ever see copies.
type World struct {
	objects []*WorldObject
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{objects: make([]*WorldObject, 0, 32)}
}

// Reset removes every object.
func (w *World) Reset() {
	for _, o := range w.objects {
		o.Phase = PhaseRemoved
	}
	w.objects = w.objects[:0]
}

// Add registers a freshly spawned object.
func (w *World) Add(o *WorldObject) {
	w.objects = append(w.objects, o)
}

// Len returns the number of live objects.
func (w *World) Len() int {
	return len(w.objects)
}

// Objects returns a snapshot copy of the live objects in spawn order.
func (w *World) Objects() []WorldObject {
	out := make([]WorldObject, len(w.objects))
	for i, o := range w.objects {
		out[i] = *o
	}
	return out
}

// FurthestZ returns the most negative z among live objects, or fallback when
// the track is empty.
func (w *World) FurthestZ(fallback float64) float64 {
	if len(w.objects) == 0 {
		return fallback
	}
	furthest := w.objects[0].Pos.Z()
	for _, o := range w.objects[1:] {
		if z := o.Pos.Z(); z < furthest {
			furthest = z
		}
	}
	return furthest
}

// LetterOnTrack reports whether an active letter for the word index exists.
func (w *World) LetterOnTrack(index int) bool {
	for _, o := range w.objects {
		if o.Type == ObjectLetter && o.TargetIndex == index && o.Active() {
			return true
		}
	}
	return false
}

// prune drops objects resolved this tick and those past the removal distance.
// Returns the number of objects removed.
func (w *World) prune(removeDistance float64) int {
	kept := w.objects[:0]
	removed := 0
	for _, o := range w.objects {
		if o.Phase == PhaseResolved || o.Pos.Z() > removeDistance {
			o.Phase = PhaseRemoved
			removed++
			continue
		}
		kept = append(kept, o)
	}
	// Release references held by the tail of the backing array
	for i := len(kept); i < len(w.objects); i++ {
		w.objects[i] = nil
	}
	w.objects = kept
	return removed
}
