package runner

import "math"

// Snapshot contains the observable run state for replay checks and
// persistence. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick      uint64
	Status    string
	ChapterID string
	Score     int
	Speed     float64
	Distance  float64
	Gems      int
	Collected []int

	PlayerLane int
	PlayerX    float64
	PlayerY    float64

	DoubleJump      bool
	Immortality     bool
	Magnet          bool
	ScoreMultiplier int

	// Objects flattened as 5 values each: Type, X, Y, Z, Phase
	ObjectCount int
	ObjectData  []float64
}

// Snapshot returns the current run state.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:            e.ticks,
		Status:          e.status.String(),
		Score:           e.score,
		Speed:           e.speed,
		Distance:        e.distance,
		Gems:            e.gems,
		Collected:       e.Collected(),
		PlayerLane:      e.player.Lane,
		PlayerX:         e.player.X,
		PlayerY:         e.player.Y,
		DoubleJump:      e.inventory.DoubleJump,
		Immortality:     e.inventory.Immortality,
		Magnet:          e.inventory.Magnet,
		ScoreMultiplier: e.inventory.ScoreMultiplier,
		ObjectCount:     e.world.Len(),
		ObjectData:      make([]float64, 0, e.world.Len()*5),
	}
	if e.chapter != nil {
		snap.ChapterID = e.chapter.ID
	}
	for _, o := range e.world.objects {
		snap.ObjectData = append(snap.ObjectData,
			float64(o.Type), o.Pos.X(), o.Pos.Y(), o.Pos.Z(), float64(o.Phase))
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Speed)
	h = h*31 + math.Float64bits(snap.Distance)
	h = h*31 + uint64(snap.Gems)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerLane) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	h = h*31 + uint64(snap.ObjectCount) //#nosec G115 -- hash computation

	for _, i := range snap.Collected {
		h = h*31 + uint64(i) //#nosec G115 -- hash computation
	}
	for _, v := range snap.ObjectData {
		h = h*31 + math.Float64bits(v)
	}
	for _, r := range snap.Status + snap.ChapterID {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	return h
}
