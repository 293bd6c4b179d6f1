package runner

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/vovakirdan/word-runner/internal/config"
	"github.com/vovakirdan/word-runner/internal/content"
)

// Spawn heights per object type.
const (
	heightLetter      = 1.0
	heightGem         = 1.0
	heightGemFallback = 1.2 // Gem spawned in place of a letter once the word is complete
	heightEnemy       = 2.0
	heightGround      = 0.0
)

// weightedChoice is one row of the spawn table.
type weightedChoice struct {
	Type   ObjectType
	Weight float64
}

// spawnTable is a declarative weighted choice over object types.
type spawnTable []weightedChoice

// newSpawnTable builds the table from configured weights.
// Non-positive weights are dropped.
func newSpawnTable(w config.SpawnWeights) spawnTable {
	rows := []weightedChoice{
		{ObjectGem, w.Gem},
		{ObjectEnemy, w.Enemy},
		{ObjectObstacle, w.Obstacle},
		{ObjectHazardGate, w.HazardGate},
	}
	table := make(spawnTable, 0, len(rows))
	for _, r := range rows {
		if r.Weight > 0 {
			table = append(table, r)
		}
	}
	return table
}

// total returns the sum of all weights.
func (t spawnTable) total() float64 {
	sum := 0.0
	for _, c := range t {
		sum += c.Weight
	}
	return sum
}

// pick maps a uniform sample r in [0, 1) to an object type.
func (t spawnTable) pick(r float64) (ObjectType, bool) {
	total := t.total()
	if total <= 0 {
		return 0, false
	}
	target := r * total
	acc := 0.0
	for _, c := range t {
		acc += c.Weight
		if target < acc {
			return c.Type, true
		}
	}
	return t[len(t)-1].Type, true
}

// probability returns the share of rows that produce the given type.
func (t spawnTable) probability(typ ObjectType) float64 {
	total := t.total()
	if total <= 0 {
		return 0
	}
	for _, c := range t {
		if c.Type == typ {
			return c.Weight / total
		}
	}
	return 0
}

// spawner emits rows of objects at the horizon.
type spawner struct {
	world      config.RunnerWorld
	gemPoints  int
	table      spawnTable
	difficulty *config.DifficultyModel
	rng        *rand.Rand

	nextLetter float64 // Distance at which the next letter is due
	nextShop   float64 // Distance at which the next shop portal is due
}

func newSpawner(cfg config.RunnerConfig, diff *config.DifficultyModel, rng *rand.Rand) *spawner {
	s := &spawner{
		world:      cfg.World,
		gemPoints:  cfg.Collect.GemPoints,
		table:      newSpawnTable(cfg.Spawn),
		difficulty: diff,
		rng:        rng,
	}
	s.reset()
	return s
}

// reset restores the letter and shop cadence for a new run.
func (s *spawner) reset() {
	s.nextLetter = s.world.LetterInterval
	s.nextShop = s.world.ShopInterval
}

// randomLane returns a lane uniformly from [-floor(n/2), floor(n/2)].
func (s *spawner) randomLane() int {
	maxLane := s.world.LaneCount / 2
	return s.rng.Intn(maxLane*2+1) - maxLane
}

func (s *spawner) newObject(typ ObjectType, lane int, y, z float64) *WorldObject {
	return s.newObjectAt(typ, mgl64.Vec3{float64(lane) * s.world.LaneWidth, y, z})
}

// newObjectAt creates an object with an ID drawn from the seeded RNG so runs
// with the same seed produce the same IDs.
func (s *spawner) newObjectAt(typ ObjectType, pos mgl64.Vec3) *WorldObject {
	id, err := uuid.NewRandomFromReader(s.rng)
	if err != nil {
		id = uuid.New()
	}
	o := &WorldObject{
		ID:    id,
		Type:  typ,
		Pos:   pos,
		Phase: PhaseSpawned,
	}
	switch typ {
	case ObjectGem:
		o.Points = s.gemPoints
	case ObjectEnemy:
		o.Weapon = WeaponArmed
	}
	return o
}

// step spawns at most one row when the horizon has room.
func (s *spawner) step(w *World, distance float64, chapter *content.Chapter, collected map[int]bool) *WorldObject {
	furthest := w.FurthestZ(s.world.InitialHorizon)
	if furthest <= -s.world.SpawnDistance {
		return nil
	}

	f := s.difficulty.Factor(distance)
	z := furthest - s.difficulty.RowGap(f)

	if o := s.letterRow(w, distance, z, chapter, collected); o != nil {
		w.Add(o)
		return o
	}

	if s.world.ShopInterval > 0 && distance >= s.nextShop {
		s.nextShop += s.world.ShopInterval
		o := s.newObject(ObjectShopPortal, 0, heightGround, z)
		w.Add(o)
		return o
	}

	if s.rng.Float64() < s.difficulty.EmptyRowChance(f) {
		return nil
	}

	typ, ok := s.table.pick(s.rng.Float64())
	if !ok {
		return nil
	}
	o := s.newObject(typ, s.randomLane(), spawnHeight(typ), z)
	w.Add(o)
	return o
}

// letterRow returns a letter (or a gem once the word is complete) when one
// is due, nil otherwise. Indices already on the track are not duplicated.
func (s *spawner) letterRow(w *World, distance, z float64, chapter *content.Chapter, collected map[int]bool) *WorldObject {
	if chapter == nil || distance < s.nextLetter {
		return nil
	}

	letters := chapter.Letters()
	available := make([]int, 0, len(letters))
	uncollected := 0
	for i := range letters {
		if collected[i] {
			continue
		}
		uncollected++
		if !w.LetterOnTrack(i) {
			available = append(available, i)
		}
	}

	lane := s.randomLane()
	if uncollected == 0 {
		return s.newObject(ObjectGem, lane, heightGemFallback, z)
	}
	if len(available) == 0 {
		// Every missing letter is already approaching; retry next row
		return nil
	}

	index := available[s.rng.Intn(len(available))]
	o := s.newObject(ObjectLetter, lane, heightLetter, z)
	o.Value = letters[index]
	o.TargetIndex = index
	s.nextLetter += s.world.LetterInterval
	return o
}

func spawnHeight(typ ObjectType) float64 {
	switch typ {
	case ObjectGem:
		return heightGem
	case ObjectLetter:
		return heightLetter
	case ObjectEnemy:
		return heightEnemy
	default:
		return heightGround
	}
}
