package runner

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/word-runner/internal/core"
)

// EventKind identifies a notification emitted by the engine.
type EventKind int

const (
	EventHit       EventKind = iota // Player touched a damage source
	EventDamage                     // Score penalty applied by TakeDamage
	EventCollect                    // Gem or letter picked up
	EventBurst                      // Particle burst at Pos
	EventExplosion                  // Projectile exploded at Pos
	EventFeedback                   // Floating label with optional score value
	EventJump                       // Value is the jump count (2 = double jump)
	EventStatus                     // Status changed; Status holds the new value
	EventAnswer                     // Quiz answered; Value is 1 when correct
	EventPurchase                   // Shop item bought; Label holds the item kind
	EventImmortality                // Immortality window started
)

// String returns the name of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventHit:
		return "Hit"
	case EventDamage:
		return "Damage"
	case EventCollect:
		return "Collect"
	case EventBurst:
		return "Burst"
	case EventExplosion:
		return "Explosion"
	case EventFeedback:
		return "Feedback"
	case EventJump:
		return "Jump"
	case EventStatus:
		return "Status"
	case EventAnswer:
		return "Answer"
	case EventPurchase:
		return "Purchase"
	case EventImmortality:
		return "Immortality"
	default:
		return "Unknown"
	}
}

// Event is a typed notification for presentation layers.
// The engine never renders or plays anything itself.
type Event struct {
	Kind       EventKind
	Pos        mgl64.Vec3
	Color      core.Color
	Label      string
	Value      int
	ObjectType ObjectType
	Status     Status
}

// eventQueue buffers events in emission order until drained.
type eventQueue struct {
	events []Event
}

func (q *eventQueue) push(ev Event) {
	q.events = append(q.events, ev)
}

// drain returns all buffered events and empties the queue.
func (q *eventQueue) drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}

func (q *eventQueue) reset() {
	q.events = nil
}
