package tui

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/word-runner/internal/core"
	"github.com/vovakirdan/word-runner/internal/runner"
)

const (
	floaterLife = 1.0 // Seconds a label stays on screen
	burstLife   = 0.35
	maxFloaters = 24
)

// feedbackRise lifts UI labels above the player's head.
var feedbackRise = mgl64.Vec3{0, 3, 0}

// floater is a short-lived label or particle anchored to a world position.
type floater struct {
	pos   mgl64.Vec3
	text  string
	color core.Color
	life  float64
	total float64
}

// floaters holds the transient effects built from engine events.
type floaters struct {
	items []floater
}

// push converts one engine event into zero or more floaters.
func (f *floaters) push(ev runner.Event) {
	switch ev.Kind {
	case runner.EventFeedback:
		text := ev.Label
		switch {
		case ev.Value > 0:
			text = fmt.Sprintf("%s +%d", ev.Label, ev.Value)
		case ev.Value < 0:
			text = fmt.Sprintf("%s %d", ev.Label, ev.Value)
		}
		f.add(ev.Pos, text, ev.Color, floaterLife)
	case runner.EventBurst:
		f.add(ev.Pos, "*", ev.Color, burstLife)
	case runner.EventExplosion:
		f.add(ev.Pos, "\\|/", ev.Color, burstLife)
	case runner.EventPurchase:
		f.add(feedbackRise, fmt.Sprintf("ACHAT -%d", ev.Value), core.ColorBrightCyan, floaterLife)
	case runner.EventImmortality:
		f.add(ev.Pos.Add(feedbackRise), "PARACHUTE !", core.ColorBrightYellow, floaterLife)
	}
}

func (f *floaters) add(pos mgl64.Vec3, text string, color core.Color, life float64) {
	if len(f.items) >= maxFloaters {
		f.items = f.items[1:]
	}
	f.items = append(f.items, floater{pos: pos, text: text, color: color, life: life, total: life})
}

// update ages every floater and drops the expired ones.
func (f *floaters) update(dt float64) {
	kept := f.items[:0]
	for _, it := range f.items {
		it.life -= dt
		if it.life > 0 {
			kept = append(kept, it)
		}
	}
	f.items = kept
}

// reset drops every floater.
func (f *floaters) reset() {
	f.items = nil
}

// len returns the number of live floaters.
func (f *floaters) len() int {
	return len(f.items)
}

// draw renders floaters rising as they age.
func (f *floaters) draw(s *core.Screen, p projection) {
	for _, it := range f.items {
		rise := (1 - it.life/it.total) * 1.5
		col, row, _, ok := p.point(it.pos.Add(mgl64.Vec3{0, rise, 0}))
		if !ok {
			continue
		}
		color := it.color
		if it.life < it.total/3 {
			color = core.ColorGray
		}
		drawCentered(s, col, row, it.text, color)
	}
}
