package tui

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/word-runner/internal/config"
	"github.com/vovakirdan/word-runner/internal/core"
	"github.com/vovakirdan/word-runner/internal/runner"
)

// Projection constants for the pseudo-3D corridor.
const (
	focalLength   = 10.0 // World units between the eye and the player plane
	unitRows      = 1.2  // Screen rows per world unit of height at the player plane
	hudRows       = 2
	maxLaneColumn = 16 // Lane spacing cap in columns at the player plane
)

// projection maps world positions onto the screen for one frame.
type projection struct {
	width, height int
	horizon       int     // First ground row
	feetRow       int     // Row of the player's feet
	center        int     // Column of the corridor axis
	laneSpacing   float64 // Columns between lanes at the player plane
	laneWidth     float64 // World width of a lane
	laneCount     int
	far           float64 // Farthest visible distance
}

func newProjection(width, height int, world config.RunnerWorld) projection {
	horizon := height / 3
	if horizon < hudRows+1 {
		horizon = hudRows + 1
	}
	feetRow := height - 2
	if feetRow <= horizon {
		feetRow = horizon + 1
	}

	lanes := world.LaneCount
	if lanes < 1 {
		lanes = 1
	}
	spacing := math.Min(float64(width)/float64(lanes+1), maxLaneColumn)

	return projection{
		width:       width,
		height:      height,
		horizon:     horizon,
		feetRow:     feetRow,
		center:      width / 2,
		laneSpacing: spacing,
		laneWidth:   world.LaneWidth,
		laneCount:   lanes,
		far:         world.SpawnDistance,
	}
}

// scale returns the perspective factor at depth z (z <= 0 ahead of the player).
func (p projection) scale(z float64) float64 {
	return focalLength / (focalLength - z)
}

// groundRow returns the screen row of the ground at perspective scale s.
func (p projection) groundRow(s float64) int {
	return p.horizon + int(math.Round(s*float64(p.feetRow-p.horizon)))
}

// point projects a world position. Returns false when off screen or behind
// the camera.
func (p projection) point(pos mgl64.Vec3) (col, row int, s float64, ok bool) {
	z := pos.Z()
	if z > focalLength*0.3 || z < -p.far {
		return 0, 0, 0, false
	}
	s = p.scale(z)
	col = p.center + int(math.Round(pos.X()/p.laneWidth*p.laneSpacing*s))
	row = p.groundRow(s) - int(math.Round(pos.Y()*unitRows*s))
	if row < hudRows || row >= p.height || col < 0 || col >= p.width {
		return col, row, s, false
	}
	return col, row, s, true
}

// trackHalf returns the half-width of the corridor in columns at scale s.
func (p projection) trackHalf(s float64) float64 {
	return p.laneSpacing * float64(p.laneCount) / 2 * s
}

// drawWorld renders the sky, the corridor, the objects, the player and the
// floaters.
func drawWorld(s *core.Screen, e *runner.Engine, fx *floaters, elapsed float64) {
	cfg := e.Config()
	p := newProjection(s.Width(), s.Height(), cfg.World)

	drawSky(s, p)
	drawCorridor(s, p, e.Distance())

	objects := e.Objects()
	// Far to near so closer objects overdraw
	sort.SliceStable(objects, func(i, j int) bool {
		return objects[i].Pos.Z() < objects[j].Pos.Z()
	})
	for i := range objects {
		drawObject(s, p, &objects[i])
	}

	drawPlayer(s, p, e, elapsed)
	fx.draw(s, p)
	drawHUD(s, e)
}

func drawSky(s *core.Screen, p projection) {
	for row := hudRows; row < p.horizon; row++ {
		if row%3 == 0 {
			s.SetColored((row*17+11)%p.width, row, '.', core.ColorGray)
			s.SetColored((row*31+7)%p.width, row, '.', core.ColorGray)
		}
	}
	s.DrawHLine(0, p.horizon-1, p.width, '_', core.ColorDefault)
}

func drawCorridor(s *core.Screen, p projection, distance float64) {
	span := float64(p.feetRow - p.horizon)
	for row := p.horizon; row < p.height; row++ {
		sc := float64(row-p.horizon) / span
		if sc <= 0 {
			continue
		}
		// World depth seen at this row, used to anchor dashes to the ground
		z := focalLength - focalLength/sc
		band := int(math.Floor((z-distance)/3)) & 1

		half := p.trackHalf(sc)
		left := p.center - int(math.Round(half))
		right := p.center + int(math.Round(half))

		for x := 0; x < p.width; x++ {
			if x < left || x > right {
				if (x+row)%5 == 0 {
					s.SetColored(x, row, '.', core.ColorGreen)
				}
			}
		}
		s.SetColored(left, row, '/', core.ColorGray)
		s.SetColored(right, row, '\\', core.ColorGray)

		for l := 1; l < p.laneCount; l++ {
			dx := left + int(math.Round(float64(l)*(2*half)/float64(p.laneCount)))
			if band == 0 && dx > left && dx < right {
				s.SetColored(dx, row, ':', core.ColorGray)
			}
		}
	}
}

func drawObject(s *core.Screen, p projection, o *runner.WorldObject) {
	col, row, sc, ok := p.point(o.Pos)
	if !ok {
		return
	}
	laneCols := int(p.laneSpacing * sc * 0.7)
	if laneCols < 1 {
		laneCols = 1
	}

	switch o.Type {
	case runner.ObjectObstacle:
		drawBlock(s, col, row, laneCols, rowsFor(sc, 2), '▓', core.ColorOrange)
	case runner.ObjectHazardGate:
		drawBlock(s, col, row, laneCols+2, 1, '═', core.ColorBrightRed)
		if sc > 0.3 {
			s.SetColored(col-laneCols/2-1, row-1, '║', core.ColorBrightRed)
			s.SetColored(col+laneCols/2+1, row-1, '║', core.ColorBrightRed)
		}
	case runner.ObjectGem:
		s.SetColored(col, row, '◆', core.ColorBrightYellow)
	case runner.ObjectLetter:
		if sc > 0.3 {
			drawCentered(s, col, row, "["+string(o.Value)+"]", core.ColorBrightGreen)
		} else {
			s.SetColored(col, row, o.Value, core.ColorBrightGreen)
		}
	case runner.ObjectShopPortal:
		if sc > 0.3 {
			drawCentered(s, col, row, "(BOUTIQUE)", core.ColorBrightMagenta)
		} else {
			s.SetColored(col, row, '@', core.ColorBrightMagenta)
		}
	case runner.ObjectEnemy:
		if sc > 0.3 {
			drawCentered(s, col, row, `\X/`, core.ColorRed)
		} else {
			s.SetColored(col, row, 'X', core.ColorRed)
		}
	case runner.ObjectProjectile:
		s.SetColored(col, row, '●', core.ColorBrightRed)
	}
}

func rowsFor(sc float64, max int) int {
	n := int(math.Round(sc * float64(max)))
	if n < 1 {
		return 1
	}
	return n
}

func drawBlock(s *core.Screen, col, row, w, h int, r rune, c core.Color) {
	left := col - w/2
	for y := row - h + 1; y <= row; y++ {
		for x := left; x < left+w; x++ {
			s.SetColored(x, y, r, c)
		}
	}
}

func drawCentered(s *core.Screen, col, row int, text string, c core.Color) {
	s.DrawTextColored(col-len([]rune(text))/2, row, text, c)
}

func drawPlayer(s *core.Screen, p projection, e *runner.Engine, elapsed float64) {
	pl := e.Player()
	col, feet, _, ok := p.point(pl.Pos())
	if !ok {
		return
	}

	color := core.ColorBrightWhite
	switch {
	case e.ImmortalityActive():
		color = core.ColorBrightYellow
	case e.Invincible() && int(elapsed*10)%2 == 0:
		color = core.ColorGray
	}

	legs := [4]string{"/ \\", "| |", "\\ /", "| |"}
	frame := int(e.Distance()/2) % len(legs)
	if pl.Airborne {
		frame = 1
	}
	s.SetColored(col, feet-2, 'O', color)
	s.DrawTextColored(col-1, feet-1, "/|\\", color)
	s.DrawTextColored(col-1, feet, legs[frame], color)
}

// drawHUD renders score, run stats, the word progress and owned power-ups.
func drawHUD(s *core.Screen, e *runner.Engine) {
	left := fmt.Sprintf(" SCORE %07d  DIST %5.0fm  VIT %4.1f  DIFF %3.0f%%",
		e.Score(), e.Distance(), e.Speed(), e.Difficulty()*100)
	s.DrawTextColored(0, 0, left, core.ColorBrightWhite)

	gems := fmt.Sprintf("◆ %d ", e.GemsCollected())
	s.DrawTextColored(s.Width()-len([]rune(gems)), 0, gems, core.ColorBrightYellow)

	x := 1
	if ch := e.Chapter(); ch != nil {
		s.DrawTextColored(x, 1, "MOT ", core.ColorGray)
		x += 4
		for i, r := range ch.Letters() {
			if e.IsCollected(i) {
				s.SetColored(x, 1, r, core.ColorBrightGreen)
			} else {
				s.SetColored(x, 1, '_', core.ColorGray)
			}
			x += 2
		}
	}

	inv := e.Inventory()
	var tags []string
	if inv.DoubleJump {
		tags = append(tags, "JETPACK")
	}
	if inv.Immortality {
		if rem := e.ImmortalityRemaining(); rem > 0 {
			tags = append(tags, fmt.Sprintf("PARACHUTE %.1fs", rem.Seconds()))
		} else {
			tags = append(tags, "PARACHUTE [i]")
		}
	}
	if inv.Magnet {
		tags = append(tags, "AIMANT")
	}
	if inv.ScoreMultiplier > 1 {
		tags = append(tags, fmt.Sprintf("x%d", inv.ScoreMultiplier))
	}
	if len(tags) > 0 {
		text := strings.Join(tags, " | ") + " "
		s.DrawTextColored(s.Width()-len([]rune(text)), 1, text, core.ColorBrightCyan)
	}
}

// panelLine is one line of an overlay panel.
type panelLine struct {
	text  string
	color core.Color
}

// drawPanel draws a centered boxed overlay. Long lines are word-wrapped.
func drawPanel(s *core.Screen, title string, titleColor core.Color, lines []panelLine) {
	inner := s.Width() - 8
	if inner > 64 {
		inner = 64
	}
	if inner < 10 {
		inner = 10
	}

	var wrapped []panelLine
	for _, l := range lines {
		for _, w := range wrapText(l.text, inner) {
			wrapped = append(wrapped, panelLine{text: w, color: l.color})
		}
	}

	w := inner + 4
	h := len(wrapped) + 4
	rect := core.NewRect((s.Width()-w)/2, (s.Height()-h)/2, w, h)
	if rect.Y < 0 {
		rect.Y = 0
	}

	s.FillRect(rect, ' ', core.ColorDefault)
	s.DrawBox(rect, titleColor)
	tx := rect.X + (w-len([]rune(title)))/2
	s.DrawTextColored(tx, rect.Y+1, title, titleColor)
	for i, l := range wrapped {
		s.DrawTextColored(rect.X+2, rect.Y+3+i, l.text, l.color)
	}
}

// wrapText word-wraps text to the given width. An empty string is kept as a
// blank line.
func wrapText(text string, width int) []string {
	if text == "" {
		return []string{""}
	}
	rendered := lipgloss.NewStyle().Width(width).Render(text)
	lines := strings.Split(rendered, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}
