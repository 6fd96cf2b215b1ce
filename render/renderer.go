package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cthulhu-strike/arena"
	"github.com/lixenwraith/cthulhu-strike/event"
	"github.com/lixenwraith/cthulhu-strike/parameter"
	"github.com/lixenwraith/cthulhu-strike/system"
	"github.com/lixenwraith/cthulhu-strike/vmath"
)

const (
	glyphPlayer    = '@'
	glyphEnemy     = 'X'
	glyphCrosshair = '+'
)

// Options configures a Renderer
type Options struct {
	Mono           bool
	EnemyMaxHealth int
	ConeRange      float64
	ConeHalfAngle  float64 // radians
}

// Overlay is per-draw state that lives outside the simulation
type Overlay struct {
	CursorX, CursorY int
	CursorOK         bool
	Muted            bool
}

// Renderer draws snapshots onto a terminal screen
// Owned by the main loop goroutine
type Renderer struct {
	screen  tcell.Screen
	camera  *Camera
	palette Palette
	opts    Options

	// Last fired cone, highlighted for a few draws
	coneA, coneB, coneC vmath.Vec2F
	coneFrames          int
}

// NewRenderer creates a renderer bound to screen
func NewRenderer(screen tcell.Screen, opts Options) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen:  screen,
		camera:  NewCamera(w, h),
		palette: Palette{Mono: opts.Mono},
		opts:    opts,
	}
}

// Camera returns the projection used by the last draw
func (r *Renderer) Camera() *Camera {
	return r.camera
}

// Draw renders the arena and HUD for snap
// The cursor cell is drawn as a crosshair when known and above the HUD
func (r *Renderer) Draw(snap *arena.Snapshot, ov Overlay) {
	w, h := r.screen.Size()
	r.camera.Resize(w, h)
	r.camera.Follow(snap.Player.Pos)

	r.screen.Fill(' ', r.palette.background())

	r.trackCone(snap.Events)
	if r.coneFrames > 0 {
		r.drawCone()
		r.coneFrames--
	}

	r.drawEnemies(snap)
	r.drawPlayer(snap)

	if ov.CursorOK && ov.CursorY < r.camera.Height {
		r.screen.SetContent(ov.CursorX, ov.CursorY, glyphCrosshair, nil, r.palette.fg(RgbCrosshair))
	}

	r.drawStatusRow(snap, ov.Muted, h-2)
	r.drawSlotRow(snap, h-1)

	if snap.PlayerDead {
		r.drawBanner(snap)
	}

	r.screen.Show()
}

// trackCone picks up the last shot of the tick
func (r *Renderer) trackCone(events []event.GameEvent) {
	for _, ev := range events {
		if ev.Type != event.EventWeaponFired {
			continue
		}
		p, ok := ev.Payload.(*event.WeaponFiredPayload)
		if !ok {
			continue
		}
		a, b, c, ok := system.Cone(p.Origin, p.AimTarget, r.opts.ConeRange, r.opts.ConeHalfAngle)
		if !ok {
			continue
		}
		r.coneA, r.coneB, r.coneC = a, b, c
		r.coneFrames = parameter.ShotConeFlashFrames
	}
}

func (r *Renderer) drawCone() {
	if r.palette.Mono {
		return
	}
	style := tcell.StyleDefault.Background(RgbShotCone)
	for y := 0; y < r.camera.Height; y++ {
		for x := 0; x < r.camera.Width; x++ {
			if vmath.InTriangle(r.camera.CellToWorld(x, y), r.coneA, r.coneB, r.coneC) {
				r.screen.SetContent(x, y, ' ', nil, style)
			}
		}
	}
}

func (r *Renderer) drawEnemies(snap *arena.Snapshot) {
	for _, e := range snap.Enemies {
		x, y, ok := r.camera.WorldToCell(e.Pos)
		if !ok {
			continue
		}
		r.setGlyph(x, y, glyphEnemy, EnemyColor(e.Health, r.opts.EnemyMaxHealth))
	}
}

func (r *Renderer) drawPlayer(snap *arena.Snapshot) {
	x, y, ok := r.camera.WorldToCell(snap.Player.Pos)
	if !ok {
		return
	}
	color := RgbPlayer
	switch {
	case snap.PlayerDead:
		color = RgbPlayerDead
	case snap.Player.Invincible:
		color = RgbPlayerInvincible
	}
	r.setGlyph(x, y, glyphPlayer, color)
}

// setGlyph keeps the existing background so the cone highlight shows through
func (r *Renderer) setGlyph(x, y int, ch rune, color tcell.Color) {
	_, _, style, _ := r.screen.GetContent(x, y)
	if !r.palette.Mono {
		style = style.Foreground(color)
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

func (r *Renderer) drawStatusRow(snap *arena.Snapshot, muted bool, row int) {
	x := 0
	for _, seg := range statusSegments(snap, muted) {
		var bg tcell.Color
		switch seg.kind {
		case segmentHealth:
			bg = RgbHUDHealthBg
		case segmentWeapon:
			bg = RgbHUDWeaponBg
		case segmentReload:
			bg = RgbHUDReloadBg
		default:
			bg = RgbHUDInfoBg
		}
		x = r.drawText(x, row, seg.text, r.palette.block(RgbHUDText, bg)) + 1
	}
}

func (r *Renderer) drawSlotRow(snap *arena.Snapshot, row int) {
	x := 1
	for _, w := range snap.Arsenal {
		style := r.palette.fg(RgbHUDSlot)
		if snap.HasWeapon && w.Slot == snap.Weapon.Slot {
			style = r.palette.block(RgbHUDText, RgbHUDSlotActive)
		}
		x = r.drawText(x, row, slotLabel(w), style) + 2
	}
}

func (r *Renderer) drawBanner(snap *arena.Snapshot) {
	text := bannerText(snap)
	x := max((r.camera.Width-len(text))/2, 0)
	r.drawText(x, r.camera.Height/2, text, r.palette.block(RgbHUDInfoBg, RgbBanner))
}

// drawText writes s from (x, y) and returns the column after the last rune
func (r *Renderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
