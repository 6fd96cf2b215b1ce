package main

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cthulhu-strike/arena"
	"github.com/lixenwraith/cthulhu-strike/audio"
	"github.com/lixenwraith/cthulhu-strike/event"
	"github.com/lixenwraith/cthulhu-strike/input"
	"github.com/lixenwraith/cthulhu-strike/parameter"
	"github.com/lixenwraith/cthulhu-strike/render"
	"github.com/lixenwraith/cthulhu-strike/vmath"
)

// defaultAim is where shots go before the mouse reports a position, relative to the player
var defaultAim = vmath.Vec2F{X: 100}

// session drives one arena from terminal input at the frame rate
// Only the loop goroutine touches the arena; others read published
type session struct {
	game     *arena.Arena
	screen   tcell.Screen
	renderer *render.Renderer
	tracker  *input.Tracker
	sound    *audio.SoundManager

	published atomic.Pointer[arena.Snapshot]
}

func newSession(game *arena.Arena, screen tcell.Screen, renderer *render.Renderer, tracker *input.Tracker, sound *audio.SoundManager) *session {
	s := &session{
		game:     game,
		screen:   screen,
		renderer: renderer,
		tracker:  tracker,
		sound:    sound,
	}
	initial := game.Snapshot()
	s.published.Store(&initial)
	return s
}

// loop ticks and draws until quit, context cancellation, or the event channel closes
// After death the arena stops advancing and only the banner is redrawn
func (s *session) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				s.screen.Sync()
				continue
			}
			if s.tracker.HandleEvent(ev, time.Now()) == input.ActionQuit {
				return nil
			}

		case now := <-ticker.C:
			dt := min(now.Sub(last), parameter.MaxFrameDelta)
			last = now
			s.step(now, dt)
		}
	}
}

// step advances one frame and redraws
func (s *session) step(now time.Time, dt time.Duration) {
	snap := s.published.Load()

	aim := vmath.V2FAdd(snap.Player.Pos, defaultAim)
	frame := s.tracker.Frame(now, s.renderer.Camera().CellToWorld, aim)

	if frame.JustPressed(input.ActionToggleMute) {
		s.sound.ToggleMute()
	}

	if !snap.PlayerDead {
		next := s.game.Tick(dt, frame)
		s.published.Store(&next)
		s.sound.HandleEvents(next.Events)
		logEvents(next.Events)
		if next.PlayerDead {
			log.Printf("player died: frame=%d kills=%d elapsed=%s", next.Frame, next.Kills, next.Elapsed)
		}
		snap = &next
	}

	cx, cy, ok := s.tracker.Cursor()
	s.renderer.Draw(snap, render.Overlay{CursorX: cx, CursorY: cy, CursorOK: ok, Muted: s.sound.Muted()})
}

// logEvents writes notable events to the debug log
func logEvents(events []event.GameEvent) {
	for _, ev := range events {
		if msg, ok := describeEvent(ev); ok {
			log.Printf("[event] f=%d %s", ev.Frame, msg)
		}
	}
}

// describeEvent renders an event for the log, false for events too frequent to log
func describeEvent(ev event.GameEvent) (string, bool) {
	switch p := ev.Payload.(type) {
	case *event.EnemyKilledPayload:
		return fmt.Sprintf("%s enemy=%d at (%.0f,%.0f)", ev.Type, p.Enemy, p.Pos.X, p.Pos.Y), true
	case *event.PlayerHitPayload:
		return fmt.Sprintf("%s by=%d health=%d", ev.Type, p.Attacker, p.Health), true
	case *event.ReloadPayload:
		return fmt.Sprintf("%s weapon=%s manual=%v", ev.Type, p.Name, p.Manual), true
	case *event.WeaponSelectedPayload:
		return fmt.Sprintf("%s weapon=%s slot=%d", ev.Type, p.Name, p.Slot), true
	}
	return "", false
}
