package render

import (
	"math"

	"github.com/lixenwraith/cthulhu-strike/parameter"
	"github.com/lixenwraith/cthulhu-strike/vmath"
)

// Camera projects world space onto the terminal arena area, centered on a followed point
// The arena area spans rows [0, Height); the HUD sits below it
type Camera struct {
	Center vmath.Vec2F
	Width  int
	Height int
}

// NewCamera creates a camera for a screen of the given size
func NewCamera(screenWidth, screenHeight int) *Camera {
	c := &Camera{}
	c.Resize(screenWidth, screenHeight)
	return c
}

// Resize adapts the viewport to a new screen size
func (c *Camera) Resize(screenWidth, screenHeight int) {
	c.Width = max(screenWidth, 1)
	c.Height = max(screenHeight-parameter.HUDRows, 1)
}

// Follow locks the view on pos
func (c *Camera) Follow(pos vmath.Vec2F) {
	c.Center = pos
}

// WorldToCell returns the cell containing p, ok is false outside the viewport
func (c *Camera) WorldToCell(p vmath.Vec2F) (x, y int, ok bool) {
	x = int(math.Floor((p.X-c.Center.X)/parameter.CellWorldWidth)) + c.Width/2
	y = int(math.Floor((p.Y-c.Center.Y)/parameter.CellWorldHeight)) + c.Height/2
	ok = x >= 0 && x < c.Width && y >= 0 && y < c.Height
	return x, y, ok
}

// CellToWorld returns the world position at the center of cell (x, y)
// Cells outside the viewport still project, so the cursor aims past the edge
func (c *Camera) CellToWorld(x, y int) vmath.Vec2F {
	return vmath.Vec2F{
		X: c.Center.X + (float64(x-c.Width/2)+0.5)*parameter.CellWorldWidth,
		Y: c.Center.Y + (float64(y-c.Height/2)+0.5)*parameter.CellWorldHeight,
	}
}
