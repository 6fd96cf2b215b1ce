package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background

	RgbPlayer           = tcell.NewRGBColor(255, 165, 0) // Orange
	RgbPlayerInvincible = tcell.NewRGBColor(255, 255, 255)
	RgbPlayerDead       = tcell.NewRGBColor(120, 120, 120)

	RgbEnemyHealthy = tcell.NewRGBColor(80, 200, 120)
	RgbEnemyWounded = tcell.NewRGBColor(255, 80, 80)

	RgbCrosshair = tcell.NewRGBColor(255, 255, 0)
	RgbShotCone  = tcell.NewRGBColor(90, 80, 40)

	RgbHUDText       = tcell.NewRGBColor(0, 0, 0)
	RgbHUDHealthBg   = tcell.NewRGBColor(200, 50, 50)
	RgbHUDWeaponBg   = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbHUDReloadBg   = tcell.NewRGBColor(255, 192, 203) // Pink
	RgbHUDInfoBg     = tcell.NewRGBColor(255, 255, 255)
	RgbHUDSlot       = tcell.NewRGBColor(180, 180, 180)
	RgbHUDSlotActive = tcell.NewRGBColor(255, 165, 0)

	RgbBanner = tcell.NewRGBColor(255, 0, 0)
)

// Palette resolves colors, collapsing to the terminal default in monochrome mode
type Palette struct {
	Mono bool
}

func (p Palette) fg(fg tcell.Color) tcell.Style {
	if p.Mono {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(fg).Background(RgbBackground)
}

func (p Palette) block(fg, bg tcell.Color) tcell.Style {
	if p.Mono {
		return tcell.StyleDefault.Reverse(true)
	}
	return tcell.StyleDefault.Foreground(fg).Background(bg)
}

func (p Palette) background() tcell.Style {
	if p.Mono {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Background(RgbBackground)
}

// EnemyColor shades enemies by remaining health
func EnemyColor(health, maxHealth int) tcell.Color {
	if maxHealth <= 0 || health*2 > maxHealth {
		return RgbEnemyHealthy
	}
	return RgbEnemyWounded
}
