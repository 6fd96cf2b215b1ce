package render

import (
	"fmt"

	"github.com/lixenwraith/cthulhu-strike/arena"
)

// hudSegment is one colored block of the status row
type hudSegment struct {
	text string
	kind segmentKind
}

type segmentKind int

const (
	segmentHealth segmentKind = iota
	segmentWeapon
	segmentReload
	segmentInfo
)

// statusSegments builds the status row: health, weapon and ammo, enemy count, kills
func statusSegments(snap *arena.Snapshot, muted bool) []hudSegment {
	segs := []hudSegment{
		{fmt.Sprintf(" HP %d/%d ", max(snap.Player.Health, 0), snap.Player.MaxHealth), segmentHealth},
	}

	if snap.HasWeapon {
		w := snap.Weapon
		if w.Reloading {
			segs = append(segs, hudSegment{
				fmt.Sprintf(" %s %d/%d reloading %.1fs ", w.Name, w.CurrentAmmo, w.MaxAmmo, w.ReloadRemaining.Seconds()),
				segmentReload,
			})
		} else {
			segs = append(segs, hudSegment{fmt.Sprintf(" %s %d/%d ", w.Name, w.CurrentAmmo, w.MaxAmmo), segmentWeapon})
		}
	} else {
		segs = append(segs, hudSegment{" unarmed ", segmentWeapon})
	}

	segs = append(segs,
		hudSegment{fmt.Sprintf(" Enemies %d ", snap.EnemyCount), segmentInfo},
		hudSegment{fmt.Sprintf(" Kills %d ", snap.Kills), segmentInfo},
	)
	if muted {
		segs = append(segs, hudSegment{" muted ", segmentInfo})
	}
	return segs
}

// slotLabel formats one arsenal entry of the slot row
func slotLabel(w arena.WeaponView) string {
	if w.Reloading {
		return fmt.Sprintf("%d:%s*", w.Slot, w.Name)
	}
	return fmt.Sprintf("%d:%s", w.Slot, w.Name)
}

// bannerText is shown over the arena once the player is dead
func bannerText(snap *arena.Snapshot) string {
	return fmt.Sprintf(" GAME OVER  kills %d  time %.0fs  [q] quit ", snap.Kills, snap.Elapsed.Seconds())
}
