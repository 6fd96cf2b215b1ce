package system

import (
	"github.com/lixenwraith/cthulhu-strike/engine"
	"github.com/lixenwraith/cthulhu-strike/event"
	"github.com/lixenwraith/cthulhu-strike/vmath"
)

// Cone returns the hit triangle of a shot from origin towards aim
// ok is false when aim coincides with origin and no direction exists
func Cone(origin, aim vmath.Vec2F, length, halfAngle float64) (a, b, c vmath.Vec2F, ok bool) {
	dir := vmath.ScaledVectorTo(origin, aim, length)
	if dir.IsZero() {
		return origin, origin, origin, false
	}
	b = vmath.V2FAdd(origin, vmath.RotateV2F(dir, halfAngle))
	c = vmath.V2FAdd(origin, vmath.RotateV2F(dir, -halfAngle))
	return origin, b, c, true
}

// resolveCone applies damage to every live enemy inside or on the shot triangle
// Damage at or above remaining health removes the enemy
// No target limit, no falloff, no occlusion
func resolveCone(world *engine.World, origin, aim vmath.Vec2F, damage int) (hits, kills int) {
	tuning := world.Resources.Tuning
	a, b, c, ok := Cone(origin, aim, tuning.EngagementRange, tuning.ConeHalfAngleRad)
	if !ok {
		return 0, 0
	}

	for _, e := range world.Components.Enemy.GetAllEntities() {
		actor, ok := world.Components.Actor.GetComponent(e)
		if !ok || !actor.Alive() {
			continue
		}
		if !vmath.InTriangle(actor.Pos, a, b, c) {
			continue
		}

		hits++
		if damage >= actor.Health {
			kills++
			world.DestroyEntity(e)
			world.PushEvent(event.EventEnemyKilled, &event.EnemyKilledPayload{
				Enemy: e,
				Pos:   actor.Pos,
			})
			continue
		}

		actor.Health -= damage
		world.Components.Actor.SetComponent(e, actor)
		world.PushEvent(event.EventEnemyHit, &event.EnemyHitPayload{
			Enemy:     e,
			Damage:    damage,
			Remaining: actor.Health,
		})
	}
	return hits, kills
}
