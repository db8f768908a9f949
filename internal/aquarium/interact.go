package aquarium

import "github.com/zeusync/fishtank/internal/core/systems/physics"

// pickupFood eats every item touching the player and returns how many were eaten.
func (w *World) pickupFood() int {
	p := w.Player
	reach := p.Size / 2
	eaten := 0
	kept := w.Food[:0]
	for _, f := range w.Food {
		pos := f.Position(w.Clock)
		if physics.Distance3(p.Pos, pos) < reach+f.Size {
			p.Heal(w.Tuning.Food.Reward)
			eaten++
			w.emit(EventFoodEaten, FoodEaten{Pos: pos, Health: p.Health})
			continue
		}
		kept = append(kept, f)
	}
	clear(w.Food[len(kept):])
	w.Food = kept
	return eaten
}

// resolveDamage applies at most one hit per cooldown window: the first
// predator in collection order that overlaps the player.
func (w *World) resolveDamage() bool {
	p := w.Player
	pt := w.Tuning.Predator
	if w.PlayerSafe() || w.Clock-p.LastDamageAt < pt.DamageCooldown {
		return false
	}
	for _, pr := range w.Predators {
		reach := p.Size/2 + pr.Size*pt.HitSizeFactor
		if physics.Distance3(p.Pos, pr.Pos) < reach {
			p.Hurt(pt.Damage, w.Clock)
			w.emit(EventPlayerDamaged, PlayerDamaged{PredatorID: pr.ID, Amount: pt.Damage, Health: p.Health})
			return true
		}
	}
	return false
}

func (w *World) resolveDeath() bool {
	if !w.Player.CheckDeath() {
		return false
	}
	w.emit(EventPlayerDied, PlayerDied{Pos: w.Player.Pos, SurvivedFor: w.Clock})
	return true
}
