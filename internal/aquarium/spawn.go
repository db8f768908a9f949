package aquarium

// spawnFood adds at most one item per call: the quota must have room and the
// spawn interval must have passed on the simulation clock.
func (w *World) spawnFood() bool {
	ft := w.Tuning.Food
	if len(w.Food) >= ft.Quota || w.Clock-w.LastFoodSpawn < ft.SpawnInterval {
		return false
	}
	w.Food = append(w.Food, newFood(w.Tuning, w.rng))
	w.LastFoodSpawn = w.Clock
	return true
}

// spawnBubbles rolls independently for an ambient and a bubbler bubble. Each
// append checks the cap first, so the population can never exceed it.
func (w *World) spawnBubbles() {
	bt := w.Tuning.Bubbles
	if chance(w.rng, bt.AmbientSpawnChance) && len(w.Bubbles) < bt.Cap {
		w.Bubbles = append(w.Bubbles, newBubble(AmbientSource(), bt.SpawnZ, w.Field, w.rng))
	}
	if chance(w.rng, bt.BubblerSpawnChance) && len(w.Bubbles) < bt.Cap {
		src := BubblerSource(w.Bubbler.X, w.Bubbler.Y)
		w.Bubbles = append(w.Bubbles, newBubble(src, bt.SpawnZ, w.Field, w.rng))
	}
}
