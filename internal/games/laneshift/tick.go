package laneshift

// Events describes what happened during one tick, for renderers that
// keep per-obstacle visuals.
type Events struct {
	Spawned []Obstacle
	Removed []int   // IDs of obstacles that left the playfield
	Ended   *Result // Set on the tick that ended the run
}

// Tick advances a running game by one frame. A state that is not running
// is returned unchanged. The input state is not modified.
//
// Order within a tick: move obstacles, drop the ones below the offscreen
// limit, check the catch band, then score, speed and spawning. The tick
// that detects a collision stops after the collision check.
func Tick(s GameState, p Params, rng Rand) (GameState, Events) {
	var ev Events
	if !s.Run.Running {
		return s, ev
	}

	s = s.clone()
	s.Run.Ticks++

	advance(s.Obstacles, s.Run.Speed)
	s.Obstacles, ev.Removed = prune(s.Obstacles, p.OffscreenLimit)

	if collides(s.Obstacles, s.Player.Lane, p.CollisionBand) {
		var res Result
		s, res = EndGame(s)
		ev.Ended = &res
		return s, ev
	}

	s.Run.Score++
	s.Run.Speed += p.Acceleration

	s.Run.SpawnTimer++
	if s.Run.SpawnTimer > p.SpawnInterval {
		s, ev.Spawned = SpawnRow(s, p, rng)
		s.Run.SpawnTimer = 0
	}

	return s, ev
}

// SpawnRow appends a new obstacle row at the top of the playfield.
// Returns the new state and the spawned obstacles.
func SpawnRow(s GameState, p Params, rng Rand) (GameState, []Obstacle) {
	lanes := p.Spawner.Row(rng)
	// Force a fresh backing array so the caller's state is never written through.
	s.Obstacles = s.Obstacles[:len(s.Obstacles):len(s.Obstacles)]
	spawned := make([]Obstacle, 0, len(lanes))
	for _, lane := range lanes {
		s.nextID++
		o := Obstacle{ID: s.nextID, Lane: lane, Y: p.SpawnY}
		s.Obstacles = append(s.Obstacles, o)
		spawned = append(spawned, o)
	}
	return s, spawned
}
