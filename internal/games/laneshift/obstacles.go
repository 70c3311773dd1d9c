package laneshift

// Obstacle is a single blocked lane segment falling toward the player.
// Y is the obstacle's bottom edge in percent: 100 is the top of the
// playfield, 0 is the catch-line, negative values are below the screen.
type Obstacle struct {
	// ID identifies the obstacle's visual in a renderer. IDs are never
	// reused within a game.
	ID   int
	Lane Lane
	Y    float64
}

// advance moves every obstacle down by speed.
func advance(obstacles []Obstacle, speed float64) {
	for i := range obstacles {
		obstacles[i].Y -= speed
	}
}

// prune drops obstacles below limit, in place.
// Returns the kept obstacles and the IDs of the removed ones.
func prune(obstacles []Obstacle, limit float64) ([]Obstacle, []int) {
	var removed []int
	kept := obstacles[:0]
	for _, o := range obstacles {
		if o.Y < limit {
			removed = append(removed, o.ID)
			continue
		}
		kept = append(kept, o)
	}
	return kept, removed
}

// collides reports whether any obstacle in lane has reached the catch band.
func collides(obstacles []Obstacle, lane Lane, band float64) bool {
	for _, o := range obstacles {
		if o.Y <= band && o.Lane == lane {
			return true
		}
	}
	return false
}
