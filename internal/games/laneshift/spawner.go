package laneshift

// Rand is the randomness the spawner needs. *rand.Rand satisfies it;
// tests substitute scripted sources.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Spawner decides which lanes a new obstacle row blocks.
type Spawner struct {
	// SingleChance is the probability that a row blocks one lane
	// instead of two.
	SingleChance float64
}

// Row picks the lanes for a new row: one lane with probability
// SingleChance, otherwise two distinct lanes.
func (sp Spawner) Row(rng Rand) []Lane {
	count := 2
	if rng.Float64() < sp.SingleChance {
		count = 1
	}
	return Sample(rng, count)
}

// Sample draws count distinct lanes uniformly without replacement.
// A row never blocks every lane: if the sample would cover all of them,
// the last pick is dropped so the player always has an escape lane.
func Sample(rng Rand, count int) []Lane {
	if count < 1 {
		count = 1
	}
	if count > LaneCount {
		count = LaneCount
	}

	blocked := make([]Lane, 0, LaneCount)
	for len(blocked) < count {
		lane := Lane(rng.Intn(LaneCount))
		if !containsLane(blocked, lane) {
			blocked = append(blocked, lane)
		}
	}

	if len(blocked) == LaneCount {
		blocked = blocked[:LaneCount-1]
	}
	return blocked
}

func containsLane(lanes []Lane, lane Lane) bool {
	for _, l := range lanes {
		if l == lane {
			return true
		}
	}
	return false
}
