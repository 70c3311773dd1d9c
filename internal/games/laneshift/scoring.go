package laneshift

// Result summarizes a finished run.
type Result struct {
	Score   int
	Best    int  // Best score after this run
	NewBest bool // The run beat the previous best
	Repeat  bool // EndGame was called on a run that had already ended
}

// EndGame stops the run and folds its score into the best score.
// It is idempotent: once a run is over, further calls change nothing and
// report Repeat.
func EndGame(s GameState) (GameState, Result) {
	if s.Run.Over && !s.Run.Running {
		return s, Result{Score: s.Run.Score, Best: s.Best, Repeat: true}
	}

	s.Run.Running = false
	s.Run.Over = true

	res := Result{Score: s.Run.Score}
	if s.Run.Score > s.Best {
		s.Best = s.Run.Score
		res.NewBest = true
	}
	res.Best = s.Best
	return s, res
}

// Restart clears the playfield and resets the run counters. The player
// returns to the start lane. The game stays stopped until Start is called.
// Best score and customization survive.
func Restart(s GameState, p Params) GameState {
	s.Obstacles = nil
	s.Player.Lane = p.StartLane
	s.Run = initialRun(p)
	return s
}

// Start begins advancing the run from the start lane.
func Start(s GameState, p Params) GameState {
	s.Run.Running = true
	s.Run.Over = false
	s.Player.Lane = p.StartLane
	return s
}
