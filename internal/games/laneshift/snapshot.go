package laneshift

// ObstacleView is an obstacle positioned for a renderer, in percent.
type ObstacleView struct {
	ID    int     `json:"id"`
	Lane  int     `json:"lane"`
	X     float64 `json:"x"`     // Lane center
	Left  float64 `json:"left"`  // Left edge
	Width float64 `json:"width"` // Obstacle width
	Y     float64 `json:"y"`     // Bottom edge, 100 = top
}

// Snapshot is everything a renderer needs to draw one frame.
// All coordinates are percentages of the playfield.
type Snapshot struct {
	PlayerLane int            `json:"playerLane"`
	PlayerX    float64        `json:"playerX"`
	Shape      string         `json:"shape"`
	Color      string         `json:"color"`
	Obstacles  []ObstacleView `json:"obstacles"`
	Score      int            `json:"score"`
	Best       int            `json:"best"`
	Speed      float64        `json:"speed"`
	Running    bool           `json:"running"`
	Over       bool           `json:"over"`
}

// NewSnapshot projects a state onto renderer coordinates.
func NewSnapshot(s GameState, p Params) Snapshot {
	views := make([]ObstacleView, 0, len(s.Obstacles))
	for _, o := range s.Obstacles {
		views = append(views, ObstacleView{
			ID:    o.ID,
			Lane:  int(o.Lane),
			X:     p.Lanes.Position(o.Lane),
			Left:  p.Lanes.Left(o.Lane),
			Width: p.Lanes.Width(),
			Y:     o.Y,
		})
	}

	return Snapshot{
		PlayerLane: int(s.Player.Lane),
		PlayerX:    p.Lanes.Position(s.Player.Lane),
		Shape:      string(s.Player.Look.Shape),
		Color:      string(s.Player.Look.Color),
		Obstacles:  views,
		Score:      s.Run.Score,
		Best:       s.Best,
		Speed:      s.Run.Speed,
		Running:    s.Run.Running,
		Over:       s.Run.Over,
	}
}
