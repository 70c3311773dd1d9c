package web

import "github.com/vovakirdan/lane-shift/internal/games/laneshift"

// Client message types.
const (
	MsgStart   = "start"
	MsgRestart = "restart"
	MsgSwipe   = "swipe"
	MsgMove    = "move"
)

// Server message types.
const (
	MsgState = "state"
	MsgOver  = "over"
)

// ClientMessage is sent by the browser.
type ClientMessage struct {
	Type   string  `json:"type"`
	Shape  string  `json:"shape,omitempty"`
	Color  string  `json:"color,omitempty"`
	StartX float64 `json:"startX,omitempty"`
	EndX   float64 `json:"endX,omitempty"`
	Dir    int     `json:"dir,omitempty"`
}

// ResultView is the end-of-run summary sent to the browser.
type ResultView struct {
	Score   int  `json:"score"`
	Best    int  `json:"best"`
	NewBest bool `json:"newBest"`
}

// ServerMessage is sent to the browser after every tick and on game over.
type ServerMessage struct {
	Type     string              `json:"type"`
	Snapshot *laneshift.Snapshot `json:"snapshot,omitempty"`
	Result   *ResultView         `json:"result,omitempty"`
}

type bestResponse struct {
	Best int `json:"best"`
}
