package web

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/lane-shift/internal/core"
	"github.com/vovakirdan/lane-shift/internal/games/laneshift"
	"github.com/vovakirdan/lane-shift/internal/input"
)

const (
	maxMessageSize = 4096
	inboxSize      = 16
)

// session runs one game for one websocket connection. Only run touches
// the game; the reader goroutine hands messages over through a channel.
type session struct {
	id           string
	conn         *websocket.Conn
	game         *laneshift.Game
	swipe        *input.Swipe
	tickRate     int
	writeTimeout time.Duration
	logger       *log.Logger
}

// run drives the game until the client disconnects or ctx is done.
func (s *session) run(ctx context.Context) {
	defer s.conn.Close()
	s.conn.SetReadLimit(maxMessageSize)

	inbox := make(chan ClientMessage, inboxSize)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)
	go s.readLoop(inbox, readErr, done)

	if err := s.send(ServerMessage{Type: MsgState, Snapshot: s.snapshot()}); err != nil {
		return
	}

	ticker := time.NewTicker(time.Second / time.Duration(max(s.tickRate, 1)))
	defer ticker.Stop()
	frame := core.NewInputFrame()

	for {
		select {
		case <-ctx.Done():
			msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
			s.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(s.writeTimeout))
			return

		case err := <-readErr:
			s.logger.Debug("client gone", "error", err)
			return

		case msg := <-inbox:
			if err := s.apply(msg, &frame); err != nil {
				return
			}

		case <-ticker.C:
			if !s.game.State().Running {
				frame.Clear()
				continue
			}
			res := s.game.Step(frame)
			frame.Clear()

			if err := s.send(ServerMessage{Type: MsgState, Snapshot: s.snapshot()}); err != nil {
				return
			}
			if res.Ended {
				if err := s.sendResult(); err != nil {
					return
				}
			}
		}
	}
}

// apply handles a client message between ticks.
func (s *session) apply(msg ClientMessage, frame *core.InputFrame) error {
	switch msg.Type {
	case MsgStart:
		s.game.Customize(laneshift.Customization{
			Shape: laneshift.Shape(msg.Shape),
			Color: core.Color(msg.Color),
		})
		s.game.Start()
		frame.Clear()
		s.logger.Debug("run started", "shape", msg.Shape, "color", msg.Color)
		return s.send(ServerMessage{Type: MsgState, Snapshot: s.snapshot()})

	case MsgRestart:
		s.game.Restart()
		frame.Clear()
		return s.send(ServerMessage{Type: MsgState, Snapshot: s.snapshot()})

	case MsgSwipe:
		s.swipe.Begin(msg.StartX)
		switch s.swipe.End(msg.EndX) {
		case input.Left:
			frame.Set(core.ActionLeft)
		case input.Right:
			frame.Set(core.ActionRight)
		}

	case MsgMove:
		switch {
		case msg.Dir < 0:
			frame.Set(core.ActionLeft)
		case msg.Dir > 0:
			frame.Set(core.ActionRight)
		}

	default:
		s.logger.Debug("discarding unknown message", "type", msg.Type)
	}
	return nil
}

// readLoop decodes client messages until the connection fails.
func (s *session) readLoop(inbox chan<- ClientMessage, readErr chan<- error, done <-chan struct{}) {
	for {
		_, payload, err := s.conn.ReadMessage()
		if err != nil {
			readErr <- err
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			s.logger.Debug("discarding malformed message", "error", err)
			continue
		}

		select {
		case inbox <- msg:
		case <-done:
			return
		}
	}
}

func (s *session) snapshot() *laneshift.Snapshot {
	snap := s.game.Snapshot()
	return &snap
}

func (s *session) sendResult() error {
	res := s.game.LastResult()
	if res == nil {
		return nil
	}
	return s.send(ServerMessage{
		Type:   MsgOver,
		Result: &ResultView{Score: res.Score, Best: res.Best, NewBest: res.NewBest},
	})
}

// send writes a message with the write deadline applied.
func (s *session) send(msg ServerMessage) error {
	if err := s.conn.SetWriteDeadline(time.Now().Add(s.writeTimeout)); err != nil {
		return err
	}
	if err := s.conn.WriteJSON(msg); err != nil {
		s.logger.Debug("write failed", "error", err)
		return err
	}
	return nil
}
