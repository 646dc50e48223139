package server

import (
	"time"

	"github.com/gorilla/websocket"

	"github.com/kview-dev/kview/pkg/protocol"
)

// readLoop reads frames from conn until it fails, posting events onto the
// session loop. It detaches conn on return.
func (s *Session) readLoop(conn *websocket.Conn) {
	defer s.detach(conn)

	for {
		conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))

		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("read error", "error", err)
				s.observer.WebSocketError("read")
			}
			return
		}

		frame, err := protocol.ParseMessage(msg)
		if err != nil {
			s.logger.Warn("frame decode error", "error", err)
			s.observer.WebSocketError("decode")
			continue
		}

		switch frame.Type {
		case protocol.FrameEvent:
			s.handleEventFrame(frame)

		case protocol.FramePing:
			s.handlePingFrame(frame)

		case protocol.FramePong:
			s.logger.Debug("received pong")

		default:
			s.logger.Warn("unexpected frame type", "type", frame.Type)
		}
	}
}

// handleEventFrame decodes an event and queues it on the loop.
func (s *Session) handleEventFrame(frame *protocol.Frame) {
	ev, err := protocol.DecodeEvent(frame)
	if err != nil {
		s.logger.Warn("event decode error", "error", err)
		s.observer.WebSocketError("decode")
		return
	}
	if !s.Dispatch(func() { s.handleEvent(ev) }) {
		s.logger.Warn("event dropped", "nid", ev.NID, "type", ev.Type)
		s.sendError("overloaded", "Event queue full")
	}
}

// handlePingFrame answers a client ping.
func (s *Session) handlePingFrame(frame *protocol.Frame) {
	ping, err := protocol.Decode[protocol.Ping](frame, protocol.FramePing)
	if err != nil {
		s.logger.Warn("ping decode error", "error", err)
		return
	}
	f, err := protocol.Encode(protocol.FramePong, protocol.Pong{Nonce: ping.Nonce})
	if err != nil {
		return
	}
	if err := s.write(f); err != nil {
		s.logger.Debug("pong error", "error", err)
	}
}

// pingLoop sends heartbeat pings until the connection or the session ends.
func (s *Session) pingLoop(connDone <-chan struct{}) {
	ticker := time.NewTicker(s.config.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			f, err := protocol.Encode(protocol.FramePing, protocol.Ping{Nonce: time.Now().UnixMilli()})
			if err != nil {
				return
			}
			if err := s.write(f); err != nil {
				s.logger.Debug("ping error", "error", err)
				return
			}

		case <-connDone:
			return

		case <-s.done:
			return
		}
	}
}
