package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/kview-dev/kview/internal/errors"
	"github.com/kview-dev/kview/pkg/dom"
)

// Init carries the connected body markup, with node ids, and the session id
// the client must present when it reconnects.
type Init struct {
	Session string `json:"session"`
	Title   string `json:"title,omitempty"`
	HTML    string `json:"html"`
}

// Mutations is one render batch of document changes.
type Mutations struct {
	Seq       uint64         `json:"seq"`
	Mutations []dom.Mutation `json:"mutations"`
}

// DataItem is one drag and drop payload entry.
type DataItem struct {
	Format string `json:"format"`
	Data   string `json:"data"`
}

// NodeRect is the layout rectangle of a node as measured by the client.
type NodeRect struct {
	NID    uint64  `json:"nid"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Rect converts r into a dom.Rect.
func (r NodeRect) Rect() dom.Rect {
	return dom.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// Event is a DOM event observed by the client on the node with id NID.
// Rects carries fresh measurements of the children of measured ancestors.
type Event struct {
	NID     uint64     `json:"nid"`
	Type    string     `json:"type"`
	ClientX float64    `json:"clientX,omitempty"`
	ClientY float64    `json:"clientY,omitempty"`
	Key     string     `json:"key,omitempty"`
	Value   string     `json:"value,omitempty"`
	Data    []DataItem `json:"data,omitempty"`
	Rects   []NodeRect `json:"rects,omitempty"`
}

// DOMEvent converts e into an event ready for dispatch on the server
// document.
func (e *Event) DOMEvent() *dom.Event {
	ev := dom.NewEvent(e.Type)
	ev.ClientX = e.ClientX
	ev.ClientY = e.ClientY
	ev.Key = e.Key
	ev.Value = e.Value
	if len(e.Data) > 0 {
		ev.DataTransfer = dom.NewDataTransfer()
		for _, item := range e.Data {
			ev.DataTransfer.SetData(item.Format, item.Data)
		}
	}
	return ev
}

// Ping and Pong carry an opaque nonce echoed by the peer.
type Ping struct {
	Nonce int64 `json:"nonce"`
}

type Pong struct {
	Nonce int64 `json:"nonce"`
}

// Error reports a fatal session error to the client.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Encode marshals v as the payload of a frame of type ft.
func Encode(ft FrameType, v any) (*Frame, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("protocol: encode %s: %w", ft, err)
	}
	if len(payload) > MaxPayloadSize {
		return nil, ErrFrameTooLarge
	}
	return NewFrame(ft, payload), nil
}

// EncodeMessage encodes v into a complete websocket message.
func EncodeMessage(ft FrameType, v any) ([]byte, error) {
	f, err := Encode(ft, v)
	if err != nil {
		return nil, err
	}
	return f.Encode(), nil
}

// ParseMessage decodes a websocket message into a frame. Malformed input is
// reported as E160.
func ParseMessage(data []byte) (*Frame, error) {
	f, err := DecodeFrame(data)
	if err != nil {
		return nil, errors.New("E160").Wrap(err)
	}
	return f, nil
}

// Decode unmarshals the payload of f into a T, checking that f has the
// expected type. Failures are reported as E160.
func Decode[T any](f *Frame, want FrameType) (*T, error) {
	if f.Type != want {
		return nil, errors.New("E160").WithDetailf("expected %s frame, got %s", want, f.Type)
	}
	var v T
	if err := json.Unmarshal(f.Payload, &v); err != nil {
		return nil, errors.New("E160").WithDetailf("%s payload", f.Type).Wrap(err)
	}
	return &v, nil
}

// DecodeEvent decodes an event frame and validates its required fields.
func DecodeEvent(f *Frame) (*Event, error) {
	ev, err := Decode[Event](f, FrameEvent)
	if err != nil {
		return nil, err
	}
	if ev.NID == 0 {
		return nil, errors.New("E160").WithDetail("event without target node id")
	}
	if ev.Type == "" {
		return nil, errors.New("E160").WithDetail("event without type")
	}
	return ev, nil
}
