package protocol

import (
	"encoding/json"
	"testing"

	"github.com/kview-dev/kview/internal/errors"
	"github.com/kview-dev/kview/pkg/dom"
)

func TestEventMessage(t *testing.T) {
	in := &Event{
		NID:     42,
		Type:    "drop",
		ClientX: 10,
		ClientY: 20.5,
		Data:    []DataItem{{Format: "text/plain", Data: "kv_1"}, {Format: "text/x-id", Data: "7"}},
	}
	msg, err := EncodeMessage(FrameEvent, in)
	if err != nil {
		t.Fatalf("EncodeMessage() error = %v", err)
	}
	f, err := ParseMessage(msg)
	if err != nil {
		t.Fatalf("ParseMessage() error = %v", err)
	}
	out, err := DecodeEvent(f)
	if err != nil {
		t.Fatalf("DecodeEvent() error = %v", err)
	}
	if out.NID != 42 || out.Type != "drop" || out.ClientY != 20.5 {
		t.Errorf("DecodeEvent() = %+v", out)
	}

	ev := out.DOMEvent()
	if ev.Type != "drop" || ev.ClientX != 10 {
		t.Errorf("DOMEvent() = %+v", ev)
	}
	if ev.DataTransfer == nil {
		t.Fatal("DOMEvent() dropped the data transfer")
	}
	if got := ev.DataTransfer.GetData("text/plain"); got != "kv_1" {
		t.Errorf("GetData(text/plain) = %q, want kv_1", got)
	}
	if types := ev.DataTransfer.Types(); len(types) != 2 || types[1] != "text/x-id" {
		t.Errorf("Types() = %v", types)
	}
}

func TestEventRects(t *testing.T) {
	f, err := Encode(FrameEvent, Event{NID: 2, Type: "mousemove", Rects: []NodeRect{{NID: 7, X: 1, Width: 200, Height: 50}}})
	if err != nil {
		t.Fatal(err)
	}
	ev, err := DecodeEvent(f)
	if err != nil {
		t.Fatalf("DecodeEvent() error = %v", err)
	}
	if len(ev.Rects) != 1 || ev.Rects[0].NID != 7 {
		t.Fatalf("Rects = %+v", ev.Rects)
	}
	if got, want := ev.Rects[0].Rect(), (dom.Rect{X: 1, Width: 200, Height: 50}); got != want {
		t.Errorf("Rect() = %+v, want %+v", got, want)
	}
}

func TestEventWithoutDataHasNoTransfer(t *testing.T) {
	ev := (&Event{NID: 1, Type: "click"}).DOMEvent()
	if ev.DataTransfer != nil {
		t.Error("click event carries a data transfer")
	}
}

func TestDecodeEventErrors(t *testing.T) {
	tests := []struct {
		name  string
		frame *Frame
	}{
		{"wrong_type", NewFrame(FramePong, []byte(`{"nid":1,"type":"click"}`))},
		{"bad_json", NewFrame(FrameEvent, []byte(`{"nid":`))},
		{"no_nid", NewFrame(FrameEvent, []byte(`{"type":"click"}`))},
		{"no_type", NewFrame(FrameEvent, []byte(`{"nid":3}`))},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeEvent(tc.frame)
			if !errors.HasCode(err, "E160") {
				t.Errorf("DecodeEvent() error = %v, want E160", err)
			}
		})
	}
}

func TestParseMessageMalformed(t *testing.T) {
	_, err := ParseMessage([]byte{0x02})
	if !errors.HasCode(err, "E160") {
		t.Errorf("ParseMessage() error = %v, want E160", err)
	}
}

func TestMutationsPayload(t *testing.T) {
	batch := Mutations{
		Seq: 3,
		Mutations: []dom.Mutation{
			{Op: dom.OpSetAttr, Target: 5, Name: "class", Value: "active"},
			{Op: dom.OpRemove, Target: 9, Parent: 4},
		},
	}
	f, err := Encode(FrameMutations, batch)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(f.Payload, &raw); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	if raw["seq"] != float64(3) {
		t.Errorf("seq = %v, want 3", raw["seq"])
	}

	got, err := Decode[Mutations](f, FrameMutations)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(got.Mutations) != 2 || got.Mutations[0].Value != "active" || got.Mutations[1].Parent != 4 {
		t.Errorf("Decode() = %+v", got)
	}
}
