package protocol

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestFrameEncodeDecode(t *testing.T) {
	tests := []struct {
		name    string
		frame   Frame
		wantLen int
	}{
		{
			name:    "empty_payload",
			frame:   Frame{Type: FramePing, Payload: []byte{}},
			wantLen: FrameHeaderSize,
		},
		{
			name:    "mutations_final",
			frame:   Frame{Type: FrameMutations, Flags: FlagFinal, Payload: []byte(`{"seq":1}`)},
			wantLen: FrameHeaderSize + 9,
		},
		{
			name:    "init_resync",
			frame:   Frame{Type: FrameInit, Flags: FlagFinal | FlagResync, Payload: []byte("test")},
			wantLen: FrameHeaderSize + 4,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			encoded := tc.frame.Encode()
			if len(encoded) != tc.wantLen {
				t.Errorf("Encode() length = %d, want %d", len(encoded), tc.wantLen)
			}
			if FrameType(encoded[0]) != tc.frame.Type {
				t.Errorf("Encoded type = %v, want %v", FrameType(encoded[0]), tc.frame.Type)
			}

			decoded, err := DecodeFrame(encoded)
			if err != nil {
				t.Fatalf("DecodeFrame() error = %v", err)
			}
			if decoded.Type != tc.frame.Type || decoded.Flags != tc.frame.Flags {
				t.Errorf("Decoded header = %v/%v, want %v/%v", decoded.Type, decoded.Flags, tc.frame.Type, tc.frame.Flags)
			}
			if !bytes.Equal(decoded.Payload, tc.frame.Payload) {
				t.Errorf("Decoded payload = %q, want %q", decoded.Payload, tc.frame.Payload)
			}
		})
	}
}

func TestFrameLengthIsBigEndian(t *testing.T) {
	f := NewFrame(FrameEvent, make([]byte, 0x010203))
	encoded := f.Encode()
	want := []byte{byte(FrameEvent), 0, 0x00, 0x01, 0x02, 0x03}
	if !bytes.Equal(encoded[:FrameHeaderSize], want) {
		t.Errorf("header = %x, want %x", encoded[:FrameHeaderSize], want)
	}
}

func TestDecodeFrameErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"short_header", []byte{0x01, 0x00, 0x00}, io.ErrUnexpectedEOF},
		{"short_payload", []byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x05, 'a'}, io.ErrUnexpectedEOF},
		{"unknown_type", []byte{0x7f, 0x00, 0x00, 0x00, 0x00, 0x00}, ErrInvalidFrameType},
		{"too_large", []byte{0x01, 0x00, 0x7f, 0xff, 0xff, 0xff}, ErrFrameTooLarge},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeFrame(tc.data)
			if !errors.Is(err, tc.want) {
				t.Errorf("DecodeFrame() error = %v, want %v", err, tc.want)
			}
		})
	}

	if _, err := DecodeFrame(append(NewFrame(FramePong, nil).Encode(), 0x00)); err == nil {
		t.Error("DecodeFrame() accepted trailing bytes")
	}
}

func TestReadWriteFrame(t *testing.T) {
	var buf bytes.Buffer
	frames := []*Frame{
		NewFrame(FrameInit, []byte(`{"html":""}`)),
		NewFrame(FramePing, nil),
		{Type: FrameMutations, Flags: FlagFinal, Payload: []byte(`{}`)},
	}
	for _, f := range frames {
		if err := WriteFrame(&buf, f); err != nil {
			t.Fatalf("WriteFrame() error = %v", err)
		}
	}
	for i, want := range frames {
		got, err := ReadFrame(&buf)
		if err != nil {
			t.Fatalf("ReadFrame(%d) error = %v", i, err)
		}
		if got.Type != want.Type || got.Flags != want.Flags || !bytes.Equal(got.Payload, want.Payload) {
			t.Errorf("ReadFrame(%d) = %+v, want %+v", i, got, want)
		}
	}
	if _, err := ReadFrame(&buf); err != io.EOF {
		t.Errorf("ReadFrame() at end error = %v, want EOF", err)
	}
}

func TestWriteFrameTooLarge(t *testing.T) {
	err := WriteFrame(io.Discard, NewFrame(FrameMutations, make([]byte, MaxPayloadSize+1)))
	if err != ErrFrameTooLarge {
		t.Errorf("WriteFrame() error = %v, want ErrFrameTooLarge", err)
	}
}

func TestFrameTypeString(t *testing.T) {
	tests := map[FrameType]string{
		FrameInit:      "Init",
		FrameMutations: "Mutations",
		FrameEvent:     "Event",
		FramePing:      "Ping",
		FramePong:      "Pong",
		FrameError:     "Error",
		FrameType(42):  "Unknown",
	}
	for ft, want := range tests {
		if got := ft.String(); got != want {
			t.Errorf("FrameType(%d).String() = %q, want %q", ft, got, want)
		}
	}
}

func TestFrameFlagsHas(t *testing.T) {
	f := FlagFinal | FlagResync
	if !f.Has(FlagFinal) || !f.Has(FlagResync) {
		t.Error("Has() missed a set flag")
	}
	if FlagFinal.Has(FlagResync) {
		t.Error("Has() reported an unset flag")
	}
}
