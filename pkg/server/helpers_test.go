package server

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/kview-dev/kview/pkg/core"
	"github.com/kview-dev/kview/pkg/dom"
	"github.com/kview-dev/kview/pkg/engine"
	"github.com/kview-dev/kview/pkg/protocol"
	"github.com/kview-dev/kview/pkg/tag"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *Config {
	cfg := DefaultConfig()
	cfg.Logger = discardLogger()
	cfg.PingInterval = time.Hour
	return cfg
}

// counterApp mounts one button whose content counts its clicks. A click on
// a button reading "boom" panics.
func counterApp(clicks *atomic.Int32) App {
	return func(s *core.Session) error {
		s.Document().AppendMount("main")
		btn := tag.New("button", "0", core.WithClassName("counter"))
		btn.SetEventListener("click", func(*dom.Event) {
			n := clicks.Add(1)
			btn.SetContent(strconv.Itoa(int(n)))
		})
		boom := tag.New("button", "boom", core.WithClassName("boom"))
		boom.SetEventListener("click", func(*dom.Event) { panic("boom") })
		core.NewRoot(s, "main", core.WithInit(func(r *core.Root) {
			r.Add(btn)
			r.Add(boom)
		}))
		return nil
	}
}

type testServer struct {
	t   *testing.T
	srv *Server
	ts  *httptest.Server
}

func newTestServer(t *testing.T, app App, cfg *Config) *testServer {
	t.Helper()
	srv := New(app, cfg)
	ts := httptest.NewServer(srv)
	t.Cleanup(func() {
		srv.Sessions().Shutdown()
		ts.Close()
	})
	return &testServer{t: t, srv: srv, ts: ts}
}

// open loads the page and returns the id of the session it created.
func (s *testServer) open() string {
	s.t.Helper()
	before := map[string]bool{}
	s.srv.Sessions().ForEach(func(sess *Session) bool {
		before[sess.ID] = true
		return true
	})
	resp, err := http.Get(s.ts.URL + "/")
	if err != nil {
		s.t.Fatalf("GET / error = %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		s.t.Fatalf("GET / status = %d", resp.StatusCode)
	}
	var id string
	s.srv.Sessions().ForEach(func(sess *Session) bool {
		if !before[sess.ID] {
			id = sess.ID
			return false
		}
		return true
	})
	if id == "" {
		s.t.Fatal("page load created no session")
	}
	return id
}

func (s *testServer) wsURL(id string) string {
	return "ws" + strings.TrimPrefix(s.ts.URL, "http") + s.srv.Config().WSPath + "?session=" + id
}

func (s *testServer) dial(id string) *websocket.Conn {
	s.t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(s.wsURL(id), nil)
	if err != nil {
		s.t.Fatalf("Dial() error = %v", err)
	}
	s.t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) *protocol.Frame {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage() error = %v", err)
	}
	f, err := protocol.ParseMessage(msg)
	if err != nil {
		t.Fatalf("ParseMessage() error = %v", err)
	}
	return f
}

func sendFrame(t *testing.T, conn *websocket.Conn, ft protocol.FrameType, v any) {
	t.Helper()
	msg, err := protocol.EncodeMessage(ft, v)
	if err != nil {
		t.Fatal(err)
	}
	if err := conn.WriteMessage(websocket.BinaryMessage, msg); err != nil {
		t.Fatalf("WriteMessage() error = %v", err)
	}
}

func readInit(t *testing.T, conn *websocket.Conn) *protocol.Init {
	t.Helper()
	f := readFrame(t, conn)
	init, err := protocol.Decode[protocol.Init](f, protocol.FrameInit)
	if err != nil {
		t.Fatalf("first frame: %v", err)
	}
	return init
}

var classNIDPattern = regexp.MustCompile(`class="([^"]+)" data-kv-nid="(\d+)"`)

// nidByClass finds the node id of the element with the given class in
// serialized HTML.
func nidByClass(t *testing.T, html, class string) uint64 {
	t.Helper()
	for _, m := range classNIDPattern.FindAllStringSubmatch(html, -1) {
		if containsField(m[1], class) {
			nid, _ := strconv.ParseUint(m[2], 10, 64)
			return nid
		}
	}
	t.Fatalf("no element with class %q in %s", class, html)
	return 0
}

func containsField(list, want string) bool {
	for _, f := range strings.Fields(list) {
		if f == want {
			return true
		}
	}
	return false
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met before deadline")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

// recordingObserver records server measurements.
type recordingObserver struct {
	mu       sync.Mutex
	opened   int
	closed   int
	events   []string
	failures []error
	frames   int
	wsErrors []string
}

func (o *recordingObserver) ObservePatch(string, time.Duration, engine.Stats) {}
func (o *recordingObserver) ObserveBatch(string, int)                         {}

func (o *recordingObserver) SessionOpened() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.opened++
}

func (o *recordingObserver) SessionClosed() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.closed++
}

func (o *recordingObserver) ObserveEvent(eventType string, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, eventType)
	if err != nil {
		o.failures = append(o.failures, err)
	}
}

func (o *recordingObserver) FramesSent(n int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.frames += n
}

func (o *recordingObserver) WebSocketError(kind string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.wsErrors = append(o.wsErrors, kind)
}

type observerSnapshot struct {
	opened   int
	closed   int
	events   []string
	failures []error
	frames   int
	wsErrors []string
}

func (o *recordingObserver) snapshot() observerSnapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	return observerSnapshot{
		opened:   o.opened,
		closed:   o.closed,
		events:   append([]string(nil), o.events...),
		failures: append([]error(nil), o.failures...),
		frames:   o.frames,
		wsErrors: append([]string(nil), o.wsErrors...),
	}
}
