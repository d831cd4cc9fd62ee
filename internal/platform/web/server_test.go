package web

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/vovakirdan/seed-of-life/internal/physics"
	"github.com/vovakirdan/seed-of-life/internal/sim"
)

func startServer(t *testing.T, cfg Config) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(NewServer(cfg).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func dial(t *testing.T, ts *httptest.Server) (*websocket.Conn, context.Context) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatalf("Dial() failed: %v", err)
	}
	t.Cleanup(func() { conn.CloseNow() })
	return conn, ctx
}

func send(t *testing.T, ctx context.Context, conn *websocket.Conn, text string) {
	t.Helper()
	if err := conn.Write(ctx, websocket.MessageText, []byte(text)); err != nil {
		t.Fatalf("Write(%q) failed: %v", text, err)
	}
}

// waitFor reads frames until match accepts one or the context expires.
func waitFor(t *testing.T, ctx context.Context, conn *websocket.Conn, match func(Frame) bool) Frame {
	t.Helper()
	for {
		var f Frame
		if err := wsjson.Read(ctx, conn, &f); err != nil {
			t.Fatalf("Read() failed while waiting: %v", err)
		}
		if match(f) {
			return f
		}
	}
}

func isEvent(name string) func(Frame) bool {
	return func(f Frame) bool {
		return f.Type == FrameEvent && f.Event != nil && f.Event.Name == name
	}
}

func TestHealthz(t *testing.T) {
	ts := startServer(t, DefaultConfig())

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || strings.TrimSpace(string(body)) != "ok" {
		t.Errorf("expected 200 ok, got %d %q", resp.StatusCode, body)
	}
}

func TestSessionStartsOnTitle(t *testing.T) {
	ts := startServer(t, DefaultConfig())
	conn, ctx := dial(t, ts)

	var f Frame
	if err := wsjson.Read(ctx, conn, &f); err != nil {
		t.Fatal(err)
	}
	if f.Type != FrameSnapshot || f.Snapshot == nil {
		t.Fatalf("expected a snapshot first, got %+v", f)
	}
	if f.Snapshot.Phase != "start" {
		t.Errorf("expected start phase, got %q", f.Snapshot.Phase)
	}
	if f.Snapshot.Origin.Radius != sim.DefaultParams().Field.Origin.Radius {
		t.Errorf("unexpected origin %+v", f.Snapshot.Origin)
	}
}

func TestThrustStartsThenFires(t *testing.T) {
	ts := startServer(t, DefaultConfig())
	conn, ctx := dial(t, ts)

	send(t, ctx, conn, `{"type":"thrust"}`)
	waitFor(t, ctx, conn, isEvent("restarted"))
	waitFor(t, ctx, conn, func(f Frame) bool {
		return f.Type == FrameSnapshot && f.Snapshot.Phase == "play"
	})

	send(t, ctx, conn, `{"type":"thrust"}`)
	f := waitFor(t, ctx, conn, isEvent("thrust_fired"))
	if f.Event.Pos == nil || f.Event.Recoil == nil {
		t.Errorf("expected position and recoil, got %+v", f.Event)
	}

	f = waitFor(t, ctx, conn, func(f Frame) bool { return f.Type == FrameSnapshot })
	if f.Snapshot.Thrusts != 1 {
		t.Errorf("expected 1 thrust, got %d", f.Snapshot.Thrusts)
	}
}

func TestMalformedCommandsIgnored(t *testing.T) {
	ts := startServer(t, DefaultConfig())
	conn, ctx := dial(t, ts)

	send(t, ctx, conn, `not json`)
	send(t, ctx, conn, `{"type":"jump"}`)
	send(t, ctx, conn, `{"type":"restart"}`)

	waitFor(t, ctx, conn, isEvent("restarted"))
}

func TestSessionReportsWin(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.Field.Destination.Pos = physics.Vec2{X: 126, Y: 70}
	ts := startServer(t, cfg)
	conn, ctx := dial(t, ts)

	send(t, ctx, conn, `{"type":"restart"}`)
	waitFor(t, ctx, conn, isEvent("destination_reached"))

	f := waitFor(t, ctx, conn, func(f Frame) bool { return f.Type == FrameSnapshot })
	if f.Snapshot.Phase != "win" || f.Snapshot.Score <= 0 {
		t.Errorf("expected a scored win, got %+v", f.Snapshot)
	}
}

func TestSessionMatchesReplay(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.Field.Destination.Pos = physics.Vec2{X: 126, Y: 70}
	ts := startServer(t, cfg)
	conn, ctx := dial(t, ts)

	send(t, ctx, conn, `{"type":"restart"}`)
	waitFor(t, ctx, conn, isEvent("destination_reached"))
	f := waitFor(t, ctx, conn, func(f Frame) bool { return f.Type == FrameSnapshot })

	rec := sim.Recording{TickMs: 1000.0 / float64(cfg.TickRate)}
	want, ok := sim.Replay(cfg.Params, rec, 10000)
	if !ok {
		t.Fatal("expected the replay to finish")
	}
	if f.Snapshot.ElapsedMs != want.ElapsedMs || f.Snapshot.Score != want.Score {
		t.Errorf("expected elapsed %v score %d, got elapsed %v score %d",
			want.ElapsedMs, want.Score, f.Snapshot.ElapsedMs, f.Snapshot.Score)
	}
}
