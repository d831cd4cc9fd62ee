package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/seed-of-life/internal/sim"
)

const writeTimeout = 5 * time.Second

// errClientGone ends a session when the client closes the connection cleanly.
var errClientGone = errors.New("web: client closed connection")

// session plays one game over one connection. Only ownerLoop touches loop.
type session struct {
	conn     *websocket.Conn
	loop     *sim.GameLoop
	tickMs   float64
	interval time.Duration
	cmds     chan string
	pending  []sim.Event
	logger   *log.Logger
}

func newSession(conn *websocket.Conn, params sim.Params, tickRate int, logger *log.Logger) *session {
	if tickRate <= 0 {
		tickRate = 60
	}
	s := &session{
		conn:     conn,
		loop:     sim.New(params),
		tickMs:   1000.0 / float64(tickRate),
		interval: time.Second / time.Duration(tickRate),
		cmds:     make(chan string, 16),
		logger:   logger,
	}
	s.loop.Subscribe(s.onEvent)
	return s
}

// run blocks until the client leaves or either loop fails.
func (s *session) run(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return s.ownerLoop(ctx)
	})
	eg.Go(func() error {
		return s.readLoop(ctx)
	})

	err := eg.Wait()
	if errors.Is(err, errClientGone) {
		return nil
	}
	return err
}

func (s *session) onEvent(ev sim.Event) {
	s.pending = append(s.pending, ev)

	switch ev.(type) {
	case sim.DestinationReached, sim.Crashed, sim.LostToVoid:
		if res, ok := s.loop.Result(); ok {
			s.logger.Info("run ended",
				"outcome", res.Outcome,
				"elapsed_ms", res.ElapsedMs,
				"thrusts", res.Thrusts,
				"score", res.Score,
			)
		}
	}
}

func (s *session) ownerLoop(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	if err := s.write(ctx, snapshotFrame(s.loop)); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case cmd := <-s.cmds:
			s.apply(cmd)
			if err := s.flushEvents(ctx); err != nil {
				return err
			}

		case <-ticker.C:
			// Fixed step rather than wall time so a session replays exactly.
			s.loop.Tick(s.tickMs)
			if err := s.flushEvents(ctx); err != nil {
				return err
			}
			if err := s.write(ctx, snapshotFrame(s.loop)); err != nil {
				return err
			}
		}
	}
}

// apply mirrors the terminal controls: thrust starts a run from the title
// screen, restart works in every phase.
func (s *session) apply(cmd string) {
	switch cmd {
	case CommandThrust:
		if s.loop.Phase() == sim.PhaseStart {
			s.loop.Restart()
			return
		}
		s.loop.Thrust()
	case CommandRestart:
		s.loop.Restart()
	}
}

func (s *session) flushEvents(ctx context.Context) error {
	for _, ev := range s.pending {
		if err := s.write(ctx, eventFrame(ev)); err != nil {
			return err
		}
	}
	s.pending = s.pending[:0]
	return nil
}

func (s *session) write(ctx context.Context, f Frame) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	if err := wsjson.Write(ctx, s.conn, f); err != nil {
		return fmt.Errorf("web: write %s: %w", f.Type, err)
	}
	return nil
}

func (s *session) readLoop(ctx context.Context) error {
	for {
		_, data, err := s.conn.Read(ctx)
		if err != nil {
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				return errClientGone
			}
			return fmt.Errorf("web: read: %w", err)
		}

		var cmd Command
		if err := json.Unmarshal(data, &cmd); err != nil {
			s.logger.Warn("ignoring malformed command", "error", err)
			continue
		}
		if cmd.Type != CommandThrust && cmd.Type != CommandRestart {
			s.logger.Warn("ignoring unknown command", "type", cmd.Type)
			continue
		}

		select {
		case s.cmds <- cmd.Type:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
