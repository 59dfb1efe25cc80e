package terminal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/younwookim/snake/internal/application/session"
)

// EventSource yields terminal events. PollEvent returns nil once the source is closed.
type EventSource interface {
	PollEvent() tcell.Event
}

// Host runs a session in the terminal.
//
// Events are polled on their own goroutine and handed over on a channel; the
// engine is only touched from the goroutine running Run.
type Host struct {
	session  *session.Session
	events   EventSource
	renderer *Renderer
	decoder  *InputDecoder
	frame    time.Duration
	onResize func()
}

// NewHost creates a terminal host. A nil onResize is allowed.
func NewHost(sess *session.Session, events EventSource, canvas Canvas, onResize func()) *Host {
	return &Host{
		session:  sess,
		events:   events,
		renderer: NewRenderer(canvas),
		decoder:  NewInputDecoder(sess.Engine().CellSize()),
		frame:    sess.FrameDuration(),
		onResize: onResize,
	}
}

// Run steps the session once per frame until the player quits, the event
// source closes or ctx is cancelled.
func (h *Host) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 64)
	go h.poll(ctx, events)

	ticker := time.NewTicker(h.frame)
	defer ticker.Stop()

	h.renderer.Render(h.session.Engine())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if _, resized := ev.(*tcell.EventResize); resized && h.onResize != nil {
				h.onResize()
			}
			if h.decoder.Event(ev) {
				return nil
			}
		case <-ticker.C:
			h.session.Step(h.decoder.Take())
			h.renderer.Render(h.session.Engine())
		}
	}
}

func (h *Host) poll(ctx context.Context, out chan<- tcell.Event) {
	defer close(out)
	for {
		ev := h.events.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}
