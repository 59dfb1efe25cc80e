package telemetry

import (
	"context"
	"log"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/younwookim/snake/internal/application/engine"
	"github.com/younwookim/snake/internal/domain/entity"
)

// Instrument hooks eng so that every start, eat, pause and game over becomes a
// span on tracer and notable events are logged. Existing hooks still run.
func Instrument(ctx context.Context, eng *engine.Engine, tracer trace.Tracer, sessionID string) {
	session := attribute.String("session.id", sessionID)

	event := func(name string, attrs ...attribute.KeyValue) {
		_, span := tracer.Start(ctx, name, trace.WithAttributes(append(attrs, session)...))
		span.End()
	}

	prevStart := eng.OnStart
	eng.OnStart = func(restarted bool) {
		if prevStart != nil {
			prevStart(restarted)
		}
		event("snake.start", attribute.Bool("snake.restarted", restarted))
	}

	prevEat := eng.OnEat
	eng.OnEat = func(food entity.Point, length int) {
		if prevEat != nil {
			prevEat(food, length)
		}
		event("snake.eat",
			attribute.Int("food.x", food.X),
			attribute.Int("food.y", food.Y),
			attribute.Int("snake.length", length),
		)
	}

	prevPause := eng.OnPause
	eng.OnPause = func(paused bool) {
		if prevPause != nil {
			prevPause(paused)
		}
		event("snake.pause", attribute.Bool("snake.paused", paused))
	}

	prevOver := eng.OnGameOver
	eng.OnGameOver = func(head entity.Point, length int) {
		if prevOver != nil {
			prevOver(head, length)
		}
		log.Printf("Game over at (%d,%d), length %d", head.X, head.Y, length)
		event("snake.game_over",
			attribute.Int("head.x", head.X),
			attribute.Int("head.y", head.Y),
			attribute.Int("snake.length", length),
		)
	}
}
