package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel/trace"

	"github.com/younwookim/snake/internal/application/game"
	"github.com/younwookim/snake/internal/application/replay"
	"github.com/younwookim/snake/internal/application/session"
	"github.com/younwookim/snake/internal/infrastructure/config"
	"github.com/younwookim/snake/internal/infrastructure/terminal"
	"github.com/younwookim/snake/internal/telemetry"
)

func main() {
	configDir := flag.String("config", "", "Config directory (default: embedded configs)")
	uiFlag := flag.String("ui", "window", "Frontend: window or terminal")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Replay a recording headlessly and print the final state")
	seedFlag := flag.Int64("seed", 0, "Food placement seed (0: config seed, then current time)")
	flag.Parse()

	// Not fatal: OTEL_* may be set directly
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := loadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *replayFlag != "" {
		if err := runReplay(*replayFlag, cfg); err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		return
	}

	seed := *seedFlag
	if seed == 0 {
		seed = cfg.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sess, err := session.New(cfg.Board.Width, cfg.Board.Height, cfg.EngineSettings(), seed, cfg.FrameDuration())
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}

	sessionID := uuid.NewString()
	if *recordFlag != "" {
		sessionID = sess.StartRecording().SessionID()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	tracer, shutdown := setupTelemetry(ctx)
	defer shutdown()
	telemetry.Instrument(ctx, sess.Engine(), tracer, sessionID)

	log.Printf("Starting %s frontend (seed %d)", *uiFlag, sess.Seed())
	switch *uiFlag {
	case "window":
		err = runWindow(cfg, sess, *recordFlag)
	case "terminal":
		err = runTerminal(ctx, sess, *recordFlag)
	default:
		err = fmt.Errorf("unknown ui %q", *uiFlag)
	}
	if err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

func loadConfig(dir string) (*config.GameConfig, error) {
	if dir != "" {
		return config.NewLoader(dir).LoadGame()
	}

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs").LoadGame()
}

// setupTelemetry returns a tracer and a shutdown func that is always safe to call
func setupTelemetry(ctx context.Context) (trace.Tracer, func()) {
	if !telemetry.Enabled() {
		return telemetry.NoopTracer(), func() {}
	}

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		return telemetry.NoopTracer(), func() {}
	}

	return telemetry.Tracer("engine"), func() {
		// The signal context may already be cancelled here
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(ctx); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}
}

func runWindow(cfg *config.GameConfig, sess *session.Session, recordPath string) error {
	w, h := cfg.ScreenSize()
	g := game.New(sess, game.NewInputSystem(), w, h, recordPath)

	ebiten.SetWindowSize(w*cfg.Display.Scale, h*cfg.Display.Scale)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetTPS(cfg.Display.Framerate)

	return ebiten.RunGame(g)
}

func runTerminal(ctx context.Context, sess *session.Session, recordPath string) error {
	screen, err := terminal.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	cols, rows := screen.Size()
	if err := terminal.CheckSize(cols, rows, sess.Engine()); err != nil {
		screen.Close()
		return err
	}

	host := terminal.NewHost(sess, screen, screen, screen.Sync)
	err = host.Run(ctx)
	screen.Close()

	if sess.Recording() {
		if filename, serr := sess.StopRecording(recordPath); serr != nil {
			log.Printf("Failed to save recording: %v", serr)
		} else {
			log.Printf("Recording saved: %s (%d frames)", filename, sess.Recorder().FrameCount())
		}
	}

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func runReplay(path string, cfg *config.GameConfig) error {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return err
	}

	sess, err := session.Replay(*data, cfg.EngineSettings())
	if err != nil {
		return err
	}

	eng := sess.Engine()
	log.Printf("Replayed %s: %d frames, seed %d", data.SessionID, sess.Frames(), data.Seed)
	fmt.Printf("state=%s gameOver=%t length=%d head=%v food=%v\n",
		eng.State(), eng.GameOver(), eng.Snake().Len(), eng.Snake().Head(), eng.Food())
	return nil
}
