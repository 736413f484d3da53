package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/urfave/cli/v3"

	"snake-classic/config"
	"snake-classic/game"
	"snake-classic/game/session"
	"snake-classic/sound"
	"snake-classic/stats"
	"snake-classic/ui"
	"snake-classic/ui/term"
)

// cues is a session.Cues that also owns an audio device.
type cues interface {
	session.Cues
	Close()
}

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Printf("Warning: %v", err)
	}

	cmd := &cli.Command{
		Name:   "snake",
		Usage:  "classic snake on a grid",
		Flags:  config.Flags(),
		Action: runGUI,
		Commands: []*cli.Command{
			{
				Name:   "gui",
				Usage:  "play in a window (default)",
				Action: runGUI,
			},
			{
				Name:   "term",
				Usage:  "play in the terminal",
				Action: runTerm,
			},
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

// setup reads the configuration and builds a session around a fresh game.
func setup(cmd *cli.Command, logger *log.Logger) (*session.Session, cues, config.Config, error) {
	cfg, err := config.FromCommand(cmd)
	if err != nil {
		return nil, nil, cfg, err
	}

	if cfg.Debug {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	} else {
		log.SetFlags(log.LstdFlags)
	}
	logger.SetFlags(log.Flags())

	var opts []game.Option
	if cfg.Seed != 0 {
		opts = append(opts, game.WithSeed(cfg.Seed))
	}
	g, err := game.NewGame(cfg.Width, cfg.Height, opts...)
	if err != nil {
		return nil, nil, cfg, fmt.Errorf("new game: %w", err)
	}

	var c cues = sound.Silent{}
	if !cfg.Mute {
		if sp, err := sound.NewSpeaker(); err != nil {
			logger.Printf("Sound disabled: %v", err)
		} else {
			c = sp
		}
	}

	sess := session.New(g, stats.NewGameStats(),
		session.WithCues(c),
		session.WithLogger(logger),
	)
	return sess, c, cfg, nil
}

func runGUI(ctx context.Context, cmd *cli.Command) error {
	sess, c, cfg, err := setup(cmd, log.Default())
	if err != nil {
		return err
	}
	defer c.Close()

	// 20px cells plus padding and the HUD below the grid
	rl.InitWindow(int32(cfg.Width*20+20), int32(cfg.Height*20+70), "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)
	rl.SetExitKey(0)

	renderer := ui.NewRenderer()
	lastUpdate := time.Now()

	for !rl.WindowShouldClose() && ctx.Err() == nil {
		quit := false
		for _, command := range ui.PollCommands() {
			if sess.Handle(command) {
				quit = true
				break
			}
		}
		if quit {
			break
		}

		// Update game state at fixed interval
		if time.Since(lastUpdate) >= cfg.Tick {
			sess.Tick()
			lastUpdate = time.Now()
		}

		renderer.Draw(sess.Frame())
	}

	logSummary(sess.Stats())
	return nil
}

func runTerm(ctx context.Context, cmd *cli.Command) error {
	// Anything printed would corrupt the screen, so logs only go out in debug.
	logger := log.New(io.Discard, "", 0)
	if cmd.Bool("debug") {
		logger = log.New(os.Stderr, "", 0)
	}

	sess, c, cfg, err := setup(cmd, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	err = term.Run(ctx, sess, screen, cfg.Tick)
	screen.Fini()
	if err != nil {
		return err
	}

	logSummary(sess.Stats())
	return nil
}

func logSummary(st *stats.GameStats) {
	if st.GetGamesPlayed() == 0 {
		return
	}
	log.Printf("Games: %d  Best: %d  Average: %.1f  Median: %.1f  Avg duration: %.1fs",
		st.GetGamesPlayed(), st.GetMaxScore(), st.GetAverageScore(), st.GetMedianScore(), st.GetAverageDuration())
}
