// Package main is the entry point for the delvegen floor explorer.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/delvegen/internal/dungeon"
	"github.com/samdwyer/delvegen/internal/explore"
	"github.com/samdwyer/delvegen/internal/gamedata"
	"github.com/samdwyer/delvegen/internal/layout"
	"github.com/samdwyer/delvegen/internal/telemetry"
	"github.com/samdwyer/delvegen/internal/ui"
)

func main() {
	seed := flag.Int64("seed", 0, "generation seed (0 picks one from the clock)")
	dump := flag.Bool("dump", false, "print every floor of the dungeon to stdout and exit")
	flag.Parse()

	log := setupLogger()

	// Load .env for local development; env vars may also be set directly.
	if err := godotenv.Load(); err != nil {
		log.WithError(err).Debug(".env file not loaded")
	}
	setupOTelEnv()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.WithError(err).Warn("telemetry setup failed, running without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.WithError(err).Error("telemetry shutdown failed")
			}
		}()
	}

	theme, err := gamedata.LoadDungeonConfig()
	if err != nil {
		log.WithError(err).Fatal("invalid dungeon theme")
	}
	matcher := layout.NewMatcher()
	if err := matcher.Build(ctx, gamedata.MustLoadTemplates()); err != nil {
		log.WithError(err).Fatal("template index build failed")
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.WithField("seed", *seed).Info("starting run")

	cfg := theme.ToConfig()
	if *dump {
		dumpDungeon(ctx, cfg, *seed)
		return
	}

	sess := explore.NewSession(cfg, matcher, *seed, log)
	sess.Start(ctx)
	if err := runInteractive(ctx, sess, theme); err != nil {
		log.WithError(err).Fatal("explorer failed")
	}
}

// setupLogger configures logrus from LOG_LEVEL and LOG_FORMAT.
func setupLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log
}

// setupOTelEnv configures OTEL exporter variables from our custom env vars.
func setupOTelEnv() {
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	apiKey := os.Getenv("HONEYCOMB_DELVEGEN_API_KEY")
	dataset := os.Getenv("HONEYCOMB_DELVEGEN_DATASET")
	if dataset == "" {
		dataset = "delvegen"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}

// dumpDungeon prints the full dungeon, floor by floor, without the UI.
func dumpDungeon(ctx context.Context, cfg dungeon.Config, seed int64) {
	gen := dungeon.NewGenerator(cfg, rand.New(rand.NewSource(seed)))
	for number := 1; number <= cfg.FloorCount; number++ {
		floor := gen.Generate(ctx, number)
		fmt.Printf("floor %d (%d rooms)\n", number, floor.RoomCount())
		for _, line := range asciiFloor(floor) {
			fmt.Println(line)
		}
		fmt.Println()
	}
}

// asciiFloor renders the floor graph as text: glyphs on a sparse lattice
// with '-' and '|' ties between connected rooms.
func asciiFloor(floor *dungeon.Floor) []string {
	width := (floor.Width-1)*2 + 1
	height := (floor.Height-1)*2 + 1
	grid := make([][]rune, height)
	for y := range grid {
		grid[y] = make([]rune, width)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	for _, room := range floor.Rooms {
		gx := (room.X - floor.MinX) * 2
		gy := (room.Y - floor.MinY) * 2
		grid[gy][gx] = room.Type.Glyph()
		if room.Connected(dungeon.East) {
			grid[gy][gx+1] = '-'
		}
		if room.Connected(dungeon.South) {
			grid[gy+1][gx] = '|'
		}
	}

	lines := make([]string, height)
	for y := range grid {
		lines[y] = string(grid[y])
	}
	return lines
}

// runInteractive drives the tcell explorer until the user quits.
func runInteractive(ctx context.Context, sess *explore.Session, theme *gamedata.DungeonConfigDef) error {
	screen, err := ui.NewScreen()
	if err != nil {
		return err
	}
	defer screen.Close()

	renderer := ui.NewRenderer(screen, theme)

	for {
		tmpl, err := sess.Template()
		if err != nil {
			tmpl = nil
		}
		renderer.Render(sess.Floor(), sess.CurrentRoom(), tmpl)

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return nil
			case tcell.KeyUp:
				sess.Move(dungeon.North)
			case tcell.KeyDown:
				sess.Move(dungeon.South)
			case tcell.KeyLeft:
				sess.Move(dungeon.West)
			case tcell.KeyRight:
				sess.Move(dungeon.East)
			case tcell.KeyRune:
				switch ev.Rune() {
				case 'q', 'Q':
					return nil
				case '>':
					// Only works while standing on stairs; ignore otherwise.
					_ = sess.Descend(ctx)
				}
			}
		}
	}
}
