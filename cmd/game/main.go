package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/chickenrun/internal/application/game"
	"github.com/younwookim/chickenrun/internal/application/replay"
	"github.com/younwookim/chickenrun/internal/application/scene"
	"github.com/younwookim/chickenrun/internal/application/scene/playing"
	"github.com/younwookim/chickenrun/internal/application/scene/title"
	"github.com/younwookim/chickenrun/internal/infrastructure/audio"
	"github.com/younwookim/chickenrun/internal/infrastructure/config"
	"github.com/younwookim/chickenrun/internal/infrastructure/font"
)

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Run a recorded replay headless and print the result")
	levelFlag := flag.String("level", "", "Start this level directly instead of the menu")
	soundsFlag := flag.String("sounds", "", "Directory with <clip>.wav files; beeps are used otherwise")
	mutedFlag := flag.Bool("muted", false, "Start with sound off")
	seedFlag := flag.Int64("seed", 0, "Fixed session seed (0 = clock)")
	flag.Parse()

	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	loader := config.NewFSLoader(fsys, "configs")

	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		res, err := runReplay(loader, data)
		if err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		fmt.Println(res)
		return
	}

	tuning, err := loader.LoadTuning()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	levels, err := loader.Levels()
	if err != nil {
		log.Fatalf("Failed to list levels: %v", err)
	}

	faces, err := font.Load(16, 40)
	if err != nil {
		log.Printf("Using bitmap font: %v", err)
		faces = font.Fallback()
	}

	var soundFS fs.FS
	if *soundsFlag != "" {
		soundFS = os.DirFS(*soundsFlag)
	}
	sound := audio.NewPlayer(audio.NewEbitenMixer(soundFS))
	sound.SetMuted(*mutedFlag)

	seed := func() int64 {
		if *seedFlag != 0 {
			return *seedFlag
		}
		return time.Now().UnixNano()
	}

	display := tuning.Display
	var menu func() scene.Scene
	start := func(level string) (scene.Scene, error) {
		cfg, err := loader.LoadAll(level)
		if err != nil {
			return nil, err
		}
		p, err := playing.New(playing.Options{
			Tuning:     cfg.Tuning,
			Level:      cfg.Level,
			Sound:      sound,
			Faces:      faces,
			RecordPath: *recordFlag,
			Seed:       seed,
			Menu:       menu,
		})
		if err != nil {
			return nil, err
		}
		return p, nil
	}
	menu = func() scene.Scene {
		t, err := title.New(display.Title, levels, faces, display.ScreenWidth, display.ScreenHeight, start)
		if err != nil {
			log.Fatalf("Failed to build menu: %v", err)
		}
		return t
	}

	initial := menu()
	if *levelFlag != "" {
		initial, err = start(*levelFlag)
		if err != nil {
			log.Fatalf("Failed to start level: %v", err)
		}
	}

	g := game.New(initial, display.ScreenWidth, display.ScreenHeight, tuning.Loop.TicksPerSecond)

	// Set up ebiten
	ebiten.SetWindowSize(int(float64(display.ScreenWidth)*display.Scale), int(float64(display.ScreenHeight)*display.Scale))
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(tuning.Loop.TicksPerSecond)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
