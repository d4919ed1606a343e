package main

import (
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"

	"meteorfall/tuning"
)

const (
	envWindowWidth  = "METEORFALL_WINDOW_WIDTH"
	envWindowHeight = "METEORFALL_WINDOW_HEIGHT"
)

func main() {
	tuningPath := flag.String("tuning", "", "tuning YAML to load and watch (empty = embedded defaults)")
	seed := flag.Int64("seed", 0, "meteor spawn RNG seed (0 = time-based)")
	assetsDir := flag.String("assets", "assets", "directory with sprite overrides")
	debug := flag.Bool("debug", false, "show FPS and spawn interval in the HUD")
	flag.Parse()

	spec, err := tuning.Load(*tuningPath)
	if err != nil {
		log.Printf("%v, using defaults", err)
	}
	spec.Window.Width, spec.Window.Height = windowSizeFromEnv(spec.Window.Width, spec.Window.Height)

	ebiten.SetWindowSize(spec.Window.Width, spec.Window.Height)
	ebiten.SetWindowTitle(spec.Window.Title)

	game := NewGame(spec, *seed, *assetsDir, *tuningPath, *debug)
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// windowSizeFromEnv applies the environment overrides. Values that fail to
// parse or are non-positive fall back to the given defaults.
func windowSizeFromEnv(defWidth, defHeight int) (int, int) {
	width := envInt(envWindowWidth, defWidth)
	height := envInt(envWindowHeight, defHeight)
	return width, height
}

func envInt(name string, def int) int {
	v := os.Getenv(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
