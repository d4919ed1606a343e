package main

import (
	"fmt"
	"log"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"meteorfall/assets"
	"meteorfall/common"
	"meteorfall/ecs"
	"meteorfall/ecs/components"
	"meteorfall/ecs/render"
	"meteorfall/ecs/systems"
	"meteorfall/obj"
	"meteorfall/tuning"
)

const ticksPerSecond = 60

// GameState is the phase of the game loop state machine.
type GameState int

const (
	StatePlaying GameState = iota
	StateExploding
	StateGameOver
)

// Game owns all game state and implements ebiten.Game. One Update call is
// one tick.
type Game struct {
	spec       tuning.Spec
	tuningPath string
	assetsDir  string
	debug      bool

	state GameState
	score int

	world     *ecs.World
	playing   *ecs.Scheduler
	exploding *ecs.Scheduler
	spawner   *systems.MeteorSpawnSystem
	collision *systems.CollisionSystem
	ship      ecs.Entity

	input    *obj.Input
	rng      *rand.Rand
	registry *render.Registry
	renderer *systems.RenderSystem

	explosionSound *audio.Player
	watcher        *tuning.Watcher
	gameOverUI     *ebitenui.UI

	restartRequested bool
	quitRequested    bool
}

// NewGame builds a game from a tuning spec. A zero seed seeds the spawn RNG
// from the clock.
func NewGame(spec tuning.Spec, seed int64, assetsDir, tuningPath string, debug bool) *Game {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		spec:       spec,
		tuningPath: tuningPath,
		assetsDir:  assetsDir,
		debug:      debug,
		input:      obj.NewInput(),
		rng:        rand.New(rand.NewSource(seed)),
		registry:   render.NewRegistry(),
	}
	g.renderer = systems.NewRenderSystem(g.registry)
	g.loadSprites()

	if player, err := assets.LoadAudioPlayer("explosion.wav"); err != nil {
		log.Printf("audio: explosion sound unavailable: %v", err)
	} else {
		g.explosionSound = player
	}

	if tuningPath != "" {
		if w, err := tuning.NewWatcher(tuningPath); err != nil {
			log.Printf("tuning: watch %s: %v", tuningPath, err)
		} else {
			g.watcher = w
		}
	}

	g.reset()
	return g
}

// loadSprites fills the image registry, preferring files in the assets dir
// over the embedded defaults.
func (g *Game) loadSprites() {
	s := g.spec
	g.registry.Register("ship.png", render.LoadSprite(g.assetsDir, "ship.png", int(s.Ship.Width), int(s.Ship.Height)))
	g.registry.Register("meteor.png", render.LoadSprite(g.assetsDir, "meteor.png", int(s.Meteor.Width), int(s.Meteor.Height)))
	g.registry.Register("explosion.png", render.LoadSprite(g.assetsDir, "explosion.png", int(s.Explosion.Width), int(s.Explosion.Height)))
	g.registry.Register("star.png", render.LoadSprite(g.assetsDir, "star.png", 4, 4))
}

// reset rebuilds the world and returns to the playing state.
func (g *Game) reset() {
	s := g.spec
	fieldW := float32(s.Window.Width)
	fieldH := float32(s.Window.Height)

	w := ecs.NewWorld()
	g.world = w
	g.score = 0
	g.state = StatePlaying
	g.gameOverUI = nil

	g.ship = w.CreateEntity()
	w.Transforms().Set(g.ship.ID, &components.Transform{
		X: (fieldW - s.Ship.Width) / 2,
		Y: fieldH - s.Ship.Height - 16,
	})
	w.Velocities().Set(g.ship.ID, &components.Velocity{})
	w.Sprites().Set(g.ship.ID, &components.Sprite{
		ImageKey: "ship.png",
		Width:    s.Ship.Width,
		Height:   s.Ship.Height,
		Layer:    2,
	})
	w.Inputs().Set(g.ship.ID, &components.InputState{})
	w.ShipControls().Set(g.ship.ID, &components.ShipControl{
		Speed:  s.Ship.Speed,
		Width:  s.Ship.Width,
		Height: s.Ship.Height,
		MinX:   0,
		MaxX:   fieldW - s.Ship.Width,
	})

	for i := 0; i < s.Stars.Count; i++ {
		star := w.CreateEntity()
		w.Transforms().Set(star.ID, &components.Transform{
			X: g.rng.Float32() * fieldW,
			Y: g.rng.Float32() * fieldH,
		})
		w.Velocities().Set(star.ID, &components.Velocity{
			VY: common.Lerp(s.Stars.MinSpeed, s.Stars.MaxSpeed, g.rng.Float32()),
		})
		w.Sprites().Set(star.ID, &components.Sprite{ImageKey: "star.png", Width: 4, Height: 4, Layer: 0})
		w.Stars().Set(star.ID, &components.Star{})
	}

	g.spawner = systems.NewMeteorSpawnSystem(g.rng, fieldW, &g.score, s.Meteor, s.Spawn, g.difficultyCurve())
	g.collision = systems.NewCollisionSystem(
		int(s.Explosion.Seconds*ticksPerSecond),
		s.Explosion.Width,
		s.Explosion.Height,
	)

	g.playing = ecs.NewScheduler(
		systems.NewInputSystem(g.input, g.ship),
		systems.NewShipControlSystem(),
		systems.NewMovementSystem(),
		systems.NewStarfieldSystem(fieldH),
		g.spawner,
		systems.NewBoundsSystem(fieldH),
		g.collision,
	)
	g.exploding = ecs.NewScheduler(
		systems.NewExplosionSystem(),
	)
}

// difficultyCurve loads the scripted curve named by the tuning spec, or nil
// for the builtin ramp.
func (g *Game) difficultyCurve() tuning.Curve {
	if g.spec.DifficultyScript == "" {
		return nil
	}
	path := g.spec.DifficultyScript
	if !filepath.IsAbs(path) && g.tuningPath != "" {
		path = filepath.Join(filepath.Dir(g.tuningPath), path)
	}
	curve, err := tuning.LoadScriptCurve(path)
	if err != nil {
		log.Printf("tuning: %v, using builtin ramp", err)
		return nil
	}
	return curve
}

// Update advances the state machine by one tick.
func (g *Game) Update() error {
	g.pollTuningReload()

	g.input.Update()
	if g.input.QuitPressed || g.quitRequested {
		return ebiten.Termination
	}

	switch g.state {
	case StatePlaying:
		g.playing.Update(g.world)
	case StateExploding:
		g.exploding.Update(g.world)
	case StateGameOver:
		if g.gameOverUI != nil {
			g.gameOverUI.Update()
		}
		if g.input.RestartPressed || g.restartRequested {
			g.restartRequested = false
			g.reset()
			return nil
		}
	}

	for _, evt := range g.world.Events().Drain() {
		switch evt.Type {
		case ecs.EventMeteorDodged:
			g.score++
		case ecs.EventShipHit:
			g.state = StateExploding
			g.playExplosionSound()
		case ecs.EventExplosionDone:
			g.state = StateGameOver
			g.gameOverUI = NewGameOverUI(g)
		}
	}
	return nil
}

// Close releases the tuning watcher. Safe to call more than once.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) playExplosionSound() {
	if g.explosionSound == nil {
		return
	}
	if err := g.explosionSound.Rewind(); err != nil {
		return
	}
	g.explosionSound.Play()
}

// pollTuningReload drains watcher events without blocking and re-applies
// tuning when the file changed.
func (g *Game) pollTuningReload() {
	if g.watcher == nil {
		return
	}
	changed := false
	for {
		select {
		case _, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			changed = true
		case err, ok := <-g.watcher.Errors:
			if ok && err != nil {
				log.Printf("tuning: watcher: %v", err)
			}
			if !ok {
				g.watcher = nil
				return
			}
		default:
			if changed {
				g.applyTuning()
			}
			return
		}
	}
}

// applyTuning reloads the tuning file and applies what can change mid-run:
// spawn tuning, ship speed, and explosion duration. Window size and star
// layout apply on restart.
func (g *Game) applyTuning() {
	spec, err := tuning.Load(g.tuningPath)
	if err != nil {
		log.Printf("tuning: reload: %v", err)
		return
	}
	// Window size is fixed for the lifetime of the process.
	spec.Window = g.spec.Window
	g.spec = spec
	log.Printf("tuning: reloaded %s", g.tuningPath)

	g.spawner.Retune(spec.Meteor, spec.Spawn, g.difficultyCurve())
	g.collision.ExplosionTicks = int(spec.Explosion.Seconds * ticksPerSecond)
	g.collision.ExplosionWidth = spec.Explosion.Width
	g.collision.ExplosionHeight = spec.Explosion.Height
	if ctrl, ok := g.world.ShipControls().Get(g.ship.ID).(*components.ShipControl); ok && ctrl != nil {
		ctrl.Speed = spec.Ship.Speed
	}
}

// Draw renders one frame. It reads world state but never mutates it.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.world, screen)

	switch g.state {
	case StatePlaying, StateExploding:
		hud := fmt.Sprintf("Score: %d", g.score)
		if g.debug {
			hud += fmt.Sprintf("    FPS: %.2f    interval: %.1f", ebiten.ActualFPS(), g.spawner.Interval())
		}
		ebitenutil.DebugPrint(screen, hud)
	case StateGameOver:
		if g.gameOverUI != nil {
			g.gameOverUI.Draw(screen)
		}
	}
}

// Layout fixes the playfield to the configured window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.spec.Window.Width, g.spec.Window.Height
}
