package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stage2d/audio"
	"github.com/lixenwraith/stage2d/engine"
	"github.com/lixenwraith/stage2d/input"
	"github.com/lixenwraith/stage2d/physics"
	"github.com/lixenwraith/stage2d/render"
	"github.com/lixenwraith/stage2d/systems"
)

const (
	logDir      = "logs"
	logFileName = "stage2d.log"
	maxLogSize  = 10 * 1024 * 1024

	frameInterval = 16 * time.Millisecond
)

var (
	debugFlag   = flag.Bool("debug", false, "Write debug logs to logs/stage2d.log")
	bodiesFlag  = flag.Int("bodies", 8, "Number of bouncing bodies")
	gravityFlag = flag.Float64("gravity", 30, "Downward acceleration in cells per second squared")
	muteFlag    = flag.Bool("mute", false, "Disable audio")
)

// setupLogging routes the standard logger. Without -debug all output
// is discarded; with it, logs go to logs/stage2d.log, rotating the
// previous file once it exceeds maxLogSize.
func setupLogging(enabled bool) *os.File {
	if !enabled {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, time.Now().Format("stage2d-20060102-150405.log"))
		os.Rename(logPath, rotated)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(file)
	return file
}

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	defer screen.Fini()

	// Panic recovery: restore the terminal before the stack trace so
	// it is readable after a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSTAGE2D CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	width, height := screen.Size()
	// The terminal world runs Y-down, so gravity points at positive Y.
	game := engine.NewGameWithConfig(engine.Config{
		Width:   width,
		Height:  height,
		Gravity: *gravityFlag,
	})

	renderer := render.NewRenderer(screen)
	renderer.Resize(width, height)
	collector := input.NewCollector()

	sound := audio.NewSoundManager()
	if !*muteFlag {
		if err := sound.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			defer sound.Cleanup()
		}
	}

	scene := buildScene(game, width, height, *bodiesFlag)

	game.Physics.SetCollisionHandler(func(a, b physics.Handle, c physics.Collision) {
		ba := game.Physics.Body(a)
		bb := game.Physics.Body(b)
		closing := (ba.VelX-bb.VelX)*c.NormalX + (ba.VelY-bb.VelY)*c.NormalY
		sound.PlayBounce(closing)
	})

	events := make(chan tcell.Event, 64)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch e := ev.(type) {
			case *tcell.EventKey:
				if e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC ||
					(e.Key() == tcell.KeyRune && e.Rune() == 'q') {
					return
				}
			case *tcell.EventResize:
				w, h := e.Size()
				game.Resize(w, h)
				renderer.Resize(w, h)
				screen.Sync()
			}
			collector.Feed(ev)

		case <-ticker.C:
			now := time.Now()
			dt := now.Sub(last).Seconds()
			last = now

			if collector.IsKeyJustPressed(input.KeyOf(' ')) {
				scene.kick(game)
				sound.PlayBeep()
			}

			game.Update(dt)
			scene.sync(game)

			hud := fmt.Sprintf(" stage2d | fps %.0f | bodies %d | [space] kick  [q] quit",
				game.Clock.FPS(), game.Physics.BodyCount())
			renderer.Frame(game.World, hud)
			collector.BeginFrame()
		}
	}
}

// scene ties physics bodies to their sprite handles and tracks the
// decorative drifting particles behind them
type scene struct {
	dynamic   map[physics.Handle]uint32
	particles []engine.Entity
}

// buildScene walls in the screen, scatters n bouncing boxes and
// seeds a few velocity-driven background particles
func buildScene(game *engine.Game, width, height, n int) *scene {
	s := &scene{dynamic: make(map[physics.Handle]uint32)}
	w := float64(width)
	h := float64(height)

	walls := []physics.AABB{
		physics.NewAABB(0, 0, w, 1),
		physics.NewAABB(0, h-1, w, 1),
		physics.NewAABB(0, 0, 1, h),
		physics.NewAABB(w-1, 0, 1, h),
	}
	for _, box := range walls {
		game.Physics.AddBody(physics.NewStaticBody(), box)
		id := game.CreateSprite(box.X, box.Y, box.Width, box.Height)
		game.SetSpriteColor(id, 0.3, 0.3, 0.35, 1)
	}

	for i := 0; i < n; i++ {
		box := physics.NewAABB(
			2+rand.Float64()*(w-8),
			2+rand.Float64()*(h/2),
			2+rand.Float64()*3,
			1+rand.Float64()*2,
		)
		body := physics.NewRigidBody(1)
		body.Bounciness = 0.85
		body.Friction = 0.02
		body.VelX = rand.Float64()*40 - 20
		handle := game.Physics.AddBody(body, box)

		id := game.CreateSprite(box.X, box.Y, box.Width, box.Height)
		game.SetSpriteColor(id, 0.3+rand.Float64()*0.7, 0.3+rand.Float64()*0.7, 0.3+rand.Float64()*0.7, 1)
		s.dynamic[handle] = id
	}

	// Background drift, outside the physics world
	game.World.AddSystem(systems.NewMovement())
	for i := 0; i < 6; i++ {
		e := game.World.CreateSpriteEntity(rand.Float64()*w, rand.Float64()*h, 1, 1)
		game.World.SetColor(e, 0.15, 0.15, 0.2, 1)
		game.World.AddComponent(e, engine.Velocity{X: 1 + rand.Float64()*3})
		s.particles = append(s.particles, e)
	}
	return s
}

// sync copies physics positions onto the render sprites and wraps
// the drifting particles at the screen edge
func (s *scene) sync(game *engine.Game) {
	for handle, id := range s.dynamic {
		box := game.Physics.Bounds(handle)
		game.SetSpritePosition(id, box.X, box.Y)
	}
	w := float64(game.Width)
	for _, e := range s.particles {
		engine.Mutate(game.World, e, func(t *engine.Transform) {
			if t.X > w {
				t.X = 0
			}
		})
	}
}

// kick launches every dynamic body upward with some sideways spread
func (s *scene) kick(game *engine.Game) {
	for handle := range s.dynamic {
		body := game.Physics.Body(handle)
		body.VelY = -25 - rand.Float64()*15
		body.VelX += rand.Float64()*20 - 10
	}
}
