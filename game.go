package main

import (
	"context"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the world and renderer to Ebiten's update/draw loop.
type Game struct {
	ctx      context.Context
	world    *world
	renderer *renderer

	frameImg *ebiten.Image

	autoWalk    *autoWalker
	stopProfile func()

	footsteps *footstepStream

	showMap       bool
	lastStatusLog time.Time
}

// newGame wires a world and renderer into an Ebiten game.
func newGame(ctx context.Context, w *world, r *renderer) *Game {
	return &Game{
		ctx:      ctx,
		world:    w,
		renderer: r,
		showMap:  *showMapFlag,
	}
}

// Update reads input and advances the agent by one tick.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		log.Printf("Interrupted, closing window")
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleDebugControls()

	in := keyboardInput()
	if g.autoWalk != nil {
		if !g.autoWalk.active(time.Now()) {
			log.Printf("Scripted walk finished")
			g.autoWalk = nil
			if g.stopProfile != nil {
				g.stopProfile()
				g.stopProfile = nil
			}
			return ebiten.Termination
		}
		in = g.autoWalk.next(g.world.agent, g.world.grid)
	}
	applyInput(g.world.agent, in)

	tps := ebiten.TPS()
	if tps <= 0 {
		tps = defaultTPS
	}
	g.world.step(1 / float64(tps))

	if g.footsteps != nil {
		g.footsteps.SetMoving(in.forward || in.back || in.left || in.right)
	}
	g.logStatus()
	return nil
}

// handleDebugControls processes overlay and renderer hotkeys.
func (g *Game) handleDebugControls() {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.showMap = !g.showMap
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		if g.renderer.mode == floorScanline {
			g.renderer.mode = floorPerPixel
		} else {
			g.renderer.mode = floorScanline
		}
		log.Printf("Floor mode: %s", g.renderer.mode)
	}
}

func (g *Game) logStatus() {
	if !*debugFlag {
		return
	}
	now := time.Now()
	if now.Sub(g.lastStatusLog) < statusLogInterval {
		return
	}
	a := g.world.agent
	log.Printf("FPS %.1f TPS %.1f pos (%.2f, %.2f) angle %.2f", ebiten.ActualFPS(), ebiten.ActualTPS(), a.posX, a.posY, a.angle)
	g.lastStatusLog = now
}

// Layout converts the window size into the render viewport and schedules a
// resize when it changed.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := outsideWidth / windowScale
	h := outsideHeight / windowScale
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	g.renderer.requestResize(w, h)
	return w, h
}

// close releases the renderer and any running profile.
func (g *Game) close() {
	if g.stopProfile != nil {
		g.stopProfile()
	}
	g.renderer.close()
}
